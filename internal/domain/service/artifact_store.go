package service

import "context"

// Artifact is a generated export file.
type Artifact struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Size        int    `json:"size"`
	Data        []byte `json:"-"`
}

// ArtifactStore keeps generated export files.
type ArtifactStore interface {
	Save(ctx context.Context, artifact *Artifact) error
	Open(ctx context.Context, key string) ([]byte, error)
}
