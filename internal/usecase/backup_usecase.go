package usecase

import "context"

// BackupUsecase exports and restores the cached collections and the goals.
type BackupUsecase interface {
	// Export serializes users, locations, records and goals as indented JSON.
	Export(ctx context.Context, session *Session) ([]byte, error)
	// Restore replaces the cached collections and the goals with a backup.
	// An invalid file leaves everything unchanged.
	Restore(ctx context.Context, session *Session, data []byte) error
}
