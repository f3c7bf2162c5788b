package capture

import (
	"time"

	"fieldops/internal/domain/entity"
	"fieldops/internal/util"
)

// Photo is an image held by the draft until submission.
type Photo struct {
	ContentType string
	Data        []byte
}

// DataURL renders the photo as an inline reference.
func (p Photo) DataURL() entity.PhotoRef {
	return entity.PhotoRef(util.EncodeDataURL(p.ContentType, p.Data))
}

func (p Photo) extension() string {
	switch p.ContentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}

// Progress tracks the steps of a submission that the backend already accepted.
type Progress struct {
	LocationID   string                             `json:"locationId,omitempty"`
	LocationArea *float64                           `json:"locationArea,omitempty"`
	RecordID     string                             `json:"recordId,omitempty"`
	Uploaded     map[entity.Phase][]entity.PhotoRef `json:"uploaded,omitempty"`
}

func (p Progress) uploaded(phase entity.Phase) bool {
	_, ok := p.Uploaded[phase]
	return ok
}

// Started reports whether any backend call of the submission succeeded.
func (p Progress) Started() bool {
	return p.LocationID != "" || p.RecordID != ""
}

// Draft is the in-progress service record.
type Draft struct {
	City         string
	ServiceType  entity.ServiceType
	LocationID   *string
	LocationName string
	LocationCity string
	LocationArea *float64
	GPSUsed      bool
	StartTime    time.Time
	EndTime      time.Time
	BeforePhotos []Photo
	AfterPhotos  []Photo
	Progress     Progress
}

func (d *Draft) photos(phase entity.Phase) *[]Photo {
	if phase == entity.PhaseAfter {
		return &d.AfterPhotos
	}

	return &d.BeforePhotos
}

func (d *Draft) setLocation(loc entity.Location, gps bool) {
	id := loc.ID
	area := loc.Area
	d.LocationID = &id
	d.LocationName = loc.Name
	d.LocationCity = loc.City
	d.LocationArea = &area
	d.GPSUsed = gps
}

func (d *Draft) clearLocation() {
	d.LocationID = nil
	d.LocationName = ""
	d.LocationCity = ""
	d.LocationArea = nil
	d.GPSUsed = false
}

// clone copies the draft deeply enough for the saga to run without the lock.
func (d *Draft) clone() Draft {
	c := *d
	c.BeforePhotos = append([]Photo(nil), d.BeforePhotos...)
	c.AfterPhotos = append([]Photo(nil), d.AfterPhotos...)
	c.Progress.Uploaded = make(map[entity.Phase][]entity.PhotoRef, len(d.Progress.Uploaded))
	for k, v := range d.Progress.Uploaded {
		c.Progress.Uploaded[k] = v
	}

	return c
}

// record assembles the structured fields sent to the backend.
func (d *Draft) record(operator entity.User) entity.ServiceRecord {
	return entity.ServiceRecord{
		OperatorID:   operator.ID,
		OperatorName: operator.Name,
		ServiceType:  d.ServiceType,
		LocationID:   d.LocationID,
		LocationName: d.LocationName,
		LocationCity: d.LocationCity,
		LocationArea: d.LocationArea,
		GPSUsed:      d.GPSUsed,
		StartTime:    d.StartTime,
		EndTime:      d.EndTime,
		BeforePhotos: []entity.PhotoRef{},
		AfterPhotos:  []entity.PhotoRef{},
	}
}
