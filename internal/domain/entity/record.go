package entity

import (
	"strings"
	"time"
)

// PhotoRef points at a photo: either an inline data URL or a path/URL issued
// by the backend once the photo was uploaded.
type PhotoRef string

// IsDataURL reports whether the reference embeds the image bytes.
func (p PhotoRef) IsDataURL() bool {
	return strings.HasPrefix(string(p), "data:")
}

// ServiceRecord documents one service performed at a location.
type ServiceRecord struct {
	ID           string      `json:"id"`
	OperatorID   string      `json:"operatorId"`
	OperatorName string      `json:"operatorName"`
	ServiceType  ServiceType `json:"serviceType"`
	LocationID   *string     `json:"locationId,omitempty"`
	LocationName string      `json:"locationName"`
	LocationCity string      `json:"locationCity"`
	LocationArea *float64    `json:"locationArea,omitempty"`
	GPSUsed      bool        `json:"gpsUsed"`
	StartTime    time.Time   `json:"startTime"`
	EndTime      time.Time   `json:"endTime"`
	BeforePhotos []PhotoRef  `json:"beforePhotos"`
	AfterPhotos  []PhotoRef  `json:"afterPhotos"`
}

// Area returns the serviced area in square meters, zero when unknown.
func (r ServiceRecord) Area() float64 {
	if r.LocationArea == nil {
		return 0
	}

	return *r.LocationArea
}

// Photos returns the photo sequence of the given phase.
func (r ServiceRecord) Photos(phase Phase) []PhotoRef {
	if phase == PhaseAfter {
		return r.AfterPhotos
	}

	return r.BeforePhotos
}
