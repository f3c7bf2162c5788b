package entity

// ServiceType is one entry of the fixed catalog of service kinds.
type ServiceType string

const (
	ServiceMowing          ServiceType = "MOWING"
	ServiceWeeding         ServiceType = "WEEDING"
	ServiceSweeping        ServiceType = "SWEEPING"
	ServicePruning         ServiceType = "PRUNING"
	ServiceLitterPickup    ServiceType = "LITTER_PICKUP"
	ServiceDrainCleaning   ServiceType = "DRAIN_CLEANING"
	ServiceCurbPainting    ServiceType = "CURB_PAINTING"
	ServicePressureWashing ServiceType = "PRESSURE_WASHING"
)

// ServiceTypes returns the catalog in display order.
func ServiceTypes() []ServiceType {
	return []ServiceType{
		ServiceMowing,
		ServiceWeeding,
		ServiceSweeping,
		ServicePruning,
		ServiceLitterPickup,
		ServiceDrainCleaning,
		ServiceCurbPainting,
		ServicePressureWashing,
	}
}

// IsValid reports whether the service type belongs to the catalog.
func (s ServiceType) IsValid() bool {
	for _, known := range ServiceTypes() {
		if s == known {
			return true
		}
	}

	return false
}

// String returns the string representation of the ServiceType.
func (s ServiceType) String() string {
	return string(s)
}
