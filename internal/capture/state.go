// Package capture sequences an operator through the creation of one service record.
package capture

// State is a step of the capture workflow.
type State string

const (
	StateCitySelect     State = "CITY_SELECT"
	StateServiceSelect  State = "SERVICE_SELECT"
	StateLocationSelect State = "LOCATION_SELECT"
	StatePhotoBefore    State = "PHOTO_BEFORE"
	StatePhotoAfter     State = "PHOTO_AFTER"
	StateConfirm        State = "CONFIRM"
	StateSubmitting     State = "SUBMITTING"
	StateSubmitted      State = "SUBMITTED"
	StateSubmitFailed   State = "SUBMIT_FAILED"
	StateCancelled      State = "CANCELLED"
)

// String returns the string representation of the State.
func (s State) String() string {
	return string(s)
}

// IsPhotoStep reports whether photos are captured in this state.
func (s State) IsPhotoStep() bool {
	return s == StatePhotoBefore || s == StatePhotoAfter
}
