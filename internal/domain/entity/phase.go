package entity

import "strings"

// Phase tells which half of a service a batch of photos documents.
type Phase string

const (
	PhaseBefore Phase = "BEFORE"
	PhaseAfter  Phase = "AFTER"
)

// ParsePhase accepts a phase name in any case.
func ParsePhase(s string) (Phase, bool) {
	switch Phase(strings.ToUpper(strings.TrimSpace(s))) {
	case PhaseBefore:
		return PhaseBefore, true
	case PhaseAfter:
		return PhaseAfter, true
	default:
		return "", false
	}
}

// String returns the string representation of the Phase.
func (p Phase) String() string {
	return string(p)
}
