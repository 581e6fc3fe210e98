package interval

import "fmt"

// Status is a connectivity/trip status label. Values are ordered by
// priority: P0 (offline) < P1 (open) < P2 (en route) < P3 (on trip).
type Status int8

const (
	StatusP0 Status = iota // offline
	StatusP1               // open, waiting for a dispatch
	StatusP2               // en route to a pickup
	StatusP3               // trip in progress
)

// DefaultPriority lists all statuses in descending priority order, the
// order the reconciler subtracts them in.
var DefaultPriority = []Status{StatusP3, StatusP2, StatusP1, StatusP0}

func (s Status) String() string {
	switch s {
	case StatusP0:
		return "P0"
	case StatusP1:
		return "P1"
	case StatusP2:
		return "P2"
	case StatusP3:
		return "P3"
	}
	return fmt.Sprintf("Status(%d)", int8(s))
}

// ConsistentLabel is the label applied to reconciled timeline intervals.
func (s Status) ConsistentLabel() string {
	return s.String() + " consistent"
}

// ParseStatus maps a label such as "P2" back to its Status.
func ParseStatus(label string) (Status, error) {
	switch label {
	case "P0":
		return StatusP0, nil
	case "P1":
		return StatusP1, nil
	case "P2":
		return StatusP2, nil
	case "P3":
		return StatusP3, nil
	}
	return 0, fmt.Errorf("unknown status label %q", label)
}
