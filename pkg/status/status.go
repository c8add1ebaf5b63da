// Package status defines the archival progress of books and documents and
// how each state is presented.
package status

import (
	"fmt"
	"strings"
)

// Status is the archival progress of a book or document.
type Status int

const (
	// Unknown covers absent or unrecognized values.
	Unknown Status = iota
	// Complete means every record has been archived.
	Complete
	// InProgress means archiving has started.
	InProgress
	// Pending means archiving has not started.
	Pending
)

var labels = map[Status]string{
	Unknown:    "unknown",
	Complete:   "complete",
	InProgress: "in-progress",
	Pending:    "pending",
}

// All returns the known statuses in display order.
func All() []Status {
	return []Status{Complete, InProgress, Pending}
}

// Parse converts a wire label to a Status. Unrecognized input maps to Unknown.
func Parse(raw string) Status {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "_", "-")
	switch s {
	case "complete", "completed":
		return Complete
	case "in-progress", "inprogress":
		return InProgress
	case "pending":
		return Pending
	default:
		return Unknown
	}
}

func (s Status) String() string {
	if l, ok := labels[s]; ok {
		return l
	}
	return labels[Unknown]
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It never fails; unknown
// labels decode to Unknown.
func (s *Status) UnmarshalText(text []byte) error {
	if s == nil {
		return fmt.Errorf("status: UnmarshalText on nil pointer")
	}
	*s = Parse(string(text))
	return nil
}
