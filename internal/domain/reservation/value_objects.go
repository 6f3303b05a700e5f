package reservation

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrInvalidServiceName = errors.New("service name must be between 1 and 120 characters")
	ErrNoteTooLong        = errors.New("note must be at most 500 characters")
	ErrSlotTooLong        = errors.New("time slot cannot exceed 12 hours")
)

const (
	maxServiceNameLength = 120
	MaxNoteLength        = 500
	maxSlotDuration      = 12 * time.Hour
)

type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	if end.Sub(start) > maxSlotDuration {
		return TimeSlot{}, ErrSlotTooLong
	}
	return TimeSlot{start: start, end: end}, nil
}

func (ts TimeSlot) Start() time.Time        { return ts.start }
func (ts TimeSlot) End() time.Time          { return ts.end }
func (ts TimeSlot) Duration() time.Duration { return ts.end.Sub(ts.start) }

func (ts TimeSlot) StartsAfter(t time.Time) bool {
	return ts.start.After(t)
}

// ServiceLine is one service item booked on a reservation.
type ServiceLine struct {
	name           string
	priceCents     int64
	packageSession bool
}

func NewServiceLine(name string, priceCents int64, packageSession bool) (ServiceLine, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > maxServiceNameLength {
		return ServiceLine{}, ErrInvalidServiceName
	}
	if priceCents < 0 {
		return ServiceLine{}, ErrNegativePrice
	}
	return ServiceLine{name: name, priceCents: priceCents, packageSession: packageSession}, nil
}

func (l ServiceLine) Name() string           { return l.name }
func (l ServiceLine) PriceCents() int64      { return l.priceCents }
func (l ServiceLine) IsPackageSession() bool { return l.packageSession }

type Note struct {
	value string
}

func NewNote(value string) (Note, error) {
	value = strings.TrimSpace(value)
	if utf8.RuneCountInString(value) > MaxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{value: value}, nil
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
