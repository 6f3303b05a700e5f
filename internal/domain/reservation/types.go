package reservation

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusNoShow    Status = "no_show"
	StatusCanceled  Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusNoShow, StatusCanceled:
		return true
	default:
		return false
	}
}

// IsOpen reports whether the visit has not been validated or canceled yet.
func (s Status) IsOpen() bool {
	return s == StatusPending || s == StatusConfirmed
}

func (s Status) IsValidated() bool {
	return s == StatusCompleted || s == StatusNoShow
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
