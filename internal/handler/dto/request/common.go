package request

import (
	"strings"
	"time"

	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/queries"
)

var ErrInvalidDate = errs.New("dates must be YYYY-MM-DD or RFC 3339")

type PageQuery struct {
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

func (q PageQuery) ToCursor() *queries.Cursor {
	if q.Cursor == "" {
		return nil
	}
	return &queries.Cursor{After: q.Cursor}
}

// DateRangeQuery is the from/to pair shared by exports and the accounting summary.
// A bare date for "to" is inclusive of that whole day.
type DateRangeQuery struct {
	From string `form:"from"`
	To   string `form:"to"`
}

func (q DateRangeQuery) ToRange() (queries.DateRange, error) {
	from, _, err := parseDate(q.From)
	if err != nil {
		return queries.DateRange{}, err
	}
	to, dateOnly, err := parseDate(q.To)
	if err != nil {
		return queries.DateRange{}, err
	}
	if to != nil && dateOnly {
		end := to.AddDate(0, 0, 1)
		to = &end
	}
	r := queries.DateRange{From: from, To: to}
	return r, r.Validate()
}

func parseDate(s string) (*time.Time, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return &t, true, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, false, errs.Mark(err, ErrInvalidDate)
	}
	return &t, false, nil
}
