package payment

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrIncompleteValidation = errors.New("attendance and payment must both be recorded")
	ErrInvalidAttendance    = errors.New("invalid attendance")
	ErrInvalidSettlement    = errors.New("invalid settlement")
	ErrInvalidMethod        = errors.New("invalid payment method")
	ErrMethodRequired       = errors.New("payment method required when an amount is collected")
	ErrNegativeDeposit      = errors.New("deposit cannot be negative")
	ErrDepositExceedsTotal  = errors.New("deposit exceeds reservation total")
)

type Attendance string

const (
	AttendanceUnknown Attendance = ""
	AttendancePresent Attendance = "present"
	AttendanceAbsent  Attendance = "absent"
)

func ParseAttendance(s string) (Attendance, error) {
	a := Attendance(s)
	switch a {
	case AttendanceUnknown, AttendancePresent, AttendanceAbsent:
		return a, nil
	default:
		return AttendanceUnknown, ErrInvalidAttendance
	}
}

type Settlement string

const (
	SettlementUnknown Settlement = ""
	SettlementPaid    Settlement = "paid"
	SettlementUnpaid  Settlement = "unpaid"
)

func ParseSettlement(s string) (Settlement, error) {
	v := Settlement(s)
	switch v {
	case SettlementUnknown, SettlementPaid, SettlementUnpaid:
		return v, nil
	default:
		return SettlementUnknown, ErrInvalidSettlement
	}
}

type Method string

const (
	MethodNone     Method = ""
	MethodCash     Method = "cash"
	MethodCard     Method = "card"
	MethodTransfer Method = "transfer"
	MethodCheck    Method = "check"
	MethodGiftCard Method = "gift_card"
	MethodOther    Method = "other"
)

func ParseMethod(s string) (Method, error) {
	m := Method(s)
	switch m {
	case MethodNone, MethodCash, MethodCard, MethodTransfer, MethodCheck, MethodGiftCard, MethodOther:
		return m, nil
	default:
		return MethodNone, ErrInvalidMethod
	}
}

// Status is the payment status stored on a reservation.
type Status string

const (
	StatusUnpaid  Status = "unpaid"
	StatusPartial Status = "partial"
	StatusPaid    Status = "paid"
	StatusNoShow  Status = "no_show"
)

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusUnpaid, StatusPartial, StatusPaid, StatusNoShow:
		return st, nil
	default:
		return "", fmt.Errorf("invalid payment status %q", s)
	}
}

// Visit is the reservation status a validation resolves to.
type Visit string

const (
	VisitCompleted Visit = "completed"
	VisitNoShow    Visit = "no_show"
)

type Request struct {
	Attendance             Attendance
	Settlement             Settlement
	DepositCents           int64
	Method                 Method
	Discounts              DiscountSet
	TotalCents             int64
	GiftCardAvailableCents int64
}

type Outcome struct {
	Visit         Visit
	PaymentStatus Status
	AmountCents   int64
	Method        Method
	Breakdown     Breakdown

	ResetsLoyalty    bool
	ResetsPackage    bool
	ConsumesReferral ReferralDiscount
	ConsumesBirthday bool
}

func (o Outcome) GiftCardUsedCents() int64 {
	return o.Breakdown.GiftCardUsedCents
}

// Decide resolves attendance and settlement into the terminal reservation and
// payment state. Discounts and gift cards only take effect on a present, paid visit.
func Decide(req Request, rates Rates) (Outcome, error) {
	if req.Attendance == AttendanceUnknown || req.Settlement == SettlementUnknown {
		return Outcome{}, ErrIncompleteValidation
	}
	if req.DepositCents < 0 {
		return Outcome{}, ErrNegativeDeposit
	}

	switch req.Attendance {
	case AttendanceAbsent:
		return decideAbsent(req)
	case AttendancePresent:
		return decidePresent(req, rates)
	default:
		return Outcome{}, ErrInvalidAttendance
	}
}

func decideAbsent(req Request) (Outcome, error) {
	if req.Settlement == SettlementUnpaid || req.DepositCents == 0 {
		return Outcome{Visit: VisitNoShow, PaymentStatus: StatusNoShow}, nil
	}
	if req.DepositCents > req.TotalCents {
		return Outcome{}, ErrDepositExceedsTotal
	}
	if req.Method == MethodNone || req.Method == MethodGiftCard {
		return Outcome{}, ErrMethodRequired
	}
	return Outcome{
		Visit:         VisitNoShow,
		PaymentStatus: StatusPartial,
		AmountCents:   req.DepositCents,
		Method:        req.Method,
	}, nil
}

func decidePresent(req Request, rates Rates) (Outcome, error) {
	if req.Settlement == SettlementUnpaid {
		return Outcome{Visit: VisitCompleted, PaymentStatus: StatusUnpaid}, nil
	}

	if err := req.Discounts.Validate(); err != nil {
		return Outcome{}, err
	}
	if req.Discounts.ManualCents > req.TotalCents {
		return Outcome{}, ErrManualDiscountTooLarge
	}
	if req.GiftCardAvailableCents < 0 {
		return Outcome{}, ErrNegativeGiftCardBalance
	}

	b := Compute(req.TotalCents, req.Discounts, rates, req.GiftCardAvailableCents)

	method := req.Method
	if b.PayableCents > 0 && (method == MethodNone || method == MethodGiftCard) {
		return Outcome{}, ErrMethodRequired
	}
	if b.PayableCents == 0 && method == MethodNone && b.GiftCardUsedCents > 0 {
		method = MethodGiftCard
	}

	return Outcome{
		Visit:            VisitCompleted,
		PaymentStatus:    StatusPaid,
		AmountCents:      b.PayableCents,
		Method:           method,
		Breakdown:        b,
		ResetsLoyalty:    req.Discounts.Loyalty,
		ResetsPackage:    req.Discounts.Package,
		ConsumesReferral: req.Discounts.Referral,
		ConsumesBirthday: req.Discounts.Birthday,
	}, nil
}

// Notes renders the annotation stored with the payment.
func (o Outcome) Notes() string {
	switch o.PaymentStatus {
	case StatusNoShow:
		return "no show"
	case StatusPartial:
		return "no show, deposit " + formatCents(o.AmountCents)
	case StatusUnpaid:
		return "client present, unpaid"
	}

	var parts []string
	if len(o.Breakdown.Applied) > 0 {
		items := make([]string, 0, len(o.Breakdown.Applied))
		for _, d := range o.Breakdown.Applied {
			if d.AmountCents == 0 {
				continue
			}
			items = append(items, fmt.Sprintf("%s -%s", d.Kind, formatCents(d.AmountCents)))
		}
		if len(items) > 0 {
			parts = append(parts, "discounts: "+strings.Join(items, ", "))
		}
	}
	if o.Breakdown.GiftCardUsedCents > 0 {
		parts = append(parts, "gift card -"+formatCents(o.Breakdown.GiftCardUsedCents))
	}
	if len(parts) == 0 {
		return "paid in full"
	}
	return strings.Join(parts, "; ")
}

func formatCents(c int64) string {
	return fmt.Sprintf("%d.%02d", c/100, c%100)
}
