package commands

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"salon-booking/internal/domain/payment"
	"salon-booking/internal/domain/reservation"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrReservationConflict = errs.New("reservation conflict")
	ErrClientNotFound      = errs.New("client not found")
	ErrInvalidTransition   = errs.New("invalid reservation state transition")
)

const (
	endpointCreateReservation = "POST /api/reservations"

	jobKindEmail  = "email"
	jobKindSocial = "social"

	topicReservationCreated  = "reservation_created"
	topicReservationCanceled = "reservation_canceled"
	topicPaymentValidated    = "payment_validated"
	topicPaymentCorrected    = "payment_corrected"
	topicMarketingEmail      = "marketing_email"
	topicSocialPublish       = "social_publish"
)

type ServiceLineRequest struct {
	Name           string `json:"name"`
	PriceCents     int64  `json:"price_cents"`
	PackageSession bool   `json:"package_session"`
}

type CreateReservationRequest struct {
	ClientID *uuid.UUID           `json:"client_id,omitempty"`
	StartsAt time.Time            `json:"starts_at"`
	EndsAt   time.Time            `json:"ends_at"`
	Lines    []ServiceLineRequest `json:"lines"`
	Note     string               `json:"note"`
}

type CorrectPaymentRequest struct {
	AmountCents     int64  `json:"amount_cents"`
	Method          string `json:"method"`
	Notes           string `json:"notes"`
	ExpectedVersion *int32 `json:"expected_version,omitempty"`
}

type ReservationCommands interface {
	Create(ctx context.Context, actor shared.Actor, req CreateReservationRequest, idempotencyKey uuid.UUID) (*queries.ReservationView, error)
	Cancel(ctx context.Context, actor shared.Actor, reservationID uuid.UUID) (*queries.ReservationView, error)
	CorrectPayment(ctx context.Context, actor shared.Actor, reservationID uuid.UUID, req CorrectPaymentRequest) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	uow     shared.UnitOfWork
	factory *reservation.Factory
	reads   queries.ReservationQueries
	clock   clock.Clock
	guard   idempotencyGuard
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	reads queries.ReservationQueries,
	clk clock.Clock,
	idemCfg config.IdempotencyConfig,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:     uow,
		factory: reservation.NewFactory(clk),
		reads:   reads,
		clock:   clk,
		guard:   newIdempotencyGuard(uow, clk, idemCfg.TTL),
	}
}

func (uc *reservationCommandsImpl) Create(ctx context.Context, actor shared.Actor, req CreateReservationRequest, idempotencyKey uuid.UUID) (*queries.ReservationView, error) {
	slot, lines, note, err := toReservationParts(req)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	clientID := actor.UserID
	if actor.AtLeast(user.RoleStaff) {
		if req.ClientID == nil {
			return nil, errs.Mark(errs.New("client_id is required for staff bookings"), ErrDomainValidation)
		}
		clientID = *req.ClientID
	}

	claim, err := uc.guard.claim(ctx, idempotencyKey, actor.UserID, endpointCreateReservation, req)
	if err != nil {
		return nil, err
	}
	if claim.ReplayID != nil {
		return uc.reads.GetByIDSystem(ctx, *claim.ReplayID)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if clientID != actor.UserID {
			if err := uc.checkClient(ctx, tx, actor, clientID); err != nil {
				return err
			}
		}

		res, err := uc.factory.CreateReservation(actor.OrganizationID, clientID, actor.UserID, actor.Role, slot, lines, note)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := tx.Reservations().Create(ctx, tx.DB(), res); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := enqueueReservationJob(ctx, tx, topicReservationCreated, res, uc.clock.Now()); err != nil {
			return err
		}
		createdID = res.ID()
		return uc.guard.complete(ctx, tx, claim, createdID)
	})
	if err != nil {
		uc.guard.release(ctx, claim)
		return nil, err
	}

	return uc.reads.GetByIDSystem(ctx, createdID)
}

func (uc *reservationCommandsImpl) checkClient(ctx context.Context, tx shared.Tx, actor shared.Actor, clientID uuid.UUID) error {
	client, err := tx.Reads().UserByID(ctx, clientID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrClientNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if client.OrganizationID != actor.OrganizationID || client.Role != user.RoleClient.String() || !client.IsActive {
		return ErrClientNotFound
	}
	return nil
}

func (uc *reservationCommandsImpl) Cancel(ctx context.Context, actor shared.Actor, reservationID uuid.UUID) (*queries.ReservationView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := lockReservation(ctx, tx, actor, reservationID)
		if err != nil {
			return err
		}
		// clients may only cancel their own bookings
		if !actor.AtLeast(user.RoleStaff) && res.ClientID() != actor.UserID {
			return ErrReservationNotFound
		}

		expected := res.Version()
		now := uc.clock.Now()
		if err := res.Cancel(now); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}
		if err := saveReservation(ctx, tx, res, expected); err != nil {
			return err
		}
		return enqueueReservationJob(ctx, tx, topicReservationCanceled, res, now)
	})
	if err != nil {
		return nil, err
	}
	return uc.reads.GetByIDSystem(ctx, reservationID)
}

func (uc *reservationCommandsImpl) CorrectPayment(ctx context.Context, actor shared.Actor, reservationID uuid.UUID, req CorrectPaymentRequest) (*queries.ReservationView, error) {
	if !actor.AtLeast(user.RoleAdmin) {
		return nil, ErrAccessDenied
	}
	method, err := payment.ParseMethod(req.Method)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := lockReservation(ctx, tx, actor, reservationID)
		if err != nil {
			return err
		}
		expected := res.Version()
		if req.ExpectedVersion != nil && *req.ExpectedVersion != expected {
			return ErrReservationConflict
		}

		now := uc.clock.Now()
		if err := res.CorrectPayment(req.AmountCents, method, strings.TrimSpace(req.Notes), now); err != nil {
			if errs.Is(err, reservation.ErrNotValidated) {
				return errs.Mark(err, ErrInvalidTransition)
			}
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := saveReservation(ctx, tx, res, expected); err != nil {
			return err
		}
		return enqueueReservationJob(ctx, tx, topicPaymentCorrected, res, now)
	})
	if err != nil {
		return nil, err
	}
	return uc.reads.GetByIDSystem(ctx, reservationID)
}

func toReservationParts(req CreateReservationRequest) (reservation.TimeSlot, []reservation.ServiceLine, reservation.Note, error) {
	slot, err := reservation.NewTimeSlot(req.StartsAt, req.EndsAt)
	if err != nil {
		return reservation.TimeSlot{}, nil, reservation.Note{}, err
	}
	lines := make([]reservation.ServiceLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		line, err := reservation.NewServiceLine(l.Name, l.PriceCents, l.PackageSession)
		if err != nil {
			return reservation.TimeSlot{}, nil, reservation.Note{}, err
		}
		lines = append(lines, line)
	}
	note, err := reservation.NewNote(req.Note)
	if err != nil {
		return reservation.TimeSlot{}, nil, reservation.Note{}, err
	}
	return slot, lines, note, nil
}

// lockReservation reports reservations of another tenant as missing.
func lockReservation(ctx context.Context, tx shared.Tx, actor shared.Actor, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := tx.Reservations().FindForUpdate(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !actor.CanAccess(res.OrganizationID()) {
		return nil, ErrReservationNotFound
	}
	return res, nil
}

func saveReservation(ctx context.Context, tx shared.Tx, res *reservation.Reservation, expectedVersion int32) error {
	if err := tx.Reservations().Save(ctx, tx.DB(), res, expectedVersion); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return errs.Mark(err, ErrReservationConflict)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

type reservationJobPayload struct {
	ReservationID  uuid.UUID `json:"reservation_id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	ClientID       uuid.UUID `json:"client_id"`
	Status         string    `json:"status"`
	PaymentStatus  string    `json:"payment_status"`
	AmountCents    int64     `json:"amount_cents"`
	StartsAt       time.Time `json:"starts_at"`
}

func enqueueReservationJob(ctx context.Context, tx shared.Tx, topic string, res *reservation.Reservation, now time.Time) error {
	return enqueueJob(ctx, tx, jobKindEmail, topic, reservationJobPayload{
		ReservationID:  res.ID(),
		OrganizationID: res.OrganizationID(),
		ClientID:       res.ClientID(),
		Status:         res.Status().String(),
		PaymentStatus:  string(res.Payment().Status),
		AmountCents:    res.Payment().AmountCents,
		StartsAt:       res.TimeSlot().Start(),
	}, now)
}

func enqueueJob(ctx context.Context, tx shared.Tx, kind, topic string, payload any, now time.Time) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to encode job payload")
	}
	if err := tx.Notifications().CreateJob(ctx, tx.DB(), kind, topic, data, now); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
