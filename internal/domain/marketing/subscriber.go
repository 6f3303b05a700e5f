package marketing

import (
	"time"

	"salon-booking/internal/domain/user"

	"github.com/google/uuid"
)

type Subscriber struct {
	id             uuid.UUID
	organizationID uuid.UUID
	email          string
	subscribedAt   time.Time
}

func NewSubscriber(organizationID uuid.UUID, email string, now time.Time) (*Subscriber, error) {
	e, err := user.NewEmail(email)
	if err != nil {
		return nil, err
	}
	return &Subscriber{
		id:             uuid.New(),
		organizationID: organizationID,
		email:          e.Value(),
		subscribedAt:   now,
	}, nil
}

func (s *Subscriber) ID() uuid.UUID             { return s.id }
func (s *Subscriber) OrganizationID() uuid.UUID { return s.organizationID }
func (s *Subscriber) Email() string             { return s.email }
func (s *Subscriber) SubscribedAt() time.Time   { return s.subscribedAt }
