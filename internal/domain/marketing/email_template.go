package marketing

import (
	"bytes"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrInvalidTemplateName = errors.New("template name must be between 1 and 100 characters")
	ErrInvalidSubject      = errors.New("subject must be between 1 and 200 characters")
	ErrEmptyBody           = errors.New("template body cannot be empty")
	ErrTemplateSyntax      = errors.New("template does not parse")
)

// Recipient is the data a template is rendered with.
type Recipient struct {
	Email     string
	FirstName string
	LastName  string
	Salon     string
}

type EmailTemplate struct {
	id             uuid.UUID
	organizationID uuid.UUID
	name           string
	subject        string
	bodyHTML       string
	createdAt      time.Time
	updatedAt      time.Time

	subjectTmpl *texttemplate.Template
	bodyTmpl    *htmltemplate.Template
}

// NewEmailTemplate parses subject and body so a broken template is rejected at save time.
func NewEmailTemplate(organizationID uuid.UUID, name, subject, bodyHTML string, now time.Time) (*EmailTemplate, error) {
	t := &EmailTemplate{
		id:             uuid.New(),
		organizationID: organizationID,
		createdAt:      now,
		updatedAt:      now,
	}
	if err := t.set(name, subject, bodyHTML); err != nil {
		return nil, err
	}
	return t, nil
}

func ReconstructEmailTemplate(id, organizationID uuid.UUID, name, subject, bodyHTML string, createdAt, updatedAt time.Time) (*EmailTemplate, error) {
	t := &EmailTemplate{
		id:             id,
		organizationID: organizationID,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
	if err := t.set(name, subject, bodyHTML); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *EmailTemplate) Update(name, subject, bodyHTML string, now time.Time) error {
	if err := t.set(name, subject, bodyHTML); err != nil {
		return err
	}
	t.updatedAt = now
	return nil
}

func (t *EmailTemplate) set(name, subject, bodyHTML string) error {
	name = strings.TrimSpace(name)
	subject = strings.TrimSpace(subject)
	if name == "" || utf8.RuneCountInString(name) > 100 {
		return ErrInvalidTemplateName
	}
	if subject == "" || utf8.RuneCountInString(subject) > 200 {
		return ErrInvalidSubject
	}
	if strings.TrimSpace(bodyHTML) == "" {
		return ErrEmptyBody
	}

	st, err := texttemplate.New("subject").Option("missingkey=error").Parse(subject)
	if err != nil {
		return fmt.Errorf("%w: subject: %v", ErrTemplateSyntax, err)
	}
	bt, err := htmltemplate.New("body").Option("missingkey=error").Parse(bodyHTML)
	if err != nil {
		return fmt.Errorf("%w: body: %v", ErrTemplateSyntax, err)
	}

	t.name, t.subject, t.bodyHTML = name, subject, bodyHTML
	t.subjectTmpl, t.bodyTmpl = st, bt
	return nil
}

// Render returns the subject and HTML body for one recipient. Recipient
// values are escaped in the body.
func (t *EmailTemplate) Render(r Recipient) (string, string, error) {
	var subj, body bytes.Buffer
	if err := t.subjectTmpl.Execute(&subj, r); err != nil {
		return "", "", fmt.Errorf("%w: subject: %v", ErrTemplateSyntax, err)
	}
	if err := t.bodyTmpl.Execute(&body, r); err != nil {
		return "", "", fmt.Errorf("%w: body: %v", ErrTemplateSyntax, err)
	}
	return subj.String(), body.String(), nil
}

func (t *EmailTemplate) ID() uuid.UUID             { return t.id }
func (t *EmailTemplate) OrganizationID() uuid.UUID { return t.organizationID }
func (t *EmailTemplate) Name() string              { return t.name }
func (t *EmailTemplate) Subject() string           { return t.subject }
func (t *EmailTemplate) BodyHTML() string          { return t.bodyHTML }
func (t *EmailTemplate) CreatedAt() time.Time      { return t.createdAt }
func (t *EmailTemplate) UpdatedAt() time.Time      { return t.updatedAt }
