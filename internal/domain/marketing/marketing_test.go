//go:build unit

package marketing_test

import (
	"strings"
	"testing"
	"time"

	"salon-booking/internal/domain/marketing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

func TestEmailTemplate(t *testing.T) {
	t.Run("renders placeholders and escapes body values", func(t *testing.T) {
		tmpl, err := marketing.NewEmailTemplate(uuid.New(), "Spring offer", "Hello {{.FirstName}}!", "<p>Dear {{.FirstName}}, see you at {{.Salon}}.</p>", now)
		require.NoError(t, err)

		subject, body, err := tmpl.Render(marketing.Recipient{FirstName: "Léa<script>", Salon: "Spa Lumière"})
		require.NoError(t, err)
		assert.Equal(t, "Hello Léa<script>!", subject)
		assert.Contains(t, body, "Léa&lt;script&gt;")
		assert.Contains(t, body, "Spa Lumière")
	})

	t.Run("broken template rejected at save time", func(t *testing.T) {
		_, err := marketing.NewEmailTemplate(uuid.New(), "Broken", "Hi {{.FirstName", "<p>body</p>", now)
		require.ErrorIs(t, err, marketing.ErrTemplateSyntax)

		_, err = marketing.NewEmailTemplate(uuid.New(), "Broken", "Hi", "<p>{{if}}</p>", now)
		require.ErrorIs(t, err, marketing.ErrTemplateSyntax)
	})

	t.Run("unknown field fails at render", func(t *testing.T) {
		tmpl, err := marketing.NewEmailTemplate(uuid.New(), "Typo", "Hi {{.Nickname}}", "<p>x</p>", now)
		require.NoError(t, err)

		_, _, err = tmpl.Render(marketing.Recipient{})
		require.ErrorIs(t, err, marketing.ErrTemplateSyntax)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := marketing.NewEmailTemplate(uuid.New(), " ", "s", "b", now)
		require.ErrorIs(t, err, marketing.ErrInvalidTemplateName)
		_, err = marketing.NewEmailTemplate(uuid.New(), "n", strings.Repeat("s", 201), "b", now)
		require.ErrorIs(t, err, marketing.ErrInvalidSubject)
		_, err = marketing.NewEmailTemplate(uuid.New(), "n", "s", "  ", now)
		require.ErrorIs(t, err, marketing.ErrEmptyBody)
	})
}

func TestSocialPost(t *testing.T) {
	later := now.Add(24 * time.Hour)

	t.Run("scheduled post", func(t *testing.T) {
		p, err := marketing.NewSocialPost(uuid.New(), marketing.PlatformInstagram, "New spring menu", nil, &later, now)
		require.NoError(t, err)
		assert.Equal(t, marketing.PostScheduled, p.Status())
	})

	t.Run("publish once", func(t *testing.T) {
		p, err := marketing.NewSocialPost(uuid.New(), marketing.PlatformFacebook, "Open on Sunday", nil, nil, now)
		require.NoError(t, err)
		assert.Equal(t, marketing.PostDraft, p.Status())

		require.NoError(t, p.Publish(now))
		assert.Equal(t, marketing.PostPublished, p.Status())
		require.ErrorIs(t, p.Publish(now), marketing.ErrAlreadyPublished)
		require.ErrorIs(t, p.Edit(marketing.PlatformFacebook, "edit", nil, nil, now), marketing.ErrAlreadyPublished)
	})

	t.Run("validation", func(t *testing.T) {
		past := now.Add(-time.Minute)
		_, err := marketing.NewSocialPost(uuid.New(), marketing.PlatformTikTok, "x", nil, &past, now)
		require.ErrorIs(t, err, marketing.ErrInvalidSchedule)
		_, err = marketing.NewSocialPost(uuid.New(), marketing.PlatformTikTok, "", nil, nil, now)
		require.ErrorIs(t, err, marketing.ErrInvalidContent)
		_, err = marketing.ParsePlatform("myspace")
		require.ErrorIs(t, err, marketing.ErrInvalidPlatform)
	})
}

func TestNewSubscriber(t *testing.T) {
	s, err := marketing.NewSubscriber(uuid.New(), " Someone@Example.com ", now)
	require.NoError(t, err)
	assert.Equal(t, "someone@example.com", s.Email())

	_, err = marketing.NewSubscriber(uuid.New(), "not-an-email", now)
	require.Error(t, err)
}
