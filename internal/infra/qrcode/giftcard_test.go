//go:build unit

package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"salon-booking/internal/pkg/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoder_GiftCardPNG(t *testing.T) {
	enc := NewEncoder(config.GiftCardConfig{
		QRSize:    128,
		QRLevel:   "H",
		PublicURL: "https://salon.example/gift-cards",
	})

	data, err := enc.GiftCardPNG("GIFT-ABCD-1234")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
	assert.Equal(t, 128, img.Bounds().Dy())
}

func TestEncoder_Content(t *testing.T) {
	enc := NewEncoder(config.GiftCardConfig{PublicURL: "https://salon.example/gift-cards"})

	assert.Equal(t, "https://salon.example/gift-cards?code=GIFT+A%261", enc.Content("GIFT A&1"))
	assert.Equal(t, 256, enc.size)
}

func TestRecoveryLevel(t *testing.T) {
	tests := map[string]qrcode.RecoveryLevel{
		"L":  qrcode.Low,
		"M":  qrcode.Medium,
		"Q":  qrcode.High,
		"H":  qrcode.Highest,
		"":   qrcode.Medium,
		"XX": qrcode.Medium,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, recoveryLevel(in))
		})
	}
}
