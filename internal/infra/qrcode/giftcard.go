package qrcode

import (
	"fmt"
	"net/url"

	"salon-booking/internal/pkg/config"

	"github.com/skip2/go-qrcode"
)

// Encoder renders gift card codes as PNG QR codes pointing at the public verify page.
type Encoder struct {
	publicURL string
	size      int
	level     qrcode.RecoveryLevel
}

func NewEncoder(cfg config.GiftCardConfig) *Encoder {
	size := cfg.QRSize
	if size <= 0 {
		size = 256
	}
	return &Encoder{
		publicURL: cfg.PublicURL,
		size:      size,
		level:     recoveryLevel(cfg.QRLevel),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// Content is the text embedded in the QR code for a given gift card code.
func (e *Encoder) Content(code string) string {
	return e.publicURL + "?code=" + url.QueryEscape(code)
}

func (e *Encoder) GiftCardPNG(code string) ([]byte, error) {
	qr, err := qrcode.New(e.Content(code), e.level)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	png, err := qr.PNG(e.size)
	if err != nil {
		return nil, fmt.Errorf("failed to render QR code: %w", err)
	}
	return png, nil
}
