package giftcard

import (
	"errors"
	"regexp"
	"strings"

	"salon-booking/internal/pkg/randcode"
)

var ErrInvalidCode = errors.New("gift card code must be 8-16 uppercase letters or digits")

var codeRegex = regexp.MustCompile(`^[A-Z0-9]{8,16}$`)

const generatedCodeLength = 12

type Code struct {
	value string
}

// NewCode normalises user input: case and surrounding or grouping whitespace/dashes are ignored.
func NewCode(s string) (Code, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.NewReplacer("-", "", " ", "").Replace(s)
	if !codeRegex.MatchString(s) {
		return Code{}, ErrInvalidCode
	}
	return Code{value: s}, nil
}

func GenerateCode() (Code, error) {
	s, err := randcode.Generate(generatedCodeLength)
	if err != nil {
		return Code{}, err
	}
	return Code{value: s}, nil
}

func (c Code) Value() string { return c.value }
