package loyalty

import (
	"errors"
	"regexp"
	"strings"

	"salon-booking/internal/pkg/randcode"
)

var ErrInvalidReferralCode = errors.New("referral code must be 6-12 uppercase letters or digits")

var referralCodeRegex = regexp.MustCompile(`^[A-Z0-9]{6,12}$`)

const generatedReferralCodeLength = 8

type ReferralCode struct {
	value string
}

func NewReferralCode(s string) (ReferralCode, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !referralCodeRegex.MatchString(s) {
		return ReferralCode{}, ErrInvalidReferralCode
	}
	return ReferralCode{value: s}, nil
}

func GenerateReferralCode() (ReferralCode, error) {
	s, err := randcode.Generate(generatedReferralCodeLength)
	if err != nil {
		return ReferralCode{}, err
	}
	return ReferralCode{value: s}, nil
}

func (c ReferralCode) Value() string { return c.value }
