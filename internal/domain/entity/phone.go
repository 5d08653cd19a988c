package entity

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
	"github.com/pkg/errors"
)

// DefaultPhoneRegion is used for numbers written without a country code.
const DefaultPhoneRegion = "RU"

// ErrInvalidPhoneNumber is returned for numbers that do not parse or are not
// assigned in their region.
var ErrInvalidPhoneNumber = errors.New("invalid phone number")

// NormalizePhoneNumber parses raw in the given region and returns its E.164 form.
func NormalizePhoneNumber(raw, region string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidPhoneNumber
	}
	if region == "" {
		region = DefaultPhoneRegion
	}

	number, err := phonenumbers.Parse(raw, strings.ToUpper(region))
	if err != nil {
		return "", errors.Wrapf(ErrInvalidPhoneNumber, "parse %q: %v", raw, err)
	}
	if !phonenumbers.IsValidNumber(number) {
		return "", errors.Wrapf(ErrInvalidPhoneNumber, "%q is not a valid number", raw)
	}

	return phonenumbers.Format(number, phonenumbers.E164), nil
}
