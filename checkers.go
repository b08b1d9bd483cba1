package accounts

import (
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/nyaruka/phonenumbers"
)

// OzzoEmailChecker adapts the ozzo-validation email rule to the
// EmailFormatChecker capability.
type OzzoEmailChecker struct{}

func NewOzzoEmailChecker() *OzzoEmailChecker {
	return &OzzoEmailChecker{}
}

func (OzzoEmailChecker) Valid(email string) (bool, error) {
	if email == "" {
		return false, nil
	}
	return is.Email.Validate(email) == nil, nil
}

// LibPhoneChecker validates numbers with libphonenumber. Region is the
// default ISO country applied to national-format input; leave it empty to
// require E.164 numbers.
type LibPhoneChecker struct {
	region string
}

func NewLibPhoneChecker(region string) *LibPhoneChecker {
	return &LibPhoneChecker{region: region}
}

func (c LibPhoneChecker) Valid(number string) (bool, error) {
	parsed, err := phonenumbers.Parse(number, c.region)
	if err != nil {
		return false, nil
	}
	return phonenumbers.IsValidNumber(parsed), nil
}
