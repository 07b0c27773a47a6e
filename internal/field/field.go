// Package field defines the validated value types a contact record is built
// from: Name, Phone, and Birthday. Each type can only be constructed through
// its New function, so a held value is always valid.
package field

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

// Sentinel errors for caller-checkable validation failures.
var (
	ErrInvalidName     = errors.New("field: name cannot be empty")
	ErrInvalidPhone    = errors.New("field: invalid phone number format")
	ErrInvalidBirthday = errors.New("field: invalid birthday format, use DD.MM.YYYY")
)

// birthdayLayout is the textual date form a birthday is entered and shown in.
const birthdayLayout = "02.01.2006"

var validate = validator.New()

// Name is a contact's non-empty display name.
type Name struct {
	value string
}

// NewName validates s and returns it as a Name.
func NewName(s string) (Name, error) {
	if err := validate.Var(s, "required"); err != nil {
		return Name{}, ErrInvalidName
	}
	return Name{value: s}, nil
}

func (n Name) String() string {
	return n.value
}

// Phone is a phone number of exactly ten decimal digits.
type Phone struct {
	value string
}

// NewPhone validates s and returns it as a Phone.
func NewPhone(s string) (Phone, error) {
	if err := validate.Var(s, "required,len=10,number"); err != nil {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: s}, nil
}

func (p Phone) String() string {
	return p.value
}

// Birthday is a calendar date entered as DD.MM.YYYY.
type Birthday struct {
	date time.Time
}

// NewBirthday parses s as a real calendar date in DD.MM.YYYY form.
// Out-of-range dates like 30.02.2020 are rejected.
func NewBirthday(s string) (Birthday, error) {
	d, err := time.Parse(birthdayLayout, s)
	if err != nil {
		return Birthday{}, ErrInvalidBirthday
	}
	return Birthday{date: d}, nil
}

// Date returns the birthday as a UTC midnight time value for date arithmetic.
func (b Birthday) Date() time.Time {
	return b.date
}

func (b Birthday) String() string {
	return b.date.Format(birthdayLayout)
}
