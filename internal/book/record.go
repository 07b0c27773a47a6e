// Package book implements the in-memory contact directory: individual
// records, the name-keyed book that holds them, and the upcoming-birthday
// scan. Nothing here is persisted; the book lives and dies with the process.
package book

import (
	"fmt"
	"strings"

	"github.com/smileynet/rolo/internal/field"
)

// Record is one contact: a name, its phone numbers in the order they were
// added, and an optional birthday.
type Record struct {
	name     field.Name
	phones   []field.Phone
	birthday *field.Birthday
}

// NewRecord creates a record for the given name.
func NewRecord(name string) (*Record, error) {
	n, err := field.NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the contact's name.
func (r *Record) Name() string {
	return r.name.String()
}

// AddPhone validates phone and appends it. Duplicates are allowed; an
// existing phone with the same value is never replaced.
func (r *Record) AddPhone(phone string) error {
	p, err := field.NewPhone(phone)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes every phone equal to phone.
func (r *Record) RemovePhone(phone string) {
	kept := r.phones[:0]
	for _, p := range r.phones {
		if p.String() != phone {
			kept = append(kept, p)
		}
	}
	r.phones = kept
}

// EditPhone replaces the first phone equal to oldPhone with newPhone.
// The replacement is validated; a missing oldPhone is a silent no-op.
func (r *Record) EditPhone(oldPhone, newPhone string) error {
	p, err := field.NewPhone(newPhone)
	if err != nil {
		return err
	}
	for i := range r.phones {
		if r.phones[i].String() == oldPhone {
			r.phones[i] = p
			break
		}
	}
	return nil
}

// FindPhone returns the first phone equal to phone.
func (r *Record) FindPhone(phone string) (field.Phone, bool) {
	for _, p := range r.phones {
		if p.String() == phone {
			return p, true
		}
	}
	return field.Phone{}, false
}

// Phones returns the record's phones in insertion order.
func (r *Record) Phones() []field.Phone {
	return r.phones
}

// FirstPhone returns the phone that was added first.
func (r *Record) FirstPhone() (field.Phone, bool) {
	if len(r.phones) == 0 {
		return field.Phone{}, false
	}
	return r.phones[0], true
}

// AddBirthday validates birthday and sets it, overwriting any previous one.
func (r *Record) AddBirthday(birthday string) error {
	b, err := field.NewBirthday(birthday)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// Birthday returns the contact's birthday, if one is set.
func (r *Record) Birthday() (field.Birthday, bool) {
	if r.birthday == nil {
		return field.Birthday{}, false
	}
	return *r.birthday, true
}

// String renders the record as a single display line.
func (r *Record) String() string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s", r.name, strings.Join(phones, "; "))
}
