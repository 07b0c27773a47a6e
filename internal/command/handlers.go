package command

import (
	"fmt"
	"strings"

	"github.com/smileynet/rolo/internal/book"
)

// addContact creates a record with the given name and phone and stores it.
// Adding under an existing name replaces the whole record.
func (d *Dispatcher) addContact(args []string) (string, error) {
	if len(args) != 2 {
		return "", ErrBadInput
	}
	rec, err := book.NewRecord(args[0])
	if err != nil {
		return "", err
	}
	if err := rec.AddPhone(args[1]); err != nil {
		return "", err
	}
	d.book.Add(rec)
	return "Contact added.", nil
}

// changeContact appends a new phone to an existing record. The prior
// phones are kept; change is additive, not a replacement.
func (d *Dispatcher) changeContact(args []string) (string, error) {
	if len(args) != 2 {
		return "", ErrBadInput
	}
	rec, ok := d.book.Find(args[0])
	if !ok {
		return "", &NotFoundError{Name: args[0]}
	}
	if err := rec.AddPhone(args[1]); err != nil {
		return "", err
	}
	return "Contact updated.", nil
}

// showPhone returns the first phone of the named record.
func (d *Dispatcher) showPhone(args []string) (string, error) {
	if len(args) != 1 {
		return "", ErrBadFormat
	}
	rec, ok := d.book.Find(args[0])
	if !ok {
		return "", &NotFoundError{Name: args[0]}
	}
	phone, ok := rec.FirstPhone()
	if !ok {
		return "", ErrBadFormat
	}
	return phone.String(), nil
}

// showAll lists every contact with its first phone, one per line.
func (d *Dispatcher) showAll() string {
	if d.book.Len() == 0 {
		return "No contacts found."
	}
	var lines []string
	for _, name := range d.book.Names() {
		rec, _ := d.book.Find(name)
		phone, ok := rec.FirstPhone()
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", name, phone))
	}
	return strings.Join(lines, "\n")
}

// addBirthday sets the birthday on an existing record.
func (d *Dispatcher) addBirthday(args []string) (string, error) {
	if len(args) != 2 {
		return "", ErrBadInput
	}
	rec, ok := d.book.Find(args[0])
	if !ok {
		return "", &NotFoundError{Name: args[0]}
	}
	if err := rec.AddBirthday(args[1]); err != nil {
		return "", err
	}
	return "Birthday added.", nil
}

// showBirthday returns the birthday of the named record.
func (d *Dispatcher) showBirthday(args []string) (string, error) {
	if len(args) != 1 {
		return "", ErrBadFormat
	}
	rec, ok := d.book.Find(args[0])
	if !ok {
		return "", &NotFoundError{Name: args[0]}
	}
	bday, ok := rec.Birthday()
	if !ok {
		return "Birthday is not set.", nil
	}
	return bday.String(), nil
}

// birthdays reports upcoming birthdays grouped by weekday, day groups in
// calendar order starting from today.
func (d *Dispatcher) birthdays() string {
	today := d.now()
	byDay := d.book.UpcomingBirthdays(today)
	if len(byDay) == 0 {
		return "No birthdays in the next week."
	}

	lines := []string{"Birthdays in the next week:"}
	for i := 0; i < 7; i++ {
		day := today.AddDate(0, 0, i).Weekday().String()
		names, ok := byDay[day]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", day, strings.Join(names, ", ")))
	}
	return strings.Join(lines, "\n")
}
