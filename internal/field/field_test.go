package field

import (
	"strings"
	"testing"
)

func TestNewName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple name", input: "John"},
		{name: "full name token", input: "John-Doe"},
		{name: "single rune", input: "J"},
		{name: "empty", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := NewName(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewName(%q) error = nil, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewName(%q) error = %v", tt.input, err)
			}
			if n.String() != tt.input {
				t.Errorf("String() = %q, want %q", n.String(), tt.input)
			}
		})
	}
}

func TestNewPhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "ten digits", input: "1234567890"},
		{name: "all zeros", input: "0000000000"},
		{name: "too short", input: "123456789", wantErr: true},
		{name: "too long", input: "12345678901", wantErr: true},
		{name: "letters", input: "12345abcde", wantErr: true},
		{name: "spaces", input: "123 456 78", wantErr: true},
		{name: "plus prefix", input: "+123456789", wantErr: true},
		{name: "decimal point", input: "123456789.", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPhone(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewPhone(%q) error = nil, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPhone(%q) error = %v", tt.input, err)
			}
			if p.String() != tt.input {
				t.Errorf("String() = %q, want %q", p.String(), tt.input)
			}
		})
	}
}

// TestNewPhone_Property checks the 10-digit rule against a sweep of inputs
// rather than hand-picked cases: accept iff len==10 and all decimal digits.
func TestNewPhone_Property(t *testing.T) {
	inputs := []string{
		"", "1", "12345", "1234567890", "9999999999", "12345678900",
		"123456789a", "a234567890", "١٢٣٤٥٦٧٨٩٠", "12.4567890", "-123456789",
	}
	for _, in := range inputs {
		valid := len(in) == 10 && in == strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, in)
		_, err := NewPhone(in)
		if got := err == nil; got != valid {
			t.Errorf("NewPhone(%q) accepted = %v, want %v", in, got, valid)
		}
	}
}

func TestNewBirthday(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid date", input: "15.06.1990"},
		{name: "leap day", input: "29.02.2020"},
		{name: "leap day in common year", input: "29.02.2021", wantErr: true},
		{name: "nonexistent day", input: "30.02.2020", wantErr: true},
		{name: "nonexistent month", input: "15.13.1990", wantErr: true},
		{name: "letters", input: "ab.cd.efgh", wantErr: true},
		{name: "wrong separator", input: "15/06/1990", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBirthday(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewBirthday(%q) error = nil, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewBirthday(%q) error = %v", tt.input, err)
			}
			if b.String() != tt.input {
				t.Errorf("String() = %q, want %q", b.String(), tt.input)
			}
		})
	}
}

func TestBirthday_Date(t *testing.T) {
	b, err := NewBirthday("15.06.1990")
	if err != nil {
		t.Fatalf("NewBirthday() error = %v", err)
	}
	d := b.Date()
	if d.Year() != 1990 || d.Month() != 6 || d.Day() != 15 {
		t.Errorf("Date() = %v, want 1990-06-15", d)
	}
}
