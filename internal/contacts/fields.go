// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package contacts holds the contact book itself: validated fields, records
// and the address book that owns them.
package contacts

import (
	"fmt"
	"regexp"
	"time"
)

// BirthdayLayout is the only accepted birthday format (DD.MM.YYYY).
const BirthdayLayout = "02.01.2006"

var (
	nameRe  = regexp.MustCompile(`^[a-zA-Z]{1,16}$`)
	phoneRe = regexp.MustCompile(`^[0-9]{10}$`)
)

// ValidationError reports a field value that does not match its format.
type ValidationError struct {
	Field string
	Value string
	Rule  string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Rule)
}

// Name is a contact name: 1 to 16 latin letters.
type Name struct{ value string }

// NewName validates raw and returns it as a Name.
func NewName(raw string) (Name, error) {
	if !nameRe.MatchString(raw) {
		return Name{}, &ValidationError{Field: "name", Value: raw, Rule: "expected 1-16 letters"}
	}
	return Name{value: raw}, nil
}

func (n Name) Value() string  { return n.value }
func (n Name) String() string { return n.value }

// Phone is a ten digit phone number.
type Phone struct{ value string }

// NewPhone validates raw and returns it as a Phone.
func NewPhone(raw string) (Phone, error) {
	if !phoneRe.MatchString(raw) {
		return Phone{}, &ValidationError{Field: "phone", Value: raw, Rule: "expected exactly 10 digits"}
	}
	return Phone{value: raw}, nil
}

func (p Phone) Value() string  { return p.value }
func (p Phone) String() string { return p.value }

// Birthday is a calendar date without time of day.
type Birthday struct{ date time.Time }

// NewBirthday parses raw in DD.MM.YYYY form.
func NewBirthday(raw string) (Birthday, error) {
	t, err := time.Parse(BirthdayLayout, raw)
	if err != nil {
		return Birthday{}, &ValidationError{Field: "birthday", Value: raw, Rule: "expected DD.MM.YYYY"}
	}
	return Birthday{date: t}, nil
}

// Date returns the birthday at midnight UTC.
func (b Birthday) Date() time.Time { return b.date }

func (b Birthday) String() string { return b.date.Format(BirthdayLayout) }
