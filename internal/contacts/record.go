// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package contacts

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// ErrNoBirthday is returned when a birthday calculation is requested for a
// record that has none.
var ErrNoBirthday = errors.New("contacts: no birthday set")

// Record is a single contact. The phone list never holds two equal numbers.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a record owning a fresh copy of phones. Duplicates are
// dropped the same way AddPhone drops them.
func NewRecord(name Name, phones ...Phone) *Record {
	r := &Record{name: name, phones: make([]Phone, 0, len(phones))}
	for _, p := range phones {
		r.AddPhone(p)
	}
	return r
}

func (r *Record) Name() Name { return r.name }

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []Phone { return slices.Clone(r.phones) }

// Birthday returns the stored birthday, if any.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

func (r *Record) indexOf(p Phone) int {
	return slices.IndexFunc(r.phones, func(q Phone) bool { return q.value == p.value })
}

// AddPhone appends p unless an equal number is already stored. It reports
// whether the phone was inserted.
func (r *Record) AddPhone(p Phone) bool {
	if r.indexOf(p) >= 0 {
		return false
	}
	r.phones = append(r.phones, p)
	return true
}

// DelPhone removes the phone equal to p and reports whether one was found.
func (r *Record) DelPhone(p Phone) bool {
	i := r.indexOf(p)
	if i < 0 {
		return false
	}
	r.phones = slices.Delete(r.phones, i, i+1)
	return true
}

// ChangePhone replaces old with replacement. Nothing changes when old is not
// stored.
func (r *Record) ChangePhone(old, replacement Phone) bool {
	if !r.DelPhone(old) {
		return false
	}
	r.AddPhone(replacement)
	return true
}

// SetBirthday stores b, replacing any previous value.
func (r *Record) SetBirthday(b Birthday) {
	r.birthday = &b
}

// DaysToBirthday counts whole days from now to the next occurrence of the
// stored month and day. A birthday falling on today yields 0.
func (r *Record) DaysToBirthday(now time.Time) (int, error) {
	if r.birthday == nil {
		return 0, ErrNoBirthday
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	bd := r.birthday.date
	next := time.Date(today.Year(), bd.Month(), bd.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(today) {
		next = time.Date(today.Year()+1, bd.Month(), bd.Day(), 0, 0, 0, 0, time.UTC)
	}
	return int(next.Sub(today).Hours() / 24), nil
}

func (r *Record) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: ", r.name)
	if len(r.phones) == 0 {
		b.WriteString("no phones")
	} else {
		values := make([]string, len(r.phones))
		for i, p := range r.phones {
			values[i] = p.value
		}
		fmt.Fprintf(&b, "phones %s", strings.Join(values, ", "))
	}
	if r.birthday != nil {
		fmt.Fprintf(&b, "; birthday %s", r.birthday)
	}
	return b.String()
}
