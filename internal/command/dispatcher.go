// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package command

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"contact-book/internal/config"
	"contact-book/internal/contacts"
	"contact-book/internal/logger"
)

const (
	greetingText = "Hello! How can I help you?"
	farewellText = "Good bye!"
	unknownText  = "Unknown command, try again or write 'help'!"
	emptyText    = "Contacts are empty"
)

// Reply is the outcome of one input line.
type Reply struct {
	Kind Kind
	Text string
	Err  error // set when Text was produced by Describe
	Exit bool
}

// Dispatcher owns the address book for the lifetime of a session and runs
// commands against it.
type Dispatcher struct {
	book     *contacts.AddressBook
	pageSize int
	now      func() time.Time
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithPageSize sets how many records "show all" puts in one block.
func WithPageSize(n int) Option {
	return func(d *Dispatcher) {
		if n > 0 {
			d.pageSize = n
		}
	}
}

// WithClock replaces time.Now for birthday calculations.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) { d.now = now }
}

func NewDispatcher(book *contacts.AddressBook, opts ...Option) *Dispatcher {
	d := &Dispatcher{book: book, pageSize: config.DefaultPageSize, now: time.Now}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Book returns the address book the dispatcher operates on.
func (d *Dispatcher) Book() *contacts.AddressBook { return d.book }

// Handle parses and runs one input line. Every failure is converted to text,
// so callers only print Reply.Text and stop when Reply.Exit is set.
func (d *Dispatcher) Handle(line string) Reply {
	cmd, err := Parse(line)
	if err != nil {
		var missing *MissingArgumentError
		kind := KindUnknown
		if errors.As(err, &missing) {
			kind = missing.Kind
		}
		logger.Info("command rejected", "kind", kind.String(), "error", err)
		return Reply{Kind: kind, Text: Describe(err), Err: err}
	}

	logger.Debug("dispatching command", "kind", cmd.Kind().String())
	text, err := d.Dispatch(cmd)
	if err != nil {
		logger.Info("command failed", "kind", cmd.Kind().String(), "error", err)
		return Reply{Kind: cmd.Kind(), Text: Describe(err), Err: err}
	}
	return Reply{Kind: cmd.Kind(), Text: text, Exit: cmd.Kind() == KindExit}
}

// Dispatch runs cmd and returns its output text.
func (d *Dispatcher) Dispatch(cmd Command) (string, error) {
	switch c := cmd.(type) {
	case Greeting:
		return greetingText, nil
	case Add:
		return d.add(c)
	case Change:
		return d.change(c)
	case Find:
		return d.find(c)
	case SetBirthday:
		return d.setBirthday(c)
	case Birthday:
		return d.birthday(c)
	case ShowAll:
		return d.showAll(), nil
	case Exit:
		return farewellText, nil
	case Delete:
		return d.delete(c)
	case Drop:
		return d.drop(c)
	case Help:
		return HelpText(), nil
	case Unknown:
		return unknownText, nil
	default:
		return "", fmt.Errorf("unhandled command type %T", cmd)
	}
}

func (d *Dispatcher) lookup(name string) (*contacts.Record, error) {
	rec, ok := d.book.Find(name)
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return rec, nil
}

func (d *Dispatcher) add(c Add) (string, error) {
	name, err := contacts.NewName(c.Name)
	if err != nil {
		return "", err
	}
	phone, err := contacts.NewPhone(c.Phone)
	if err != nil {
		return "", err
	}
	rec := contacts.NewRecord(name, phone)
	if c.Birthday != "" {
		bd, err := contacts.NewBirthday(c.Birthday)
		if err != nil {
			return "", err
		}
		rec.SetBirthday(bd)
	}
	if !d.book.AddRecord(rec) {
		return fmt.Sprintf("Contact %s already in contact list", name), nil
	}
	return fmt.Sprintf("Contact %s successfully added!", name), nil
}

func (d *Dispatcher) change(c Change) (string, error) {
	rec, err := d.lookup(c.Name)
	if err != nil {
		return "", err
	}
	oldPhone, err := contacts.NewPhone(c.OldPhone)
	if err != nil {
		return "", err
	}
	newPhone, err := contacts.NewPhone(c.NewPhone)
	if err != nil {
		return "", err
	}
	if !rec.ChangePhone(oldPhone, newPhone) {
		return fmt.Sprintf("Contact %s has no phone %s", rec.Name(), oldPhone), nil
	}
	return fmt.Sprintf("Contact %s has changed successfully.", rec.Name()), nil
}

func (d *Dispatcher) find(c Find) (string, error) {
	rec, err := d.lookup(c.Name)
	if err != nil {
		return "", err
	}
	return rec.String(), nil
}

func (d *Dispatcher) setBirthday(c SetBirthday) (string, error) {
	rec, err := d.lookup(c.Name)
	if err != nil {
		return "", err
	}
	bd, err := contacts.NewBirthday(c.Birthday)
	if err != nil {
		return "", err
	}
	rec.SetBirthday(bd)
	return fmt.Sprintf("Birthday of %s set to %s", rec.Name(), bd), nil
}

func (d *Dispatcher) birthday(c Birthday) (string, error) {
	rec, err := d.lookup(c.Name)
	if err != nil {
		return "", err
	}
	days, err := rec.DaysToBirthday(d.now())
	if errors.Is(err, contacts.ErrNoBirthday) {
		return fmt.Sprintf("Contact %s has no birthday set", rec.Name()), nil
	}
	if err != nil {
		return "", err
	}
	switch days {
	case 0:
		return fmt.Sprintf("%s's birthday is today!", rec.Name()), nil
	case 1:
		return fmt.Sprintf("1 day until %s's birthday", rec.Name()), nil
	default:
		return fmt.Sprintf("%d days until %s's birthday", days, rec.Name()), nil
	}
}

func (d *Dispatcher) showAll() string {
	var blocks []string
	for block := range d.book.PaginatedView(d.pageSize) {
		blocks = append(blocks, block)
	}
	if len(blocks) == 0 {
		return emptyText
	}
	return strings.Join(blocks, "\n")
}

func (d *Dispatcher) delete(c Delete) (string, error) {
	rec, err := d.lookup(c.Name)
	if err != nil {
		return "", err
	}
	phone, err := contacts.NewPhone(c.Phone)
	if err != nil {
		return "", err
	}
	if !rec.DelPhone(phone) {
		return fmt.Sprintf("Contact %s has no phone %s", rec.Name(), phone), nil
	}
	return fmt.Sprintf("Phone %s has been deleted from contact %s.", phone, rec.Name()), nil
}

func (d *Dispatcher) drop(c Drop) (string, error) {
	rec, ok := d.book.DelRecord(c.Name)
	if !ok {
		return "", &NotFoundError{Name: c.Name}
	}
	return fmt.Sprintf("Contact %s has been removed.", rec.Name()), nil
}

// HelpText lists every command with its trigger words.
func HelpText() string {
	rows := []struct {
		kind Kind
		what string
	}{
		{KindGreeting, "greeting"},
		{KindAdd, "add a new contact"},
		{KindChange, "change a phone"},
		{KindFind, "find a contact"},
		{KindSetBirthday, "set a birthday"},
		{KindBirthday, "days until a birthday"},
		{KindShowAll, "show all contacts"},
		{KindDelete, "delete a phone from a contact"},
		{KindDrop, "remove a whole contact"},
		{KindExit, "exit the program"},
		{KindHelp, "open this list"},
	}
	var b strings.Builder
	for _, r := range rows {
		quoted := make([]string, 0, len(Triggers(r.kind)))
		for _, p := range Triggers(r.kind) {
			quoted = append(quoted, fmt.Sprintf("%q", p))
		}
		fmt.Fprintf(&b, "Enter %s to %s: %s\n", strings.Join(quoted, ", "), r.what, Usage(r.kind))
	}
	return strings.TrimRight(b.String(), "\n")
}
