// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package command turns free-text input into typed commands and runs them
// against an address book.
package command

import (
	"strings"
)

// Kind identifies a command variant.
type Kind int

const (
	KindUnknown Kind = iota
	KindGreeting
	KindAdd
	KindChange
	KindFind
	KindSetBirthday
	KindBirthday
	KindShowAll
	KindExit
	KindDelete
	KindDrop
	KindHelp
)

var kindNames = map[Kind]string{
	KindUnknown:     "unknown",
	KindGreeting:    "greeting",
	KindAdd:         "add",
	KindChange:      "change",
	KindFind:        "find",
	KindSetBirthday: "set-birthday",
	KindBirthday:    "birthday",
	KindShowAll:     "show-all",
	KindExit:        "exit",
	KindDelete:      "delete",
	KindDrop:        "drop",
	KindHelp:        "help",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Command is one parsed user request. The concrete types below are the
// only implementations.
type Command interface {
	Kind() Kind
}

type (
	Greeting struct{}
	Add      struct {
		Name     string
		Phone    string
		Birthday string // optional
	}
	Change struct {
		Name     string
		OldPhone string
		NewPhone string
	}
	Find        struct{ Name string }
	SetBirthday struct{ Name, Birthday string }
	Birthday    struct{ Name string }
	ShowAll     struct{}
	Exit        struct{}
	Delete      struct{ Name, Phone string }
	Drop        struct{ Name string }
	Help        struct{}
	Unknown     struct{ Input string }
)

func (Greeting) Kind() Kind    { return KindGreeting }
func (Add) Kind() Kind         { return KindAdd }
func (Change) Kind() Kind      { return KindChange }
func (Find) Kind() Kind        { return KindFind }
func (SetBirthday) Kind() Kind { return KindSetBirthday }
func (Birthday) Kind() Kind    { return KindBirthday }
func (ShowAll) Kind() Kind     { return KindShowAll }
func (Exit) Kind() Kind        { return KindExit }
func (Delete) Kind() Kind      { return KindDelete }
func (Drop) Kind() Kind        { return KindDrop }
func (Help) Kind() Kind        { return KindHelp }
func (Unknown) Kind() Kind     { return KindUnknown }

// trigger binds a command kind to the literal prefixes that select it.
type trigger struct {
	kind     Kind
	prefixes []string
	args     int // required positional arguments
	usage    string
}

// triggers is checked top to bottom and the first matching prefix wins, so
// order matters: "show birth" must be seen before "show", and "delete"
// before "del", "birthday" before "birth".
var triggers = []trigger{
	{KindGreeting, []string{"hello", "hi"}, 0, "hello"},
	{KindAdd, []string{"add", "new"}, 2, "add <name> <phone> [DD.MM.YYYY]"},
	{KindChange, []string{"change", "replace"}, 3, "change <name> <old phone> <new phone>"},
	{KindFind, []string{"phone", "number", "find"}, 1, "find <name>"},
	{KindSetBirthday, []string{"set birth", "bday"}, 2, "bday <name> <DD.MM.YYYY>"},
	{KindBirthday, []string{"birthday", "birth", "show birth", "days"}, 1, "birth <name>"},
	{KindShowAll, []string{"show all", "show"}, 0, "show all"},
	{KindExit, []string{"good bye", "close", "exit", ".", "bye", "stop"}, 0, "exit"},
	{KindDelete, []string{"delete", "remove", "del"}, 2, "delete <name> <phone>"},
	{KindDrop, []string{"drop", "forget"}, 1, "drop <name>"},
	{KindHelp, []string{"help"}, 0, "help"},
}

// Usage returns the argument pattern for kind.
func Usage(kind Kind) string {
	for _, t := range triggers {
		if t.kind == kind {
			return t.usage
		}
	}
	return ""
}

// Triggers returns the prefixes bound to kind in match order.
func Triggers(kind Kind) []string {
	for _, t := range triggers {
		if t.kind == kind {
			return append([]string(nil), t.prefixes...)
		}
	}
	return nil
}

// match finds the first trigger whose prefix starts line, ignoring case, and
// returns it with the whitespace-split remainder.
func match(line string) (trigger, []string) {
	for _, t := range triggers {
		for _, p := range t.prefixes {
			if len(line) >= len(p) && strings.EqualFold(line[:len(p)], p) {
				return t, strings.Fields(line[len(p):])
			}
		}
	}
	return trigger{kind: KindUnknown}, nil
}

// Parse converts one input line into a Command. It fails with a
// *MissingArgumentError when the matched command needs more positional
// arguments than the line supplies. Unmatched input yields Unknown.
func Parse(line string) (Command, error) {
	line = strings.TrimLeft(line, " \t")
	t, args := match(line)
	if len(args) < t.args {
		return nil, &MissingArgumentError{Kind: t.kind, Usage: t.usage}
	}

	switch t.kind {
	case KindGreeting:
		return Greeting{}, nil
	case KindAdd:
		c := Add{Name: args[0], Phone: args[1]}
		if len(args) > 2 {
			c.Birthday = args[2]
		}
		return c, nil
	case KindChange:
		return Change{Name: args[0], OldPhone: args[1], NewPhone: args[2]}, nil
	case KindFind:
		return Find{Name: args[0]}, nil
	case KindSetBirthday:
		return SetBirthday{Name: args[0], Birthday: args[1]}, nil
	case KindBirthday:
		return Birthday{Name: args[0]}, nil
	case KindShowAll:
		return ShowAll{}, nil
	case KindExit:
		return Exit{}, nil
	case KindDelete:
		return Delete{Name: args[0], Phone: args[1]}, nil
	case KindDrop:
		return Drop{Name: args[0]}, nil
	case KindHelp:
		return Help{}, nil
	default:
		return Unknown{Input: line}, nil
	}
}
