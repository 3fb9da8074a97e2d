// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package command

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Command
	}{
		{name: "hello", input: "hello", want: Greeting{}},
		{name: "hi ignores case and trailing text", input: "HI there", want: Greeting{}},
		{name: "prefix match without word boundary", input: "history", want: Greeting{}},
		{name: "add with birthday", input: "add Ivan 0987678989 12.05.1985", want: Add{Name: "Ivan", Phone: "0987678989", Birthday: "12.05.1985"}},
		{name: "new without birthday", input: "new Ivan 0987678989", want: Add{Name: "Ivan", Phone: "0987678989"}},
		{name: "extra arguments ignored", input: "add Ivan 0987678989 12.05.1985 extra", want: Add{Name: "Ivan", Phone: "0987678989", Birthday: "12.05.1985"}},
		{name: "add keeps argument case", input: "ADD Ivan 0987678989", want: Add{Name: "Ivan", Phone: "0987678989"}},
		{name: "change", input: "change Ivan 0987678989 0987678990", want: Change{Name: "Ivan", OldPhone: "0987678989", NewPhone: "0987678990"}},
		{name: "replace", input: "replace Ivan 0987678989 0987678990", want: Change{Name: "Ivan", OldPhone: "0987678989", NewPhone: "0987678990"}},
		{name: "phone", input: "phone Ivan", want: Find{Name: "Ivan"}},
		{name: "number", input: "number Ivan", want: Find{Name: "Ivan"}},
		{name: "find upper case", input: "FIND Ivan", want: Find{Name: "Ivan"}},
		{name: "set birth", input: "set birth Ivan 12.05.1985", want: SetBirthday{Name: "Ivan", Birthday: "12.05.1985"}},
		{name: "bday", input: "bday Ivan 12.05.1985", want: SetBirthday{Name: "Ivan", Birthday: "12.05.1985"}},
		{name: "birth", input: "birth Ivan", want: Birthday{Name: "Ivan"}},
		{name: "birthday wins over birth", input: "birthday Ivan", want: Birthday{Name: "Ivan"}},
		{name: "show birth wins over show", input: "show birth Ivan", want: Birthday{Name: "Ivan"}},
		{name: "days", input: "days Ivan", want: Birthday{Name: "Ivan"}},
		{name: "show all", input: "show all", want: ShowAll{}},
		{name: "show", input: "show", want: ShowAll{}},
		{name: "show all mixed case", input: "Show All", want: ShowAll{}},
		{name: "good bye", input: "good bye", want: Exit{}},
		{name: "close", input: "close", want: Exit{}},
		{name: "exit", input: "exit", want: Exit{}},
		{name: "dot", input: ".", want: Exit{}},
		{name: "bye", input: "Bye", want: Exit{}},
		{name: "stop", input: "stop", want: Exit{}},
		{name: "delete", input: "delete Ivan 0987678989", want: Delete{Name: "Ivan", Phone: "0987678989"}},
		{name: "del", input: "del Ivan 0987678989", want: Delete{Name: "Ivan", Phone: "0987678989"}},
		{name: "remove", input: "remove Ivan 0987678989", want: Delete{Name: "Ivan", Phone: "0987678989"}},
		{name: "drop", input: "drop Ivan", want: Drop{Name: "Ivan"}},
		{name: "forget", input: "forget Ivan", want: Drop{Name: "Ivan"}},
		{name: "help", input: "help", want: Help{}},
		{name: "leading whitespace", input: "   find Ivan", want: Find{Name: "Ivan"}},
		{name: "empty", input: "", want: Unknown{Input: ""}},
		{name: "gibberish", input: "xyz Ivan", want: Unknown{Input: "xyz Ivan"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.want.Kind(), got.Kind())
		})
	}
}

func TestParse_MissingArguments(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{input: "add", kind: KindAdd},
		{input: "add Ivan", kind: KindAdd},
		{input: "change Ivan 0987678989", kind: KindChange},
		{input: "find", kind: KindFind},
		{input: "bday Ivan", kind: KindSetBirthday},
		{input: "birth", kind: KindBirthday},
		{input: "del Ivan", kind: KindDelete},
		{input: "drop   ", kind: KindDrop},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			var missing *MissingArgumentError
			require.ErrorAs(t, err, &missing)
			require.Equal(t, tt.kind, missing.Kind)
			require.Equal(t, Usage(tt.kind), missing.Usage)
		})
	}
}

func TestTriggers_EveryKindHasUsage(t *testing.T) {
	for kind := KindGreeting; kind <= KindHelp; kind++ {
		require.NotEmpty(t, Triggers(kind), kind.String())
		require.NotEmpty(t, Usage(kind), kind.String())
		require.NotEqual(t, "unknown", kind.String())
	}
	require.Empty(t, Triggers(KindUnknown))
}

func TestTriggers_ReturnsCopy(t *testing.T) {
	got := Triggers(KindHelp)
	got[0] = "mutated"
	require.Equal(t, []string{"help"}, Triggers(KindHelp))
}
