// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package contacts

import (
	"iter"
	"slices"
	"strings"
)

// Divider closes every block produced by PaginatedView.
const Divider = "--------------------"

// AddressBook maps contact names to records, preserving insertion order for
// display. It is not safe for concurrent use.
type AddressBook struct {
	index   map[string]int
	records []*Record
}

func NewAddressBook() *AddressBook {
	return &AddressBook{index: make(map[string]int)}
}

func (b *AddressBook) Len() int { return len(b.records) }

// AddRecord inserts r unless a record with the same name exists. It reports
// whether r was inserted; an existing record is never touched.
func (b *AddressBook) AddRecord(r *Record) bool {
	key := r.name.value
	if _, ok := b.index[key]; ok {
		return false
	}
	b.index[key] = len(b.records)
	b.records = append(b.records, r)
	return true
}

// Find returns the record stored under name.
func (b *AddressBook) Find(name string) (*Record, bool) {
	i, ok := b.index[name]
	if !ok {
		return nil, false
	}
	return b.records[i], true
}

// DelRecord removes and returns the record stored under name.
func (b *AddressBook) DelRecord(name string) (*Record, bool) {
	i, ok := b.index[name]
	if !ok {
		return nil, false
	}
	r := b.records[i]
	b.records = slices.Delete(b.records, i, i+1)
	delete(b.index, name)
	for j := i; j < len(b.records); j++ {
		b.index[b.records[j].name.value] = j
	}
	return r, true
}

// Records yields records in insertion order.
func (b *AddressBook) Records() iter.Seq[*Record] {
	return slices.Values(b.records)
}

// PaginatedView yields one text block per n records, each ending with
// Divider. The last block may hold fewer than n records. Each call starts
// from the first record; n < 1 puts everything in a single block.
func (b *AddressBook) PaginatedView(n int) iter.Seq[string] {
	return func(yield func(string) bool) {
		if len(b.records) == 0 {
			return
		}
		size := n
		if size < 1 {
			size = len(b.records)
		}
		for chunk := range slices.Chunk(b.records, size) {
			var sb strings.Builder
			for _, r := range chunk {
				sb.WriteString(r.String())
				sb.WriteByte('\n')
			}
			sb.WriteString(Divider)
			if !yield(sb.String()) {
				return
			}
		}
	}
}
