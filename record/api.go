// Copyright 2024 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package record reads and writes the line-oriented homebuyer exchange
// format and adapts it to the hoodmatch entities.
//
// One record per line:
//
//	N N0 E:7 W:3 R:9
//	H H0 E:4 W:9 R:2 N2>N0>N1
//
// The first record fixes the attribute key order for the whole file.
package record

import (
	"fmt"

	"github.com/someonegg/hoodmatch"
)

const (
	HoodMarker  = "N"
	BuyerMarker = "H"

	AttrDelim = ":"
	PrefDelim = ">"

	// UnmatchedMarker is written in place of a neighborhood ID for
	// buyers that could not be placed.
	UnmatchedMarker = "unmatched"
)

// File is one parsed input file. Hoods and Buyers keep input order so
// downstream iteration is deterministic.
type File struct {
	Hoods  []hoodmatch.Neighborhood
	Buyers []hoodmatch.Homebuyer

	// Keys is the attribute key order shared by every record, as fixed
	// by the first record.
	Keys []string
}

// HoodIDs returns the catalog identifiers in input order.
func (f *File) HoodIDs() []string {
	ids := make([]string, len(f.Hoods))
	for i := range f.Hoods {
		ids[i] = f.Hoods[i].ID
	}
	return ids
}

// ParseError reports a malformed record.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// DuplicateIdentifierError reports a repeated identifier within one
// entity kind.
type DuplicateIdentifierError struct {
	Line int
	Kind string // "neighborhood" or "homebuyer"
	ID   string
}

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("line %d: duplicate %s identifier %q", e.Line, e.Kind, e.ID)
}

// UnknownReferenceError reports a preference entry that names a
// neighborhood absent from the catalog.
type UnknownReferenceError struct {
	Line  int
	Buyer string
	Hood  string
}

func (e *UnknownReferenceError) Error() string {
	return fmt.Sprintf("line %d: homebuyer %q prefers unknown neighborhood %q", e.Line, e.Buyer, e.Hood)
}
