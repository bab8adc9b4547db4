// Copyright 2024 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hoodmatch provides homebuyer to neighborhood matching
// algorithms that respect ranked preference orders.
package hoodmatch

type Matcher interface {
	Match(hoods []Neighborhood, buyers []Homebuyer) []Assignment
}

// Vector is an attribute vector. All vectors in one run share the same
// dimensionality and dimension order.
type Vector []int

// Dot returns the dot product of v and o, the fit score of a
// buyer/neighborhood pair. Panics if lengths differ.
func (v Vector) Dot(o Vector) int {
	if len(v) != len(o) {
		panic("hoodmatch: vector length mismatch")
	}
	sum := 0
	for i := range v {
		sum += v[i] * o[i]
	}
	return sum
}

// Covers reports whether every element of v is greater than or equal to
// the corresponding element of o. Equality counts as covering.
func (v Vector) Covers(o Vector) bool {
	if len(v) != len(o) {
		panic("hoodmatch: vector length mismatch")
	}
	for i := range v {
		if v[i] < o[i] {
			return false
		}
	}
	return true
}

type Neighborhood struct {
	ID    string
	Attrs Vector
}

type Homebuyer struct {
	ID    string
	Goals Vector
	// Prefs holds neighborhood IDs, most preferred first. May cover
	// only a subset of the catalog.
	Prefs []string
}

// Assignment pairs a homebuyer with its chosen neighborhood. Hood is
// empty when the buyer could not be placed. Fit is the dot product of
// the buyer's goals and the assigned neighborhood's attributes, 0 when
// unmatched.
type Assignment struct {
	Buyer string
	Hood  string
	Fit   int
}

func (a Assignment) Matched() bool { return a.Hood != "" }
