// Copyright 2024 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hoodmatch

import (
	"fmt"
)

type preferenceMatcher struct {
	verbose bool
}

// PreferenceMatcher returns a matcher that walks each buyer's ranked
// preference list and assigns the first neighborhood whose attributes
// cover the buyer's goals on every dimension. Buyers are independent:
// a neighborhood can be assigned to any number of buyers. A buyer whose
// list is empty or entirely ineligible stays unmatched.
func PreferenceMatcher(verbose bool) Matcher {
	return preferenceMatcher{verbose: verbose}
}

func (m preferenceMatcher) Match(hoods []Neighborhood, buyers []Homebuyer) []Assignment {
	catalog := make(map[string]*Neighborhood, len(hoods))
	for i := range hoods {
		catalog[hoods[i].ID] = &hoods[i]
	}

	out := make([]Assignment, len(buyers))

	for i := range buyers {
		buyer := &buyers[i]
		out[i] = Assignment{Buyer: buyer.ID}

		for _, id := range buyer.Prefs {
			hood, ok := catalog[id]
			if !ok {
				// The record parser rejects unknown references, so
				// hand-built inputs are the only way here. Treat the
				// entry as ineligible rather than guess.
				continue
			}
			if !hood.Attrs.Covers(buyer.Goals) {
				if m.verbose {
					fmt.Println(buyer.ID, "rejects", id)
				}
				continue
			}
			out[i].Hood = hood.ID
			out[i].Fit = buyer.Goals.Dot(hood.Attrs)
			break
		}

		if m.verbose {
			if out[i].Matched() {
				fmt.Println(buyer.ID, "->", out[i].Hood, "fit:", out[i].Fit)
			} else {
				fmt.Println(buyer.ID, "-> unmatched")
			}
		}
	}

	return out
}
