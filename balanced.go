// Copyright 2024 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hoodmatch

import (
	"container/heap"
	"fmt"
)

type balancedMatcher struct {
	verbose bool
}

// BalancedMatcher returns a matcher that spreads buyers across the
// catalog under a per-neighborhood capacity of
// ceil(buyers/neighborhoods). Placement is driven by the dot-product
// fit score: the best-fitting pending buyer is placed first, into the
// most preferred neighborhood of theirs that still has room. A full
// neighborhood evicts its weakest occupant when a stronger fit arrives;
// the evicted buyer re-enters the queue at their next preference. A
// buyer who runs out of preferences stays unmatched.
func BalancedMatcher(verbose bool) Matcher {
	return balancedMatcher{verbose: verbose}
}

type balancedSeat struct {
	buyer int // index into buyers
	pref  int // index into the buyer's Prefs
	fit   int
}

type balancedCandidate struct {
	fit   int
	buyer int
	pref  int
}

// candidateQueue orders by fit descending, then input position
// ascending so equal fits resolve deterministically.
type candidateQueue []balancedCandidate

func (q candidateQueue) Len() int { return len(q) }

func (q candidateQueue) Less(i, j int) bool {
	if q[i].fit != q[j].fit {
		return q[i].fit > q[j].fit
	}
	return q[i].buyer < q[j].buyer
}

func (q candidateQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *candidateQueue) Push(x interface{}) {
	*q = append(*q, x.(balancedCandidate))
}

func (q *candidateQueue) Pop() interface{} {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}

func (m balancedMatcher) Match(hoods []Neighborhood, buyers []Homebuyer) []Assignment {
	out := make([]Assignment, len(buyers))
	for i := range buyers {
		out[i] = Assignment{Buyer: buyers[i].ID}
	}
	if len(hoods) == 0 || len(buyers) == 0 {
		return out
	}

	catalog := make(map[string]int, len(hoods))
	for i := range hoods {
		catalog[hoods[i].ID] = i
	}

	capacity := (len(buyers) + len(hoods) - 1) / len(hoods)
	rosters := make([][]balancedSeat, len(hoods))

	queue := &candidateQueue{}

	// enqueue pushes the buyer's first resolvable preference at or
	// after from. Unknown IDs cannot appear in parsed input but are
	// skipped rather than trusted.
	enqueue := func(buyer, from int) {
		prefs := buyers[buyer].Prefs
		for p := from; p < len(prefs); p++ {
			h, ok := catalog[prefs[p]]
			if !ok {
				continue
			}
			fit := buyers[buyer].Goals.Dot(hoods[h].Attrs)
			heap.Push(queue, balancedCandidate{fit: fit, buyer: buyer, pref: p})
			return
		}
	}

	for i := range buyers {
		enqueue(i, 0)
	}

	for queue.Len() > 0 {
		c := heap.Pop(queue).(balancedCandidate)
		h := catalog[buyers[c.buyer].Prefs[c.pref]]
		roster := rosters[h]

		if len(roster) < capacity {
			rosters[h] = append(roster, balancedSeat{buyer: c.buyer, pref: c.pref, fit: c.fit})
			if m.verbose {
				fmt.Println(buyers[c.buyer].ID, "->", hoods[h].ID, "fit:", c.fit)
			}
			continue
		}

		// Full: evict the weakest occupant if the incoming fit is
		// strictly better, ties keep the sitting buyer.
		weakest := 0
		for s := 1; s < len(roster); s++ {
			if roster[s].fit < roster[weakest].fit ||
				roster[s].fit == roster[weakest].fit && roster[s].buyer > roster[weakest].buyer {
				weakest = s
			}
		}
		if c.fit > roster[weakest].fit {
			evicted := roster[weakest]
			roster[weakest] = balancedSeat{buyer: c.buyer, pref: c.pref, fit: c.fit}
			if m.verbose {
				fmt.Println(buyers[c.buyer].ID, "evicts", buyers[evicted.buyer].ID,
					"from", hoods[h].ID, "fit:", c.fit, ">", evicted.fit)
			}
			enqueue(evicted.buyer, evicted.pref+1)
		} else {
			enqueue(c.buyer, c.pref+1)
		}
	}

	for h, roster := range rosters {
		for _, seat := range roster {
			out[seat.buyer].Hood = hoods[h].ID
			out[seat.buyer].Fit = seat.fit
		}
	}

	return out
}
