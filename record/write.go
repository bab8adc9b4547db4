// Copyright 2024 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package record

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/someonegg/hoodmatch"
)

// WriteAssignments writes one line per buyer, in the given order:
//
//	H0 N1
//	H1 unmatched
func WriteAssignments(w io.Writer, assignments []hoodmatch.Assignment) error {
	for _, a := range assignments {
		hood := a.Hood
		if !a.Matched() {
			hood = UnmatchedMarker
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", a.Buyer, hood); err != nil {
			return err
		}
	}
	return nil
}

// WriteRoster writes one line per neighborhood, in catalog order, with
// its buyers sorted by fit score descending, buyer ID ascending on
// ties:
//
//	N0: H1(23) H3(18)
//	N1: H0(54)
//
// Unmatched buyers do not appear.
func WriteRoster(w io.Writer, hoodIDs []string, assignments []hoodmatch.Assignment) error {
	rosters := make(map[string][]hoodmatch.Assignment, len(hoodIDs))
	for _, a := range assignments {
		if a.Matched() {
			rosters[a.Hood] = append(rosters[a.Hood], a)
		}
	}

	for _, id := range hoodIDs {
		roster := rosters[id]
		sort.SliceStable(roster, func(i, j int) bool {
			if roster[i].Fit != roster[j].Fit {
				return roster[i].Fit > roster[j].Fit
			}
			return roster[i].Buyer < roster[j].Buyer
		})

		if _, err := fmt.Fprintf(w, "%s:", id); err != nil {
			return err
		}
		for _, a := range roster {
			if _, err := fmt.Fprintf(w, " %s(%d)", a.Buyer, a.Fit); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// WriteAssignmentsFile renders the assignment listing fully in memory
// before creating path, so a failed run leaves no partial file.
func WriteAssignmentsFile(path string, assignments []hoodmatch.Assignment) error {
	var buf bytes.Buffer
	if err := WriteAssignments(&buf, assignments); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// WriteRosterFile is WriteAssignmentsFile for the roster listing.
func WriteRosterFile(path string, hoodIDs []string, assignments []hoodmatch.Assignment) error {
	var buf bytes.Buffer
	if err := WriteRoster(&buf, hoodIDs, assignments); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
