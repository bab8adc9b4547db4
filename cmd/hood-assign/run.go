// Copyright 2024 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/someonegg/hoodmatch"
	"github.com/someonegg/hoodmatch/record"
)

// doRun is the whole pipeline: parse, match, write. The output file is
// only created once parsing and matching have fully succeeded.
func doRun(inFile, outFile string, balance, roster, verbose bool) error {
	file, err := record.ParseFile(inFile)
	if err != nil {
		return fmt.Errorf("load record file failed: %w", err)
	}

	var matcher hoodmatch.Matcher
	if balance {
		matcher = hoodmatch.BalancedMatcher(verbose)
	} else {
		matcher = hoodmatch.PreferenceMatcher(verbose)
	}

	assignments := matcher.Match(file.Hoods, file.Buyers)

	if verbose {
		matched := 0
		for _, a := range assignments {
			if a.Matched() {
				matched++
			}
		}
		fmt.Printf("hoods: %v, buyers: %v, matched: %v, unmatched: %v\n",
			len(file.Hoods), len(file.Buyers), matched, len(assignments)-matched)
	}

	if roster {
		err = record.WriteRosterFile(outFile, file.HoodIDs(), assignments)
	} else {
		err = record.WriteAssignmentsFile(outFile, assignments)
	}
	if err != nil {
		return fmt.Errorf("write assignment file failed: %w", err)
	}

	return nil
}
