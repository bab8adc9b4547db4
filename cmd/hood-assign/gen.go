// Copyright 2024 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/someonegg/hoodmatch/record"
)

// doGen writes a random but reproducible record file: attribute values
// in 1..10 and every buyer ranking a shuffled permutation of the full
// catalog.
func doGen(outFile string, hoods, buyers int, keys string, seed int64) error {
	keyList := strings.Split(keys, ",")
	for _, key := range keyList {
		if key == "" || strings.ContainsAny(key, record.AttrDelim+record.PrefDelim+" ") {
			return fmt.Errorf("invalid attribute key %q", key)
		}
	}

	rng := rand.New(rand.NewSource(seed))

	var buf bytes.Buffer

	hoodIDs := make([]string, hoods)
	for i := 0; i < hoods; i++ {
		hoodIDs[i] = fmt.Sprintf("N%d", i)
		fmt.Fprintf(&buf, "%s %s%s\n", record.HoodMarker, hoodIDs[i], genAttrs(rng, keyList))
	}

	for i := 0; i < buyers; i++ {
		prefs := make([]string, hoods)
		copy(prefs, hoodIDs)
		rng.Shuffle(len(prefs), func(a, b int) {
			prefs[a], prefs[b] = prefs[b], prefs[a]
		})
		fmt.Fprintf(&buf, "%s H%d%s %s\n", record.BuyerMarker, i,
			genAttrs(rng, keyList), strings.Join(prefs, record.PrefDelim))
	}

	return os.WriteFile(outFile, buf.Bytes(), 0644)
}

func genAttrs(rng *rand.Rand, keys []string) string {
	var sb strings.Builder
	for _, key := range keys {
		fmt.Fprintf(&sb, " %s%s%d", key, record.AttrDelim, 1+rng.Intn(10))
	}
	return sb.String()
}
