// Copyright 2024 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/someonegg/hoodmatch/record"
)

func writeInput(t *testing.T, content string) (inFile, outFile string) {
	t.Helper()
	dir := t.TempDir()
	inFile = filepath.Join(dir, "in.txt")
	outFile = filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(inFile, []byte(content), 0644))
	return inFile, outFile
}

func TestDoRunAssign(t *testing.T) {
	inFile, outFile := writeInput(t, `N N0 E:2 W:8 R:8
N N1 E:8 W:8 R:8
H H0 E:5 W:1 R:1 N0>N1
H H1 E:9 W:9 R:9 N0>N1
`)

	require.NoError(t, doRun(inFile, outFile, false, false, false))

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Equal(t, "H0 N1\nH1 unmatched\n", string(data))
}

func TestDoRunBalanceRoster(t *testing.T) {
	inFile, outFile := writeInput(t, `N N0 E:5 W:5
N N1 E:3 W:3
H H0 E:2 W:2 N0>N1
H H1 E:3 W:3 N0>N1
`)

	require.NoError(t, doRun(inFile, outFile, true, true, false))

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Equal(t, "N0: H1(30)\nN1: H0(12)\n", string(data))
}

func TestDoRunParseErrorWritesNothing(t *testing.T) {
	inFile, outFile := writeInput(t, "N N0 E:bad\n")

	err := doRun(inFile, outFile, false, false, false)
	require.Error(t, err)

	var perr *record.ParseError
	assert.ErrorAs(t, err, &perr)

	_, statErr := os.Stat(outFile)
	assert.True(t, os.IsNotExist(statErr), "no partial output file on parse failure")
}

func TestDoRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	err := doRun(filepath.Join(dir, "absent.txt"), filepath.Join(dir, "out.txt"), false, false, false)
	require.Error(t, err)
}

func TestDoGen(t *testing.T) {
	dir := t.TempDir()
	genFile := filepath.Join(dir, "gen.txt")

	require.NoError(t, doGen(genFile, 3, 12, "E,W,R", 7))

	f, err := record.ParseFile(genFile)
	require.NoError(t, err)
	assert.Len(t, f.Hoods, 3)
	assert.Len(t, f.Buyers, 12)
	assert.Equal(t, []string{"E", "W", "R"}, f.Keys)
	for _, buyer := range f.Buyers {
		assert.Len(t, buyer.Prefs, 3)
	}

	// Same seed, same file.
	genFile2 := filepath.Join(dir, "gen2.txt")
	require.NoError(t, doGen(genFile2, 3, 12, "E,W,R", 7))
	first, err := os.ReadFile(genFile)
	require.NoError(t, err)
	second, err := os.ReadFile(genFile2)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Generated input runs through both matchers.
	outFile := filepath.Join(dir, "out.txt")
	require.NoError(t, doRun(genFile, outFile, false, false, false))
	require.NoError(t, doRun(genFile, outFile, true, false, false))
}

func TestDoGenRejectsBadKeys(t *testing.T) {
	dir := t.TempDir()
	err := doGen(filepath.Join(dir, "gen.txt"), 2, 4, "E,W:R", 1)
	require.Error(t, err)
}
