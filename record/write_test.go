// Copyright 2024 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package record

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/someonegg/hoodmatch"
)

func TestWriteAssignments(t *testing.T) {
	assignments := []hoodmatch.Assignment{
		{Buyer: "H0", Hood: "N1", Fit: 30},
		{Buyer: "H1"},
		{Buyer: "H2", Hood: "N0", Fit: 12},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteAssignments(&buf, assignments))

	assert.Equal(t, "H0 N1\nH1 unmatched\nH2 N0\n", buf.String())
}

func TestWriteRoster(t *testing.T) {
	hoodIDs := []string{"N0", "N1", "N2"}
	assignments := []hoodmatch.Assignment{
		{Buyer: "H0", Hood: "N0", Fit: 18},
		{Buyer: "H1", Hood: "N0", Fit: 23},
		{Buyer: "H2"},
		{Buyer: "H3", Hood: "N1", Fit: 54},
		{Buyer: "H4", Hood: "N0", Fit: 23},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteRoster(&buf, hoodIDs, assignments))

	// Fit descending, buyer ID ascending on ties; empty neighborhoods
	// still get a line; unmatched buyers are absent.
	assert.Equal(t, "N0: H1(23) H4(23) H0(18)\nN1: H3(54)\nN2:\n", buf.String())
}

func TestWriteAssignmentsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	assignments := []hoodmatch.Assignment{
		{Buyer: "H0", Hood: "N0", Fit: 9},
	}

	require.NoError(t, WriteAssignmentsFile(path, assignments))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "H0 N0\n", string(data))
}
