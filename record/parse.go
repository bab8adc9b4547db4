// Copyright 2024 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package record

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/someonegg/hoodmatch"
)

// ParseFile reads and parses the file at path.
func ParseFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads one record per line until EOF. Blank lines are skipped.
// Any malformed record aborts with an error carrying the line number;
// no partial File is returned. Preference references are checked after
// the whole input is read, so buyers may precede the neighborhoods they
// name.
func Parse(r io.Reader) (*File, error) {
	file := &File{}

	hoodSeen := make(map[string]bool)
	buyerSeen := make(map[string]bool)
	buyerLine := make(map[string]int)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		parts := strings.Fields(text)

		switch parts[0] {
		case HoodMarker:
			hood, err := parseHood(file, line, text, parts)
			if err != nil {
				return nil, err
			}
			if hoodSeen[hood.ID] {
				return nil, &DuplicateIdentifierError{Line: line, Kind: "neighborhood", ID: hood.ID}
			}
			hoodSeen[hood.ID] = true
			file.Hoods = append(file.Hoods, hood)

		case BuyerMarker:
			buyer, err := parseBuyer(file, line, text, parts)
			if err != nil {
				return nil, err
			}
			if buyerSeen[buyer.ID] {
				return nil, &DuplicateIdentifierError{Line: line, Kind: "homebuyer", ID: buyer.ID}
			}
			buyerSeen[buyer.ID] = true
			buyerLine[buyer.ID] = line
			file.Buyers = append(file.Buyers, buyer)

		default:
			return nil, &ParseError{Line: line, Text: text, Reason: "unknown record marker"}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	for i := range file.Buyers {
		buyer := &file.Buyers[i]
		for _, id := range buyer.Prefs {
			if !hoodSeen[id] {
				return nil, &UnknownReferenceError{Line: buyerLine[buyer.ID], Buyer: buyer.ID, Hood: id}
			}
		}
	}

	return file, nil
}

func parseHood(file *File, line int, text string, parts []string) (hoodmatch.Neighborhood, error) {
	if len(parts) < 3 {
		return hoodmatch.Neighborhood{}, &ParseError{Line: line, Text: text, Reason: "neighborhood record needs an identifier and attributes"}
	}
	attrs, err := parseAttrs(file, line, text, parts[2:])
	if err != nil {
		return hoodmatch.Neighborhood{}, err
	}
	return hoodmatch.Neighborhood{ID: parts[1], Attrs: attrs}, nil
}

func parseBuyer(file *File, line int, text string, parts []string) (hoodmatch.Homebuyer, error) {
	if len(parts) < 4 {
		return hoodmatch.Homebuyer{}, &ParseError{Line: line, Text: text, Reason: "homebuyer record needs an identifier, attributes and preferences"}
	}
	attrs, err := parseAttrs(file, line, text, parts[2:len(parts)-1])
	if err != nil {
		return hoodmatch.Homebuyer{}, err
	}
	prefs := strings.Split(parts[len(parts)-1], PrefDelim)
	for _, id := range prefs {
		if id == "" {
			return hoodmatch.Homebuyer{}, &ParseError{Line: line, Text: text, Reason: "empty preference entry"}
		}
	}
	return hoodmatch.Homebuyer{ID: parts[1], Goals: attrs, Prefs: prefs}, nil
}

// parseAttrs parses key:value tokens into a vector following the
// file's canonical key order. The first record establishes that order;
// later records must carry exactly the same keys, in any order.
func parseAttrs(file *File, line int, text string, tokens []string) (hoodmatch.Vector, error) {
	vals := make(map[string]int, len(tokens))
	establishing := file.Keys == nil

	for _, token := range tokens {
		key, raw, ok := strings.Cut(token, AttrDelim)
		if !ok || key == "" {
			return nil, &ParseError{Line: line, Text: text, Reason: "malformed attribute token " + strconv.Quote(token)}
		}
		val, err := strconv.Atoi(raw)
		if err != nil || val < 0 {
			return nil, &ParseError{Line: line, Text: text, Reason: "invalid attribute value " + strconv.Quote(token)}
		}
		if _, dup := vals[key]; dup {
			return nil, &ParseError{Line: line, Text: text, Reason: "repeated attribute key " + strconv.Quote(key)}
		}
		vals[key] = val
		if establishing {
			file.Keys = append(file.Keys, key)
		}
	}

	if len(vals) != len(file.Keys) {
		return nil, &ParseError{Line: line, Text: text, Reason: "expected " + strconv.Itoa(len(file.Keys)) + " attributes, got " + strconv.Itoa(len(vals))}
	}

	vec := make(hoodmatch.Vector, len(file.Keys))
	for i, key := range file.Keys {
		val, ok := vals[key]
		if !ok {
			return nil, &ParseError{Line: line, Text: text, Reason: "missing attribute " + strconv.Quote(key)}
		}
		vec[i] = val
	}
	return vec, nil
}
