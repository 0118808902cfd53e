// ===========================================================================
//
//                            PUBLIC DOMAIN NOTICE
//            National Center for Biotechnology Information (NCBI)
//
//  This software/database is a "United States Government Work" under the
//  terms of the United States Copyright Act. It was written as part of
//  the author's official duties as a United States Government employee and
//  thus cannot be copyrighted. This software/database is freely available
//  to the public for use. The National Library of Medicine and the U.S.
//  Government do not place any restriction on its use or reproduction.
//  We would, however, appreciate having the NCBI and the author cited in
//  any work or product based on this material.
//
//  Although all reasonable efforts have been taken to ensure the accuracy
//  and reliability of the software and data, the NLM and the U.S.
//  Government do not and cannot warrant the performance or results that
//  may be obtained by using this software or data. The NLM and the U.S.
//  Government disclaim all warranties, express or implied, including
//  warranties of performance, merchantability or fitness for any particular
//  purpose.
//
// ===========================================================================
//
// File Name:  config.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package kegg

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/komkom/toml"
)

// Tunings adjusts channel buffering and concurrency defaults. Zero values
// leave the corresponding built-in default untouched.
type Tunings struct {
	ChanDepth int `json:"chandepth" yaml:"chandepth"`
	NumServe  int `json:"numserve" yaml:"numserve"`
}

// readTuningsINI scans simple key = value configuration lines, ignoring
// section headers and comments
func readTuningsINI(inp io.Reader) (Tunings, error) {

	var tn Tunings

	scanr := bufio.NewScanner(inp)

	row := 0

	for scanr.Scan() {

		line := scanr.Text()

		row++

		line = strings.TrimSpace(line)

		// ignore comment and section lines
		if line == "" || strings.HasPrefix(line, ";") || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			continue
		}

		lft, rgt, found := strings.Cut(line, "=")
		if !found || lft == "" || rgt == "" {
			return tn, fmt.Errorf("improper configuration item '%s' on line %d", line, row)
		}
		lft = strings.TrimSpace(lft)
		rgt = strings.TrimSpace(rgt)
		rgt = strings.TrimPrefix(rgt, "\"")
		rgt = strings.TrimSuffix(rgt, "\"")

		val, err := strconv.Atoi(rgt)
		if err != nil {
			return tn, fmt.Errorf("non-numeric value '%s' for '%s' on line %d", rgt, lft, row)
		}

		switch strings.ToLower(lft) {
		case "chandepth":
			tn.ChanDepth = val
		case "numserve":
			tn.NumServe = val
		default:
			// unrecognized keys are allowed for forward compatibility
		}
	}

	if err := scanr.Err(); err != nil {
		return tn, err
	}

	return tn, nil
}

// LoadTunings reads tuning values from ini, toml, or yaml configuration text.
// TOML is decoded through its JSON bridge, matching the configuration file
// conversion path used elsewhere in this code base.
func LoadTunings(inp io.Reader, format string) (Tunings, error) {

	var tn Tunings

	if inp == nil {
		return tn, fmt.Errorf("no configuration input supplied")
	}

	switch strings.ToLower(format) {
	case "ini":
		return readTuningsINI(inp)
	case "toml":
		rdr := toml.New(inp)
		if err := json.NewDecoder(rdr).Decode(&tn); err != nil {
			return tn, err
		}
	case "yaml", "yml":
		data, err := io.ReadAll(inp)
		if err != nil {
			return tn, err
		}
		if err := yaml.Unmarshal(data, &tn); err != nil {
			return tn, err
		}
	default:
		return tn, fmt.Errorf("unrecognized configuration format '%s'", format)
	}

	return tn, nil
}

// Apply installs positive tuning values as the new package defaults
func (tn Tunings) Apply() {

	if tn.ChanDepth > 0 {
		chanDepth = tn.ChanDepth
	}
	if tn.NumServe > 0 {
		numServe = tn.NumServe
	}
}
