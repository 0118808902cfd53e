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
// File Name:  wrap.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package kegg

import (
	"fmt"
	"strings"
)

// BreakRule describes one candidate break point policy for wrapped field
// values. The wrap engine scans backward from the width limit for the
// rightmost occurrence of Search whose position satisfies MinLeft and
// MinRight, substitutes Replace at the break, and continues on the next line.
type BreakRule struct {
	Search   string
	Replace  string
	MinLeft  int
	MinRight int
}

// WrapRule pairs a continuation-line indent with an ordered list of break
// rules, tried in sequence for each overlong line
type WrapRule struct {
	Indent int
	Breaks []BreakRule
}

// nameWrap breaks gene names preferentially on spaces, falling back on
// hyphens, and marks the break with the $ continuation character
var nameWrap = WrapRule{
	Indent: 0,
	Breaks: []BreakRule{
		{Search: " ", Replace: "$", MinLeft: 1, MinRight: 1},
		{Search: "-", Replace: "$", MinLeft: 1, MinRight: 1},
	},
}

// idWrap breaks link identifier lists on spaces, dropping the space and
// indenting continuation lines by the width of the database name column
func idWrap(indent int) WrapRule {

	return WrapRule{
		Indent: indent,
		Breaks: []BreakRule{
			{Search: " ", Replace: "", MinLeft: 1, MinRight: 0},
		},
	}
}

// wrapKEGG reflows one field value into lines no longer than maxWidth,
// breaking at the configured characters. A line with no acceptable break
// point is cut at the width limit so that progress is always made.
func wrapKEGG(line string, maxWidth int, rule WrapRule) []string {

	indent := strings.Repeat(" ", rule.Indent)

	var lines []string

	for len(line) > maxWidth {

		// a break inside the leading indent spaces would make no progress
		start := 0
		for start < len(line) && line[start] == ' ' {
			start++
		}

		split := -1
		var brk BreakRule

		for _, rl := range rule.Breaks {
			// leave room for the substituted break text
			to := maxWidth - len(rl.Replace)
			if rl.MinRight == 0 {
				// the break character is discarded, so it may sit
				// just past the width limit
				to += len(rl.Search)
			}
			if to > len(line) {
				to = len(line)
			}
			if to < 1 {
				continue
			}
			idx := strings.LastIndex(line[:to], rl.Search)
			if idx < 0 || idx < start+rl.MinLeft {
				continue
			}
			if len(line)-idx-len(rl.Search) < rl.MinRight {
				continue
			}
			split = idx
			brk = rl
			break
		}

		if split < 0 {
			// forced break at the width boundary
			lines = append(lines, line[:maxWidth])
			line = indent + line[maxWidth:]
			continue
		}

		keep := split
		if brk.MinLeft > 0 && brk.MinRight > 0 {
			// break character stays on the current line
			keep = split + len(brk.Search)
		}

		lines = append(lines, line[:keep]+brk.Replace)
		line = indent + line[split+len(brk.Search):]
	}

	lines = append(lines, line)

	return lines
}

// writeKEGG renders one field as a 12-column label line followed by
// blank-labeled continuation lines. Entries that are already wrapped pass
// embedded newlines through as additional physical lines.
func writeKEGG(item string, info []string) string {

	var buffer strings.Builder

	for _, entry := range info {
		for _, line := range strings.Split(entry, "\n") {
			fmt.Fprintf(&buffer, "%-*s%s\n", keggDataIndent, item, line)
			// label appears only on the first physical line of the field
			item = ""
		}
	}

	return buffer.String()
}

func (rec *GeneRecord) entryField() string {

	return writeKEGG("ENTRY", []string{rec.Entry})
}

func (rec *GeneRecord) nameField() string {

	var info []string
	for _, name := range rec.Names {
		info = append(info, strings.Join(wrapKEGG(name, keggItemLength, nameWrap), "\n"))
	}

	return writeKEGG("NAME", info)
}

func (rec *GeneRecord) definitionField() string {

	return writeKEGG("DEFINITION", []string{rec.Definition})
}

func (rec *GeneRecord) dblinksField() string {

	var info []string
	for _, link := range rec.DBLinks {
		str := link.Database + ": " + strings.Join(link.IDs, " ")
		info = append(info, strings.Join(wrapKEGG(str, keggItemLength, idWrap(9)), "\n"))
	}

	return writeKEGG("DBLINKS", info)
}

// String renders a gene record back into flatfile form, with the entry,
// name, and database link fields followed by the /// terminator
func (rec *GeneRecord) String() string {

	return rec.entryField() + rec.nameField() + rec.dblinksField() + recordTerminator
}
