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
// File Name:  gene.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package kegg

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Ortholog pairs a KEGG Orthology identifier with its role description
type Ortholog struct {
	ID   string
	Role string
}

// Organism pairs a KEGG organism code with the organism name
type Organism struct {
	ID   string
	Name string
}

// DBLink pairs an external database name with its link identifiers
type DBLink struct {
	Database string
	IDs      []string
}

// GeneRecord contains parsed data from one KEGG Gene flatfile entry
type GeneRecord struct {
	Entry      string
	Names      []string
	Definition string
	Orthology  []Ortholog
	Organism   Organism
	Position   string
	Motif      []DBLink
	DBLinks    []DBLink
}

// MalformedFieldError reports a data line that lacks the separator its
// keyword requires, a double space for ORTHOLOGY and ORGANISM or a colon
// space for a new MOTIF or DBLINKS pair
type MalformedFieldError struct {
	Keyword string
	Data    string
}

func (e *MalformedFieldError) Error() string {

	return fmt.Sprintf("malformed %s line '%s'", strings.TrimSpace(e.Keyword), e.Data)
}

// EmptyReferenceError reports a DBLINKS continuation line that arrived
// before any pair existed to extend
type EmptyReferenceError struct {
	Keyword string
	Data    string
}

func (e *EmptyReferenceError) Error() string {

	return fmt.Sprintf("%s continuation '%s' has no antecedent", strings.TrimSpace(e.Keyword), e.Data)
}

// recognized keyword labels, padded to the full 12-column label width
const (
	entryLabel      = "ENTRY       "
	nameLabel       = "NAME        "
	definitionLabel = "DEFINITION  "
	orthologyLabel  = "ORTHOLOGY   "
	organismLabel   = "ORGANISM    "
	positionLabel   = "POSITION    "
	motifLabel      = "MOTIF       "
	dblinksLabel    = "DBLINKS     "

	blankLabel = "            "

	recordTerminator = "///"
)

// StreamGeneRecords scans line-oriented KEGG Gene flatfile text and hands
// each completed record to the callback the moment its /// terminator is
// seen. A record accumulates across continuation lines, which leave the
// label columns blank and inherit the most recent keyword. Lines under an
// unrecognized keyword are skipped. A trailing record with no terminator is
// dropped. The first parsing fault aborts the scan and is returned, as is
// any error from the callback.
func StreamGeneRecords(inp io.Reader, proc func(*GeneRecord) error) error {

	if inp == nil || proc == nil {
		return nil
	}

	lns := CreateGeneStreamer(inp)

	// unblock the line streamer goroutine on early exit
	defer func() {
		for range lns {
		}
	}()

	rec := new(GeneRecord)
	keyword := ""

	for line := range lns {

		if strings.HasPrefix(line, recordTerminator) {
			// terminator completes the current record and starts a fresh one
			if err := proc(rec); err != nil {
				return err
			}
			rec = new(GeneRecord)
			continue
		}

		label := line
		if len(label) > keggDataIndent {
			label = label[:keggDataIndent]
		}
		if label != blankLabel {
			// keyword appears only on the first line of a field,
			// continuation lines inherit it
			keyword = label
		}

		data := ""
		if len(line) > keggDataIndent {
			data = strings.TrimSpace(line[keggDataIndent:])
		}

		switch keyword {
		case entryLabel:
			words := strings.Fields(data)
			if len(words) > 0 {
				rec.Entry = words[0]
			}
		case nameLabel:
			rec.Names = append(rec.Names, strings.Trim(data, ";"))
		case definitionLabel:
			rec.Definition = data
		case orthologyLabel:
			id, role, found := strings.Cut(data, "  ")
			if !found {
				return &MalformedFieldError{Keyword: keyword, Data: data}
			}
			rec.Orthology = append(rec.Orthology, Ortholog{ID: id, Role: role})
		case organismLabel:
			id, name, found := strings.Cut(data, "  ")
			if !found {
				return &MalformedFieldError{Keyword: keyword, Data: data}
			}
			rec.Organism = Organism{ID: id, Name: name}
		case positionLabel:
			rec.Position = data
		case motifLabel:
			key, values, found := strings.Cut(data, ": ")
			if !found {
				return &MalformedFieldError{Keyword: keyword, Data: data}
			}
			// each motif line starts a new pair, never merged with a previous one
			rec.Motif = append(rec.Motif, DBLink{Database: key, IDs: strings.Fields(values)})
		case dblinksLabel:
			if strings.Contains(data, ":") {
				key, values, found := strings.Cut(data, ": ")
				if !found {
					return &MalformedFieldError{Keyword: keyword, Data: data}
				}
				rec.DBLinks = append(rec.DBLinks, DBLink{Database: key, IDs: strings.Fields(values)})
			} else {
				// a line with no colon extends the identifiers of the last pair
				if len(rec.DBLinks) < 1 {
					return &EmptyReferenceError{Keyword: keyword, Data: data}
				}
				last := rec.DBLinks[len(rec.DBLinks)-1]
				ids := append(append([]string(nil), last.IDs...), strings.Fields(data)...)
				rec.DBLinks[len(rec.DBLinks)-1] = DBLink{Database: last.Database, IDs: ids}
			}
		default:
			// unrecognized keyword, field is skipped without complaint
		}
	}

	return nil
}

// GeneConverter reads a concatenated KEGG Gene flatfile stream and sends
// individual records down a channel, one per /// terminator. Parsing faults
// end the stream early and are reported to stderr.
func GeneConverter(inp io.Reader) <-chan GeneRecord {

	if inp == nil {
		return nil
	}

	out := make(chan GeneRecord, chanDepth)
	if out == nil {
		DisplayError("Unable to create gene converter channel")
		os.Exit(1)
	}

	// geneStreamer sends gene records down a channel
	geneStreamer := func(inp io.Reader, out chan<- GeneRecord) {

		// close channel when all records have been processed
		defer close(out)

		err := StreamGeneRecords(inp, func(rec *GeneRecord) error {
			out <- *rec
			return nil
		})

		if err != nil {
			DisplayWarning("%s", err.Error())
		}
	}

	// launch single gene streamer goroutine
	go geneStreamer(inp, out)

	return out
}
