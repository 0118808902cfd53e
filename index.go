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
// File Name:  index.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package kegg

import (
	"io"
	"strings"
	"unicode"

	"github.com/surgebase/porter2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lowerCaser = cases.Lower(language.English)

// indexTerms lowercases a text string, splits it into words, and stems each
// word, returning the unique stemmed terms in order of first appearance
func indexTerms(text string) []string {

	text = lowerCaser.String(text)

	words := strings.FieldsFunc(text, func(c rune) bool {
		return !unicode.IsLetter(c) && !unicode.IsDigit(c)
	})

	seen := make(map[string]bool)

	var terms []string

	for _, word := range words {
		if len(word) < 2 {
			continue
		}
		word = porter2.Stem(word)
		if seen[word] {
			continue
		}
		seen[word] = true
		terms = append(terms, word)
	}

	return terms
}

// GeneIndexer maintains an inverted index of stemmed words taken from gene
// names, definitions, and orthology roles, keyed back to entry identifiers
type GeneIndexer struct {
	postings map[string][]string
	present  map[string]map[string]bool
}

// NewGeneIndexer creates an empty gene index
func NewGeneIndexer() *GeneIndexer {

	return &GeneIndexer{
		postings: make(map[string][]string),
		present:  make(map[string]map[string]bool),
	}
}

// Add indexes the searchable text fields of one gene record
func (idx *GeneIndexer) Add(rec *GeneRecord) {

	if rec == nil || rec.Entry == "" {
		return
	}

	var buffer strings.Builder

	buffer.WriteString(rec.Definition)
	for _, name := range rec.Names {
		buffer.WriteString(" ")
		buffer.WriteString(name)
	}
	for _, orth := range rec.Orthology {
		buffer.WriteString(" ")
		buffer.WriteString(orth.Role)
	}

	for _, term := range indexTerms(buffer.String()) {
		entries := idx.present[term]
		if entries == nil {
			entries = make(map[string]bool)
			idx.present[term] = entries
		}
		if entries[rec.Entry] {
			continue
		}
		entries[rec.Entry] = true
		idx.postings[term] = append(idx.postings[term], rec.Entry)
	}
}

// Search stems the query words and returns the entry identifiers whose
// indexed text contains every one of them, in indexing order
func (idx *GeneIndexer) Search(query string) []string {

	terms := indexTerms(query)
	if len(terms) < 1 {
		return nil
	}

	first := idx.postings[terms[0]]

	var results []string

	for _, entry := range first {
		match := true
		for _, term := range terms[1:] {
			if !idx.present[term][entry] {
				match = false
				break
			}
		}
		if match {
			results = append(results, entry)
		}
	}

	return results
}

// IndexGenes builds a gene index from a KEGG Gene flatfile stream
func IndexGenes(inp io.Reader) (*GeneIndexer, error) {

	idx := NewGeneIndexer()

	err := StreamGeneRecords(inp, func(rec *GeneRecord) error {
		idx.Add(rec)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return idx, nil
}
