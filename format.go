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
// File Name:  format.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package kegg

import (
	"io"
	"os"
	"sync"
)

// indexedGene carries a record and its position in the input stream, so that
// concurrent formatting can restore the original order
type indexedGene struct {
	Index  int
	Record GeneRecord
}

// indexedText carries one formatted flatfile record and its stream position
type indexedText struct {
	Index int
	Text  string
}

// CreateGeneFormatters renders records back into flatfile text on multiple
// goroutines, delivering results in the original record order
func CreateGeneFormatters(inp <-chan GeneRecord) <-chan string {

	if inp == nil {
		return nil
	}

	idz := make(chan indexedGene, chanDepth)
	frm := make(chan indexedText, chanDepth)
	out := make(chan string, chanDepth)
	if idz == nil || frm == nil || out == nil {
		DisplayError("Unable to create gene formatter channels")
		os.Exit(1)
	}

	// geneDispatcher assigns ascending indices to incoming records
	geneDispatcher := func(inp <-chan GeneRecord, idz chan<- indexedGene) {

		// close channel when all records have been dispatched
		defer close(idz)

		idx := 0

		for rec := range inp {
			idz <- indexedGene{Index: idx, Record: rec}
			idx++
		}
	}

	// geneFormatter renders records on a per-record basis
	geneFormatter := func(wg *sync.WaitGroup, idz <-chan indexedGene, frm chan<- indexedText) {

		// report when this formatter has no more records to process
		defer wg.Done()

		for ext := range idz {
			rec := ext.Record
			frm <- indexedText{Index: ext.Index, Text: rec.String() + "\n"}
		}
	}

	// geneUnshuffler restores the original order of formatted records
	geneUnshuffler := func(frm <-chan indexedText, out chan<- string) {

		// close channel when all records have been delivered
		defer close(out)

		next := 0
		pending := make(map[int]string)

		for ext := range frm {
			pending[ext.Index] = ext.Text
			for {
				txt, ready := pending[next]
				if !ready {
					break
				}
				delete(pending, next)
				out <- txt
				next++
			}
		}

		// drain anything left if the input ended out of order
		for {
			txt, ready := pending[next]
			if !ready {
				break
			}
			delete(pending, next)
			out <- txt
			next++
		}
	}

	var wg sync.WaitGroup

	// launch single dispatcher goroutine
	go geneDispatcher(inp, idz)

	// launch multiple formatter goroutines
	for i := 0; i < NumServe(); i++ {
		wg.Add(1)
		go geneFormatter(&wg, idz, frm)
	}

	// launch separate anonymous goroutine to wait until all formatters are done
	go func() {
		wg.Wait()
		close(frm)
	}()

	// launch single unshuffler goroutine
	go geneUnshuffler(frm, out)

	return out
}

// NormalizeGene reads a KEGG Gene flatfile stream and re-emits each record
// in canonical serialized form
func NormalizeGene(inp io.Reader) <-chan string {

	return CreateGeneFormatters(GeneConverter(inp))
}

// GeneToGene converts flatfile text to its canonical serialized form
func GeneToGene(flat string) string {

	return StringToText(flat, NormalizeGene)
}
