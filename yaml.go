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
// File Name:  yaml.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package kegg

import (
	"io"
	"os"
	"runtime"

	"github.com/goccy/go-yaml"
)

// GeneYAMLConverter parses a KEGG Gene flatfile stream into a stream of
// YAML documents, one per record, separated by document markers
func GeneYAMLConverter(inp io.Reader) <-chan string {

	if inp == nil {
		return nil
	}

	out := make(chan string, chanDepth)
	if out == nil {
		DisplayError("Unable to create gene YAML converter channel")
		os.Exit(1)
	}

	convertGene := func(inp io.Reader, out chan<- string) {

		// close channel when all records have been sent
		defer close(out)

		err := StreamGeneRecords(inp, func(rec *GeneRecord) error {

			buff, err := yaml.Marshal(rec)
			if err != nil {
				return err
			}

			out <- "---\n" + string(buff)

			return nil
		})

		if err != nil {
			DisplayWarning("%s", err.Error())
		}

		runtime.Gosched()
	}

	go convertGene(inp, out)

	return out
}

// GeneToYAML converts a KEGG Gene flatfile to a YAML string
func GeneToYAML(flat string) string {

	return StringToText(flat, GeneYAMLConverter)
}
