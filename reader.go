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
// File Name:  reader.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package kegg

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/klauspost/pgzip"
)

// skimGzip checks the first two bytes of the input stream for the gzip
// magic number and interposes a parallel gzip reader when it is present
func skimGzip(in io.Reader) io.Reader {

	brd := bufio.NewReader(in)

	magic, err := brd.Peek(2)
	if err != nil || len(magic) < 2 {
		return brd
	}

	if magic[0] != 0x1F || magic[1] != 0x8B {
		return brd
	}

	zrd, err := pgzip.NewReader(brd)
	if err != nil {
		DisplayWarning("Unable to interpose gzip reader: %s", err.Error())
		return brd
	}

	return zrd
}

// CreateGeneStreamer reads line-oriented flatfile text, decompressing gzip
// input on the fly, and sends individual lines down a channel. Trailing
// carriage returns are removed, the rest of each line is left untouched so
// that column positions stay intact.
func CreateGeneStreamer(in io.Reader) <-chan string {

	if in == nil {
		return nil
	}

	out := make(chan string, chanDepth)
	if out == nil {
		DisplayError("Unable to create gene line streamer channel")
		os.Exit(1)
	}

	// lineStreamer sends flatfile lines through the output channel
	lineStreamer := func(in io.Reader, out chan<- string) {

		// close channel when all lines have been sent
		defer close(out)

		scanr := bufio.NewScanner(skimGzip(in))

		// override scanner limit for unusually long data lines
		const bufferSize = 1024 * 1024
		buf := make([]byte, bufferSize)
		scanr.Buffer(buf, bufferSize)

		for scanr.Scan() {

			line := scanr.Text()
			line = strings.TrimSuffix(line, "\r")

			out <- line
		}

		if err := scanr.Err(); err != nil {
			// scan-time faults are reported but not propagated
			DisplayWarning("%s", err.Error())
		}
	}

	// launch single line streamer goroutine
	go lineStreamer(in, out)

	return out
}
