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
// File Name:  text.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package kegg

import (
	"io"
	"strings"
	"unicode"
)

// SplitInTwoLeft splits a string at the first occurrence of a separator,
// returning the entire string and an empty remainder if the separator is
// not present
func SplitInTwoLeft(str, chr string) (string, string) {

	lft, rgt, found := strings.Cut(str, chr)
	if !found {
		return str, ""
	}

	return lft, rgt
}

// SplitInTwoRight splits a string at the last occurrence of a separator
func SplitInTwoRight(str, chr string) (string, string) {

	idx := strings.LastIndex(str, chr)
	if idx < 0 {
		return str, ""
	}

	return str[:idx], str[idx+len(chr):]
}

// CompressRunsOfSpaces turns runs of whitespace into a single space
func CompressRunsOfSpaces(str string) string {

	whiteSpace := false
	var buffer strings.Builder

	for _, ch := range str {
		if ch < 127 && unicode.IsSpace(ch) {
			if !whiteSpace {
				buffer.WriteRune(' ')
			}
			whiteSpace = true
		} else {
			buffer.WriteRune(ch)
			whiteSpace = false
		}
	}

	return buffer.String()
}

// StringToChan sends a string through a channel, for use with streaming functions
func StringToChan(str string) <-chan string {

	out := make(chan string, chanDepth)

	go func() {
		out <- str
		close(out)
	}()

	return out
}

// ChanToString collects strings from a channel and returns the concatenated result
func ChanToString(chn <-chan string) string {

	if chn == nil {
		return ""
	}

	var buffer strings.Builder

	for str := range chn {
		buffer.WriteString(str)
	}

	return buffer.String()
}

// StringToText runs a string through a reader-to-channel converter function
// and collects the streamed result
func StringToText(str string, proc func(io.Reader) <-chan string) string {

	if str == "" || proc == nil {
		return ""
	}

	chn := proc(strings.NewReader(str))

	return ChanToString(chn)
}
