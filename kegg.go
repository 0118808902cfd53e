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
// File Name:  kegg.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

// Package kegg reads and writes flatfile records of the KEGG Gene database.
// Record converters follow the channel-of-records pattern used throughout
// this code base, with an underlying callback engine that reports parsing
// faults to the caller.
package kegg

import (
	"fmt"
	"os"
	"runtime"

	"github.com/fatih/color"
	"github.com/klauspost/cpuid"
	"github.com/pbnjay/memory"
)

// KEGG flatfile layout constants. The keyword label occupies the first 12
// columns of a line, data starts at column 12, and wrapped data lines are
// limited so that label plus data fits the full line length.
const (
	keggDataIndent = 12
	keggLineLength = 80
	keggItemLength = keggLineLength - keggDataIndent
)

var (
	chanDepth = 0
	numServe  = 0
)

// initialize channel depth and concurrent server count from machine properties
func init() {

	ncpu := cpuid.CPU.LogicalCores
	if ncpu < 1 {
		ncpu = runtime.NumCPU()
	}
	if ncpu < 1 {
		ncpu = 1
	}
	numServe = ncpu

	// smaller channel buffers on memory-constrained machines
	chanDepth = 16
	if memory.TotalMemory() < 4*1024*1024*1024 {
		chanDepth = 4
	}
}

// ChanDepth returns the communication channel buffer size
func ChanDepth() int {

	return chanDepth
}

// NumServe returns the number of concurrent processing goroutines to launch
func NumServe() int {

	return numServe
}

var (
	redBold  = color.New(color.FgRed, color.Bold)
	blueBold = color.New(color.FgBlue, color.Bold)
)

// DisplayError prints an error message with a colored prefix to stderr
func DisplayError(format string, params ...any) {

	str := fmt.Sprintf(format, params...)
	fmt.Fprintf(os.Stderr, "\n%s %s\n", redBold.Sprint("ERROR:"), str)
}

// DisplayWarning prints a warning message with a colored prefix to stderr
func DisplayWarning(format string, params ...any) {

	str := fmt.Sprintf(format, params...)
	fmt.Fprintf(os.Stderr, "\n%s %s\n", blueBold.Sprint("WARNING:"), str)
}
