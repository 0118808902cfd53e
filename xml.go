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
// File Name:  xml.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package kegg

import (
	"html"
	"io"
	"os"
	"strings"

	"github.com/gedex/inflector"
)

// GeneXMLConverter parses a KEGG Gene flatfile stream into an XML object
// stream, one GeneRecord object per record. Plural container tags hold
// singular item tags derived by inflection.
func GeneXMLConverter(inp io.Reader) <-chan string {

	if inp == nil {
		return nil
	}

	out := make(chan string, chanDepth)
	if out == nil {
		DisplayError("Unable to create gene XML converter channel")
		os.Exit(1)
	}

	convertGene := func(inp io.Reader, out chan<- string) {

		// close channel when all records have been sent
		defer close(out)

		var buffer strings.Builder

		openItem := func(indent int, tag string) {
			buffer.WriteString(strings.Repeat("  ", indent))
			buffer.WriteString("<" + tag + ">\n")
		}

		closeItem := func(indent int, tag string) {
			buffer.WriteString(strings.Repeat("  ", indent))
			buffer.WriteString("</" + tag + ">\n")
		}

		writeItem := func(indent int, tag, value string) {
			buffer.WriteString(strings.Repeat("  ", indent))
			buffer.WriteString("<" + tag + ">" + html.EscapeString(value) + "</" + tag + ">\n")
		}

		writeList := func(indent int, tag string, values []string) {
			if len(values) < 1 {
				return
			}
			item := inflector.Singularize(tag)
			openItem(indent, tag)
			for _, str := range values {
				writeItem(indent+1, item, str)
			}
			closeItem(indent, tag)
		}

		writeLinks := func(indent int, tag string, links []DBLink) {
			if len(links) < 1 {
				return
			}
			item := inflector.Singularize(tag)
			openItem(indent, tag)
			for _, link := range links {
				openItem(indent+1, item)
				writeItem(indent+2, "Database", link.Database)
				writeList(indent+2, "IDs", link.IDs)
				closeItem(indent+1, item)
			}
			closeItem(indent, tag)
		}

		err := StreamGeneRecords(inp, func(rec *GeneRecord) error {

			buffer.Reset()

			buffer.WriteString("<GeneRecord>\n")

			if rec.Entry != "" {
				writeItem(1, "Entry", rec.Entry)
			}
			writeList(1, "Names", rec.Names)
			if rec.Definition != "" {
				writeItem(1, "Definition", rec.Definition)
			}
			if len(rec.Orthology) > 0 {
				tag := "Orthologs"
				item := inflector.Singularize(tag)
				openItem(1, tag)
				for _, orth := range rec.Orthology {
					openItem(2, item)
					writeItem(3, "ID", orth.ID)
					writeItem(3, "Role", orth.Role)
					closeItem(2, item)
				}
				closeItem(1, tag)
			}
			if rec.Organism.ID != "" || rec.Organism.Name != "" {
				openItem(1, "Organism")
				writeItem(2, "ID", rec.Organism.ID)
				writeItem(2, "Name", rec.Organism.Name)
				closeItem(1, "Organism")
			}
			if rec.Position != "" {
				writeItem(1, "Position", rec.Position)
			}
			writeLinks(1, "Motifs", rec.Motif)
			writeLinks(1, "DBLinks", rec.DBLinks)

			buffer.WriteString("</GeneRecord>\n")

			out <- buffer.String()

			return nil
		})

		if err != nil {
			DisplayWarning("%s", err.Error())
		}
	}

	go convertGene(inp, out)

	return out
}

// GeneToXML converts a KEGG Gene flatfile to an XML string
func GeneToXML(flat string) string {

	return StringToText(flat, GeneXMLConverter)
}
