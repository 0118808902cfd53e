package kegg

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

const geneSample = `ENTRY       b1174             CDS       E.coli
NAME        minE;
DEFINITION  cell division topological specificity factor
ORTHOLOGY   K03608  cell division topological specificity factor
ORGANISM    eco  Escherichia coli K-12 MG1655
POSITION    complement(1225861..1226127)
MOTIF       Pfam: MinE
DBLINKS     NCBI-GeneID: 945740
            NCBI-ProteinID: NP_415692
            UniProt: P0A734
///
ENTRY       b1175             CDS       E.coli
NAME        minD;
DEFINITION  membrane ATPase of the MinC-MinD-MinE system
DBLINKS     NCBI-GeneID: 945741
///
`

func collectGenes(t *testing.T, flat string) []GeneRecord {

	var recs []GeneRecord

	err := StreamGeneRecords(strings.NewReader(flat), func(rec *GeneRecord) error {
		recs = append(recs, *rec)
		return nil
	})
	if err != nil {
		t.Fatalf("StreamGeneRecords failed: %s", err.Error())
	}

	return recs
}

func TestStreamGeneRecords(t *testing.T) {

	recs := collectGenes(t, geneSample)

	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}

	first := recs[0]

	if first.Entry != "b1174" {
		t.Errorf("Entry = %s, expected b1174", first.Entry)
	}
	if !reflect.DeepEqual(first.Names, []string{"minE"}) {
		t.Errorf("Names = %v, expected [minE]", first.Names)
	}
	if first.Definition != "cell division topological specificity factor" {
		t.Errorf("unexpected Definition '%s'", first.Definition)
	}
	orth := []Ortholog{{ID: "K03608", Role: "cell division topological specificity factor"}}
	if !reflect.DeepEqual(first.Orthology, orth) {
		t.Errorf("Orthology = %v, expected %v", first.Orthology, orth)
	}
	org := Organism{ID: "eco", Name: "Escherichia coli K-12 MG1655"}
	if first.Organism != org {
		t.Errorf("Organism = %v, expected %v", first.Organism, org)
	}
	if first.Position != "complement(1225861..1226127)" {
		t.Errorf("unexpected Position '%s'", first.Position)
	}
	motif := []DBLink{{Database: "Pfam", IDs: []string{"MinE"}}}
	if !reflect.DeepEqual(first.Motif, motif) {
		t.Errorf("Motif = %v, expected %v", first.Motif, motif)
	}
	links := []DBLink{
		{Database: "NCBI-GeneID", IDs: []string{"945740"}},
		{Database: "NCBI-ProteinID", IDs: []string{"NP_415692"}},
		{Database: "UniProt", IDs: []string{"P0A734"}},
	}
	if !reflect.DeepEqual(first.DBLinks, links) {
		t.Errorf("DBLinks = %v, expected %v", first.DBLinks, links)
	}

	second := recs[1]

	if second.Entry != "b1175" {
		t.Errorf("Entry = %s, expected b1175", second.Entry)
	}
	if !reflect.DeepEqual(second.Names, []string{"minD"}) {
		t.Errorf("Names = %v, expected [minD]", second.Names)
	}
}

func TestGeneConverter(t *testing.T) {

	var entries []string

	for rec := range GeneConverter(strings.NewReader(geneSample)) {
		entries = append(entries, rec.Entry+" "+rec.Names[0])
	}

	if !reflect.DeepEqual(entries, []string{"b1174 minE", "b1175 minD"}) {
		t.Fatalf("unexpected converter output %v", entries)
	}
}

func TestDBLinksContinuation(t *testing.T) {

	flat := "ENTRY       b1174             CDS       E.coli\n" +
		"NAME        minE;\n" +
		"DBLINKS     NCBI-GeneID: 12930923\n" +
		"                987984\n" +
		"///\n"

	recs := collectGenes(t, flat)

	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}

	links := []DBLink{{Database: "NCBI-GeneID", IDs: []string{"12930923", "987984"}}}
	if !reflect.DeepEqual(recs[0].DBLinks, links) {
		t.Fatalf("DBLinks = %v, expected %v", recs[0].DBLinks, links)
	}
}

func TestDBLinksNewPairAfterContinuation(t *testing.T) {

	flat := "DBLINKS     NCBI-GeneID: 1 2\n" +
		"            3 4\n" +
		"            UniProt: P0A734\n" +
		"///\n"

	recs := collectGenes(t, flat)

	links := []DBLink{
		{Database: "NCBI-GeneID", IDs: []string{"1", "2", "3", "4"}},
		{Database: "UniProt", IDs: []string{"P0A734"}},
	}
	if !reflect.DeepEqual(recs[0].DBLinks, links) {
		t.Fatalf("DBLinks = %v, expected %v", recs[0].DBLinks, links)
	}
}

func TestMalformedOrthology(t *testing.T) {

	flat := "ORTHOLOGY   K00001 description text\n///\n"

	err := StreamGeneRecords(strings.NewReader(flat), func(rec *GeneRecord) error {
		return nil
	})

	var mfe *MalformedFieldError
	if !errors.As(err, &mfe) {
		t.Fatalf("expected MalformedFieldError, got %v", err)
	}
	if strings.TrimSpace(mfe.Keyword) != "ORTHOLOGY" {
		t.Errorf("error keyword = '%s', expected ORTHOLOGY", mfe.Keyword)
	}
	if mfe.Data != "K00001 description text" {
		t.Errorf("error data = '%s'", mfe.Data)
	}
}

func TestMalformedMotif(t *testing.T) {

	flat := "MOTIF       Pfam MinE\n///\n"

	err := StreamGeneRecords(strings.NewReader(flat), func(rec *GeneRecord) error {
		return nil
	})

	var mfe *MalformedFieldError
	if !errors.As(err, &mfe) {
		t.Fatalf("expected MalformedFieldError, got %v", err)
	}
}

func TestDanglingDBLinksContinuation(t *testing.T) {

	flat := "DBLINKS     987984\n///\n"

	err := StreamGeneRecords(strings.NewReader(flat), func(rec *GeneRecord) error {
		return nil
	})

	var ere *EmptyReferenceError
	if !errors.As(err, &ere) {
		t.Fatalf("expected EmptyReferenceError, got %v", err)
	}
}

func TestMotifPairsNeverMerge(t *testing.T) {

	flat := "MOTIF       Pfam: MinE\n" +
		"MOTIF       Pfam: MinD\n" +
		"///\n"

	recs := collectGenes(t, flat)

	motif := []DBLink{
		{Database: "Pfam", IDs: []string{"MinE"}},
		{Database: "Pfam", IDs: []string{"MinD"}},
	}
	if !reflect.DeepEqual(recs[0].Motif, motif) {
		t.Fatalf("Motif = %v, expected two separate pairs", recs[0].Motif)
	}
}

func TestTrailingPartialRecordDropped(t *testing.T) {

	flat := "ENTRY       b1174\n///\nENTRY       b1175\nNAME        minD;\n"

	recs := collectGenes(t, flat)

	if len(recs) != 1 {
		t.Fatalf("expected partial trailing record to be dropped, got %d records", len(recs))
	}
	if recs[0].Entry != "b1174" {
		t.Errorf("Entry = %s, expected b1174", recs[0].Entry)
	}
}

func TestRecordPerTerminator(t *testing.T) {

	flat := "///\n///\n"

	recs := collectGenes(t, flat)

	if len(recs) != 2 {
		t.Fatalf("expected one empty record per terminator, got %d", len(recs))
	}
	if recs[0].Entry != "" || recs[1].Entry != "" {
		t.Errorf("empty records expected, got %v", recs)
	}
}

func TestUnrecognizedKeywordIgnored(t *testing.T) {

	flat := "ENTRY       b1174\n" +
		"AASEQ       88\n" +
		"            MALLDFFLSRKKNTANIAKERLQIIVAERRRSDAEPHYLPQLRKDILEVICKYVQIDPEM\n" +
		"NAME        minE;\n" +
		"///\n"

	recs := collectGenes(t, flat)

	if recs[0].Entry != "b1174" {
		t.Errorf("Entry = %s, expected b1174", recs[0].Entry)
	}
	if !reflect.DeepEqual(recs[0].Names, []string{"minE"}) {
		t.Errorf("Names = %v, expected [minE]", recs[0].Names)
	}
}

func TestCallbackErrorAbortsStream(t *testing.T) {

	boom := errors.New("stop")

	count := 0
	err := StreamGeneRecords(strings.NewReader(geneSample), func(rec *GeneRecord) error {
		count++
		return boom
	})

	if !errors.Is(err, boom) {
		t.Fatalf("expected callback error to propagate, got %v", err)
	}
	if count != 1 {
		t.Errorf("expected stream to stop after first record, processed %d", count)
	}
}
