package kegg

import "testing"

type stringTable struct {
	input    string
	expected string
}

func stringTestMatch(t *testing.T, name string, proc func(str string) string, data []stringTable) {

	for _, test := range data {
		actual := proc(test.input)
		if actual != test.expected {
			t.Errorf("%s(%s) = %s, expected %s", name, test.input, actual, test.expected)
		}
	}
}

func TestCompressRunsOfSpaces(t *testing.T) {

	stringTestMatch(t, "CompressRunsOfSpaces,",
		CompressRunsOfSpaces,
		[]stringTable{
			{"double  spaces", "double spaces"},
			{"tab\tand  spaces", "tab and spaces"},
			{"single space", "single space"},
		})
}

func TestSplitInTwoLeft(t *testing.T) {

	stringTestMatch(t, "SplitInTwoLeft,",
		func(str string) string {
			lft, rgt := SplitInTwoLeft(str, "  ")
			return lft + "|" + rgt
		},
		[]stringTable{
			{"K03608  role text", "K03608|role text"},
			{"a  b  c", "a|b  c"},
			{"no separator", "no separator|"},
		})
}

func TestSplitInTwoRight(t *testing.T) {

	stringTestMatch(t, "SplitInTwoRight,",
		func(str string) string {
			lft, rgt := SplitInTwoRight(str, "  ")
			return lft + "|" + rgt
		},
		[]stringTable{
			{"a  b  c", "a  b|c"},
			{"no separator", "no separator|"},
		})
}

func TestChanStringRoundTrip(t *testing.T) {

	str := ChanToString(StringToChan("flatfile text"))
	if str != "flatfile text" {
		t.Errorf("channel round trip = '%s'", str)
	}

	if ChanToString(nil) != "" {
		t.Errorf("nil channel should collect to empty string")
	}
}
