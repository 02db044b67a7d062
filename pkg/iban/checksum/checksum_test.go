package checksum

import (
	"testing"
)

func TestNumerify(t *testing.T) {
	cases := map[string]string{
		"00":             "0",
		"97":             "97",
		"AB":             "1011",
		"Z9":             "359",
		"NWBK601613GB00": "23321120601613161100",
	}
	for input, expected := range cases {
		if got := Numerify(input).String(); got != expected {
			t.Errorf("Numerify(%q) = %s, expected %s", input, got, expected)
		}
	}
}

func TestMod97(t *testing.T) {
	// Rearranged form of DE89370400440532013000.
	if got := Mod97("370400440532013000DE89"); got != 1 {
		t.Errorf("Expected remainder 1, got %d", got)
	}
	if got := Mod97("370400440532013000DE00"); got != 9 {
		t.Errorf("Expected remainder 9, got %d", got)
	}
}

func TestISO7064Compute(t *testing.T) {
	algo, ok := Lookup("PT", "default")
	if !ok {
		t.Fatal("No default algorithm registered for PT")
	}
	// PT50 0002 0123 1234567890154
	got := algo.Compute([]string{"0002", "0123", "12345678901"})
	if got != "54" {
		t.Errorf("Expected checksum 54, got %s", got)
	}
	if !algo.Validate([]string{"0002", "0123", "12345678901"}, "54") {
		t.Error("Expected checksum 54 to validate")
	}
	if algo.Validate([]string{"0002", "0123", "12345678901"}, "55") {
		t.Error("Expected checksum 55 to fail")
	}
}

func TestFranceCleRIB(t *testing.T) {
	algo, ok := Lookup("FR", "default")
	if !ok {
		t.Fatal("No default algorithm registered for FR")
	}
	cases := []struct {
		bank, branch, account string
		expected              string
	}{
		// Letters in the account fold through the RIB table.
		{"20041", "01005", "0500013M026", "06"},
	}
	for _, c := range cases {
		if got := algo.Compute([]string{c.bank, c.branch, c.account}); got != c.expected {
			t.Errorf("Compute(%s, %s, %s) = %s, expected %s", c.bank, c.branch, c.account, got, c.expected)
		}
	}
}

func TestItalyCIN(t *testing.T) {
	algo, ok := Lookup("IT", "default")
	if !ok {
		t.Fatal("No default algorithm registered for IT")
	}
	cases := []struct {
		bank, branch, account string
		expected              string
	}{
		{"05428", "11101", "000000123456", "X"},
		{"05387", "03601", "000000198036", "T"},
	}
	for _, c := range cases {
		if got := algo.Compute([]string{c.bank, c.branch, c.account}); got != c.expected {
			t.Errorf("CIN(%s, %s, %s) = %s, expected %s", c.bank, c.branch, c.account, got, c.expected)
		}
	}

	// San Marino shares the CIN algorithm.
	sm, ok := Lookup("SM", "default")
	if !ok {
		t.Fatal("No default algorithm registered for SM")
	}
	if got := sm.Compute([]string{"03225", "09800", "000000270100"}); got != "U" {
		t.Errorf("Expected CIN U, got %s", got)
	}
}

func TestBelgiumMod97(t *testing.T) {
	algo, ok := Lookup("BE", "default")
	if !ok {
		t.Fatal("No default algorithm registered for BE")
	}
	if got := algo.Compute([]string{"539", "0075470"}); got != "34" {
		t.Errorf("Expected checksum 34, got %s", got)
	}
	// A zero remainder folds to 97.
	if got := algo.Compute([]string{"100", "0000063"}); got != "97" {
		t.Errorf("Expected folded checksum 97, got %s", got)
	}
}

func TestSpainControlDigits(t *testing.T) {
	algo, ok := Lookup("ES", "default")
	if !ok {
		t.Fatal("No default algorithm registered for ES")
	}
	if got := algo.Compute([]string{"2100", "0418", "0200051332"}); got != "45" {
		t.Errorf("Expected control digits 45, got %s", got)
	}
	if algo.Validate([]string{"2100", "0418", "0200051332"}, "44") {
		t.Error("Expected control digits 44 to fail")
	}
}

func TestWeightedMod11(t *testing.T) {
	nl, ok := Lookup("NL", "default")
	if !ok {
		t.Fatal("No default algorithm registered for NL")
	}
	if !nl.Validate([]string{"0417164300"}, "") {
		t.Error("Expected elfproef to pass for 0417164300")
	}
	if nl.Validate([]string{"0417164301"}, "") {
		t.Error("Expected elfproef to fail for 0417164301")
	}

	no, ok := Lookup("NO", "default")
	if !ok {
		t.Fatal("No default algorithm registered for NO")
	}
	if !no.Validate([]string{"8601", "1117947"}, "") {
		t.Error("Expected checksum to pass for 86011117947")
	}
	if no.Validate([]string{"8601", "1117948"}, "") {
		t.Error("Expected checksum to fail for 86011117948")
	}

	// Short or long inputs are a caller contract violation, never a pass.
	for _, input := range []string{"", "04171643", "041716430099"} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Expected panic for %d digit input %q", len(input), input)
				}
			}()
			nl.Validate([]string{input}, "")
		}()
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("DE", "default"); ok {
		t.Error("Expected no algorithm for DE")
	}
	if _, ok := Lookup("FR", "nonexistent"); ok {
		t.Error("Expected no algorithm named nonexistent")
	}
}
