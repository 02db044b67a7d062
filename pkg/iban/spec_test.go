package iban

import "testing"

func TestConvertBBANSpecToRegex(t *testing.T) {
	cases := map[string]string{
		"5!n":         `^\d{5}$`,
		"3n":          `^\d{1,3}$`,
		"4!a6!n8!n":   `^[A-Z]{4}\d{6}\d{8}$`,
		"1!a10!n12!c": `^[A-Z]{1}\d{10}[A-Za-z0-9]{12}$`,
		"2!e":         `^ {2}$`,
	}
	for spec, expected := range cases {
		if got := ConvertBBANSpecToRegex(spec); got != expected {
			t.Errorf("ConvertBBANSpecToRegex(%q) = %q, expected %q", spec, got, expected)
		}
	}
}

func TestSpecPositionClasses(t *testing.T) {
	if got := specPositionClasses("4!a2!n3!c"); got != "aannccc" {
		t.Errorf("Expected aannccc, got %q", got)
	}
}

func TestClean(t *testing.T) {
	cases := map[string]string{
		"de89 3704 0044 0532 0130 00": "DE89370400440532013000",
		" GB29NWBK60161331926819 ":    "GB29NWBK60161331926819",
		"fr14\t2004 1010":             "FR1420041010",
	}
	for input, expected := range cases {
		if got := clean(input); got != expected {
			t.Errorf("clean(%q) = %q, expected %q", input, got, expected)
		}
	}
}

func TestFormatGroups(t *testing.T) {
	if got := formatGroups("DE89370400440532013000", 4); got != "DE89 3704 0044 0532 0130 00" {
		t.Errorf("Unexpected grouping %q", got)
	}
}

func TestZfill(t *testing.T) {
	if got := zfill("42", 5); got != "00042" {
		t.Errorf("Expected 00042, got %q", got)
	}
	if got := zfill("123456", 5); got != "123456" {
		t.Errorf("Expected 123456 unchanged, got %q", got)
	}
}
