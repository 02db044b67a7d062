package iban

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// SWIFT structural patterns are sequences of "<count>[!]<class>" tokens,
// e.g. "8!n10!n". The bang marks a fixed width; without it the count is a
// maximum. Character classes: n digits, a upper case letters, c alphanumeric,
// e blanks.
var specTokenPattern = regexp.MustCompile(`(\d+)(!)?([nace])`)

var specClasses = map[string]string{
	"n": `\d`,
	"a": `[A-Z]`,
	"c": `[A-Za-z0-9]`,
	"e": ` `,
}

// ConvertBBANSpecToRegex translates a SWIFT structural pattern into an
// anchored regular expression source string.
func ConvertBBANSpecToRegex(spec string) string {
	var sb strings.Builder
	sb.WriteString("^")
	for _, token := range specTokenPattern.FindAllStringSubmatch(spec, -1) {
		count, _ := strconv.Atoi(token[1])
		class := specClasses[token[3]]
		if token[2] == "!" {
			fmt.Fprintf(&sb, "%s{%d}", class, count)
		} else {
			fmt.Fprintf(&sb, "%s{1,%d}", class, count)
		}
	}
	sb.WriteString("$")
	return sb.String()
}

// specPositionClasses expands a structural pattern into one class letter per
// character position, e.g. "4!a2!n" -> "aann". Only meaningful for fully
// fixed width patterns; variable width tokens expand to their maximum.
func specPositionClasses(spec string) string {
	var sb strings.Builder
	for _, token := range specTokenPattern.FindAllStringSubmatch(spec, -1) {
		count, _ := strconv.Atoi(token[1])
		sb.WriteString(strings.Repeat(token[3], count))
	}
	return sb.String()
}

var specRegexCache sync.Map // spec string -> *regexp.Regexp

func specRegex(spec string) *regexp.Regexp {
	if cached, ok := specRegexCache.Load(spec); ok {
		return cached.(*regexp.Regexp)
	}
	re := regexp.MustCompile(ConvertBBANSpecToRegex(spec))
	specRegexCache.Store(spec, re)
	return re
}

// clean normalizes raw user input: whitespace stripped, upper cased.
func clean(value string) string {
	return strings.ToUpper(strings.Join(strings.Fields(value), ""))
}

// formatGroups inserts a space every size characters.
func formatGroups(value string, size int) string {
	var groups []string
	for start := 0; start < len(value); start += size {
		end := start + size
		if end > len(value) {
			end = len(value)
		}
		groups = append(groups, value[start:end])
	}
	return strings.Join(groups, " ")
}

// zfill left pads value with zeros to the given width.
func zfill(value string, width int) string {
	if len(value) >= width {
		return value
	}
	return strings.Repeat("0", width-len(value)) + value
}
