// Package domain holds the closed set of structural component tags shared by
// the registry position tables and the checksum algorithm accept lists.
package domain

// Component identifies a semantic field within a BBAN.
type Component int

const (
	AccountID Component = iota
	AccountType
	AccountCode
	AccountHolderID
	BankCode
	BranchCode
	NationalChecksumDigits
)

var componentNames = map[Component]string{
	AccountID:              "account_id",
	AccountType:            "account_type",
	AccountCode:            "account_code",
	AccountHolderID:        "account_holder_id",
	BankCode:               "bank_code",
	BranchCode:             "branch_code",
	NationalChecksumDigits: "national_checksum_digits",
}

func (c Component) String() string {
	return componentNames[c]
}

// ComponentFromName maps a registry key back to its Component tag. The second
// return value is false for names outside the closed set.
func ComponentFromName(name string) (Component, bool) {
	for c, n := range componentNames {
		if n == name {
			return c, true
		}
	}
	return 0, false
}

// Range is a half-open [Start, End) character position range within a BBAN.
// The zero value means the component is not present for the country.
type Range struct {
	Start int
	End   int
}

// Empty reports whether the range covers no characters.
func (r Range) Empty() bool {
	return r.Start == r.End
}

// Width returns the number of characters covered by the range.
func (r Range) Width() int {
	return r.End - r.Start
}
