package iban

import (
	"database/sql/driver"
	"fmt"
	"regexp"

	"github.com/biter777/countries"

	"iban-service/pkg/iban/registry"
)

// BICType classifies a BIC by the eighth character of its compact form, as
// defined by ISO 9362 for the second location-code character.
type BICType int

const (
	BICTypeDefault BICType = iota
	BICTypeTesting
	BICTypePassive
	BICTypeReverseBilling
)

func (t BICType) String() string {
	switch t {
	case BICTypeTesting:
		return "testing"
	case BICTypePassive:
		return "passive"
	case BICTypeReverseBilling:
		return "reverse billing"
	default:
		return "default"
	}
}

var (
	bicPattern       = regexp.MustCompile(`^[A-Z0-9]{4}[A-Z]{2}[A-Z0-9]{2}([A-Z0-9]{3})?$`)
	bicStrictPattern = regexp.MustCompile(`^[A-Z]{4}[A-Z]{2}[A-Z0-9]{2}([A-Z0-9]{3})?$`)
)

// BIC is a Business Identifier Code (ISO 9362): a 4 character bank code, a
// 2 letter country code, a 2 character location code and an optional 3
// character branch code.
type BIC struct {
	value string
}

// NewBIC wraps the input without validating it. Call Validate explicitly
// before trusting the value.
func NewBIC(value string) BIC {
	return BIC{value: clean(value)}
}

// ParseBIC normalizes and eagerly validates the input. Digits in the bank
// code are accepted, per the 2022 revision of ISO 9362.
func ParseBIC(value string) (BIC, error) {
	b := NewBIC(value)
	if err := b.Validate(false); err != nil {
		return BIC{}, err
	}
	return b, nil
}

// ParseBICStrict is ParseBIC with strict compliance: bank codes containing
// digits are rejected as structurally invalid.
func ParseBICStrict(value string) (BIC, error) {
	b := NewBIC(value)
	if err := b.Validate(true); err != nil {
		return BIC{}, err
	}
	return b, nil
}

// Validate checks length (8 or 11), per-position character classes and that
// the country code is an assigned ISO 3166-1 code. The country check is
// deliberately wider than the IBAN registry: plenty of BIC countries issue
// no IBANs.
func (b BIC) Validate(strict bool) error {
	if len(b.value) != 8 && len(b.value) != 11 {
		return newError(KindInvalidLength, b.value, "invalid BIC length %d, expected 8 or 11", len(b.value))
	}
	pattern := bicPattern
	if strict {
		pattern = bicStrictPattern
	}
	if !pattern.MatchString(b.value) {
		return newError(KindInvalidStructure, b.value, "invalid BIC structure")
	}
	if countries.ByName(b.value[4:6]) == countries.Unknown {
		return newError(KindInvalidCountryCode, b.value, "invalid country-code %q", b.value[4:6])
	}
	return nil
}

// IsValid reports whether lenient validation passes.
func (b BIC) IsValid() bool {
	return b.Validate(false) == nil
}

func (b BIC) String() string {
	return b.value
}

// Compact returns the separator free form.
func (b BIC) Compact() string {
	return b.value
}

// Formatted returns the value grouped as bank, country, location and branch
// code ("GENO DE M1 GLS").
func (b BIC) Formatted() string {
	if len(b.value) < 8 {
		return b.value
	}
	out := b.value[:4] + " " + b.value[4:6] + " " + b.value[6:8]
	if len(b.value) > 8 {
		out += " " + b.value[8:]
	}
	return out
}

// Length returns the number of characters of the compact form.
func (b BIC) Length() int {
	return len(b.value)
}

// BankCode returns the 4 character institution code.
func (b BIC) BankCode() string {
	if len(b.value) < 4 {
		return b.value
	}
	return b.value[:4]
}

// CountryCode returns the ISO 3166-1 alpha-2 country code.
func (b BIC) CountryCode() string {
	if len(b.value) < 6 {
		return ""
	}
	return b.value[4:6]
}

// LocationCode returns the 2 character location code.
func (b BIC) LocationCode() string {
	if len(b.value) < 8 {
		return ""
	}
	return b.value[6:8]
}

// BranchCode returns the 3 character branch code, empty for 8 character
// BICs.
func (b BIC) BranchCode() string {
	if len(b.value) < 11 {
		return ""
	}
	return b.value[8:11]
}

// Type classifies the BIC from the second location-code character: "0" is a
// testing BIC, "1" a passive participant, "2" reverse billing.
func (b BIC) Type() BICType {
	if len(b.value) < 8 {
		return BICTypeDefault
	}
	switch b.value[7] {
	case '0':
		return BICTypeTesting
	case '1':
		return BICTypePassive
	case '2':
		return BICTypeReverseBilling
	default:
		return BICTypeDefault
	}
}

// Country resolves the ISO 3166 metadata for the country code.
func (b BIC) Country() countries.CountryCode {
	return countries.ByName(b.CountryCode())
}

// records returns every bank registry record carrying this BIC. An 8
// character BIC also matches its head-office form with the "XXX" branch.
func (b BIC) records() []registry.BankRecord {
	want := b.value
	wantHead := want
	if len(want) == 8 {
		wantHead = want + "XXX"
	}
	var out []registry.BankRecord
	for _, record := range registry.BanksInCountry(b.CountryCode()) {
		if record.BIC == want || record.BIC == wantHead {
			out = append(out, record)
		}
	}
	return out
}

// Exists reports whether any bank registry record carries this BIC.
func (b BIC) Exists() bool {
	return len(b.records()) > 0
}

// DomesticBankCodes returns the national bank codes registered under this
// BIC, in registry order.
func (b BIC) DomesticBankCodes() []string {
	records := b.records()
	codes := make([]string, 0, len(records))
	for _, record := range records {
		codes = append(codes, record.BankCode)
	}
	return codes
}

// BankNames returns the display names of the banks registered under this
// BIC.
func (b BIC) BankNames() []string {
	records := b.records()
	names := make([]string, 0, len(records))
	for _, record := range records {
		names = append(names, record.Name)
	}
	return names
}

// BankShortNames returns the short names of the banks registered under this
// BIC.
func (b BIC) BankShortNames() []string {
	records := b.records()
	names := make([]string, 0, len(records))
	for _, record := range records {
		names = append(names, record.ShortName)
	}
	return names
}

// BICFromBankCode resolves the canonical BIC for a national bank code. When
// several records share the code the primary one wins.
func BICFromBankCode(countryCode, bankCode string) (BIC, error) {
	records := registry.BankRecords(clean(countryCode), clean(bankCode))
	for _, record := range records {
		if record.BIC != "" {
			return BIC{value: record.BIC}, nil
		}
	}
	return BIC{}, newError(KindInvalidBankCode, bankCode, "unknown bank code %q for country %q", bankCode, countryCode)
}

// BICCandidatesFromBankCode resolves every BIC registered for a national
// bank code, the canonical one first. An empty result is reported as an
// invalid bank code rather than returned.
func BICCandidatesFromBankCode(countryCode, bankCode string) ([]BIC, error) {
	records := registry.BankRecords(clean(countryCode), clean(bankCode))
	var out []BIC
	for _, record := range records {
		if record.BIC != "" {
			out = append(out, BIC{value: record.BIC})
		}
	}
	if len(out) == 0 {
		return nil, newError(KindInvalidBankCode, bankCode, "unknown bank code %q for country %q", bankCode, countryCode)
	}
	return out, nil
}

// MarshalText emits the compact form.
func (b BIC) MarshalText() ([]byte, error) {
	return []byte(b.value), nil
}

// UnmarshalText parses leniently, returning the typed *Error on malformed
// input.
func (b *BIC) UnmarshalText(text []byte) error {
	parsed, err := ParseBIC(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// Value implements driver.Valuer, storing the compact form.
func (b BIC) Value() (driver.Value, error) {
	return b.value, nil
}

// Scan implements sql.Scanner, parsing from a string or byte column.
func (b *BIC) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		return b.UnmarshalText([]byte(v))
	case []byte:
		return b.UnmarshalText(v)
	default:
		return fmt.Errorf("iban: cannot scan %T into BIC", src)
	}
}
