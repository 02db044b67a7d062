package iban

import (
	"database/sql/driver"
	"fmt"

	"github.com/biter777/countries"

	"iban-service/pkg/iban/checksum"
	"iban-service/pkg/iban/registry"
)

// IBAN is an International Bank Account Number: a two letter country code,
// two check digits and the country specific BBAN. The value is held in
// compact form; equality and ordering are defined over that form.
type IBAN struct {
	value string
}

// NewIBAN wraps the input without validating it, so malformed values can be
// held and inspected. Call Validate explicitly before trusting the value.
func NewIBAN(value string) IBAN {
	return IBAN{value: clean(value)}
}

// ParseIBAN normalizes and eagerly validates the input, short circuiting on
// the first failing check (length, structure, mod-97 checksum).
func ParseIBAN(value string) (IBAN, error) {
	i := NewIBAN(value)
	if err := i.Validate(false); err != nil {
		return IBAN{}, err
	}
	return i, nil
}

// GenerateIBAN builds the BBAN from its components, computes the two ISO
// 13616 check digits and assembles the full IBAN. BBAN generation failures
// propagate unchanged.
func GenerateIBAN(countryCode, bankCode, branchCode, accountCode string) (IBAN, error) {
	bban, err := BBANFromComponents(countryCode, bankCode, branchCode, accountCode)
	if err != nil {
		return IBAN{}, err
	}
	cc := clean(countryCode)
	check := 98 - checksum.Mod97(bban.String()+cc+"00")
	i := IBAN{value: fmt.Sprintf("%s%02d%s", cc, check, bban.String())}
	if err := i.Validate(false); err != nil {
		return IBAN{}, err
	}
	return i, nil
}

// Validate re-runs the eager checks: overall length against the country
// spec, country code and character classes, and the mod-97 relation over the
// rearranged string. With validateBBAN the national checksum is checked too.
func (i IBAN) Validate(validateBBAN bool) error {
	if len(i.value) < 4 {
		return newError(KindInvalidLength, i.value, "invalid IBAN length %d", len(i.value))
	}
	cc := i.value[:2]
	if !isLetters(cc) {
		return newError(KindInvalidCountryCode, i.value, "invalid country-code %q", cc)
	}
	spec, ok := registry.CountrySpecFor(cc)
	if !ok {
		return newError(KindInvalidCountryCode, i.value, "unknown country-code %q", cc)
	}
	if len(i.value) != spec.IBANLength {
		return newError(KindInvalidLength, i.value, "invalid IBAN length: expected %d, got %d", spec.IBANLength, len(i.value))
	}
	check, bban := i.value[2:4], i.value[4:]
	if !isDigits(check) {
		return newError(KindInvalidStructure, i.value, "invalid check digit structure %q", check)
	}
	if !specRegex(spec.BBANSpec).MatchString(bban) {
		return newError(KindInvalidStructure, i.value, "invalid BBAN structure for %s", cc)
	}
	if checksum.Mod97(bban+cc+check) != 1 {
		return newError(KindInvalidChecksumDigits, i.value, "invalid checksum digits")
	}
	if validateBBAN {
		if _, err := i.BBAN().ValidateNationalChecksum(); err != nil {
			return err
		}
	}
	return nil
}

// IsValid reports whether the eager checks pass.
func (i IBAN) IsValid() bool {
	return i.Validate(false) == nil
}

func (i IBAN) String() string {
	return i.value
}

// Compact returns the separator free form.
func (i IBAN) Compact() string {
	return i.value
}

// Formatted returns the value space grouped in blocks of four from the left.
func (i IBAN) Formatted() string {
	return formatGroups(i.value, 4)
}

// Length returns the number of characters of the compact form.
func (i IBAN) Length() int {
	return len(i.value)
}

// CountryCode returns the leading ISO 3166-1 alpha-2 code.
func (i IBAN) CountryCode() string {
	if len(i.value) < 2 {
		return i.value
	}
	return i.value[:2]
}

// CheckDigits returns the two mod-97 check digits.
func (i IBAN) CheckDigits() string {
	if len(i.value) < 4 {
		return ""
	}
	return i.value[2:4]
}

// BBAN returns the embedded country specific account number.
func (i IBAN) BBAN() BBAN {
	if len(i.value) < 4 {
		return BBAN{countryCode: i.CountryCode()}
	}
	return BBAN{countryCode: i.value[:2], value: i.value[4:]}
}

// BankCode returns the bank code of the embedded BBAN.
func (i IBAN) BankCode() string { return i.BBAN().BankCode() }

// BranchCode returns the branch code of the embedded BBAN.
func (i IBAN) BranchCode() string { return i.BBAN().BranchCode() }

// AccountCode returns the account code of the embedded BBAN.
func (i IBAN) AccountCode() string { return i.BBAN().AccountCode() }

// AccountID returns the account id of the embedded BBAN.
func (i IBAN) AccountID() string { return i.BBAN().AccountID() }

// AccountType returns the account type of the embedded BBAN.
func (i IBAN) AccountType() string { return i.BBAN().AccountType() }

// AccountHolderID returns the holder id of the embedded BBAN.
func (i IBAN) AccountHolderID() string { return i.BBAN().AccountHolderID() }

// NationalChecksumDigits returns the national checksum of the embedded BBAN.
func (i IBAN) NationalChecksumDigits() string { return i.BBAN().NationalChecksumDigits() }

// Bank resolves the registry record for the IBAN's bank code.
func (i IBAN) Bank() (registry.BankRecord, bool) { return i.BBAN().Bank() }

// BankName returns the display name of the resolved bank.
func (i IBAN) BankName() (string, bool) { return i.BBAN().BankName() }

// BankShortName returns the short name of the resolved bank.
func (i IBAN) BankShortName() (string, bool) { return i.BBAN().BankShortName() }

// BIC resolves the canonical BIC for the IBAN's bank code, soft failing
// when none is registered.
func (i IBAN) BIC() (BIC, bool) { return i.BBAN().BIC() }

// Country resolves the ISO 3166 metadata for the country code. The result
// is countries.Unknown when no metadata exists; that is not an error.
func (i IBAN) Country() countries.CountryCode {
	return countries.ByName(i.CountryCode())
}

// InSEPAZone reports whether the country participates in SEPA.
func (i IBAN) InSEPAZone() bool {
	spec, ok := registry.CountrySpecFor(i.CountryCode())
	return ok && spec.InSEPAZone
}

// MarshalText emits the compact form.
func (i IBAN) MarshalText() ([]byte, error) {
	return []byte(i.value), nil
}

// UnmarshalText parses and validates, returning the typed *Error on
// malformed input so serialization frameworks can surface the kind tag.
func (i *IBAN) UnmarshalText(text []byte) error {
	parsed, err := ParseIBAN(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// Value implements driver.Valuer, storing the compact form.
func (i IBAN) Value() (driver.Value, error) {
	return i.value, nil
}

// Scan implements sql.Scanner, parsing from a string or byte column.
func (i *IBAN) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		return i.UnmarshalText([]byte(v))
	case []byte:
		return i.UnmarshalText(v)
	default:
		return fmt.Errorf("iban: cannot scan %T into IBAN", src)
	}
}

func isLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return len(s) > 0
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
