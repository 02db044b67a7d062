package iban

import (
	"iban-service/pkg/iban/checksum"
	"iban-service/pkg/iban/domain"
	"iban-service/pkg/iban/registry"
)

// BBAN is the country specific Basic Bank Account Number: a fixed length
// string whose component layout is decided by the national authority and
// described by the country spec. Values are immutable once constructed.
type BBAN struct {
	countryCode string
	value       string
}

// NewBBAN wraps an already sliced BBAN string. No validation is performed;
// use the accessors and ValidateNationalChecksum afterwards.
func NewBBAN(countryCode, value string) BBAN {
	return BBAN{countryCode: clean(countryCode), value: clean(value)}
}

// BBANFromComponents builds a BBAN from its national components. Supplied
// values are normalized, zero padded to their declared widths and assembled
// into the country's positional layout; the national checksum, where the
// country has one, is computed and written into its own range.
//
// A bank code spanning exactly bank width plus branch width is split, which
// accommodates callers holding a single unsplit identifier (e.g. a UK sort
// code appended to the institution code).
func BBANFromComponents(countryCode, bankCode, branchCode, accountCode string) (BBAN, error) {
	countryCode = clean(countryCode)
	spec, ok := registry.CountrySpecFor(countryCode)
	if !ok {
		return BBAN{}, newError(KindInvalidCountryCode, countryCode, "unknown country-code %q", countryCode)
	}
	if !spec.HasPositions() {
		return BBAN{}, newError(KindGenerationUnsupported, countryCode, "BBAN generation for %s not supported", countryCode)
	}

	bankWidth := spec.PositionRange(domain.BankCode).Width()
	branchWidth := spec.PositionRange(domain.BranchCode).Width()
	accountWidth := spec.PositionRange(domain.AccountCode).Width()

	bankCode = clean(bankCode)
	branchCode = clean(branchCode)
	accountCode = clean(accountCode)

	if len(bankCode) == bankWidth+branchWidth && branchWidth > 0 {
		bankCode, branchCode = bankCode[:bankWidth], bankCode[bankWidth:]
	}

	if len(bankCode) > bankWidth {
		return BBAN{}, newError(KindInvalidBankCode, bankCode, "bank code exceeds maximum size %d", bankWidth)
	}
	if len(branchCode) > branchWidth {
		return BBAN{}, newError(KindInvalidBranchCode, branchCode, "branch code exceeds maximum size %d", branchWidth)
	}
	if len(accountCode) > accountWidth {
		return BBAN{}, newError(KindInvalidAccountCode, accountCode, "account code exceeds maximum size %d", accountWidth)
	}

	components := map[domain.Component]string{
		domain.BankCode:    zfill(bankCode, bankWidth),
		domain.BranchCode:  zfill(branchCode, branchWidth),
		domain.AccountCode: zfill(accountCode, accountWidth),
	}
	components[domain.NationalChecksumDigits] = computeNationalChecksum(countryCode, components)

	assembled := make([]byte, spec.BBANLength)
	for i := range assembled {
		assembled[i] = '0'
	}
	for component, value := range components {
		rng := spec.PositionRange(component)
		if rng.Empty() {
			continue
		}
		copy(assembled[rng.End-len(value):rng.End], value)
	}

	return BBAN{countryCode: countryCode, value: string(assembled)}, nil
}

// computeNationalChecksum runs the country's default algorithm over the
// padded components. Countries without a registered algorithm yield "".
func computeNationalChecksum(countryCode string, components map[domain.Component]string) string {
	algo, ok := checksum.Lookup(countryCode, "default")
	if !ok {
		return ""
	}
	values := make([]string, 0, len(algo.Accepts()))
	for _, component := range algo.Accepts() {
		values = append(values, components[component])
	}
	return algo.Compute(values)
}

func (b BBAN) String() string {
	return b.value
}

// CountryCode returns the ISO 3166-1 alpha-2 code the BBAN belongs to.
func (b BBAN) CountryCode() string {
	return b.countryCode
}

// Length returns the number of characters of the BBAN.
func (b BBAN) Length() int {
	return len(b.value)
}

func (b BBAN) spec() (registry.CountrySpec, error) {
	spec, ok := registry.CountrySpecFor(b.countryCode)
	if !ok {
		return registry.CountrySpec{}, newError(KindInvalidCountryCode, b.countryCode, "unknown country-code %q", b.countryCode)
	}
	return spec, nil
}

// component reads the substring declared for the component, or "" when the
// component is absent for the country or the value is too short to cover it.
func (b BBAN) component(c domain.Component) string {
	spec, err := b.spec()
	if err != nil {
		return ""
	}
	rng := spec.PositionRange(c)
	if rng.Empty() || rng.End > len(b.value) {
		return ""
	}
	return b.value[rng.Start:rng.End]
}

// BankCode returns the country specific bank code.
func (b BBAN) BankCode() string {
	return b.component(domain.BankCode)
}

// BranchCode returns the branch code, where the country has one.
func (b BBAN) BranchCode() string {
	return b.component(domain.BranchCode)
}

// AccountCode returns the domestic account code.
func (b BBAN) AccountCode() string {
	return b.component(domain.AccountCode)
}

// AccountID returns the holder specific account identification (Brazil).
func (b BBAN) AccountID() string {
	return b.component(domain.AccountID)
}

// AccountType returns the account type specifier (Brazil, Bulgaria, Iceland).
func (b BBAN) AccountType() string {
	return b.component(domain.AccountType)
}

// AccountHolderID returns the account holder's national id (Iceland).
func (b BBAN) AccountHolderID() string {
	return b.component(domain.AccountHolderID)
}

// NationalChecksumDigits returns the national checksum digits, if any.
func (b BBAN) NationalChecksumDigits() string {
	return b.component(domain.NationalChecksumDigits)
}

// ValidateNationalChecksum checks the country specific checksum. The first
// return value reports whether there was anything to check: countries with
// no registered algorithm (and banks with no override) come back unchecked
// and error free.
func (b BBAN) ValidateNationalChecksum() (bool, error) {
	algoName := "default"
	if bank, ok := b.Bank(); ok && bank.ChecksumAlgo != "" {
		algoName = bank.ChecksumAlgo
	}
	algo, ok := checksum.Lookup(b.countryCode, algoName)
	if !ok {
		return false, nil
	}
	values := make([]string, 0, len(algo.Accepts()))
	for _, component := range algo.Accepts() {
		values = append(values, b.component(component))
	}
	if !algo.Validate(values, b.NationalChecksumDigits()) {
		return true, newError(KindInvalidBBANChecksum, b.value, "invalid national checksum")
	}
	return true, nil
}

// Bank resolves the registry record for the BBAN's bank code, falling back
// to the branch code for countries whose records are keyed that way.
func (b BBAN) Bank() (registry.BankRecord, bool) {
	key := b.BankCode()
	if key == "" {
		key = b.BranchCode()
	}
	records := registry.BankRecords(b.countryCode, key)
	if len(records) == 0 {
		return registry.BankRecord{}, false
	}
	return records[0], true
}

// BankName returns the display name of the resolved bank.
func (b BBAN) BankName() (string, bool) {
	bank, ok := b.Bank()
	return bank.Name, ok
}

// BankShortName returns the short name of the resolved bank.
func (b BBAN) BankShortName() (string, bool) {
	bank, ok := b.Bank()
	return bank.ShortName, ok
}

// BIC derives the lookup key declared by the country spec (bank code alone
// unless overridden) and resolves it against the bank registry. The lookup
// is soft: no registered BIC simply yields ok == false.
func (b BBAN) BIC() (BIC, bool) {
	spec, err := b.spec()
	if err != nil {
		return BIC{}, false
	}
	lookup := spec.BICLookupComponents
	if len(lookup) == 0 {
		lookup = []domain.Component{domain.BankCode}
	}
	key := ""
	for _, component := range lookup {
		key += b.component(component)
	}
	bic, err := BICFromBankCode(b.countryCode, key)
	if err != nil {
		return BIC{}, false
	}
	return bic, true
}
