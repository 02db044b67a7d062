package iban

import (
	"math/rand"

	"iban-service/pkg/iban/domain"
	"iban-service/pkg/iban/registry"
)

// RandomIBAN generates a structurally valid IBAN with correct check digits
// and, where computable, national checksum. With an empty countryCode a
// random eligible country is drawn; the bank code comes from the bank
// registry when the country has registered banks, otherwise it is random
// characters of the right classes.
func RandomIBAN(countryCode string) (IBAN, error) {
	bban, err := RandomBBAN(countryCode)
	if err != nil {
		return IBAN{}, err
	}
	return GenerateIBAN(bban.CountryCode(), bban.BankCode(), bban.BranchCode(), bban.AccountCode())
}

// RandomBBAN generates a random BBAN through the same component assembly as
// BBANFromComponents, so positional layout and national checksums hold.
func RandomBBAN(countryCode string) (BBAN, error) {
	cc := clean(countryCode)
	if cc == "" {
		cc = randomCountry()
	}
	spec, ok := registry.CountrySpecFor(cc)
	if !ok {
		return BBAN{}, newError(KindInvalidCountryCode, countryCode, "unknown country-code %q", countryCode)
	}
	if !spec.HasPositions() {
		return BBAN{}, newError(KindGenerationUnsupported, cc, "generation not supported for %q", cc)
	}

	bankCode := ""
	if banks := registry.BanksInCountry(cc); len(banks) > 0 {
		bankCode = banks[rand.Intn(len(banks))].BankCode
	} else {
		bankCode = randomComponent(spec, domain.BankCode)
	}
	accountCode := randomComponent(spec, domain.AccountCode)
	return BBANFromComponents(cc, bankCode, "", accountCode)
}

// randomCountry draws a country whose layout can be filled without manual
// input: positional data present and every position outside the generated
// components admitting a zero fill.
func randomCountry() string {
	eligible := make([]string, 0, 64)
	for _, code := range registry.Countries() {
		if spec, ok := registry.CountrySpecFor(code); ok && canRandomize(spec) {
			eligible = append(eligible, code)
		}
	}
	return eligible[rand.Intn(len(eligible))]
}

// canRandomize reports whether zero filling everything outside bank, branch,
// account and checksum yields a structurally valid BBAN. Countries with
// letter-class extras (e.g. the Brazilian account type) need caller input.
func canRandomize(spec registry.CountrySpec) bool {
	if !spec.HasPositions() {
		return false
	}
	classes := specPositionClasses(spec.BBANSpec)
	if len(classes) != spec.BBANLength {
		return false
	}
	covered := make([]bool, spec.BBANLength)
	for _, component := range []domain.Component{
		domain.BankCode, domain.BranchCode, domain.AccountCode, domain.NationalChecksumDigits,
	} {
		rng := spec.PositionRange(component)
		for i := rng.Start; i < rng.End && i < len(covered); i++ {
			covered[i] = true
		}
	}
	for i := 0; i < len(classes); i++ {
		if !covered[i] && classes[i] == 'a' {
			return false
		}
	}
	return true
}

// randomComponent draws characters matching the spec's class at each of the
// component's positions.
func randomComponent(spec registry.CountrySpec, component domain.Component) string {
	rng := spec.PositionRange(component)
	classes := specPositionClasses(spec.BBANSpec)
	out := make([]byte, rng.Width())
	for i := range out {
		class := byte('n')
		if pos := rng.Start + i; pos < len(classes) {
			class = classes[pos]
		}
		switch class {
		case 'a':
			out[i] = byte('A' + rand.Intn(26))
		default:
			out[i] = byte('0' + rand.Intn(10))
		}
	}
	return string(out)
}
