// Package registry is the process wide store of IBAN country specifications
// and bank records. The tables ship as embedded JSON, are parsed once on
// first use and are never mutated afterwards, so every accessor is a plain
// read of immutable data and safe for concurrent use.
package registry

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"iban-service/pkg/iban/domain"
)

//go:embed data/iban_registry.json data/bank_registry.json
var dataFS embed.FS

// CountrySpec describes the structure of a country's BBAN: its fixed length,
// the position range of every component and the structural character pattern.
type CountrySpec struct {
	CountryCode         string
	BBANSpec            string
	BBANLength          int
	IBANLength          int
	Positions           map[domain.Component]domain.Range
	BICLookupComponents []domain.Component
	InSEPAZone          bool
}

// HasPositions reports whether the country ships a component position table.
// Countries without one support pattern validation but not component based
// generation.
func (s CountrySpec) HasPositions() bool {
	return len(s.Positions) > 0
}

// PositionRange returns the range for a component, or the empty range when
// the component is not part of the country's BBAN.
func (s CountrySpec) PositionRange(c domain.Component) domain.Range {
	return s.Positions[c]
}

// BankRecord is one entry of the bank code table. Multiple records may share
// a bank code; the record marked primary carries the canonical BIC.
type BankRecord struct {
	CountryCode  string `json:"country_code"`
	BankCode     string `json:"bank_code"`
	Name         string `json:"name"`
	ShortName    string `json:"short_name"`
	BIC          string `json:"bic"`
	Primary      bool   `json:"primary"`
	ChecksumAlgo string `json:"checksum_algo,omitempty"`
}

type bankKey struct {
	country string
	code    string
}

var (
	loadOnce       sync.Once
	countrySpecs   map[string]CountrySpec
	bankRecords    map[bankKey][]BankRecord
	banksByCountry map[string][]BankRecord
	allBanks       []BankRecord
)

type rawCountrySpec struct {
	BBANSpec            string            `json:"bban_spec"`
	BBANLength          int               `json:"bban_length"`
	IBANLength          int               `json:"iban_length"`
	Positions           map[string][2]int `json:"positions"`
	BICLookupComponents []string          `json:"bic_lookup_components"`
	InSEPAZone          bool              `json:"in_sepa_zone"`
}

func load() {
	raw, err := dataFS.ReadFile("data/iban_registry.json")
	if err != nil {
		panic(fmt.Sprintf("registry: missing embedded iban registry: %v", err))
	}
	var rawSpecs map[string]rawCountrySpec
	if err := json.Unmarshal(raw, &rawSpecs); err != nil {
		panic(fmt.Sprintf("registry: malformed iban registry: %v", err))
	}

	countrySpecs = make(map[string]CountrySpec, len(rawSpecs))
	for code, rs := range rawSpecs {
		spec := CountrySpec{
			CountryCode: code,
			BBANSpec:    rs.BBANSpec,
			BBANLength:  rs.BBANLength,
			IBANLength:  rs.IBANLength,
			InSEPAZone:  rs.InSEPAZone,
		}
		if len(rs.Positions) > 0 {
			spec.Positions = make(map[domain.Component]domain.Range, len(rs.Positions))
			for name, rng := range rs.Positions {
				component, ok := domain.ComponentFromName(name)
				if !ok {
					panic(fmt.Sprintf("registry: unknown component %q for %s", name, code))
				}
				spec.Positions[component] = domain.Range{Start: rng[0], End: rng[1]}
			}
		}
		for _, name := range rs.BICLookupComponents {
			component, ok := domain.ComponentFromName(name)
			if !ok {
				panic(fmt.Sprintf("registry: unknown lookup component %q for %s", name, code))
			}
			spec.BICLookupComponents = append(spec.BICLookupComponents, component)
		}
		countrySpecs[code] = spec
	}

	raw, err = dataFS.ReadFile("data/bank_registry.json")
	if err != nil {
		panic(fmt.Sprintf("registry: missing embedded bank registry: %v", err))
	}
	var banks []BankRecord
	if err := json.Unmarshal(raw, &banks); err != nil {
		panic(fmt.Sprintf("registry: malformed bank registry: %v", err))
	}

	bankRecords = make(map[bankKey][]BankRecord)
	banksByCountry = make(map[string][]BankRecord)
	allBanks = banks
	for _, bank := range banks {
		key := bankKey{country: bank.CountryCode, code: bank.BankCode}
		bankRecords[key] = append(bankRecords[key], bank)
		banksByCountry[bank.CountryCode] = append(banksByCountry[bank.CountryCode], bank)
	}
	// Canonical record first.
	for _, records := range bankRecords {
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Primary && !records[j].Primary
		})
	}
}

// CountrySpecFor resolves the spec for an ISO 3166-1 alpha-2 country code.
func CountrySpecFor(countryCode string) (CountrySpec, bool) {
	loadOnce.Do(load)
	spec, ok := countrySpecs[countryCode]
	return spec, ok
}

// Countries returns every country code with an IBAN spec, sorted.
func Countries() []string {
	loadOnce.Do(load)
	codes := make([]string, 0, len(countrySpecs))
	for code := range countrySpecs {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// BankRecords returns every bank record matching (country, bank code), the
// primary record first. A nil result means the key is unknown.
func BankRecords(countryCode, bankCode string) []BankRecord {
	loadOnce.Do(load)
	return bankRecords[bankKey{country: countryCode, code: bankCode}]
}

// Banks returns the flat list of all bank records.
func Banks() []BankRecord {
	loadOnce.Do(load)
	return allBanks
}

// BanksInCountry returns every bank record of a country.
func BanksInCountry(countryCode string) []BankRecord {
	loadOnce.Do(load)
	return banksByCountry[countryCode]
}

// Get exposes the raw category tables: "iban", "bank_code", "bank" and
// "country". Asking for an unknown category is a programmer error and
// panics; unknown keys inside a table are simply absent.
func Get(category string) interface{} {
	loadOnce.Do(load)
	switch category {
	case "iban":
		return countrySpecs
	case "bank_code":
		return bankRecords
	case "bank":
		return allBanks
	case "country":
		return banksByCountry
	default:
		panic(fmt.Sprintf("registry: unknown category %q", category))
	}
}
