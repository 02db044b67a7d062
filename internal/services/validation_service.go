package services

import (
	"errors"

	"iban-service/pkg/iban"
)

// ValidationError is the report form of a failed check.
type ValidationError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type BankInfo struct {
	Name      string `json:"name"`
	ShortName string `json:"short_name,omitempty"`
	BIC       string `json:"bic,omitempty"`
}

// IBANReport is the full decomposition returned by the validation and
// lookup endpoints and stored per item by the batch worker.
type IBANReport struct {
	Input                  string           `json:"input"`
	Valid                  bool             `json:"valid"`
	Error                  *ValidationError `json:"error,omitempty"`
	Compact                string           `json:"compact,omitempty"`
	Formatted              string           `json:"formatted,omitempty"`
	CountryCode            string           `json:"country_code,omitempty"`
	CountryName            string           `json:"country_name,omitempty"`
	CheckDigits            string           `json:"check_digits,omitempty"`
	BankCode               string           `json:"bank_code,omitempty"`
	BranchCode             string           `json:"branch_code,omitempty"`
	AccountCode            string           `json:"account_code,omitempty"`
	AccountID              string           `json:"account_id,omitempty"`
	AccountType            string           `json:"account_type,omitempty"`
	AccountHolderID        string           `json:"account_holder_id,omitempty"`
	NationalChecksumDigits string           `json:"national_checksum_digits,omitempty"`
	Bank                   *BankInfo        `json:"bank,omitempty"`
	BIC                    string           `json:"bic,omitempty"`
	InSEPAZone             bool             `json:"in_sepa_zone"`
}

// BICReport is the decomposition of a Business Identifier Code.
type BICReport struct {
	Input             string           `json:"input"`
	Valid             bool             `json:"valid"`
	Error             *ValidationError `json:"error,omitempty"`
	Compact           string           `json:"compact,omitempty"`
	Formatted         string           `json:"formatted,omitempty"`
	BankCode          string           `json:"bank_code,omitempty"`
	CountryCode       string           `json:"country_code,omitempty"`
	CountryName       string           `json:"country_name,omitempty"`
	LocationCode      string           `json:"location_code,omitempty"`
	BranchCode        string           `json:"branch_code,omitempty"`
	Type              string           `json:"type,omitempty"`
	Exists            bool             `json:"exists"`
	DomesticBankCodes []string         `json:"domestic_bank_codes,omitempty"`
	BankNames         []string         `json:"bank_names,omitempty"`
}

func reportError(err error) *ValidationError {
	var typed *iban.Error
	if errors.As(err, &typed) {
		return &ValidationError{Kind: string(typed.Kind), Message: typed.Message}
	}
	return &ValidationError{Kind: "invalid", Message: err.Error()}
}

// BuildIBANReport validates the input and decomposes it into the report
// form. Invalid inputs yield a report with Valid false and the error kind;
// this is not a transport failure.
func BuildIBANReport(value string, validateBBAN bool) IBANReport {
	report := IBANReport{Input: value}

	parsed := iban.NewIBAN(value)
	if err := parsed.Validate(validateBBAN); err != nil {
		report.Error = reportError(err)
		return report
	}

	report.Valid = true
	report.Compact = parsed.Compact()
	report.Formatted = parsed.Formatted()
	report.CountryCode = parsed.CountryCode()
	report.CheckDigits = parsed.CheckDigits()
	report.BankCode = parsed.BankCode()
	report.BranchCode = parsed.BranchCode()
	report.AccountCode = parsed.AccountCode()
	report.AccountID = parsed.AccountID()
	report.AccountType = parsed.AccountType()
	report.AccountHolderID = parsed.AccountHolderID()
	report.NationalChecksumDigits = parsed.NationalChecksumDigits()
	report.InSEPAZone = parsed.InSEPAZone()
	report.CountryName = parsed.Country().String()

	if bank, ok := parsed.Bank(); ok {
		report.Bank = &BankInfo{Name: bank.Name, ShortName: bank.ShortName, BIC: bank.BIC}
	}
	if bic, ok := parsed.BIC(); ok {
		report.BIC = bic.Compact()
	}
	return report
}

// GenerateIBANReport assembles an IBAN from national components and returns
// its decomposition.
func GenerateIBANReport(countryCode, bankCode, branchCode, accountCode string, validateBBAN bool) (IBANReport, error) {
	generated, err := iban.GenerateIBAN(countryCode, bankCode, branchCode, accountCode)
	if err != nil {
		return IBANReport{}, err
	}
	return BuildIBANReport(generated.Compact(), validateBBAN), nil
}

// RandomIBANReport draws a random valid IBAN, optionally pinned to a country.
func RandomIBANReport(countryCode string) (IBANReport, error) {
	random, err := iban.RandomIBAN(countryCode)
	if err != nil {
		return IBANReport{}, err
	}
	return BuildIBANReport(random.Compact(), false), nil
}

// BuildBICReport validates the input and decomposes it into the report form.
func BuildBICReport(value string, strict bool) BICReport {
	report := BICReport{Input: value}

	parsed := iban.NewBIC(value)
	if err := parsed.Validate(strict); err != nil {
		report.Error = reportError(err)
		return report
	}

	report.Valid = true
	report.Compact = parsed.Compact()
	report.Formatted = parsed.Formatted()
	report.BankCode = parsed.BankCode()
	report.CountryCode = parsed.CountryCode()
	report.CountryName = parsed.Country().String()
	report.LocationCode = parsed.LocationCode()
	report.BranchCode = parsed.BranchCode()
	report.Type = parsed.Type().String()
	report.Exists = parsed.Exists()
	report.DomesticBankCodes = parsed.DomesticBankCodes()
	report.BankNames = parsed.BankNames()
	return report
}
