package iban

import "fmt"

// ErrorKind tags every validation failure with a stable, machine readable
// code so callers (and the HTTP layer) can surface field level messages.
type ErrorKind string

const (
	KindInvalidLength         ErrorKind = "invalid_length"
	KindInvalidStructure      ErrorKind = "invalid_structure"
	KindInvalidCountryCode    ErrorKind = "invalid_country_code"
	KindInvalidBankCode       ErrorKind = "invalid_bank_code"
	KindInvalidBranchCode     ErrorKind = "invalid_branch_code"
	KindInvalidAccountCode    ErrorKind = "invalid_account_code"
	KindInvalidChecksumDigits ErrorKind = "invalid_checksum_digits"
	KindInvalidBBANChecksum   ErrorKind = "invalid_bban_checksum"
	KindGenerationUnsupported ErrorKind = "generation_unsupported"
)

// Error is the typed validation error carrying the offending input alongside
// its kind tag. It never wraps another error; inputs are either well formed
// or they are not.
type Error struct {
	Kind    ErrorKind
	Input   string
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// Is matches any *Error of the same kind, so sentinel comparisons with
// errors.Is work regardless of the offending input.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is checks.
var (
	ErrInvalidLength         = &Error{Kind: KindInvalidLength}
	ErrInvalidStructure      = &Error{Kind: KindInvalidStructure}
	ErrInvalidCountryCode    = &Error{Kind: KindInvalidCountryCode}
	ErrInvalidBankCode       = &Error{Kind: KindInvalidBankCode}
	ErrInvalidBranchCode     = &Error{Kind: KindInvalidBranchCode}
	ErrInvalidAccountCode    = &Error{Kind: KindInvalidAccountCode}
	ErrInvalidChecksumDigits = &Error{Kind: KindInvalidChecksumDigits}
	ErrInvalidBBANChecksum   = &Error{Kind: KindInvalidBBANChecksum}
	ErrGenerationUnsupported = &Error{Kind: KindGenerationUnsupported}
)

func newError(kind ErrorKind, input, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Input:   input,
		Message: fmt.Sprintf(format, args...),
	}
}
