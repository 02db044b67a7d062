package checksum

import (
	"fmt"

	"iban-service/pkg/iban/domain"
)

// Spain computes the two dígitos de control: the first over "00" plus bank
// and branch code, the second over the ten account digits. Each digit is the
// weighted sum modulo 11 subtracted from 11, with 11 folding to 0 and 10
// folding to 1.
type Spain struct{}

var spainWeights = []int{1, 2, 4, 8, 5, 10, 9, 7, 3, 6}

func spainDigit(value string) int {
	sum, ok := weightedSum(value, spainWeights)
	if !ok {
		panic(fmt.Sprintf("checksum: non-digit character in %q", value))
	}
	digit := 11 - sum%11
	switch digit {
	case 11:
		return 0
	case 10:
		return 1
	default:
		return digit
	}
}

func (Spain) Accepts() []domain.Component {
	return []domain.Component{domain.BankCode, domain.BranchCode, domain.AccountCode}
}

func (Spain) Compute(components []string) string {
	bank, branch, account := components[0], components[1], components[2]
	return fmt.Sprintf("%d%d", spainDigit("00"+bank+branch), spainDigit(account))
}

func (a Spain) Validate(components []string, expected string) bool {
	return a.Compute(components) == expected
}

func init() {
	Register("default", Spain{}, "ES")
}
