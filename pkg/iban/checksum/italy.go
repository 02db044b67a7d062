package checksum

import (
	"fmt"
	"strings"

	"iban-service/pkg/iban/domain"
)

// Italy computes the CIN letter: characters of bank code, branch code and
// account number are valued through the odd or even table depending on their
// 1-indexed position, and the sum modulo 26 selects a letter A-Z.
type Italy struct{}

var cinOddValues = []int{
	1, 0, 5, 7, 9, 13, 15, 17, 19, 21,
	2, 4, 18, 20, 11, 3, 6, 8, 12, 14,
	16, 10, 22, 25, 24, 23,
}

func cinValue(c byte, odd bool) (int, bool) {
	var idx int
	switch {
	case c >= '0' && c <= '9':
		idx = int(c - '0')
	case c >= 'A' && c <= 'Z':
		idx = int(c - 'A')
	default:
		return 0, false
	}
	if odd {
		return cinOddValues[idx], true
	}
	return idx, true
}

func (Italy) Accepts() []domain.Component {
	return []domain.Component{domain.BankCode, domain.BranchCode, domain.AccountCode}
}

func (Italy) Compute(components []string) string {
	joined := strings.Join(components, "")
	sum := 0
	for i := 0; i < len(joined); i++ {
		v, ok := cinValue(joined[i], i%2 == 0)
		if !ok {
			panic(fmt.Sprintf("checksum: character %q invalid in CIN", joined[i]))
		}
		sum += v
	}
	return string(rune('A' + sum%26))
}

func (a Italy) Validate(components []string, expected string) bool {
	return a.Compute(components) == expected
}

func init() {
	Register("default", Italy{}, "IT", "SM")
}
