package checksum

import (
	"fmt"

	"iban-service/pkg/iban/domain"
)

// WeightedMod11 is a validate-only family of national checks: each digit of
// the concatenated accepted components is multiplied by its positional weight
// and the account is valid when the sum reduces to zero modulo 11. The check
// digit, where one exists, is part of the weighted input. Check digit
// computation is not supported for these countries.
type WeightedMod11 struct {
	accepts []domain.Component
	weights []int
}

func (w WeightedMod11) Accepts() []domain.Component {
	return w.accepts
}

func (WeightedMod11) Compute([]string) string {
	return ""
}

func (w WeightedMod11) Validate(components []string, _ string) bool {
	joined := ""
	for _, c := range components {
		joined += c
	}
	if len(joined) != len(w.weights) {
		panic(fmt.Sprintf("checksum: weighted input %q must be exactly %d digits", joined, len(w.weights)))
	}
	sum, ok := weightedSum(joined, w.weights)
	return ok && sum%11 == 0
}

func init() {
	// Netherlands: elfproef over the ten account digits.
	Register("default", WeightedMod11{
		accepts: []domain.Component{domain.AccountCode},
		weights: []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1},
	}, "NL")

	// Norway: kontonummer check over all eleven BBAN digits.
	Register("default", WeightedMod11{
		accepts: []domain.Component{domain.BankCode, domain.AccountCode},
		weights: []int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2, 1},
	}, "NO")
}
