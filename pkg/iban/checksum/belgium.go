package checksum

import (
	"fmt"

	"iban-service/pkg/iban/domain"
)

// Belgium reduces the first ten BBAN digits (bank code plus account code)
// modulo 97; a zero remainder folds to 97.
type Belgium struct{}

func (Belgium) Accepts() []domain.Component {
	return []domain.Component{domain.BankCode, domain.AccountCode}
}

func (Belgium) Compute(components []string) string {
	joined := ""
	for _, c := range components {
		joined += c
	}
	r := Mod97(joined)
	if r == 0 {
		r = 97
	}
	return fmt.Sprintf("%02d", r)
}

func (b Belgium) Validate(components []string, expected string) bool {
	return b.Compute(components) == expected
}

func init() {
	Register("default", Belgium{}, "BE")
}
