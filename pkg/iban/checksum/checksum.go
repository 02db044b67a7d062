// Package checksum implements the national checksum algorithms embedded in
// country specific BBAN formats. Algorithms register themselves under a
// "<country>:<name>" key; countries without a registered algorithm have no
// national checksum to enforce.
package checksum

import (
	"fmt"
	"math/big"
	"strings"

	"iban-service/pkg/iban/domain"
)

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Algorithm computes and validates a country specific checksum over an
// ordered list of BBAN component values. Accepts defines both the compute
// and the validate input order.
type Algorithm interface {
	Accepts() []domain.Component
	Compute(components []string) string
	Validate(components []string, expected string) bool
}

var algorithms = map[string]Algorithm{}

// Register binds an algorithm to one or more country prefixes under the given
// name. Registering the same key twice is a programmer error.
func Register(name string, algo Algorithm, prefixes ...string) {
	for _, prefix := range prefixes {
		key := prefix + ":" + name
		if _, dup := algorithms[key]; dup {
			panic(fmt.Sprintf("checksum: duplicate registration for %q", key))
		}
		algorithms[key] = algo
	}
}

// Lookup resolves the algorithm registered for a country under the given
// name. The second return value is false when no algorithm is registered,
// which callers treat as "nothing to validate".
func Lookup(countryCode, name string) (Algorithm, bool) {
	algo, ok := algorithms[countryCode+":"+name]
	return algo, ok
}

// Numerify maps every character of value to its index in the alphabet 0-9A-Z
// (A=10 .. Z=35) and concatenates the decimal indices into one big integer.
// Characters outside the alphabet are a caller contract violation.
func Numerify(value string) *big.Int {
	var sb strings.Builder
	for _, c := range value {
		idx := strings.IndexRune(alphabet, c)
		if idx < 0 {
			panic(fmt.Sprintf("checksum: character %q outside alphabet 0-9A-Z", c))
		}
		fmt.Fprintf(&sb, "%d", idx)
	}
	n, ok := new(big.Int).SetString(sb.String(), 10)
	if !ok {
		panic(fmt.Sprintf("checksum: cannot numerify %q", value))
	}
	return n
}

// Mod97 reduces the numerified value modulo 97.
func Mod97(value string) int {
	return int(new(big.Int).Mod(Numerify(value), big.NewInt(97)).Int64())
}

func bigInt(n int64) *big.Int {
	return big.NewInt(n)
}

func weightedSum(value string, weights []int) (int, bool) {
	sum := 0
	for i, c := range value {
		if i >= len(weights) {
			break
		}
		if c < '0' || c > '9' {
			return 0, false
		}
		sum += weights[i] * int(c-'0')
	}
	return sum, true
}
