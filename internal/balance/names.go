package balance

import (
	"math/rand/v2"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
)

// NameSource produces n team display names using rng.
type NameSource func(n int, rng *rand.Rand) []string

const nameAttempts = 10

// FakerNames generates names like "The Lake Shanna Engineers". Names are
// unique within one call; after repeated collisions a numeral is appended.
func FakerNames(n int, rng *rand.Rand) []string {
	faker := gofakeit.New(rng.Uint64())
	seen := make(map[string]struct{}, n)
	names := make([]string, 0, n)

	for len(names) < n {
		var name string
		for range nameAttempts {
			name = "The " + faker.City() + " " + faker.JobTitle() + "s"
			if _, dup := seen[name]; !dup {
				break
			}
		}
		if _, dup := seen[name]; dup {
			base := name
			for i := 2; ; i++ {
				name = base + " " + roman(i)
				if _, dup := seen[name]; !dup {
					break
				}
			}
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

func roman(n int) string {
	numerals := []struct {
		value  int
		symbol string
	}{
		{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
		{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
		{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
	}
	var b strings.Builder
	for _, r := range numerals {
		for n >= r.value {
			b.WriteString(r.symbol)
			n -= r.value
		}
	}
	return b.String()
}
