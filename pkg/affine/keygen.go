package affine

import (
	"math/rand"
	"time"
)

// Source is the randomness used to pick keys. *rand.Rand satisfies it, so
// tests can pass rand.New(rand.NewSource(seed)) for a deterministic key.
type Source interface {
	Intn(n int) int
}

// NewSource returns a process-local generator seeded from the clock.
// It is not safe for concurrent use.
func NewSource() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// ValidAValues returns every a in [1,25] with gcd(a, 26) == 1, ascending.
// These are the 12 multiplicative units mod 26.
func ValidAValues() []int {
	values := make([]int, 0, 12)
	for a := 1; a < Modulus; a++ {
		if Coprime(a, Modulus) {
			values = append(values, a)
		}
	}
	return values
}

// AllKeys returns the full keyspace ordered by a, then b.
func AllKeys() []Key {
	as := ValidAValues()
	keys := make([]Key, 0, len(as)*Modulus)
	for _, a := range as {
		for b := 0; b < Modulus; b++ {
			keys = append(keys, Key{A: a, B: b})
		}
	}
	return keys
}

// RandomKey draws a uniformly from ValidAValues and b uniformly from [0,25].
func RandomKey(src Source) Key {
	as := ValidAValues()
	return Key{
		A: as[src.Intn(len(as))],
		B: src.Intn(Modulus),
	}
}
