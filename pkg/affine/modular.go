package affine

// Modulus is the size of the alphabet and the modulus of every key operation.
const Modulus = 26

// Mod returns x mod m in the range [0, m), unlike Go's % which keeps the sign
// of the dividend.
func Mod(x, m int) int {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}

// ExtendedGCD returns g = gcd(a, b) together with Bézout coefficients x, y
// such that a*x + b*y = g.
//
// ExtendedGCD(0, b) is (b, 0, 1).
func ExtendedGCD(a, b int) (g, x, y int) {
	if a == 0 {
		return b, 0, 1
	}

	// Invariants: oldR = a*oldX + b*oldY and r = a*x + b*y.
	oldR, r := a, b
	oldX, x := 1, 0
	oldY, y := 0, 1
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldX, x = x, oldX-q*x
		oldY, y = y, oldY-q*y
	}
	return oldR, oldX, oldY
}

// GCD returns the non-negative greatest common divisor of a and b.
func GCD(a, b int) int {
	g, _, _ := ExtendedGCD(a, b)
	if g < 0 {
		return -g
	}
	return g
}

// Coprime reports whether gcd(a, b) == 1.
func Coprime(a, b int) bool {
	return GCD(a, b) == 1
}

// ModInverse returns the inverse of a modulo m, normalized into [0, m).
// The boolean is false when a and m are not coprime and no inverse exists.
func ModInverse(a, m int) (int, bool) {
	g, x, _ := ExtendedGCD(Mod(a, m), m)
	if g != 1 {
		return 0, false
	}
	return Mod(x, m), true
}
