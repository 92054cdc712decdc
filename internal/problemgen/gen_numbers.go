package problemgen

import (
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/mathforge/internal/catalog"
)

type decCase struct {
	lo, hi float64
	dp     int
}

func genDecimals(r Rand, level catalog.Level) RawProblem {
	c := byLevel(level, decCase{0.1, 5, 1}, decCase{1, 20, 1}, decCase{1, 50, 2}, decCase{10, 100, 2})
	a, b := randDecimal(r, c.lo, c.hi, c.dp), randDecimal(r, c.lo, c.hi, c.dp)
	ans := round(a+b, c.dp)
	return numeric(r, fmt.Sprintf("%s + %s", num(a), num(b)), ans, c.dp,
		fmt.Sprintf("Line up the decimal points and add: %s + %s = %s.", num(a), num(b), num(ans)))
}

func genDecimalSubtraction(r Rand, level catalog.Level) RawProblem {
	c := byLevel(level, decCase{0.1, 5, 1}, decCase{1, 20, 1}, decCase{1, 50, 2}, decCase{10, 100, 2})
	a, b := randDecimal(r, c.lo, c.hi, c.dp), randDecimal(r, c.lo, c.hi, c.dp)
	if a < b {
		a, b = b, a
	}
	ans := round(a-b, c.dp)
	return numeric(r, fmt.Sprintf("%s - %s", num(a), num(b)), ans, c.dp,
		fmt.Sprintf("Line up the decimal points and subtract: %s - %s = %s.", num(a), num(b), num(ans)))
}

func genDecimalMultiplication(r Rand, level catalog.Level) RawProblem {
	var a, b float64
	var dp int
	switch level.Index() {
	case 0:
		a, b, dp = randDecimal(r, 0.1, 9.9, 1), float64(randInt(r, 2, 9)), 1
	case 1:
		a, b, dp = randDecimal(r, 0.1, 5, 1), randDecimal(r, 0.1, 5, 1), 2
	case 2:
		a, b, dp = randDecimal(r, 0.01, 9.99, 2), float64(randInt(r, 2, 9)), 2
	default:
		a, b, dp = randDecimal(r, 1, 20, 1), randDecimal(r, 1, 20, 1), 2
	}
	ans := round(a*b, dp)
	return numeric(r, fmt.Sprintf("%s × %s", num(a), num(b)), ans, dp,
		fmt.Sprintf("Multiply as whole numbers, then count decimal places: %s × %s = %s.", num(a), num(b), num(ans)))
}

func genDecimalDivision(r Rand, level catalog.Level) RawProblem {
	c := byLevel(level, decCase{0.1, 5, 1}, decCase{0.1, 10, 1}, decCase{0.01, 10, 2}, decCase{1, 50, 2})
	d := byLevel(level, span{2, 5}, span{2, 9}, span{2, 9}, span{3, 12}).draw(r)
	q := randDecimal(r, c.lo, c.hi, c.dp)
	n := round(q*float64(d), c.dp)
	return numeric(r, fmt.Sprintf("%s ÷ %d", num(n), d), q, c.dp,
		fmt.Sprintf("Divide as with whole numbers and keep the decimal point in place: %s ÷ %d = %s.", num(n), d, num(q)))
}

var decimalPlaces = []string{"tenths", "hundredths", "thousandths"}

func genDecimalPlaceValue(r Rand, level catalog.Level) RawProblem {
	dp := byLevel(level, 1, 2, 3, 3)
	whole := byLevel(level, span{0, 9}, span{1, 99}, span{1, 99}, span{10, 999}).draw(r)
	frac := make([]int, dp)
	for i := range frac {
		frac[i] = r.IntN(10)
	}
	frac[dp-1] = randInt(r, 1, 9)
	var b strings.Builder
	for _, d := range frac {
		b.WriteString(itoa(d))
	}
	text := itoa(whole) + "." + b.String()

	if level == catalog.LevelExpert && chance(r, 3) {
		d := whole % 10
		return digitChoice(r, fmt.Sprintf("What digit is in the ones place of %s?", text), d,
			fmt.Sprintf("The ones digit sits just left of the decimal point in %s: %d.", text, d))
	}
	p := r.IntN(dp)
	d := frac[p]
	return digitChoice(r, fmt.Sprintf("What digit is in the %s place of %s?", decimalPlaces[p], text), d,
		fmt.Sprintf("The %s place is %d %s right of the decimal point, so the digit is %d.", decimalPlaces[p], p+1, plural(p+1, "place", "places"), d))
}

var roundPlaceNames = []string{"whole number", "tenth", "hundredth"}

func genRoundingDecimals(r Rand, level catalog.Level) RawProblem {
	dp := byLevel(level, 2, 2, 3, 3)
	p := pick(r, byLevel(level, []int{1}, []int{0, 1}, []int{1, 2}, []int{0, 1, 2}))
	n := byLevel(level, span{100, 999}, span{100, 9999}, span{1000, 9999}, span{1000, 99999}).draw(r)
	unit := ipow(10, dp-p)
	rn := (n + unit/2) / unit * unit
	render := func(v int) string { return num(round(float64(v)/pow10(dp), p)) }
	pool := []string{render(rn + unit), render(rn + 2*unit), render(n / unit * unit)}
	if rn >= unit {
		pool = append(pool, render(rn-unit))
	}
	value := fixed(float64(n)/pow10(dp), dp)
	ans := render(rn)
	return choice(r, fmt.Sprintf("Round %s to the nearest %s.", value, roundPlaceNames[p]), ans, AnswerTypeDecimal, pool,
		fmt.Sprintf("Look at the digit after the %s place: %s rounds to %s.", roundPlaceNames[p], value, ans))
}

// dpOf returns the number of decimals in a canonical number string.
func dpOf(s string) int {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

func genFractionsToDecimals(r Rand, level catalog.Level) RawProblem {
	d := pick(r, byLevel(level, []int{2, 10}, []int{4, 5, 10}, []int{4, 5, 8, 20, 25}, []int{8, 16, 20, 40, 50}))
	n := randInt(r, 1, d-1)
	div := func(a, b int) string { return num(round(float64(a)/float64(b), 4)) }
	ans := div(n, d)
	pool := []string{div(n+1, d), div(d-n, d), num(round(float64(n)/10, 4)), div(n, d*2)}
	return choice(r, fmt.Sprintf("Write %d/%d as a decimal.", n, d), ans, AnswerTypeDecimal, pool,
		fmt.Sprintf("Divide the numerator by the denominator: %d ÷ %d = %s.", n, d, ans))
}

func genPercentages(r Rand, level catalog.Level) RawProblem {
	pct := pick(r, byLevel(level, []int{10, 50, 100}, []int{20, 25, 50, 75}, []int{5, 15, 30, 40, 60, 80}, []int{12, 35, 45, 65, 85, 95}))
	step := 100 / gcd(pct, 100)
	base := step * byLevel(level, span{1, 10}, span{1, 10}, span{1, 8}, span{1, 5}).draw(r)
	ans := pct * base / 100
	return numeric(r, fmt.Sprintf("What is %d%% of %d?", pct, base), float64(ans), 0,
		fmt.Sprintf("%d%% means %d out of 100: %d × %d ÷ 100 = %d.", pct, pct, base, pct, ans))
}

func genFactors(r Rand, level catalog.Level) RawProblem {
	n := byLevel(level, span{2, 20}, span{20, 50}, span{50, 100}, span{100, 200}).draw(r)
	fs := divisors(n)
	return numeric(r, fmt.Sprintf("How many factors does %d have?", n), float64(len(fs)), 0,
		fmt.Sprintf("The factors of %d are %s, so there are %d.", n, joinInts(fs), len(fs)))
}

// nonMultiples lists positive numbers near ans that m does not divide.
func nonMultiples(ans, m int) []int {
	var out []int
	for v := ans - m + 1; v < ans+2*m; v++ {
		if v > 0 && v%m != 0 {
			out = append(out, v)
		}
	}
	return out
}

func genMultiples(r Rand, level catalog.Level) RawProblem {
	m := pick(r, byLevel(level, []int{2, 5, 10}, []int{3, 4, 6}, []int{7, 8, 9}, []int{11, 12, 15}))
	k := randInt(r, 2, 10)
	ans := m * k
	return intChoice(r, fmt.Sprintf("Which of these is a multiple of %d?", m), ans, nonMultiples(ans, m),
		fmt.Sprintf("%d × %d = %d, so %d is a multiple of %d.", m, k, ans, ans, m))
}

func genPrimeNumbers(r Rand, level catalog.Level) RawProblem {
	hi := byLevel(level, 20, 50, 100, 200)
	var primes, composites []int
	for n := 4; n <= hi; n++ {
		if isPrime(n) {
			primes = append(primes, n)
		} else {
			composites = append(composites, n)
		}
	}
	p := pick(r, append(primes, 2, 3))
	return intChoice(r, "Which of these numbers is prime?", p, composites,
		fmt.Sprintf("%d has exactly two factors, 1 and itself. Each other choice has more.", p))
}

func coprimePair(r Rand, hi int) (int, int) {
	for range 16 {
		a, b := randInt(r, 1, hi), randInt(r, 1, hi)
		if a != b && gcd(a, b) == 1 {
			return a, b
		}
	}
	return 2, 3
}

func genGCF(r Rand, level catalog.Level) RawProblem {
	g := byLevel(level, span{2, 5}, span{2, 10}, span{3, 15}, span{5, 25}).draw(r)
	a, b := coprimePair(r, byLevel(level, 4, 6, 7, 9))
	x, y := g*a, g*b
	var pool []int
	for _, d := range append(divisors(x), divisors(y)...) {
		if !slices.Contains(pool, d) {
			pool = append(pool, d)
		}
	}
	return intChoice(r, fmt.Sprintf("What is the greatest common factor of %d and %d?", x, y), g, pool,
		fmt.Sprintf("%d = %d × %d and %d = %d × %d; %d and %d share no other factor, so the GCF is %d.", x, g, a, y, g, b, a, b, g))
}

func genLCM(r Rand, level catalog.Level) RawProblem {
	s := byLevel(level, span{2, 6}, span{3, 10}, span{4, 15}, span{6, 25})
	a := s.draw(r)
	b := s.draw(r)
	if a == b {
		b++
	}
	ans := lcm(a, b)
	return intChoice(r, fmt.Sprintf("What is the least common multiple of %d and %d?", a, b), ans,
		[]int{a * b, 2 * ans, ans + a, ans + b, gcd(a, b)},
		fmt.Sprintf("%d is the smallest number that both %d and %d divide evenly.", ans, a, b))
}

func genSquareNumbers(r Rand, level catalog.Level) RawProblem {
	n := byLevel(level, span{1, 5}, span{2, 10}, span{10, 15}, span{15, 30}).draw(r)
	return numeric(r, fmt.Sprintf("What is %d squared?", n), float64(n*n), 0,
		fmt.Sprintf("%d squared means %d × %d = %d.", n, n, n, n*n))
}

func genSquareRoots(r Rand, level catalog.Level) RawProblem {
	n := byLevel(level, span{1, 5}, span{2, 10}, span{10, 15}, span{15, 30}).draw(r)
	return numeric(r, fmt.Sprintf("What is the square root of %d?", n*n), float64(n), 0,
		fmt.Sprintf("%d × %d = %d, so the square root of %d is %d.", n, n, n*n, n*n, n))
}

func genCubeNumbers(r Rand, level catalog.Level) RawProblem {
	n := byLevel(level, span{1, 5}, span{2, 6}, span{5, 10}, span{10, 15}).draw(r)
	return numeric(r, fmt.Sprintf("What is %d cubed?", n), float64(n*n*n), 0,
		fmt.Sprintf("%d cubed means %d × %d × %d = %d.", n, n, n, n, n*n*n))
}

func genExponents(r Rand, level catalog.Level) RawProblem {
	var base, exp int
	switch level.Index() {
	case 0:
		base, exp = randInt(r, 2, 5), 2
	case 1:
		base, exp = randInt(r, 2, 5), 3
	case 2:
		base, exp = randInt(r, 2, 3), randInt(r, 4, 6)
	default:
		base, exp = randInt(r, 2, 10), randInt(r, 0, 4)
	}
	ans := ipow(base, exp)
	why := fmt.Sprintf("Any nonzero number to the power 0 is 1, so %d^0 = 1.", base)
	if exp > 0 {
		factors := make([]string, exp)
		for i := range factors {
			factors[i] = itoa(base)
		}
		why = fmt.Sprintf("%d^%d means %s = %d.", base, exp, strings.Join(factors, " × "), ans)
	}
	return numeric(r, fmt.Sprintf("What is %d^%d?", base, exp), float64(ans), 0, why)
}

var divisibilityRules = map[int]string{
	2:  "its last digit is even",
	3:  "its digits add up to a multiple of 3",
	4:  "its last two digits form a multiple of 4",
	5:  "it ends in 0 or 5",
	6:  "it is divisible by both 2 and 3",
	7:  "7 goes into it evenly",
	8:  "its last three digits form a multiple of 8",
	9:  "its digits add up to a multiple of 9",
	10: "it ends in 0",
	11: "its alternating digit sum is a multiple of 11",
	12: "it is divisible by both 3 and 4",
}

func genDivisibilityRules(r Rand, level catalog.Level) RawProblem {
	m := pick(r, byLevel(level, []int{2, 5, 10}, []int{3, 4}, []int{6, 9}, []int{7, 8, 11, 12}))
	k := byLevel(level, span{3, 20}, span{10, 40}, span{12, 60}, span{15, 90}).draw(r)
	ans := m * k
	return intChoice(r, fmt.Sprintf("Which of these numbers is divisible by %d?", m), ans, nonMultiples(ans, m),
		fmt.Sprintf("%d is divisible by %d because %s: %d ÷ %d = %d.", ans, m, divisibilityRules[m], ans, m, k))
}
