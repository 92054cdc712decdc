package problemgen

import (
	"fmt"

	"github.com/abhisek/mathforge/internal/catalog"
)

func genAddition(r Rand, level catalog.Level) RawProblem {
	s := byLevel(level, span{1, 10}, span{10, 100}, span{50, 500}, span{100, 1000})
	a := s.draw(r)
	b := s.draw(r)
	sum := a + b
	return numeric(r, fmt.Sprintf("%d + %d", a, b), float64(sum), 0,
		fmt.Sprintf("Start at %d and count on %d more: %d + %d = %d.", a, b, a, b, sum))
}

func genSubtraction(r Rand, level catalog.Level) RawProblem {
	a := byLevel(level, span{1, 10}, span{10, 100}, span{100, 1000}, span{1000, 10000}).draw(r)
	b := randInt(r, 1, a)
	return numeric(r, fmt.Sprintf("%d - %d", a, b), float64(a-b), 0,
		fmt.Sprintf("Take %d away from %d: %d - %d = %d.", b, a, a, b, a-b))
}

type factorRange struct{ a, b span }

func genMultiplication(r Rand, level catalog.Level) RawProblem {
	f := byLevel(level,
		factorRange{span{1, 5}, span{1, 5}},
		factorRange{span{2, 10}, span{2, 10}},
		factorRange{span{6, 12}, span{10, 50}},
		factorRange{span{10, 99}, span{10, 99}},
	)
	a, b := f.a.draw(r), f.b.draw(r)
	return numeric(r, fmt.Sprintf("%d × %d", a, b), float64(a*b), 0,
		fmt.Sprintf("%d groups of %d make %d, so %d × %d = %d.", a, b, a*b, a, b, a*b))
}

// divisionOperands returns divisor and quotient; the dividend is their
// product so the division is exact and the divisor is never zero.
func divisionOperands(r Rand, level catalog.Level) (divisor, quotient int) {
	f := byLevel(level,
		factorRange{span{1, 5}, span{1, 5}},
		factorRange{span{2, 10}, span{1, 10}},
		factorRange{span{2, 12}, span{5, 20}},
		factorRange{span{5, 25}, span{10, 50}},
	)
	return f.a.draw(r), f.b.draw(r)
}

func genDivision(r Rand, level catalog.Level) RawProblem {
	d, q := divisionOperands(r, level)
	n := d * q
	return numeric(r, fmt.Sprintf("%d ÷ %d", n, d), float64(q), 0,
		fmt.Sprintf("%d × %d = %d, so %d ÷ %d = %d.", d, q, n, n, d, q))
}

func remainderAnswer(q, rem int) string {
	return fmt.Sprintf("%d R%d", q, rem)
}

func genDivisionRemainder(r Rand, level catalog.Level) RawProblem {
	f := byLevel(level,
		factorRange{span{2, 5}, span{1, 5}},
		factorRange{span{3, 9}, span{2, 12}},
		factorRange{span{6, 12}, span{10, 50}},
		factorRange{span{11, 25}, span{20, 99}},
	)
	d, q := f.a.draw(r), f.b.draw(r)
	rem := randInt(r, 1, d-1)
	n := d*q + rem
	ans := remainderAnswer(q, rem)
	pool := []string{remainderAnswer(q+1, rem), remainderAnswer(q, rem-1), remainderAnswer(q, (rem+1)%d)}
	if q > 1 {
		pool = append(pool, remainderAnswer(q-1, rem))
	}
	return choice(r, fmt.Sprintf("%d ÷ %d (with remainder)", n, d), ans, AnswerTypeText, pool,
		fmt.Sprintf("%d × %d = %d and %d - %d = %d, so the answer is %s.", d, q, d*q, n, d*q, rem, ans))
}

func genMixedOperations(r Rand, level catalog.Level) RawProblem {
	s := byLevel(level, span{1, 5}, span{2, 10}, span{3, 12}, span{5, 20})
	a, b, c := s.draw(r), s.draw(r), s.draw(r)
	if chance(r, 2) {
		ans := a + b*c
		return numeric(r, fmt.Sprintf("%d + %d × %d", a, b, c), float64(ans), 0,
			fmt.Sprintf("Multiply first: %d × %d = %d, then add: %d + %d = %d.", b, c, b*c, a, b*c, ans))
	}
	p := a * b
	if c > p {
		c = p
	}
	ans := p - c
	return numeric(r, fmt.Sprintf("%d × %d - %d", a, b, c), float64(ans), 0,
		fmt.Sprintf("Multiply first: %d × %d = %d, then subtract: %d - %d = %d.", a, b, p, p, c, ans))
}

func genColumnAddition(r Rand, level catalog.Level) RawProblem {
	s := byLevel(level, span{10, 99}, span{100, 999}, span{1000, 9999}, span{10000, 99999})
	a, b := s.draw(r), s.draw(r)
	return numeric(r, fmt.Sprintf("Add in columns: %d + %d", a, b), float64(a+b), 0,
		fmt.Sprintf("Add the ones first, carry when a column passes 9: %d + %d = %d.", a, b, a+b))
}

// needsBorrow reports whether a - b borrows in at least one column.
func needsBorrow(a, b int) bool {
	for a > 0 || b > 0 {
		if b%10 > a%10 {
			return true
		}
		a /= 10
		b /= 10
	}
	return false
}

func genSubtractionBorrowing(r Rand, level catalog.Level) RawProblem {
	s := byLevel(level, span{20, 99}, span{100, 999}, span{1000, 9999}, span{10000, 99999})
	a := s.draw(r)
	b := randInt(r, 1, a)
	for range 16 {
		if needsBorrow(a, b) {
			break
		}
		a = s.draw(r)
		b = randInt(r, 1, a)
	}
	return numeric(r, fmt.Sprintf("Subtract with regrouping: %d - %d", a, b), float64(a-b), 0,
		fmt.Sprintf("Borrow from the next column when the top digit is smaller: %d - %d = %d.", a, b, a-b))
}

func genTimesTables(r Rand, level catalog.Level) RawProblem {
	t := pick(r, byLevel(level, []int{1, 2, 5, 10}, []int{3, 4, 6}, []int{7, 8, 9}, []int{11, 12}))
	m := randInt(r, 1, 12)
	return numeric(r, fmt.Sprintf("%d × %d", t, m), float64(t*m), 0,
		fmt.Sprintf("In the %d times table, %d × %d = %d.", t, t, m, t*m))
}

func genFactFamilies(r Rand, level catalog.Level) RawProblem {
	if level.Index() < 2 {
		s := byLevel(level, span{1, 10}, span{5, 20})
		a, b := s.draw(r), s.draw(r)
		c := a + b
		return numeric(r, fmt.Sprintf("If %d + %d = %d, what is %d - %d?", a, b, c, c, a), float64(b), 0,
			fmt.Sprintf("%d, %d and %d are one fact family, so %d - %d = %d.", a, b, c, c, a, b))
	}
	s := byLevel(level, span{2, 9}, span{2, 9}, span{2, 9}, span{6, 15})
	a, b := s.draw(r), s.draw(r)
	c := a * b
	return numeric(r, fmt.Sprintf("If %d × %d = %d, what is %d ÷ %d?", a, b, c, c, b), float64(a), 0,
		fmt.Sprintf("%d, %d and %d are one fact family, so %d ÷ %d = %d.", a, b, c, c, b, a))
}

func genMissingAddend(r Rand, level catalog.Level) RawProblem {
	s := byLevel(level, span{1, 20}, span{10, 100}, span{100, 1000}, span{1000, 5000})
	a, b := s.draw(r), s.draw(r)
	c := a + b
	return numeric(r, fmt.Sprintf("? + %d = %d. What is the missing number?", b, c), float64(a), 0,
		fmt.Sprintf("Subtract to find the missing addend: %d - %d = %d.", c, b, a))
}

func genMissingFactor(r Rand, level catalog.Level) RawProblem {
	f := byLevel(level,
		factorRange{span{2, 5}, span{1, 10}},
		factorRange{span{2, 10}, span{2, 10}},
		factorRange{span{6, 12}, span{6, 12}},
		factorRange{span{11, 25}, span{3, 15}},
	)
	a, b := f.a.draw(r), f.b.draw(r)
	return numeric(r, fmt.Sprintf("%d × ? = %d. What is the missing factor?", a, a*b), float64(b), 0,
		fmt.Sprintf("Divide to find the missing factor: %d ÷ %d = %d.", a*b, a, b))
}

func genEstimation(r Rand, level catalog.Level) RawProblem {
	c := byLevel(level,
		roundCase{span{10, 99}, 10, "ten"},
		roundCase{span{100, 999}, 100, "hundred"},
		roundCase{span{1000, 9999}, 100, "hundred"},
		roundCase{span{1000, 9999}, 1000, "thousand"},
	)
	a, b := c.s.draw(r), c.s.draw(r)
	ra, rb := roundTo(a, c.unit), roundTo(b, c.unit)
	if level.Index() >= 2 && chance(r, 2) {
		if a < b {
			a, b, ra, rb = b, a, rb, ra
		}
		ans := ra - rb
		return intChoice(r, fmt.Sprintf("Estimate %s - %s by rounding each number to the nearest %s.", grouped(a), grouped(b), c.name),
			ans, []int{ans + c.unit, ans - c.unit, ans + 2*c.unit, a - b},
			fmt.Sprintf("%s rounds to %s and %s rounds to %s, so the estimate is %s.", grouped(a), grouped(ra), grouped(b), grouped(rb), grouped(ans)))
	}
	ans := ra + rb
	return intChoice(r, fmt.Sprintf("Estimate %s + %s by rounding each number to the nearest %s.", grouped(a), grouped(b), c.name),
		ans, []int{ans + c.unit, ans - c.unit, ans + 2*c.unit, a + b},
		fmt.Sprintf("%s rounds to %s and %s rounds to %s, so the estimate is %s.", grouped(a), grouped(ra), grouped(b), grouped(rb), grouped(ans)))
}

func genThreeAddends(r Rand, level catalog.Level) RawProblem {
	s := byLevel(level, span{1, 9}, span{5, 30}, span{20, 100}, span{100, 500})
	a, b, c := s.draw(r), s.draw(r), s.draw(r)
	sum := a + b + c
	return numeric(r, fmt.Sprintf("%d + %d + %d", a, b, c), float64(sum), 0,
		fmt.Sprintf("Add two at a time: %d + %d = %d, then %d + %d = %d.", a, b, a+b, a+b, c, sum))
}

func genMultiplyByPowersOfTen(r Rand, level catalog.Level) RawProblem {
	if level == catalog.LevelExpert {
		n := randDecimal(r, 1, 99.9, 1)
		p := pick(r, []int{10, 100, 1000})
		ans := round(n*float64(p), 1)
		return numeric(r, fmt.Sprintf("%s × %d", num(n), p), ans, 1,
			fmt.Sprintf("Multiplying by %d moves the decimal point %d places right: %s.", p, len(itoa(p))-1, num(ans)))
	}
	s := byLevel(level, span{1, 9}, span{10, 99}, span{10, 999})
	n := s.draw(r)
	p := pick(r, byLevel(level, []int{10}, []int{10, 100}, []int{100, 1000}))
	return numeric(r, fmt.Sprintf("%d × %d", n, p), float64(n*p), 0,
		fmt.Sprintf("Multiplying by %d adds %d zeros: %d × %d = %d.", p, len(itoa(p))-1, n, p, n*p))
}

func genLongDivision(r Rand, level catalog.Level) RawProblem {
	f := byLevel(level,
		factorRange{span{2, 5}, span{10, 30}},
		factorRange{span{2, 9}, span{20, 99}},
		factorRange{span{6, 9}, span{100, 300}},
		factorRange{span{11, 25}, span{20, 99}},
	)
	d, q := f.a.draw(r), f.b.draw(r)
	n := d * q
	return numeric(r, fmt.Sprintf("Use long division: %d ÷ %d", n, d), float64(q), 0,
		fmt.Sprintf("Divide, multiply, subtract, bring down, repeat: %d ÷ %d = %d. Check: %d × %d = %d.", n, d, q, q, d, n))
}

func genOrderOfOperations(r Rand, level catalog.Level) RawProblem {
	s := byLevel(level, span{1, 6}, span{2, 9}, span{2, 12}, span{3, 15})
	a, b, c := s.draw(r), s.draw(r), s.draw(r)
	switch r.IntN(byLevel(level, 2, 3, 4, 4)) {
	case 0:
		ans := (a + b) * c
		return numeric(r, fmt.Sprintf("(%d + %d) × %d", a, b, c), float64(ans), 0,
			fmt.Sprintf("Parentheses first: %d + %d = %d, then %d × %d = %d.", a, b, a+b, a+b, c, ans))
	case 1:
		ans := a*b + c
		return numeric(r, fmt.Sprintf("%d × %d + %d", a, b, c), float64(ans), 0,
			fmt.Sprintf("Multiply before adding: %d × %d = %d, then %d + %d = %d.", a, b, a*b, a*b, c, ans))
	case 2:
		if b < c {
			b, c = c, b
		}
		ans := a * (b - c)
		return numeric(r, fmt.Sprintf("%d × (%d - %d)", a, b, c), float64(ans), 0,
			fmt.Sprintf("Parentheses first: %d - %d = %d, then %d × %d = %d.", b, c, b-c, a, b-c, ans))
	default:
		d := s.draw(r)
		n := a * b
		ans := b + c*d
		return numeric(r, fmt.Sprintf("%d ÷ %d + %d × %d", n, a, c, d), float64(ans), 0,
			fmt.Sprintf("Divide and multiply left to right: %d ÷ %d = %d and %d × %d = %d, then %d + %d = %d.", n, a, b, c, d, c*d, b, c*d, ans))
	}
}

func genIntegerAddition(r Rand, level catalog.Level) RawProblem {
	limit := byLevel(level, 10, 20, 50, 100)
	a, b := randNonZero(r, limit), randNonZero(r, limit)
	return numeric(r, fmt.Sprintf("%s + %s", signed(a), signed(b)), float64(a+b), 0,
		fmt.Sprintf("Combine the signed numbers: %s + %s = %d.", signed(a), signed(b), a+b))
}

func genIntegerSubtraction(r Rand, level catalog.Level) RawProblem {
	limit := byLevel(level, 10, 20, 50, 100)
	a, b := randNonZero(r, limit), randNonZero(r, limit)
	return numeric(r, fmt.Sprintf("%s - %s", signed(a), signed(b)), float64(a-b), 0,
		fmt.Sprintf("Subtracting is adding the opposite: %s + %s = %d.", signed(a), signed(-b), a-b))
}

func genIntegerMultiplication(r Rand, level catalog.Level) RawProblem {
	limit := byLevel(level, 5, 10, 12, 20)
	a, b := randNonZero(r, limit), randNonZero(r, limit)
	sign := "positive"
	if a*b < 0 {
		sign = "negative"
	}
	return numeric(r, fmt.Sprintf("%s × %s", signed(a), signed(b)), float64(a*b), 0,
		fmt.Sprintf("%d × %d = %d, and the signs make the product %s: %d.", absInt(a), absInt(b), absInt(a*b), sign, a*b))
}

func genAbsoluteValue(r Rand, level catalog.Level) RawProblem {
	switch level.Index() {
	case 0, 1:
		n := randNonZero(r, byLevel(level, 20, 100))
		return numeric(r, fmt.Sprintf("What is |%d|?", n), float64(absInt(n)), 0,
			fmt.Sprintf("Absolute value is the distance from zero, so |%d| = %d.", n, absInt(n)))
	case 2:
		a, b := randNonZero(r, 50), randNonZero(r, 50)
		ans := absInt(a) + absInt(b)
		return numeric(r, fmt.Sprintf("What is |%d| + |%d|?", a, b), float64(ans), 0,
			fmt.Sprintf("|%d| = %d and |%d| = %d, so the sum is %d.", a, absInt(a), b, absInt(b), ans))
	default:
		a, b := randInt(r, -50, 20), randInt(r, 21, 80)
		ans := absInt(a - b)
		return numeric(r, fmt.Sprintf("What is |%d - %d|?", a, b), float64(ans), 0,
			fmt.Sprintf("%d - %d = %d, and its distance from zero is %d.", a, b, a-b, ans))
	}
}
