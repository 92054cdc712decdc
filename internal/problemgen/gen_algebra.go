package problemgen

import (
	"fmt"

	"github.com/abhisek/mathforge/internal/catalog"
)

func genOneStepEquations(r Rand, level catalog.Level) RawProblem {
	s := byLevel(level, span{1, 10}, span{2, 20}, span{5, 50}, span{10, 100})
	x := s.draw(r)
	k := byLevel(level, span{1, 10}, span{2, 12}, span{2, 15}, span{3, 25}).draw(r)
	switch r.IntN(byLevel(level, 2, 3, 4, 4)) {
	case 0:
		return numeric(r, fmt.Sprintf("Solve for x: x + %d = %d", k, x+k), float64(x), 0,
			fmt.Sprintf("Subtract %d from both sides: x = %d - %d = %d.", k, x+k, k, x))
	case 1:
		return numeric(r, fmt.Sprintf("Solve for x: x - %d = %d", k, x), float64(x+k), 0,
			fmt.Sprintf("Add %d to both sides: x = %d + %d = %d.", k, x, k, x+k))
	case 2:
		return numeric(r, fmt.Sprintf("Solve for x: %dx = %d", k, k*x), float64(x), 0,
			fmt.Sprintf("Divide both sides by %d: x = %d ÷ %d = %d.", k, k*x, k, x))
	default:
		return numeric(r, fmt.Sprintf("Solve for x: x ÷ %d = %d", k, x), float64(k*x), 0,
			fmt.Sprintf("Multiply both sides by %d: x = %d × %d = %d.", k, x, k, k*x))
	}
}

func genTwoStepEquations(r Rand, level catalog.Level) RawProblem {
	x := byLevel(level, span{1, 10}, span{1, 15}, span{-10, 20}, span{-20, 30}).draw(r)
	a := byLevel(level, span{2, 5}, span{2, 9}, span{2, 12}, span{3, 15}).draw(r)
	b := byLevel(level, span{1, 10}, span{1, 20}, span{-20, 30}, span{-50, 50}).draw(r)
	if b == 0 {
		b = 1
	}
	rhs := a*x + b
	op, bAbs, undo := "+", b, "Subtract"
	if b < 0 {
		op, bAbs, undo = "-", -b, "Add"
	}
	return numeric(r, fmt.Sprintf("Solve for x: %dx %s %d = %d", a, op, bAbs, rhs), float64(x), 0,
		fmt.Sprintf("%s %d on both sides to get %dx = %d, then divide by %d: x = %d.", undo, bAbs, a, a*x, a, x))
}

func genEvaluateExpressions(r Rand, level catalog.Level) RawProblem {
	x := byLevel(level, span{1, 5}, span{1, 10}, span{-5, 10}, span{-10, 10}).draw(r)
	a := byLevel(level, span{1, 5}, span{2, 9}, span{2, 9}, span{2, 6}).draw(r)
	b := byLevel(level, span{1, 10}, span{1, 20}, span{1, 30}, span{1, 30}).draw(r)
	if level == catalog.LevelExpert {
		v := a*x*x + b
		return numeric(r, fmt.Sprintf("Evaluate %dx² + %d when x = %d.", a, b, x), float64(v), 0,
			fmt.Sprintf("%d × %s² + %d = %d × %d + %d = %d.", a, signed(x), b, a, x*x, b, v))
	}
	v := a*x + b
	return numeric(r, fmt.Sprintf("Evaluate %dx + %d when x = %d.", a, b, x), float64(v), 0,
		fmt.Sprintf("%d × %s + %d = %d + %d = %d.", a, signed(x), b, a*x, b, v))
}

func genInequalities(r Rand, level catalog.Level) RawProblem {
	k := byLevel(level, span{1, 10}, span{2, 20}, span{2, 9}, span{2, 12}).draw(r)
	bound := byLevel(level, span{1, 10}, span{5, 30}, span{1, 10}, span{1, 15}).draw(r)
	var q, ans, why string
	var pool []string
	switch {
	case level.Index() <= 1:
		q = fmt.Sprintf("Solve: x + %d > %d", k, bound+k)
		ans = fmt.Sprintf("x > %d", bound)
		pool = []string{fmt.Sprintf("x < %d", bound), fmt.Sprintf("x > %d", bound+k), fmt.Sprintf("x > %d", bound+2*k), fmt.Sprintf("x = %d", bound)}
		why = fmt.Sprintf("Subtract %d from both sides: x > %d.", k, bound)
	case level == catalog.LevelHard:
		q = fmt.Sprintf("Solve: %dx ≤ %d", k, k*bound)
		ans = fmt.Sprintf("x ≤ %d", bound)
		pool = []string{fmt.Sprintf("x ≥ %d", bound), fmt.Sprintf("x ≤ %d", k*bound), fmt.Sprintf("x ≤ %d", bound+k), fmt.Sprintf("x < %d", bound)}
		why = fmt.Sprintf("Divide both sides by %d: x ≤ %d.", k, bound)
	default:
		q = fmt.Sprintf("Solve: -%dx < %d", k, -k*bound)
		ans = fmt.Sprintf("x > %d", bound)
		pool = []string{fmt.Sprintf("x < %d", bound), fmt.Sprintf("x > %d", -bound), fmt.Sprintf("x < %d", -bound), fmt.Sprintf("x > %d", k*bound)}
		why = fmt.Sprintf("Divide both sides by -%d and flip the sign: x > %d.", k, bound)
	}
	return choice(r, q, ans, AnswerTypeText, pool, why)
}

func genLinearPatterns(r Rand, level catalog.Level) RawProblem {
	start := byLevel(level, span{1, 10}, span{1, 20}, span{-10, 30}, span{-20, 50}).draw(r)
	step := byLevel(level, span{1, 5}, span{2, 10}, span{2, 15}, span{3, 20}).draw(r)
	if level.Index() >= 2 && chance(r, 3) {
		step = -step
	}
	if level == catalog.LevelExpert && chance(r, 2) {
		n := randInt(r, 10, 30)
		v := start + (n-1)*step
		return numeric(r, fmt.Sprintf("A pattern starts at %d and changes by %d each step. What is term number %d?", start, step, n), float64(v), 0,
			fmt.Sprintf("Term n = %d + (n - 1) × %s, so term %d = %d + %d × %s = %d.", start, signed(step), n, start, n-1, signed(step), v))
	}
	terms := make([]int, 4)
	for i := range terms {
		terms[i] = start + i*step
	}
	next := start + 4*step
	return numeric(r, fmt.Sprintf("What comes next: %s, ?", joinInts(terms)), float64(next), 0,
		fmt.Sprintf("Each term changes by %d, so the next term is %d + %s = %d.", step, terms[3], signed(step), next))
}

func genSlope(r Rand, level catalog.Level) RawProblem {
	m := byLevel(level, span{1, 4}, span{1, 6}, span{-6, 6}, span{-9, 9}).draw(r)
	x1, y1 := randInt(r, -5, 5), randInt(r, -5, 5)
	dx := randInt(r, 1, byLevel(level, 3, 5, 6, 8))
	x2, y2 := x1+dx, y1+m*dx
	if level == catalog.LevelExpert && chance(r, 2) {
		b := y1 - m*x1
		return numeric(r, fmt.Sprintf("A line passes through (%d, %d) and (%d, %d). What is its y-intercept?", x1, y1, x2, y2), float64(b), 0,
			fmt.Sprintf("The slope is %d, so b = %d - %d × %s = %d.", m, y1, m, signed(x1), b))
	}
	return numeric(r, fmt.Sprintf("What is the slope of the line through (%d, %d) and (%d, %d)?", x1, y1, x2, y2), float64(m), 0,
		fmt.Sprintf("Slope = rise ÷ run = (%d - %s) ÷ (%d - %s) = %d ÷ %d = %d.", y2, signed(y1), x2, signed(x1), y2-y1, dx, m))
}

// term renders a coefficient with its variable: 1x -> "x", -1x -> "-x".
func term(coef int, v string) string {
	switch coef {
	case 1:
		return v
	case -1:
		return "-" + v
	}
	return itoa(coef) + v
}

// linear renders ax + b in simplest form.
func linear(a int, v string, b int) string {
	switch {
	case a == 0:
		return itoa(b)
	case b == 0:
		return term(a, v)
	case b < 0:
		return fmt.Sprintf("%s - %d", term(a, v), -b)
	}
	return fmt.Sprintf("%s + %d", term(a, v), b)
}

func genCombineLikeTerms(r Rand, level catalog.Level) RawProblem {
	s := byLevel(level, span{1, 5}, span{2, 9}, span{2, 12}, span{2, 15})
	a, b := s.draw(r), s.draw(r)
	if level.Index() <= 1 {
		ans := term(a+b, "x")
		return choice(r, fmt.Sprintf("Simplify: %s + %s", term(a, "x"), term(b, "x")), ans, AnswerTypeText,
			[]string{term(a*b, "x"), fmt.Sprintf("%dx²", a+b), term(a+b+1, "x"), term(absInt(a-b)+a+b+2, "x")},
			fmt.Sprintf("Add the coefficients: %d + %d = %d.", a, b, a+b))
	}
	c, d := s.draw(r), s.draw(r)
	q := fmt.Sprintf("Simplify: %s + %d + %s + %d", term(a, "x"), c, term(b, "x"), d)
	if level == catalog.LevelExpert {
		q = fmt.Sprintf("Simplify: %s + %d - %s + %d", term(a, "x"), c, term(b, "x"), d)
		b = -b
	}
	ans := linear(a+b, "x", c+d)
	return choice(r, q, ans, AnswerTypeText,
		[]string{linear(a+b, "x", c-d), linear(a-b, "x", c+d), linear(a+b+c+d, "x", 0), linear(a+b, "x", c*d), linear(a+b+1, "x", c+d)},
		fmt.Sprintf("Combine the x terms (%d + %s = %d) and the constants (%d + %d = %d).", a, signed(b), a+b, c, d, c+d))
}

func genDistributiveProperty(r Rand, level catalog.Level) RawProblem {
	a := byLevel(level, span{2, 5}, span{2, 9}, span{2, 12}, span{-9, -2}).draw(r)
	b := byLevel(level, span{1, 5}, span{1, 10}, span{1, 12}, span{1, 12}).draw(r)
	if level.Index() == 0 {
		c := randInt(r, 1, 9)
		v := a * (b + c)
		return numeric(r, fmt.Sprintf("Use the distributive property: %d × (%d + %d) = ?", a, b, c), float64(v), 0,
			fmt.Sprintf("%d × %d + %d × %d = %d + %d = %d.", a, b, a, c, a*b, a*c, v))
	}
	ans := linear(a, "x", a*b)
	return choice(r, fmt.Sprintf("Expand: %s(x + %d)", itoa(a), b), ans, AnswerTypeText,
		[]string{linear(a, "x", b), linear(1, "x", a*b), linear(a, "x", a+b), linear(-a, "x", a*b)},
		fmt.Sprintf("Multiply %d by each term: %d × x + %d × %d = %s.", a, a, a, b, ans))
}

func genSystemsOfEquations(r Rand, level catalog.Level) RawProblem {
	s := byLevel(level, span{1, 10}, span{1, 15}, span{-10, 15}, span{-15, 20})
	x, y := s.draw(r), s.draw(r)
	if level.Index() <= 1 {
		return numeric(r, fmt.Sprintf("If x + y = %d and x - y = %d, what is x?", x+y, x-y), float64(x), 0,
			fmt.Sprintf("Add the equations: 2x = %d, so x = %d.", 2*x, x))
	}
	a := randInt(r, 2, byLevel(level, 4, 4, 5, 7))
	c := linear(a, "x", 0)
	return numeric(r, fmt.Sprintf("If %s + y = %d and x + y = %d, what is y?", c, a*x+y, x+y), float64(y), 0,
		fmt.Sprintf("Subtract the second equation: %dx = %d, so x = %d and y = %d - %s = %d.", a-1, (a-1)*x, x, x+y, signed(x), y))
}

func genFunctions(r Rand, level catalog.Level) RawProblem {
	a := byLevel(level, span{1, 5}, span{2, 9}, span{-6, 9}, span{-9, 9}).draw(r)
	if a == 0 {
		a = 2
	}
	b := byLevel(level, span{0, 10}, span{-10, 10}, span{-20, 20}, span{-20, 20}).draw(r)
	x := byLevel(level, span{0, 5}, span{0, 10}, span{-5, 10}, span{-10, 10}).draw(r)
	f := linear(a, "x", b)
	if level == catalog.LevelExpert && chance(r, 2) {
		y := a*x + b
		return numeric(r, fmt.Sprintf("If f(x) = %s and f(x) = %d, what is x?", f, y), float64(x), 0,
			fmt.Sprintf("Solve %s = %d: x = (%d - %s) ÷ %s = %d.", f, y, y, signed(b), signed(a), x))
	}
	y := a*x + b
	return numeric(r, fmt.Sprintf("If f(x) = %s, what is f(%d)?", f, x), float64(y), 0,
		fmt.Sprintf("Substitute x = %d: %d × %s + %s = %d.", x, a, signed(x), signed(b), y))
}
