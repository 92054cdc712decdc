package problemgen

import (
	"fmt"

	"github.com/abhisek/mathforge/internal/catalog"
)

var pizzaThings = []string{"pizza", "pie", "chocolate bar", "garden", "cake"}

func genFractions(r Rand, level catalog.Level) RawProblem {
	d := pick(r, byLevel(level, []int{2, 3, 4}, []int{4, 5, 6, 8}, []int{6, 8, 10, 12}, []int{9, 10, 12, 15, 16}))
	n := randInt(r, 1, d-1)
	thing := pick(r, pizzaThings)
	ans := newRat(n, d)
	why := fmt.Sprintf("%d of %d equal parts is %d/%d", n, d, n, d)
	if ans.d != d {
		why += fmt.Sprintf(", which simplifies to %s", ans)
	}
	return fractionProblem(r,
		fmt.Sprintf("A %s is cut into %d equal parts and %d are used. What fraction was used, in simplest form?", thing, d, n),
		ans, why+".", append(commonRatCandidates(ans), newRat(d-n, d))...)
}

// likeDenominators returns two fractions sharing a denominator whose sum
// stays at or below one.
func likeDenominators(r Rand, dens []int) (rat, rat, int) {
	d := pick(r, dens)
	a := randInt(r, 1, d-1)
	b := randInt(r, 1, d-a)
	return rat{a, d}, rat{b, d}, d
}

func genFractionAddition(r Rand, level catalog.Level) RawProblem {
	var a, b rat
	if level.Index() < 2 {
		a, b, _ = likeDenominators(r, byLevel(level, []int{2, 3, 4, 5, 6, 8}, []int{6, 8, 10, 12}))
	} else {
		dens := byLevel(level, []int{2, 3, 4, 5, 6}, []int{2, 3, 4, 5, 6}, []int{2, 3, 4, 5, 6}, []int{3, 4, 5, 6, 8, 10, 12})
		d1, d2 := pick(r, dens), pick(r, dens)
		a, b = rat{randInt(r, 1, d1-1), d1}, rat{randInt(r, 1, d2-1), d2}
	}
	ans := a.add(b)
	return fractionProblem(r, fmt.Sprintf("%d/%d + %d/%d", a.n, a.d, b.n, b.d), ans,
		fmt.Sprintf("Use a common denominator of %d, add the numerators, then simplify: %s.", lcm(a.d, b.d), ans),
		append(commonRatCandidates(ans), newRat(a.n+b.n, a.d+b.d))...)
}

func genFractionSubtraction(r Rand, level catalog.Level) RawProblem {
	var a, b rat
	if level.Index() < 2 {
		d := pick(r, byLevel(level, []int{3, 4, 5, 6, 8}, []int{6, 8, 10, 12}))
		n1 := randInt(r, 2, d)
		a, b = rat{n1, d}, rat{randInt(r, 1, n1-1), d}
	} else {
		dens := byLevel(level, []int{2, 3, 4, 5, 6}, []int{2, 3, 4, 5, 6}, []int{2, 3, 4, 5, 6}, []int{3, 4, 5, 6, 8, 10, 12})
		d1, d2 := pick(r, dens), pick(r, dens)
		a, b = rat{randInt(r, 1, d1-1), d1}, rat{randInt(r, 1, d2-1), d2}
		if a.less(b) {
			a, b = b, a
		}
		if !b.less(a) {
			a = rat{a.n + 1, a.d}
		}
	}
	ans := a.sub(b)
	return fractionProblem(r, fmt.Sprintf("%d/%d - %d/%d", a.n, a.d, b.n, b.d), ans,
		fmt.Sprintf("Use a common denominator of %d, subtract the numerators, then simplify: %s.", lcm(a.d, b.d), ans),
		commonRatCandidates(ans)...)
}

func genEquivalentFractions(r Rand, level catalog.Level) RawProblem {
	d := pick(r, byLevel(level, []int{2, 3, 4}, []int{3, 4, 5, 6}, []int{5, 6, 7, 8, 9}, []int{7, 9, 11, 12}))
	n := randInt(r, 1, d-1)
	k := byLevel(level, span{2, 3}, span{2, 5}, span{3, 8}, span{4, 12}).draw(r)
	return numeric(r, fmt.Sprintf("%d/%d = ?/%d. What is the missing numerator?", n, d, d*k), float64(n*k), 0,
		fmt.Sprintf("%d × %d = %d, so multiply the numerator by %d too: %d × %d = %d.", d, k, d*k, k, n, k, n*k))
}

func genComparingFractions(r Rand, level catalog.Level) RawProblem {
	var a, b rat
	switch level.Index() {
	case 0:
		d := pick(r, []int{3, 4, 5, 6, 8})
		a, b = rat{randInt(r, 1, d-1), d}, rat{randInt(r, 1, d-1), d}
	case 1:
		n := randInt(r, 1, 5)
		a, b = rat{n, randInt(r, n+1, 12)}, rat{n, randInt(r, n+1, 12)}
	default:
		dens := byLevel(level, nil, nil, []int{2, 3, 4, 5, 6, 8}, []int{3, 5, 6, 7, 8, 9, 12})
		d1, d2 := pick(r, dens), pick(r, dens)
		a, b = rat{randInt(r, 1, d1-1), d1}, rat{randInt(r, 1, d2-1), d2}
	}
	left, right := fmt.Sprintf("%d/%d", a.n, a.d), fmt.Sprintf("%d/%d", b.n, b.d)
	equal := a.n*b.d == b.n*a.d
	p := compareProblem(r, left, right, compareIndex(a.less(b), equal))
	p.Explanation = fmt.Sprintf("Cross-multiply: %d × %d = %d and %d × %d = %d. %s",
		a.n, b.d, a.n*b.d, b.n, a.d, b.n*a.d, p.Explanation)
	return p
}

func genSimplifyFractions(r Rand, level catalog.Level) RawProblem {
	d := pick(r, byLevel(level, []int{2, 3, 4}, []int{3, 4, 5, 6}, []int{5, 7, 8, 9}, []int{7, 9, 11, 13}))
	n := randInt(r, 1, d-1)
	base := newRat(n, d)
	k := byLevel(level, span{2, 3}, span{2, 5}, span{3, 8}, span{4, 12}).draw(r)
	return fractionProblem(r, fmt.Sprintf("Simplify %d/%d.", base.n*k, base.d*k), base,
		fmt.Sprintf("Divide the top and bottom by %d: %d/%d = %s.", gcd(base.n*k, base.d*k), base.n*k, base.d*k, base),
		append(commonRatCandidates(base), newRat(base.n*k, base.d), newRat(base.n, base.d*k))...)
}

func genFractionOfNumber(r Rand, level catalog.Level) RawProblem {
	d := pick(r, byLevel(level, []int{2, 4}, []int{2, 3, 4, 5}, []int{3, 4, 5, 6, 8}, []int{5, 6, 8, 10, 12}))
	n := randInt(r, 1, d-1)
	m := byLevel(level, span{1, 5}, span{2, 10}, span{3, 12}, span{5, 20}).draw(r)
	whole := d * m
	ans := n * m
	return numeric(r, fmt.Sprintf("What is %d/%d of %d?", n, d, whole), float64(ans), 0,
		fmt.Sprintf("%d ÷ %d = %d, and %d × %d = %d.", whole, d, m, m, n, ans))
}

func genMixedNumbers(r Rand, level catalog.Level) RawProblem {
	d := pick(r, byLevel(level, []int{2, 3, 4}, []int{3, 4, 5, 6}, []int{4, 5, 6, 8}, []int{6, 7, 8, 9, 12}))
	w := randInt(r, 1, byLevel(level, 3, 5, 7, 9))
	rem := randInt(r, 1, d-1)
	v := newRat(w*d+rem, d)
	improper := fmt.Sprintf("%d/%d", w*d+rem, d)
	if level.Index() >= 2 && chance(r, 2) {
		vw, vr := v.n/v.d, v.n%v.d
		return fractionProblem(r, fmt.Sprintf("Write %s as an improper fraction.", v.mixed()), v,
			fmt.Sprintf("%d × %d + %d = %d, so %s = %s.", vw, v.d, vr, v.n, v.mixed(), v),
			newRat(vw*vr+v.d, v.d), newRat(vw+vr, v.d), newRat(v.n, v.d+1), newRat(v.n-2*vr, v.d))
	}
	return RawProblem{
		Question:   fmt.Sprintf("Write %s as a mixed number.", improper),
		Answer:     v.mixed(),
		AnswerType: AnswerTypeText,
		Options: ratOptions(r, v, rat.mixed,
			newRat((w+1)*d+rem, d), newRat((w-1)*d+rem, d), newRat(w*d+rem, d+1), v.add(rat{1, d})),
		Explanation: fmt.Sprintf("%d ÷ %d = %d remainder %d, so %s = %s.", w*d+rem, d, w, rem, improper, v.mixed()),
	}
}

func genFractionMultiplication(r Rand, level catalog.Level) RawProblem {
	dens := byLevel(level, []int{2, 3, 4}, []int{2, 3, 4, 5, 6}, []int{3, 4, 5, 6, 8}, []int{5, 6, 7, 8, 9, 10})
	d1, d2 := pick(r, dens), pick(r, dens)
	a, b := rat{randInt(r, 1, d1-1), d1}, rat{randInt(r, 1, d2-1), d2}
	ans := a.mul(b)
	return fractionProblem(r, fmt.Sprintf("%d/%d × %d/%d", a.n, a.d, b.n, b.d), ans,
		fmt.Sprintf("Multiply the numerators and the denominators: %d/%d, which simplifies to %s.", a.n*b.n, a.d*b.d, ans),
		append(commonRatCandidates(ans), newRat(a.n*b.d, a.d*b.n), newRat(a.n+b.n, a.d+b.d))...)
}

func genFractionDivision(r Rand, level catalog.Level) RawProblem {
	dens := byLevel(level, []int{2, 3, 4}, []int{2, 3, 4, 5, 6}, []int{3, 4, 5, 6, 8}, []int{5, 6, 7, 8, 9, 10})
	d1, d2 := pick(r, dens), pick(r, dens)
	a, b := rat{randInt(r, 1, d1-1), d1}, rat{randInt(r, 1, d2-1), d2}
	ans := a.div(b)
	return fractionProblem(r, fmt.Sprintf("%d/%d ÷ %d/%d", a.n, a.d, b.n, b.d), ans,
		fmt.Sprintf("Multiply by the reciprocal: %d/%d × %d/%d = %s.", a.n, a.d, b.d, b.n, ans),
		append(commonRatCandidates(ans), a.mul(b), newRat(b.n*a.d, b.d*a.n))...)
}

func genMixedNumberAddition(r Rand, level catalog.Level) RawProblem {
	var a, b rat
	mixed := func(dens []int) rat {
		d := pick(r, dens)
		return newRat(randInt(r, 1, byLevel(level, 2, 3, 5, 9))*d+randInt(r, 1, d-1), d)
	}
	if level.Index() < 2 {
		d := pick(r, []int{2, 3, 4, 5, 6, 8})
		a, b = mixed([]int{d}), mixed([]int{d})
	} else {
		dens := []int{2, 3, 4, 5, 6, 8}
		a, b = mixed(dens), mixed(dens)
	}
	ans := a.add(b)
	return RawProblem{
		Question:   fmt.Sprintf("%s + %s", a.mixed(), b.mixed()),
		Answer:     ans.mixed(),
		AnswerType: AnswerTypeText,
		Options: ratOptions(r, ans, rat.mixed,
			ans.add(rat{1, 1}), ans.sub(rat{1, 1}), ans.add(rat{1, ans.d}), ans.sub(rat{1, ans.d}), ans.add(rat{1, 2})),
		Explanation: fmt.Sprintf("Add the whole numbers and the fractions, then regroup: %s + %s = %s.", a.mixed(), b.mixed(), ans.mixed()),
	}
}

func genProbability(r Rand, level catalog.Level) RawProblem {
	if level.Index() >= 2 && chance(r, 2) {
		return fromBank(r, level, probabilityBank...)
	}
	colors := shuffled(r, patternColors)
	most := byLevel(level, 5, 8, 10, 12)
	a, b := randInt(r, 1, most), randInt(r, 1, most)
	total := a + b
	var extra string
	if level.Index() >= 1 {
		c := randInt(r, 1, most)
		total += c
		extra = fmt.Sprintf(" and %d %s", c, colors[2])
	}
	ans := newRat(a, total)
	return fractionProblem(r,
		fmt.Sprintf("A bag has %d %s marbles, %d %s marbles%s. What is the probability of picking %s, in simplest form?", a, colors[0], b, colors[1], extra, colors[0]),
		ans, fmt.Sprintf("%d of the %d marbles are %s, so the probability is %d/%d = %s.", a, total, colors[0], a, total, ans),
		append(commonRatCandidates(ans), newRat(b, total), newRat(a, b))...)
}

var probabilityBank = [][]item{
	{
		{"A fair coin is flipped. What is the probability of heads?", "1/2", []string{"1/4", "1/3", "1"}, "There are 2 equally likely outcomes and 1 is heads."},
		{"A number cube is rolled. What is the probability of rolling a 4?", "1/6", []string{"1/4", "4/6", "1/2"}, "There are 6 faces and only one shows 4."},
	},
	{
		{"A number cube is rolled. What is the probability of an even number?", "1/2", []string{"1/3", "1/6", "2/3"}, "3 of the 6 faces are even: 3/6 = 1/2."},
		{"A spinner has 8 equal parts, 3 of them blue. What is the probability of not landing on blue?", "5/8", []string{"3/8", "1/2", "3/5"}, "8 - 3 = 5 parts are not blue."},
	},
	{
		{"Two fair coins are flipped. What is the probability both land heads?", "1/4", []string{"1/2", "1/3", "3/4"}, "The outcomes are HH, HT, TH, TT and only HH works."},
		{"A number cube is rolled. What is the probability of a number greater than 4?", "1/3", []string{"1/2", "2/3", "1/6"}, "Only 5 and 6 are greater than 4: 2/6 = 1/3."},
	},
	{
		{"Two number cubes are rolled. What is the probability the sum is 7?", "1/6", []string{"1/12", "7/36", "1/36"}, "6 of the 36 outcomes sum to 7: 6/36 = 1/6."},
		{"Three fair coins are flipped. What is the probability of exactly two heads?", "3/8", []string{"1/4", "1/2", "2/3"}, "HHT, HTH and THH are 3 of 8 outcomes."},
		{"Two number cubes are rolled. What is the probability of doubles?", "1/6", []string{"1/36", "1/3", "2/9"}, "6 of the 36 outcomes are doubles."},
	},
}
