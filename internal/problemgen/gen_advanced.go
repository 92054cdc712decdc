package problemgen

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/abhisek/mathforge/internal/catalog"
)

var ratioThings = [][2]string{{"red", "blue"}, {"cats", "dogs"}, {"boys", "girls"}, {"apples", "oranges"}}

func ratioString(a, b int) string { return fmt.Sprintf("%d:%d", a, b) }

func genRatios(r Rand, level catalog.Level) RawProblem {
	a, b := coprimePair(r, byLevel(level, 4, 6, 9, 12))
	k := byLevel(level, span{1, 3}, span{2, 5}, span{2, 8}, span{3, 12}).draw(r)
	things := pick(r, ratioThings)
	ans := newRat(a, b)
	render := func(q rat) string { return ratioString(q.n, q.d) }
	return RawProblem{
		Question:   fmt.Sprintf("There are %d %s and %d %s. What is the ratio of %s to %s in simplest form?", a*k, things[0], b*k, things[1], things[0], things[1]),
		Answer:     render(ans),
		AnswerType: AnswerTypeText,
		Options: ratOptions(r, ans, render,
			newRat(b, a), newRat(a, a+b), newRat(a+1, b), newRat(a, b+1), newRat(a*k, b*k+1)),
		Explanation: fmt.Sprintf("Divide both counts by %d: %d:%d = %s.", k, a*k, b*k, render(ans)),
	}
}

var proportionItems = []string{"notebooks", "pencils", "tickets", "muffins", "stickers"}

func genProportions(r Rand, level catalog.Level) RawProblem {
	price := byLevel(level, span{1, 5}, span{2, 10}, span{3, 15}, span{5, 25}).draw(r)
	a := byLevel(level, span{2, 4}, span{2, 6}, span{3, 9}, span{4, 12}).draw(r)
	b := byLevel(level, span{2, 6}, span{3, 10}, span{5, 15}, span{7, 20}).draw(r)
	if b == a {
		b++
	}
	thing := pick(r, proportionItems)
	return numeric(r, fmt.Sprintf("If %d %s cost $%d, how many dollars do %d %s cost?", a, thing, a*price, b, thing), float64(b*price), 0,
		fmt.Sprintf("One costs $%d ÷ %d = $%d, so %d cost %d × $%d = $%d.", a*price, a, price, b, b, price, b*price))
}

func genUnitRates(r Rand, level catalog.Level) RawProblem {
	rate := byLevel(level, span{2, 10}, span{10, 40}, span{20, 70}, span{40, 90}).draw(r)
	t := byLevel(level, span{2, 5}, span{2, 6}, span{3, 8}, span{4, 12}).draw(r)
	if chance(r, 2) {
		return numeric(r, fmt.Sprintf("A car travels %d miles in %d hours. How many miles per hour is that?", rate*t, t), float64(rate), 0,
			fmt.Sprintf("%d ÷ %d = %d miles per hour.", rate*t, t, rate))
	}
	return numeric(r, fmt.Sprintf("A printer prints %d pages in %d minutes. How many pages per minute is that?", rate*t, t), float64(rate), 0,
		fmt.Sprintf("%d ÷ %d = %d pages per minute.", rate*t, t, rate))
}

// percentBase returns a base value for which pct% is a whole number.
func percentBase(r Rand, pct int, k span) int {
	return 100 / gcd(pct, 100) * k.draw(r)
}

func genPercentChange(r Rand, level catalog.Level) RawProblem {
	pct := pick(r, byLevel(level, []int{10, 50}, []int{20, 25, 50}, []int{5, 15, 30, 40, 60}, []int{12, 35, 45, 65, 80}))
	base := percentBase(r, pct, byLevel(level, span{1, 10}, span{1, 10}, span{1, 8}, span{1, 5}))
	delta := base * pct / 100
	if chance(r, 2) {
		return numeric(r, fmt.Sprintf("A price rises from $%d to $%d. What is the percent increase?", base, base+delta), float64(pct), 0,
			fmt.Sprintf("The change is $%d, and %d ÷ %d = %d%%.", delta, delta, base, pct))
	}
	return numeric(r, fmt.Sprintf("A price falls from $%d to $%d. What is the percent decrease?", base, base-delta), float64(pct), 0,
		fmt.Sprintf("The change is $%d, and %d ÷ %d = %d%%.", delta, delta, base, pct))
}

func genDiscounts(r Rand, level catalog.Level) RawProblem {
	pct := pick(r, byLevel(level, []int{10, 50}, []int{20, 25, 50}, []int{15, 30, 40, 60}, []int{12, 35, 45, 65}))
	price := percentBase(r, pct, byLevel(level, span{2, 10}, span{1, 10}, span{1, 8}, span{1, 5}))
	off := price * pct / 100
	if level == catalog.LevelExpert && chance(r, 2) {
		return numeric(r, fmt.Sprintf("A $%d bike has %d%% sales tax added. What is the total cost in dollars?", price, pct), float64(price+off), 0,
			fmt.Sprintf("Tax is %d%% of $%d = $%d, so the total is $%d.", pct, price, off, price+off))
	}
	return numeric(r, fmt.Sprintf("A $%d jacket is %d%% off. What is the sale price in dollars?", price, pct), float64(price-off), 0,
		fmt.Sprintf("The discount is %d%% of $%d = $%d, so the sale price is $%d.", pct, price, off, price-off))
}

func genSimpleInterest(r Rand, level catalog.Level) RawProblem {
	p := 100 * byLevel(level, span{1, 10}, span{5, 20}, span{10, 50}, span{10, 100}).draw(r)
	rate := byLevel(level, span{1, 5}, span{2, 8}, span{2, 10}, span{3, 12}).draw(r)
	t := byLevel(level, span{1, 2}, span{1, 3}, span{2, 5}, span{2, 8}).draw(r)
	interest := p * rate * t / 100
	if level == catalog.LevelExpert && chance(r, 2) {
		return numeric(r, fmt.Sprintf("$%d is invested at %d%% simple interest for %d years. What is the total amount in dollars?", p, rate, t), float64(p+interest), 0,
			fmt.Sprintf("Interest = %d × %d%% × %d = $%d, so the total is $%d.", p, rate, t, interest, p+interest))
	}
	return numeric(r, fmt.Sprintf("How much simple interest does $%d earn at %d%% per year for %d %s?", p, rate, t, plural(t, "year", "years")), float64(interest), 0,
		fmt.Sprintf("I = P × r × t = %d × %d/100 × %d = $%d.", p, rate, t, interest))
}

// sciNotation renders mantissa digits "45" and exponent 4 as "4.5 × 10^4".
func sciNotation(digits string, exp int) string {
	m := digits[:1]
	if rest := strings.TrimRight(digits[1:], "0"); rest != "" {
		m += "." + rest
	}
	return fmt.Sprintf("%s × 10^%d", m, exp)
}

// standardForm renders digits × 10^(exp-len+1) as a plain decimal string.
func standardForm(digits string, exp int) string {
	if exp >= len(digits)-1 {
		n, _ := strconv.Atoi(digits + strings.Repeat("0", exp-len(digits)+1))
		return grouped(n)
	}
	if exp >= 0 {
		return digits[:exp+1] + "." + strings.TrimRight(digits[exp+1:], "0")
	}
	return "0." + strings.Repeat("0", -exp-1) + strings.TrimRight(digits, "0")
}

func genScientificNotation(r Rand, level catalog.Level) RawProblem {
	d1, d2 := randInt(r, 1, 9), randInt(r, 1, 9)
	digits := itoa(d1) + itoa(d2)
	exp := byLevel(level, span{2, 3}, span{3, 5}, span{4, 7}, span{-5, -2}).draw(r)
	ans := sciNotation(digits, exp)
	bumped := itoa(d1) + itoa(d2%9+1)
	pool := []string{sciNotation(digits, exp-1), sciNotation(digits, exp+1), sciNotation(bumped, exp), sciNotation(digits, -exp)}
	return choice(r, fmt.Sprintf("Write %s in scientific notation.", standardForm(digits, exp)), ans, AnswerTypeText, pool,
		fmt.Sprintf("Move the decimal point so one nonzero digit is left of it; it moved %d places, so the answer is %s.", absInt(exp), ans))
}

var romanTable = []struct {
	v int
	s string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"}, {100, "C"}, {90, "XC"},
	{50, "L"}, {40, "XL"}, {10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

func toRoman(n int) string {
	var b strings.Builder
	for _, e := range romanTable {
		for n >= e.v {
			b.WriteString(e.s)
			n -= e.v
		}
	}
	return b.String()
}

func genRomanNumerals(r Rand, level catalog.Level) RawProblem {
	n := byLevel(level, span{1, 10}, span{10, 50}, span{40, 100}, span{100, 2000}).draw(r)
	if level.Index() < 2 {
		return numeric(r, fmt.Sprintf("What number is the Roman numeral %s?", toRoman(n)), float64(n), 0,
			fmt.Sprintf("%s = %d.", toRoman(n), n))
	}
	var pool []string
	for _, d := range []int{-1, 1, -10, 10, 5} {
		if n+d > 0 {
			pool = append(pool, toRoman(n+d))
		}
	}
	return choice(r, fmt.Sprintf("Write %d in Roman numerals.", n), toRoman(n), AnswerTypeText, pool,
		fmt.Sprintf("Build it from the largest values down: %d = %s.", n, toRoman(n)))
}

func genBinaryNumbers(r Rand, level catalog.Level) RawProblem {
	n := byLevel(level, span{1, 15}, span{8, 63}, span{8, 63}, span{64, 255}).draw(r)
	bin := strconv.FormatInt(int64(n), 2)
	if level.Index() < 2 {
		return numeric(r, fmt.Sprintf("What is the binary number %s in base ten?", bin), float64(n), 0,
			fmt.Sprintf("Add the place values of the 1 bits in %s to get %d.", bin, n))
	}
	var pool []string
	for _, v := range []int{n + 1, n - 1, n + 2, n ^ 4, n * 2} {
		if v > 0 {
			pool = append(pool, strconv.FormatInt(int64(v), 2))
		}
	}
	return choice(r, fmt.Sprintf("Write %d in binary.", n), bin, AnswerTypeText, pool,
		fmt.Sprintf("Write %d as a sum of powers of two: %s in binary.", n, bin))
}

// dataSet returns k values in s whose mean is a whole number.
func dataSet(r Rand, s span, k int) []int {
	for range 16 {
		vals := make([]int, k)
		sum := 0
		for i := range k - 1 {
			vals[i] = s.draw(r)
			sum += vals[i]
		}
		mean := s.draw(r)
		last := k*mean - sum
		if last >= s.lo && last <= s.hi {
			vals[k-1] = last
			return vals
		}
	}
	m := s.draw(r)
	vals := make([]int, k)
	for i := range vals {
		vals[i] = m
	}
	d := min(m-s.lo, s.hi-m)
	if k >= 2 {
		vals[0], vals[1] = m-d, m+d
	}
	return vals
}

func sumInts(vals []int) int {
	t := 0
	for _, v := range vals {
		t += v
	}
	return t
}

func genMean(r Rand, level catalog.Level) RawProblem {
	k := byLevel(level, 3, 4, 5, 6)
	vals := dataSet(r, byLevel(level, span{1, 10}, span{5, 30}, span{10, 60}, span{20, 100}), k)
	total := sumInts(vals)
	mean := total / k
	return numeric(r, fmt.Sprintf("What is the mean of %s?", joinInts(vals)), float64(mean), 0,
		fmt.Sprintf("The sum is %d and there are %d numbers: %d ÷ %d = %d.", total, k, total, k, mean))
}

func genMedian(r Rand, level catalog.Level) RawProblem {
	k := byLevel(level, 3, 5, 7, 6)
	vals := distinctInts(r, byLevel(level, span{1, 20}, span{5, 50}, span{10, 99}, span{10, 99}), k)
	sorted := slices.Sorted(slices.Values(vals))
	if k%2 == 1 {
		med := sorted[k/2]
		return numeric(r, fmt.Sprintf("What is the median of %s?", joinInts(vals)), float64(med), 0,
			fmt.Sprintf("Sorted: %s. The middle value is %d.", joinInts(sorted), med))
	}
	lo, hi := sorted[k/2-1], sorted[k/2]
	med := float64(lo+hi) / 2
	return numeric(r, fmt.Sprintf("What is the median of %s?", joinInts(vals)), med, 1,
		fmt.Sprintf("Sorted: %s. The middle two are %d and %d, so the median is (%d + %d) ÷ 2 = %s.", joinInts(sorted), lo, hi, lo, hi, num(med)))
}

func genMode(r Rand, level catalog.Level) RawProblem {
	k := byLevel(level, 3, 4, 5, 6)
	s := byLevel(level, span{1, 10}, span{1, 20}, span{10, 50}, span{10, 99})
	vals := distinctInts(r, s, k)
	mode := vals[0]
	list := append([]int{mode, mode}, vals...)
	if level.Index() >= 2 {
		list = append(list, vals[1])
	}
	list = shuffled(r, list)
	return intChoice(r, fmt.Sprintf("What is the mode of %s?", joinInts(list)), mode, vals,
		fmt.Sprintf("%d appears %d times, more than any other value.", mode, 3))
}

func genRangeStats(r Rand, level catalog.Level) RawProblem {
	k := byLevel(level, 4, 5, 6, 7)
	vals := distinctInts(r, byLevel(level, span{1, 20}, span{5, 50}, span{10, 99}, span{10, 200}), k)
	hi, lo := slices.Max(vals), slices.Min(vals)
	return numeric(r, fmt.Sprintf("What is the range of %s?", joinInts(vals)), float64(hi-lo), 0,
		fmt.Sprintf("The largest is %d and the smallest is %d: %d - %d = %d.", hi, lo, hi, lo, hi-lo))
}
