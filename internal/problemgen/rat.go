package problemgen

import "fmt"

// rat is a reduced fraction with a positive denominator.
type rat struct{ n, d int }

func newRat(n, d int) rat {
	if d < 0 {
		n, d = -n, -d
	}
	g := gcd(n, d)
	if g == 0 {
		g = 1
	}
	return rat{n / g, d / g}
}

func (a rat) add(b rat) rat { return newRat(a.n*b.d+b.n*a.d, a.d*b.d) }
func (a rat) sub(b rat) rat { return newRat(a.n*b.d-b.n*a.d, a.d*b.d) }
func (a rat) mul(b rat) rat { return newRat(a.n*b.n, a.d*b.d) }
func (a rat) div(b rat) rat { return newRat(a.n*b.d, a.d*b.n) }

func (a rat) less(b rat) bool { return a.n*b.d < b.n*a.d }

// String renders "n/d", or "n" for whole numbers.
func (a rat) String() string {
	if a.d == 1 {
		return itoa(a.n)
	}
	return fmt.Sprintf("%d/%d", a.n, a.d)
}

// mixed renders a non-negative value as a mixed number, e.g. "2 3/4".
func (a rat) mixed() string {
	w, rem := a.n/a.d, a.n%a.d
	switch {
	case rem == 0:
		return itoa(w)
	case w == 0:
		return a.String()
	}
	return fmt.Sprintf("%d %d/%d", w, rem, a.d)
}

func (a rat) answerType() AnswerType {
	if a.d == 1 {
		return AnswerTypeInteger
	}
	return AnswerTypeFraction
}

// ratOptions builds options whose values differ from ans and from each
// other, so no two options name the same quantity ("1/2" and "2/4").
func ratOptions(r Rand, ans rat, render func(rat) string, candidates ...rat) []string {
	values := []rat{ans}
	add := func(c rat) {
		if c.d <= 0 || c.n < 0 {
			return
		}
		for _, v := range values {
			if v == c {
				return
			}
		}
		values = append(values, c)
	}

	r.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })
	for _, c := range candidates {
		if len(values) == OptionCount {
			break
		}
		add(c)
	}
	for k := 1; len(values) < OptionCount; k++ {
		add(newRat(2*ans.n+k, 2*ans.d))
	}

	out := make([]string, len(values))
	for i, v := range values {
		out[i] = render(v)
	}
	return ShuffleOptions(r, out)
}

// fractionProblem answers with a reduced fraction and value-distinct options.
func fractionProblem(r Rand, question string, ans rat, explanation string, candidates ...rat) RawProblem {
	return RawProblem{
		Question:    question,
		Answer:      ans.String(),
		AnswerType:  ans.answerType(),
		Options:     ratOptions(r, ans, rat.String, candidates...),
		Explanation: explanation,
	}
}

// commonRatCandidates returns near-miss fractions around ans.
func commonRatCandidates(ans rat) []rat {
	return []rat{
		newRat(ans.n+1, ans.d),
		newRat(ans.n, ans.d+1),
		newRat(ans.n+ans.d, ans.d),
		newRat(ans.d, ans.n+1),
		newRat(ans.n+1, ans.d+1),
	}
}
