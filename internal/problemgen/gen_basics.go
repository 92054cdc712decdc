package problemgen

import (
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/mathforge/internal/catalog"
)

func genCounting(r Rand, level catalog.Level) RawProblem {
	n := byLevel(level, span{1, 5}, span{5, 10}, span{10, 20}, span{20, 30}).draw(r)
	shape := pick(r, []string{"★", "●", "▲", "♦"})
	var b strings.Builder
	for i := range n {
		if i > 0 && i%5 == 0 {
			b.WriteString(" ")
		}
		b.WriteString(shape)
	}
	return numeric(r, "How many shapes are there? "+b.String(), float64(n), 0,
		fmt.Sprintf("Count them in groups of five. There are %d.", n))
}

func genNumberRecognition(r Rand, level catalog.Level) RawProblem {
	n := byLevel(level, span{0, 20}, span{21, 100}, span{100, 999}, span{1000, 9999}).draw(r)
	return numeric(r, fmt.Sprintf("Which number is %s?", words(n)), float64(n), 0,
		fmt.Sprintf("%s is written %s.", capitalize(words(n)), grouped(n)))
}

// compareSymbols maps comparison answers to their display labels.
var compareSymbols = []string{">", "<", "="}

var compareWords = []string{"greater than", "less than", "equal to"}

func compareIndex(less, equal bool) int {
	switch {
	case equal:
		return 2
	case less:
		return 1
	}
	return 0
}

// compareProblem renders "Compare: a ? b" answered by an index into
// compareSymbols.
func compareProblem(r Rand, left, right string, cmp int) RawProblem {
	options, display := ShufflePaired(r, []string{"0", "1", "2"}, slices.Clone(compareSymbols))
	return RawProblem{
		Question:       fmt.Sprintf("Compare: %s ? %s", left, right),
		Answer:         itoa(cmp),
		AnswerType:     AnswerTypeIndex,
		Options:        options,
		OptionsDisplay: display,
		Explanation: fmt.Sprintf("%s is %s %s, so %s %s %s.",
			left, compareWords[cmp], right, left, compareSymbols[cmp], right),
	}
}

func genComparingNumbers(r Rand, level catalog.Level) RawProblem {
	s := byLevel(level, span{1, 10}, span{10, 100}, span{100, 1000}, span{1000, 10000})
	a, b := s.draw(r), s.draw(r)
	if chance(r, 4) {
		b = a
	}
	return compareProblem(r, grouped(a), grouped(b), compareIndex(a < b, a == b))
}

func genOrderingNumbers(r Rand, level catalog.Level) RawProblem {
	s := byLevel(level, span{1, 20}, span{10, 100}, span{100, 1000}, span{1000, 10000})
	ns := distinctInts(r, s, 4)
	sorted := slices.Sorted(slices.Values(ns))
	word, ans := "smallest", sorted[0]
	if chance(r, 2) {
		word, ans = "largest", sorted[len(sorted)-1]
	}
	return intChoice(r, fmt.Sprintf("Which number is the %s: %s?", word, joinInts(ns)), ans, ns,
		fmt.Sprintf("In order from smallest to largest: %s. The %s is %d.", joinInts(sorted), word, ans))
}

func genSkipCounting(r Rand, level catalog.Level) RawProblem {
	step := pick(r, byLevel(level, []int{2, 5, 10}, []int{3, 4, 5, 10}, []int{6, 7, 8, 9, 25}, []int{11, 12, 15, 50}))
	start := step * randInt(r, 0, 5)
	seq := []int{start, start + step, start + 2*step, start + 3*step}
	ans := start + 4*step
	return numeric(r, fmt.Sprintf("Skip count by %ds: %s, ?", step, joinInts(seq)), float64(ans), 0,
		fmt.Sprintf("Each number is %d more than the one before, so %d + %d = %d.", step, seq[3], step, ans))
}

func genNumberBonds(r Rand, level catalog.Level) RawProblem {
	total := byLevel(level, span{5, 10}, span{10, 20}, span{20, 100}, span{100, 1000}).draw(r)
	part := randInt(r, 1, total-1)
	ans := total - part
	return numeric(r, fmt.Sprintf("%d and what number make %d?", part, total), float64(ans), 0,
		fmt.Sprintf("%d - %d = %d, so %d and %d make %d.", total, part, ans, part, ans, total))
}

var placeNames = []string{"ones", "tens", "hundreds", "thousands", "ten thousands"}

func genPlaceValue(r Rand, level catalog.Level) RawProblem {
	n := byLevel(level, span{10, 99}, span{100, 999}, span{1000, 9999}, span{10000, 99999}).draw(r)
	p := r.IntN(len(itoa(n)))
	d := n / ipow(10, p) % 10
	return digitChoice(r, fmt.Sprintf("What is the %s digit of %s?", placeNames[p], grouped(n)), d,
		fmt.Sprintf("In %s the %s digit is %d, worth %s.", grouped(n), placeNames[p], d, grouped(d*ipow(10, p))))
}

func genEvenOdd(r Rand, level catalog.Level) RawProblem {
	n := byLevel(level, span{1, 20}, span{20, 100}, span{100, 1000}, span{1000, 99999}).draw(r)
	ans := "even"
	if n%2 != 0 {
		ans = "odd"
	}
	return choice(r, fmt.Sprintf("Is %s even or odd?", grouped(n)), ans, AnswerTypeText, []string{"even", "odd"},
		fmt.Sprintf("%s ends in %d, so it is %s.", grouped(n), n%10, ans))
}

func genBeforeAfter(r Rand, level catalog.Level) RawProblem {
	n := byLevel(level, span{1, 20}, span{20, 100}, span{100, 1000}, span{1000, 10000}).draw(r)
	switch r.IntN(3) {
	case 0:
		return numeric(r, fmt.Sprintf("What number comes just after %d?", n), float64(n+1), 0,
			fmt.Sprintf("One more than %d is %d.", n, n+1))
	case 1:
		return numeric(r, fmt.Sprintf("What number comes just before %d?", n), float64(n-1), 0,
			fmt.Sprintf("One less than %d is %d.", n, n-1))
	default:
		return numeric(r, fmt.Sprintf("What number comes between %d and %d?", n-1, n+1), float64(n), 0,
			fmt.Sprintf("%d comes after %d and before %d.", n, n-1, n+1))
	}
}

var shapes2DBank = [][]item{
	{
		{"How many sides does a triangle have?", "3", []string{"2", "4", "5"}, "A triangle has 3 straight sides."},
		{"How many corners does a square have?", "4", []string{"3", "5", "6"}, "A square has 4 corners."},
		{"Which shape is perfectly round?", "circle", []string{"square", "triangle", "rectangle"}, "A circle is round and has no corners."},
		{"Which shape has 4 sides and 4 corners?", "square", []string{"circle", "triangle", "oval"}, "A square has 4 equal sides and 4 corners."},
	},
	{
		{"How many sides does a pentagon have?", "5", []string{"4", "6", "8"}, "Penta means five: a pentagon has 5 sides."},
		{"How many sides does a hexagon have?", "6", []string{"5", "7", "8"}, "Hexa means six: a hexagon has 6 sides."},
		{"Which shape has 4 equal sides and 4 right angles?", "square", []string{"rectangle", "rhombus", "trapezoid"}, "Only a square has both equal sides and right angles."},
		{"Which shape has 3 sides?", "triangle", []string{"square", "pentagon", "hexagon"}, "Tri means three: a triangle has 3 sides."},
	},
	{
		{"How many sides does an octagon have?", "8", []string{"6", "7", "10"}, "Octo means eight: an octagon has 8 sides."},
		{"How many sides do 2 hexagons have in total?", "12", []string{"10", "8", "14"}, "Each hexagon has 6 sides: 6 + 6 = 12."},
		{"A shape has exactly one pair of parallel sides. What is it?", "trapezoid", []string{"square", "rhombus", "rectangle"}, "A trapezoid has exactly one pair of parallel sides."},
		{"How many corners do a triangle and a square have together?", "7", []string{"6", "8", "9"}, "3 corners + 4 corners = 7 corners."},
	},
}

func genShapes2D(r Rand, level catalog.Level) RawProblem {
	return fromBank(r, level, shapes2DBank...)
}

func genTellingTime(r Rand, level catalog.Level) RawProblem {
	h := randInt(r, 1, 12)
	step := byLevel(level, 60, 30, 15, 5)
	m := step * r.IntN(60/step)
	hand := m / 5
	if hand == 0 {
		hand = 12
	}
	ans := fmt.Sprintf("%d:%02d", h, m)
	pool := []string{
		fmt.Sprintf("%d:%02d", h%12+1, m),
		fmt.Sprintf("%d:%02d", (h+10)%12+1, m),
		fmt.Sprintf("%d:%02d", h, (m+30)%60),
		fmt.Sprintf("%d:%02d", h, (m+15)%60),
	}
	return choice(r, fmt.Sprintf("The hour hand is at %d and the minute hand points to %d. What time is it?", h, hand),
		ans, AnswerTypeText, pool,
		fmt.Sprintf("The minute hand on %d means %d minutes past %d, so the time is %s.", hand, m, h, ans))
}

type coin struct {
	one, many string
	cents     int
}

var (
	penny   = coin{"penny", "pennies", 1}
	nickel  = coin{"nickel", "nickels", 5}
	dime    = coin{"dime", "dimes", 10}
	quarter = coin{"quarter", "quarters", 25}
)

func genMoneyCounting(r Rand, level catalog.Level) RawProblem {
	coins := byLevel(level,
		[]coin{nickel, penny},
		[]coin{dime, nickel, penny},
		[]coin{quarter, dime, penny},
		[]coin{quarter, dime, nickel, penny},
	)
	most := byLevel(level, 5, 5, 4, 4)
	var parts, sums []string
	total := 0
	for _, c := range coins {
		k := randInt(r, 1, most)
		total += k * c.cents
		parts = append(parts, fmt.Sprintf("%d %s", k, plural(k, c.one, c.many)))
		sums = append(sums, itoa(k*c.cents))
	}
	return numeric(r, fmt.Sprintf("You have %s. How many cents do you have?", andJoin(parts)), float64(total), 0,
		fmt.Sprintf("%s = %d cents.", strings.Join(sums, " + "), total))
}

func genDoubles(r Rand, level catalog.Level) RawProblem {
	n := byLevel(level, span{1, 5}, span{6, 10}, span{11, 25}, span{26, 100}).draw(r)
	return numeric(r, fmt.Sprintf("Double %d. What is %d + %d?", n, n, n), float64(2*n), 0,
		fmt.Sprintf("Double %d means %d + %d = %d.", n, n, n, 2*n))
}

func genTensOnes(r Rand, level catalog.Level) RawProblem {
	switch level.Index() {
	case 0, 1:
		t := randInt(r, 1, byLevel(level, 5, 9))
		o := randInt(r, 0, 9)
		n := 10*t + o
		return numeric(r, fmt.Sprintf("What number has %d tens and %d ones?", t, o), float64(n), 0,
			fmt.Sprintf("%d tens is %d, plus %d ones is %d.", t, 10*t, o, n))
	case 2:
		h, t, o := randInt(r, 1, 9), randInt(r, 0, 9), randInt(r, 0, 9)
		n := 100*h + 10*t + o
		return numeric(r, fmt.Sprintf("What number has %d hundreds, %d tens and %d ones?", h, t, o), float64(n), 0,
			fmt.Sprintf("%d + %d + %d = %d.", 100*h, 10*t, o, n))
	default:
		t, o := randInt(r, 1, 8), randInt(r, 10, 19)
		n := 10*t + o
		return numeric(r, fmt.Sprintf("What number has %d tens and %d ones?", t, o), float64(n), 0,
			fmt.Sprintf("%d ones is 1 ten and %d ones, so the number is %d + %d = %d.", o, o-10, 10*t, o, n))
	}
}

var patternColors = []string{"red", "blue", "green", "yellow", "purple"}

func genPatterns(r Rand, level catalog.Level) RawProblem {
	unit := byLevel(level, []int{0, 1}, []int{0, 1, 2}, []int{0, 0, 1, 1}, []int{0, 1, 1, 2})
	colors := shuffled(r, patternColors)
	var shown, unitNames []string
	for _, u := range unit {
		unitNames = append(unitNames, colors[u])
	}
	for range 2 {
		shown = append(shown, unitNames...)
	}
	k := r.IntN(len(unit))
	shown = append(shown, unitNames[:k]...)
	ans := unitNames[k]
	return choice(r, fmt.Sprintf("What comes next in the pattern? %s, ?", strings.Join(shown, ", ")),
		ans, AnswerTypeText, colors,
		fmt.Sprintf("The pattern repeats %s, so %s comes next.", strings.Join(unitNames, ", "), ans))
}

type roundCase struct {
	s    span
	unit int
	name string
}

func genRounding(r Rand, level catalog.Level) RawProblem {
	c := pick(r, byLevel(level,
		[]roundCase{{span{10, 99}, 10, "ten"}},
		[]roundCase{{span{100, 999}, 10, "ten"}, {span{100, 999}, 100, "hundred"}},
		[]roundCase{{span{1000, 9999}, 100, "hundred"}, {span{1000, 9999}, 1000, "thousand"}},
		[]roundCase{{span{10000, 99999}, 1000, "thousand"}, {span{10000, 99999}, 10000, "ten thousand"}},
	))
	n := c.s.draw(r)
	ans := roundTo(n, c.unit)
	return intChoice(r, fmt.Sprintf("Round %s to the nearest %s.", grouped(n), c.name), ans,
		[]int{ans - c.unit, ans + c.unit, ans + 2*c.unit, n},
		fmt.Sprintf("%s is closer to %s than to any other multiple of %s.", grouped(n), grouped(ans), grouped(c.unit)))
}

func genExpandedForm(r Rand, level catalog.Level) RawProblem {
	n := byLevel(level, span{10, 99}, span{100, 999}, span{1000, 9999}, span{10000, 99999}).draw(r)
	var parts []string
	digits := itoa(n)
	for i, ch := range digits {
		d := int(ch - '0')
		if d == 0 {
			continue
		}
		parts = append(parts, grouped(d*ipow(10, len(digits)-1-i)))
	}
	expr := strings.Join(parts, " + ")
	return numeric(r, fmt.Sprintf("What number is %s?", expr), float64(n), 0,
		fmt.Sprintf("Put each place value together: %s = %s.", expr, grouped(n)))
}

var lineAnimals = []string{"cat", "dog", "fish", "bird", "frog", "duck", "bee", "cow"}

func genOrdinalNumbers(r Rand, level catalog.Level) RawProblem {
	size := byLevel(level, 4, 5, 7, 8)
	line := shuffled(r, lineAnimals)[:size]
	pos := randInt(r, 1, byLevel(level, 3, 5, size, size))
	listing := strings.Join(line, ", ")
	if level == catalog.LevelExpert && chance(r, 2) {
		ans := line[size-pos]
		return choice(r, fmt.Sprintf("The animals stand in line: %s. Which animal is %s from the end?", listing, ordinal(pos)),
			ans, AnswerTypeText, line,
			fmt.Sprintf("Counting back from the end, the %s animal is the %s.", ordinal(pos), ans))
	}
	ans := line[pos-1]
	return choice(r, fmt.Sprintf("The animals stand in line: %s. Which animal is %s?", listing, ordinal(pos)),
		ans, AnswerTypeText, line,
		fmt.Sprintf("Counting from the front, the %s animal is the %s.", ordinal(pos), ans))
}

var (
	weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	months   = []string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"}
)

func genCalendar(r Rand, level catalog.Level) RawProblem {
	switch level.Index() {
	case 0:
		d := r.IntN(7)
		ans := weekdays[(d+1)%7]
		return choice(r, fmt.Sprintf("What day comes after %s?", weekdays[d]), ans, AnswerTypeText, weekdays,
			fmt.Sprintf("The day after %s is %s.", weekdays[d], ans))
	case 1:
		d, k := r.IntN(7), randInt(r, 2, 3)
		ans := weekdays[(d+k)%7]
		return choice(r, fmt.Sprintf("What day is %d days after %s?", k, weekdays[d]), ans, AnswerTypeText, weekdays,
			fmt.Sprintf("Count %d days forward from %s to reach %s.", k, weekdays[d], ans))
	case 2:
		m := r.IntN(12)
		if chance(r, 2) {
			ans := months[(m+11)%12]
			return choice(r, fmt.Sprintf("Which month comes before %s?", months[m]), ans, AnswerTypeText, months,
				fmt.Sprintf("%s comes just before %s.", ans, months[m]))
		}
		ans := months[(m+1)%12]
		return choice(r, fmt.Sprintf("Which month comes after %s?", months[m]), ans, AnswerTypeText, months,
			fmt.Sprintf("%s comes just after %s.", ans, months[m]))
	default:
		w := randInt(r, 2, 8)
		return numeric(r, fmt.Sprintf("How many days are in %d weeks?", w), float64(7*w), 0,
			fmt.Sprintf("Each week has 7 days: %d × 7 = %d.", w, 7*w))
	}
}

var lengthPairs = [][2]string{{"pencil", "crayon"}, {"rope", "ribbon"}, {"snake", "worm"}, {"scarf", "sock"}}

func genMeasurementLength(r Rand, level catalog.Level) RawProblem {
	pair := pick(r, lengthPairs)
	switch level.Index() {
	case 0, 1:
		s := byLevel(level, span{2, 20}, span{10, 100})
		a := s.draw(r)
		b := randInt(r, s.lo, a)
		if b == a {
			a++
		}
		return numeric(r, fmt.Sprintf("A %s is %d cm long and a %s is %d cm long. How much longer is the %s?", pair[0], a, pair[1], b, pair[0]),
			float64(a-b), 0, fmt.Sprintf("%d cm - %d cm = %d cm.", a, b, a-b))
	case 2:
		m := randInt(r, 2, 9)
		return numeric(r, fmt.Sprintf("How many centimeters long is a %d-meter %s?", m, pair[0]), float64(100*m), 0,
			fmt.Sprintf("1 meter is 100 cm, so %d meters is %d cm.", m, 100*m))
	default:
		m, c := randInt(r, 1, 3), randInt(r, 5, 95)
		a := 100*m + c
		b := randInt(r, 50, a-1)
		return numeric(r, fmt.Sprintf("A %s is %d m %d cm long and a %s is %d cm long. How many centimeters longer is the %s?", pair[0], m, c, pair[1], b, pair[0]),
			float64(a-b), 0, fmt.Sprintf("%d m %d cm is %d cm, and %d - %d = %d.", m, c, a, a, b, a-b))
	}
}
