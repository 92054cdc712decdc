package problemgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/mathforge/internal/catalog"
)

var logicBank = [][]item{
	{
		{"Tom is taller than Ann. Ann is taller than Raj. Who is the shortest?", "Raj", []string{"Tom", "Ann", "They are equal"}, "Tom > Ann > Raj, so Raj is the shortest."},
		{"If today is Monday, what day will it be in 2 days?", "Wednesday", []string{"Tuesday", "Thursday", "Sunday"}, "Monday, Tuesday, Wednesday."},
		{"A box has only red balls. You take one out. What color is it?", "red", []string{"blue", "green", "cannot tell"}, "Every ball in the box is red."},
	},
	{
		{"All cats have whiskers. Milo is a cat. Does Milo have whiskers?", "yes", []string{"no", "maybe", "only sometimes"}, "Every cat has whiskers, and Milo is a cat."},
		{"Five friends each shake hands with the person next to them in a line. How many handshakes are there?", "4", []string{"5", "10", "3"}, "A line of 5 has 4 neighboring pairs."},
		{"If it is 3 days after the day before Friday, what day is it?", "Sunday", []string{"Saturday", "Monday", "Friday"}, "The day before Friday is Thursday; 3 days later is Sunday."},
	},
	{
		{"Five friends each shake hands once with every other friend. How many handshakes are there?", "10", []string{"20", "25", "5"}, "5 × 4 ÷ 2 = 10."},
		{"A snail climbs 3 m up a 10 m wall each day and slips 2 m each night. On which day does it reach the top?", "8", []string{"10", "7", "5"}, "After 7 days it is at 7 m; on day 8 it climbs to 10 m."},
		{"Some birds are penguins. All penguins swim. Must every bird swim?", "no", []string{"yes", "only penguins do not", "cannot be false"}, "Only the birds that are penguins are known to swim."},
	},
	{
		{"A bat and a ball cost $1.10 together. The bat costs $1.00 more than the ball. How many cents does the ball cost?", "5", []string{"10", "15", "1"}, "ball + (ball + 100) = 110, so ball = 5 cents."},
		{"In a race you pass the person in 2nd place. What place are you in?", "2nd", []string{"1st", "3rd", "last"}, "You take the place of the person you passed."},
		{"How many squares of any size are on a 3 by 3 grid?", "14", []string{"9", "10", "13"}, "9 small squares, 4 of size 2 and 1 of size 3: 9 + 4 + 1 = 14."},
	},
}

func genLogicPuzzles(r Rand, level catalog.Level) RawProblem {
	return fromBank(r, level, logicBank...)
}

func genNumberPuzzles(r Rand, level catalog.Level) RawProblem {
	n := byLevel(level, span{1, 10}, span{2, 20}, span{5, 40}, span{10, 99}).draw(r)
	switch level.Index() {
	case 0:
		k := randInt(r, 1, 10)
		return numeric(r, fmt.Sprintf("I am thinking of a number. If I add %d, I get %d. What is my number?", k, n+k), float64(n), 0,
			fmt.Sprintf("Undo the addition: %d - %d = %d.", n+k, k, n))
	case 1:
		m, k := randInt(r, 2, 5), randInt(r, 1, 10)
		return numeric(r, fmt.Sprintf("I am thinking of a number. If I multiply it by %d and add %d, I get %d. What is my number?", m, k, m*n+k), float64(n), 0,
			fmt.Sprintf("Work backwards: (%d - %d) ÷ %d = %d.", m*n+k, k, m, n))
	case 2:
		return numeric(r, fmt.Sprintf("Two numbers add to %d and one is %d more than the other. What is the larger number?", 2*n+6, 6), float64(n+6), 0,
			fmt.Sprintf("Take away the difference and halve: (%d - 6) ÷ 2 = %d, so the larger is %d.", 2*n+6, n, n+6))
	default:
		a := randInt(r, 1, 9)
		b := randInt(r, 0, 9)
		v := 10*a + b
		return numeric(r, fmt.Sprintf("A two-digit number has digits adding to %d. Its tens digit is %d. What is the number?", a+b, a), float64(v), 0,
			fmt.Sprintf("The ones digit is %d - %d = %d, so the number is %d.", a+b, a, b, v))
	}
}

func genSequences(r Rand, level catalog.Level) RawProblem {
	switch r.IntN(byLevel(level, 1, 2, 3, 4)) {
	case 0:
		start, step := randInt(r, 1, 20), randInt(r, 2, 10)
		terms := []int{start, start + step, start + 2*step, start + 3*step}
		return numeric(r, fmt.Sprintf("What comes next: %s, ?", joinInts(terms)), float64(start+4*step), 0,
			fmt.Sprintf("Add %d each time: %d + %d = %d.", step, terms[3], step, start+4*step))
	case 1:
		start, ratio := randInt(r, 1, 5), randInt(r, 2, 3)
		terms := []int{start, start * ratio, start * ratio * ratio, start * ipow(ratio, 3)}
		next := start * ipow(ratio, 4)
		return numeric(r, fmt.Sprintf("What comes next: %s, ?", joinInts(terms)), float64(next), 0,
			fmt.Sprintf("Multiply by %d each time: %d × %d = %d.", ratio, terms[3], ratio, next))
	case 2:
		k := randInt(r, 1, 6)
		terms := []int{k * k, (k + 1) * (k + 1), (k + 2) * (k + 2), (k + 3) * (k + 3)}
		next := (k + 4) * (k + 4)
		return numeric(r, fmt.Sprintf("What comes next: %s, ?", joinInts(terms)), float64(next), 0,
			fmt.Sprintf("These are square numbers: %d × %d = %d.", k+4, k+4, next))
	default:
		a, b := randInt(r, 1, 5), randInt(r, 1, 5)
		terms := []int{a, b}
		for len(terms) < 6 {
			terms = append(terms, terms[len(terms)-1]+terms[len(terms)-2])
		}
		next := terms[4] + terms[5]
		return numeric(r, fmt.Sprintf("What comes next: %s, ?", joinInts(terms)), float64(next), 0,
			fmt.Sprintf("Each term is the sum of the two before it: %d + %d = %d.", terms[4], terms[5], next))
	}
}

func genMentalMath(r Rand, level catalog.Level) RawProblem {
	switch level.Index() {
	case 0:
		a, b := 10*randInt(r, 1, 9), 10*randInt(r, 1, 9)
		return numeric(r, fmt.Sprintf("%d + %d", a, b), float64(a+b), 0,
			fmt.Sprintf("Add the tens: %d + %d = %d tens.", a/10, b/10, (a+b)/10))
	case 1:
		a, b := randInt(r, 11, 89), 10*randInt(r, 1, 9)-1
		return numeric(r, fmt.Sprintf("%d + %d", a, b), float64(a+b), 0,
			fmt.Sprintf("Add %d, then take away 1: %d + %d - 1 = %d.", b+1, a, b+1, a+b))
	case 2:
		a := randInt(r, 12, 99)
		return numeric(r, fmt.Sprintf("%d × 5", a), float64(5*a), 0,
			fmt.Sprintf("Multiply by 10 and halve: %d × 10 ÷ 2 = %d.", a, 5*a))
	default:
		a, b := randInt(r, 12, 49), pick(r, []int{99, 101, 25, 11})
		return numeric(r, fmt.Sprintf("%d × %d", a, b), float64(a*b), 0,
			fmt.Sprintf("Use a friendly number: %d × %d = %d.", a, b, a*b))
	}
}

var teaserBank = [][]item{
	{
		{"How many months have 28 days?", "12", []string{"1", "2", "6"}, "Every month has at least 28 days."},
		{"If you have 3 apples and take away 2, how many apples do you have?", "2", []string{"1", "3", "5"}, "You took 2, so you have 2."},
	},
	{
		{"A farmer has 17 sheep. All but 9 run away. How many are left?", "9", []string{"8", "17", "0"}, "All but 9 means 9 stay."},
		{"What is half of 2 plus 2?", "3", []string{"2", "4", "1"}, "Half of 2 is 1, and 1 + 2 = 3."},
	},
	{
		{"If 5 machines make 5 widgets in 5 minutes, how many minutes do 100 machines take to make 100 widgets?", "5", []string{"100", "20", "1"}, "Each machine makes one widget in 5 minutes."},
		{"A lily pad patch doubles daily and covers a pond in 48 days. On which day is the pond half covered?", "47", []string{"24", "46", "12"}, "It doubles to full on day 48, so it was half full on day 47."},
	},
	{
		{"How many times does the digit 1 appear when writing the numbers 1 to 20?", "12", []string{"11", "10", "2"}, "1, 10, 12 to 19 once each, 11 twice: 12 in total."},
		{"What is the smallest number that leaves remainder 1 when divided by 2, 3, 4, 5 and 6?", "61", []string{"31", "121", "60"}, "The LCM of 2 to 6 is 60, and 60 + 1 = 61."},
	},
}

func genBrainTeasers(r Rand, level catalog.Level) RawProblem {
	return fromBank(r, level, teaserBank...)
}

func digitSum(n int) int {
	s := 0
	for n = absInt(n); n > 0; n /= 10 {
		s += n % 10
	}
	return s
}

func genDigitSum(r Rand, level catalog.Level) RawProblem {
	n := byLevel(level, span{10, 99}, span{100, 999}, span{1000, 9999}, span{10000, 99999}).draw(r)
	s := digitSum(n)
	if level == catalog.LevelExpert && chance(r, 2) {
		dr := s
		for dr >= 10 {
			dr = digitSum(dr)
		}
		return numeric(r, fmt.Sprintf("Keep adding the digits of %d until one digit is left. What is it?", n), float64(dr), 0,
			fmt.Sprintf("The digits add to %d, and repeating gives %d.", s, dr))
	}
	digits := strings.Split(itoa(n), "")
	return numeric(r, fmt.Sprintf("What is the sum of the digits of %d?", n), float64(s), 0,
		fmt.Sprintf("%s = %d.", strings.Join(digits, " + "), s))
}

// loShu is the 3×3 magic square with constant 15.
var loShu = [3][3]int{{2, 7, 6}, {9, 5, 1}, {4, 3, 8}}

func transformSquare(r Rand, sq [3][3]int) [3][3]int {
	for range r.IntN(4) {
		var rot [3][3]int
		for i := range 3 {
			for j := range 3 {
				rot[j][2-i] = sq[i][j]
			}
		}
		sq = rot
	}
	if chance(r, 2) {
		for i := range 3 {
			sq[i][0], sq[i][2] = sq[i][2], sq[i][0]
		}
	}
	return sq
}

func genMagicSquares(r Rand, level catalog.Level) RawProblem {
	sq := transformSquare(r, loShu)
	shift := byLevel(level, 0, randInt(r, 1, 5), randInt(r, 5, 20), randInt(r, 10, 50))
	scale := byLevel(level, 1, 1, 1, randInt(r, 2, 3))
	for i := range 3 {
		for j := range 3 {
			sq[i][j] = sq[i][j]*scale + shift
		}
	}
	magic := 15*scale + 3*shift
	hi, hj := r.IntN(3), r.IntN(3)
	ans := sq[hi][hj]
	rows := make([]string, 3)
	for i := range 3 {
		cells := make([]string, 3)
		for j := range 3 {
			cells[j] = itoa(sq[i][j])
			if i == hi && j == hj {
				cells[j] = "?"
			}
		}
		rows[i] = strings.Join(cells, " ")
	}
	return numeric(r, fmt.Sprintf("In this magic square every row, column and diagonal adds to %d. Rows: %s. What is the missing number?", magic, strings.Join(rows, " / ")), float64(ans), 0,
		fmt.Sprintf("The other two numbers in its row add to %d, so the missing number is %d - %d = %d.", magic-ans, magic, magic-ans, ans))
}
