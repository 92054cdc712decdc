package problemgen

import (
	"fmt"

	"github.com/abhisek/mathforge/internal/catalog"
)

func genAreaPerimeter(r Rand, level catalog.Level) RawProblem {
	s := byLevel(level, span{1, 10}, span{3, 15}, span{5, 25}, span{8, 40})
	l, w := s.draw(r), s.draw(r)
	switch {
	case level == catalog.LevelExpert && chance(r, 2):
		return numeric(r, fmt.Sprintf("A rectangle has an area of %d square units and a width of %d units. What is its length?", l*w, w), float64(l), 0,
			fmt.Sprintf("Area = length × width, so length = %d ÷ %d = %d.", l*w, w, l))
	case chance(r, 2):
		return numeric(r, fmt.Sprintf("What is the area of a rectangle %d units long and %d units wide?", l, w), float64(l*w), 0,
			fmt.Sprintf("Area = length × width = %d × %d = %d square units.", l, w, l*w))
	default:
		p := 2 * (l + w)
		return numeric(r, fmt.Sprintf("What is the perimeter of a rectangle %d units long and %d units wide?", l, w), float64(p), 0,
			fmt.Sprintf("Perimeter = 2 × (%d + %d) = %d units.", l, w, p))
	}
}

func genAreaTriangle(r Rand, level catalog.Level) RawProblem {
	s := byLevel(level, span{2, 10}, span{4, 16}, span{6, 30}, span{10, 50})
	b, h := s.draw(r), s.draw(r)
	if b*h%2 != 0 {
		b++
	}
	area := b * h / 2
	return numeric(r, fmt.Sprintf("A triangle has a base of %d cm and a height of %d cm. What is its area in square cm?", b, h), float64(area), 0,
		fmt.Sprintf("Area = base × height ÷ 2 = %d × %d ÷ 2 = %d square cm.", b, h, area))
}

const piApprox = 3.14

func genCircleArea(r Rand, level catalog.Level) RawProblem {
	rad := byLevel(level, span{1, 5}, span{2, 10}, span{5, 15}, span{4, 20}).draw(r)
	area := round(piApprox*float64(rad*rad), 2)
	if level == catalog.LevelExpert && chance(r, 2) {
		return numeric(r, fmt.Sprintf("A circle has a diameter of %d m. Using π ≈ 3.14, what is its area in square m?", 2*rad), area, 2,
			fmt.Sprintf("The radius is %d ÷ 2 = %d, so A = 3.14 × %d × %d = %s.", 2*rad, rad, rad, rad, num(area)))
	}
	return numeric(r, fmt.Sprintf("A circle has a radius of %d m. Using π ≈ 3.14, what is its area in square m?", rad), area, 2,
		fmt.Sprintf("A = π × r × r = 3.14 × %d × %d = %s.", rad, rad, num(area)))
}

func genCircumference(r Rand, level catalog.Level) RawProblem {
	rad := byLevel(level, span{1, 5}, span{2, 10}, span{5, 15}, span{4, 25}).draw(r)
	c := round(2*piApprox*float64(rad), 2)
	if level.Index() >= 2 && chance(r, 2) {
		return numeric(r, fmt.Sprintf("A circle has a diameter of %d cm. Using π ≈ 3.14, what is its circumference in cm?", 2*rad), c, 2,
			fmt.Sprintf("C = π × d = 3.14 × %d = %s.", 2*rad, num(c)))
	}
	return numeric(r, fmt.Sprintf("A circle has a radius of %d cm. Using π ≈ 3.14, what is its circumference in cm?", rad), c, 2,
		fmt.Sprintf("C = 2 × π × r = 2 × 3.14 × %d = %s.", rad, num(c)))
}

func genVolume(r Rand, level catalog.Level) RawProblem {
	s := byLevel(level, span{1, 5}, span{2, 8}, span{3, 12}, span{5, 20})
	l, w, h := s.draw(r), s.draw(r), s.draw(r)
	v := l * w * h
	return numeric(r, fmt.Sprintf("A box is %d cm long, %d cm wide and %d cm tall. What is its volume in cubic cm?", l, w, h), float64(v), 0,
		fmt.Sprintf("V = length × width × height = %d × %d × %d = %d cubic cm.", l, w, h, v))
}

func genSurfaceArea(r Rand, level catalog.Level) RawProblem {
	if level.Index() == 0 {
		s := randInt(r, 1, 6)
		return numeric(r, fmt.Sprintf("What is the surface area of a cube with %d cm edges, in square cm?", s), float64(6*s*s), 0,
			fmt.Sprintf("A cube has 6 faces of %d × %d, so 6 × %d = %d square cm.", s, s, s*s, 6*s*s))
	}
	sp := byLevel(level, span{1, 6}, span{2, 8}, span{3, 12}, span{5, 15})
	l, w, h := sp.draw(r), sp.draw(r), sp.draw(r)
	sa := 2 * (l*w + l*h + w*h)
	return numeric(r, fmt.Sprintf("What is the surface area of a box %d cm by %d cm by %d cm, in square cm?", l, w, h), float64(sa), 0,
		fmt.Sprintf("SA = 2 × (%d + %d + %d) = %d square cm.", l*w, l*h, w*h, sa))
}

func genAngles(r Rand, level catalog.Level) RawProblem {
	switch level.Index() {
	case 0:
		a := randInt(r, 10, 80)
		return numeric(r, fmt.Sprintf("Angle A is %d°. What is the measure of its complement?", a), float64(90-a), 0,
			fmt.Sprintf("Complementary angles add to 90°: 90 - %d = %d.", a, 90-a))
	case 1:
		a := randInt(r, 10, 170)
		return numeric(r, fmt.Sprintf("Angle A is %d°. What is the measure of its supplement?", a), float64(180-a), 0,
			fmt.Sprintf("Supplementary angles add to 180°: 180 - %d = %d.", a, 180-a))
	case 2:
		a := randInt(r, 20, 160)
		return numeric(r, fmt.Sprintf("Two lines cross. One angle is %d°. What is the angle next to it?", a), float64(180-a), 0,
			fmt.Sprintf("Angles along a straight line add to 180°: 180 - %d = %d.", a, 180-a))
	default:
		a, b := randInt(r, 40, 140), randInt(r, 40, 140)
		c := 360 - a - b - randInt(r, 20, 60)
		d := 360 - a - b - c
		return numeric(r, fmt.Sprintf("Four angles meet at a point: %d°, %d°, %d° and x°. What is x?", a, b, c), float64(d), 0,
			fmt.Sprintf("Angles around a point add to 360°: 360 - %d - %d - %d = %d.", a, b, c, d))
	}
}

func genTriangleAngles(r Rand, level catalog.Level) RawProblem {
	if level == catalog.LevelExpert && chance(r, 2) {
		apex := 2*randInt(r, 10, 60) + 20
		base := (180 - apex) / 2
		return numeric(r, fmt.Sprintf("An isosceles triangle has a top angle of %d°. What is each base angle?", apex), float64(base), 0,
			fmt.Sprintf("The base angles are equal: (180 - %d) ÷ 2 = %d.", apex, base))
	}
	a := byLevel(level, span{30, 90}, span{20, 100}, span{10, 120}, span{15, 130}).draw(r)
	b := randInt(r, 10, 170-a)
	c := 180 - a - b
	return numeric(r, fmt.Sprintf("A triangle has angles of %d° and %d°. What is the third angle?", a, b), float64(c), 0,
		fmt.Sprintf("The angles of a triangle add to 180°: 180 - %d - %d = %d.", a, b, c))
}

var geometryBank = [][]item{
	{
		{"How many faces does a cube have?", "6", []string{"4", "8", "12"}, "A cube has 6 square faces."},
		{"What do we call an angle of exactly 90°?", "right angle", []string{"acute angle", "obtuse angle", "straight angle"}, "A 90° angle is a right angle."},
		{"How many edges does a cube have?", "12", []string{"6", "8", "10"}, "A cube has 4 edges on top, 4 on the bottom and 4 vertical edges."},
	},
	{
		{"What is an angle smaller than 90° called?", "acute angle", []string{"right angle", "obtuse angle", "reflex angle"}, "Angles less than 90° are acute."},
		{"A triangle with all sides equal is called what?", "equilateral", []string{"isosceles", "scalene", "right"}, "Equilateral means equal sides."},
		{"How many vertices does a triangular prism have?", "6", []string{"5", "8", "9"}, "It has 3 vertices on each triangular end: 3 + 3 = 6."},
	},
	{
		{"What is the sum of the interior angles of a quadrilateral?", "360", []string{"180", "270", "540"}, "A quadrilateral splits into 2 triangles: 2 × 180 = 360."},
		{"A triangle with no equal sides is called what?", "scalene", []string{"isosceles", "equilateral", "acute"}, "Scalene triangles have three different side lengths."},
		{"How many lines of symmetry does a square have?", "4", []string{"2", "1", "8"}, "Two through the midpoints and two along the diagonals."},
	},
	{
		{"What is the sum of the interior angles of a pentagon?", "540", []string{"360", "720", "450"}, "(5 - 2) × 180 = 540."},
		{"What is each interior angle of a regular hexagon?", "120", []string{"108", "135", "90"}, "(6 - 2) × 180 ÷ 6 = 120."},
		{"How many edges does a square pyramid have?", "8", []string{"5", "6", "12"}, "4 edges around the base and 4 rising to the top."},
	},
}

func genGeometry(r Rand, level catalog.Level) RawProblem {
	return fromBank(r, level, geometryBank...)
}

var pythagoreanTriples = [][3]int{{3, 4, 5}, {5, 12, 13}, {8, 15, 17}, {7, 24, 25}}

func genPythagorean(r Rand, level catalog.Level) RawProblem {
	t := pick(r, byLevel(level, pythagoreanTriples[:1], pythagoreanTriples[:2], pythagoreanTriples[:3], pythagoreanTriples))
	k := randInt(r, 1, byLevel(level, 2, 3, 4, 5))
	a, b, c := t[0]*k, t[1]*k, t[2]*k
	if level.Index() >= 2 && chance(r, 2) {
		return numeric(r, fmt.Sprintf("A right triangle has a hypotenuse of %d and one leg of %d. How long is the other leg?", c, a), float64(b), 0,
			fmt.Sprintf("b² = %d² - %d² = %d - %d = %d, so b = %d.", c, a, c*c, a*a, b*b, b))
	}
	return numeric(r, fmt.Sprintf("A right triangle has legs of %d and %d. How long is the hypotenuse?", a, b), float64(c), 0,
		fmt.Sprintf("c² = %d² + %d² = %d + %d = %d, so c = %d.", a, b, a*a, b*b, c*c, c))
}

var quadrants = []string{"Quadrant I", "Quadrant II", "Quadrant III", "Quadrant IV"}

func genCoordinates(r Rand, level catalog.Level) RawProblem {
	switch level.Index() {
	case 0:
		x, y := randInt(r, 0, 10), randInt(r, 0, 10)
		if chance(r, 2) {
			return numeric(r, fmt.Sprintf("What is the x-coordinate of the point (%d, %d)?", x, y), float64(x), 0,
				fmt.Sprintf("The first number in (%d, %d) is the x-coordinate: %d.", x, y, x))
		}
		return numeric(r, fmt.Sprintf("What is the y-coordinate of the point (%d, %d)?", x, y), float64(y), 0,
			fmt.Sprintf("The second number in (%d, %d) is the y-coordinate: %d.", x, y, y))
	case 1:
		y := randInt(r, 0, 10)
		x1, x2 := randInt(r, 0, 10), randInt(r, 11, 20)
		return numeric(r, fmt.Sprintf("How far apart are the points (%d, %d) and (%d, %d)?", x1, y, x2, y), float64(x2-x1), 0,
			fmt.Sprintf("They share a y-coordinate, so the distance is %d - %d = %d.", x2, x1, x2-x1))
	case 2:
		x, y := randNonZero(r, 10), randNonZero(r, 10)
		q := 0
		switch {
		case x < 0 && y > 0:
			q = 1
		case x < 0 && y < 0:
			q = 2
		case x > 0 && y < 0:
			q = 3
		}
		return choice(r, fmt.Sprintf("In which quadrant is the point (%d, %d)?", x, y), quadrants[q], AnswerTypeText, quadrants,
			fmt.Sprintf("x is %s and y is %s, which is %s.", signWord(x), signWord(y), quadrants[q]))
	default:
		x1, y1 := randInt(r, -10, 10), randInt(r, -10, 10)
		dx, dy := 2*randInt(r, 1, 8), 2*randInt(r, 1, 8)
		mx := x1 + dx/2
		return numeric(r, fmt.Sprintf("What is the x-coordinate of the midpoint of (%d, %d) and (%d, %d)?", x1, y1, x1+dx, y1+dy), float64(mx), 0,
			fmt.Sprintf("Average the x-coordinates: (%d + %d) ÷ 2 = %d.", x1, x1+dx, mx))
	}
}

func signWord(n int) string {
	if n < 0 {
		return "negative"
	}
	return "positive"
}

type conversion struct {
	big, small string
	factor     int
}

var (
	customaryUnits = []conversion{
		{"feet", "inches", 12}, {"yards", "feet", 3}, {"pounds", "ounces", 16},
		{"gallons", "quarts", 4}, {"hours", "minutes", 60},
	}
	metricUnits = []conversion{
		{"meters", "centimeters", 100}, {"kilometers", "meters", 1000},
		{"kilograms", "grams", 1000}, {"liters", "milliliters", 1000},
	}
)

func convert(r Rand, level catalog.Level, units []conversion) RawProblem {
	c := pick(r, units)
	n := byLevel(level, span{1, 5}, span{2, 10}, span{5, 20}, span{10, 50}).draw(r)
	if level.Index() >= 1 && chance(r, 2) {
		return numeric(r, fmt.Sprintf("How many %s are in %d %s?", c.big, n*c.factor, c.small), float64(n), 0,
			fmt.Sprintf("There are %d %s in one of the %s, so %d ÷ %d = %d.", c.factor, c.small, c.big, n*c.factor, c.factor, n))
	}
	return numeric(r, fmt.Sprintf("How many %s are in %d %s?", c.small, n, c.big), float64(n*c.factor), 0,
		fmt.Sprintf("There are %d %s in one of the %s, so %d × %d = %d.", c.factor, c.small, c.big, n, c.factor, n*c.factor))
}

func genUnitConversion(r Rand, level catalog.Level) RawProblem {
	return convert(r, level, customaryUnits)
}

func genMetricConversion(r Rand, level catalog.Level) RawProblem {
	if level == catalog.LevelExpert && chance(r, 2) {
		c := pick(r, metricUnits[1:])
		v := randDecimal(r, 1.1, 9.9, 1)
		ans := round(v*float64(c.factor), 0)
		return numeric(r, fmt.Sprintf("How many %s are in %s %s?", c.small, num(v), c.big), ans, 0,
			fmt.Sprintf("Multiply by %d: %s × %d = %s.", c.factor, num(v), c.factor, num(ans)))
	}
	return convert(r, level, metricUnits)
}

func genTimeElapsed(r Rand, level catalog.Level) RawProblem {
	step := byLevel(level, 60, 30, 5, 5)
	start := 60*randInt(r, 7, 11) + step*r.IntN(60/step)
	dur := step * byLevel(level, span{1, 4}, span{1, 6}, span{5, 30}, span{12, 60}).draw(r)
	end := start + dur
	if level.Index() >= 2 && chance(r, 2) {
		return numeric(r, fmt.Sprintf("A movie starts at %s and ends at %s. How many minutes long is it?", clock(start), clock(end)), float64(dur), 0,
			fmt.Sprintf("From %s to %s is %d hours and %d minutes, which is %d minutes.", clock(start), clock(end), dur/60, dur%60, dur))
	}
	ans := clock(end)
	pool := []string{clock(end + 60), clock(end - 60), clock(end + 30), clock(end - 15), clock(start)}
	return choice(r, fmt.Sprintf("School practice starts at %s and lasts %d minutes. What time does it end?", clock(start), dur), ans, AnswerTypeText, pool,
		fmt.Sprintf("Add %d hours and %d minutes to %s to get %s.", dur/60, dur%60, clock(start), ans))
}

func genMoneyChange(r Rand, level catalog.Level) RawProblem {
	var cost, paid int
	switch level.Index() {
	case 0:
		cost = 100 * randInt(r, 1, 9)
		paid = 1000
	case 1:
		cost = 25 * randInt(r, 4, 39)
		paid = 1000
	case 2:
		cost = randInt(r, 101, 1999)
		paid = 2000
	default:
		cost = randInt(r, 101, 2499) + randInt(r, 101, 2499)
		paid = 5000 + 1000*randInt(r, 0, 5)
	}
	change := paid - cost
	item := "an item costing " + cents(cost)
	if level == catalog.LevelExpert {
		item = "two items totaling " + cents(cost)
	}
	return numeric(r, fmt.Sprintf("You pay %s for %s. How much change do you get, in dollars?", cents(paid), item), float64(change)/100, 2,
		fmt.Sprintf("%s - %s = %s.", cents(paid), cents(cost), cents(change)))
}

var names = []string{"Maya", "Leo", "Ava", "Sam", "Zoe", "Omar", "Priya", "Ben"}

var countables = []string{"apples", "stickers", "marbles", "books", "shells", "cards"}

func genWordProblems(r Rand, level catalog.Level) RawProblem {
	s := byLevel(level, span{1, 10}, span{5, 50}, span{20, 200}, span{100, 1000})
	who, thing := pick(r, names), pick(r, countables)
	a, b := s.draw(r), s.draw(r)
	if chance(r, 2) {
		return numeric(r, fmt.Sprintf("%s has %d %s and gets %d more. How many %s does %s have now?", who, a, thing, b, thing, who), float64(a+b), 0,
			fmt.Sprintf("Getting more means adding: %d + %d = %d.", a, b, a+b))
	}
	if b > a {
		a, b = b, a
	}
	return numeric(r, fmt.Sprintf("%s has %d %s and gives away %d. How many %s are left?", who, a, thing, b, thing), float64(a-b), 0,
		fmt.Sprintf("Giving away means subtracting: %d - %d = %d.", a, b, a-b))
}

func genMultiplicationWordProblems(r Rand, level catalog.Level) RawProblem {
	f := byLevel(level,
		factorRange{span{2, 5}, span{2, 5}},
		factorRange{span{3, 10}, span{3, 10}},
		factorRange{span{6, 12}, span{10, 25}},
		factorRange{span{12, 30}, span{12, 50}},
	)
	boxes, each := f.a.draw(r), f.b.draw(r)
	thing := pick(r, countables)
	return numeric(r, fmt.Sprintf("There are %d boxes with %d %s in each box. How many %s are there in all?", boxes, each, thing, thing), float64(boxes*each), 0,
		fmt.Sprintf("%d groups of %d: %d × %d = %d.", boxes, each, boxes, each, boxes*each))
}

func genDivisionWordProblems(r Rand, level catalog.Level) RawProblem {
	d, q := divisionOperands(r, level)
	if d < 2 {
		d = 2
	}
	thing := pick(r, countables)
	if level == catalog.LevelExpert && chance(r, 2) {
		extra := randInt(r, 1, d-1)
		n := d*q + extra
		return numeric(r, fmt.Sprintf("%d %s are packed into bags of %d. How many bags can be filled completely?", n, thing, d), float64(q), 0,
			fmt.Sprintf("%d ÷ %d = %d remainder %d, so %d bags are full.", n, d, q, extra, q))
	}
	n := d * q
	return numeric(r, fmt.Sprintf("%d %s are shared equally among %d friends. How many does each friend get?", n, thing, d), float64(q), 0,
		fmt.Sprintf("Sharing equally means dividing: %d ÷ %d = %d.", n, d, q))
}

var tableFruits = []string{"Apples", "Bananas", "Cherries", "Grapes", "Pears"}

func genReadingTables(r Rand, level catalog.Level) RawProblem {
	s := byLevel(level, span{1, 10}, span{5, 30}, span{10, 99}, span{50, 500})
	fruits := shuffled(r, tableFruits)[:4]
	counts := distinctInts(r, s, 4)
	var rows []string
	for i, f := range fruits {
		rows = append(rows, fmt.Sprintf("%s: %d", f, counts[i]))
	}
	table := andJoin(rows)
	if level.Index() >= 1 && chance(r, 2) {
		total := sumInts(counts)
		return numeric(r, fmt.Sprintf("A fruit stand sold %s. How many fruits were sold in all?", table), float64(total), 0,
			fmt.Sprintf("%d + %d + %d + %d = %d.", counts[0], counts[1], counts[2], counts[3], total))
	}
	i, j := 0, 1
	if counts[i] < counts[j] {
		i, j = j, i
	}
	diff := counts[i] - counts[j]
	return numeric(r, fmt.Sprintf("A fruit stand sold %s. How many more %s than %s were sold?", table, fruits[i], fruits[j]), float64(diff), 0,
		fmt.Sprintf("%d - %d = %d.", counts[i], counts[j], diff))
}

func genSpeedDistanceTime(r Rand, level catalog.Level) RawProblem {
	speed := byLevel(level, span{2, 10}, span{10, 60}, span{20, 80}, span{30, 120}).draw(r)
	t := byLevel(level, span{1, 5}, span{2, 6}, span{2, 8}, span{3, 12}).draw(r)
	d := speed * t
	switch r.IntN(byLevel(level, 1, 2, 3, 3)) {
	case 0:
		return numeric(r, fmt.Sprintf("A cyclist rides at %d km per hour for %d hours. How far does she go, in km?", speed, t), float64(d), 0,
			fmt.Sprintf("Distance = speed × time = %d × %d = %d km.", speed, t, d))
	case 1:
		return numeric(r, fmt.Sprintf("A train travels %d km in %d hours. What is its speed in km per hour?", d, t), float64(speed), 0,
			fmt.Sprintf("Speed = distance ÷ time = %d ÷ %d = %d km per hour.", d, t, speed))
	default:
		return numeric(r, fmt.Sprintf("A car travels %d km at %d km per hour. How many hours does the trip take?", d, speed), float64(t), 0,
			fmt.Sprintf("Time = distance ÷ speed = %d ÷ %d = %d hours.", d, speed, t))
	}
}
