package problemgen

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// grouped renders n with thousands separators, e.g. 45000 -> "45,000".
func grouped(n int) string {
	return printer.Sprintf("%d", n)
}

func pow10(dp int) float64 {
	return math.Pow(10, float64(dp))
}

// round rounds v to dp decimal places, half away from zero.
func round(v float64, dp int) float64 {
	if dp < 0 {
		dp = 0
	}
	p := pow10(dp)
	out := math.Round(v*p) / p
	if out == 0 {
		return 0 // drop negative zero
	}
	return out
}

// num renders v in canonical form: no trailing zeros, no negative zero.
func num(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// fixed renders v with exactly dp decimals, for question text.
func fixed(v float64, dp int) string {
	return strconv.FormatFloat(round(v, dp), 'f', dp, 64)
}

func itoa(n int) string { return strconv.Itoa(n) }

// signed renders negatives in parentheses, e.g. "(-4)".
func signed(n int) string {
	if n < 0 {
		return fmt.Sprintf("(%d)", n)
	}
	return itoa(n)
}

// cents renders an amount of cents as dollars, e.g. 325 -> "$3.25".
func cents(c int) string {
	return fmt.Sprintf("$%d.%02d", c/100, c%100)
}

// clock renders a 12-hour time from minutes after midnight, e.g. "3:05".
func clock(minutes int) string {
	minutes = ((minutes % (24 * 60)) + 24*60) % (24 * 60)
	h := (minutes / 60) % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d", h, minutes%60)
}

// ordinal renders 1 -> "1st", 2 -> "2nd", 11 -> "11th".
func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return itoa(n) + suffix
}

var (
	ones = []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
		"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen", "eighteen", "nineteen"}
	tens = []string{"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"}
)

// words spells out 0 <= n <= 99999 in English.
func words(n int) string {
	switch {
	case n < 20:
		return ones[n]
	case n < 100:
		if n%10 == 0 {
			return tens[n/10]
		}
		return tens[n/10] + "-" + ones[n%10]
	case n < 1000:
		s := ones[n/100] + " hundred"
		if n%100 != 0 {
			s += " " + words(n%100)
		}
		return s
	default:
		s := words(n/1000) + " thousand"
		if n%1000 != 0 {
			s += " " + words(n%1000)
		}
		return s
	}
}

// joinInts renders a list like "3, 7, 11".
func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = itoa(n)
	}
	return strings.Join(parts, ", ")
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func divisors(n int) []int {
	var out []int
	for d := 1; d <= n; d++ {
		if n%d == 0 {
			out = append(out, d)
		}
	}
	return out
}

// roundTo rounds a non-negative n to the nearest multiple of unit, half up.
func roundTo(n, unit int) int {
	return (n + unit/2) / unit * unit
}

func ipow(base, exp int) int {
	out := 1
	for range exp {
		out *= base
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// andJoin renders "a", "a and b", or "a, b and c".
func andJoin(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
}

// plural returns word or its plural form for n.
func plural(n int, word, words string) string {
	if n == 1 {
		return word
	}
	return words
}
