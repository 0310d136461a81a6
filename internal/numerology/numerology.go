// Package numerology implements digit reduction and the numbers derived from
// dates and names.
package numerology

import (
	"strings"
	"time"
	"unicode"
)

// KarmicDebtNumbers are the intermediate sums that mark a debt.
var KarmicDebtNumbers = []int{13, 14, 16, 19}

// IsMaster reports whether n is exempt from reduction.
func IsMaster(n int) bool {
	return n == 11 || n == 22 || n == 33
}

// DigitSum adds the decimal digits of n. Negative input is treated as its
// absolute value.
func DigitSum(n int) int {
	if n < 0 {
		n = -n
	}
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}

// ReduceToSingleDigit sums digits repeatedly until the value is 1-9 or a
// master number. 29 reduces to 11 and stops there; 24 reduces to 6.
func ReduceToSingleDigit(n int) int {
	if n < 0 {
		n = -n
	}
	for n > 9 && !IsMaster(n) {
		n = DigitSum(n)
	}
	return n
}

// ReductionChain returns n followed by every intermediate value produced by
// ReduceToSingleDigit, ending with the reduced value.
func ReductionChain(n int) []int {
	if n < 0 {
		n = -n
	}
	chain := []int{n}
	for n > 9 && !IsMaster(n) {
		n = DigitSum(n)
		chain = append(chain, n)
	}
	return chain
}

// DateDigitSum adds every digit of the date written as YYYYMMDD.
func DateDigitSum(t time.Time) int {
	return DigitSum(t.Year()) + DigitSum(int(t.Month())) + DigitSum(t.Day())
}

// LifePath is the reduced digit sum of the full birth date.
func LifePath(birth time.Time) int {
	return ReduceToSingleDigit(DateDigitSum(birth))
}

// DayNumber is the reduced digit sum of a calendar date.
func DayNumber(date time.Time) int {
	return ReduceToSingleDigit(DateDigitSum(date))
}

// BirthDayNumber reduces the day of month only.
func BirthDayNumber(birth time.Time) int {
	return ReduceToSingleDigit(birth.Day())
}

// letterValue maps a-z onto 1-9 in the Pythagorean layout.
func letterValue(r rune) int {
	r = unicode.ToLower(r)
	if r < 'a' || r > 'z' {
		return 0
	}
	return int(r-'a')%9 + 1
}

// NameTotal is the unreduced letter sum of a name. Non-latin letters count
// as zero.
func NameTotal(name string) int {
	total := 0
	for _, r := range strings.TrimSpace(name) {
		total += letterValue(r)
	}
	return total
}

// NameNumber is the reduced letter sum of a name.
func NameNumber(name string) int {
	return ReduceToSingleDigit(NameTotal(name))
}

// KarmicDebts scans the reduction chains of the birth day, the full birth
// date and the name and returns each debt number found, in ascending order
// and without duplicates.
func KarmicDebts(birth time.Time, name string) []int {
	found := make(map[int]bool)
	chains := [][]int{
		ReductionChain(birth.Day()),
		ReductionChain(DateDigitSum(birth)),
		ReductionChain(NameTotal(name)),
	}
	for _, chain := range chains {
		for _, value := range chain {
			for _, debt := range KarmicDebtNumbers {
				if value == debt {
					found[debt] = true
				}
			}
		}
	}

	debts := make([]int, 0, len(found))
	for _, debt := range KarmicDebtNumbers {
		if found[debt] {
			debts = append(debts, debt)
		}
	}
	return debts
}
