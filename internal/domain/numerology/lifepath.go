package numerology

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf16"
)

// defaultEnergyLevel is returned for an empty name.
const defaultEnergyLevel = 7

// IsMasterNumber reports whether n stops digit reduction early.
func IsMasterNumber(n int) bool {
	return n == 11 || n == 22 || n == 33
}

// LifePathNumber reduces the month, day and year digits of birthDate.
func LifePathNumber(birthDate time.Time) int {
	year, month, day := birthDate.Date()
	digits := strconv.Itoa(int(month)) + strconv.Itoa(day) + strconv.Itoa(year)
	return Reduce(digitSum(digits))
}

// Reduce repeatedly sums the decimal digits of n until it is a single digit or a master number.
func Reduce(n int) int {
	if n < 0 {
		n = -n
	}
	for n > 9 && !IsMasterNumber(n) {
		n = digitSum(strconv.Itoa(n))
	}
	return n
}

func digitSum(s string) int {
	sum := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sum += int(r - '0')
		}
	}
	return sum
}

// EnergyLevel hashes the lowercased name into 1..10.
func EnergyLevel(name string) int {
	if name == "" {
		return defaultEnergyLevel
	}
	sum := 0
	for _, unit := range utf16.Encode([]rune(strings.ToLower(name))) {
		sum += int(unit)
	}
	return sum%10 + 1
}
