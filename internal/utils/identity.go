package utils

import (
	"regexp"
	"strings"
	"time"
)

var (
	phonePattern  = regexp.MustCompile(`^1[3-9]\d{9}$`)
	idCardPattern = regexp.MustCompile(`^\d{17}[\dXx]$`)
)

// checksum tables for the 18-digit national identity number (GB 11643):
// each of the first 17 digits is weighted, and the weighted sum modulo 11
// selects the expected check character.
var (
	idCardWeights = [17]int{7, 9, 10, 5, 8, 4, 2, 1, 6, 3, 7, 9, 10, 5, 8, 4, 2}
	idCardParity  = [11]byte{'1', '0', 'X', '9', '8', '7', '6', '5', '4', '3', '2'}
)

// IsValidPhone reports whether phone is an 11-digit mobile number: leading 1,
// second digit 3-9. No normalization is performed on the input.
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// IsValidIDCard validates an 18-character national identity number: shape,
// embedded birth date and checksum must all pass.
func IsValidIDCard(id string) bool {
	if !idCardPattern.MatchString(id) {
		return false
	}
	if !validBirthDate(id[6:14]) {
		return false
	}

	upper := strings.ToUpper(id)
	sum := 0
	for i := 0; i < 17; i++ {
		sum += int(upper[i]-'0') * idCardWeights[i]
	}
	return idCardParity[sum%11] == upper[17]
}

// validBirthDate checks that an 8-digit YYYYMMDD string denotes a real
// calendar date. time.Date normalizes out-of-range components (month 13,
// Feb 30), so the date is real iff it round-trips unchanged.
func validBirthDate(birth string) bool {
	year := atoi(birth[0:4])
	month := atoi(birth[4:6])
	day := atoi(birth[6:8])

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return date.Year() == year && date.Month() == time.Month(month) && date.Day() == day
}

// atoi converts a digit-only string; the shape check has already guaranteed
// every byte is a digit.
func atoi(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
