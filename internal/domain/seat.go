package domain

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// SplitSeatCode breaks a seat code like "14C" into its row number and letter.
func SplitSeatCode(code string) (row int, letter string, err error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	i := 0
	for i < len(code) && unicode.IsDigit(rune(code[i])) {
		i++
	}
	if i == 0 || i == len(code) {
		return 0, "", fmt.Errorf("%w: malformed seat code %q", ErrValidation, code)
	}
	row, err = strconv.Atoi(code[:i])
	if err != nil || row <= 0 {
		return 0, "", fmt.Errorf("%w: malformed seat code %q", ErrValidation, code)
	}
	letter = code[i:]
	for _, r := range letter {
		if !unicode.IsUpper(r) {
			return 0, "", fmt.Errorf("%w: malformed seat code %q", ErrValidation, code)
		}
	}
	return row, letter, nil
}

// CompareSeatCodes orders two seat codes by row number, then letter.
// Malformed codes sort after well-formed ones so a bad row is still visible
// at the end of a seat map instead of breaking the sort.
func CompareSeatCodes(a, b string) int {
	rowA, letterA, errA := SplitSeatCode(a)
	rowB, letterB, errB := SplitSeatCode(b)
	switch {
	case errA != nil && errB != nil:
		return strings.Compare(a, b)
	case errA != nil:
		return 1
	case errB != nil:
		return -1
	}
	if rowA != rowB {
		if rowA < rowB {
			return -1
		}
		return 1
	}
	return strings.Compare(letterA, letterB)
}
