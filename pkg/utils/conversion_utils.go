package utils

import "strconv"

// StrToInt64 converts a string to an int64. Used for path and query
// parameters carrying record ids.
func StrToInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// StrToIntDefault converts a string to an int, falling back to def for
// empty or malformed input. Used for page numbers.
func StrToIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
