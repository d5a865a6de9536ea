package valueutil

import (
	"cmp"
	"slices"
	"strconv"
)

// CompareKeys orders table keys numerically. Keys that are not plain
// non-negative integers sort after every numeric key, lexicographically.
func CompareKeys(a, b string) int {
	na, aok := numericKey(a)
	nb, bok := numericKey(b)
	switch {
	case aok && bok:
		if c := cmp.Compare(na, nb); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	case aok:
		return -1
	case bok:
		return 1
	default:
		return cmp.Compare(a, b)
	}
}

// SortedKeys returns a numerically ordered copy of keys.
func SortedKeys(keys []string) []string {
	out := slices.Clone(keys)
	slices.SortStableFunc(out, CompareKeys)
	return out
}

func numericKey(s string) (uint64, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
