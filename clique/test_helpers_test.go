package clique_test

import (
	"sort"
	"strconv"
	"strings"
)

// sortedCopy returns the clique's vertices ascending, leaving the
// original emission order untouched.
func sortedCopy(c []int) []int {
	out := append([]int(nil), c...)
	sort.Ints(out)

	return out
}

// fingerprint canonicalises a clique for set comparisons.
func fingerprint(c []int) string {
	s := sortedCopy(c)
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}
