// Package selection parses human-entered range/list expressions such as
// "1,3,5", "1-5", "1-3,7,9-10", or "all" into 1-based index sequences.
package selection

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalid reports unparseable or out-of-bounds selection input. Callers
// treat it as recoverable and re-prompt. The wrapping error carries the
// human-readable reason.
var ErrInvalid = errors.New("invalid selection")

// Parse interprets input as a comma-separated list of 1-based indices and
// inclusive ranges against [1, max]. The literal "all" (case-insensitive,
// as the entire input) expands to 1..max. Duplicates are removed, keeping
// the position of first occurrence. Whitespace around tokens and around
// range bounds is tolerated.
func Parse(input string, max int) ([]int, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return nil, fmt.Errorf("%w: empty selection", ErrInvalid)
	}

	if input == "all" {
		all := make([]int, max)
		for i := range all {
			all[i] = i + 1
		}
		return all, nil
	}

	var indices []int
	for _, token := range strings.Split(input, ",") {
		token = strings.TrimSpace(token)

		if lo, hi, ok := strings.Cut(token, "-"); ok {
			start, err1 := strconv.Atoi(strings.TrimSpace(lo))
			end, err2 := strconv.Atoi(strings.TrimSpace(hi))
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("%w: %q is not a number or range", ErrInvalid, token)
			}
			if start < 1 || end > max || start > end {
				return nil, fmt.Errorf("%w: range %q is out of bounds (1-%d)", ErrInvalid, token, max)
			}
			for n := start; n <= end; n++ {
				indices = append(indices, n)
			}
			continue
		}

		n, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number or range", ErrInvalid, token)
		}
		if n < 1 || n > max {
			return nil, fmt.Errorf("%w: %d is out of bounds (1-%d)", ErrInvalid, n, max)
		}
		indices = append(indices, n)
	}

	// Deduplicate, preserving first occurrence.
	seen := make(map[int]bool, len(indices))
	unique := indices[:0]
	for _, n := range indices {
		if seen[n] {
			continue
		}
		seen[n] = true
		unique = append(unique, n)
	}
	return unique, nil
}
