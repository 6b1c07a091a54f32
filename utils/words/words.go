// Package words rebuilds words from letter position maps.
package words

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrPositionTaken = errors.New("position used by more than one letter")
	ErrGap           = errors.New("positions are not contiguous")
)

// Reconstruct builds a word from a mapping of letters to the 0-based
// positions they occupy, e.g. {'a': {1, 3}, 'b': {0}, 'n': {2}} gives "bana".
// Every position from 0 to the highest one must be used exactly once.
func Reconstruct(letters map[rune][]int) (string, error) {
	total := 0
	for _, pos := range letters {
		total += len(pos)
	}

	word := make([]rune, total)
	used := make([]bool, total)
	for r, positions := range letters {
		for _, p := range positions {
			if p < 0 || p >= total {
				return "", fmt.Errorf("letter %q at %d: %w", r, p, ErrGap)
			}
			if used[p] {
				return "", fmt.Errorf("letter %q at %d: %w", r, p, ErrPositionTaken)
			}
			word[p], used[p] = r, true
		}
	}
	return string(word), nil
}

// Positions is the inverse of Reconstruct.
func Positions(word string) map[rune][]int {
	out := make(map[rune][]int)
	for i, r := range []rune(word) {
		out[r] = append(out[r], i)
	}
	return out
}

// Letters returns distinct letters of the mapping ordered by their first
// position.
func Letters(letters map[rune][]int) string {
	type first struct {
		r   rune
		pos int
	}
	firsts := make([]first, 0, len(letters))
	for r, positions := range letters {
		if len(positions) == 0 {
			continue
		}
		firsts = append(firsts, first{r: r, pos: slices.Min(positions)})
	}
	slices.SortFunc(firsts, func(a, b first) int { return a.pos - b.pos })

	var sb strings.Builder
	for _, f := range firsts {
		sb.WriteRune(f.r)
	}
	return sb.String()
}
