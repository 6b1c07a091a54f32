package words_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selb/utils/words"
)

func TestReconstruct(t *testing.T) {
	tests := []struct {
		name    string
		letters map[rune][]int
		want    string
	}{
		{"empty", map[rune][]int{}, ""},
		{"nil", nil, ""},
		{"bana", map[rune][]int{'a': {1, 3}, 'b': {0}, 'n': {2}}, "bana"},
		{"unicode", map[rune][]int{'ж': {0, 2}, 'у': {1}}, "жуж"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := words.Reconstruct(tt.letters)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReconstruct_Errors(t *testing.T) {
	_, err := words.Reconstruct(map[rune][]int{'a': {0}, 'b': {2}})
	assert.ErrorIs(t, err, words.ErrGap)

	_, err = words.Reconstruct(map[rune][]int{'a': {-1}})
	assert.ErrorIs(t, err, words.ErrGap)

	_, err = words.Reconstruct(map[rune][]int{'a': {0, 0}})
	assert.ErrorIs(t, err, words.ErrPositionTaken)
}

func TestPositionsRoundTrip(t *testing.T) {
	for _, w := range []string{"", "mississippi", "привет"} {
		got, err := words.Reconstruct(words.Positions(w))
		require.NoError(t, err)
		assert.Equal(t, w, got)
	}
}

func TestLetters(t *testing.T) {
	assert.Equal(t, "misp", words.Letters(words.Positions("mississippi")))
	assert.Equal(t, "", words.Letters(map[rune][]int{'x': nil}))
}
