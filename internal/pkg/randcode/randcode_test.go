//go:build unit

package randcode_test

import (
	"strings"
	"testing"

	"salon-booking/internal/pkg/randcode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		code, err := randcode.Generate(10)
		require.NoError(t, err)
		require.Len(t, code, 10)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(randcode.Alphabet, r), "unexpected rune %q", r)
		}
		seen[code] = struct{}{}
	}
	assert.Greater(t, len(seen), 190)
}

func TestGenerateInvalidLength(t *testing.T) {
	_, err := randcode.Generate(0)
	require.ErrorIs(t, err, randcode.ErrInvalidLength)
}
