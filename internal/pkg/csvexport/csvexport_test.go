//go:build unit

package csvexport_test

import (
	"testing"

	"salon-booking/internal/pkg/csvexport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	t.Run("quotes fields containing delimiters", func(t *testing.T) {
		out, err := csvexport.Write(
			[]string{"name", "address"},
			[][]string{{"Dupont, Marie", "12 rue \"des Lilas\"\nParis"}},
		)
		require.NoError(t, err)
		assert.Equal(t, "name,address\n\"Dupont, Marie\",\"12 rue \"\"des Lilas\"\"\nParis\"\n", string(out))
	})

	t.Run("plain fields are not quoted", func(t *testing.T) {
		out, err := csvexport.Write([]string{"a", "b"}, [][]string{{"1", "2"}})
		require.NoError(t, err)
		assert.Equal(t, "a,b\n1,2\n", string(out))
	})

	t.Run("rejects ragged rows", func(t *testing.T) {
		_, err := csvexport.Write([]string{"a", "b"}, [][]string{{"1"}})
		require.Error(t, err)
	})
}

func TestFormatCents(t *testing.T) {
	cases := map[int64]string{
		0:      "0.00",
		5:      "0.05",
		8000:   "80.00",
		123456: "1234.56",
		-2000:  "-20.00",
	}
	for in, want := range cases {
		assert.Equal(t, want, csvexport.FormatCents(in))
	}
}
