package gameid

import (
	"bytes"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormat(t *testing.T) {
	id := New()
	require.Len(t, id, 26)
	for _, ch := range id {
		assert.True(t, strings.ContainsRune(alphabet, ch), "unexpected character %q in %s", ch, id)
	}
}

func TestNewUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := New()
		require.False(t, seen[id], "duplicate identifier %s", id)
		seen[id] = true
	}
}

func TestAtDeterministic(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	entropy := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	a := At(now, bytes.NewReader(entropy))
	b := At(now, bytes.NewReader(entropy))
	assert.Equal(t, a, b)
}

func TestIdentifiersSortChronologically(t *testing.T) {
	entropy := func() *bytes.Reader {
		return bytes.NewReader([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff})
	}

	base := time.UnixMilli(1700000000000)
	ids := []string{
		At(base.Add(2*time.Hour), entropy()),
		At(base, entropy()),
		At(base.Add(time.Minute), entropy()),
	}

	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	assert.Equal(t, []string{ids[1], ids[2], ids[0]}, sorted)
}
