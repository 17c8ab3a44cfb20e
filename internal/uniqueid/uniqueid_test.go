package uniqueid

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomStrategyUniqueness(t *testing.T) {
	gen := NewRandomStrategy()

	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		id := gen.NewID()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s after %d mints", id, i)
		seen[id] = struct{}{}
	}
}

func TestRandomStrategyURLSafe(t *testing.T) {
	gen := NewRandomStrategy()

	id := gen.NewID()
	assert.NotEmpty(t, id)
	for _, r := range id {
		ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
		assert.True(t, ok, "character %q in %s", r, id)
	}
}

func TestTimestampStrategyFormat(t *testing.T) {
	gen := NewTimestampStrategy()
	gen.now = func() time.Time { return time.UnixMilli(1735689600000) }

	id := gen.NewID()
	parts := strings.SplitN(id, "-", 2)
	require.Len(t, parts, 2)
	assert.Equal(t, "m5d4ruo0", parts[0]) // 1735689600000 in base36
	assert.Len(t, parts[1], 8)
}

func TestTimestampStrategyUniqueness(t *testing.T) {
	gen := NewTimestampStrategy()

	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := gen.NewID()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestShort(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"a1b2c3d4-e5f6-7890-abcd-ef1234567890", "A1B2C3D4"},
		{"abc-def", "ABC"},
		{"abcdefghijkl", "ABCDEFGH"},
		{"ab", "AB"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Short(tc.in), "input %q", tc.in)
	}
}
