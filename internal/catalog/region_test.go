package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalRegionsCount(t *testing.T) {
	require.Len(t, CanonicalRegions, 16)

	seen := make(map[string]bool, len(CanonicalRegions))
	for _, r := range CanonicalRegions {
		assert.False(t, seen[r], "duplicate canonical region %q", r)
		seen[r] = true
	}
}

func TestMatchRegion(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "exact spelling", input: "Biobío", want: "Biobío", ok: true},
		{name: "case insensitive", input: "biobío", want: "Biobío", ok: true},
		{name: "accent insensitive", input: "biobio", want: "Biobío", ok: true},
		{name: "accent insensitive nuble", input: "nuble", want: "Ñuble", ok: true},
		{name: "surrounding whitespace", input: "  Maule ", want: "Maule", ok: true},
		{name: "alias rm", input: "RM", want: "Metropolitana", ok: true},
		{name: "alias santiago", input: "santiago", want: "Metropolitana", ok: true},
		{name: "alias ohiggins", input: "ohiggins", want: "O'Higgins", ok: true},
		{name: "all sentinel", input: "all", want: RegionAll, ok: true},
		{name: "empty means all", input: "", want: RegionAll, ok: true},
		{name: "unknown region", input: "Patagonia", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchRegion(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestIsCanonicalRegion(t *testing.T) {
	assert.True(t, IsCanonicalRegion("Aysén"))
	assert.False(t, IsCanonicalRegion("aysén"), "matching is exact; folding belongs to MatchRegion")
	assert.False(t, IsCanonicalRegion(""))
	assert.False(t, IsCanonicalRegion(RegionAll))
}
