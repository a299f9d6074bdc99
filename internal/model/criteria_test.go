package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBracketsPartitionPopulations(t *testing.T) {
	populations := []int64{0, 1, 999_999, 1_000_000, 9_999_999, 10_000_000, 99_999_999, 100_000_000, 1_400_000_000}
	for _, p := range populations {
		matches := 0
		for _, b := range Brackets[1:] {
			if b.Contains(p) {
				matches++
			}
		}
		assert.Equal(t, 1, matches, "population %d", p)
		assert.True(t, BracketNone.Contains(p))
	}
}

func TestBracketBoundaries(t *testing.T) {
	assert.True(t, BracketLessThan1M.Contains(999_999))
	assert.False(t, BracketLessThan1M.Contains(1_000_000))
	assert.True(t, Bracket1Mto10M.Contains(1_000_000))
	assert.True(t, Bracket10Mto100M.Contains(10_000_000))
	assert.False(t, Bracket10Mto100M.Contains(100_000_000))
	assert.True(t, BracketMoreThan100M.Contains(100_000_000))
}

func TestParseBracketAndSortKey(t *testing.T) {
	b, err := ParseBracket("1Mto10M")
	require.NoError(t, err)
	assert.Equal(t, Bracket1Mto10M, b)

	b, err = ParseBracket("")
	require.NoError(t, err)
	assert.Equal(t, BracketNone, b)

	_, err = ParseBracket("huge")
	assert.ErrorIs(t, err, ErrInvalidCriteria)

	k, err := ParseSortKey("areaDesc")
	require.NoError(t, err)
	assert.Equal(t, SortAreaDesc, k)

	_, err = ParseSortKey("random")
	assert.ErrorIs(t, err, ErrInvalidCriteria)
}

func TestDialCodes(t *testing.T) {
	assert.Equal(t, []string{"+55"}, Country{IDD: &IDD{Root: "+5", Suffixes: []string{"5"}}}.DialCodes())
	assert.Equal(t, []string{"+1"}, Country{IDD: &IDD{Root: "+1"}}.DialCodes())
	assert.Equal(t, []string{"1"}, Country{CallingCodes: []string{"1"}, IDD: &IDD{Root: "+9"}}.DialCodes())
	assert.Nil(t, Country{}.DialCodes())
}
