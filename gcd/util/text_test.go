package util

import (
	"math"
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndent(t *testing.T) {
	assert.Equal(t, "", Indent("", "\t"))
	assert.Equal(t, "\ta\n\tb", Indent("a\nb", "\t"))
}

func TestJoinInts(t *testing.T) {
	assert.Equal(t, "", JoinInts(nil, ", "))
	assert.Equal(t, "48, -18, 0", JoinInts([]int32{48, -18, 0}, ", "))
}

func TestParseOperands(t *testing.T) {
	got, err := ParseOperands([]string{"48", " -18 ", "+7", "-2147483648", "2147483647"})
	require.NoError(t, err)
	assert.Equal(t, []int32{48, -18, 7, math.MinInt32, math.MaxInt32}, got)

	_, err = ParseOperands([]string{"1", "2147483648"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid number #2")
	assert.True(t, errors.Is(err, strconv.ErrRange))

	_, err = ParseOperands([]string{"0x10"})
	assert.True(t, errors.Is(err, strconv.ErrSyntax))
}
