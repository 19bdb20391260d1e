//go:build unit

package version

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	v, err := Parse("2.1.3")

	require.NoError(t, err)
	assert.Equal(t, uint64(2), v.Major())
	assert.Equal(t, uint64(1), v.Minor())
	assert.Equal(t, uint64(3), v.Patch())
	assert.Equal(t, "2.1.3", v.String())
	assert.False(t, v.Released())
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse("not-a-version")

	assert.ErrorIs(t, err, ErrInvalidVersion)
}

func TestWithRelease(t *testing.T) {
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	v := MustParse("1.0.0").WithRelease(true, &date)

	assert.True(t, v.Released())
	require.NotNil(t, v.ReleaseDate())
	assert.Equal(t, date, *v.ReleaseDate())
}

func TestCompare(t *testing.T) {
	assert.True(t, MustParse("1.0.0").LessThan(MustParse("2.0.0")))
	assert.True(t, MustParse("2.1.0").GreaterThan(MustParse("2.0.9")))
	assert.True(t, MustParse("2.0.0").Equal(MustParse("2.0.0")))
}

func TestSortDescending(t *testing.T) {
	versions := []*Version{
		MustParse("2.0.0"),
		MustParse("3.0.0"),
		MustParse("1.0.0"),
		MustParse("2.1.0"),
	}

	SortDescending(versions)

	assert.Equal(t, "3.0.0", versions[0].String())
	assert.Equal(t, "2.1.0", versions[1].String())
	assert.Equal(t, "2.0.0", versions[2].String())
	assert.Equal(t, "1.0.0", versions[3].String())
}

func TestJSONRoundTrip(t *testing.T) {
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	original := MustParse("2.1.3").WithRelease(true, &date)

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Version
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.True(t, original.Equal(&decoded))
	assert.True(t, decoded.Released())
	require.NotNil(t, decoded.ReleaseDate())
	assert.Equal(t, date, *decoded.ReleaseDate())
}
