package dbtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("1990-02-10")
	require.NoError(t, err)
	assert.Equal(t, "1990-02-10", FormatDate(d))

	d, err = ParseDate("1990-02-10T23:30:00-03:00")
	require.NoError(t, err)
	assert.Equal(t, "1990-02-10", FormatDate(d))

	_, err = ParseDate("10/02/1990")
	assert.Error(t, err)

	p, err := ParseDatePtr(nil)
	assert.NoError(t, err)
	assert.Nil(t, p)
	empty := "  "
	p, err = ParseDatePtr(&empty)
	assert.NoError(t, err)
	assert.Nil(t, p)
}

func TestAgeOn(t *testing.T) {
	birth := time.Date(2000, 12, 31, 0, 0, 0, 0, time.UTC)
	on := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 24, AgeOn(birth, on, true))
	assert.Equal(t, 23, AgeOn(birth, on, false))
	assert.Equal(t, 24, AgeOn(birth, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), false))
}
