package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseSupplierTimestamp(t *testing.T) {
	ts, err := ParseSupplierTimestamp("2016-07-27 15:17:33.941 GMT")
	assert.NoError(t, err)
	assert.Equal(t, 2016, ts.Year())
	assert.Equal(t, 15, ts.Hour())
	assert.Equal(t, 941000000, ts.Nanosecond())

	_, err = ParseSupplierTimestamp("2016-07-27T15:17:33Z")
	assert.ErrorContains(t, err, "parsing supplier timestamp")
}

func TestParseDespatchDate(t *testing.T) {
	d, err := ParseDespatchDate("27/07/2016")
	assert.NoError(t, err)
	assert.Equal(t, 2016, d.Year())
	assert.Equal(t, time.July, d.Month())
	assert.Equal(t, 27, d.Day())

	_, err = ParseDespatchDate("2016-07-27")
	assert.ErrorContains(t, err, "parsing despatch date")
}

func TestYear(t *testing.T) {
	for input, want := range map[string]string{
		"2016":                     "2016",
		"2016-07-27":               "2016",
		"2016-07-27T15:17:33Z":     "2016",
		"2016-07-27T15:17:33+0100": "2016",
	} {
		year, err := Year(input)
		assert.NoError(t, err, input)
		assert.Equal(t, want, year, input)
	}

	_, err := Year("July 2016")
	assert.Error(t, err)
}
