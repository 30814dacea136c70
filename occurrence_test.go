package cron

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	valid := map[string]Occurrence{
		"00:00": {0, 0},
		"16:20": {16, 20},
		"09:05": {9, 5},
		"23:59": {23, 59},
		"19:00": {19, 0},
	}
	for in, want := range valid {
		got, err := ParseTime(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	invalid := []string{"24:00", "9:05", "09:5", "12:60", "1200", "12:00:00", "", "now", " 12:00", "ab:cd", "30:10"}
	for _, in := range invalid {
		_, err := ParseTime(in)

		var ierr *InputFormatError
		require.True(t, errors.As(err, &ierr), "%q: %v", in, err)
		assert.Equal(t, in, ierr.Input)
	}
}

func TestOccurrence_Compare(t *testing.T) {
	a := Occurrence{Hour: 1, Minute: 30}
	b := Occurrence{Hour: 1, Minute: 31}
	c := Occurrence{Hour: 2, Minute: 0}

	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, -1, b.Compare(c))
	assert.Equal(t, 1, c.Compare(a))

	assert.True(t, a.Before(c))
	assert.False(t, c.Before(a))
	assert.False(t, a.Before(a))
}

func TestOccurrence_String(t *testing.T) {
	assert.Equal(t, "01:30", Occurrence{1, 30}.String())
	assert.Equal(t, "00:00", Occurrence{}.String())
	assert.Equal(t, "23:05", Occurrence{23, 5}.String())
}

func TestOccurrence_On(t *testing.T) {
	day := time.Date(2024, time.February, 29, 16, 20, 45, 123, time.UTC)

	assert.Equal(t, time.Date(2024, time.February, 29, 1, 30, 0, 0, time.UTC), Occurrence{1, 30}.On(day))
	assert.Equal(t, Occurrence{16, 20}, At(day))
}
