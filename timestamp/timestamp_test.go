package timestamp

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cli-helpers/cli-helpers-go/errors"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		expected    time.Time
		expectError bool
	}{
		{
			name:     "epoch seconds",
			input:    "1692946034",
			expected: time.Date(2023, 8, 25, 6, 47, 14, 0, time.UTC),
		},
		{
			name:     "epoch milliseconds",
			input:    "1692946034632",
			expected: time.Date(2023, 8, 25, 6, 47, 14, 632000000, time.UTC),
		},
		{
			name:     "epoch zero",
			input:    "0",
			expected: time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "negative seconds before the epoch",
			input:    "-5",
			expected: time.Date(1969, 12, 31, 23, 59, 55, 0, time.UTC),
		},
		{
			name:     "seconds just below the milliseconds cutoff",
			input:    "999999999999",
			expected: time.Unix(999999999999, 0).UTC(),
		},
		{
			name:     "milliseconds at the cutoff",
			input:    "1000000000000",
			expected: time.Date(2001, 9, 9, 1, 46, 40, 0, time.UTC),
		},
		{
			name:     "calendar string with CEST",
			input:    "Fri Aug 25 08:47:09 AM CEST 2023",
			expected: time.Date(2023, 8, 25, 6, 47, 9, 0, time.UTC),
		},
		{
			name:     "calendar string with CET",
			input:    "Wed Jan 25 08:47:09 AM CET 2023",
			expected: time.Date(2023, 1, 25, 7, 47, 9, 0, time.UTC),
		},
		{
			name:     "calendar string with explicit offset",
			input:    "Fri Aug 25 08:47:09 AM +0200 2023",
			expected: time.Date(2023, 8, 25, 6, 47, 9, 0, time.UTC),
		},
		{
			name:     "calendar string with space-padded day",
			input:    "Tue Aug  1 01:02:03 PM +0000 2023",
			expected: time.Date(2023, 8, 1, 13, 2, 3, 0, time.UTC),
		},
		{
			name:        "garbage input",
			input:       "not-a-timestamp",
			expectError: true,
		},
		{
			name:        "empty string",
			input:       "",
			expectError: true,
		},
		{
			name:        "RFC3339 is not a recognized format",
			input:       "2023-08-25T06:47:14Z",
			expectError: true,
		},
		{
			name:        "float is not an integer",
			input:       "1692946034.5",
			expectError: true,
		},
		{
			name:        "integer wider than 64 bits falls through to failure",
			input:       "99999999999999999999",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := Parse(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.True(t, errors.IsInvalidTimestamp(err),
					"expected invalid-timestamp error, got %v", err)
				assert.Equal(t, tt.input, errors.GetInput(err),
					"error must carry the verbatim original input")
			} else {
				require.NoError(t, err)
				assert.True(t, result.Time().Equal(tt.expected),
					"expected %v, got %v", tt.expected, result.Time())
				assert.Equal(t, time.UTC, result.Time().Location())
			}
		})
	}
}

func TestParseSecondsRange(t *testing.T) {
	t.Parallel()

	// Every integer below the cutoff decodes as whole seconds with a zero
	// sub-second component.
	for _, n := range []int64{0, 1, 59, 1692946034, 999999999, 999999999999} {
		ts, err := Parse(strconv.FormatInt(n, 10))
		require.NoError(t, err)
		assert.Equal(t, n, ts.Unix())
		assert.Zero(t, ts.Time().Nanosecond())
	}
}

func TestParseMillisecondsRange(t *testing.T) {
	t.Parallel()

	// Integers at or above the cutoff round-trip exactly as milliseconds.
	for _, n := range []int64{1000000000000, 1692946034632, 1692946034999} {
		ts, err := Parse(strconv.FormatInt(n, 10))
		require.NoError(t, err)
		assert.Equal(t, n, ts.UnixMilli())
	}
}

func TestParseOffsetSubstitution(t *testing.T) {
	t.Parallel()

	utc, err := Parse("Fri Aug 25 08:47:09 AM +0000 2023")
	require.NoError(t, err)

	cest, err := Parse("Fri Aug 25 08:47:09 AM CEST 2023")
	require.NoError(t, err)
	assert.Equal(t, -2*time.Hour, cest.Time().Sub(utc.Time()),
		"the same clock reading in CEST is two hours earlier in UTC")

	cet, err := Parse("Fri Aug 25 08:47:09 AM CET 2023")
	require.NoError(t, err)
	assert.Equal(t, -1*time.Hour, cet.Time().Sub(utc.Time()),
		"the same clock reading in CET is one hour earlier in UTC")
}

func TestParseIsPure(t *testing.T) {
	t.Parallel()

	a, errA := Parse("1692946034")
	b, errB := Parse("1692946034")
	require.NoError(t, errA)
	require.NoError(t, errB)
	assert.True(t, a.Equal(b))

	_, errC := Parse("not-a-timestamp")
	_, errD := Parse("not-a-timestamp")
	require.Error(t, errC)
	require.Error(t, errD)
	assert.Equal(t, errC.Error(), errD.Error())
}

func TestTimestampOrdering(t *testing.T) {
	t.Parallel()

	earlier := FromTime(time.Date(2023, 8, 25, 6, 47, 9, 0, time.UTC))
	later := FromTime(time.Date(2023, 8, 25, 6, 47, 14, 0, time.UTC))

	assert.True(t, earlier.Before(later))
	assert.True(t, later.After(earlier))
	assert.False(t, earlier.Equal(later))
	assert.True(t, earlier.Equal(earlier))
}

func TestFromTimeNormalizesToUTC(t *testing.T) {
	t.Parallel()

	local := time.Date(2023, 8, 25, 8, 47, 9, 0, time.FixedZone("CEST", 2*3600))
	ts := FromTime(local)

	assert.Equal(t, time.UTC, ts.Time().Location())
	assert.True(t, ts.Time().Equal(local))
	assert.Equal(t, "2023-08-25T06:47:09Z", ts.String())
}

func BenchmarkParse(b *testing.B) {
	inputs := []string{
		"1692946034",
		"1692946034632",
		"Fri Aug 25 08:47:09 AM CEST 2023",
		"not-a-timestamp",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Parse(inputs[i%len(inputs)])
	}
}
