package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMeasurement(t *testing.T) {
	cases := []struct {
		input  string
		expect *float64
	}{
		{input: "142.3 mph", expect: ptr(142.3)},
		{input: "245 yds", expect: ptr(245.0)},
		{input: "-2.5", expect: ptr(-2.5)},
		{input: "1,5", expect: ptr(1.5)},
		{input: "2,450 rpm", expect: ptr(2.450)},
		{input: "  98  ", expect: ptr(98.0)},
		{input: "", expect: nil},
		{input: "N/A", expect: nil},
		{input: "--", expect: nil},
		{input: "mph", expect: nil},
	}

	for _, test := range cases {
		got := ParseMeasurement(test.input)
		if test.expect == nil {
			require.Nil(t, got, "input %q", test.input)
			continue
		}
		require.NotNil(t, got, "input %q", test.input)
		require.InDelta(t, *test.expect, *got, 1e-9, "input %q", test.input)
	}
}

func TestParseMeasurementNeverZeroForMissing(t *testing.T) {
	// a blank cell must surface as nil, a zero would poison averages
	for _, input := range []string{"", " ", "\t", "n/a", "pending"} {
		got := ParseMeasurement(input)
		require.Nil(t, got, "input %q", input)
	}
}

func TestParseLeadingInt(t *testing.T) {
	require.Equal(t, int64(36), *ParseLeadingInt("36 putts"))
	require.Equal(t, int64(12), *ParseLeadingInt("GIR: 12"))
	require.Nil(t, ParseLeadingInt("none"))
}

func TestParseRatio(t *testing.T) {
	hit, total, ok := ParseRatio("9/14 fairways")
	require.True(t, ok)
	require.Equal(t, int64(9), *hit)
	require.Equal(t, int64(14), *total)

	_, _, ok = ParseRatio("no ratio here")
	require.False(t, ok)
}

func TestMatchCourseName(t *testing.T) {
	{
		require.True(t, MatchCourseName("Pebble Beach Golf Links", "pebble beach golf links"))
		require.True(t, MatchCourseName("Pebble Beach Golf Links", "Pebble  Beach Golf Links "))
	}
	{
		// single character drift still matches
		require.True(t, MatchCourseName("Bandon Dunes", "Bandon Dune"))
	}
	{
		require.False(t, MatchCourseName("Pebble Beach Golf Links", "Torrey Pines South"))
		require.False(t, MatchCourseName("", "Torrey Pines South"))
	}
}

func TestMatchName(t *testing.T) {
	require.True(t, MatchName("Verify you are NOT a robot", []string{"not a robot"}))
	require.False(t, MatchName("welcome to your dashboard", []string{"captcha"}))
}

func ptr[T any](v T) *T {
	return &v
}
