package filetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNowAtUTCMatchesPlainFormula(t *testing.T) {
	loc := time.FixedZone("UTC+0", 0)
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, loc)

	got := Now(ts)
	want := uint64(ts.UnixMilli())*10000 + epochOffset
	require.Equal(t, want, got)
}

func TestNowFoldsInPositiveOffset(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, loc)

	got := Now(ts)
	want := uint64(ts.UnixMilli())*10000 + epochOffset + 9*3600*10000000
	require.Equal(t, want, got)
}

func TestSentinelsAreFixed(t *testing.T) {
	require.EqualValues(t, 94354848000000000, Zero)
	require.EqualValues(t, 150842304000000000, Default)
}
