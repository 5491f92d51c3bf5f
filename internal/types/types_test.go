package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"Approver":        RoleApprover,
		"approver":        RoleApprover,
		"APPROVER":        RoleApprover,
		"Backup Approver": RoleApprover,
		"Reviewer":        RoleReviewer,
		" Sr. Reviewer ":  RoleReviewer,
		"Observer":        RoleUnknown,
		"":                RoleUnknown,
	}

	for raw, want := range cases {
		assert.Equal(t, want, ParseRole(raw), "raw %q", raw)
	}
}

func TestLevelBandsAreFixedAndOrdered(t *testing.T) {
	bands := LevelBands()
	require.Len(t, bands, 7)

	for i, band := range bands {
		assert.Equal(t, i+1, band.Level)
		assert.Less(t, band.Lower, band.Upper)
	}

	assert.Equal(t, MinThreshold, bands[0].Lower)
	assert.Equal(t, MaxThreshold, bands[6].Upper)
}

func TestLevelBandsAreAdjacentNonOverlapping(t *testing.T) {
	bands := LevelBands()
	for i := 1; i < len(bands); i++ {
		assert.InDelta(t, bands[i-1].Upper+0.01, bands[i].Lower, 1e-6,
			"band %d must start one cent after band %d ends", i+1, i)
	}
}

func TestLevelBandsReturnsACopy(t *testing.T) {
	bands := LevelBands()
	bands[0].Lower = -42

	assert.Equal(t, 1.0, LevelBands()[0].Lower, "mutating the returned slice must not affect the table")
}

func TestBandContainsAndOverlapsAreInclusive(t *testing.T) {
	band := LevelBands()[1] // 1001 .. 5000.99

	assert.True(t, band.Contains(1001))
	assert.True(t, band.Contains(5000.99))
	assert.False(t, band.Contains(1000.99))
	assert.False(t, band.Contains(5001))

	assert.True(t, band.Overlaps(5000.99, 9000))
	assert.True(t, band.Overlaps(100, 1001))
	assert.False(t, band.Overlaps(5001, 9000))
}
