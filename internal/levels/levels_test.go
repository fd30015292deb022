package levels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_StrictlyIncreasing(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)
	assert.Equal(t, 1, all[0].Level)
	assert.Equal(t, 0, all[0].XPRequired)

	for i := 1; i < len(all); i++ {
		assert.Greater(t, all[i].Level, all[i-1].Level, "level order at %d", i)
		assert.Greater(t, all[i].XPRequired, all[i-1].XPRequired, "xp order at %d", i)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := All()
	all[0].Title = "changed"
	assert.Equal(t, "Novice", All()[0].Title)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		xp        int
		wantLevel int
		wantNext  int
		wantPct   float64
		wantToGo  int
	}{
		{"zero", 0, 1, 2, 0, 100},
		{"midway first band", 50, 1, 2, 50, 50},
		{"exact threshold", 100, 2, 3, 0, 150},
		{"inside band", 175, 2, 3, 50, 75},
		{"just below level 5", 999, 4, 5, 99.8, 1},
		{"level 9", 6500, 9, 10, 50, 1000},
		{"terminal exact", 7500, 10, 10, 100, 0},
		{"beyond terminal", 100000, 10, 10, 100, 0},
		{"negative", -20, 1, 2, 0, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := Resolve(tt.xp)
			assert.Equal(t, tt.wantLevel, info.Current.Level)
			assert.Equal(t, tt.wantNext, info.Next.Level)
			assert.InDelta(t, tt.wantPct, info.ProgressPercent, 0.001)
			assert.Equal(t, tt.wantToGo, info.XPToNext)
		})
	}
}

func TestResolve_TerminalIsMax(t *testing.T) {
	info := Resolve(Max().XPRequired)
	assert.True(t, info.IsMax())
	assert.Equal(t, "Cannabis Sommelier", info.Current.Title)

	assert.False(t, Resolve(0).IsMax())
}

func TestResolve_PercentBoundedAndMonotonic(t *testing.T) {
	prev := Resolve(0).Current.Level
	for xp := 0; xp <= 9000; xp += 7 {
		info := Resolve(xp)
		if info.ProgressPercent < 0 || info.ProgressPercent > 100 {
			t.Fatalf("Resolve(%d).ProgressPercent = %f, out of [0,100]", xp, info.ProgressPercent)
		}
		if info.Current.Level < prev {
			t.Fatalf("Resolve(%d) level %d < previous %d", xp, info.Current.Level, prev)
		}
		prev = info.Current.Level
	}
}
