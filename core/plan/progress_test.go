package plan

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gradmap/gradmap/tests"
)

func TestComputeProgress_emptyPlan(t *testing.T) {
	prog := ComputeProgress(NewStore(2026).Snapshot(), DefaultRequirements)

	assert.Equal(t, 0, prog.TotalCredits)
	assert.Equal(t, 0, prog.UniqueCourses)
	assert.Equal(t, 0, prog.HubUnits)
	assert.Empty(t, prog.HubAreas)
	assert.Equal(t, 0, prog.OverallPercent)
	assert.Equal(t, 0, prog.HubPercent)
	assert.Equal(t, 128, prog.RemainingCredits)
	assert.Equal(t, 0.0, prog.AvgCreditsPerSem)
	// floored at the minimum load: ceil(128/15)
	assert.Equal(t, 9, prog.SemestersRemaining)
}

func TestComputeProgress(t *testing.T) {
	st := NewStore(2026)
	_ = st.AddCourse("fall-2026", testutil.MakeCourse("CAS CS 111", "Intro to CS 1", 4, []string{"QR2", "CT"}))
	_ = st.AddCourse("fall-2026", testutil.MakeCourse("CAS WR 120", "First-Year Writing", 4, []string{"FYW"}))
	_ = st.AddCourse("spring-2027", testutil.MakeCourse("CAS CS 112", "Intro to CS 2", 4, []string{"QR2"}))

	prog := ComputeProgress(st.Snapshot(), DefaultRequirements)

	assert.Equal(t, 12, prog.TotalCredits)
	assert.Equal(t, 3, prog.UniqueCourses)
	assert.Equal(t, 4, prog.HubUnits) // units count per course, repeated areas included
	assert.Equal(t, []string{"CT", "FYW", "QR2"}, prog.HubAreas)
	assert.Equal(t, 9, prog.OverallPercent)  // round(12/128*100)
	assert.Equal(t, 15, prog.HubPercent)     // round(4/26*100)
	assert.Equal(t, 116, prog.RemainingCredits)
	assert.Equal(t, 6.0, prog.AvgCreditsPerSem) // 12 credits over 2 non-empty semesters
	// avg below the minimum load, so the floor applies: ceil(116/15)
	assert.Equal(t, 8, prog.SemestersRemaining)
	assert.Equal(t, DefaultRequirements, prog.Requirements)
}

func TestComputeProgress_fullLoad(t *testing.T) {
	st := NewStore(2026)
	sems := st.Snapshot()
	codes := []string{"CS 111", "CS 112", "CS 210", "CS 330", "MA 123", "MA 124", "MA 225", "MA 242",
		"WR 120", "WR 151", "PY 105", "PY 106", "EC 101", "EC 102", "PH 100", "PH 101"}
	for i, code := range codes {
		c := testutil.MakeCourse("CAS "+code, code, 4, []string{"HUB"})
		_ = st.AddCourse(sems[i%len(sems)].ID, c)
	}

	prog := ComputeProgress(st.Snapshot(), DefaultRequirements)

	assert.Equal(t, 64, prog.TotalCredits)
	assert.Equal(t, 50, prog.OverallPercent)
	assert.Equal(t, 62, prog.HubPercent) // round(16/26*100)
	assert.Equal(t, 16.0, prog.AvgCreditsPerSem)
	// avg above the floor: ceil(64/16)
	assert.Equal(t, 4, prog.SemestersRemaining)
}

func TestComputeProgress_clampsAt100(t *testing.T) {
	st := NewStore(2026)
	sems := st.Snapshot()
	for i := 0; i < 36; i++ {
		c := testutil.MakeCourse(fmt.Sprintf("CAS XX %d", 100+i), "Filler", 4, []string{"A", "B"})
		_ = st.AddCourse(sems[i%len(sems)].ID, c)
	}

	prog := ComputeProgress(st.Snapshot(), DefaultRequirements)

	assert.Equal(t, 144, prog.TotalCredits)
	assert.Equal(t, 100, prog.OverallPercent)
	assert.Equal(t, 100, prog.HubPercent)
	assert.Equal(t, 0, prog.RemainingCredits)
	assert.Equal(t, 0, prog.SemestersRemaining)
}

// Adding a course never lowers any progress number.
func TestComputeProgress_monotonic(t *testing.T) {
	st := NewStore(2026)
	prev := ComputeProgress(st.Snapshot(), DefaultRequirements)

	codes := []string{"CAS CS 111", "CAS CS 112", "CAS WR 120", "CAS MA 123"}
	for _, code := range codes {
		_ = st.AddCourse("fall-2026", testutil.MakeCourse(code, code, 4, []string{"HUB"}))
		prog := ComputeProgress(st.Snapshot(), DefaultRequirements)

		assert.GreaterOrEqual(t, prog.TotalCredits, prev.TotalCredits)
		assert.GreaterOrEqual(t, prog.HubUnits, prev.HubUnits)
		assert.GreaterOrEqual(t, prog.OverallPercent, prev.OverallPercent)
		assert.GreaterOrEqual(t, prog.HubPercent, prev.HubPercent)
		assert.LessOrEqual(t, prog.RemainingCredits, prev.RemainingCredits)
		prev = prog
	}
}
