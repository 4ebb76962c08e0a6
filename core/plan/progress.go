package plan

import (
	"math"
	"sort"
)

type (
	// Requirements are the degree targets progress is measured against.
	Requirements struct {
		TotalCredits    int `json:"total_credits"`
		HubUnits        int `json:"hub_units"`
		MinSemesterLoad int `json:"min_semester_load"`
	}

	// Progress is derived from a snapshot on every read; nothing is cached.
	Progress struct {
		TotalCredits       int      `json:"total_credits"`
		UniqueCourses      int      `json:"unique_courses"`
		HubUnits           int      `json:"hub_units"`
		HubAreas           []string `json:"hub_areas"`
		OverallPercent     int      `json:"overall_percent"`
		HubPercent         int      `json:"hub_percent"`
		RemainingCredits   int      `json:"remaining_credits"`
		AvgCreditsPerSem   float64  `json:"avg_credits_per_semester"`
		SemestersRemaining int      `json:"semesters_remaining"`

		Requirements Requirements `json:"requirements"`
	}
)

// DefaultRequirements matches a standard 128-credit bachelor's with 26 hub units.
var DefaultRequirements = Requirements{TotalCredits: 128, HubUnits: 26, MinSemesterLoad: 15}

// ComputeProgress derives aggregate totals, hub coverage and a graduation
// estimate from a plan snapshot.
//
// The estimate divides remaining credits by the average load of non-empty
// semesters, floored at Requirements.MinSemesterLoad: a nearly empty plan has
// an average near zero, which would otherwise blow the estimate up toward
// infinity. The floor keeps it bounded at the cost of undercounting genuinely
// part-time plans.
func ComputeProgress(semesters []Semester, req Requirements) Progress {
	var totalCredits, hubUnits, nonEmpty int
	codes := make(map[string]struct{})
	areas := make(map[string]struct{})

	for _, sem := range semesters {
		if len(sem.Courses) > 0 {
			nonEmpty++
		}
		for _, c := range sem.Courses {
			totalCredits += c.Credits
			hubUnits += len(c.HubRequirements)
			codes[c.Code] = struct{}{}
			for _, area := range c.HubRequirements {
				areas[area] = struct{}{}
			}
		}
	}

	hubAreas := make([]string, 0, len(areas))
	for area := range areas {
		hubAreas = append(hubAreas, area)
	}
	sort.Strings(hubAreas)

	remaining := req.TotalCredits - totalCredits
	if remaining < 0 {
		remaining = 0
	}

	var avg float64
	if nonEmpty > 0 {
		avg = float64(totalCredits) / float64(nonEmpty)
	}

	var semestersRemaining int
	if remaining > 0 {
		semestersRemaining = int(math.Ceil(float64(remaining) / math.Max(avg, float64(req.MinSemesterLoad))))
	}

	return Progress{
		TotalCredits:       totalCredits,
		UniqueCourses:      len(codes),
		HubUnits:           hubUnits,
		HubAreas:           hubAreas,
		OverallPercent:     clampedPercent(totalCredits, req.TotalCredits),
		HubPercent:         clampedPercent(hubUnits, req.HubUnits),
		RemainingCredits:   remaining,
		AvgCreditsPerSem:   avg,
		SemestersRemaining: semestersRemaining,
		Requirements:       req,
	}
}

// clampedPercent rounds have/target to a whole percentage, capped at 100.
func clampedPercent(have, target int) int {
	if target <= 0 {
		return 0
	}
	pct := int(math.Round(float64(have) / float64(target) * 100))
	if pct > 100 {
		return 100
	}
	return pct
}
