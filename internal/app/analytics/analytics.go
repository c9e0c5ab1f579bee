// Package analytics computes derived metrics over the full student
// collection. Every function is pure and recomputes from scratch on each
// call; nothing here caches state between invocations.
package analytics

import (
	"fmt"
	"strings"

	"github.com/juko/registry/internal/app/models"
)

// AtRiskThreshold is the GWA above which a student counts as failing.
const AtRiskThreshold = 3.0

// CollegeCount is one bar of the enrollment-by-college chart.
// Abbrev holds the college's initials ("College of Computer Studies" => "CoCS"),
// which is what the chart axis renders.
type CollegeCount struct {
	Name   string `json:"name"`
	Abbrev string `json:"abbrev"`
	Count  int    `json:"count"`
}

// StandingSplit buckets the collection into passing and failing students.
type StandingSplit struct {
	Passing int `json:"passing"`
	Failing int `json:"failing"`
}

// GwaBucket is one segment of the GWA distribution curve.
type GwaBucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

// Summary is the full analytics view over the student collection.
type Summary struct {
	TotalCount       int            `json:"totalCount"`
	AverageGwa       string         `json:"averageGwa"` // rendered to 2 decimal places, "0.00" when empty
	AtRiskCount      int            `json:"atRiskCount"`
	CollegeHistogram []CollegeCount `json:"collegeHistogram"`
	TopCollege       string         `json:"topCollege"`
	PassFail         StandingSplit  `json:"passFailSplit"`
	GwaDistribution  []GwaBucket    `json:"gwaDistribution"`
}

// Summarize computes the analytics summary for the given records.
func Summarize(students []models.Student) Summary {
	return Summary{
		TotalCount:       len(students),
		AverageGwa:       AverageGwa(students),
		AtRiskCount:      AtRiskCount(students),
		CollegeHistogram: CollegeHistogram(students),
		TopCollege:       TopCollege(students),
		PassFail:         PassFailSplit(students),
		GwaDistribution:  GwaDistribution(students),
	}
}

// AverageGwa returns the arithmetic mean of all GWA values rendered to two
// decimal places, or "0.00" for an empty collection.
func AverageGwa(students []models.Student) string {
	if len(students) == 0 {
		return "0.00"
	}
	var sum float64
	for _, s := range students {
		sum += s.GWA
	}
	return fmt.Sprintf("%.2f", sum/float64(len(students)))
}

// AtRiskCount counts students with a GWA strictly above the threshold.
func AtRiskCount(students []models.Student) int {
	count := 0
	for _, s := range students {
		if s.GWA > AtRiskThreshold {
			count++
		}
	}
	return count
}

// CollegeHistogram counts students per college. Only colleges present in the
// data appear, in first-encounter order.
func CollegeHistogram(students []models.Student) []CollegeCount {
	index := make(map[string]int)
	// Non-nil so an empty collection serializes as [] like every other field
	histogram := []CollegeCount{}
	for _, s := range students {
		if i, ok := index[s.College]; ok {
			histogram[i].Count++
			continue
		}
		index[s.College] = len(histogram)
		histogram = append(histogram, CollegeCount{
			Name:   s.College,
			Abbrev: abbreviate(s.College),
			Count:  1,
		})
	}
	return histogram
}

// TopCollege returns the college with the highest enrollment, or "N/A" for an
// empty collection. Ties are broken by the lexicographically smallest name so
// the result does not depend on record order.
func TopCollege(students []models.Student) string {
	histogram := CollegeHistogram(students)
	if len(histogram) == 0 {
		return "N/A"
	}
	top := histogram[0]
	for _, entry := range histogram[1:] {
		if entry.Count > top.Count || (entry.Count == top.Count && entry.Name < top.Name) {
			top = entry
		}
	}
	return top.Name
}

// PassFailSplit buckets students into passing (GWA <= 3.0) and failing.
func PassFailSplit(students []models.Student) StandingSplit {
	failing := AtRiskCount(students)
	return StandingSplit{
		Passing: len(students) - failing,
		Failing: failing,
	}
}

// GwaDistribution buckets GWA values into the five fixed ranges of the
// distribution curve. The 2.5-3.0 bucket is closed on the right so that a GWA
// of exactly 3.0 still counts as passing; values below 1.0 fall outside every
// bucket.
func GwaDistribution(students []models.Student) []GwaBucket {
	buckets := []GwaBucket{
		{Range: "1.0-1.5"},
		{Range: "1.5-2.0"},
		{Range: "2.0-2.5"},
		{Range: "2.5-3.0"},
		{Range: "3.0+"},
	}
	for _, s := range students {
		g := s.GWA
		switch {
		case g >= 1.0 && g < 1.5:
			buckets[0].Count++
		case g >= 1.5 && g < 2.0:
			buckets[1].Count++
		case g >= 2.0 && g < 2.5:
			buckets[2].Count++
		case g >= 2.5 && g <= 3.0:
			buckets[3].Count++
		case g > 3.0:
			buckets[4].Count++
		}
	}
	return buckets
}

// abbreviate reduces a college name to the initials of its words.
func abbreviate(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r := []rune(word)
		b.WriteRune(r[0])
	}
	return b.String()
}
