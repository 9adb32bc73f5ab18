package picker

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// generateAction is the capability a model must support to be usable.
const generateAction = "generateContent"

// Name patterns identifying model variants that cannot produce free-form
// text for this use case.
var excludedPatterns = []string{
	"tts",
	"audio",
	"embedding",
	"aqa",
	"imagen",
	"image-generation",
}

// Scoring weights. One generation step (e.g. 1.5 to 2.0) dominates any tier
// difference, and the preview penalty is smaller than a tier step so it can
// only demote a variant below its own stable counterpart, never below a
// lower tier or an older generation.
const (
	generationMajorWeight = 100
	generationMinorWeight = 10
	proTierBonus          = 30
	fastTierBonus         = 15
	previewPenalty        = 10
)

var generationPattern = regexp.MustCompile(`(\d+)\.(\d+)`)

// usable reports whether a listed model can serve free-text generation.
func usable(m ModelInfo) bool {
	if !slices.Contains(m.Actions, generateAction) {
		return false
	}
	name := strings.ToLower(m.Name)
	for _, pattern := range excludedPatterns {
		if strings.Contains(name, pattern) {
			return false
		}
	}
	return true
}

// scoreModel computes the monotonic quality score for a model name.
func scoreModel(name string) int {
	name = strings.ToLower(strings.TrimPrefix(name, "models/"))
	score := 0

	if m := generationPattern.FindStringSubmatch(name); m != nil {
		major, _ := strconv.Atoi(m[1])
		minor, _ := strconv.Atoi(m[2])
		score += major*generationMajorWeight + minor*generationMinorWeight
	}

	switch {
	case strings.Contains(name, "pro"):
		score += proTierBonus
	case strings.Contains(name, "flash"), strings.Contains(name, "lite"):
		score += fastTierBonus
	}

	if strings.Contains(name, "preview") || strings.Contains(name, "-exp") {
		score -= previewPenalty
	}
	return score
}

// rankModels filters the listing down to usable models and orders them by
// quality score, best first. Equal scores break ties by name for a stable
// order.
func rankModels(listed []ModelInfo) []Model {
	ranked := make([]Model, 0, len(listed))
	for _, m := range listed {
		if !usable(m) {
			continue
		}
		ranked = append(ranked, Model{Name: m.Name, Quality: scoreModel(m.Name)})
	}
	slices.SortFunc(ranked, func(a, b Model) int {
		if a.Quality != b.Quality {
			return b.Quality - a.Quality
		}
		return strings.Compare(a.Name, b.Name)
	})
	return ranked
}
