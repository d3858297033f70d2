package export

import "talentscout/internal/types"

// Scoring weights and thresholds. These are heuristics kept exactly as
// shipped so recorded scores stay comparable across versions.
const (
	completionWeight = 0.4
	qualityWeight    = 0.6
)

// ScoreInterview derives a completion/quality score breakdown from a record.
// Completion is the fraction of the seven required fields present, weighted
// to 40 points. Quality buckets the average technical answer length,
// weighted to 60 points, and is zero when no answers were given.
func ScoreInterview(record types.CandidateRecord) types.ScoreBreakdown {
	var breakdown types.ScoreBreakdown

	completed := record.CompletedFieldCount()
	completionPercentage := float64(completed) / float64(len(types.RequiredFields)) * 100
	breakdown.CompletionScore = completionPercentage * completionWeight

	if len(record.Answers) > 0 {
		total := 0
		for _, qa := range record.Answers {
			total += len(qa.Answer)
		}
		avg := float64(total) / float64(len(record.Answers))

		var quality float64
		switch {
		case avg > 100:
			quality = 90
		case avg > 50:
			quality = 75
		case avg > 20:
			quality = 60
		default:
			quality = 40
		}
		breakdown.QualityScore = quality * qualityWeight
	}

	breakdown.TotalScore = breakdown.CompletionScore + breakdown.QualityScore

	if completionPercentage < 100 {
		breakdown.Recommendations = append(breakdown.Recommendations,
			"Complete all required information fields")
	}
	if breakdown.QualityScore < 50 {
		breakdown.Recommendations = append(breakdown.Recommendations,
			"Provide more detailed technical answers")
	}

	switch {
	case breakdown.TotalScore >= 80:
		breakdown.Recommendations = append(breakdown.Recommendations,
			"Excellent candidate - recommend for next round")
	case breakdown.TotalScore >= 60:
		breakdown.Recommendations = append(breakdown.Recommendations,
			"Good candidate - consider for interview")
	default:
		breakdown.Recommendations = append(breakdown.Recommendations,
			"May need additional screening")
	}

	return breakdown
}
