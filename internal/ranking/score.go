package ranking

import "math"

// Bounds of the denominator used to turn a match count into a percentage
const (
	minScoreDenominator = 5
	maxScoreDenominator = 30
)

// Result is the keyword coverage of a résumé against a job description
type Result struct {
	// Score is 0-100, or nil when the job description had no tokens
	Score *int
	// Matched lists the job tokens found in the résumé, in job-description order
	Matched []string
}

// Score computes round(min(100, matches / clamp(|job|, 5, 30) * 100)).
// An empty job set yields a nil Score and no matches.
func Score(job, resume *TokenSet) Result {
	result := Result{Matched: []string{}}
	if job == nil || job.Len() == 0 {
		return result
	}

	for _, token := range job.order {
		if resume != nil && resume.Has(token) {
			result.Matched = append(result.Matched, token)
		}
	}

	denom := min(max(job.Len(), minScoreDenominator), maxScoreDenominator)
	pct := math.Round(math.Min(100, float64(len(result.Matched))/float64(denom)*100))
	score := int(pct)
	result.Score = &score
	return result
}
