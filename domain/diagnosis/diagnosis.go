// Package diagnosis defines the lesion classification decision rule.
package diagnosis

import "fmt"

// MalignantThreshold is the score at or above which a lesion is
// classified as malignant. The model emits the probability of the
// malignant class, so the boundary is inclusive.
const MalignantThreshold float32 = 0.5

// User-visible label and recommendation pairs for the two classes.
const (
	LabelMalignant = "Malignant (Cancerous)"
	LabelBenign    = "Benign (Non-Cancerous or First Stage)"

	RecommendationMalignant = "Consult a dermatologist immediately"
	RecommendationBenign    = "Regular monitoring recommended"
)

// Assessment is the result of classifying a single lesion image.
// It is produced fresh per analysis and supersedes any previous assessment.
type Assessment struct {
	// Score is the raw model output: probability of the malignant class in [0, 1].
	Score float32

	// Malignant is true when Score >= MalignantThreshold.
	Malignant bool

	// Confidence is the probability of the predicted class:
	// max(Score, 1-Score), so always >= 0.5.
	Confidence float32

	// Label is the user-visible class name.
	Label string

	// Recommendation is the user-visible follow-up advice for the class.
	Recommendation string
}

// Assess applies the decision rule to a raw model score.
func Assess(score float32) Assessment {
	malignant := score >= MalignantThreshold

	confidence := score
	label := LabelMalignant
	recommendation := RecommendationMalignant
	if !malignant {
		confidence = 1 - score
		label = LabelBenign
		recommendation = RecommendationBenign
	}

	return Assessment{
		Score:          score,
		Malignant:      malignant,
		Confidence:     confidence,
		Label:          label,
		Recommendation: recommendation,
	}
}

// ConfidencePercent formats the confidence as a percentage, e.g. "92.00%".
func (a Assessment) ConfidencePercent() string {
	return fmt.Sprintf("%.2f%%", a.Confidence*100)
}

// StatusLine returns the one-line summary shown in the status bar.
func (a Assessment) StatusLine() string {
	return fmt.Sprintf("Result: %s | %s", a.Label, a.Recommendation)
}
