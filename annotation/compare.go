package annotation

// Comparison Display statistics for the user set against the AI set. Reading
// a comparison never mutates either underlying list.
type Comparison struct {
	UserCount         int     `json:"userCount"`
	AICount           int     `json:"aiCount"`
	AverageConfidence float64 `json:"averageConfidence"`
	SimilarityScore   float64 `json:"similarityScore"`
}

// Compare Count both sets and average the AI confidences. An empty AI list
// averages to 0, never NaN. The similarity score is clamped into [0,1].
func Compare(user []Annotation, ai []AIAnnotation, similarity float64) Comparison {
	avg := 0.0
	if len(ai) > 0 {
		sum := 0.0
		for _, a := range ai {
			sum += a.Confidence
		}
		avg = sum / float64(len(ai))
	}
	if similarity < 0 {
		similarity = 0
	}
	if similarity > 1 {
		similarity = 1
	}
	return Comparison{
		UserCount:         len(user),
		AICount:           len(ai),
		AverageConfidence: avg,
		SimilarityScore:   similarity,
	}
}

// LabelComparison A manual global disease label against the AI-predicted one.
type LabelComparison struct {
	Manual    string `json:"manual"`
	Predicted string `json:"predicted"`
	Match     bool   `json:"match"`
}

// CompareLabels Exact, case-sensitive string equality. No fuzzy matching.
func CompareLabels(manual, predicted string) LabelComparison {
	return LabelComparison{
		Manual:    manual,
		Predicted: predicted,
		Match:     manual == predicted,
	}
}
