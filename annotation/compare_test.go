package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareAveragesConfidence(t *testing.T) {
	user := []Annotation{testAnnotation("a"), testAnnotation("b")}
	ai := []AIAnnotation{
		{ID: "ai-1", Confidence: 0.8},
		{ID: "ai-2", Confidence: 0.6},
		{ID: "ai-3", Confidence: 0.7},
	}

	c := Compare(user, ai, 0.42)
	assert.Equal(t, 2, c.UserCount)
	assert.Equal(t, 3, c.AICount)
	assert.InDelta(t, 0.7, c.AverageConfidence, 1e-9)
	assert.InDelta(t, 0.42, c.SimilarityScore, 1e-9)
}

func TestCompareEmptyAIListAveragesToZero(t *testing.T) {
	c := Compare([]Annotation{testAnnotation("a")}, nil, 0.5)
	assert.Equal(t, 0, c.AICount)
	assert.Equal(t, 0.0, c.AverageConfidence)
}

func TestCompareClampsSimilarity(t *testing.T) {
	assert.Equal(t, 0.0, Compare(nil, nil, -0.3).SimilarityScore)
	assert.Equal(t, 1.0, Compare(nil, nil, 1.7).SimilarityScore)
}

func TestCompareLabelsExactMatchOnly(t *testing.T) {
	assert.True(t, CompareLabels("No DR", "No DR").Match)
	assert.False(t, CompareLabels("No DR", "no dr").Match)
	assert.False(t, CompareLabels("Diabetic retinopathy", "No DR").Match)
	assert.False(t, CompareLabels("", "No DR").Match)
}

func TestColorForMapping(t *testing.T) {
	assert.Equal(t, "#FFC107", ColorFor(SeverityMild))
	assert.Equal(t, "#FF9800", ColorFor(SeverityModerate))
	assert.Equal(t, "#F44336", ColorFor(SeveritySevere))
	assert.Equal(t, "#000000", ColorFor(Severity("bogus")))
}
