package weather

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeReportsStoredDatapoints(t *testing.T) {
	st := newMemStore()
	for i := 0; i < 4; i++ {
		require.NoError(t, st.Append("Porto", Reading{Temperature: float64(i)}))
	}
	a := NewTrendAnalyzer(st, rand.New(rand.NewPCG(5, 5)))

	report := a.Analyze("Porto")
	assert.Equal(t, 4, report.Datapoints)
	assert.Equal(t, 0, a.Analyze("Faro").Datapoints)
}

func TestAnalyzeConfidenceBounds(t *testing.T) {
	a := NewTrendAnalyzer(newMemStore(), rand.New(rand.NewPCG(6, 6)))
	seen := make(map[Trend]bool)

	for i := 0; i < 500; i++ {
		report := a.Analyze("anywhere")
		assert.GreaterOrEqual(t, report.Confidence, MinConfidence)
		assert.LessOrEqual(t, report.Confidence, MaxConfidence)
		seen[report.Trend] = true
	}
	assert.Len(t, seen, 3)
}
