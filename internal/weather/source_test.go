package weather

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomSourceRanges(t *testing.T) {
	src := NewRandomSource("API1", rand.New(rand.NewPCG(42, 42)))
	seen := make(map[Condition]bool)

	for i := 0; i < 2000; i++ {
		r, err := src.Collect(context.Background(), "Maceió")
		require.NoError(t, err)

		assert.Equal(t, "Maceió", r.Location)
		assert.GreaterOrEqual(t, r.Temperature, MinTemperature)
		assert.LessOrEqual(t, r.Temperature, MaxTemperature)
		assert.GreaterOrEqual(t, r.Humidity, MinHumidity)
		assert.LessOrEqual(t, r.Humidity, MaxHumidity)
		assert.GreaterOrEqual(t, r.WindSpeed, 0.0)
		assert.LessOrEqual(t, r.WindSpeed, MaxWindSpeed)
		assert.Contains(t, GeneratedConditions, r.Condition)
		seen[r.Condition] = true
	}

	assert.Len(t, seen, len(GeneratedConditions))
	assert.False(t, seen[ConditionStormy])
}

func TestRandomSourceSeeded(t *testing.T) {
	a := NewRandomSource("a", rand.New(rand.NewPCG(9, 1)))
	b := NewRandomSource("b", rand.New(rand.NewPCG(9, 1)))

	for i := 0; i < 5; i++ {
		ra, _ := a.Collect(context.Background(), "Paris")
		rb, _ := b.Collect(context.Background(), "Paris")
		assert.Equal(t, ra, rb)
	}
	assert.Equal(t, "a", a.Name())
}
