package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitLine(t *testing.T) {
	a, b := FitLine([]float64{1, 2, 3}, []float64{3, 5, 7})
	assert.InDelta(t, 1, a, 1e-12)
	assert.InDelta(t, 2, b, 1e-12)

	a, b = FitLine([]float64{2, 2}, []float64{1, 3})
	assert.Equal(t, 2.0, a)
	assert.Equal(t, 0.0, b)
}

func TestReport(t *testing.T) {
	r := NewAnalyticsService().Report()

	require.Len(t, r.D1, 3)
	assert.Equal(t, 6.0792, r.D1[0].Log10LAB)
	require.Len(t, r.D2, 3)
	require.Len(t, r.PHDynamics, 3)

	require.Len(t, r.Fits, 2)
	for _, fit := range r.Fits {
		require.Len(t, fit.Predicted.X, 100)
		assert.Equal(t, 1.0, fit.Predicted.X[0])
		assert.Equal(t, 10.0, fit.Predicted.X[99])
	}

	log := r.Fits[0]
	assert.Equal(t, "logarithmic", log.Model)
	assert.Equal(t, 4.7464, log.Intercept)
	assert.Equal(t, 0.4435, log.Slope)
	assert.InDelta(t, 0.9654, log.R2, 1e-4)
	// pH падает со временем: β > 0
	assert.Greater(t, log.Slope, 0.0)
	assert.InDelta(t, log.Intercept, log.Predicted.Y[0], 1e-3)

	hyp := r.Fits[1]
	assert.Equal(t, 3.8032, hyp.Intercept)
	assert.Equal(t, 1.0034, hyp.Slope)
	assert.Less(t, hyp.R2, log.R2)
	assert.InDelta(t, hyp.Intercept+hyp.Slope, hyp.Predicted.Y[0], 1e-3)
}
