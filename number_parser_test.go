package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSeries(t *testing.T) {
	numbers := ExtractSeries("1 2 3.5 -4")
	assert.Equal(t, []float64{1, 2, 3.5, -4}, numbers)
}

func TestExtractSeriesSeparators(t *testing.T) {
	assert.Equal(t, []float64{1, 2, 3}, ExtractSeries("1,2,3"))
	assert.Equal(t, []float64{1, 2, 3}, ExtractSeries("1;2;3"))
	assert.Equal(t, []float64{1, 2, 3}, ExtractSeries("1\n2\n3"))
}

func TestExtractSeriesMissingTokens(t *testing.T) {
	series := ExtractSeries("1 nan 3 NULL none NA - 8")
	assert.Equal(t, 8, len(series))
	assert.Equal(t, 1.0, series[0])
	assert.True(t, math.IsNaN(series[1]))
	assert.True(t, math.IsNaN(series[3]))
	assert.True(t, math.IsNaN(series[4]))
	assert.True(t, math.IsNaN(series[5]))
	assert.True(t, math.IsNaN(series[6]))
	assert.Equal(t, 8.0, series[7])
	assert.Equal(t, 5, CountMissing(series))
}

func TestExtractSeriesNoNumbers(t *testing.T) {
	assert.Empty(t, ExtractSeries("привет, проанализируй мои данные"))
}
