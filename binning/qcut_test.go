package binning

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualFrequencyQuartiles(t *testing.T) {
	observations := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	result, err := EqualFrequency(observations, 4, FrequencyOptions{})

	assert.NoError(t, err)
	assert.Equal(t, 4, result.Bins())
	assert.InDeltaSlice(t, []float64{1, 2.75, 4.5, 6.25, 8}, result.Boundaries, 1e-9)
	// по два наблюдения в каждой корзине
	assert.Equal(t, []int{2, 2, 2, 2}, result.Counts())
	// минимум лежит ровно на первом крае и попадает в нулевую корзину
	assert.Equal(t, 0, result.Assignments[0])
}

func TestEqualFrequencyCollapse(t *testing.T) {
	observations := []float64{1, 2, 2, 2, 3, 100}
	result, err := EqualFrequency(observations, 4, FrequencyOptions{})

	assert.NoError(t, err)
	// квантили 0/25/50/75/100: 1, 2, 2, 2.75, 100 - дубль схлопнулся
	assert.Equal(t, 3, result.Bins())
	assert.InDeltaSlice(t, []float64{1, 2, 2.75, 100}, result.Boundaries, 1e-9)
	assert.Equal(t, []int{0, 0, 0, 0, 2, 2}, result.Assignments)
	assert.Equal(t, []int{4, 0, 2}, result.Counts())
}

func TestEqualFrequencyStrict(t *testing.T) {
	observations := []float64{1, 2, 2, 2, 3, 100}
	_, err := EqualFrequency(observations, 4, FrequencyOptions{OnDuplicate: RaiseOnDuplicate})
	assert.ErrorIs(t, err, ErrDegenerateQuantile)

	// без дублей строгий режим работает как обычный
	result, err := EqualFrequency([]float64{1, 2, 3, 4, 5, 6, 7, 8}, 4, FrequencyOptions{OnDuplicate: RaiseOnDuplicate})
	assert.NoError(t, err)
	assert.Equal(t, 4, result.Bins())
}

func TestEqualFrequencyMissingValues(t *testing.T) {
	observations := []float64{1, math.NaN(), 2, 3, 4, math.NaN(), 5, 6, 7, 8}
	result, err := EqualFrequency(observations, 4, FrequencyOptions{})

	assert.NoError(t, err)
	// пропуски не участвуют в квантилях: края как для полного ряда 1..8
	assert.InDeltaSlice(t, []float64{1, 2.75, 4.5, 6.25, 8}, result.Boundaries, 1e-9)
	assert.Equal(t, MissingBin, result.Assignments[1])
	assert.Equal(t, MissingBin, result.Assignments[5])
	assert.Equal(t, 2, result.Missing)
}

func TestEqualFrequencyErrors(t *testing.T) {
	_, err := EqualFrequency([]float64{1, 2, 3}, 0, FrequencyOptions{})
	assert.ErrorIs(t, err, ErrInvalidCount)

	_, err = EqualFrequency([]float64{7, 7, 7}, 2, FrequencyOptions{})
	assert.ErrorIs(t, err, ErrDegenerateRange)

	_, err = EqualFrequency([]float64{math.NaN()}, 2, FrequencyOptions{})
	assert.ErrorIs(t, err, ErrDegenerateRange)
}

func TestEqualFrequencyDeterminism(t *testing.T) {
	observations := []float64{0.3, 12.5, 7.7, 3.2, 9.1, 5.5, 2.8, 11.4}
	first, err := EqualFrequency(observations, 3, FrequencyOptions{})
	assert.NoError(t, err)
	second, err := EqualFrequency(observations, 3, FrequencyOptions{})
	assert.NoError(t, err)

	assert.Equal(t, first.Boundaries, second.Boundaries)
	assert.Equal(t, first.Assignments, second.Assignments)
}

func TestQuantileInterpolation(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}
	assert.Equal(t, 1.0, quantile(sorted, 0))
	assert.Equal(t, 4.0, quantile(sorted, 1))
	assert.InDelta(t, 2.5, quantile(sorted, 0.5), 1e-9)
	assert.InDelta(t, 1.75, quantile(sorted, 0.25), 1e-9)
	assert.InDelta(t, 3.25, quantile(sorted, 0.75), 1e-9)
}
