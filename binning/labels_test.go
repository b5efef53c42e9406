package binning

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratedIntervalLabels(t *testing.T) {
	result, err := EqualWidth([]float64{1, 5, 10, 15, 20}, Count(4), WidthOptions{})
	assert.NoError(t, err)

	assert.Equal(t, []string{
		"(0.981, 5.750]",
		"(5.750, 10.500]",
		"(10.500, 15.250]",
		"(15.250, 20.019]",
	}, result.Labels)
	assert.Equal(t, result.Intervals, result.Labels)
}

func TestCallerLabels(t *testing.T) {
	ages := []float64{18, 25, 33, 47, 61, 74}
	labels := []string{"Young Adult", "Adult", "Middle Age", "Senior"}
	result, err := EqualWidth(ages, Boundaries([]float64{18, 30, 45, 60, 75}), WidthOptions{
		Side:   SideLeft,
		Labels: labels,
	})

	assert.NoError(t, err)
	assert.Equal(t, labels, result.Labels)
	assert.Equal(t, "Young Adult", result.LabelFor(0))
	assert.Equal(t, "Senior", result.LabelFor(5))
	// интервалы остаются доступными отдельно от подписей
	assert.Equal(t, "[30.000, 45.000)", result.Intervals[1])
}

func TestLabelCountMismatch(t *testing.T) {
	_, err := EqualWidth([]float64{1, 5, 10, 15, 20}, Count(3), WidthOptions{
		Labels: []string{"Low", "High"},
	})
	assert.ErrorIs(t, err, ErrLabelCountMismatch)
}

func TestLabelCountCheckedAfterCollapse(t *testing.T) {
	observations := []float64{1, 2, 2, 2, 3, 100}

	// четыре подписи на четыре запрошенные группы, но корзин осталось три
	_, err := EqualFrequency(observations, 4, FrequencyOptions{
		Labels: []string{"Q1", "Q2", "Q3", "Q4"},
	})
	assert.ErrorIs(t, err, ErrLabelCountMismatch)

	// подписи под фактическое количество корзин проходят
	result, err := EqualFrequency(observations, 4, FrequencyOptions{
		Labels: []string{"Low", "Mid", "High"},
	})
	assert.NoError(t, err)
	assert.Equal(t, "High", result.LabelFor(5))
}

func TestIntervalLabelSides(t *testing.T) {
	assert.Equal(t, "(1.000, 2.500]", IntervalLabel(1, 2.5, SideRight))
	assert.Equal(t, "[1.000, 2.500)", IntervalLabel(1, 2.5, SideLeft))
}

func TestCallerLabelsCopied(t *testing.T) {
	labels := []string{"a", "b"}
	result, err := EqualWidth([]float64{1, 2, 3, 4}, Count(2), WidthOptions{Labels: labels})
	assert.NoError(t, err)

	labels[0] = "mutated"
	assert.Equal(t, "a", result.Labels[0])
}
