package binning

import (
	"fmt"
	"math"
	"sort"
)

// FrequencyOptions - параметры квантильного разбиения. По умолчанию
// совпавшие границы схлопываются: на перекошенных данных (много нулей)
// это обычная ситуация, а не ошибка.
type FrequencyOptions struct {
	OnDuplicate DuplicatePolicy
	Labels      []string
}

// EqualFrequency разбивает ряд на groups корзин равной наполненности по
// квантилям (аналог pd.qcut). Пропуски не участвуют в расчете квантилей
// и получают MissingBin. Итоговых корзин может оказаться меньше
// запрошенных, если границы схлопнулись.
func EqualFrequency(observations []float64, groups int, opts FrequencyOptions) (*Result, error) {
	if groups <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, groups)
	}
	policy := opts.OnDuplicate
	if policy == "" {
		policy = CollapseDuplicates
	}

	sorted := make([]float64, 0, len(observations))
	for _, v := range observations {
		if !math.IsNaN(v) {
			sorted = append(sorted, v)
		}
	}
	if len(sorted) == 0 {
		return nil, fmt.Errorf("%w: no non-missing observations", ErrDegenerateRange)
	}
	sort.Float64s(sorted)
	if sorted[0] == sorted[len(sorted)-1] {
		return nil, fmt.Errorf("%w: min == max == %v", ErrDegenerateRange, sorted[0])
	}

	edges := make([]float64, 0, groups+1)
	duplicates := 0
	for i := 0; i <= groups; i++ {
		edge := quantile(sorted, float64(i)/float64(groups))
		if i > 0 && edge == edges[len(edges)-1] {
			duplicates++
			continue
		}
		edges = append(edges, edge)
	}
	if duplicates > 0 && policy == RaiseOnDuplicate {
		return nil, fmt.Errorf("%w: %d of %d edges coincide", ErrDegenerateQuantile, duplicates, groups+1)
	}

	intervals := intervalLabels(edges, SideRight)
	labels, err := attachLabels(intervals, opts.Labels)
	if err != nil {
		return nil, err
	}

	// края - точные квантили, минимум лежит ровно на первом крае,
	// поэтому нулевая корзина закрыта с обеих сторон
	assignments, missing := assign(observations, edges, SideRight, true, OutOfRangeMissing)
	return &Result{
		Boundaries:  edges,
		Assignments: assignments,
		Intervals:   intervals,
		Labels:      labels,
		Side:        SideRight,
		Missing:     missing,
	}, nil
}

// quantile - линейная интерполяция между порядковыми статистиками,
// позиция q*(n-1) и доля дробной части, как в numpy.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	pos := q * float64(len(sorted)-1)
	floor := math.Floor(pos)
	ceil := math.Ceil(pos)
	if floor == ceil {
		return sorted[int(pos)]
	}
	lower := sorted[int(floor)]
	upper := sorted[int(ceil)]
	fraction := pos - floor
	return lower + fraction*(upper-lower)
}
