package binning

import (
	"fmt"
)

// WidthOptions - параметры равноширинного разбиения. Нулевое значение
// означает правостороннее закрытие, стандартный эпсилон и пропуск для
// значений вне диапазона.
type WidthOptions struct {
	Side       Side
	Epsilon    float64 // доля диапазона для расширения крайних границ
	OutOfRange OutOfRangePolicy
	Labels     []string
}

// EqualWidth разбивает ряд на корзины равной ширины (аналог pd.cut).
// BinSpec задает либо количество корзин (края выводятся из диапазона
// данных и расширяются по краям на эпсилон), либо явные границы,
// используемые как есть после проверки монотонности.
func EqualWidth(observations []float64, spec BinSpec, opts WidthOptions) (*Result, error) {
	side := opts.Side
	if side == "" {
		side = SideRight
	}

	var edges []float64
	switch {
	case spec.edges != nil:
		if err := validateBoundaries(spec.edges); err != nil {
			return nil, err
		}
		edges = make([]float64, len(spec.edges))
		copy(edges, spec.edges)
	default:
		if spec.count <= 0 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, spec.count)
		}
		minV, maxV, n := observedRange(observations)
		if n == 0 {
			return nil, fmt.Errorf("%w: no non-missing observations", ErrDegenerateRange)
		}
		if minV == maxV {
			return nil, fmt.Errorf("%w: min == max == %v", ErrDegenerateRange, minV)
		}
		epsilon := opts.Epsilon
		if epsilon == 0 {
			epsilon = DefaultEpsilon
		}
		width := (maxV - minV) / float64(spec.count)
		edges = make([]float64, spec.count+1)
		for i := range edges {
			edges[i] = minV + width*float64(i)
		}
		// последний край фиксируем на max, иначе накапливается ошибка округления
		edges[spec.count] = maxV
		delta := epsilon * (maxV - minV)
		edges[0] -= delta
		edges[spec.count] += delta
	}

	intervals := intervalLabels(edges, side)
	labels, err := attachLabels(intervals, opts.Labels)
	if err != nil {
		return nil, err
	}

	assignments, missing := assign(observations, edges, side, false, opts.OutOfRange)
	return &Result{
		Boundaries:  edges,
		Assignments: assignments,
		Intervals:   intervals,
		Labels:      labels,
		Side:        side,
		Missing:     missing,
	}, nil
}
