// Package binning разбивает непрерывные числовые ряды на дискретные
// упорядоченные интервалы: равной ширины (cut) или равной наполненности
// по квантилям (qcut). Пропуски во входном ряду помечаются NaN.
package binning

import (
	"fmt"
	"math"
	"sort"
)

// MissingBin - назначение для пропущенных и выпавших из диапазона значений.
const MissingBin = -1

// DefaultEpsilon - доля диапазона, на которую расширяются крайние границы
// при делении по количеству корзин, чтобы min и max не выпадали из
// полуоткрытых интервалов.
const DefaultEpsilon = 0.001

// Side определяет, с какой стороны интервалы закрыты.
type Side string

const (
	SideRight Side = "right" // (lo, hi]
	SideLeft  Side = "left"  // [lo, hi)
)

// OutOfRangePolicy - что делать со значениями вне явно заданных границ.
type OutOfRangePolicy string

const (
	OutOfRangeMissing OutOfRangePolicy = "missing"
	OutOfRangeClip    OutOfRangePolicy = "clip"
)

// DuplicatePolicy - поведение qcut при совпадающих квантильных границах.
type DuplicatePolicy string

const (
	CollapseDuplicates DuplicatePolicy = "collapse"
	RaiseOnDuplicate   DuplicatePolicy = "raise"
)

// BinSpec задает либо количество корзин, либо явные границы.
// Вариант выбирается конструктором, поля не экспортируются.
type BinSpec struct {
	count int
	edges []float64
}

// Count - разбить диапазон на n корзин равной ширины.
func Count(n int) BinSpec { return BinSpec{count: n} }

// Boundaries - использовать явные границы (дает неравные корзины,
// например возрастные группы 18-30-45-60-75).
func Boundaries(edges []float64) BinSpec {
	copied := make([]float64, len(edges))
	copy(copied, edges)
	return BinSpec{edges: copied}
}

// Result - результат одного разбиения. Не разделяет память со входным
// рядом, повторный вызов с теми же параметрами дает идентичный результат.
type Result struct {
	Boundaries  []float64 // строго возрастающие края, len = Bins()+1
	Assignments []int     // параллелен входу, MissingBin для пропусков
	Intervals   []string  // текстовые интервалы вида "(0.981, 5.750]"
	Labels      []string  // подписи корзин, по умолчанию равны Intervals
	Side        Side
	Missing     int // сколько наблюдений осталось без корзины
}

// Bins возвращает итоговое количество корзин.
func (r *Result) Bins() int { return len(r.Boundaries) - 1 }

// Counts считает наблюдения по корзинам.
func (r *Result) Counts() []int {
	counts := make([]int, r.Bins())
	for _, idx := range r.Assignments {
		if idx == MissingBin {
			continue
		}
		counts[idx]++
	}
	return counts
}

// LabelFor возвращает подпись корзины для i-го наблюдения, "" для пропуска.
func (r *Result) LabelFor(i int) string {
	idx := r.Assignments[i]
	if idx == MissingBin {
		return ""
	}
	return r.Labels[idx]
}

// validateBoundaries проверяет строгую монотонность явных границ.
func validateBoundaries(edges []float64) error {
	if len(edges) < 2 {
		return fmt.Errorf("%w: need at least 2 edges, got %d", ErrInvalidBoundary, len(edges))
	}
	for i, edge := range edges {
		if math.IsNaN(edge) {
			return fmt.Errorf("%w: edge %d is NaN", ErrInvalidBoundary, i)
		}
		if i > 0 && edges[i-1] >= edge {
			return fmt.Errorf("%w: edge %d (%v) <= edge %d (%v)", ErrInvalidBoundary, i, edge, i-1, edges[i-1])
		}
	}
	return nil
}

// observedRange возвращает min, max и количество непропущенных значений.
func observedRange(observations []float64) (minV, maxV float64, n int) {
	for _, v := range observations {
		if math.IsNaN(v) {
			continue
		}
		if n == 0 || v < minV {
			minV = v
		}
		if n == 0 || v > maxV {
			maxV = v
		}
		n++
	}
	return minV, maxV, n
}

// searchBin находит корзину для непропущенного значения бинарным поиском.
// includeLowest дополнительно кладет значение, равное первому краю, в
// нулевую корзину при правостороннем закрытии (нужно qcut, где края -
// точные квантили без расширения).
func searchBin(edges []float64, v float64, side Side, includeLowest bool) int {
	idx := sort.SearchFloat64s(edges, v)
	if side == SideLeft {
		// [lo, hi)
		if idx < len(edges) && edges[idx] == v {
			if idx == len(edges)-1 {
				return MissingBin
			}
			return idx
		}
		if idx == 0 || idx == len(edges) {
			return MissingBin
		}
		return idx - 1
	}
	// (lo, hi]
	if idx == 0 {
		if includeLowest && edges[0] == v {
			return 0
		}
		return MissingBin
	}
	if idx == len(edges) {
		return MissingBin
	}
	return idx - 1
}

// assign строит назначения для всего ряда; пропуски никогда не попадают
// в корзины.
func assign(observations []float64, edges []float64, side Side, includeLowest bool, outOfRange OutOfRangePolicy) ([]int, int) {
	assignments := make([]int, len(observations))
	missing := 0
	for i, v := range observations {
		if math.IsNaN(v) {
			assignments[i] = MissingBin
			missing++
			continue
		}
		idx := searchBin(edges, v, side, includeLowest)
		if idx == MissingBin && outOfRange == OutOfRangeClip {
			if v <= edges[0] {
				idx = 0
			} else {
				idx = len(edges) - 2
			}
		}
		if idx == MissingBin {
			missing++
		}
		assignments[i] = idx
	}
	return assignments, missing
}
