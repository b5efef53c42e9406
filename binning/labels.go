package binning

import (
	"fmt"
	"strconv"
)

// IntervalLabel форматирует один интервал: "(0.981, 5.750]" или
// "[0.981, 5.750)" в зависимости от стороны закрытия.
func IntervalLabel(lo, hi float64, side Side) string {
	if side == SideLeft {
		return fmt.Sprintf("[%s, %s)", formatEdge(lo), formatEdge(hi))
	}
	return fmt.Sprintf("(%s, %s]", formatEdge(lo), formatEdge(hi))
}

func intervalLabels(edges []float64, side Side) []string {
	labels := make([]string, len(edges)-1)
	for i := range labels {
		labels[i] = IntervalLabel(edges[i], edges[i+1], side)
	}
	return labels
}

// attachLabels проверяет пользовательские подписи против фактического
// (возможно уже схлопнутого) количества корзин. Ошибка до назначения,
// молча обрезать или дополнить подписи нельзя.
func attachLabels(intervals []string, labels []string) ([]string, error) {
	if labels == nil {
		return intervals, nil
	}
	if len(labels) != len(intervals) {
		return nil, fmt.Errorf("%w: %d labels for %d bins", ErrLabelCountMismatch, len(labels), len(intervals))
	}
	copied := make([]string, len(labels))
	copy(copied, labels)
	return copied, nil
}

func formatEdge(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
