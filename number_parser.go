// number_parser.go
package main

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pivolan/go_utils"
)

// Токены, которые считаем пропуском значения
var missingTokens = []string{"nan", "null", "none", "na", "-"}

var numberRe = regexp.MustCompile(`-?\d*\.?\d+`)

// ExtractSeries извлекает числа из текста, поддерживая различные разделители.
// Токены вида nan/null/none/na/- превращаются в NaN, чтобы пропуски доехали
// до движка разбиения, а не потерялись при разборе.
func ExtractSeries(text string) []float64 {
	// Заменяем запятые, точки с запятой и переносы строк на пробелы
	text = strings.ReplaceAll(text, ",", " ")
	text = strings.ReplaceAll(text, ";", " ")
	text = strings.ReplaceAll(text, "\n", " ")

	series := make([]float64, 0)
	for _, token := range strings.Fields(text) {
		if go_utils.InArray(strings.ToLower(token), missingTokens) {
			series = append(series, math.NaN())
			continue
		}
		for _, match := range numberRe.FindAllString(token, -1) {
			if num, err := strconv.ParseFloat(match, 64); err == nil {
				series = append(series, num)
			}
		}
	}
	return series
}

// CountMissing считает NaN в ряду.
func CountMissing(series []float64) int {
	count := 0
	for _, v := range series {
		if math.IsNaN(v) {
			count++
		}
	}
	return count
}
