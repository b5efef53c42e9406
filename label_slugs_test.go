package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugifyLabels(t *testing.T) {
	slugs := SlugifyLabels([]string{"Young Adult", "Взрослые", "Senior (65+)"})
	assert.Equal(t, []string{"young_adult", "vzroslye", "senior_65"}, slugs)
}

func TestSlugifyLabelsDuplicates(t *testing.T) {
	slugs := SlugifyLabels([]string{"Q1", "Q1", "Q1"})
	assert.Equal(t, []string{"q1", "q1_1", "q1_2"}, slugs)
}

func TestSlugifyLabelsEmpty(t *testing.T) {
	slugs := SlugifyLabels([]string{"!!!", "ok"})
	assert.Equal(t, []string{"bin_1", "ok"}, slugs)
}

func TestParseLabels(t *testing.T) {
	assert.Equal(t, []string{"Низкий", "Средний", "Высокий"}, ParseLabels("Низкий, Средний, Высокий"))
	assert.Equal(t, []string{"a", "b", "c"}, ParseLabels("a,b , ,c"))
	assert.Nil(t, ParseLabels("   "))
	assert.Nil(t, ParseLabels(""))
}
