// label_slugs.go
package main

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
)

func replaceSpecialSymbols(input string) string {
	// Replace all non-alphanumeric characters with underscores
	re := regexp.MustCompile("[^a-zA-Z0-9]+")
	processedString := re.ReplaceAllString(input, "_")

	// Replace any consecutive underscores with a single underscore
	processedString = strings.ReplaceAll(processedString, "__", "_")

	// Remove any underscores at the beginning or end of the string
	processedString = strings.Trim(processedString, "_")

	return processedString
}

// SlugifyLabels превращает подписи корзин в латинские слаги для команд
// вида /dist_<slug>. Кириллица транслитерируется, дубликаты получают
// числовой суффикс.
func SlugifyLabels(labels []string) []string {
	slugs := make([]string, len(labels))
	seen := map[string]int{}

	for i, label := range labels {
		slug := strings.ToLower(replaceSpecialSymbols(unidecode.Unidecode(label)))
		if slug == "" {
			slug = fmt.Sprintf("bin_%d", i+1)
		}

		originalSlug := slug
		counter := 1
		// Пока находим дубликаты, добавляем счетчик к имени
		for {
			if _, exists := seen[slug]; exists {
				slug = fmt.Sprintf("%s_%d", originalSlug, counter)
				counter++
			} else {
				seen[slug] = 1
				break
			}
		}
		slugs[i] = slug
	}
	return slugs
}

// ParseLabels разбирает аргумент команды /labels: подписи через запятую.
func ParseLabels(args string) []string {
	labels := make([]string, 0)
	for _, part := range strings.Split(args, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			labels = append(labels, part)
		}
	}
	if len(labels) == 0 {
		return nil
	}
	return labels
}
