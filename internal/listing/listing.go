package listing

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Getter resolves a named field of a record to its text value. The second
// return is false when the record has no value for that field.
type Getter[T any] func(record T, field string) (string, bool)

// Project filters and orders records for a list view without mutating the
// input. Filtering keeps records where any of the search fields contains the
// query, case-insensitive. Sorting is a stable single-key sort with
// collator-based comparison; records missing the sort key always sort last,
// whatever the direction.
func Project[T any](records []T, query string, searchFields []string, sortKey string, direction Direction, get Getter[T]) []T {
	result := make([]T, len(records))
	copy(result, records)

	if query != "" && len(searchFields) > 0 {
		needle := strings.ToLower(query)
		filtered := result[:0]
		for _, record := range result {
			for _, field := range searchFields {
				value, ok := get(record, field)
				if ok && strings.Contains(strings.ToLower(value), needle) {
					filtered = append(filtered, record)
					break
				}
			}
		}
		result = filtered
	}

	if sortKey != "" {
		collator := collate.New(language.Und)
		sort.SliceStable(result, func(i, j int) bool {
			a, aOK := get(result[i], sortKey)
			b, bOK := get(result[j], sortKey)
			// missing values sort last regardless of direction
			if !aOK || !bOK {
				return aOK && !bOK
			}
			cmp := collator.CompareString(a, b)
			if direction == Descending {
				cmp = -cmp
			}
			return cmp < 0
		})
	}

	return result
}

// SortState holds the active column sort of a list view.
type SortState struct {
	Key       string
	Direction Direction
}

// Toggle flips the direction when the key is already active and resets to
// ascending when a new key is selected.
func (s *SortState) Toggle(key string) {
	if s.Key == key {
		if s.Direction == Ascending {
			s.Direction = Descending
		} else {
			s.Direction = Ascending
		}
		return
	}
	s.Key = key
	s.Direction = Ascending
}
