package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type row struct {
	Name string
	Kind string
	Note *string
}

func strPtr(s string) *string { return &s }

func rowGetter(r row, field string) (string, bool) {
	switch field {
	case "name":
		return r.Name, true
	case "kind":
		return r.Kind, true
	case "note":
		if r.Note == nil {
			return "", false
		}
		return *r.Note, true
	}
	return "", false
}

func TestProject_EmptyQuery_ShouldPreserveInputOrder(t *testing.T) {
	// given
	records := []row{{Name: "c"}, {Name: "a"}, {Name: "b"}}

	// when
	result := Project(records, "", []string{"name"}, "", Ascending, rowGetter)

	// then
	assert.Equal(t, records, result)
}

func TestProject_ShouldFilterCaseInsensitiveSubstring(t *testing.T) {
	// given
	records := []row{{Name: "Abcdef"}, {Name: "xyz"}}

	// when
	result := Project(records, "ABC", []string{"name"}, "", Ascending, rowGetter)

	// then
	assert.Equal(t, []row{{Name: "Abcdef"}}, result)
}

func TestProject_ShouldMatchAnySearchField(t *testing.T) {
	// given
	records := []row{
		{Name: "alpha", Kind: "frontend"},
		{Name: "beta", Kind: "backend"},
		{Name: "backend-utils", Kind: "tools"},
	}

	// when
	result := Project(records, "backend", []string{"name", "kind"}, "", Ascending, rowGetter)

	// then
	assert.Len(t, result, 2)
	assert.Equal(t, "beta", result[0].Name)
	assert.Equal(t, "backend-utils", result[1].Name)
}

func TestProject_ShouldSortAscendingWithMissingValuesLast(t *testing.T) {
	// given
	records := []row{
		{Name: "1", Note: strPtr("b")},
		{Name: "2"},
		{Name: "3", Note: strPtr("a")},
	}

	// when
	result := Project(records, "", nil, "note", Ascending, rowGetter)

	// then
	assert.Equal(t, "3", result[0].Name)
	assert.Equal(t, "1", result[1].Name)
	assert.Equal(t, "2", result[2].Name)
}

func TestProject_ShouldKeepMissingValuesLastOnDescending(t *testing.T) {
	// given
	records := []row{
		{Name: "1", Note: strPtr("b")},
		{Name: "2"},
		{Name: "3", Note: strPtr("a")},
	}

	// when
	result := Project(records, "", nil, "note", Descending, rowGetter)

	// then: defined values reversed, missing still last
	assert.Equal(t, "1", result[0].Name)
	assert.Equal(t, "3", result[1].Name)
	assert.Equal(t, "2", result[2].Name)
}

func TestProject_SortShouldBeStable(t *testing.T) {
	// given
	records := []row{
		{Name: "first", Kind: "same"},
		{Name: "second", Kind: "same"},
		{Name: "third", Kind: "same"},
	}

	// when
	result := Project(records, "", nil, "kind", Ascending, rowGetter)

	// then
	assert.Equal(t, "first", result[0].Name)
	assert.Equal(t, "second", result[1].Name)
	assert.Equal(t, "third", result[2].Name)
}

func TestProject_ShouldNotMutateInput(t *testing.T) {
	// given
	records := []row{{Name: "c"}, {Name: "a"}, {Name: "b"}}

	// when
	Project(records, "", nil, "name", Ascending, rowGetter)

	// then
	assert.Equal(t, []row{{Name: "c"}, {Name: "a"}, {Name: "b"}}, records)
}

func TestProject_ShouldFilterThenSort(t *testing.T) {
	// given
	records := []row{
		{Name: "banana", Kind: "fruit"},
		{Name: "carrot", Kind: "vegetable"},
		{Name: "apple", Kind: "fruit"},
	}

	// when
	result := Project(records, "fruit", []string{"kind"}, "name", Ascending, rowGetter)

	// then
	assert.Len(t, result, 2)
	assert.Equal(t, "apple", result[0].Name)
	assert.Equal(t, "banana", result[1].Name)
}

func TestSortState_Toggle(t *testing.T) {
	// given
	state := SortState{}

	// when/then: new key resets to ascending
	state.Toggle("name")
	assert.Equal(t, SortState{Key: "name", Direction: Ascending}, state)

	// same key flips direction
	state.Toggle("name")
	assert.Equal(t, SortState{Key: "name", Direction: Descending}, state)
	state.Toggle("name")
	assert.Equal(t, SortState{Key: "name", Direction: Ascending}, state)

	// switching keys resets direction
	state.Toggle("name")
	state.Toggle("kind")
	assert.Equal(t, SortState{Key: "kind", Direction: Ascending}, state)
}
