package listview

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Sort is the current sort column. An empty Field keeps the loaded order.
type Sort struct {
	Field     string
	Direction Direction
}

// Toggle flips the direction when field is already active, otherwise sorts
// ascending by field.
func (s Sort) Toggle(field string) Sort {
	if s.Field == field {
		if s.Direction == Asc {
			return Sort{Field: field, Direction: Desc}
		}
		return Sort{Field: field, Direction: Asc}
	}

	return Sort{Field: field, Direction: Asc}
}

func (s Sort) Reset() Sort {
	return Sort{}
}

// Tag selects the collation used for comparisons.
var Tag = language.Russian

// Apply returns a sorted copy of items. Only string fields take part in the
// comparison. Records missing the field go last in either direction and keep
// their relative order.
func Apply[T Record](items []T, s Sort) []T {
	out := slices.Clone(items)
	if out == nil {
		out = []T{}
	}
	if s.Field == "" {
		return out
	}

	col := collate.New(Tag, collate.IgnoreCase)
	slices.SortStableFunc(out, func(a, b T) int {
		av, aok := a.StringFields()[s.Field]
		bv, bok := b.StringFields()[s.Field]
		switch {
		case !aok && !bok:
			return 0
		case !aok:
			return 1
		case !bok:
			return -1
		}

		cmp := col.CompareString(av, bv)
		if s.Direction == Desc {
			return -cmp
		}
		return cmp
	})

	return out
}
