// Package listview filters and sorts the lists shown by hrctl. Results are
// recomputed from scratch on every call; inputs are never modified.
package listview

import (
	"strconv"
	"strings"

	"github.com/adamanr/hrdesk/internal/entity"
	"golang.org/x/text/cases"
)

// Record is anything whose string-valued fields can be searched and sorted.
type Record interface {
	StringFields() map[string]string
}

var folder = cases.Fold()

func fold(s string) string {
	return folder.String(s)
}

// Matches reports whether any string field of r contains query, ignoring case.
// An empty query matches everything.
func Matches(r Record, query string) bool {
	if query == "" {
		return true
	}

	needle := fold(query)
	for _, v := range r.StringFields() {
		if strings.Contains(fold(v), needle) {
			return true
		}
	}

	return false
}

// Search returns the records matching query.
func Search[T Record](items []T, query string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if Matches(item, query) {
			out = append(out, item)
		}
	}

	return out
}

// Query is the employee list filter as typed into the form.
type Query struct {
	Search       string
	Gender       string
	SalaryMin    string
	SalaryMax    string
	ShowInactive bool
}

func parseBound(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}

// Match applies every predicate of q to e.
func (q Query) Match(e entity.Employee) bool {
	if !q.ShowInactive && !e.IsActive() {
		return false
	}

	if q.Gender != "" && e.Gender != q.Gender {
		return false
	}

	if lo, ok := parseBound(q.SalaryMin); ok {
		if e.Salary == nil || *e.Salary < lo {
			return false
		}
	}

	if hi, ok := parseBound(q.SalaryMax); ok {
		if e.Salary == nil || *e.Salary > hi {
			return false
		}
	}

	return Matches(e, q.Search)
}

// Employees returns the employees matching q, sorted by s.
func Employees(items []entity.Employee, q Query, s Sort) []entity.Employee {
	out := make([]entity.Employee, 0, len(items))
	for _, e := range items {
		if q.Match(e) {
			out = append(out, e)
		}
	}

	return Apply(out, s)
}
