// Package entity defines the core business entities for the domain layer.
package entity

import "fmt"

// Category represents a transaction category in the Signance system.
// The set is closed: every transaction and budget belongs to exactly one
// of these five categories.
type Category string

const (
	CategoryFoods         Category = "foods"
	CategoryTransport     Category = "transport"
	CategoryEntertainment Category = "entertainment"
	CategoryEducation     Category = "education"
	CategoryOther         Category = "other"
)

// Categories returns all categories in their canonical order. Consumers that
// render positional output (dashboard bars, charts) rely on this order.
func Categories() []Category {
	return []Category{
		CategoryFoods,
		CategoryTransport,
		CategoryEntertainment,
		CategoryEducation,
		CategoryOther,
	}
}

// ParseCategory converts a string into a Category, rejecting values outside
// the closed set.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryFoods, CategoryTransport, CategoryEntertainment, CategoryEducation, CategoryOther:
		return Category(s), nil
	default:
		return "", fmt.Errorf("unknown category %q", s)
	}
}

// IsValid reports whether the category belongs to the closed set.
func (c Category) IsValid() bool {
	_, err := ParseCategory(string(c))
	return err == nil
}
