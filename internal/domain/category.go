package domain

const DefaultCategoryColor = "#4ecdc4"

// Category labels todos. A nil UserID marks a global default category that
// every user can see and nobody can change.
type Category struct {
	ID     string  `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Color  string  `json:"color" yaml:"color"`
	UserID *string `json:"userId" yaml:"userId"`
}

// IsDefault reports whether c is one of the shared categories.
func (c Category) IsDefault() bool { return c.UserID == nil }

// DefaultCategories is the seed written on first initialisation.
func DefaultCategories() []Category {
	return []Category{
		{ID: "1", Name: "Work", Color: "#ff6b6b"},
		{ID: "2", Name: "Personal", Color: "#4ecdc4"},
		{ID: "3", Name: "Shopping", Color: "#45b7d1"},
		{ID: "4", Name: "Health", Color: "#96ceb4"},
	}
}
