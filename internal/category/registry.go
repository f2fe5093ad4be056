// Package category holds recipe category metadata. The registry is an
// immutable value: updates return a new registry instead of mutating shared
// state, so a renderer holding an old registry never observes a half-applied
// settings change.
package category

// Category describes one recipe category.
type Category struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Emoji string `json:"emoji"`
}

// Registry is an ordered, immutable set of categories.
type Registry struct {
	categories []Category
	byKey      map[string]Category
}

// Default returns the built-in category set.
func Default() Registry {
	return NewRegistry([]Category{
		{Key: "sniadanie", Label: "Śniadanie", Emoji: "🍳"},
		{Key: "obiad", Label: "Obiad", Emoji: "🍲"},
		{Key: "kolacja", Label: "Kolacja", Emoji: "🥗"},
		{Key: "deser", Label: "Deser", Emoji: "🍰"},
		{Key: "przekaska", Label: "Przekąska", Emoji: "🥨"},
	})
}

// NewRegistry builds a registry from the given categories, keeping order and
// dropping duplicate keys (first occurrence wins).
func NewRegistry(categories []Category) Registry {
	r := Registry{byKey: make(map[string]Category, len(categories))}
	for _, c := range categories {
		if _, seen := r.byKey[c.Key]; seen {
			continue
		}
		r.byKey[c.Key] = c
		r.categories = append(r.categories, c)
	}
	return r
}

// Categories returns the categories in display order.
func (r Registry) Categories() []Category {
	out := make([]Category, len(r.categories))
	copy(out, r.categories)
	return out
}

// Lookup finds a category by key.
func (r Registry) Lookup(key string) (Category, bool) {
	c, ok := r.byKey[key]
	return c, ok
}

// WithCategories returns a NEW registry with the replacement set; the
// receiver is left untouched.
func (r Registry) WithCategories(categories []Category) Registry {
	return NewRegistry(categories)
}
