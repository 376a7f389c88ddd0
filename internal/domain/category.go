package domain

import "strings"

// Category is the topical tag attached to a shlok.
type Category string

const (
	CategoryKarma        Category = "karma"
	CategoryDharma       Category = "dharma"
	CategoryWisdom       Category = "wisdom"
	CategoryKnowledge    Category = "knowledge"
	CategoryDevotion     Category = "devotion"
	CategoryFriendship   Category = "friendship"
	CategoryTruth        Category = "truth"
	CategoryPerseverance Category = "perseverance"
)

// categories is the canonical order. Ties in usage resolve to the earlier entry.
var categories = []Category{
	CategoryKarma,
	CategoryDharma,
	CategoryWisdom,
	CategoryKnowledge,
	CategoryDevotion,
	CategoryFriendship,
	CategoryTruth,
	CategoryPerseverance,
}

// Categories returns all categories in canonical order. The slice is a copy.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryKarma, CategoryDharma, CategoryWisdom, CategoryKnowledge,
		CategoryDevotion, CategoryFriendship, CategoryTruth, CategoryPerseverance:
		return true
	}
	return false
}

// ParseCategory matches s case-insensitively against the known categories.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", false
	}
	return c, true
}
