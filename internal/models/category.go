package models

// CategoryAll is a synthetic filter value meaning "no category filter".
// It is never a document's actual category.
const CategoryAll = "all"

// Categories is the closed set of valid document categories, in display order.
var Categories = []string{
	"getting-started",
	"ai-agents",
	"backend-database",
	"typescript-patterns",
}

var categoryTitles = map[string]string{
	"getting-started":     "Getting Started",
	"ai-agents":           "AI Agents",
	"backend-database":    "Backend & Database",
	"typescript-patterns": "TypeScript Patterns",
}

// ValidCategory reports whether c is a real document category.
func ValidCategory(c string) bool {
	_, ok := categoryTitles[c]
	return ok
}

// CategoryTitle returns the display name for a category, falling back to the
// raw value for anything outside the enumeration.
func CategoryTitle(c string) string {
	if t, ok := categoryTitles[c]; ok {
		return t
	}
	return c
}
