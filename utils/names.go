package utils

import "strings"

// articles stripped from the front of names when building ordering
// names. Matching is case-sensitive: "THE Witcher" keeps its article.
var articles = []string{"A ", "An ", "The "}

// CleanName strips a single leading English article from a name.
// Only the first article goes: "The A Team" becomes "A Team".
func CleanName(name string) string {
	for _, article := range articles {
		if strings.HasPrefix(name, article) {
			return name[len(article):]
		}
	}
	return name
}
