package normalize

import (
	"strings"

	"billa/fetcher/internal/domain"
)

// Categories flattens the navigation tree into a mapping keyed by article
// group id. The tree nests to exactly three levels; each child id is appended
// to its parent's SubcategoryIdentifiers right after the child is inserted,
// so every referenced id is always a key of the mapping.
func (n *Normalizer) Categories(nodes []domain.NavigationNode) map[string]*domain.Category {
	categories := make(map[string]*domain.Category)

	for _, node := range nodes {
		categories[node.ArticleGroupID] = newCategory(node, 1)

		for _, sub := range node.Children {
			categories[sub.ArticleGroupID] = newCategory(sub, 2)
			parent := categories[node.ArticleGroupID]
			parent.SubcategoryIdentifiers = append(parent.SubcategoryIdentifiers, sub.ArticleGroupID)

			for _, subsub := range sub.Children {
				categories[subsub.ArticleGroupID] = newCategory(subsub, 3)
				parent := categories[sub.ArticleGroupID]
				parent.SubcategoryIdentifiers = append(parent.SubcategoryIdentifiers, subsub.ArticleGroupID)
			}
		}
	}

	return categories
}

func newCategory(node domain.NavigationNode, depth int) *domain.Category {
	return &domain.Category{
		Identifier:             node.ArticleGroupID,
		Title:                  node.Title,
		Slug:                   segmentFromURL(node.URL, depth),
		SubcategoryIdentifiers: []string{},
	}
}

// segmentFromURL returns the path segment at the given index of the node URL,
// counting segments after the leading slash. The index equals the node's
// depth, a positional convention of the upstream URL structure. Out-of-range
// indexes yield "".
func segmentFromURL(url string, segment int) string {
	parts := strings.Split(strings.TrimPrefix(url, "/"), "/")
	if segment < 0 || segment >= len(parts) {
		return ""
	}
	return parts[segment]
}
