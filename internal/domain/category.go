package domain

// Category is one flattened article group. SubcategoryIdentifiers holds the
// ids of its direct children; every referenced id is itself a key in the
// mapping built by the normalizer.
type Category struct {
	Identifier             string   `json:"identifier"`
	Title                  string   `json:"title"`
	Slug                   string   `json:"slug"`
	SubcategoryIdentifiers []string `json:"subcategoryIdentifiers"`
}
