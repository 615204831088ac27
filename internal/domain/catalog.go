package domain

// Catalog is the assembled result of one fetch cycle. Category order follows
// map iteration and is unspecified.
type Catalog struct {
	Categories []*Category `json:"categories"`
	Products   []*Product  `json:"products"`
}
