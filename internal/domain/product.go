package domain

// Product is the normalized record built from one search tile. Price and Sale
// are minor currency units (cents), never decimal amounts.
type Product struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	ImageURL        string    `json:"imageUrl"`
	Brand           string    `json:"brand"`
	CategoryIDs     []string  `json:"categoryIds"`
	Amount          *Amount   `json:"amount"`
	Price           int64     `json:"price"`
	Sale            int64     `json:"sale"`
	Discount        *Discount `json:"discount"`
	Available       bool      `json:"available"`
	Description     []string  `json:"description"`
	Tags            Tags      `json:"tags"`
	SimilarProducts []string  `json:"similarProducts"`
	Details         Details   `json:"details"`
}

// Amount is a placeholder for future enrichment; both members stay nil.
type Amount struct {
	Weight *float64 `json:"weight"`
	Units  *string  `json:"units"`
}

// Discount is nil on products without any discount price types.
type Discount struct {
	Types          []string `json:"types"`
	Conditions     []string `json:"conditions"`
	AdditionalInfo string   `json:"additionalInfo"`
}

type Tags struct {
	GeneralTags []string `json:"generalTags"`
	ShopTags    []string `json:"shopTags"`
}

type Details struct {
	RecommendedProductIDs []string `json:"recommendedProductIds"`
}

// NewProduct returns a blank product record. The normalizer only fills
// fields, it never defines the shape.
func NewProduct() *Product {
	return &Product{
		Amount:          &Amount{},
		Description:     []string{},
		SimilarProducts: []string{},
	}
}
