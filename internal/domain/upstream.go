package domain

// NavigationNode is one node of the upstream category tree as served by
// /api/navigation. The tree nests to three levels; children below the third
// level are not part of the upstream schema.
type NavigationNode struct {
	ArticleGroupID string           `json:"articleGroupId"`
	Title          string           `json:"title"`
	URL            string           `json:"url"`
	Children       []NavigationNode `json:"children"`
}

// SearchResponse is the body of /api/search/full.
type SearchResponse struct {
	Tiles []Tile `json:"tiles"`
}

// Tile wraps one search result entry.
type Tile struct {
	Data TileData `json:"data"`
}

type TileData struct {
	ArticleID                string    `json:"articleId"`
	Name                     string    `json:"name"`
	Slug                     string    `json:"slug"`
	Brand                    string    `json:"brand"`
	Description              string    `json:"description"`
	ArticleGroupIDs          []string  `json:"articleGroupIds"`
	Attributes               []string  `json:"attributes"`
	VtcOnly                  bool      `json:"vtcOnly"`
	Price                    TilePrice `json:"price"`
	VtcPrice                 VtcPrice  `json:"vtcPrice"`
	RecommendationArticleIDs []string  `json:"recommendationArticleIds"`
}

// TilePrice carries decimal currency amounts and the discount price types.
// Its DefaultPriceTypes list is distinct from VtcPrice.DefaultPriceTypes and
// the two feed different derivations (discount vs tags).
type TilePrice struct {
	Normal                 float64             `json:"normal"`
	Sale                   float64             `json:"sale"`
	DefaultPriceTypes      []string            `json:"defaultPriceTypes"`
	BulkDiscountPriceTypes []string            `json:"bulkDiscountPriceTypes"`
	PriceAdditionalInfo    PriceAdditionalInfo `json:"priceAdditionalInfo"`
}

type PriceAdditionalInfo struct {
	Vptxt string `json:"vptxt"`
}

type VtcPrice struct {
	DefaultPriceTypes []string `json:"defaultPriceTypes"`
}
