package normalize

import (
	"fmt"
	"math"

	"billa/fetcher/internal/domain"
)

// Normalizer turns raw upstream payloads into normalized records.
type Normalizer struct {
	filesURL string
}

func NewNormalizer(filesURL string) *Normalizer {
	return &Normalizer{
		filesURL: filesURL,
	}
}

// Products maps every search tile to one product record.
func (n *Normalizer) Products(search *domain.SearchResponse) []*domain.Product {
	products := make([]*domain.Product, 0, len(search.Tiles))

	for _, tile := range search.Tiles {
		products = append(products, n.product(tile))
	}

	return products
}

func (n *Normalizer) product(tile domain.Tile) *domain.Product {
	data := tile.Data
	product := domain.NewProduct()

	product.ID = data.ArticleID
	product.Title = data.Name
	product.Slug = data.Slug
	product.ImageURL = n.imageURL(data.ArticleID)
	product.Brand = data.Brand
	product.CategoryIDs = data.ArticleGroupIDs
	product.Price = minorUnits(data.Price.Normal)
	product.Sale = minorUnits(data.Price.Sale)
	product.Discount = discount(data)
	product.Available = true
	product.Description = append(product.Description, data.Description)
	product.Tags = tags(data)
	product.Details.RecommendedProductIDs = data.RecommendationArticleIDs

	return product
}

// minorUnits converts a decimal currency amount to whole cents, flooring
// rather than rounding (2.995 becomes 299).
func minorUnits(amount float64) int64 {
	return int64(math.Floor(amount * 100))
}

// discount builds the discount record from the price substructure. Items
// without any default or bulk-discount price types carry no discount. A bulk
// discount without explicit types gets the "AKTION" sentinel.
func discount(data domain.TileData) *domain.Discount {
	defaultPriceTypes := data.Price.DefaultPriceTypes
	bulkDiscountPriceTypes := data.Price.BulkDiscountPriceTypes

	if len(defaultPriceTypes) == 0 && len(bulkDiscountPriceTypes) == 0 {
		return nil
	}

	if len(defaultPriceTypes) == 0 {
		defaultPriceTypes = []string{"AKTION"}
	}

	return &domain.Discount{
		Types:          defaultPriceTypes,
		Conditions:     bulkDiscountPriceTypes,
		AdditionalInfo: data.Price.PriceAdditionalInfo.Vptxt,
	}
}

func (n *Normalizer) imageURL(articleID string) string {
	return fmt.Sprintf("%s/files/artikel/%s_01__600x600.jpg", n.filesURL, articleID)
}
