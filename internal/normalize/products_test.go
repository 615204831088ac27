package normalize_test

import (
	"testing"

	"billa/fetcher/internal/domain"
	"billa/fetcher/internal/normalize"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tileFixture() domain.Tile {
	return domain.Tile{
		Data: domain.TileData{
			ArticleID:       "00-066742",
			Name:            "Bio Apfel Gala",
			Slug:            "bio-apfel-gala",
			Brand:           "Ja! Natürlich",
			Description:     "Knackiger Apfel aus Österreich",
			ArticleGroupIDs: []string{"B2-1-1-1"},
			Attributes:      []string{"s_bio"},
			Price: domain.TilePrice{
				Normal: 2.49,
				Sale:   1.99,
			},
			RecommendationArticleIDs: []string{"00-123456", "00-654321"},
		},
	}
}

func Test_Products_MapsTileFields(t *testing.T) {
	n := normalize.NewNormalizer("https://files.billa.at")

	products := n.Products(&domain.SearchResponse{Tiles: []domain.Tile{tileFixture()}})
	require.Len(t, products, 1)

	product := products[0]
	assert.Equal(t, "00-066742", product.ID)
	assert.Equal(t, "Bio Apfel Gala", product.Title)
	assert.Equal(t, "bio-apfel-gala", product.Slug)
	assert.Equal(t, "https://files.billa.at/files/artikel/00-066742_01__600x600.jpg", product.ImageURL)
	assert.Equal(t, "Ja! Natürlich", product.Brand)
	assert.Equal(t, []string{"B2-1-1-1"}, product.CategoryIDs)
	assert.Equal(t, int64(249), product.Price)
	assert.Equal(t, int64(199), product.Sale)
	assert.True(t, product.Available)
	assert.Equal(t, []string{"Knackiger Apfel aus Österreich"}, product.Description)
	assert.Equal(t, []string{"00-123456", "00-654321"}, product.Details.RecommendedProductIDs)
	assert.Empty(t, product.SimilarProducts)

	require.NotNil(t, product.Amount)
	assert.Nil(t, product.Amount.Weight)
	assert.Nil(t, product.Amount.Units)
}

func Test_Products_PriceFlooredToMinorUnits(t *testing.T) {
	tests := []struct {
		name     string
		normal   float64
		expected int64
	}{
		{name: "exact cents", normal: 2.49, expected: 249},
		{name: "floored not rounded", normal: 2.995, expected: 299},
		{name: "whole euros", normal: 1.00, expected: 100},
		{name: "zero", normal: 0, expected: 0},
	}

	n := normalize.NewNormalizer("https://files.billa.at")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tile := tileFixture()
			tile.Data.Price.Normal = tt.normal

			products := n.Products(&domain.SearchResponse{Tiles: []domain.Tile{tile}})
			require.Len(t, products, 1)
			assert.Equal(t, tt.expected, products[0].Price)
		})
	}
}

func Test_Products_SaleFlooredToMinorUnits(t *testing.T) {
	tests := []struct {
		name     string
		sale     float64
		expected int64
	}{
		// 1.99*100 is 199.00000000000003 in doubles; flooring keeps 199.
		{name: "float drift above the cent", sale: 1.99, expected: 199},
		{name: "floored not rounded", sale: 2.995, expected: 299},
		{name: "whole ten cents", sale: 0.80, expected: 80},
	}

	n := normalize.NewNormalizer("https://files.billa.at")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tile := tileFixture()
			tile.Data.Price.Sale = tt.sale

			products := n.Products(&domain.SearchResponse{Tiles: []domain.Tile{tile}})
			require.Len(t, products, 1)
			assert.Equal(t, tt.expected, products[0].Sale)
		})
	}
}

func Test_Products_DiscountRules(t *testing.T) {
	tests := []struct {
		name              string
		defaultPriceTypes []string
		bulkPriceTypes    []string
		additionalInfo    string
		expected          *domain.Discount
	}{
		{
			name:     "no price types means no discount",
			expected: nil,
		},
		{
			name:              "explicit default types",
			defaultPriceTypes: []string{"ABVERKAUF"},
			bulkPriceTypes:    []string{"AB 3 STK"},
			additionalInfo:    "je Stück",
			expected: &domain.Discount{
				Types:          []string{"ABVERKAUF"},
				Conditions:     []string{"AB 3 STK"},
				AdditionalInfo: "je Stück",
			},
		},
		{
			name:           "bulk only falls back to AKTION sentinel",
			bulkPriceTypes: []string{"AB 2 STK"},
			expected: &domain.Discount{
				Types:      []string{"AKTION"},
				Conditions: []string{"AB 2 STK"},
			},
		},
	}

	n := normalize.NewNormalizer("https://files.billa.at")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tile := tileFixture()
			tile.Data.Price.DefaultPriceTypes = tt.defaultPriceTypes
			tile.Data.Price.BulkDiscountPriceTypes = tt.bulkPriceTypes
			tile.Data.Price.PriceAdditionalInfo.Vptxt = tt.additionalInfo

			products := n.Products(&domain.SearchResponse{Tiles: []domain.Tile{tile}})
			require.Len(t, products, 1)
			assert.Equal(t, tt.expected, products[0].Discount)
		})
	}
}

func Test_Products_TagsReadVtcPriceNotPrice(t *testing.T) {
	// data.price.defaultPriceTypes feeds the discount, data.vtcPrice the tags.
	tile := tileFixture()
	tile.Data.Attributes = nil
	tile.Data.Price.DefaultPriceTypes = []string{"ABVERKAUF"}
	tile.Data.VtcPrice.DefaultPriceTypes = []string{"s_new"}

	n := normalize.NewNormalizer("https://files.billa.at")

	products := n.Products(&domain.SearchResponse{Tiles: []domain.Tile{tile}})
	require.Len(t, products, 1)

	product := products[0]
	assert.Equal(t, []string{"new"}, product.Tags.GeneralTags)
	assert.Empty(t, product.Tags.ShopTags, "discount price types must not leak into tags")
	require.NotNil(t, product.Discount)
	assert.Equal(t, []string{"ABVERKAUF"}, product.Discount.Types)
}

func Test_Products_EmptySearch(t *testing.T) {
	n := normalize.NewNormalizer("https://files.billa.at")

	products := n.Products(&domain.SearchResponse{})
	assert.Empty(t, products)
}
