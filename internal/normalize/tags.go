package normalize

import "billa/fetcher/internal/domain"

// translator maps known upstream attribute and price-type codes to readable
// labels. Codes without an entry pass through as shop tags.
var translator = map[string]string{
	"s_bio":      "organic",
	"s_marke":    "brand",
	"s_gekuehlt": "cooled",
	"s_tiefgek":  "frozen",
	"s_guetesie": "seal of quality",
	"s_spezern":  "special diet",
	"s_herkunft": "country of origin",
	"s_hkland":   "country of origin",
	"s_regio":    "regional",
	"s_new":      "new",
	"mengemin":   "varying weight",
}

// tags classifies attribute codes first, then the vtc price-type codes, both
// in upstream order. Note the price types come from data.vtcPrice, not from
// the data.price substructure the discount derivation reads.
func tags(data domain.TileData) domain.Tags {
	result := domain.Tags{
		GeneralTags: []string{},
		ShopTags:    []string{},
	}

	for _, code := range data.Attributes {
		classify(&result, code)
	}
	for _, code := range data.VtcPrice.DefaultPriceTypes {
		classify(&result, code)
	}

	if data.VtcOnly {
		result.GeneralTags = append(result.GeneralTags, "online-shop only")
	}

	return result
}

func classify(result *domain.Tags, code string) {
	if tag, ok := translator[code]; ok {
		result.GeneralTags = append(result.GeneralTags, tag)
	} else {
		result.ShopTags = append(result.ShopTags, code)
	}
}
