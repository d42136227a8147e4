// Package schema holds the schema.org JSON-LD shapes emitted by the storefront
// renderers. Field order matches the emitted key order; optional properties
// carry omitempty so that unset values are left out instead of being null.
package schema

const (
	Context = "https://schema.org"

	InStock    = "https://schema.org/InStock"
	OutOfStock = "https://schema.org/OutOfStock"

	BestRating  = "5"
	WorstRating = "1"
)

// ItemList is the category listing document.
type ItemList struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
}

// NewItemList wraps items in an ItemList. A nil slice is emitted as [].
func NewItemList(items []ListItem) ItemList {
	if items == nil {
		items = []ListItem{}
	}
	return ItemList{Context: Context, Type: "ItemList", ItemListElement: items}
}

type ListItem struct {
	Type     string      `json:"@type"`
	Position int         `json:"position"`
	Item     ListProduct `json:"item"`
}

// ListProduct is the product summary embedded in a ListItem. Offers is either
// an AggregateOffer object or a one-element []Offer.
type ListProduct struct {
	Type            string           `json:"@type"`
	Name            string           `json:"name,omitempty"`
	Image           []string         `json:"image"`
	Offers          any              `json:"offers,omitempty"`
	AggregateRating *AggregateRating `json:"aggregateRating,omitempty"`
	URL             string           `json:"url,omitempty"`
}

// Product is the product page document.
type Product struct {
	Context     string   `json:"@context"`
	Type        string   `json:"@type"`
	Name        string   `json:"name,omitempty"`
	Image       []string `json:"image"`
	Description string   `json:"description,omitempty"`
	SKU         string   `json:"sku,omitempty"`
	GTIN        string   `json:"gtin,omitempty"`
	MPN         string   `json:"mpn,omitempty"`
	Offers      []any    `json:"offers"`
	// Manufacturer is emitted under the capitalised "Brand" key, next to the
	// plain "brand" string resolved from the configured brand attribute.
	Manufacturer    *Brand           `json:"Brand,omitempty"`
	Brand           string           `json:"brand,omitempty"`
	AggregateRating *AggregateRating `json:"aggregateRating,omitempty"`
	Review          []Review         `json:"review,omitempty"`
}

type Offer struct {
	Type            string  `json:"@type"`
	PriceCurrency   string  `json:"priceCurrency,omitempty"`
	URL             string  `json:"url,omitempty"`
	Price           float64 `json:"price"`
	PriceValidUntil string  `json:"priceValidUntil,omitempty"`
	Availability    string  `json:"availability,omitempty"`
}

type AggregateOffer struct {
	Type          string  `json:"@type"`
	OfferCount    int     `json:"offerCount,omitempty"`
	LowPrice      float64 `json:"lowPrice"`
	HighPrice     float64 `json:"highPrice"`
	PriceCurrency string  `json:"priceCurrency,omitempty"`
}

type AggregateRating struct {
	Type        string  `json:"@type"`
	BestRating  string  `json:"bestRating"`
	WorstRating string  `json:"worstRating"`
	RatingValue float64 `json:"ratingValue"`
	ReviewCount int     `json:"reviewCount"`
}

// NewAggregateRating builds a 1-5 scale aggregate rating.
func NewAggregateRating(value float64, count int) *AggregateRating {
	return &AggregateRating{
		Type:        "AggregateRating",
		BestRating:  BestRating,
		WorstRating: WorstRating,
		RatingValue: value,
		ReviewCount: count,
	}
}

type Rating struct {
	Type        string `json:"@type"`
	BestRating  string `json:"bestRating"`
	WorstRating string `json:"worstRating"`
	RatingValue int    `json:"ratingValue"`
}

type Review struct {
	Type         string `json:"@type"`
	ReviewRating Rating `json:"reviewRating"`
	Author       Person `json:"author"`
}

type Person struct {
	Type string `json:"@type"`
	Name string `json:"name,omitempty"`
}

type Brand struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// OnlineStore is the organization document rendered next to the store logo.
type OnlineStore struct {
	Context              string            `json:"@context"`
	Type                 string            `json:"@type"`
	Name                 string            `json:"name,omitempty"`
	AlternateName        string            `json:"alternateName,omitempty"`
	LegalName            string            `json:"legalName,omitempty"`
	Description          string            `json:"description,omitempty"`
	URL                  string            `json:"url,omitempty"`
	Logo                 string            `json:"logo,omitempty"`
	Image                string            `json:"image,omitempty"`
	Email                string            `json:"email,omitempty"`
	Telephone            string            `json:"telephone,omitempty"`
	VatID                string            `json:"vatID,omitempty"`
	TaxID                string            `json:"taxID,omitempty"`
	ISO6523Code          string            `json:"iso6523Code,omitempty"`
	DUNS                 string            `json:"duns,omitempty"`
	GlobalLocationNumber string            `json:"globalLocationNumber,omitempty"`
	FoundingDate         string            `json:"foundingDate,omitempty"`
	ContactPoint         ContactPoint      `json:"contactPoint"`
	Address              PostalAddress     `json:"address"`
	AreaServed           Country           `json:"areaServed"`
	NumberOfEmployees    QuantitativeValue `json:"numberOfEmployees"`
	SameAs               []string          `json:"sameAs,omitempty"`
	AggregateRating      StoreRating       `json:"aggregateRating"`
}

type ContactPoint struct {
	Type              string   `json:"@type"`
	ContactType       string   `json:"contactType"`
	Telephone         string   `json:"telephone,omitempty"`
	Email             string   `json:"email,omitempty"`
	AreaServed        []string `json:"areaServed,omitempty"`
	AvailableLanguage string   `json:"availableLanguage,omitempty"`
}

type PostalAddress struct {
	Type            string `json:"@type"`
	StreetAddress   string `json:"streetAddress,omitempty"`
	AddressLocality string `json:"addressLocality,omitempty"`
	PostalCode      string `json:"postalCode,omitempty"`
	AddressRegion   string `json:"addressRegion,omitempty"`
	AddressCountry  string `json:"addressCountry,omitempty"`
}

type Country struct {
	Type string   `json:"@type"`
	Name []string `json:"name,omitempty"`
}

type QuantitativeValue struct {
	Type     string `json:"@type"`
	MinValue string `json:"minValue,omitempty"`
	MaxValue string `json:"maxValue,omitempty"`
}

// StoreRating is the fixed store-level rating block. Its values are
// configured text, not computed from reviews.
type StoreRating struct {
	Type        string `json:"@type"`
	BestRating  string `json:"bestRating"`
	WorstRating string `json:"worstRating"`
	RatingValue string `json:"ratingValue"`
	ReviewCount string `json:"reviewCount"`
	URL         string `json:"url,omitempty"`
}
