package render

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errx "github.com/storefront-seo/microdata/internal/core/error"
	"github.com/storefront-seo/microdata/internal/microdata/memory"
	"github.com/storefront-seo/microdata/internal/microdata/model"
)

var fixedNow = func() time.Time { return time.Date(2024, time.June, 15, 9, 30, 0, 0, time.UTC) }

func productPage(p *model.Product) Page {
	return Page{
		Store:   model.Store{ID: "1", BaseURL: "https://shop.example/", CurrencyCode: "USD"},
		Product: p,
	}
}

func simpleProduct() *model.Product {
	return &model.Product{
		ID:               "7",
		Name:             "Trail Runner",
		SKU:              "TR-7",
		GTIN:             "0123456789012",
		MPN:              "MPN-7",
		ShortDescription: "Lightweight trail shoe",
		FinalPrice:       89.999,
		TypeID:           model.TypeSimple,
		Available:        true,
		URL:              "https://shop.example/trail-runner.html",
		Gallery:          []string{"https://cdn.example/tr-1.jpg", "https://cdn.example/tr-2.jpg"},
	}
}

func renderProduct(t *testing.T, p *model.Product, catalog model.ProductCatalog, reviews model.ReviewRepository, cfg ProductConfig) map[string]any {
	t.Helper()
	if cfg.Clock == nil {
		cfg.Clock = fixedNow
	}
	out, err := NewProduct(productPage(p), catalog, reviews, cfg).RenderJSON(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	return decode(t, out)
}

func TestProductNoProduct(t *testing.T) {
	r := NewProduct(productPage(nil), memory.NewCatalog(), memory.NewReviews(), ProductConfig{})

	assert.False(t, r.Display())
	out, err := r.RenderJSON(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestProductSimple(t *testing.T) {
	doc := renderProduct(t, simpleProduct(), memory.NewCatalog(), memory.NewReviews(), ProductConfig{})

	assert.Equal(t, "https://schema.org", doc["@context"])
	assert.Equal(t, "Product", doc["@type"])
	assert.Equal(t, "Trail Runner", doc["name"])
	assert.Equal(t, []any{"https://cdn.example/tr-1.jpg", "https://cdn.example/tr-2.jpg"}, doc["image"])
	assert.Equal(t, "Lightweight trail shoe", doc["description"])
	assert.Equal(t, "TR-7", doc["sku"])
	assert.Equal(t, "0123456789012", doc["gtin"])
	assert.Equal(t, "MPN-7", doc["mpn"])

	offers := array(t, doc["offers"])
	require.Len(t, offers, 1)
	offer := object(t, offers[0])
	assert.Equal(t, "Offer", offer["@type"])
	assert.Equal(t, "USD", offer["priceCurrency"])
	assert.Equal(t, "https://shop.example/trail-runner.html", offer["url"])
	assert.Equal(t, 90.0, offer["price"])
	assert.Equal(t, "2025-06-15", offer["priceValidUntil"])
	assert.Equal(t, "https://schema.org/InStock", offer["availability"])

	for _, key := range []string{"Brand", "brand", "aggregateRating", "review"} {
		assert.NotContains(t, doc, key)
	}
}

func TestProductOutOfStock(t *testing.T) {
	p := simpleProduct()
	p.Available = false
	doc := renderProduct(t, p, memory.NewCatalog(), memory.NewReviews(), ProductConfig{})

	offer := object(t, array(t, doc["offers"])[0])
	assert.Equal(t, "https://schema.org/OutOfStock", offer["availability"])
}

func TestProductOmitsEmptyOptionalFields(t *testing.T) {
	p := &model.Product{ID: "8", Name: "Bare", TypeID: model.TypeSimple, FinalPrice: 3}
	doc := renderProduct(t, p, memory.NewCatalog(), memory.NewReviews(), ProductConfig{})

	for _, key := range []string{"description", "sku", "gtin", "mpn"} {
		assert.NotContains(t, doc, key)
	}
	assert.Equal(t, []any{}, doc["image"])
}

func TestProductConfigurableAggregateOffer(t *testing.T) {
	catalog := memory.NewCatalog()
	parent := &model.Product{ID: "50", Name: "Jacket", TypeID: model.TypeConfigurable, URL: "https://shop.example/jacket.html"}
	catalog.AddProduct(*parent)
	catalog.AddVariants("50",
		model.Product{ID: "51", FinalPrice: 120},
		model.Product{ID: "52", FinalPrice: 99.9},
	)

	doc := renderProduct(t, parent, catalog, memory.NewReviews(), ProductConfig{})

	offers := array(t, doc["offers"])
	require.Len(t, offers, 1)
	offer := object(t, offers[0])
	assert.Equal(t, "AggregateOffer", offer["@type"])
	assert.Equal(t, 2.0, offer["offerCount"])
	assert.Equal(t, 99.9, offer["lowPrice"])
	assert.Equal(t, 120.0, offer["highPrice"])
	assert.Equal(t, "USD", offer["priceCurrency"])
}

func TestProductConfigurableWithoutVariants(t *testing.T) {
	catalog := memory.NewCatalog()
	parent := &model.Product{ID: "50", TypeID: model.TypeConfigurable}
	catalog.AddProduct(*parent)

	out, err := NewProduct(productPage(parent), catalog, memory.NewReviews(), ProductConfig{}).RenderJSON(context.Background())
	assert.ErrorIs(t, err, errx.ErrEmptyVariantSet)
	assert.Empty(t, out)
}

func TestProductManufacturerBrand(t *testing.T) {
	tests := []struct {
		name  string
		attrs map[string]string
		want  any
	}{
		{"acme", map[string]string{"manufacturer": "Acme"}, map[string]any{"@type": "Brand", "name": "Acme"}},
		{"no sentinel", map[string]string{"manufacturer": "No"}, nil},
		{"empty", map[string]string{"manufacturer": ""}, nil},
		{"missing", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := simpleProduct()
			p.Attributes = tt.attrs
			doc := renderProduct(t, p, memory.NewCatalog(), memory.NewReviews(), ProductConfig{})
			if tt.want == nil {
				assert.NotContains(t, doc, "Brand")
				return
			}
			assert.Equal(t, tt.want, doc["Brand"])
		})
	}
}

func TestProductConfiguredBrandAttribute(t *testing.T) {
	p := simpleProduct()
	p.Attributes = map[string]string{"manufacturer": "Acme", "product_brand": "Acme Outdoor"}

	doc := renderProduct(t, p, memory.NewCatalog(), memory.NewReviews(), ProductConfig{BrandAttribute: "product_brand"})
	assert.Equal(t, "Acme Outdoor", doc["brand"])
	assert.Equal(t, map[string]any{"@type": "Brand", "name": "Acme"}, doc["Brand"])

	doc = renderProduct(t, p, memory.NewCatalog(), memory.NewReviews(), ProductConfig{BrandAttribute: "unknown_code"})
	assert.NotContains(t, doc, "brand")

	doc = renderProduct(t, p, memory.NewCatalog(), memory.NewReviews(), ProductConfig{})
	assert.NotContains(t, doc, "brand")
}

func TestProductAggregateRating(t *testing.T) {
	tests := []struct {
		name      string
		summary   *model.ReviewSummary
		wantValue any
		wantCount any
	}{
		{"four and a half", &model.ReviewSummary{RatingSummary: 90, ReviewsCount: 12}, 4.5, 12.0},
		{"missing summary value defaults to one", &model.ReviewSummary{RatingSummary: 0, ReviewsCount: 2}, 1.0, 2.0},
		{"no reviews", &model.ReviewSummary{RatingSummary: 80, ReviewsCount: 0}, nil, nil},
		{"no summary", nil, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviews := memory.NewReviews()
			if tt.summary != nil {
				reviews.SetSummary("7", "1", *tt.summary)
			}
			doc := renderProduct(t, simpleProduct(), memory.NewCatalog(), reviews, ProductConfig{})
			if tt.wantValue == nil {
				assert.NotContains(t, doc, "aggregateRating")
				return
			}
			rating := object(t, doc["aggregateRating"])
			assert.Equal(t, "AggregateRating", rating["@type"])
			assert.Equal(t, "5", rating["bestRating"])
			assert.Equal(t, "1", rating["worstRating"])
			assert.Equal(t, tt.wantValue, rating["ratingValue"])
			assert.Equal(t, tt.wantCount, rating["reviewCount"])
		})
	}
}

func TestProductSummaryIsStoreScoped(t *testing.T) {
	reviews := memory.NewReviews()
	reviews.SetSummary("7", "2", model.ReviewSummary{RatingSummary: 100, ReviewsCount: 1})

	doc := renderProduct(t, simpleProduct(), memory.NewCatalog(), reviews, ProductConfig{})
	assert.NotContains(t, doc, "aggregateRating")
}

func TestProductReviewsLastVoteWins(t *testing.T) {
	reviews := memory.NewReviews()
	reviews.Add("7",
		model.Review{ID: "r1", Nickname: "ann", Votes: []model.ReviewVote{{Percent: 100}, {Percent: 40}}},
		model.Review{ID: "r2", Nickname: "bob"},
		model.Review{ID: "r3", Nickname: "cy", Votes: []model.ReviewVote{{Percent: 60}}},
	)

	doc := renderProduct(t, simpleProduct(), memory.NewCatalog(), reviews, ProductConfig{})

	list := array(t, doc["review"])
	require.Len(t, list, 2)

	first := object(t, list[0])
	assert.Equal(t, "Review", first["@type"])
	assert.Equal(t, map[string]any{"@type": "Rating", "bestRating": "5", "worstRating": "1", "ratingValue": 2.0}, first["reviewRating"])
	assert.Equal(t, map[string]any{"@type": "Person", "name": "ann"}, first["author"])

	second := object(t, list[1])
	assert.Equal(t, 3.0, object(t, second["reviewRating"])["ratingValue"])
	assert.Equal(t, "cy", object(t, second["author"])["name"])
}

func TestProductReviewsWithoutVotesOmitKey(t *testing.T) {
	reviews := memory.NewReviews()
	reviews.Add("7", model.Review{ID: "r1", Nickname: "ann"})

	doc := renderProduct(t, simpleProduct(), memory.NewCatalog(), reviews, ProductConfig{})
	assert.NotContains(t, doc, "review")
}

func TestProductLookupFailures(t *testing.T) {
	ctx := context.Background()

	_, err := NewProduct(productPage(simpleProduct()), memory.NewCatalog(), failingReviews{summaryErr: errBackend}, ProductConfig{}).RenderJSON(ctx)
	assert.ErrorIs(t, err, errBackend)

	_, err = NewProduct(productPage(simpleProduct()), memory.NewCatalog(), failingReviews{reviewsErr: errBackend}, ProductConfig{}).RenderJSON(ctx)
	assert.ErrorIs(t, err, errBackend)

	parent := &model.Product{ID: "50", TypeID: model.TypeConfigurable}
	_, err = NewProduct(productPage(parent), failingCatalog{variantErr: errBackend}, memory.NewReviews(), ProductConfig{}).RenderJSON(ctx)
	assert.ErrorIs(t, err, errBackend)
}

func TestProductDefaultClock(t *testing.T) {
	r := NewProduct(productPage(simpleProduct()), memory.NewCatalog(), memory.NewReviews(), ProductConfig{})
	out, err := r.RenderJSON(context.Background())
	require.NoError(t, err)

	offer := object(t, array(t, decode(t, out)["offers"])[0])
	want := time.Now().AddDate(0, 0, 365).Format(time.DateOnly)
	assert.Equal(t, want, offer["priceValidUntil"])
}
