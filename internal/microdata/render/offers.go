package render

import (
	"context"

	errx "github.com/storefront-seo/microdata/internal/core/error"
	"github.com/storefront-seo/microdata/internal/microdata/model"
	"github.com/storefront-seo/microdata/internal/microdata/schema"
)

// aggregateOffer builds the price range offer of a configurable product from
// its variants' final prices.
func aggregateOffer(ctx context.Context, catalog model.ProductCatalog, product model.Product, currency string) (schema.AggregateOffer, error) {
	variants, err := catalog.Variants(ctx, product.ID)
	if err != nil {
		return schema.AggregateOffer{}, errx.WrapLookup(err, "variants of product "+product.ID)
	}

	prices := make([]float64, 0, len(variants))
	for _, v := range variants {
		prices = append(prices, v.FinalPrice)
	}
	low, high, ok := schema.PriceRange(prices)
	if !ok {
		return schema.AggregateOffer{}, errx.EmptyVariantSet(product.ID)
	}

	return schema.AggregateOffer{
		Type:          "AggregateOffer",
		OfferCount:    len(variants),
		LowPrice:      low,
		HighPrice:     high,
		PriceCurrency: currency,
	}, nil
}

func imageURLs(product model.Product) []string {
	images := make([]string, 0, len(product.Gallery))
	for _, u := range product.Gallery {
		if u != "" {
			images = append(images, u)
		}
	}
	return images
}
