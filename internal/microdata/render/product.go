package render

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	errx "github.com/storefront-seo/microdata/internal/core/error"
	"github.com/storefront-seo/microdata/internal/microdata/model"
	"github.com/storefront-seo/microdata/internal/microdata/schema"
	logx "github.com/storefront-seo/microdata/pkg/logger"
)

const (
	manufacturerAttribute = "manufacturer"
	// manufacturerUnset is the display value of an unset yes/no manufacturer option.
	manufacturerUnset = "No"
)

// ProductConfig holds the store settings the product renderer reads.
type ProductConfig struct {
	// BrandAttribute is the attribute code whose value fills "brand". Empty
	// disables it.
	BrandAttribute string
	// Clock defaults to time.Now.
	Clock func() time.Time
}

// Product renders the Product document of a product page.
type Product struct {
	page    Page
	catalog model.ProductCatalog
	reviews model.ReviewRepository
	cfg     ProductConfig
	log     zerolog.Logger
}

func NewProduct(page Page, catalog model.ProductCatalog, reviews model.ReviewRepository, cfg ProductConfig) *Product {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &Product{
		page:    page,
		catalog: catalog,
		reviews: reviews,
		cfg:     cfg,
		log:     logx.Component("product"),
	}
}

// Display reports whether the page has a current product.
func (r *Product) Display() bool {
	return r.page.Product != nil
}

func (r *Product) RenderJSON(ctx context.Context) (string, error) {
	if r.page.Product == nil {
		return "", nil
	}
	product := *r.page.Product

	offers, err := r.offers(ctx, product)
	if err != nil {
		return "", err
	}

	doc := schema.Product{
		Context:     schema.Context,
		Type:        "Product",
		Name:        product.Name,
		Image:       imageURLs(product),
		Description: product.ShortDescription,
		SKU:         product.SKU,
		GTIN:        product.GTIN,
		MPN:         product.MPN,
		Offers:      offers,
	}

	if v, ok := product.Attribute(manufacturerAttribute); ok && v != "" && v != manufacturerUnset {
		doc.Manufacturer = &schema.Brand{Type: "Brand", Name: v}
	}
	if code := r.cfg.BrandAttribute; code != "" {
		if v, ok := product.Attribute(code); ok {
			doc.Brand = v
		} else {
			r.log.Debug().Str("product", product.ID).Str("attribute", code).Msg("brand attribute not resolved")
		}
	}

	if doc.AggregateRating, err = r.aggregateRating(ctx, product); err != nil {
		return "", err
	}
	if doc.Review, err = r.productReviews(ctx, product); err != nil {
		return "", err
	}

	out, err := schema.Marshal(doc)
	if err != nil {
		r.log.Error().Err(err).Str("product", product.ID).Msg("failed to serialize product")
		return "", errx.WrapRender(err)
	}
	return out, nil
}

func (r *Product) offers(ctx context.Context, product model.Product) ([]any, error) {
	currency := r.page.Store.CurrencyCode
	if product.IsConfigurable() {
		offer, err := aggregateOffer(ctx, r.catalog, product, currency)
		if err != nil {
			r.log.Error().Err(err).Str("product", product.ID).Msg("failed to build aggregate offer")
			return nil, err
		}
		return []any{offer}, nil
	}

	return []any{schema.Offer{
		Type:            "Offer",
		PriceCurrency:   currency,
		URL:             product.URL,
		Price:           schema.RoundPrice(product.FinalPrice),
		PriceValidUntil: schema.PriceValidUntil(r.cfg.Clock()),
		Availability:    schema.Availability(product.Available),
	}}, nil
}

func (r *Product) aggregateRating(ctx context.Context, product model.Product) (*schema.AggregateRating, error) {
	summary, ok, err := r.reviews.Summary(ctx, product.ID, r.page.Store.ID)
	if err != nil {
		r.log.Error().Err(err).Str("product", product.ID).Msg("failed to load review summary")
		return nil, errx.WrapLookup(err, "review summary of product "+product.ID)
	}
	if !ok || summary.ReviewsCount <= 0 {
		return nil, nil
	}
	return schema.NewAggregateRating(schema.RatingValue(summary.RatingSummary), summary.ReviewsCount), nil
}

// productReviews pairs each review's rating with its author. The rating of a
// review with several votes is taken from its last vote; reviews without
// votes are left out.
func (r *Product) productReviews(ctx context.Context, product model.Product) ([]schema.Review, error) {
	reviews, err := r.reviews.ProductReviews(ctx, product.ID, r.page.Store.ID)
	if err != nil {
		r.log.Error().Err(err).Str("product", product.ID).Msg("failed to load reviews")
		return nil, errx.WrapLookup(err, "reviews of product "+product.ID)
	}

	var out []schema.Review
	for _, review := range reviews {
		if len(review.Votes) == 0 {
			continue
		}
		last := review.Votes[len(review.Votes)-1]
		out = append(out, schema.Review{
			Type: "Review",
			ReviewRating: schema.Rating{
				Type:        "Rating",
				BestRating:  schema.BestRating,
				WorstRating: schema.WorstRating,
				RatingValue: schema.Stars(last.Percent),
			},
			Author: schema.Person{Type: "Person", Name: review.Nickname},
		})
	}
	return out, nil
}
