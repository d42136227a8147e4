package render

import (
	"context"

	"github.com/rs/zerolog"
	errx "github.com/storefront-seo/microdata/internal/core/error"
	"github.com/storefront-seo/microdata/internal/microdata/model"
	"github.com/storefront-seo/microdata/internal/microdata/schema"
	logx "github.com/storefront-seo/microdata/pkg/logger"
)

// CategoryProducts renders the ItemList of the current category page.
type CategoryProducts struct {
	page    Page
	catalog model.ProductCatalog
	reviews model.ReviewRepository
	log     zerolog.Logger
}

func NewCategoryProducts(page Page, catalog model.ProductCatalog, reviews model.ReviewRepository) *CategoryProducts {
	return &CategoryProducts{
		page:    page,
		catalog: catalog,
		reviews: reviews,
		log:     logx.Component("category_products"),
	}
}

// Display reports whether the page has a current category.
func (r *CategoryProducts) Display() bool {
	return r.page.Category != nil
}

func (r *CategoryProducts) RenderJSON(ctx context.Context) (string, error) {
	category := r.page.Category
	if category == nil {
		return "", nil
	}

	currentPage := r.page.CurrentPage()
	products, err := r.catalog.ProductsByCategory(ctx, category.ID, currentPage, PageSize)
	if err != nil {
		r.log.Error().Err(err).Str("category", category.ID).Int("page", currentPage).Msg("failed to load category products")
		return "", errx.WrapLookup(err, "products of category "+category.ID)
	}

	items := make([]schema.ListItem, 0, len(products))
	position := (currentPage-1)*PageSize + 1
	for _, product := range products {
		item, err := r.listProduct(ctx, product)
		if err != nil {
			return "", err
		}
		items = append(items, schema.ListItem{
			Type:     "ListItem",
			Position: position,
			Item:     item,
		})
		position++
	}

	out, err := schema.Marshal(schema.NewItemList(items))
	if err != nil {
		r.log.Error().Err(err).Str("category", category.ID).Msg("failed to serialize item list")
		return "", errx.WrapRender(err)
	}
	r.log.Debug().Str("category", category.ID).Int("page", currentPage).Int("items", len(items)).Msg("rendered category item list")
	return out, nil
}

func (r *CategoryProducts) listProduct(ctx context.Context, product model.Product) (schema.ListProduct, error) {
	currency := r.page.Store.CurrencyCode
	item := schema.ListProduct{
		Type:  "Product",
		Name:  product.Name,
		Image: imageURLs(product),
		URL:   product.URL,
	}

	if !product.IsConfigurable() {
		item.Offers = []schema.Offer{{
			Type:          "Offer",
			Price:         schema.RoundPrice(product.FinalPrice),
			PriceCurrency: currency,
		}}
		return item, nil
	}

	offer, err := aggregateOffer(ctx, r.catalog, product, currency)
	if err != nil {
		r.log.Error().Err(err).Str("product", product.ID).Msg("failed to build aggregate offer")
		return item, err
	}
	// The listing omits the offer count shown on the product page.
	offer.OfferCount = 0
	item.Offers = offer

	rating, err := r.aggregateRating(ctx, product)
	if err != nil {
		return item, err
	}
	item.AggregateRating = rating
	return item, nil
}

// aggregateRating averages, over all reviews of the product, the sum of the
// stars of each review's votes. It returns nil when there are no reviews.
func (r *CategoryProducts) aggregateRating(ctx context.Context, product model.Product) (*schema.AggregateRating, error) {
	reviews, err := r.reviews.ProductReviews(ctx, product.ID, r.page.Store.ID)
	if err != nil {
		r.log.Error().Err(err).Str("product", product.ID).Msg("failed to load reviews")
		return nil, errx.WrapLookup(err, "reviews of product "+product.ID)
	}
	if len(reviews) == 0 {
		return nil, nil
	}

	total := 0
	for _, review := range reviews {
		for _, vote := range review.Votes {
			total += schema.Stars(vote.Percent)
		}
	}
	value := schema.RoundRating(float64(total) / float64(len(reviews)))
	return schema.NewAggregateRating(value, len(reviews)), nil
}
