package memory

import (
	"context"

	"github.com/storefront-seo/microdata/internal/microdata/model"
)

// Reviews stores reviews per product and summaries per product and store.
type Reviews struct {
	reviews   map[string][]model.Review
	summaries map[string]model.ReviewSummary
}

func NewReviews() *Reviews {
	return &Reviews{
		reviews:   make(map[string][]model.Review),
		summaries: make(map[string]model.ReviewSummary),
	}
}

// Add appends reviews to a product.
func (r *Reviews) Add(productID string, reviews ...model.Review) {
	r.reviews[productID] = append(r.reviews[productID], reviews...)
}

// SetSummary stores the summary of a product in a store.
func (r *Reviews) SetSummary(productID, storeID string, summary model.ReviewSummary) {
	r.summaries[summaryKey(productID, storeID)] = summary
}

func summaryKey(productID, storeID string) string {
	return storeID + "/" + productID
}

func (r *Reviews) ProductReviews(ctx context.Context, productID, storeID string) ([]model.Review, error) {
	return r.reviews[productID], nil
}

func (r *Reviews) Summary(ctx context.Context, productID, storeID string) (model.ReviewSummary, bool, error) {
	s, ok := r.summaries[summaryKey(productID, storeID)]
	return s, ok, nil
}

var _ model.ReviewRepository = (*Reviews)(nil)
