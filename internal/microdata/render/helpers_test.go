package render

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/storefront-seo/microdata/internal/microdata/model"
)

var errBackend = errors.New("backend unavailable")

func decode(t *testing.T, out string) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	return doc
}

func object(t *testing.T, v any) map[string]any {
	t.Helper()
	m, ok := v.(map[string]any)
	require.True(t, ok, "expected JSON object, got %T", v)
	return m
}

func array(t *testing.T, v any) []any {
	t.Helper()
	a, ok := v.([]any)
	require.True(t, ok, "expected JSON array, got %T", v)
	return a
}

type failingCatalog struct {
	listErr    error
	variantErr error
	products   []model.Product
}

func (f failingCatalog) ProductsByCategory(ctx context.Context, categoryID string, page, pageSize int) ([]model.Product, error) {
	return f.products, f.listErr
}

func (f failingCatalog) Variants(ctx context.Context, productID string) ([]model.Product, error) {
	return nil, f.variantErr
}

type failingReviews struct {
	reviewsErr error
	summaryErr error
}

func (f failingReviews) ProductReviews(ctx context.Context, productID, storeID string) ([]model.Review, error) {
	return nil, f.reviewsErr
}

func (f failingReviews) Summary(ctx context.Context, productID, storeID string) (model.ReviewSummary, bool, error) {
	return model.ReviewSummary{}, false, f.summaryErr
}
