package model

import "context"

// ProductCatalog loads products for listing pages and variant pricing.
type ProductCatalog interface {
	// ProductsByCategory returns one page (1-based) of products in the category.
	ProductsByCategory(ctx context.Context, categoryID string, page, pageSize int) ([]Product, error)

	// Variants returns the child products of a configurable product.
	Variants(ctx context.Context, productID string) ([]Product, error)
}

// ReviewRepository loads approved reviews and review summaries.
type ReviewRepository interface {
	// ProductReviews returns the reviews of a product with their votes loaded.
	ProductReviews(ctx context.Context, productID, storeID string) ([]Review, error)

	// Summary returns the store-scoped summary. ok is false when none exists.
	Summary(ctx context.Context, productID, storeID string) (summary ReviewSummary, ok bool, err error)
}

// ConfigReader reads store-scoped configuration values by path, for example
// "general/store_information/name". Unset paths yield "".
type ConfigReader interface {
	Value(path, storeID string) string
}

// VariableStore loads custom variables by code.
type VariableStore interface {
	LoadByCode(ctx context.Context, code, storeID string) (Variable, error)
}

// Directory resolves region ids and country codes to display names.
type Directory interface {
	RegionName(ctx context.Context, regionID string) (string, error)
	CountryName(ctx context.Context, countryCode string) (string, error)
}

// Layout gives access to the blocks of the page being rendered.
type Layout interface {
	Block(name string) (Block, bool)
}
