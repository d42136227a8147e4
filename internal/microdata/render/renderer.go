// Package render builds the schema.org JSON-LD blocks of storefront pages.
//
// Each renderer is constructed for a single page render from a Page and the
// collaborators it reads from. Display reports whether the block applies to
// the page; RenderJSON returns "" when it does not.
package render

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/storefront-seo/microdata/internal/microdata/model"
)

// PageSize is the fixed number of products per category listing page.
const PageSize = 12

// Renderer is a structured-data block.
type Renderer interface {
	Display() bool
	RenderJSON(ctx context.Context) (string, error)
}

// Cacheable is implemented by renderers whose output may be cached by the
// host for CacheLifetime under CacheKey.
type Cacheable interface {
	Renderer
	CacheKey() string
	CacheLifetime() time.Duration
}

// Page is the request-scoped context a renderer works from. Category and
// Product are nil when the page has no current category or product.
type Page struct {
	Store    model.Store
	Category *model.Category
	Product  *model.Product
	Layout   model.Layout
	Query    url.Values
}

// CurrentPage returns the listing page number from the "p" query parameter.
func (p Page) CurrentPage() int {
	return PageFromQuery(p.Query)
}

// PageFromQuery parses the 1-based "p" query parameter. Missing, malformed
// and non-positive values yield 1.
func PageFromQuery(q url.Values) int {
	if q == nil {
		return 1
	}
	n, err := strconv.Atoi(q.Get("p"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
