package model

const (
	// TypeSimple is a standalone purchasable product.
	TypeSimple = "simple"
	// TypeConfigurable is a parent product whose variants are child products.
	TypeConfigurable = "configurable"
)

// Category is the category resolved for the current listing page.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Product is a catalog product as resolved by the storefront.
type Product struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	SKU              string  `json:"sku"`
	GTIN             string  `json:"gtin,omitempty"`
	MPN              string  `json:"mpn,omitempty"`
	ShortDescription string  `json:"short_description,omitempty"`
	FinalPrice       float64 `json:"final_price"`
	TypeID           string  `json:"type_id"`
	Available        bool    `json:"available"`
	URL              string  `json:"url"`
	// Gallery holds media gallery image URLs in display order.
	Gallery []string `json:"gallery,omitempty"`
	// Attributes maps attribute codes to their resolved display value. A
	// missing code means the attribute does not exist or did not resolve.
	Attributes map[string]string `json:"attributes,omitempty"`
}

// IsConfigurable reports whether the product is a configurable parent.
func (p Product) IsConfigurable() bool {
	return p.TypeID == TypeConfigurable
}

// Attribute returns the display value of the given attribute code.
func (p Product) Attribute(code string) (string, bool) {
	if p.Attributes == nil {
		return "", false
	}
	v, ok := p.Attributes[code]
	return v, ok
}
