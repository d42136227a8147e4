package model

// Store describes the store view the page is rendered for.
type Store struct {
	ID           string `json:"id"`
	BaseURL      string `json:"base_url"`
	CurrencyCode string `json:"currency_code"`
}

// Variable is a store-configurable custom variable.
type Variable struct {
	Code       string `json:"code"`
	PlainValue string `json:"plain_value,omitempty"`
	HTMLValue  string `json:"html_value,omitempty"`
}

// Value returns the plain value, falling back to the HTML value.
func (v Variable) Value() string {
	if v.PlainValue != "" {
		return v.PlainValue
	}
	return v.HTMLValue
}

// Block is a rendered layout block.
type Block interface {
	LogoSrc() string
}
