package memory

import (
	"context"
	"fmt"

	"github.com/storefront-seo/microdata/internal/microdata/model"
)

// Config is a store-scoped configuration table. Values set for the default
// scope ("") apply to every store without an override.
type Config map[string]map[string]string

// Set stores a value for a path in a store scope.
func (c Config) Set(storeID, path, value string) {
	if c[storeID] == nil {
		c[storeID] = make(map[string]string)
	}
	c[storeID][path] = value
}

func (c Config) Value(path, storeID string) string {
	if v, ok := c[storeID][path]; ok {
		return v
	}
	return c[""][path]
}

// Variables is a table of custom variables keyed by code.
type Variables map[string]model.Variable

// Set stores a plain-text variable.
func (v Variables) Set(code, plain string) {
	v[code] = model.Variable{Code: code, PlainValue: plain}
}

func (v Variables) LoadByCode(ctx context.Context, code, storeID string) (model.Variable, error) {
	variable, ok := v[code]
	if !ok {
		return model.Variable{}, fmt.Errorf("variable %q: %w", code, ErrNotFound)
	}
	return variable, nil
}

// Logo is a layout block with a fixed logo source.
type Logo string

func (l Logo) LogoSrc() string { return string(l) }

// Layout is a set of named blocks.
type Layout map[string]model.Block

func (l Layout) Block(name string) (model.Block, bool) {
	b, ok := l[name]
	return b, ok
}

var (
	_ model.ConfigReader  = Config(nil)
	_ model.VariableStore = Variables(nil)
	_ model.Layout        = Layout(nil)
)
