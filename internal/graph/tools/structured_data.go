package tools

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"

	"github.com/storefront-seo/microdata/internal/microdata/cache"
	"github.com/storefront-seo/microdata/internal/microdata/model"
	"github.com/storefront-seo/microdata/internal/microdata/render"
	logx "github.com/storefront-seo/microdata/pkg/logger"
)

const (
	ToolProductStructuredData  = "get_product_structured_data"
	ToolCategoryStructuredData = "get_category_structured_data"
	ToolStoreStructuredData    = "get_store_structured_data"
)

// Catalog is the product source the tools look pages up in.
type Catalog interface {
	model.ProductCatalog
	Product(id string) (*model.Product, bool)
	Category(id string) (*model.Category, bool)
}

// StoreView is a store with the layout its pages are rendered with.
type StoreView struct {
	Store  model.Store
	Layout model.Layout
}

// Storefront bundles everything the structured-data tools render from.
type Storefront struct {
	Catalog   Catalog
	Reviews   model.ReviewRepository
	Config    model.ConfigReader
	Variables model.VariableStore
	Directory model.Directory
	Stores    map[string]StoreView
	// DefaultStore is used when a call omits store_id.
	DefaultStore string
	Product      render.ProductConfig
	// Cache is optional. When set, cacheable documents go through it.
	Cache *cache.RedisCache
}

// StructuredDataOutput is the result of every structured-data tool.
type StructuredDataOutput struct {
	Type    string `json:"type"`
	StoreID string `json:"store_id"`
	Display bool   `json:"display"`
	JSONLD  string `json:"json_ld,omitempty"`
}

func (s *Storefront) store(id string) (StoreView, error) {
	if id == "" {
		id = s.DefaultStore
	}
	view, ok := s.Stores[id]
	if !ok {
		return StoreView{}, fmt.Errorf("store not found: %s", id)
	}
	return view, nil
}

func (s *Storefront) run(ctx context.Context, kind string, view StoreView, r render.Renderer) (*StructuredDataOutput, error) {
	out := &StructuredDataOutput{Type: kind, StoreID: view.Store.ID, Display: r.Display()}
	if !out.Display {
		return out, nil
	}
	doc, err := r.RenderJSON(ctx)
	if err != nil {
		logx.Error().Err(err).Str("type", kind).Str("store", view.Store.ID).Msg("failed to render structured data")
		return nil, err
	}
	out.JSONLD = doc
	return out, nil
}

// ===================================
// Product Structured Data Tool
// ===================================

type ProductStructuredDataInput struct {
	ProductID string `json:"product_id"`
	StoreID   string `json:"store_id,omitempty"`
}

func (s *Storefront) createProductTool() tool.InvokableTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolProductStructuredData,
			Desc: "Get the schema.org Product JSON-LD of a product page, including offers, brand, aggregate rating and reviews.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"product_id": {
					Type:     "string",
					Desc:     "Catalog product ID.",
					Required: true,
				},
				"store_id": {
					Type: "string",
					Desc: "Store view ID. Defaults to the default store.",
				},
			}),
		},
		func(ctx context.Context, in *ProductStructuredDataInput) (*StructuredDataOutput, error) {
			if in.ProductID == "" {
				return nil, fmt.Errorf("product_id is required")
			}
			view, err := s.store(in.StoreID)
			if err != nil {
				return nil, err
			}
			product, ok := s.Catalog.Product(in.ProductID)
			if !ok {
				return nil, fmt.Errorf("product not found: %s", in.ProductID)
			}

			page := render.Page{Store: view.Store, Product: product, Layout: view.Layout}
			return s.run(ctx, "Product", view, render.NewProduct(page, s.Catalog, s.Reviews, s.Product))
		},
	)
}

// ===================================
// Category Structured Data Tool
// ===================================

type CategoryStructuredDataInput struct {
	CategoryID string `json:"category_id"`
	Page       int    `json:"page,omitempty"`
	StoreID    string `json:"store_id,omitempty"`
}

func (s *Storefront) createCategoryTool() tool.InvokableTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolCategoryStructuredData,
			Desc: "Get the schema.org ItemList JSON-LD of one page of a category listing.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"category_id": {
					Type:     "string",
					Desc:     "Catalog category ID.",
					Required: true,
				},
				"page": {
					Type: "number",
					Desc: "1-based listing page (default: 1).",
				},
				"store_id": {
					Type: "string",
					Desc: "Store view ID. Defaults to the default store.",
				},
			}),
		},
		func(ctx context.Context, in *CategoryStructuredDataInput) (*StructuredDataOutput, error) {
			if in.CategoryID == "" {
				return nil, fmt.Errorf("category_id is required")
			}
			view, err := s.store(in.StoreID)
			if err != nil {
				return nil, err
			}
			category, ok := s.Catalog.Category(in.CategoryID)
			if !ok {
				return nil, fmt.Errorf("category not found: %s", in.CategoryID)
			}

			page := render.Page{
				Store:    view.Store,
				Category: category,
				Layout:   view.Layout,
				Query:    url.Values{"p": {strconv.Itoa(in.Page)}},
			}
			return s.run(ctx, "ItemList", view, render.NewCategoryProducts(page, s.Catalog, s.Reviews))
		},
	)
}

// ===================================
// Store Structured Data Tool
// ===================================

type StoreStructuredDataInput struct {
	StoreID string `json:"store_id,omitempty"`
}

func (s *Storefront) createStoreTool() tool.InvokableTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolStoreStructuredData,
			Desc: "Get the schema.org OnlineStore JSON-LD describing the store: contact point, address, served countries and rating.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"store_id": {
					Type: "string",
					Desc: "Store view ID. Defaults to the default store.",
				},
			}),
		},
		func(ctx context.Context, in *StoreStructuredDataInput) (*StructuredDataOutput, error) {
			view, err := s.store(in.StoreID)
			if err != nil {
				return nil, err
			}

			page := render.Page{Store: view.Store, Layout: view.Layout}
			org := render.NewOrganization(page, s.Config, s.Variables, s.Directory)
			var r render.Renderer = org
			if s.Cache != nil {
				r = s.Cache.Wrap(org)
			}
			return s.run(ctx, "OnlineStore", view, r)
		},
	)
}

// GetStructuredDataTools returns the structured-data tools bound to s.
func GetStructuredDataTools(s *Storefront) []tool.BaseTool {
	return []tool.BaseTool{
		s.createProductTool(),
		s.createCategoryTool(),
		s.createStoreTool(),
	}
}

// GetToolInfos collects the tool descriptions to bind to a chat model.
func GetToolInfos(ctx context.Context, tools []tool.BaseTool) ([]*schema.ToolInfo, error) {
	infos := make([]*schema.ToolInfo, 0, len(tools))
	for _, t := range tools {
		info, err := t.Info(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get tool info: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, nil
}
