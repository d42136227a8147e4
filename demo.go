package main

import (
	"github.com/cloudwego/eino/schema"

	"github.com/storefront-seo/microdata/internal/graph/tools"
	"github.com/storefront-seo/microdata/internal/microdata/memory"
	"github.com/storefront-seo/microdata/internal/microdata/model"
	"github.com/storefront-seo/microdata/internal/microdata/render"
)

var demoRegions = map[string]string{
	"182": "Rhône",
	"82":  "Bayern",
}

func toolCallMessage(id, name, arguments string) *schema.Message {
	return schema.AssistantMessage("", []schema.ToolCall{
		{ID: id, Function: schema.FunctionCall{Name: name, Arguments: arguments}},
	})
}

// newDemoStorefront seeds an in-memory store with a small outdoor catalogue.
func newDemoStorefront(dir model.Directory) *tools.Storefront {
	catalog := memory.NewCatalog()
	catalog.AddCategory(model.Category{ID: "tents", Name: "Tents"})
	catalog.AddCategory(model.Category{ID: "kitchen", Name: "Camp Kitchen"})

	catalog.AddProduct(model.Product{
		ID:               "tent-trail",
		Name:             "Trail 2P Tent",
		SKU:              "TENT-TRAIL",
		ShortDescription: "Two-person backpacking tent.",
		TypeID:           model.TypeConfigurable,
		Available:        true,
		URL:              "https://shop.example/trail-2p-tent.html",
		Gallery:          []string{"https://shop.example/media/trail-green.jpg", "https://shop.example/media/trail-sand.jpg"},
		Attributes:       map[string]string{"manufacturer": "Acme Outdoor"},
	}, "tents")
	catalog.AddVariants("tent-trail",
		model.Product{ID: "tent-trail-green", Name: "Trail 2P Tent Green", SKU: "TENT-TRAIL-G", FinalPrice: 249, TypeID: model.TypeSimple, Available: true},
		model.Product{ID: "tent-trail-sand", Name: "Trail 2P Tent Sand", SKU: "TENT-TRAIL-S", FinalPrice: 229.99, TypeID: model.TypeSimple, Available: true},
	)

	catalog.AddProduct(model.Product{
		ID:               "stove-mini",
		Name:             "Mini Gas Stove",
		SKU:              "STOVE-MINI",
		GTIN:             "4006381333931",
		MPN:              "MS-100",
		ShortDescription: "Folding canister stove.",
		FinalPrice:       39.9,
		TypeID:           model.TypeSimple,
		Available:        false,
		URL:              "https://shop.example/mini-gas-stove.html",
		Gallery:          []string{"https://shop.example/media/stove.jpg"},
		Attributes:       map[string]string{"manufacturer": "No"},
	}, "tents", "kitchen")

	reviews := memory.NewReviews()
	reviews.Add("tent-trail",
		model.Review{ID: "r1", Nickname: "Jo", Votes: []model.ReviewVote{{Percent: 100}}},
		model.Review{ID: "r2", Nickname: "Sam", Votes: []model.ReviewVote{{Percent: 80}}},
	)
	reviews.SetSummary("tent-trail", "1", model.ReviewSummary{RatingSummary: 90, ReviewsCount: 2})

	cfg := memory.Config{}
	cfg.Set("", render.PathStoreName, "Outdoor Supply Co")
	cfg.Set("", render.PathSenderEmail, "care@shop.example")
	cfg.Set("", render.PathStorePhone, "+33 4 72 00 00 00")
	cfg.Set("", render.PathMerchantVAT, "FR40303265045")
	cfg.Set("", render.PathAllowCountry, "FR,DE,BE")
	cfg.Set("", render.PathLocale, "en_US")
	cfg.Set("", render.PathStreetLine1, "12 rue des Lilas")
	cfg.Set("", render.PathCity, "Lyon")
	cfg.Set("", render.PathPostcode, "69003")
	cfg.Set("", render.PathRegionID, "182")
	cfg.Set("", render.PathCountryID, "FR")

	vars := memory.Variables{}
	vars.Set(render.VarLegalName, "Outdoor Supply Company SAS")
	vars.Set(render.VarFoundingDate, "2009-04-01")
	vars.Set(render.VarSameAs, "https://facebook.com/outdoorsupply,https://instagram.com/outdoorsupply")

	return &tools.Storefront{
		Catalog:   catalog,
		Reviews:   reviews,
		Config:    cfg,
		Variables: vars,
		Directory: dir,
		Stores: map[string]tools.StoreView{
			"1": {
				Store:  model.Store{ID: "1", BaseURL: "https://shop.example/", CurrencyCode: "EUR"},
				Layout: memory.Layout{render.LogoBlock: memory.Logo("https://shop.example/media/logo.svg")},
			},
		},
		DefaultStore: "1",
	}
}
