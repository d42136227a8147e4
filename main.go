package main

import (
	"context"
	"fmt"
	"log"

	"github.com/storefront-seo/microdata/internal/graph/tools"
	"github.com/storefront-seo/microdata/internal/microdata/cache"
	"github.com/storefront-seo/microdata/internal/microdata/config"
	"github.com/storefront-seo/microdata/internal/microdata/directory"
	logx "github.com/storefront-seo/microdata/pkg/logger"
)

func main() {
	fmt.Println("Rendering storefront structured data...")
	ctx := context.Background()

	// Load .env file and structured config from env
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}
	logx.Init(logx.LoggerOpts{Environment: cfg.Env()})

	storefront := newDemoStorefront(directory.New(cfg.Microdata.Locale, demoRegions))
	storefront.Product = cfg.ProductConfig()

	if cfg.CacheEnabled() {
		rdb, err := cfg.Redis.New(ctx)
		if err != nil {
			logx.Warn().Err(err).Msg("Redis unavailable, rendering without cache")
		} else {
			defer rdb.Close()
			storefront.Cache = cache.NewRedisCache(rdb, cfg.Microdata.CachePrefix)
			logx.Info().Msg("Connected to Redis successfully")
		}
	}

	registered := tools.GetStructuredDataTools(storefront)
	node, err := tools.NewToolsNode(ctx, registered)
	if err != nil {
		log.Fatalf("Failed to build tools node: %v", err)
	}

	testCalls := []struct {
		description string
		tool        string
		arguments   string
	}{
		{
			description: "Store organization block",
			tool:        tools.ToolStoreStructuredData,
			arguments:   `{}`,
		},
		{
			description: "Category listing, first page",
			tool:        tools.ToolCategoryStructuredData,
			arguments:   `{"category_id":"tents","page":1}`,
		},
		{
			description: "Configurable product page",
			tool:        tools.ToolProductStructuredData,
			arguments:   `{"product_id":"tent-trail"}`,
		},
		{
			description: "Simple product page",
			tool:        tools.ToolProductStructuredData,
			arguments:   `{"product_id":"stove-mini"}`,
		},
	}

	for i, call := range testCalls {
		fmt.Printf("\nCall %d: %s\n", i+1, call.description)

		msgs, err := node.Invoke(ctx, toolCallMessage(fmt.Sprintf("call-%d", i+1), call.tool, call.arguments))
		if err != nil {
			log.Fatalf("Failed to invoke %s: %v", call.tool, err)
		}
		for _, msg := range msgs {
			fmt.Println(msg.Content)
		}
	}

	fmt.Println("\nAll structured data rendered.")
}
