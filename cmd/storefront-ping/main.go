package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/VGuerra123/TiendaOnline-sub000/internal/config"
	"github.com/VGuerra123/TiendaOnline-sub000/internal/storefront"
)

func main() {
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Testing storefront connection...\n\n")
	fmt.Printf("Shop Domain: %s\n", cfg.Storefront.ShopDomain)
	if n := len(cfg.Storefront.AccessToken); n > 0 {
		fmt.Printf("Access Token: %s...%s\n",
			cfg.Storefront.AccessToken[:min(6, n)],
			cfg.Storefront.AccessToken[max(0, n-4):])
	}
	fmt.Println()

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	// Create storefront client
	client := storefront.NewClient(cfg.Storefront, logger)
	if !client.IsConfigured() {
		fmt.Fprintln(os.Stderr, "❌ Not configured: set SHOP_DOMAIN and STOREFRONT_ACCESS_TOKEN")
		os.Exit(1)
	}

	// Test query
	data, err := client.Execute(context.Background(), "shop", storefront.ShopQuery, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Connection failed: %v\n\n", err)
		fmt.Println("Please check:")
		fmt.Println("  1. SHOP_DOMAIN format: should be 'store-name.myshopify.com' (no https://)")
		fmt.Println("  2. STOREFRONT_ACCESS_TOKEN: the public Storefront API token, not an Admin token")
		os.Exit(1)
	}

	fmt.Println("✅ Connection successful!")
	fmt.Printf("Response: %s\n", string(data))
}
