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

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	// Create storefront client
	client := storefront.NewClient(cfg.Storefront, logger)
	if !client.IsConfigured() {
		fmt.Fprintln(os.Stderr, "⚠️  SHOP_DOMAIN / STOREFRONT_ACCESS_TOKEN not set; catalog will be empty")
	}

	fmt.Println("🔍 Fetching products from the storefront...")

	products := client.GetAllProducts(context.Background(), 100)

	for _, p := range products {
		fmt.Printf("— %s\n", p.Title)
		fmt.Printf("  ID: %s\n", p.ID)
		fmt.Printf("  Vendor: %s | Type: %s\n", p.Vendor, p.ProductType)
		fmt.Printf("  Price: %s - %s %s\n",
			p.PriceRange.MinVariantPrice.Amount,
			p.PriceRange.MaxVariantPrice.Amount,
			p.PriceRange.MinVariantPrice.CurrencyCode)
		for _, v := range p.Variants {
			avail := "in stock"
			if !v.AvailableForSale {
				avail = "sold out"
			}
			fmt.Printf("    · %s (%s %s, %s)\n", v.Title, v.Price.Amount, v.Price.CurrencyCode, avail)
		}
		fmt.Println()
	}

	fmt.Printf("✅ %d products\n", len(products))

	if len(products) == 0 {
		fmt.Println("\n⚠️  No products returned. Check:")
		fmt.Println("  1. Products are published to the Online Store channel")
		fmt.Println("  2. The storefront access token has unauthenticated_read_product_listings")
		fmt.Println("  3. You're querying the correct store")
	}
}
