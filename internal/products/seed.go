package products

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/angelmondragon/shopassist-backend/pkg/db/models"
	"github.com/angelmondragon/shopassist-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

type curatedProduct struct {
	name, category, price, description string
}

var curatedCatalog = []curatedProduct{
	{"Laptop Pro X", "Electronics", "1200.00", "Powerful laptop for professionals with 16GB RAM and 512GB SSD."},
	{"Mechanical Keyboard", "Electronics", "85.50", "RGB Mechanical Keyboard with blue switches."},
	{"Wireless Mouse", "Electronics", "25.00", "Ergonomic wireless mouse with long battery life."},
	{"Python Programming Book", "Books", "45.99", "A comprehensive guide to Python programming for beginners."},
	{"Sci-Fi Novel Collection", "Books", "30.00", "Collection of 5 classic sci-fi novels."},
	{"Organic Cotton T-shirt", "Apparel", "22.00", "100% organic cotton t-shirt, available in multiple colors."},
	{"Denim Jeans Slim Fit", "Apparel", "65.00", "Comfortable slim fit denim jeans."},
	{"Smartwatch Series 5", "Electronics", "299.99", "Fitness tracker and smartwatch with heart rate monitoring."},
	{"Blender High Speed", "Home Appliances", "75.00", "Powerful blender for smoothies and shakes."},
	{"Running Shoes (Red)", "Apparel", "70.00", "Lightweight and breathable running shoes in vibrant red color."},
	{"Coffee Maker Deluxe", "Home Appliances", "120.00", "Programmable coffee maker with grinder for fresh beans."},
	{"Gaming Headset (Black)", "Electronics", "50.00", "Immersive sound gaming headset with mic."},
}

var (
	fillerCategories = []string{"Electronics", "Books", "Apparel", "Home Appliances", "Sports & Outdoors", "Beauty"}
	fillerAdjectives = []string{"Advanced", "Smart", "Portable", "Durable", "Eco-friendly", "Classic", "Ergonomic", "High-Performance"}
	fillerNouns      = []string{"Gadget", "Tool", "Accessory", "Wearable", "Device", "System", "Kit", "Supply"}

	fillerMinPrice = 10.0
	fillerMaxPrice = 1500.0
)

// BuildSeedCatalog returns the curated products followed by generated filler
// until the catalog holds at least minSize entries.
func BuildSeedCatalog(rng *rand.Rand, minSize int) []models.Product {
	size := max(minSize, len(curatedCatalog))
	out := make([]models.Product, 0, size)

	for _, c := range curatedCatalog {
		desc := c.description
		out = append(out, models.Product{
			Name:        c.name,
			Category:    c.category,
			Price:       decimal.RequireFromString(c.price),
			Description: &desc,
		})
	}

	for i := 1; len(out) < size; i++ {
		name := fmt.Sprintf("%s %s %d", pick(rng, fillerAdjectives), pick(rng, fillerNouns), i)
		category := pick(rng, fillerCategories)
		price := decimal.NewFromFloat(fillerMinPrice + rng.Float64()*(fillerMaxPrice-fillerMinPrice)).Round(2)
		desc := fmt.Sprintf(
			"A high-quality %s item (%s) with various features designed for modern living. Ideal for everyday use.",
			strings.ToLower(category), strings.ToLower(name),
		)
		out = append(out, models.Product{Name: name, Category: category, Price: price, Description: &desc})
	}
	return out
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.IntN(len(values))]
}

// Seeder fills an empty catalog at startup or from the operator CLI.
type Seeder struct {
	repo *Repository
	logg *logger.Logger
	rng  *rand.Rand
}

// NewSeeder builds a seeder. A zero randomSeed picks a time-based seed.
func NewSeeder(repo *Repository, logg *logger.Logger, randomSeed int64) (*Seeder, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	seed := uint64(randomSeed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Seeder{repo: repo, logg: logg, rng: rand.New(rand.NewPCG(seed, seed>>1|1))}, nil
}

// SeedIfEmpty inserts the seed catalog only when no products exist and returns how many rows were written.
func (s *Seeder) SeedIfEmpty(ctx context.Context, minSize int) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		s.logg.Info(s.logg.WithField(ctx, "products", count), "catalog already populated, skipping seed")
		return 0, nil
	}

	rows := BuildSeedCatalog(s.rng, minSize)
	if err := s.repo.CreateBatch(ctx, rows); err != nil {
		return 0, fmt.Errorf("insert seed products: %w", err)
	}
	s.logg.Info(s.logg.WithField(ctx, "products", len(rows)), "catalog seeded")
	return len(rows), nil
}
