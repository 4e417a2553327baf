// Seeds the database: creates the schema when missing, loads the initial
// catalog and ensures the admin account exists. Safe to run repeatedly; the
// catalog is only inserted into an empty products table.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/shophub/shophub-api/internal/domain/entity"
	"github.com/shophub/shophub-api/internal/infrastructure/postgres"
	"github.com/shophub/shophub-api/pkg/config"
	"github.com/shophub/shophub-api/pkg/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY,
	name          TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL DEFAULT 'user',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS products (
	id          UUID PRIMARY KEY,
	product_id  BIGINT UNIQUE,
	name        TEXT NOT NULL,
	price       NUMERIC(12,2) NOT NULL,
	image       TEXT NOT NULL DEFAULT '',
	category    TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	stock       INT NOT NULL DEFAULT 0 CHECK (stock >= 0),
	in_stock    BOOLEAN NOT NULL DEFAULT true,
	rating      DOUBLE PRECISION NOT NULL DEFAULT 4.5,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products (category);
CREATE INDEX IF NOT EXISTS idx_products_created_at ON products (created_at DESC);

CREATE TABLE IF NOT EXISTS orders (
	id                UUID PRIMARY KEY,
	user_id           UUID NOT NULL,
	user_email        TEXT NOT NULL,
	items             JSONB NOT NULL,
	shipping          JSONB NOT NULL,
	total             NUMERIC(12,2) NOT NULL,
	status            TEXT NOT NULL DEFAULT 'pending',
	payment_status    TEXT NOT NULL DEFAULT 'pending',
	payment_intent_id TEXT NOT NULL DEFAULT '',
	tracking_number   TEXT NOT NULL DEFAULT '',
	status_history    JSONB NOT NULL DEFAULT '[]',
	created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_orders_user_id ON orders (user_id);
CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders (created_at DESC);
`

type seedProduct struct {
	productID   int64
	name        string
	price       string
	image       string
	category    string
	description string
	stock       int
	rating      float64
}

var catalog = []seedProduct{
	{1, "Wireless Bluetooth Headphones", "79.99", "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500", "Electronics", "Premium wireless headphones with noise cancellation and 30-hour battery life.", 50, 4.5},
	{2, "Smart Watch Pro", "249.99", "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500", "Electronics", "Feature-rich smartwatch with health tracking, GPS, and water resistance.", 30, 4.8},
	{3, "Laptop Backpack", "49.99", "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=500", "Accessories", "Durable laptop backpack with padded compartments and USB charging port.", 75, 4.6},
	{4, "Wireless Mouse", "29.99", "https://images.unsplash.com/photo-1527814050087-3793815479db?w=500", "Accessories", "Ergonomic wireless mouse with precision tracking and long battery life.", 100, 4.4},
	{5, "Mechanical Keyboard", "129.99", "https://images.unsplash.com/photo-1587829741301-dc798b83add3?w=500", "Accessories", "RGB mechanical keyboard with Cherry MX switches and customizable keys.", 40, 4.7},
	{6, "USB-C Hub", "39.99", "https://images.unsplash.com/photo-1587825140708-dfaf72ae4b04?w=500", "Accessories", "Multi-port USB-C hub with HDMI, USB 3.0, and SD card reader.", 60, 4.5},
	{7, "Monitor Stand", "59.99", "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=500", "Furniture", "Adjustable monitor stand with cable management and extra storage space.", 45, 4.6},
	{8, "Bluetooth Speaker", "49.99", "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=500", "Electronics", "Portable wireless Bluetooth speaker with 360° sound and 12-hour battery life.", 75, 4.6},
	{9, "Desk Organizer", "24.99", "https://images.unsplash.com/photo-1586075010923-2dd4570fb338?w=500", "Accessories", "Bamboo desk organizer with multiple compartments for office supplies.", 90, 4.3},
	{10, "Webcam HD", "79.99", "https://images.unsplash.com/photo-1587825140708-dfaf72ae4b04?w=500&h=500&fit=crop", "Electronics", "1080p HD webcam with auto-focus and built-in microphone for video calls.", 55, 4.5},
	{11, "Laptop Stand", "34.99", "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=500&h=500&fit=crop", "Accessories", "Aluminum laptop stand with adjustable height and ventilation design.", 80, 4.4},
	{12, "Office Chair", "199.99", "https://images.unsplash.com/photo-1506439773649-6e0eb8cfb237?w=500", "Furniture", "Ergonomic office chair with mesh back, adjustable arms, and lumbar support.", 30, 4.8},
	{13, "Wireless Earbuds Pro", "129.99", "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=500", "Electronics", "Premium true wireless earbuds with active noise cancellation and 24-hour battery.", 65, 4.6},
	{14, "Tablet Stand", "24.99", "https://images.unsplash.com/photo-1601784551446-20c9e07cdbdb?w=500", "Accessories", "Adjustable tablet stand with multiple viewing angles and sturdy base.", 85, 4.3},
	{15, "External SSD 1TB", "149.99", "https://images.unsplash.com/photo-1591488320449-011701bb6704?w=500", "Electronics", "Fast external SSD with USB-C connectivity and 1000MB/s read speeds.", 40, 4.8},
	{16, "Cable Management Kit", "14.99", "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=500", "Accessories", "Complete cable management solution with clips, ties, and sleeves.", 120, 4.4},
	{17, "Standing Desk Converter", "199.99", "https://images.unsplash.com/photo-1586953208448-b95a79798f07?w=500", "Furniture", "Ergonomic standing desk converter with smooth height adjustment.", 25, 4.7},
	{18, "USB-C Cable Pack", "19.99", "https://images.unsplash.com/photo-1587825140708-dfaf72ae4b04?w=500", "Accessories", "Set of 3 high-speed USB-C cables in different lengths (1m, 2m, 3m).", 150, 4.5},
	{19, "Smart Ring Light", "39.99", "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=500", "Accessories", "LED ring light with adjustable brightness and color temperature for video calls.", 70, 4.6},
	{20, "Wireless Charging Pad", "29.99", "https://images.unsplash.com/photo-1580910051074-3eb694886505?w=500", "Electronics", "Fast wireless charging pad compatible with all Qi-enabled devices.", 95, 4.5},
	{21, "Laptop Cooling Pad", "34.99", "https://images.unsplash.com/photo-1591488320449-011701bb6704?w=500&h=500&fit=crop", "Accessories", "USB-powered laptop cooling pad with 5 quiet fans and adjustable height.", 60, 4.4},
	{22, "Gaming Mouse Pad", "19.99", "https://images.unsplash.com/photo-1527814050087-3793815479db?w=500&h=500&fit=crop", "Accessories", "Large RGB gaming mouse pad with smooth surface and stitched edges.", 110, 4.5},
}

const (
	adminEmail    = "admin@example.com"
	adminPassword = "admin123"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Fatal().Err(err).Msg("create schema")
	}
	log.Info().Msg("schema ready")

	// Admin account
	userRepo := postgres.NewUserRepository(pool)
	admin, err := userRepo.GetByEmail(ctx, adminEmail)
	if err != nil {
		log.Fatal().Err(err).Msg("lookup admin user")
	}
	if admin == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash admin password")
		}
		now := time.Now()
		err = userRepo.Create(ctx, &entity.User{
			ID:           uuid.New().String(),
			Name:         "Admin User",
			Email:        adminEmail,
			PasswordHash: string(hash),
			Role:         entity.RoleAdmin,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("create admin user")
		}
		log.Info().Str("email", adminEmail).Msg("admin user created")
	} else {
		log.Info().Str("email", adminEmail).Msg("admin user already exists")
	}

	// Catalog (only into an empty table)
	var count int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		log.Fatal().Err(err).Msg("count products")
	}
	if count > 0 {
		log.Info().Int64("existing", count).Msg("products already present, skipping catalog seed")
		return
	}

	productRepo := postgres.NewProductRepository(pool)
	now := time.Now()
	for _, s := range catalog {
		price, err := decimal.NewFromString(s.price)
		if err != nil {
			log.Fatal().Err(err).Str("product", s.name).Msg("parse price")
		}
		pid := s.productID
		err = productRepo.Create(ctx, &entity.Product{
			ID:          uuid.New().String(),
			ProductID:   &pid,
			Name:        s.name,
			Price:       price,
			Image:       s.image,
			Category:    s.category,
			Description: s.description,
			Stock:       s.stock,
			InStock:     s.stock > 0,
			Rating:      s.rating,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			log.Fatal().Err(err).Str("product", s.name).Msg("insert product")
		}
	}
	log.Info().Int("products", len(catalog)).Msg("catalog seeded")
}
