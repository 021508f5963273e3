package main // Seeds the database with sample data for local development

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/iliyamo/business-insights/internal/config"
	"github.com/iliyamo/business-insights/internal/database"
	"github.com/iliyamo/business-insights/internal/model"
	"github.com/iliyamo/business-insights/internal/repository"
	"github.com/iliyamo/business-insights/internal/utils"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	users := repository.NewUserRepo(db)
	businesses := repository.NewBusinessRepo(db)
	inventory := repository.NewInventoryRepo(db)
	sales := repository.NewSalesRepo(db)
	insights := repository.NewInsightRepo(db)

	hash, err := utils.HashPassword("password123", cfg.BcryptCost)
	if err != nil {
		log.Fatalf("hash: %v", err)
	}

	alice, err := users.Create(ctx, "alice", "alice@example.com", hash)
	if err != nil {
		log.Fatalf("seed user alice: %v", err)
	}
	bob, err := users.Create(ctx, "bob", "bob@example.com", hash)
	if err != nil {
		log.Fatalf("seed user bob: %v", err)
	}

	tech := "Technology"
	retail := "Retail"
	techShop, err := businesses.Create(ctx, alice.ID, "Tech Shop", &tech)
	if err != nil {
		log.Fatalf("seed business: %v", err)
	}
	grocery, err := businesses.Create(ctx, bob.ID, "Grocery Store", &retail)
	if err != nil {
		log.Fatalf("seed business: %v", err)
	}

	laptopDesc := "High-end gaming laptop"
	phoneDesc := "Latest model"
	appleDesc := "Fresh apples"
	laptop, err := inventory.Create(ctx, techShop.ID, "Laptop", &laptopDesc, 50, decimal.NewFromInt(1000))
	if err != nil {
		log.Fatalf("seed inventory: %v", err)
	}
	if _, err := inventory.Create(ctx, techShop.ID, "Smartphone", &phoneDesc, 200, decimal.NewFromInt(500)); err != nil {
		log.Fatalf("seed inventory: %v", err)
	}
	apple, err := inventory.Create(ctx, grocery.ID, "Apple", &appleDesc, 300, decimal.NewFromInt(1))
	if err != nil {
		log.Fatalf("seed inventory: %v", err)
	}

	now := time.Now().UTC()
	if _, err := sales.Create(ctx, techShop.ID, laptop.ID, 5, decimal.NewFromInt(5000), now); err != nil {
		log.Fatalf("seed sale: %v", err)
	}
	if _, err := sales.Create(ctx, grocery.ID, apple.ID, 50, decimal.NewFromInt(50), now); err != nil {
		log.Fatalf("seed sale: %v", err)
	}

	for _, businessID := range []uint64{techShop.ID, grocery.ID} {
		if err := seedInsights(ctx, db, insights, businessID); err != nil {
			log.Fatalf("seed insights for business %d: %v", businessID, err)
		}
	}

	log.Println("Sample data seeded successfully!")
}

// seedInsights records one row per metric so the history endpoint has
// data to show right after seeding.
func seedInsights(ctx context.Context, db *sql.DB, insights *repository.InsightRepo, businessID uint64) error {
	if _, err := insights.RecordTotalRevenue(ctx, businessID); err != nil {
		return err
	}
	if _, err := insights.RecordTotalProfit(ctx, businessID); err != nil {
		return err
	}
	if _, err := insights.RecordInventoryValue(ctx, businessID); err != nil {
		return err
	}

	// Losses and average price have no persisting endpoint, so the seed
	// derives them from a snapshot and inserts the rows itself.
	snap, err := insights.Snapshot(ctx, businessID)
	if err != nil {
		return err
	}
	profit := model.Profit(snap.Revenue, snap.COGS)
	rows := []model.MetricValue{
		{Metric: model.MetricTotalLosses, Value: model.Loss(profit)},
		{Metric: model.MetricAverageSalesPrice, Value: model.AverageSalesPrice(snap.Revenue, snap.SalesCount)},
	}
	for _, r := range rows {
		if _, err := db.ExecContext(ctx,
			"INSERT INTO insights (business_id, metric, value, recorded_at) VALUES (?,?,?,?)",
			businessID, r.Metric, r.Value, time.Now().UTC()); err != nil {
			return err
		}
	}
	return nil
}
