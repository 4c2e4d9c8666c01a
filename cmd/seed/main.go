// Command seed wipes and repopulates the database with a demo account, so
// the dashboard and reports have data to show during development.
package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/Sanzzyy/management-finasial/internal/config"
	"github.com/Sanzzyy/management-finasial/internal/infrastructure/database"
	"github.com/Sanzzyy/management-finasial/internal/model"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	demoEmail    = "demo@example.com"
	demoPassword = "123456"
)

func main() {
	_ = godotenv.Load()

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	db := database.NewMySQLConnection(conf.Database.DSN)
	ctx := context.Background()

	// Children first, then the parent.
	for _, m := range []interface{}{
		&model.Transaction{}, &model.Budget{}, &model.Goal{}, &model.Schedule{}, &model.User{},
	} {
		if err := db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
			log.Fatalf("failed to clean table: %v", err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	id, _ := uuid.NewV7()
	user := &model.User{
		ID:       id.String(),
		Name:     "Demo User",
		Email:    demoEmail,
		Password: string(hash),
	}
	if err := db.WithContext(ctx).Create(user).Error; err != nil {
		log.Fatalf("failed to create demo user: %v", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Transactions spread over the past year so the monthly filters have
	// something to chew on.
	var transactions []model.Transaction
	for i := 0; i < 60; i++ {
		isIncome := rng.Float64() > 0.6
		tx := model.Transaction{
			UserID: user.ID,
			Amount: float64(rng.Intn(990_000)+10_000) / 1.0,
			Date:   time.Now().AddDate(0, 0, -rng.Intn(365)),
		}
		if isIncome {
			tx.Type = model.TypeIncome
			tx.Category = model.IncomeCategories[rng.Intn(len(model.IncomeCategories))]
			tx.Priority = model.PriorityNeed
			tx.Title = "Monthly " + tx.Category
		} else {
			tx.Type = model.TypeExpense
			tx.Category = model.ExpenseCategories[rng.Intn(len(model.ExpenseCategories))]
			tx.Priority = model.PriorityWant
			if rng.Float64() > 0.5 {
				tx.Priority = model.PriorityNeed
			}
			tx.Title = tx.Category + " purchase"
		}
		transactions = append(transactions, tx)
	}
	if err := db.WithContext(ctx).Create(&transactions).Error; err != nil {
		log.Fatalf("failed to seed transactions: %v", err)
	}

	var budgets []model.Budget
	for _, cat := range []string{"Food", "Transport", "Shopping", "Entertainment", "Bills"} {
		budgets = append(budgets, model.Budget{
			UserID:   user.ID,
			Category: cat,
			Limit:    float64(rng.Intn(1_500_000) + 500_000),
		})
	}
	if err := db.WithContext(ctx).Create(&budgets).Error; err != nil {
		log.Fatalf("failed to seed budgets: %v", err)
	}

	goals := []model.Goal{
		{UserID: user.ID, Title: "New laptop", TargetAmount: 8_000_000, SavedAmount: 2_500_000},
		{UserID: user.ID, Title: "Emergency fund", TargetAmount: 5_000_000, SavedAmount: 750_000},
	}
	if err := db.WithContext(ctx).Create(&goals).Error; err != nil {
		log.Fatalf("failed to seed goals: %v", err)
	}

	schedules := []model.Schedule{
		{UserID: user.ID, Subject: "Calculus", Day: "Monday", Time: "08:00", Room: "A-101", Type: "Lecture"},
		{UserID: user.ID, Subject: "Databases", Day: "Wednesday", Time: "10:30", Room: "Lab-3", Type: "Lab"},
		{UserID: user.ID, Subject: "Statistics", Day: "Friday", Time: "13:00", Room: "B-204", Type: "Exam"},
	}
	if err := db.WithContext(ctx).Create(&schedules).Error; err != nil {
		log.Fatalf("failed to seed schedules: %v", err)
	}

	log.Printf("seeded demo account %s / %s with %d transactions", demoEmail, demoPassword, len(transactions))
}
