package main

import (
	"api-transferegov/internal/app/dsn"
	"api-transferegov/internal/app/handler"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Параметры подключения из .env
	_ = godotenv.Load()

	fmt.Println("=== Index Migration ===")

	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	startTime := time.Now()

	// 1. Проверяем подключение
	fmt.Println("1. Checking database connection...")
	var result int
	db.Raw("SELECT 1").Scan(&result)
	if result == 1 {
		fmt.Println("   ✓ Database connection successful")
	} else {
		log.Fatal("   ✗ Database connection failed")
	}

	// 2. Триграммы для поиска подстроки
	fmt.Println("2. Enabling pg_trgm extension...")
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS pg_trgm").Error; err != nil {
		log.Printf("Warning: could not enable pg_trgm extension: %v", err)
	} else {
		fmt.Println("   ✓ pg_trgm extension enabled")
	}

	// 3. Индексы по каталогу маршрутов
	plan, err := planIndexes(db, handler.Routes())
	if err != nil {
		log.Fatal("Failed to plan indexes:", err)
	}
	fmt.Printf("3. Creating %d indexes...\n", len(plan))

	failed := 0
	for _, idx := range plan {
		idxStart := time.Now()
		if err := db.Exec(idx.SQL).Error; err != nil {
			failed++
			log.Printf("   ⚠️  %s: %v", idx.Name, err)
			continue
		}
		fmt.Printf("   ✓ %s in %v\n", idx.Name, time.Since(idxStart))
	}

	// 4. Обновляем статистику планировщика
	fmt.Println("4. Updating statistics...")
	for _, table := range tables(plan) {
		if err := db.Exec("ANALYZE " + table).Error; err != nil {
			log.Printf("Warning analyzing %s: %v", table, err)
		}
	}

	fmt.Println("\n=== Migration Completed ===")
	fmt.Printf("Indexes: %d, failed: %d\n", len(plan), failed)
	fmt.Printf("Total time: %v\n", time.Since(startTime))
}
