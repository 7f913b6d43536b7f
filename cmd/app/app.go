package main

import (
	"github.com/DRSN-tech/inventory-backend/internal/app"
	"github.com/joho/godotenv"
)

// @title Inventory Backend API
// @version 1.0
// @description Учёт товаров, продаж, приходов и остатков с подбором скидок по таблице пресетов цен.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	_ = godotenv.Load() // локальная разработка; в контейнере переменные заданы окружением

	app.Run()
}
