package main

import (
	"api-transferegov/internal/app/config"
	"api-transferegov/internal/app/repository"
	"api-transferegov/internal/pkg"

	_ "api-transferegov/docs" // Важно: добавляем импорт docs

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// @title API Transferegov Discricionárias
// @version 1.0
// @description API de consulta aos dados de transferências discricionárias e legais da União

// @BasePath /

// @securityDefinitions.basic BasicAuth
func main() {
	// Загружаем конфигурацию
	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}
	conf.ConfigureLogging()

	if logrus.GetLevel() < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	// Инициализируем репозиторий
	repo, err := repository.NewRepository(conf)
	if err != nil {
		logrus.Fatalf("error initializing repository: %v", err)
	}

	// Создаем приложение с конфигурацией
	application, err := pkg.NewApp(conf, router, repo)
	if err != nil {
		logrus.Fatalf("error initializing application: %v", err)
	}

	// Запускаем приложение
	application.RunApp()
}
