package main

import (
	"log"
	"net/http"
	"os"

	"lab-requests/internal/api"
	"lab-requests/internal/repository"
	"lab-requests/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const apiVersion = "1.0.0"

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func main() {
	// Configurações via Variáveis de Ambiente
	sqliteDBPath := getEnv("DB_PATH", "./data/lab_requests.db")
	migrationsPath := getEnv("MIGRATIONS_PATH", "./db/migrations/001_init_schema.sql")
	staticDir := getEnv("STATIC_DIR", "./frontend")
	serverPort := getEnv("SERVER_PORT", ":8080")

	// 1. Camada de Infraestrutura (Implementações)
	repo, err := repository.NewSQLiteRepository(sqliteDBPath, migrationsPath)
	if err != nil {
		log.Fatalf("Falha ao iniciar o repositório SQLite: %v", err)
	}
	defer repo.Close()

	// 2. Camada de Lógica de Negócios (Serviços)
	requestSvc := service.NewRequestService(repo)
	healthSvc := service.NewHealthService(repo)

	// 3. Camada de Apresentação (API/Handlers)
	handler := api.NewHandler(requestSvc, healthSvc)

	// 4. Configuração do Servidor Web (Echo)
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.New().String() },
	}))

	// Regista as rotas
	api.RegisterRoutes(e, handler)

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "Lab Requests API",
			"version": apiVersion,
		})
	})

	// Serve o frontend estático quando o diretório existe
	if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
		e.Static("/static", staticDir)
	}

	log.Printf("🚀 Servidor da API de solicitações rodando na porta %s", serverPort)
	if err := e.Start(serverPort); err != nil {
		log.Fatalf("Falha ao iniciar o servidor Echo: %v", err)
	}
}
