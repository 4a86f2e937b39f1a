package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-stock-admin/internal/catalog"
	"go-stock-admin/internal/config"
	"go-stock-admin/internal/handler"
	"go-stock-admin/internal/middleware"
	"go-stock-admin/internal/model"
	"go-stock-admin/internal/repository"
	"go-stock-admin/internal/service"
	"go-stock-admin/internal/ws"
	"go-stock-admin/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.Load()

	// 2. Setup Database (stock-change journal)
	db := database.ConnectDB(cfg.DatabaseDSN)
	db.AutoMigrate(&model.StockChange{})

	// 3. Setup WebSocket Hub (notification sink)
	wsHub := ws.NewHub()
	go wsHub.Run()
	notifier := ws.NewNotifier(wsHub)

	// 4. Dependency Injection (Wiring Layers)
	catalogClient := catalog.NewClient(cfg.CatalogBaseURL, cfg.GatewayTimeout)
	changeRepo := repository.NewStockChangeRepo(db)

	snapshots := service.NewSnapshotService(catalogClient, cfg.SnapshotCooldown, nil)
	editor := service.NewEditorService(snapshots, catalogClient, changeRepo, notifier)
	dashService := service.NewDashboardService(changeRepo)

	invHandler := handler.NewInventoryHandler(snapshots, editor, cfg.DefaultThreshold)
	editHandler := handler.NewEditHandler(editor)
	dashHandler := handler.NewDashboardHandler(dashService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Stock Admin v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes
	api := app.Group("/api/v1", middleware.RequireAuth())

	// Inventory view (authenticated users can read)
	api.Get("/inventory/products", invHandler.GetProducts)
	api.Get("/inventory/stats", invHandler.GetStats)
	api.Post("/inventory/refresh", invHandler.Refresh)

	// Row edits (stock mutation requires privilege)
	edits := api.Group("/inventory/edits", middleware.RequirePrivilege("stock:update"))
	edits.Post("/begin", editHandler.BeginEdit)
	edits.Put("/", editHandler.UpdateDraft)
	edits.Post("/commit", editHandler.Commit)
	edits.Post("/cancel", editHandler.Cancel)
	edits.Post("/bulk", editHandler.BulkCommit)

	// Dashboard
	api.Get("/dashboard/changes", dashHandler.GetRecentChanges)
	api.Get("/dashboard/stock-movement", dashHandler.GetStockMovement)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.HTTPPort); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
