// cmd/api/main.go
package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/rhulucas/dhl-fm-mapping-tool/config"
	"github.com/rhulucas/dhl-fm-mapping-tool/internal/api/routes"
	"github.com/rhulucas/dhl-fm-mapping-tool/internal/socket"
	"github.com/rhulucas/dhl-fm-mapping-tool/internal/store"
	"github.com/rhulucas/dhl-fm-mapping-tool/internal/ticket"
)

func main() {
	// 1. Nạp biến môi trường từ .env nếu có (không bắt buộc khi deploy)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// 2. Load configuration
	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	// 3. Khởi tạo document store theo backend được cấu hình
	var docStore store.DocumentStore
	switch cfg.Storage.Backend {
	case "s3":
		docStore, err = store.NewS3Store(cfg.S3)
		if err != nil {
			log.Fatalf("Failed to initialize S3 store: %v", err)
		}
		log.Printf("Using S3 storage: s3://%s/%s", cfg.S3.Bucket, cfg.S3.Key)
	default:
		docStore = store.NewFileStore(cfg.Storage.File)
		log.Printf("Using file storage: %s", cfg.Storage.File)
	}

	// 4. Ticket ledger sống trong bộ nhớ của process, đánh số lại khi restart
	ledger := ticket.NewLedger()

	// 5. Hub WebSocket cho các sự kiện thay đổi dữ liệu
	wsHub := socket.NewHub()

	// 6. Truyền tất cả các thành phần cần thiết vào router
	router := routes.SetupRouter(docStore, ledger, wsHub)

	// 7. Start server
	log.Printf("Starting API server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
