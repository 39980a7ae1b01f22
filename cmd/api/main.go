package main

import (
	"time"

	"github.com/jelllllllllll/F1s/internal/config"
	"github.com/jelllllllllll/F1s/internal/domain/model"
	"github.com/jelllllllllll/F1s/internal/handler"
	"github.com/jelllllllllll/F1s/internal/infra/db"
	infraRepo "github.com/jelllllllllll/F1s/internal/infra/repository"
	"github.com/jelllllllllll/F1s/internal/infra/upload"
	"github.com/jelllllllllll/F1s/internal/logger"
	"github.com/jelllllllllll/F1s/internal/server"
	"github.com/jelllllllllll/F1s/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	// .envは無くてもよい（本番は実際の環境変数で渡す）
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.LogMode, cfg.LogFile)

	//DB接続
	gormDB, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		zap.S().Fatalf("database connect failed: %v", err)
	}
	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.Order{},
	); err != nil {
		zap.S().Fatalf("migration failed: %v", err)
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	imageStore := upload.NewLocalImageStore(cfg.UploadDir)

	clock := &realClock{}

	//Usecase生成
	catalogUC := usecase.NewCatalogUsecase(productRepo, imageStore, clock)
	orderUC := usecase.NewOrderUsecase(orderRepo, clock)

	//Handler生成
	productH := handler.NewProductHandler(catalogUC)
	orderH := handler.NewOrderHandler(orderUC)

	//Server起動
	e := server.New(cfg, productH, orderH)
	if err := server.Start(e, cfg.Port); err != nil {
		zap.S().Fatalf("server stopped: %v", err)
	}
}
