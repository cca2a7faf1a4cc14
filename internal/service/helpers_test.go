package service

import (
	"fmt"
	"time"

	"go_5_quiz_keep/internal/config"
	"go_5_quiz_keep/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB はテストごとに独立したインメモリSQLiteを返します。
// リポジトリをモックするテストでもトランザクションを張るために使います
func setupTestDB() *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

// setupMigratedDB は実リポジトリを使うテスト用
func setupMigratedDB() *gorm.DB {
	db := setupTestDB()
	if err := repository.AutoMigrate(db); err != nil {
		panic("failed to migrate database for testing: " + err.Error())
	}
	return db
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "QuizKeep"
	cfg.App.FrontendURL = "http://localhost:3000/"
	cfg.App.Timezone = "Asia/Tokyo"
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.AccessTokenTTL = time.Hour
	cfg.MagicLink.TTL = 15 * time.Minute
	return cfg
}

func intPtr(n int) *int { return &n }

// anyDB は *gorm.DB 引数用のマッチャー
var anyDB = mock.AnythingOfType("*gorm.DB")

// nilTime は since=nil の呼び出しにマッチします
var nilTime = (*time.Time)(nil)
