package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultDSN = "host=localhost port=5432 user=postgres password=postgres dbname=f1marketplace sslmode=disable"

// Connect はDBに接続して *gorm.DB を返す。
// 接続先はDATABASE_URLの1本だけで選ぶ。未設定ならローカルのデフォルト。
func Connect(databaseURL string) (*gorm.DB, error) {
	dsn := databaseURL
	if dsn == "" {
		dsn = defaultDSN
	}
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}
