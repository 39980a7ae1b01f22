package config

import "os"

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（デフォルト3000）

	DatabaseURL string // 接続文字列（未設定ならローカルのデフォルト）

	UploadDir string // 商品画像の保存先
	PublicDir string // フォールバック用の静的JSONの置き場所

	LogMode string // dev / production
	LogFile string // 空ならstdoutのみ

	APIBaseURL   string // クライアントが叩くAPIのベースURL
	CartStateDir string // クライアントのカート永続先（空ならホーム配下）
}

// Loadは環境変数から設定を組み立てる。必須項目はなく、全てデフォルトあり。
func Load() Config {
	return Config{
		Port:        getenv("PORT", "3000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		UploadDir:   getenv("UPLOAD_DIR", "uploads"),
		PublicDir:   getenv("PUBLIC_DIR", "public"),
		LogMode:     getenv("LOG_MODE", "dev"),
		LogFile:     os.Getenv("LOG_FILE"),

		APIBaseURL:   getenv("API_BASE_URL", "http://localhost:3000"),
		CartStateDir: os.Getenv("CART_STATE_DIR"),
	}
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
