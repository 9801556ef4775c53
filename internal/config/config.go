package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreDriverFile     = "file"
	StoreDriverPostgres = "postgres"
)

// Configはアプリ全体の設定。起動時に読み、以後は変更しない
type Config struct {
	Port string // サーバーポート（8080）

	StoreDriver string // file / postgres
	OrdersFile  string // fileドライバの保存先

	UnitPrice int           // 1個あたりの価格（固定）
	Retention time.Duration // 注文の保持時間
	Contacts  []string      // 問い合わせ先

	AdminPasswordHash string // 管理者パスワードのbcryptハッシュ
	JWTSecret         string // JWT署名シークレット

	DatabaseURL      string // あれば最優先で使う
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     string
	PostgresSSLMode  string
}

// Loadは環境変数
func Load() (Config, error) {
	unitPrice, err := intEnv("UNIT_PRICE", 20)
	if err != nil {
		return Config{}, err
	}

	retention, err := durationEnv("ORDER_TTL", 4*time.Hour)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: getenv("PORT", "8080"),

		StoreDriver: getenv("STORE_DRIVER", StoreDriverFile),
		OrdersFile:  getenv("ORDERS_FILE", "orders.json"),

		UnitPrice: unitPrice,
		Retention: retention,
		Contacts:  splitList(getenv("CONTACTS", "0718 357 737-Alimoo")),

		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTSecret:         os.Getenv("JWT_SECRET"),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "chapati"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getenv("POSTGRES_PORT", "5432"),
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),
	}

	//必須チェック
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.AdminPasswordHash == "" {
		return Config{}, fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}
	if cfg.UnitPrice < 1 {
		return Config{}, fmt.Errorf("UNIT_PRICE must be 1 or more")
	}
	if cfg.Retention <= 0 {
		return Config{}, fmt.Errorf("ORDER_TTL must be positive")
	}

	switch cfg.StoreDriver {
	case StoreDriverFile:
		if cfg.OrdersFile == "" {
			return Config{}, fmt.Errorf("ORDERS_FILE is required")
		}
	case StoreDriverPostgres:
		// 接続値はデフォルトかDATABASE_URLで揃う
	default:
		return Config{}, fmt.Errorf("STORE_DRIVER must be %q or %q", StoreDriverFile, StoreDriverPostgres)
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be duration like 4h: %w", key, err)
	}
	return d, nil
}

// カンマ区切りをスライスに直す（空要素は捨てる）
func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
