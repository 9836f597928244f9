package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App          AppConfig
	Database     DatabaseConfig
	JWT          JWTConfig
	CORS         CORSConfig
	Server       ServerConfig
	Board        BoardConfig
	Mail         MailConfig
	Housekeeping HousekeepingConfig
}

type AppConfig struct {
	Name string
	Env  string
	Port int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	Service         string
	User            string
	Password        string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	IsAutoMigrate   bool // true: 테이블 재생성, false: 마이그레이션 비활성화
}

// JWTConfig holds the shared secret for edit-session tokens and admin tokens.
// Admin tokens are issued by the auth provider with the same secret.
type JWTConfig struct {
	Secret          string
	EditTokenExpiry time.Duration
	AdminExpiry     time.Duration
}

type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

type ServerConfig struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	GracefulTimeout time.Duration
}

type BoardConfig struct {
	DefinitionsFile string // 비어 있으면 내장 게시판 정의 사용
}

type MailConfig struct {
	SendGridAPIKey string // 비어 있으면 콘솔 메일러 사용
	FromName       string
	FromAddress    string
	SiteURL        string
}

type HousekeepingConfig struct {
	Enabled   bool
	Interval  time.Duration
	Retention time.Duration // 마감 후 이 기간이 지난 글은 삭제
	Workers   int
}

func Load(env string) (*Config, error) {
	if err := loadEnvFile(env); err != nil {
		return nil, fmt.Errorf("환경 변수 로드 실패: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "tutor-board-api"),
			Env:  env,
			Port: getEnvAsInt("APP_PORT", 8080),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", ""),
			Port:            getEnvAsInt("DB_PORT", 1521),
			Service:         getEnv("DB_SERVICE", ""),
			User:            getEnv("DB_USER", ""),
			Password:        getEnv("DB_PASSWORD", ""),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", "1h"),
			ConnMaxIdleTime: getEnvAsDuration("DB_CONN_MAX_IDLE_TIME", "10m"),
			IsAutoMigrate:   getEnvAsBool("DB_AUTO_MIGRATE", false), // 기본값: false (안전)
		},
		JWT: JWTConfig{
			Secret:          getEnv("JWT_SECRET", ""),
			EditTokenExpiry: getEnvAsDuration("EDIT_TOKEN_EXPIRY", "30m"),
			AdminExpiry:     getEnvAsDuration("ADMIN_TOKEN_EXPIRY", "12h"),
		},
		CORS: CORSConfig{
			AllowedOrigins:   getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods:   getEnvAsSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
			AllowedHeaders:   getEnvAsSlice("CORS_ALLOWED_HEADERS", []string{"*"}),
			AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", true),
			MaxAge:           getEnvAsInt("CORS_MAX_AGE", 86400),
		},
		Server: ServerConfig{
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", "15s"),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", "15s"),
			IdleTimeout:     getEnvAsDuration("SERVER_IDLE_TIMEOUT", "60s"),
			GracefulTimeout: getEnvAsDuration("GRACEFUL_TIMEOUT", "30s"),
		},
		Board: BoardConfig{
			DefinitionsFile: getEnv("BOARD_DEFINITIONS_FILE", ""),
		},
		Mail: MailConfig{
			SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
			FromName:       getEnv("MAIL_FROM_NAME", "과외 게시판"),
			FromAddress:    getEnv("MAIL_FROM_ADDRESS", "no-reply@tutor-board.kr"),
			SiteURL:        getEnv("SITE_URL", "http://localhost:3000"),
		},
		Housekeeping: HousekeepingConfig{
			Enabled:   getEnvAsBool("HOUSEKEEPING_ENABLED", true),
			Interval:  getEnvAsDuration("HOUSEKEEPING_INTERVAL", "6h"),
			Retention: getEnvAsDuration("HOUSEKEEPING_RETENTION", "2160h"), // 90일
			Workers:   getEnvAsInt("HOUSEKEEPING_WORKERS", 1),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("환경 변수 검증 실패 : %w", err)
	}

	return cfg, nil
}

func loadEnvFile(env string) error {
	envFile := fmt.Sprintf(".env.%s", env)

	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		slog.Warn("환경 변수 파일을 찾을 수 없습니다. 시스템 환경 변수를 사용합니다.",
			"file", envFile)
		return nil
	}

	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("환경 변수 파일 로드 오류: %s: %w", envFile, err)
	}

	absPath, _ := filepath.Abs(envFile)
	slog.Info("환경 변수 파일 로드", "file", absPath)
	return nil
}

func (c *Config) Validate() error {
	var errors []string

	// App validation
	if c.App.Port < 1 || c.App.Port > 65535 {
		errors = append(errors, "유효하지 않은 포트 번호")
	}

	// Database validation
	if c.Database.Host == "" {
		errors = append(errors, "데이터베이스 Host가 필요합니다")
	}
	if c.Database.Service == "" {
		errors = append(errors, "데이터베이스 Service가 필요합니다")
	}
	if c.Database.User == "" {
		errors = append(errors, "데이터베이스 User가 필요합니다")
	}
	if c.Database.Password == "" {
		errors = append(errors, "데이터베이스 Password가 필요합니다")
	}

	// JWT validation
	if c.JWT.Secret == "" {
		errors = append(errors, "JWT Secret Key가 필요합니다")
	}
	if len(c.JWT.Secret) < 32 {
		errors = append(errors, "JWT Secret Key는 32자 이상이어야 합니다")
	}
	if c.JWT.EditTokenExpiry <= 0 {
		errors = append(errors, "수정 토큰 만료 시간은 0보다 커야 합니다")
	}

	// Housekeeping validation
	if c.Housekeeping.Enabled {
		if c.Housekeeping.Interval <= 0 {
			errors = append(errors, "HOUSEKEEPING_INTERVAL은 0보다 커야 합니다")
		}
		if c.Housekeeping.Retention <= 0 {
			errors = append(errors, "HOUSEKEEPING_RETENTION은 0보다 커야 합니다")
		}
		if c.Housekeeping.Workers < 1 {
			errors = append(errors, "HOUSEKEEPING_WORKERS는 1 이상이어야 합니다")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("유효성 검사 오류: %s", strings.Join(errors, ", "))
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "local" || c.App.Env == "dev"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "prod"
}

// ListingURL builds the public detail link used in notification emails.
func (c *Config) ListingURL(listingID string) string {
	return strings.TrimRight(c.Mail.SiteURL, "/") + "/listings/" + listingID
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	return strings.Split(valueStr, ",")
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	if defaultDuration, err := time.ParseDuration(defaultValue); err == nil {
		return defaultDuration
	}
	return 0
}
