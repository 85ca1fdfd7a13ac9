package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	defaultDSN           = "file:boltpass.db?cache=shared"
	defaultAuthSecret    = "dev-secret-key"
	defaultBaseURL       = "localhost:3000"
	defaultCORSOrigins   = "*"
	defaultAuthRateLimit = 20
	defaultTokenTTL      = 7 * 24 * time.Hour
)

type Config struct {
	// Server-side settings
	DatabaseDSN string `env:"DATABASE_URI"`
	AuthSecret  string `env:"AUTH_SECRET"`
	// EncKey: мастер-ключ записей, base64 от 32 байт. Пусто — случайный ключ на время жизни процесса.
	EncKey        string        `env:"ENC_KEY"`
	CORSOrigins   string        `env:"CORS_ALLOWED_ORIGINS"`
	AuthRateLimit int           `env:"AUTH_RATE_LIMIT"` // запросов в минуту с одного IP на register/login
	TokenTTL      time.Duration `env:"TOKEN_TTL"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL string `env:"-"`
	TokenFile string `env:"TOKEN_FILE"`
	Version   bool   `env:"-"` // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// значения из env становятся дефолтами флагов: явно переданный флаг перекрывает env
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (postgres:// или sqlite DSN)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.StringVar(&cfg.EncKey, "enc-key", cfg.EncKey, "мастер-ключ шифрования записей (base64, 32 байта)")
	flag.StringVar(&cfg.CORSOrigins, "cors-origins", cfg.CORSOrigins, "разрешённые CORS origins через запятую")
	flag.IntVar(&cfg.AuthRateLimit, "auth-rate", cfg.AuthRateLimit, "лимит запросов register/login в минуту с IP")
	flag.DurationVar(&cfg.TokenTTL, "token-ttl", cfg.TokenTTL, "время жизни сессионного токена")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "address of the BoltPass server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	// Client flags
	flag.StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "path to auth token file (client)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

// applyDefaults заполняет незаданные поля и вычисляет ServerURL.
func (cfg *Config) applyDefaults() {
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = defaultDSN
	}
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = defaultAuthSecret
	}
	if strings.TrimSpace(cfg.CORSOrigins) == "" {
		cfg.CORSOrigins = defaultCORSOrigins
	}
	if cfg.AuthRateLimit <= 0 {
		cfg.AuthRateLimit = defaultAuthRateLimit
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}
	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = defaultBaseURL
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	if cfg.TokenFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir, _ = os.UserHomeDir()
		}
		cfg.TokenFile = filepath.Join(dir, "boltpass", "token")
	}
}

// AllowedOrigins разбирает CORS_ALLOWED_ORIGINS в список.
func (cfg *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(cfg.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
