package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Mode string

const (
	// ModeProduction refuses to start without real secrets and backends.
	ModeProduction Mode = "production"
	// ModeDemo runs with the random prediction source, an in-process gateway
	// and mock login. Every degraded piece is announced at startup.
	ModeDemo Mode = "demo"
)

const (
	PredictionRandom = "random"
	PredictionHTTP   = "http"
)

type Config struct {
	Mode    Mode
	AppPort string

	MongoURI string
	MongoDB  string

	JWTSecret string
	JWTTTL    time.Duration

	RazorpayKeyID     string
	RazorpayKeySecret string
	RazorpayBaseURL   string

	PredictionSource string
	AIServiceURL     string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs int

	AuditDriver string
	AuditDSN    string
	MySQLHost   string
	MySQLPort   string
	MySQLDB     string
	MySQLUser   string
	MySQLPass   string

	NotifyWebhookURL string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

const (
	demoJWTSecret      = "demo-only-jwt-secret"
	demoRazorpaySecret = "demo-only-razorpay-secret"
)

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	_ = godotenv.Load()

	c := &Config{
		Mode:    Mode(strings.ToLower(getenv("APP_MODE", string(ModeDemo)))),
		AppPort: getenv("APP_PORT", getenv("PORT", "3000")),

		MongoURI: getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getenv("MONGO_DB", "agrimarket_dev"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTTTL:    time.Duration(getenvInt("JWT_TTL_HOURS", 24)) * time.Hour,

		RazorpayKeyID:     getenv("RAZORPAY_KEY_ID", "rzp_test_demo"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		RazorpayBaseURL:   getenv("RAZORPAY_BASE_URL", "https://api.razorpay.com/v1"),

		PredictionSource: getenv("PREDICTION_SOURCE", PredictionRandom),
		AIServiceURL:     getenv("AI_SERVICE_URL", "http://localhost:5000/api/predict"),

		RedisAddr:    getenv("REDIS_ADDR", "localhost:6379"),
		RedisDB:      getenvInt("REDIS_DB", 0),
		IdempTTLSecs: getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),

		AuditDriver: getenv("AUDIT_DRIVER", "sqlite"),
		AuditDSN:    os.Getenv("AUDIT_DSN"),
		MySQLHost:   getenv("MYSQL_HOST", "mysql"),
		MySQLPort:   getenv("MYSQL_PORT", "3306"),
		MySQLDB:     getenv("MYSQL_DB", "agrimarket"),
		MySQLUser:   getenv("MYSQL_USER", "agrimarket"),
		MySQLPass:   getenv("MYSQL_PASS", "agrimarket"),

		NotifyWebhookURL: os.Getenv("NOTIFY_WEBHOOK_URL"),

		ReadTimeout:  time.Duration(getenvInt("HTTP_READ_TIMEOUT_SECONDS", 15)) * time.Second,
		WriteTimeout: time.Duration(getenvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)) * time.Second,
	}
	if c.Mode == ModeDemo && c.JWTSecret == "" {
		c.JWTSecret = demoJWTSecret
	}
	return c
}

func (c *Config) IsDemo() bool { return c.Mode == ModeDemo }

func (c *Config) Validate() error {
	switch c.Mode {
	case ModeProduction, ModeDemo:
	default:
		return fmt.Errorf("invalid APP_MODE %q (want production or demo)", c.Mode)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if _, err := net.LookupPort("tcp", c.AppPort); err != nil {
		return fmt.Errorf("invalid APP_PORT %q: %w", c.AppPort, err)
	}
	if !strings.HasPrefix(c.MongoURI, "mongodb://") && !strings.HasPrefix(c.MongoURI, "mongodb+srv://") {
		return fmt.Errorf("invalid MONGO_URI %q", c.MongoURI)
	}
	if c.MongoDB == "" {
		return errors.New("missing MONGO_DB")
	}
	switch c.PredictionSource {
	case PredictionRandom:
	case PredictionHTTP:
		if _, err := url.ParseRequestURI(c.AIServiceURL); err != nil {
			return fmt.Errorf("invalid AI_SERVICE_URL %q: %w", c.AIServiceURL, err)
		}
	default:
		return fmt.Errorf("invalid PREDICTION_SOURCE %q (want random or http)", c.PredictionSource)
	}
	switch c.AuditDriver {
	case "sqlite", "mysql":
	default:
		return fmt.Errorf("invalid AUDIT_DRIVER %q (want sqlite or mysql)", c.AuditDriver)
	}
	if c.IdempTTLSecs <= 0 {
		return errors.New("IDEMPOTENCY_TTL_SECONDS must be positive")
	}

	if c.Mode == ModeProduction {
		var missing []string
		if c.JWTSecret == "" {
			missing = append(missing, "JWT_SECRET")
		}
		if c.RazorpayKeySecret == "" {
			missing = append(missing, "RAZORPAY_KEY_SECRET")
		}
		if len(missing) > 0 {
			return fmt.Errorf("production mode requires %s", strings.Join(missing, ", "))
		}
		if c.PredictionSource != PredictionHTTP {
			return errors.New("production mode requires PREDICTION_SOURCE=http")
		}
		if c.AuditDriver == "mysql" {
			if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
				return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
			}
			if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
				return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
			}
		}
	}
	return nil
}

// DemoWarnings lists what demo mode is standing in for. Empty outside demo mode.
func (c *Config) DemoWarnings() []string {
	if !c.IsDemo() {
		return nil
	}
	var w []string
	if c.JWTSecret == demoJWTSecret {
		w = append(w, "JWT_SECRET not set: tokens are signed with a fixed demo key")
	}
	if c.RazorpayKeySecret == "" {
		w = append(w, "RAZORPAY_KEY_SECRET not set: orders go to the in-process demo gateway and signatures use a fixed demo key")
	}
	if c.PredictionSource == PredictionRandom {
		w = append(w, "PREDICTION_SOURCE=random: AI insights are randomly generated")
	}
	w = append(w, "mock login by email is enabled")
	return w
}

// SignatureSecret is the key payment signatures are checked against. Demo mode
// without a Razorpay secret signs with a fixed key so the flow can be driven by hand.
func (c *Config) SignatureSecret() string {
	if c.RazorpayKeySecret == "" && c.IsDemo() {
		return demoRazorpaySecret
	}
	return c.RazorpayKeySecret
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}

// AuditDataSource resolves the DSN for the configured audit driver.
func (c *Config) AuditDataSource() string {
	if c.AuditDSN != "" {
		return c.AuditDSN
	}
	if c.AuditDriver == "mysql" {
		return c.MySQLDSN()
	}
	return "file:audit.db?cache=shared"
}

// Redacted is safe to print.
func (c *Config) Redacted() map[string]any {
	mask := func(s string) string {
		if s == "" {
			return ""
		}
		return "[REDACTED]"
	}
	return map[string]any{
		"mode":              c.Mode,
		"port":              c.AppPort,
		"mongo_db":          c.MongoDB,
		"jwt_secret":        mask(c.JWTSecret),
		"razorpay_key_id":   c.RazorpayKeyID,
		"razorpay_secret":   mask(c.RazorpayKeySecret),
		"prediction_source": c.PredictionSource,
		"ai_service_url":    c.AIServiceURL,
		"redis_addr":        c.RedisAddr,
		"audit_driver":      c.AuditDriver,
		"notify_webhook":    c.NotifyWebhookURL != "",
	}
}
