package utils

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"time"

	helpers "github.com/Lineblocs/go-helpers"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"lineblocs.com/ledger/internal/ledger"
)

var db *sql.DB

func GetDBConnection() (*sql.DB, error) {
	if db != nil {
		return db, nil
	}
	var err error
	db, err = helpers.CreateDBConn()
	if err != nil {
		return nil, err
	}
	return db, nil
}

func Config(key string) string {
	if os.Getenv("USE_DOTENV") != "off" {
		_ = godotenv.Load(".env")
	}
	return os.Getenv(key)
}

func configDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	raw := Config(key)
	if raw == "" {
		return fallback
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		helpers.Log(logrus.WarnLevel, fmt.Sprintf("variable %s is setup incorrectly. %s=%s using default %s", key, key, raw, fallback))
		return fallback
	}
	return value
}

func configInt(key string, fallback int) int {
	raw := Config(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		helpers.Log(logrus.WarnLevel, fmt.Sprintf("variable %s is setup incorrectly. %s=%s using default %d", key, key, raw, fallback))
		return fallback
	}
	return value
}

// LedgerConfig reads the billing rates from the environment, falling back to the
// defaults for anything unset or unparsable.
func LedgerConfig() ledger.Config {
	defaults := ledger.DefaultConfig()
	renewalDays := configInt("BILLING_RENEWAL_DAYS", int(defaults.RenewalPeriod/(24*time.Hour)))
	return ledger.Config{
		RatePerMinute:      configDecimal("BILLING_RATE_PER_MINUTE", defaults.RatePerMinute),
		MonthlyFreeMinutes: configInt("BILLING_MONTHLY_FREE_MINUTES", defaults.MonthlyFreeMinutes),
		MinRequiredBalance: configDecimal("BILLING_MIN_REQUIRED_BALANCE", defaults.MinRequiredBalance),
		NumberMonthlyPrice: configDecimal("BILLING_NUMBER_MONTHLY_PRICE", defaults.NumberMonthlyPrice),
		RenewalPeriod:      time.Duration(renewalDays) * 24 * time.Hour,
	}
}

// ReconcileAfter is how long a completed call may stay unsettled before it is republished.
func ReconcileAfter() time.Duration {
	return time.Duration(configInt("RECONCILE_AFTER_MINUTES", 15)) * time.Minute
}

func CreateRedisClient(ctx context.Context) (*redis.Client, error) {
	opt, err := redis.ParseURL(Config("REDIS_URL"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_URL: %w", err)
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("could not connect to redis at %s: %w", opt.Addr, err)
	}
	return rdb, nil
}

func DialQueue() (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(Config("QUEUE_URL"))
	if err != nil {
		return nil, nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}
	return conn, ch, nil
}
