package postgres

//nolint:revive
import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"luxhome/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	maxIdleConns    = 10
	maxOpenConns    = 10
	connMaxLifetime = 30 * time.Minute
)

var ErrNotConnected = errors.New("database connection is not established")

// Connection holds the read replica and the primary. Writes and transactions go to Write.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	return &Connection{
		Read:  Connect("read", *cfg, cfg.DB.Postgres.Read),
		Write: Connect("write", *cfg, cfg.DB.Postgres.Write),
	}
}

func (c *Connection) Ping(ctx context.Context) error {
	for name, db := range map[string]*sqlx.DB{"read": c.Read, "write": c.Write} {
		if db == nil {
			return fmt.Errorf("%s: %w", name, ErrNotConnected)
		}

		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	return nil
}

func (c *Connection) Close() error {
	var errs []error

	for _, db := range []*sqlx.DB{c.Read, c.Write} {
		if db != nil {
			errs = append(errs, db.Close())
		}
	}

	return errors.Join(errs...)
}

// DSN renders a postgres URL for node. The configured prefix is prepended to the database name.
func DSN(node config.Postgres, prefix string) string {
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(node.Username, node.Password),
		Host:   net.JoinHostPort(node.Host, node.Port),
		Path:   "/" + prefix + node.Name,
	}

	query := url.Values{}
	query.Set("sslmode", node.SSLMode)

	if node.Timezone != "" {
		query.Set("timezone", node.Timezone)
	}

	dsn.RawQuery = query.Encode()

	return dsn.String()
}

// Connect dials node, retrying up to MaxRetry times. It returns nil when every attempt fails.
func Connect(name string, cfg config.Config, node config.Postgres) *sqlx.DB {
	dsn := DSN(node, cfg.DB.Postgres.Prefix)
	wait := time.Duration(cfg.DB.Postgres.RetryWaitTime) * time.Second

	logger := log.With().
		Str("name", name).
		Str("host", node.Host).
		Str("port", node.Port).
		Str("dbName", cfg.DB.Postgres.Prefix+node.Name).
		Logger()

	for attempt := 1; attempt <= cfg.DB.Postgres.MaxRetry; attempt++ {
		db, err := sqlx.Connect("postgres", dsn)
		if err == nil {
			db.SetMaxIdleConns(maxIdleConns)
			db.SetMaxOpenConns(maxOpenConns)
			db.SetConnMaxLifetime(connMaxLifetime)

			logger.Info().Msg("connected to database")

			return db
		}

		logger.Error().Err(err).Int("attempt", attempt).Msg("failed connecting to database, retrying")

		time.Sleep(wait)
	}

	return nil
}
