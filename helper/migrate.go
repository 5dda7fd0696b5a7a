package helper

//nolint:revive
import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"luxhome/config"
	"luxhome/infras/postgres"
	"luxhome/migrations"
	"luxhome/shared/constant"
	"luxhome/shared/password"
	"luxhome/shared/timezone"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"

	superAdminInsert = `INSERT INTO users (id, email, password, role, active, created_at, modified_at, created_by, modified_by)
VALUES (:id, :email, :password, :role, TRUE, :now, :now, :by, :by)
ON CONFLICT (email) DO UPDATE SET password = EXCLUDED.password, role = EXCLUDED.role, active = TRUE, modified_at = EXCLUDED.modified_at`
)

var ErrUnknownAction = errors.New("unknown migration action")

func databaseURL(cfg *config.Config) string {
	dsn := postgres.DSN(cfg.DB.Postgres.Write, cfg.DB.Postgres.Prefix)

	if cfg.DB.Postgres.MigrationTable != "" {
		dsn += "&x-migrations-table=" + url.QueryEscape(cfg.DB.Postgres.MigrationTable)
	}

	return dsn
}

func newMigrate(cfg *config.Config) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations.Postgres, migrations.PostgresDir)
	if err != nil {
		return nil, fmt.Errorf("error opening embedded migrations: %w", err)
	}

	mig, err := migrate.NewWithSourceInstance("iofs", source, databaseURL(cfg))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// Runner applies one migration action against the write database.
func Runner(cfg *config.Config, action string) error {
	mig, err := newMigrate(cfg)
	if err != nil {
		return err
	}

	defer func() {
		if srcErr, dbErr := mig.Close(); srcErr != nil || dbErr != nil {
			log.Warn().AnErr("source", srcErr).AnErr("database", dbErr).Msg("failed to close migrate instance")
		}
	}()

	var run func() error

	switch action {
	case ActionUp:
		run = mig.Up
	case ActionDown:
		run = func() error { return mig.Steps(-1) }
	case ActionStepUp:
		run = func() error { return mig.Steps(1) }
	case ActionDrop:
		run = mig.Down
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	if err := run(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migration %s: %w", action, err)
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("error reading migration version: %w", err)
	}

	log.Info().Str("action", action).Uint("version", version).Bool("dirty", dirty).Msg("Database migration finished")

	return nil
}

func Up(cfg *config.Config) error {
	return Runner(cfg, ActionUp)
}

func StepUp(cfg *config.Config) error {
	return Runner(cfg, ActionStepUp)
}

func Down(cfg *config.Config) error {
	return Runner(cfg, ActionDown)
}

func Drop(cfg *config.Config) error {
	return Runner(cfg, ActionDrop)
}

// CreateSuperAdmin inserts or resets the superadmin account used to reach the admin API.
func CreateSuperAdmin(ctx context.Context, cfg *config.Config, email, plain string) error {
	db := postgres.Connect("write", *cfg, cfg.DB.Postgres.Write)
	if db == nil {
		return errors.New("database is unreachable")
	}

	defer db.Close()

	return InsertSuperAdmin(ctx, db, email, plain)
}

// InsertSuperAdmin upserts a superadmin by email with a bcrypt hashed password.
func InsertSuperAdmin(ctx context.Context, db *sqlx.DB, email, plain string) error {
	if email == constant.Empty {
		return errors.New("email is required")
	}

	hashed, err := password.Hash(plain)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = db.NamedExecContext(ctx, superAdminInsert, map[string]any{
		"id":       uuid.NewString(),
		"email":    email,
		"password": hashed,
		"role":     constant.RoleSuperAdmin,
		"now":      timezone.Now(),
		"by":       "migrate",
	})
	if err != nil {
		return fmt.Errorf("failed to save superadmin: %w", err)
	}

	log.Info().Str("email", email).Msg("Superadmin account is ready")

	return nil
}
