package store

import (
	"context"
	"strconv"

	"github.com/jmoiron/sqlx"
)

// DefaultSessionSize is the session cap used when no setting is stored.
const DefaultSessionSize = 20

const sessionSizeKey = "session_size"

// Settings are the user's stored preferences.
type Settings struct {
	SessionSize int
}

// SettingsRepo stores settings as key/value rows. Missing or corrupt
// values fall back to defaults.
type SettingsRepo struct {
	db *sqlx.DB
}

// Load returns the stored settings, with defaults filled in.
func (r *SettingsRepo) Load(ctx context.Context) Settings {
	s := Settings{SessionSize: DefaultSessionSize}

	var raw string
	if err := r.db.GetContext(ctx, &raw,
		`SELECT value FROM settings WHERE key = ?`, sessionSizeKey); err != nil {
		return s
	}
	if n, err := strconv.Atoi(raw); err == nil && n > 0 {
		s.SessionSize = n
	}
	return s
}

// Save stores the settings.
func (r *SettingsRepo) Save(ctx context.Context, s Settings) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		sessionSizeKey, strconv.Itoa(s.SessionSize))
	return err
}
