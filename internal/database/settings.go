package database

import (
	"context"
	"database/sql"
	"errors"
)

// Setting keys.
const (
	SettingLastTechnique = "last_technique"
	SettingTheme         = "theme"
)

func (d *Database) GetSetting(ctx context.Context, key string) (string, bool) {
	var value sql.NullString
	err := d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			d.log.Warn().Err(wrapSettingErr("get", key, err)).Msg("setting lookup failed")
		}
		return "", false
	}
	return value.String, value.Valid
}

func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	_, err := d.DB.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, nullableString(value))
	return wrapSettingErr("set", key, err)
}
