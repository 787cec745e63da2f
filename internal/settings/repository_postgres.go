package settings

import (
	"database/sql"
	"fmt"
	"strings"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	getSettingsQuery = `SELECT id, "logoURL", "lineOfTheMonth" FROM settings WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Get returns the singleton row; a missing row yields defaults, not an error.
func (r *PostgresRepository) Get() (Settings, error) {
	var (
		s    Settings
		logo sql.NullString
		lotm sql.NullString
	)
	err := r.db.QueryRow(getSettingsQuery, singletonID).Scan(&s.ID, &logo, &lotm)
	if err != nil {
		if err == sql.ErrNoRows {
			return Settings{ID: singletonID}, nil
		}
		return Settings{}, err
	}
	if logo.Valid {
		s.LogoURL = &logo.String
	}
	if lotm.Valid {
		s.LineOfTheMonth = &lotm.String
	}
	return s, nil
}

// Update writes the provided fields; when the singleton row does not exist
// yet it is inserted instead (update-or-insert on the fixed key).
func (r *PostgresRepository) Update(fields map[string]*string) (Settings, error) {
	if len(fields) == 0 {
		return r.Get()
	}

	sets := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields)+1)
	for _, key := range []string{"logoURL", "lineOfTheMonth"} {
		value, ok := fields[key]
		if !ok {
			continue
		}
		args = append(args, nullable(value))
		sets = append(sets, fmt.Sprintf(`"%s" = $%d`, key, len(args)))
	}
	args = append(args, singletonID)

	q := fmt.Sprintf(`UPDATE settings SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))
	result, err := r.db.Exec(q, args...)
	if err != nil {
		return Settings{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Settings{}, err
	}
	if affected == 0 {
		if err := r.insert(fields); err != nil {
			return Settings{}, err
		}
	}
	return r.Get()
}

func (r *PostgresRepository) insert(fields map[string]*string) error {
	var logo, lotm *string
	if v, ok := fields["logoURL"]; ok {
		logo = v
	}
	if v, ok := fields["lineOfTheMonth"]; ok {
		lotm = v
	}
	_, err := r.db.Exec(
		`INSERT INTO settings (id, "logoURL", "lineOfTheMonth") VALUES ($1, $2, $3)`,
		singletonID, nullable(logo), nullable(lotm),
	)
	return err
}

func nullable(value *string) any {
	if value == nil {
		return nil
	}
	return *value
}
