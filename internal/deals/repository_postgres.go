package deals

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/lib/pq"

	"github.com/vaporhub/vape-shop-backend/internal/flavor"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listByManufacturerQuery = `
		SELECT id, "flavorName", manufacturer, description, "shortDescription", type, categories, variants, "vgPgRatio", "imageURL", "dateAdded"
		FROM flavors
		WHERE manufacturer = $1
		ORDER BY "flavorName"
	`
	listManufacturersQuery = `
		SELECT DISTINCT manufacturer
		FROM flavors
		WHERE manufacturer <> ''
		ORDER BY manufacturer
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByManufacturer(manufacturer string) ([]flavor.Flavor, error) {
	rows, err := r.db.Query(listByManufacturerQuery, manufacturer)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]flavor.Flavor, 0)
	for rows.Next() {
		var (
			id           string
			name         sql.NullString
			maker        sql.NullString
			description  sql.NullString
			shortDesc    sql.NullString
			typ          sql.NullString
			categories   pq.StringArray
			variantsJSON []byte
			ratio        sql.NullString
			imageURL     sql.NullString
			dateAdded    time.Time
		)
		if err := rows.Scan(&id, &name, &maker, &description, &shortDesc, &typ, &categories, &variantsJSON, &ratio, &imageURL, &dateAdded); err != nil {
			continue
		}

		rec := flavor.Record{
			"id":               id,
			"flavorName":       name.String,
			"manufacturer":     maker.String,
			"description":      description.String,
			"shortDescription": shortDesc.String,
			"type":             typ.String,
			"categories":       []string(categories),
			"vgPgRatio":        ratio.String,
			"dateAdded":        dateAdded,
		}
		if imageURL.Valid {
			rec["imageURL"] = imageURL.String
		}
		var variants any
		if err := json.Unmarshal(variantsJSON, &variants); err == nil {
			rec["variants"] = variants
		}
		out = append(out, flavor.FromRecord(rec))
	}
	return out, rows.Err()
}

func (r *PostgresRepository) ListManufacturers() ([]string, error) {
	rows, err := r.db.Query(listManufacturersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			continue
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
