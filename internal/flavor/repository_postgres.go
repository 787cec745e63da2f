package flavor

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	flavorColumns = `id, "flavorName", manufacturer, description, "shortDescription", type, categories, variants, "vgPgRatio", "imageURL", "dateAdded"`

	listFlavorsQuery = `
		SELECT ` + flavorColumns + `
		FROM flavors
		ORDER BY "dateAdded" DESC
	`
	getFlavorByIDQuery = `
		SELECT ` + flavorColumns + `
		FROM flavors
		WHERE id = $1
	`
	listByTypeAndCategoryQuery = `
		SELECT ` + flavorColumns + `
		FROM flavors
		WHERE (type = $1 OR type = 'Both') AND $2 = ANY(categories)
		ORDER BY "flavorName"
	`
	listNewestQuery = `
		SELECT ` + flavorColumns + `
		FROM flavors
		ORDER BY "dateAdded" DESC
		LIMIT $1
	`
	searchFlavorsQuery = `
		SELECT ` + flavorColumns + `
		FROM flavors
		WHERE "flavorName" ILIKE '%' || $1 || '%'
			OR manufacturer ILIKE '%' || $1 || '%'
			OR description ILIKE '%' || $1 || '%'
		ORDER BY "flavorName"
	`
	insertFlavorQuery = `
		INSERT INTO flavors (` + flavorColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`
	deleteFlavorQuery = `DELETE FROM flavors WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Flavor, error) {
	return r.queryFlavors(listFlavorsQuery)
}

func (r *PostgresRepository) GetByID(id string) (Flavor, error) {
	row := r.db.QueryRow(getFlavorByIDQuery, id)
	f, err := scanFlavor(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Flavor{}, ErrNotFound
		}
		return Flavor{}, err
	}
	return f, nil
}

func (r *PostgresRepository) ListByTypeAndCategory(variantType, category string) ([]Flavor, error) {
	return r.queryFlavors(listByTypeAndCategoryQuery, variantType, category)
}

func (r *PostgresRepository) ListNewest(limit int) ([]Flavor, error) {
	return r.queryFlavors(listNewestQuery, limit)
}

func (r *PostgresRepository) Search(query string) ([]Flavor, error) {
	return r.queryFlavors(searchFlavorsQuery, query)
}

func (r *PostgresRepository) Create(rec Record) (Flavor, error) {
	f := FromRecord(ToRecord(rec))
	f.ID = uuid.NewString()

	variantsJSON, err := json.Marshal(f.Variants)
	if err != nil {
		return Flavor{}, err
	}

	var imageURL any
	if f.ImageURL != nil {
		imageURL = *f.ImageURL
	}

	if _, err := r.db.Exec(
		insertFlavorQuery,
		f.ID,
		f.FlavorName,
		f.Manufacturer,
		f.Description,
		f.ShortDescription,
		f.Type,
		pq.Array(f.Categories),
		variantsJSON,
		f.VGPGRatio,
		imageURL,
		f.DateAdded,
	); err != nil {
		return Flavor{}, err
	}
	return f, nil
}

// Update writes only the keys present on the record so partial updates do not
// clobber unrelated columns.
func (r *PostgresRepository) Update(id string, rec Record) (Flavor, error) {
	rec = ToRecord(rec)
	if len(rec) == 0 {
		return r.GetByID(id)
	}

	sets := make([]string, 0, len(rec))
	args := make([]any, 0, len(rec)+1)
	for _, key := range storableKeys {
		value, ok := rec[key]
		if !ok {
			continue
		}
		arg, err := columnValue(key, value)
		if err != nil {
			return Flavor{}, err
		}
		args = append(args, arg)
		sets = append(sets, fmt.Sprintf(`%s = $%d`, quoteColumn(key), len(args)))
	}
	args = append(args, id)

	q := fmt.Sprintf(`UPDATE flavors SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))
	result, err := r.db.Exec(q, args...)
	if err != nil {
		return Flavor{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Flavor{}, err
	}
	if affected == 0 {
		return Flavor{}, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id string) error {
	result, err := r.db.Exec(deleteFlavorQuery, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) queryFlavors(query string, args ...any) ([]Flavor, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Flavor, 0)
	for rows.Next() {
		f, err := scanFlavor(rows)
		if err != nil {
			continue
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// columnValue converts a record value into its driver representation.
func columnValue(key string, value any) (any, error) {
	switch key {
	case "categories":
		return pq.Array(asStringSlice(value)), nil
	case "variants":
		return json.Marshal(asVariants(value))
	case "imageURL":
		if s := asString(value); s != "" {
			return s, nil
		}
		return nil, nil
	default:
		return value, nil
	}
}

// quoteColumn wraps camelCase column names in double quotes for Postgres.
func quoteColumn(key string) string {
	if strings.ToLower(key) == key {
		return key
	}
	return `"` + key + `"`
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFlavor(scanner rowScanner) (Flavor, error) {
	var (
		id           string
		name         sql.NullString
		manufacturer sql.NullString
		description  sql.NullString
		shortDesc    sql.NullString
		typ          sql.NullString
		categories   pq.StringArray
		variantsJSON []byte
		ratio        sql.NullString
		imageURL     sql.NullString
		dateAdded    time.Time
	)

	if err := scanner.Scan(
		&id,
		&name,
		&manufacturer,
		&description,
		&shortDesc,
		&typ,
		&categories,
		&variantsJSON,
		&ratio,
		&imageURL,
		&dateAdded,
	); err != nil {
		return Flavor{}, err
	}

	// Rows pass through the normalizer so loose or partial storage shapes
	// always come back as fully-populated flavors.
	rec := Record{
		"id":               id,
		"flavorName":       name.String,
		"manufacturer":     manufacturer.String,
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
	return FromRecord(rec), nil
}
