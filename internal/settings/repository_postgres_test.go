package settings

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresGet_MissingRowYieldsDefaults(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(`SELECT id, "logoURL", "lineOfTheMonth" FROM settings WHERE id = \$1`).
		WithArgs(singletonID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "logoURL", "lineOfTheMonth"}))

	s, err := repo.Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.ID != singletonID || s.LogoURL != nil || s.LineOfTheMonth != nil {
		t.Fatalf("expected defaults, got %+v", s)
	}
}

func TestPostgresUpdate_InsertsWhenRowMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec(`UPDATE settings SET "logoURL" = \$1 WHERE id = \$2`).
		WithArgs("logo.png", singletonID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO settings \(id, "logoURL", "lineOfTheMonth"\) VALUES \(\$1, \$2, \$3\)`).
		WithArgs(singletonID, "logo.png", nil).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(`SELECT id, "logoURL", "lineOfTheMonth" FROM settings WHERE id = \$1`).
		WithArgs(singletonID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "logoURL", "lineOfTheMonth"}).
			AddRow(singletonID, "logo.png", nil))

	logo := "logo.png"
	s, err := repo.Update(map[string]*string{"logoURL": &logo})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.LogoURL == nil || *s.LogoURL != "logo.png" {
		t.Fatalf("logo not persisted: %+v", s)
	}
	if s.LineOfTheMonth != nil {
		t.Fatalf("line of the month must stay null: %+v", s)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresUpdate_ClearsWithNull(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec(`UPDATE settings SET "lineOfTheMonth" = \$1 WHERE id = \$2`).
		WithArgs(nil, singletonID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT id, "logoURL", "lineOfTheMonth" FROM settings WHERE id = \$1`).
		WithArgs(singletonID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "logoURL", "lineOfTheMonth"}).
			AddRow(singletonID, "logo.png", nil))

	s, err := repo.Update(map[string]*string{"lineOfTheMonth": nil})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.LineOfTheMonth != nil {
		t.Fatalf("field must be cleared: %+v", s)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
