package db

import (
	"io/fs"
	"strings"
	"testing"
)

func TestEmbeddedMigrations(t *testing.T) {
	t.Parallel()

	files, err := fs.Glob(migrations, "migrations/*.up.sql")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no migrations embedded")
	}

	stmt, err := migrations.ReadFile("migrations/001_funds.up.sql")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(stmt), "CREATE TABLE IF NOT EXISTS funds") {
		t.Error("001_funds.up.sql does not create the funds table")
	}
}
