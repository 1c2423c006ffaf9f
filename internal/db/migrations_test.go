package db

import (
	"path/filepath"
	"testing"
)

func TestOpenSQLiteAppliesMigrations(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "mira-migrations-test.db")

	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := database.DB(); err == nil {
			sqlDB.Close()
		}
	})

	expectedTables := []string{
		"users", "cycle_settings", "cycle_logs",
		"todos", "notes", "calendar_events",
		"notifications", "push_subscriptions",
	}
	for _, table := range expectedTables {
		var count int64
		err := database.Raw(
			`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&count).Error
		if err != nil {
			t.Fatalf("inspect table %s: %v", table, err)
		}
		if count != 1 {
			t.Fatalf("expected table %s to exist", table)
		}
	}

	var applied int64
	if err := database.Raw(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied).Error; err != nil {
		t.Fatalf("inspect schema_migrations: %v", err)
	}
	if applied == 0 {
		t.Fatal("expected at least one recorded migration")
	}
}

func TestOpenSQLiteIsIdempotent(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "mira-reopen-test.db")

	first, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	var appliedFirst int64
	if err := first.Raw(`SELECT COUNT(*) FROM schema_migrations`).Scan(&appliedFirst).Error; err != nil {
		t.Fatalf("inspect schema_migrations: %v", err)
	}
	if sqlDB, err := first.DB(); err == nil {
		sqlDB.Close()
	}

	second, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := second.DB(); err == nil {
			sqlDB.Close()
		}
	})

	var appliedSecond int64
	if err := second.Raw(`SELECT COUNT(*) FROM schema_migrations`).Scan(&appliedSecond).Error; err != nil {
		t.Fatalf("inspect schema_migrations: %v", err)
	}
	if appliedFirst != appliedSecond {
		t.Fatalf("reopen must not reapply migrations: %d vs %d", appliedFirst, appliedSecond)
	}
}

func TestOpenSQLiteAppliesPragmas(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "mira-pragma-test.db")

	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := database.DB(); err == nil {
			sqlDB.Close()
		}
	})

	// The glebarez driver ignores DSN query parameters, so the pragmas
	// must be applied as statements after connecting.
	var foreignKeys int64
	if err := database.Raw(`PRAGMA foreign_keys`).Scan(&foreignKeys).Error; err != nil {
		t.Fatalf("inspect foreign_keys pragma: %v", err)
	}
	if foreignKeys != 1 {
		t.Fatal("expected foreign key enforcement to be enabled")
	}
}

func TestSplitSQLStatements(t *testing.T) {
	statements := splitSQLStatements("CREATE TABLE a (id INTEGER); \n\nCREATE TABLE b (id INTEGER);\n;")
	if len(statements) != 2 {
		t.Fatalf("expected 2 statements, got %d: %v", len(statements), statements)
	}
}
