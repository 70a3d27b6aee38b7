package database

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"autoledger/internal/logger"
)

func init() {
	logger.Init("test")
}

func sqliteConfig(t *testing.T) *Config {
	t.Helper()
	return &Config{Driver: DriverSQLite, Path: filepath.Join(t.TempDir(), "test.db")}
}

func TestManager_ConnectIsIdempotent(t *testing.T) {
	m := NewManager(sqliteConfig(t))
	defer m.Close()

	first, err := m.Connect(context.Background())
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	second, err := m.Connect(context.Background())
	if err != nil {
		t.Fatalf("second connect failed: %v", err)
	}

	a, _ := first.DB()
	b, _ := second.DB()
	if a != b {
		t.Error("expected both calls to share one pool")
	}
}

func TestManager_ConcurrentConnect(t *testing.T) {
	m := NewManager(sqliteConfig(t))
	defer m.Close()

	var wg sync.WaitGroup
	pools := make(chan any, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			db, err := m.Connect(context.Background())
			if err != nil {
				t.Errorf("connect failed: %v", err)
				return
			}
			sqlDB, _ := db.DB()
			pools <- sqlDB
		}()
	}
	wg.Wait()
	close(pools)

	var first any
	for p := range pools {
		if first == nil {
			first = p
			continue
		}
		if p != first {
			t.Fatal("concurrent callers received different pools")
		}
	}
}

func TestManager_MigrateSQLite(t *testing.T) {
	m := NewManager(sqliteConfig(t))
	defer m.Close()

	if err := m.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	db, _ := m.Connect(context.Background())
	for _, table := range []string{"users", "vehicles", "fuel_entries", "expense_entries", "income_entries", "catalog_entries", "user_preferences", "audit_logs"} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("table %q should exist after migration", table)
		}
	}
}

func TestConfig_DSN(t *testing.T) {
	pg := &Config{Driver: DriverPostgres, Host: "db", Port: "5432", User: "u", Password: "p", DBName: "n", SSLMode: "disable"}
	if got, want := pg.DSN(), "host=db port=5432 user=u password=p dbname=n sslmode=disable"; got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
	if got, want := pg.MigrationURL(), "postgres://u:p@db:5432/n?sslmode=disable"; got != want {
		t.Errorf("MigrationURL() = %q, want %q", got, want)
	}

	lite := &Config{Driver: DriverSQLite, Path: "/tmp/x.db"}
	if lite.DSN() != "/tmp/x.db" {
		t.Errorf("sqlite DSN() = %q", lite.DSN())
	}
}

func TestNewConfig_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	if _, err := NewConfig(); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}
