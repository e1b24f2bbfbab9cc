//go:build integration

package integration

// Test environment setup and server lifecycle management.
//
// TestMain (main_test.go) starts a single PostgreSQL container (testcontainers) for the package.
// Each test creates an empty temporary database in that container and applies all the
// migrations so the schema reflects the latest code. The database is dropped after the test.
//
// By default the server logs are not included in the test output, you can enable them with:
//
//	ENABLE_SERVER_LOGS=true go test -tags=integration -v ./test/integration
//

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/biztime-dev/biztime/internal/biztime"
	"github.com/biztime-dev/biztime/internal/config"
	"github.com/biztime-dev/biztime/internal/database"
	"github.com/biztime-dev/biztime/internal/logger"
	"github.com/biztime-dev/biztime/internal/server"
	"github.com/biztime-dev/biztime/sql/schema"
)

// testEnv provides access to test db and server for integration tests
type testEnv struct {
	baseURL  string
	cfg      *config.ServerEnvironment
	pool     *pgxpool.Pool
	queries  *database.Queries
	shutdown func()
}

// startInProcessServer starts biztime-server in-process for testing.
// deletePolicy sets COMPANY_DELETE_POLICY.
func startInProcessServer(t *testing.T, deletePolicy biztime.DeletePolicy) *testEnv {
	t.Helper()

	testEnv := &testEnv{}

	t.Log("Starting in-process server...")

	var (
		ctx          = context.Background()
		host         = "localhost"
		port         = findFreePort(t)
		rateLimitRPS = 0
		environment  = "test"
	)

	// configure db
	testEnv.pool = setupTestDatabase(t)
	testDatabaseURL := testEnv.pool.Config().ConnString()

	// t.Setenv restores the original values when the test completes
	testEnvVars := map[string]string{
		"HOST":                  host,
		"PORT":                  fmt.Sprintf("%d", port),
		"ENVIRONMENT":           environment,
		"LOG_LEVEL":             "none",
		"RATE_LIMIT_RPS":        fmt.Sprintf("%d", rateLimitRPS),
		"DATABASE_URL":          testDatabaseURL,
		"COMPANY_DELETE_POLICY": string(deletePolicy),
	}
	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	cfg, err := config.NewServerConfig()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	testEnv.queries = database.New(testEnv.pool)

	logLevel := logger.ParseLogLevel("none")
	if os.Getenv("ENABLE_SERVER_LOGS") == "true" {
		logLevel = logger.ParseLogLevel("debug")
	}
	appLogger := logger.InitLogger(logLevel, environment)

	serverInstance := server.NewServer(
		testEnv.pool,
		database.NewStore(testEnv.pool),
		cfg,
		appLogger,
	)

	// Create a cancellable context for server shutdown
	serverCtx, serverCancel := context.WithCancel(ctx)

	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := serverInstance.Start(serverCtx); err != nil {
			serverDone <- err
		}
	}()

	testEnv.shutdown = func() {
		t.Log("Stopping server...")

		serverCancel()

		select {
		case err := <-serverDone:
			if err != nil {
				t.Logf("Server shutdown with error: %v", err)
			} else {
				t.Log("Server shut down gracefully")
			}
		case <-time.After(5 * time.Second):
			t.Log("Server shutdown timeout")
		}
	}
	t.Cleanup(testEnv.shutdown)

	testEnv.baseURL = fmt.Sprintf("http://localhost:%d", port)
	testEnv.cfg = cfg

	if !waitForServer(t, testEnv.baseURL+"/health/live", 30*time.Second) {
		t.Fatal("Server failed to start within timeout")
	}

	t.Logf("Server started at %s", testEnv.baseURL)
	return testEnv
}

func findFreePort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("Failed to find free port: %v", err)
	}
	defer listener.Close()

	addr := listener.Addr().(*net.TCPAddr)
	return addr.Port
}

func waitForServer(t *testing.T, url string, timeout time.Duration) bool {
	t.Helper()

	client := &http.Client{Timeout: 1 * time.Second}
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return true
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	return false
}

// withDatabase returns the container URL with the database name replaced
func withDatabase(t *testing.T, connURL, dbname string) string {
	t.Helper()

	u, err := url.Parse(connURL)
	if err != nil {
		t.Fatalf("Failed to parse database URL: %v", err)
	}
	u.Path = "/" + dbname
	return u.String()
}

// setupTestDatabase creates an empty test db, applies migrations and returns a connection pool
func setupTestDatabase(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctx := context.Background()
	dbname := fmt.Sprintf("tmp_biztime_%d", time.Now().UnixNano())

	// Note: this pool stays open until after the test database is dropped in cleanup
	postgresPool := setupDatabaseConn(t, postgresURL)

	if _, err := postgresPool.Exec(ctx, "CREATE DATABASE "+dbname); err != nil {
		t.Fatalf("CREATE DATABASE Failed : %v", err)
	}

	testDatabasePool := setupDatabaseConn(t, withDatabase(t, postgresURL, dbname))

	// cleanups run last-in first-out: the test pool is closed before the database is dropped
	t.Cleanup(func() {
		testDatabasePool.Close()
		if _, err := postgresPool.Exec(ctx, "DROP DATABASE "+dbname); err != nil {
			t.Errorf("Failed to drop test database: %v", err)
		}
	})

	if err := runDatabaseMigrations(t, testDatabasePool); err != nil {
		t.Fatalf("Failed to apply database migrations: %v", err)
	}

	t.Logf("Database ready: %s", dbname)
	return testDatabasePool
}

func setupDatabaseConn(t *testing.T, databaseURL string) *pgxpool.Pool {
	t.Helper()

	ctx := context.Background()
	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		t.Fatalf("Failed to parse database URL: %v", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("Unable to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("Can't ping PostgreSQL server: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
	})

	return pool
}

// runDatabaseMigrations applies the embedded goose migrations to the test database
func runDatabaseMigrations(t *testing.T, pool *pgxpool.Pool) error {
	t.Helper()

	// Convert pgx pool to database/sql interface that Goose expects
	var db *sql.DB = stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(schema.FS)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
