package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// writeFile — утилита записи временного файла конфигурации.
func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(data), 0o600))
	return p
}

// Полный корректный YAML под текущую структуру config.go.
const sampleYAML = `
env: "prod"
web:
  host: "0.0.0.0"
  port: "8080"
ops:
  host: "127.0.0.1"
  port: "9090"
backend:
  base_url: "http://api.internal:5000"
  timeout: "7s"
stub:
  host: "127.0.0.1"
  port: "5001"
  db_path: "/var/lib/webfront/inquiries.db"
  upload_dir: "/var/lib/webfront/uploads"
  admin_password: "secret"
  per_page: 20
`

// Минимальный YAML (всё остальное — через дефолты/ENV).
const minimalYAML = `
env: "stage"
`

// Некорректный YAML для проверки сообщений об ошибке.
const brokenYAML = `
env: [unclosed
`

// --- Адреса (JoinHostPort) ---

func TestWebConfig_Addr(t *testing.T) {
	t.Parallel()
	cfg := WebConfig{Host: "0.0.0.0", Port: "8080"}
	require.Equal(t, "0.0.0.0:8080", cfg.Addr())
}

func TestOpsConfig_Addr(t *testing.T) {
	t.Parallel()
	cfg := OpsConfig{Host: "127.0.0.1", Port: "9090"}
	require.Equal(t, "127.0.0.1:9090", cfg.Addr())
}

func TestStubConfig_Addr(t *testing.T) {
	t.Parallel()
	cfg := StubConfig{Host: "127.0.0.1", Port: "5001"}
	require.Equal(t, "127.0.0.1:5001", cfg.Addr())
}

func TestLoad_WithExplicitPath_OK(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", sampleYAML)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, "0.0.0.0", cfg.Web.Host)
	require.Equal(t, "8080", cfg.Web.Port)
	require.Equal(t, "127.0.0.1", cfg.Ops.Host)
	require.Equal(t, "9090", cfg.Ops.Port)

	require.Equal(t, "http://api.internal:5000", cfg.Backend.BaseURL)
	require.Equal(t, 7*time.Second, cfg.Backend.Timeout)

	require.Equal(t, "/var/lib/webfront/inquiries.db", cfg.Stub.DBPath)
	require.Equal(t, "/var/lib/webfront/uploads", cfg.Stub.UploadDir)
	require.Equal(t, "secret", cfg.Stub.AdminPassword)
	require.Equal(t, 20, cfg.Stub.PerPage)
}

func TestLoad_MinimalYAML_Defaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", minimalYAML)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	require.Equal(t, "stage", cfg.Env)
	require.Equal(t, "8080", cfg.Web.Port)
	require.Equal(t, "http://localhost:5000", cfg.Backend.BaseURL)
	require.Equal(t, 15*time.Second, cfg.Backend.Timeout)
	require.Equal(t, "hanstar", cfg.Stub.AdminPassword)
	require.Equal(t, 15, cfg.Stub.PerPage)
}

func TestLoad_BrokenYAML_Error(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", brokenYAML)

	_, err := Load(cfgPath)
	require.Error(t, err)
}

func TestLoad_MissingExplicitPath_Error(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_EnvPath_OK(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", minimalYAML)

	t.Setenv("CONFIG_PATH", cfgPath)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "stage", cfg.Env)
}
