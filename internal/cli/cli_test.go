package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Spok95/project-assistant/internal/config"
	"github.com/Spok95/project-assistant/internal/infra/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

const memoryConfig = `
app:
  env: test
store:
  driver: memory
auth:
  jwt_secret: test
`

func TestEstimatePlaster(t *testing.T) {
	cfg := writeConfig(t, memoryConfig)

	out, err := run(t, "--config", cfg, "estimate", "plaster", "--area", "10", "--mode", "coarse")
	require.NoError(t, err)

	assert.Contains(t, out, "Plaster (coarse), 10 m2")
	assert.Regexp(t, `sand\s+20 kg\s+0\s+20\s+2.00`, out)
	assert.Regexp(t, `TOTAL\s+5.50`, out)
}

func TestEstimatePaint_ColorsAndXLSX(t *testing.T) {
	cfg := writeConfig(t, memoryConfig)
	xlsx := filepath.Join(t.TempDir(), "paint.xlsx")

	out, err := run(t, "--config", cfg, "estimate", "paint", "--area", "45", "--colors", "white,red", "--xlsx", xlsx)
	require.NoError(t, err)
	assert.Regexp(t, `red\s+4 L\s+0\s+4\s+20.00`, out)
	assert.Regexp(t, `TOTAL\s+32.00`, out)

	f, err := excelize.OpenFile(xlsx)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	v, err := f.GetCellValue(f.GetSheetName(0), "A1")
	require.NoError(t, err)
	assert.Equal(t, "Paint, 45 m2", v)
}

func TestEstimatePlaster_UnknownMode(t *testing.T) {
	cfg := writeConfig(t, memoryConfig)

	out, err := run(t, "--config", cfg, "estimate", "plaster", "--area", "10", "--mode", "smooth")
	require.NoError(t, err)
	assert.Contains(t, out, "nothing to estimate")
}

func TestEstimate_RequiresArea(t *testing.T) {
	cfg := writeConfig(t, memoryConfig)

	_, err := run(t, "--config", cfg, "estimate", "paint")
	assert.Error(t, err)
}

func TestMigrate_SQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "data", "assistant.db")
	cfg := writeConfig(t, `
app:
  env: test
store:
  driver: sqlite
  sqlite: `+dbPath+`
auth:
  jwt_secret: test
`)

	_, err := run(t, "--config", cfg, "migrate")
	require.NoError(t, err)
	_, err = os.Stat(dbPath)
	assert.NoError(t, err)

	_, err = run(t, "--config", cfg, "migrate")
	assert.NoError(t, err)
}

func TestNewApp_RequiresSecretOutsideDev(t *testing.T) {
	cfg := writeConfig(t, "app:\n  env: prod\nstore:\n  driver: memory\n")

	_, err := run(t, "--config", cfg, "migrate")
	assert.EqualError(t, err, "auth.jwt_secret is required outside dev")
}

func TestNewApp_BotDisabledWithoutToken(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, memoryConfig+"telegram:\n  bot: true\n"))
	require.NoError(t, err)

	a, err := newApp(context.Background(), cfg, logger.NewWithWriter("test", &bytes.Buffer{}), nil)
	require.NoError(t, err)
	defer a.Close()

	assert.Nil(t, a.Bot())
	assert.NotNil(t, a.API())
}

func sqliteConfig(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "assistant.db")
	return writeConfig(t, `
app:
  env: test
store:
  driver: sqlite
  sqlite: `+dbPath+`
auth:
  jwt_secret: test
`)
}

func TestInventoryCommands(t *testing.T) {
	cfg := sqliteConfig(t)
	account := []string{"--email", "ana@example.com", "--password", "secret1"}

	out, err := run(t, "--config", cfg, "user", "register", "--email", "ana@example.com", "--password", "secret1")
	require.NoError(t, err)
	assert.Contains(t, out, "registered ana@example.com")

	out, err = run(t, append([]string{"--config", cfg, "inventory", "show"}, account...)...)
	require.NoError(t, err)
	assert.Regexp(t, `cement\s+0 kg`, out)

	out, err = run(t, append([]string{"--config", cfg, "inventory", "add", "blue", "3"}, account...)...)
	require.NoError(t, err)
	assert.Regexp(t, `blue\s+3 L`, out)

	out, err = run(t, append([]string{"--config", cfg, "inventory", "set", "cement=10", "sand=abc"}, account...)...)
	require.NoError(t, err)
	assert.Regexp(t, `cement\s+10 kg`, out)
	assert.Regexp(t, `sand\s+0 kg`, out)

	out, err = run(t, append([]string{"--config", cfg, "inventory", "show"}, account...)...)
	require.NoError(t, err)
	assert.Regexp(t, `blue\s+3 L`, out)
	assert.Regexp(t, `cement\s+10 kg`, out)
}

func TestInventoryCommands_Errors(t *testing.T) {
	cfg := sqliteConfig(t)

	_, err := run(t, "--config", cfg, "user", "register", "--email", "ana@example.com", "--password", "secret1", "--confirm", "other1")
	assert.EqualError(t, err, "passwords do not match")

	_, err = run(t, "--config", cfg, "user", "register", "--email", "ana@example.com", "--password", "secret1")
	require.NoError(t, err)

	_, err = run(t, "--config", cfg, "inventory", "show", "--email", "ana@example.com", "--password", "wrong-pass")
	assert.EqualError(t, err, "invalid email or password")

	_, err = run(t, "--config", cfg, "inventory", "add", "blue", "abc", "--email", "ana@example.com", "--password", "secret1")
	assert.EqualError(t, err, "enter a material name and a positive quantity")

	_, err = run(t, "--config", cfg, "inventory", "set", "cement", "--email", "ana@example.com", "--password", "secret1")
	assert.EqualError(t, err, `expected name=quantity, got "cement"`)
}
