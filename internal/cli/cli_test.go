package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/techpark-119/Todo-App/internal/app"
	"github.com/techpark-119/Todo-App/internal/config"
	"github.com/techpark-119/Todo-App/internal/service"
	"github.com/techpark-119/Todo-App/internal/store"
)

func fileConfig(dir string) func() (config.Config, error) {
	return func() (config.Config, error) {
		var cfg config.Config
		cfg.Store.Driver = config.DriverFile
		cfg.Store.DataDir = dir
		return cfg, nil
	}
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "todoctl", cmd.Use)

	for _, name := range []string{"init", "export", "hash-password"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, newRootCommand(fileConfig(dir)), "init")
	require.NoError(t, err)
	assert.Contains(t, out, "initialized file store")

	for _, name := range []string{"todos", "categories", "users"} {
		_, err := os.Stat(filepath.Join(dir, name+".json"))
		assert.NoError(t, err, name)
	}

	data, err := os.ReadFile(filepath.Join(dir, "categories.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name": "Shopping"`)

	// a second run keeps existing data
	require.NoError(t, os.WriteFile(filepath.Join(dir, "todos.json"), []byte(`[{"id":"keep"}]`), 0o644))
	_, err = execute(t, newRootCommand(fileConfig(dir)), "init")
	require.NoError(t, err)
	data, err = os.ReadFile(filepath.Join(dir, "todos.json"))
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"keep"}]`, string(data))
}

// seedUser registers a user with one todo in the file store at dir.
func seedUser(t *testing.T, dir string) string {
	t.Helper()
	ctx := context.Background()
	b, err := store.NewFileBackend(dir)
	require.NoError(t, err)
	svcs := app.NewServices(store.New(b, nil), nil)
	svcs.Users.WithCost(bcrypt.MinCost)
	require.NoError(t, svcs.Init(ctx))

	u, err := svcs.Users.Register(ctx, "alice", "alice@example.com", "pw")
	require.NoError(t, err)
	_, err = svcs.Todos.Create(ctx, u.ID, service.CreateTodoInput{Title: "Water plants", Tags: "garden"})
	require.NoError(t, err)
	return u.ID
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	userID := seedUser(t, dir)

	out, err := execute(t, newRootCommand(fileConfig(dir)), "export", "--user", userID, "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "title: Water plants")
	assert.Contains(t, out, "username: alice")

	target := filepath.Join(t.TempDir(), "alice.json")
	_, err = execute(t, newRootCommand(fileConfig(dir)), "export", "-u", userID, "-o", target)
	require.NoError(t, err)
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{\n  \"todos\": ["))
	assert.NotContains(t, string(data), "password")
}

func TestExportCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	userID := seedUser(t, dir)

	_, err := execute(t, newRootCommand(fileConfig(dir)), "export")
	assert.Error(t, err, "--user is required")

	_, err = execute(t, newRootCommand(fileConfig(dir)), "export", "--user", userID, "--format", "xml")
	assert.ErrorContains(t, err, "invalid format")

	_, err = execute(t, newRootCommand(fileConfig(dir)), "export", "--user", "ghost")
	assert.Error(t, err)
}

func TestHashPasswordCommand(t *testing.T) {
	out, err := execute(t, NewRootCommand(), "hash-password", "--cost", "4", "admin")
	require.NoError(t, err)

	hash := strings.TrimSpace(out)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("admin")))
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 4, cost)

	_, err = execute(t, NewRootCommand(), "hash-password")
	assert.Error(t, err)
}
