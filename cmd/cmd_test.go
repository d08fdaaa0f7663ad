package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/todoboard/internal/database"
	"github.com/thenoetrevino/todoboard/internal/session"
)

func TestLogout_ClearsStoredSession(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	db, err := database.InitDB(ctx, dir)
	require.NoError(t, err)
	require.NoError(t, session.NewSQLiteStore(db).Save(ctx, "tok1"))
	require.NoError(t, db.Close())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"logout", "--data-dir", dir})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, Execute(ctx))
	assert.Contains(t, out.String(), "Signed out.")

	db, err = database.InitDB(ctx, dir)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	_, found, err := session.NewSQLiteStore(db).Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"serve", "logout"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}
