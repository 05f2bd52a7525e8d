package postgres

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsAreEmbeddedInOrder(t *testing.T) {
	names, err := migrationNames()
	require.NoError(t, err)

	require.NotEmpty(t, names)
	assert.Equal(t, "migration/0001_events.sql", names[0])

	buf, err := fs.ReadFile(migrationFS, names[0])
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(buf), "CREATE TABLE IF NOT EXISTS events"))
}

func TestOpenRequiresDSN(t *testing.T) {
	db := NewDB("", nil)

	assert.Error(t, db.Open(context.Background()))
	assert.NoError(t, db.Close(context.Background()))
}

func TestBeginTxRequiresOpen(t *testing.T) {
	db := NewDB("postgres://localhost/horizon", nil)

	_, err := db.BeginTx(context.Background())
	assert.Error(t, err)

	_, err = (&EventService{DB: db}).LoadEvents(context.Background())
	assert.Error(t, err)
}
