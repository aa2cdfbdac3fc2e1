package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE result_cache (slot TEXT PRIMARY KEY, not_following_back TEXT NOT NULL, both_directions INTEGER)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "result_cache")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	byName := ColumnsByName(columns)
	require.Len(t, byName, 3)

	assert.Equal(t, "text", byName["slot"].Type)
	assert.Equal(t, "PRI", byName["slot"].Key)
	assert.Equal(t, "NO", byName["not_following_back"].Null)
	assert.Equal(t, "integer", byName["both_directions"].Type)

	// PRAGMA table_info returns an empty result for a missing table
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}
