package db

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPanicsBeforeInit(t *testing.T) {
	SetForTesting(nil)
	assert.False(t, Ready())
	assert.Panics(t, func() { Get() })
}

func TestExecUsesTestDatabase(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	SetForTesting(mockDB)
	defer SetForTesting(nil)

	mock.ExpectExec("DELETE FROM Submission").WillReturnResult(sqlmock.NewResult(0, 3))

	res, err := Exec(context.Background(), "DELETE FROM Submission")
	require.NoError(t, err)
	n, _ := res.RowsAffected()
	assert.Equal(t, int64(3), n)
	assert.True(t, Ready())
	assert.NoError(t, mock.ExpectationsWereMet())
}
