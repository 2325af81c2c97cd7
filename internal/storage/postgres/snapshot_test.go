package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varundevpro/kuvaka-tech-assignment/internal/model"
)

func newMockConnection(t *testing.T) (*Connection, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &Connection{DB: db}, mock
}

func TestSnapshotRepository_Load(t *testing.T) {
	query := regexp.QuoteMeta(`SELECT data FROM snapshots WHERE key = $1`)

	tests := []struct {
		name    string
		setup   func(sqlmock.Sqlmock)
		want    []byte
		wantErr error
		errText string
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs("root").
					WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow([]byte(`{"version":1}`)))
			},
			want: []byte(`{"version":1}`),
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs("root").WillReturnError(sql.ErrNoRows)
			},
			wantErr: model.ErrNotFound,
		},
		{
			name: "query error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs("root").WillReturnError(errors.New("connection reset"))
			},
			errText: "failed to load snapshot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			tt.setup(mock)

			got, err := NewSnapshotRepository(conn).Load(context.Background(), "root")
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.errText != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errText)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSnapshotRepository_Save(t *testing.T) {
	query := `INSERT INTO snapshots`

	t.Run("upsert", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectExec(query).WithArgs("root", []byte("data")).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewSnapshotRepository(conn).Save(context.Background(), "root", []byte("data")))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectExec(query).WillReturnError(errors.New("disk full"))

		err := NewSnapshotRepository(conn).Save(context.Background(), "root", []byte("data"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to save snapshot")
	})
}

func TestSnapshotRepository_Delete(t *testing.T) {
	query := regexp.QuoteMeta(`DELETE FROM snapshots WHERE key = $1`)

	t.Run("success", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectExec(query).WithArgs("root").WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewSnapshotRepository(conn).Delete(context.Background(), "root"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectExec(query).WithArgs("root").WillReturnError(errors.New("boom"))

		err := NewSnapshotRepository(conn).Delete(context.Background(), "root")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to delete snapshot")
	})
}
