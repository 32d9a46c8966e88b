package services

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"HSP-PORTAL/internal"
	"HSP-PORTAL/internal/models"
)

func setupMockStatisticsDB(t *testing.T) sqlmock.Sqlmock {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	prev := internal.DB
	internal.DB = gdb
	t.Cleanup(func() {
		internal.DB = prev
		db.Close()
	})

	return mock
}

func TestIncrementStat_ExistingRow(t *testing.T) {
	mock := setupMockStatisticsDB(t)
	today := time.Now().UTC().Format("2006-01-02")

	// A single atomic UPDATE, no read-then-write
	mock.ExpectExec(`UPDATE "statistics" SET "count"=count \+ 1`).
		WithArgs(models.StatDocumentDownload, today).
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := NewStatisticsService()
	require.NoError(t, svc.IncrementStat(models.StatDocumentDownload))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementStat_CreatesRowOnFirstEvent(t *testing.T) {
	mock := setupMockStatisticsDB(t)
	today := time.Now().UTC().Format("2006-01-02")

	mock.ExpectExec(`UPDATE "statistics" SET "count"=count \+ 1`).
		WithArgs(models.StatMemberExport, today).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO "statistics"`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	svc := NewStatisticsService()
	require.NoError(t, svc.IncrementStat(models.StatMemberExport))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementStat_InsertRaceFallsBackToUpdate(t *testing.T) {
	mock := setupMockStatisticsDB(t)
	today := time.Now().UTC().Format("2006-01-02")

	mock.ExpectExec(`UPDATE "statistics" SET "count"=count \+ 1`).
		WithArgs(models.StatApplicationSubmit, today).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO "statistics"`).
		WillReturnError(errors.New(`duplicate key value violates unique constraint "idx_stat_event_date"`))
	mock.ExpectExec(`UPDATE "statistics" SET "count"=count \+ 1`).
		WithArgs(models.StatApplicationSubmit, today).
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := NewStatisticsService()
	require.NoError(t, svc.IncrementStat(models.StatApplicationSubmit))
	require.NoError(t, mock.ExpectationsWereMet())
}
