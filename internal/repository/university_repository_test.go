package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var universityColumns = []string{
	"id", "name", "location", "ranking", "rating", "tuition", "acceptance_rate",
	"programs", "image", "highlights", "deadline", "created_at", "updated_at",
}

func TestUniversityRepository_ListAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	firstID := uuid.New()
	secondID := uuid.New()

	rows := sqlmock.NewRows(universityColumns).
		AddRow(firstID.String(), "Tech Institute", "Cambridge, MA", 1, 4.9, "$57,000", "4%",
			[]byte(`{"Computer Science","Electrical Engineering"}`), "tech.jpg",
			[]byte(`{"Research","Innovation"}`), "January 1", now, now).
		AddRow(secondID.String(), "State University", "Austin, TX", 38, 4.3, "$11,000", "32%",
			[]byte(`{}`), "", []byte(`{}`), "March 15", now, now)

	mock.ExpectQuery("SELECT (.+) FROM universities ORDER BY created_at, id").WillReturnRows(rows)

	repo := NewUniversityRepository(db)
	universities, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, universities, 2)

	assert.Equal(t, firstID, universities[0].ID)
	assert.Equal(t, "Tech Institute", universities[0].Name)
	assert.Equal(t, 1, universities[0].Ranking)
	assert.Equal(t, []string{"Computer Science", "Electrical Engineering"}, universities[0].Programs)
	assert.Equal(t, []string{"Research", "Innovation"}, universities[0].Highlights)
	assert.Equal(t, "32%", universities[1].AcceptanceRate)
	assert.Empty(t, universities[1].Programs)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUniversityRepository_ListAll_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM universities").WillReturnRows(sqlmock.NewRows(universityColumns))

	universities, err := NewUniversityRepository(db).ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, universities)
	assert.Empty(t, universities)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUniversityRepository_ListAll_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM universities").WillReturnError(errors.New("connection reset"))

	_, err = NewUniversityRepository(db).ListAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query universities")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUniversityRepository_ListAll_ScanError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(universityColumns).
		AddRow("not-a-uuid", "Broken", "", 1, 4.0, "", "", []byte(`{}`), "", []byte(`{}`), "", now, now)
	mock.ExpectQuery("SELECT (.+) FROM universities").WillReturnRows(rows)

	_, err = NewUniversityRepository(db).ListAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to scan university")
}

func TestUniversityRepository_ListAll_RowError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(universityColumns).
		AddRow(uuid.New().String(), "First", "", 1, 4.0, "", "", []byte(`{}`), "", []byte(`{}`), "", now, now).
		RowError(0, errors.New("stream interrupted"))
	mock.ExpectQuery("SELECT (.+) FROM universities").WillReturnRows(rows)

	_, err = NewUniversityRepository(db).ListAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to iterate universities")
}
