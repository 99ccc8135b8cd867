package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campushub/internal/models"
	appErrors "github.com/noah-isme/campushub/pkg/errors"
)

var catalogSQL = regexp.QuoteMeta("SELECT payload FROM portal_fixtures WHERE kind = $1 ORDER BY position")

func newCatalogRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

type recordingObserver struct {
	labels []string
}

func (o *recordingObserver) ObserveDBQuery(label string, _ time.Duration) {
	o.labels = append(o.labels, label)
}

func TestCatalogRepositoryAssignments(t *testing.T) {
	db, mock, cleanup := newCatalogRepoMock(t)
	defer cleanup()
	observer := &recordingObserver{}
	repo := NewCatalogRepository(db, observer)

	rows := sqlmock.NewRows([]string{"payload"}).
		AddRow([]byte(`{"id":1,"title":"Binary Trees","points":100,"status":"pending"}`)).
		AddRow([]byte(`{"id":4,"title":"Process Scheduling","points":80,"status":"graded","grade":72}`))
	mock.ExpectQuery(catalogSQL).WithArgs(KindAssignments).WillReturnRows(rows)

	list, err := repo.Assignments(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, models.StatusGraded, list[1].Status)
	require.NotNil(t, list[1].Grade)
	assert.Equal(t, 72, *list[1].Grade)
	assert.Equal(t, []string{"catalog_assignments"}, observer.labels)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepositoryEmptyKind(t *testing.T) {
	db, mock, cleanup := newCatalogRepoMock(t)
	defer cleanup()
	repo := NewCatalogRepository(db, nil)

	mock.ExpectQuery(catalogSQL).WithArgs(KindComplaints).WillReturnRows(sqlmock.NewRows([]string{"payload"}))

	list, err := repo.Complaints(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepositoryPeopleSetsKind(t *testing.T) {
	db, mock, cleanup := newCatalogRepoMock(t)
	defer cleanup()
	repo := NewCatalogRepository(db, nil)

	mock.ExpectQuery(catalogSQL).WithArgs("people_alumni").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow([]byte(`{"id":1,"name":"Emily Watson"}`)))

	people, err := repo.People(context.Background(), models.PersonAlumni)
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, models.PersonAlumni, people[0].Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepositorySingleDocument(t *testing.T) {
	db, mock, cleanup := newCatalogRepoMock(t)
	defer cleanup()
	repo := NewCatalogRepository(db, nil)

	mock.ExpectQuery(catalogSQL).WithArgs(KindMarksOverview).
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow([]byte(`{"cgpa":8.92,"rank":3,"classSize":60}`)))
	overview, err := repo.MarksOverview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8.92, overview.CGPA)
	assert.Equal(t, 3, overview.Rank)

	mock.ExpectQuery(catalogSQL).WithArgs(KindWiFiNetwork).WillReturnRows(sqlmock.NewRows([]string{"payload"}))
	_, err = repo.WiFiNetwork(context.Background())
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepositoryQueryError(t *testing.T) {
	db, mock, cleanup := newCatalogRepoMock(t)
	defer cleanup()
	repo := NewCatalogRepository(db, nil)

	mock.ExpectQuery(catalogSQL).WithArgs(KindEvents).WillReturnError(errors.New("connection reset"))

	_, err := repo.Events(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "select events documents")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepositoryDecodeError(t *testing.T) {
	db, mock, cleanup := newCatalogRepoMock(t)
	defer cleanup()
	repo := NewCatalogRepository(db, nil)

	mock.ExpectQuery(catalogSQL).WithArgs(KindGroups).
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow([]byte(`{"id":"not-a-number"}`)))

	_, err := repo.Groups(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode groups documents")
}
