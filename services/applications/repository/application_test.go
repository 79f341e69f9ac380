package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuanzh/recruit-portal/internal/pkg/database"
	"github.com/yuanzh/recruit-portal/internal/pkg/models"
)

var repoTestNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func setupApplicationRepoTest(t *testing.T) (*ApplicationRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &ApplicationRepo{
		cfg:         &models.Config{},
		db:          sqlxDB,
		redisClient: &database.RedisClient{},
		now:         func() time.Time { return repoTestNow },
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func applicationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "phone", "id_number", "region", "education",
		"major", "experience", "note", "status", "created_at", "updated_at",
	})
}

func TestCreateApplication(t *testing.T) {
	// Setup
	repo, mock, cleanup := setupApplicationRepoTest(t)
	defer cleanup()

	app := &models.Application{
		Name:      "张三",
		Phone:     "13800138000",
		IDNumber:  "11010519491231002x",
		Region:    "北京",
		Education: "本科",
	}

	mock.ExpectQuery("INSERT INTO applications").
		WithArgs("张三", "13800138000", "11010519491231002X", "北京", "本科", "", "", "", "pending", repoTestNow).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	// Execute
	created, err := repo.CreateApplication(context.Background(), app)

	// Assert: the identity number is stored uppercased and the status
	// defaults to pending.
	assert.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, "11010519491231002X", created.IDNumber)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Equal(t, repoTestNow, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateApplication_DBError(t *testing.T) {
	// Setup
	repo, mock, cleanup := setupApplicationRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("INSERT INTO applications").
		WillReturnError(errors.New("connection refused"))

	// Execute
	created, err := repo.CreateApplication(context.Background(), &models.Application{
		Name:  "张三",
		Phone: "13800138000",
	})

	// Assert
	assert.Error(t, err)
	assert.Nil(t, created)
}

func TestGetApplicationByID(t *testing.T) {
	testCases := []struct {
		name       string
		id         int64
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, app *models.Application, err error)
	}{
		{
			name: "Success",
			id:   7,
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := applicationRows().
					AddRow(int64(7), "张三", "13800138000", "11010519491231002X", "北京", "本科",
						"计算机科学", "三年后端开发", "", "written", repoTestNow, nil)
				mock.ExpectQuery("SELECT (.+) FROM applications WHERE id").
					WithArgs(int64(7)).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, app *models.Application, err error) {
				assert.NoError(t, err)
				require.NotNil(t, app)
				assert.Equal(t, int64(7), app.ID)
				assert.Equal(t, models.StatusWritten, app.Status)
				assert.Nil(t, app.UpdatedAt)
			},
		},
		{
			name: "Not found returns nil without error",
			id:   99,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM applications WHERE id").
					WithArgs(int64(99)).
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, app *models.Application, err error) {
				assert.NoError(t, err)
				assert.Nil(t, app)
			},
		},
		{
			name: "Database error",
			id:   7,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM applications WHERE id").
					WithArgs(int64(7)).
					WillReturnError(errors.New("connection refused"))
			},
			assertFunc: func(t *testing.T, app *models.Application, err error) {
				assert.Error(t, err)
				assert.Nil(t, app)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupApplicationRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			app, err := repo.GetApplicationByID(context.Background(), tc.id)
			tc.assertFunc(t, app, err)
		})
	}
}

func TestFindApplicationByPhoneAndIDNumber(t *testing.T) {
	// Setup
	repo, mock, cleanup := setupApplicationRepoTest(t)
	defer cleanup()

	rows := applicationRows().
		AddRow(int64(7), "张三", "13800138000", "11010519491231002X", "", "",
			"", "", "", "pending", repoTestNow, nil)

	// The lookup uppercases the identity number before matching.
	mock.ExpectQuery("SELECT (.+) FROM applications\\s+WHERE phone = \\$1 AND id_number = \\$2").
		WithArgs("13800138000", "11010519491231002X").
		WillReturnRows(rows)

	// Execute
	app, err := repo.FindApplicationByPhoneAndIDNumber(context.Background(), "13800138000", "11010519491231002x")

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, int64(7), app.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindApplicationByPhoneAndIDNumber_NotFound(t *testing.T) {
	// Setup
	repo, mock, cleanup := setupApplicationRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM applications").
		WithArgs("13800138000", "11010519491231002X").
		WillReturnError(sql.ErrNoRows)

	// Execute
	app, err := repo.FindApplicationByPhoneAndIDNumber(context.Background(), "13800138000", "11010519491231002X")

	// Assert
	assert.NoError(t, err)
	assert.Nil(t, app)
}

func TestUpdateApplicationStatus(t *testing.T) {
	// Setup
	repo, mock, cleanup := setupApplicationRepoTest(t)
	defer cleanup()

	rows := applicationRows().
		AddRow(int64(7), "张三", "13800138000", "11010519491231002X", "", "",
			"", "", "", "interview", repoTestNow, repoTestNow)

	mock.ExpectQuery("UPDATE applications\\s+SET status = \\$1, updated_at = \\$2\\s+WHERE id = \\$3").
		WithArgs("interview", repoTestNow, int64(7)).
		WillReturnRows(rows)

	// Execute
	app, err := repo.UpdateApplicationStatus(context.Background(), 7, models.StatusInterview)

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, models.StatusInterview, app.Status)
	require.NotNil(t, app.UpdatedAt)
	assert.Equal(t, repoTestNow, *app.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateApplicationStatus_NotFound(t *testing.T) {
	// Setup
	repo, mock, cleanup := setupApplicationRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("UPDATE applications").
		WithArgs("pass", repoTestNow, int64(404)).
		WillReturnError(sql.ErrNoRows)

	// Execute
	app, err := repo.UpdateApplicationStatus(context.Background(), 404, models.StatusPass)

	// Assert
	assert.NoError(t, err)
	assert.Nil(t, app)
}

func TestListApplications_NoFilter(t *testing.T) {
	// Setup
	repo, mock, cleanup := setupApplicationRepoTest(t)
	defer cleanup()

	rows := applicationRows().
		AddRow(int64(2), "李四", "13900139000", "440524188001010014", "", "",
			"", "", "", "pending", repoTestNow, nil).
		AddRow(int64(1), "张三", "13800138000", "11010519491231002X", "", "",
			"", "", "", "written", repoTestNow.Add(-time.Hour), nil)

	mock.ExpectQuery("SELECT (.+) FROM applications ORDER BY created_at DESC, id DESC").
		WillReturnRows(rows)

	// Execute
	apps, err := repo.ListApplications(context.Background(), models.ApplicationFilter{})

	// Assert
	assert.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, int64(2), apps[0].ID)
	assert.Equal(t, int64(1), apps[1].ID)
}

func TestListApplications_StatusAndQuery(t *testing.T) {
	// Setup
	repo, mock, cleanup := setupApplicationRepoTest(t)
	defer cleanup()

	rows := applicationRows().
		AddRow(int64(1), "张三", "13800138000", "11010519491231002X", "", "",
			"", "", "", "pending", repoTestNow, nil)

	mock.ExpectQuery("SELECT (.+) FROM applications WHERE status = \\$1 AND \\(name ILIKE \\$2 OR phone LIKE \\$2 OR id_number ILIKE \\$2\\)").
		WithArgs("pending", "%张%").
		WillReturnRows(rows)

	// Execute
	apps, err := repo.ListApplications(context.Background(), models.ApplicationFilter{
		Status: models.StatusPending,
		Query:  "张",
	})

	// Assert
	assert.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "张三", apps[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListApplications_QueryEscapesLikeMetacharacters(t *testing.T) {
	// Setup
	repo, mock, cleanup := setupApplicationRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM applications WHERE").
		WithArgs(`%100\%\_%`).
		WillReturnRows(applicationRows())

	// Execute
	apps, err := repo.ListApplications(context.Background(), models.ApplicationFilter{
		Query: "100%_",
	})

	// Assert
	assert.NoError(t, err)
	assert.Empty(t, apps)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStats(t *testing.T) {
	// Setup
	repo, mock, cleanup := setupApplicationRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"total", "pending", "written", "interview", "pass", "reject"}).
		AddRow(10, 4, 3, 2, 1, 0)

	mock.ExpectQuery("SELECT\\s+COUNT\\(\\*\\) AS total").
		WillReturnRows(rows)

	// Execute
	stats, err := repo.GetStats(context.Background())

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 10, stats.Total)
	assert.Equal(t, 4, stats.Pending)
	assert.Equal(t, 0, stats.Reject)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, escapeLike(`100%`))
	assert.Equal(t, `a\_b`, escapeLike(`a_b`))
	assert.Equal(t, `c\\d`, escapeLike(`c\d`))
	assert.Equal(t, `plain`, escapeLike(`plain`))
}
