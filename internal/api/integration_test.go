package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unitrack/unimatch-api/internal/database"
	"github.com/unitrack/unimatch-api/internal/logger"
	"github.com/unitrack/unimatch-api/pkg/config"
)

var catalogColumns = []string{
	"id", "name", "location", "ranking", "rating", "tuition", "acceptance_rate",
	"programs", "image", "highlights", "deadline", "created_at", "updated_at",
}

func setupIntegrationRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	cfg := &config.Config{Environment: "test", CatalogTimeout: time.Second}
	router := gin.New()
	require.NoError(t, SetupRoutes(router, &database.DB{DB: sqlDB}, cfg, logger.NewNop()))

	return router, mock
}

func TestSuggestEndToEnd(t *testing.T) {
	router, mock := setupIntegrationRouter(t)

	now := time.Now()
	rows := sqlmock.NewRows(catalogColumns).
		AddRow(uuid.NewString(), "Tech Institute", "Cambridge, MA", 1, 4.9, "$57,000", "5%",
			[]byte(`{"Computer Science"}`), "", []byte(`{}`), "January 1", now, now).
		AddRow(uuid.NewString(), "State University", "Austin, TX", 38, 4.3, "$11,000", "32%",
			[]byte(`{"Business"}`), "", []byte(`{}`), "March 15", now, now).
		AddRow(uuid.NewString(), "Tech Institute", "Cambridge, MA", 2, 4.8, "$57,000", "7%",
			[]byte(`{"Computer Science"}`), "", []byte(`{}`), "January 1", now, now)
	mock.ExpectQuery("SELECT (.+) FROM universities").WillReturnRows(rows)

	body := `{"gpa":"3.95","sat":"1550","toefl":"8.0","major":"Computer Science"}`
	req := httptest.NewRequest(http.MethodPost, "/api/ai/suggest", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Success bool `json:"success"`
		Data    []struct {
			Name         string `json:"name"`
			Ranking      int    `json:"ranking"`
			MatchScore   int    `json:"matchScore"`
			ScoreDetails struct {
				Major struct {
					Status string `json:"status"`
				} `json:"major"`
			} `json:"scoreDetails"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Tech Institute", resp.Data[0].Name)
	assert.Equal(t, 1, resp.Data[0].Ranking)
	assert.Equal(t, 58, resp.Data[0].MatchScore)
	assert.Equal(t, "perfect_match", resp.Data[0].ScoreDetails.Major.Status)
	assert.Equal(t, "State University", resp.Data[1].Name)
	assert.Equal(t, 51, resp.Data[1].MatchScore)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSuggestEndToEnd_CatalogFailure(t *testing.T) {
	router, mock := setupIntegrationRouter(t)
	mock.ExpectQuery("SELECT (.+) FROM universities").WillReturnError(errors.New("relation \"universities\" does not exist"))

	body := `{"gpa":"3.5","sat":"1300","toefl":"6.5","major":"Law"}`
	req := httptest.NewRequest(http.MethodPost, "/api/ai/suggest", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Failed to generate university suggestions","data":[]}`, w.Body.String())
}

func TestSuggestEndToEnd_MissingFieldSkipsCatalog(t *testing.T) {
	router, mock := setupIntegrationRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/ai/suggest", bytes.NewBufferString(`{"gpa":"3.5","sat":"1300","toefl":"6.5"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	// No query was expected, so any catalog read would fail this check
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoutesSetupWithoutPanic(t *testing.T) {
	router := gin.New()

	// Nil dependencies must be reported, not panic
	err := SetupRoutes(router, nil, nil, nil)
	assert.Error(t, err)

	err = SetupRoutes(router, &database.DB{}, &config.Config{}, nil)
	assert.Error(t, err)
}
