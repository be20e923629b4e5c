package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"project-tracker-api/internal/realtime"
	"project-tracker-api/internal/repository"
	"project-tracker-api/internal/testutil"
)

type testEnv struct {
	handler *Handler
	db      *gorm.DB
	token   string
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)

	gate, err := testutil.NewGate()
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)

	h := New(
		log,
		repository.NewUserRepository(db),
		repository.NewTaskRepository(db),
		repository.NewProjectRepository(db),
		repository.NewNotificationRepository(db),
		gate,
		realtime.NewHub(),
	)

	token, err := gate.Authenticate("admin", "admin")
	require.NoError(t, err)

	return testEnv{handler: h, db: db, token: token}
}

func (e testEnv) do(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
