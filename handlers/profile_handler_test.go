package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"probonex-backend/storage"
)

func pictureTestRouter(pictures storage.Storage) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewProfileHandler(nil, pictures)
	r.GET("/api/pictures/*key", h.ServePicture)
	return r
}

func TestServePictureReturnsStoredPicture(t *testing.T) {
	store, err := storage.NewLocalStorage(filepath.Join(t.TempDir(), "pictures"))
	require.NoError(t, err)
	r := pictureTestRouter(store)

	profileID := uuid.New()
	key, err := store.Put(context.Background(), profileID, "avatar.png", strings.NewReader("png bytes"))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/pictures/"+key, nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "png bytes", w.Body.String())
}

func TestServePictureRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalStorage(filepath.Join(dir, "pictures"))
	require.NoError(t, err)
	r := pictureTestRouter(store)

	// A file outside the storage base must never be reachable through
	// the public picture route, whatever the extension.
	secret := filepath.Join(dir, "secret.png")
	require.NoError(t, os.WriteFile(secret, []byte("TOP-SECRET"), 0644))

	for _, target := range []string{
		"/api/pictures/../secret.png",
		"/api/pictures/profiles/../../secret.png",
		"/api/pictures/profiles/" + uuid.New().String() + "/../../secret.png",
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

		assert.NotEqual(t, http.StatusOK, w.Code, target)
		assert.NotContains(t, w.Body.String(), "TOP-SECRET", target)
	}
}

func TestServePictureUnknownKey(t *testing.T) {
	store, err := storage.NewLocalStorage(filepath.Join(t.TempDir(), "pictures"))
	require.NoError(t, err)
	r := pictureTestRouter(store)

	w := httptest.NewRecorder()
	target := "/api/pictures/profiles/" + uuid.New().String() + "/picture.png"
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
