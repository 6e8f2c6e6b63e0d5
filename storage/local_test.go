package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoragePutAndGet(t *testing.T) {
	store, err := NewLocalStorage(filepath.Join(t.TempDir(), "pictures"))
	require.NoError(t, err)
	ctx := context.Background()

	profileID := uuid.New()
	key, err := store.Put(ctx, profileID, "avatar.png", strings.NewReader("png bytes"))
	require.NoError(t, err)
	assert.Equal(t, "profiles/"+profileID.String()+"/picture.png", key)

	reader, err := store.Get(ctx, key)
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "png bytes", string(data))
}

func TestLocalStorageGetRejectsEscapingKeys(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "pictures")
	store, err := NewLocalStorage(base)
	require.NoError(t, err)

	// A readable file one level above the storage base must stay
	// unreachable no matter how the key is spelled.
	secret := filepath.Join(dir, "secret.png")
	require.NoError(t, os.WriteFile(secret, []byte("do not serve"), 0644))

	ctx := context.Background()
	for _, key := range []string{
		"../secret.png",
		"profiles/../../secret.png",
		"profiles/x/../../../secret.png",
	} {
		_, err := store.Get(ctx, key)
		assert.Error(t, err, key)
	}

	err = store.Delete(ctx, "../secret.png")
	assert.Error(t, err)
	_, statErr := os.Stat(secret)
	assert.NoError(t, statErr)
}

func TestValidPictureKey(t *testing.T) {
	id := uuid.New().String()

	valid := []string{
		"profiles/" + id + "/picture.png",
		"profiles/" + id + "/picture.jpg",
		"profiles/" + id + "/picture.jpeg",
		"profiles/" + id + "/picture.webp",
	}
	for _, key := range valid {
		assert.True(t, ValidPictureKey(key), key)
	}

	invalid := []string{
		"",
		"../secret.png",
		"profiles/../../secret.png",
		"profiles/" + id + "/../../etc/passwd.png",
		"profiles/not-a-uuid/picture.png",
		"profiles/" + id + "/other.png",
		"profiles/" + id + "/picture.gif",
		"attachments/" + id + "/picture.png",
		"profiles/" + id + "/picture.png/extra",
	}
	for _, key := range invalid {
		assert.False(t, ValidPictureKey(key), key)
	}
}
