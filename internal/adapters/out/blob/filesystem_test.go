package blob_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"logistics/internal/adapters/out/blob"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Put(t *testing.T) {
	root := t.TempDir()
	store, err := blob.NewFileStore(root, "http://localhost:8080/files/")
	require.NoError(t, err)

	url, err := store.Put(context.Background(), ports.BlobObject{
		Key:         "shipments/abc/doc-1-proof of delivery.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.7"),
	})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/files/shipments/abc/doc-1-proof%20of%20delivery.pdf", url)

	got, err := os.ReadFile(filepath.Join(root, "shipments", "abc", "doc-1-proof of delivery.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7", string(got))

	leftovers, err := filepath.Glob(filepath.Join(root, "shipments", "abc", ".upload-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestFileStore_RejectsTraversal(t *testing.T) {
	store, err := blob.NewFileStore(t.TempDir(), "http://x")
	require.NoError(t, err)

	for _, key := range []string{"", "../etc/passwd", "shipments/../../x", "/"} {
		_, err = store.Put(context.Background(), ports.BlobObject{Key: key, Data: []byte("x")})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid, key)
	}
}

func TestFileStore_CancelledContext(t *testing.T) {
	store, err := blob.NewFileStore(t.TempDir(), "http://x")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = store.Put(ctx, ports.BlobObject{Key: "a", Data: []byte("x")})
	require.ErrorIs(t, err, context.Canceled)
}
