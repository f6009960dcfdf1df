package fs

import (
	"context"
	"strings"
	"testing"

	"github.com/ougirez/milkdigit/internal/pkg/blob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutAndList(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	info, err := s.Put(ctx, "exports/a.zip", strings.NewReader("PK"), blob.PutOptions{ContentType: "application/zip"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), info.Size)

	_, err = s.Put(ctx, "other/b.txt", strings.NewReader("x"), blob.PutOptions{})
	require.NoError(t, err)

	// ключ не выходит за пределы корня
	_, err = s.Put(ctx, "../../escape.txt", strings.NewReader("x"), blob.PutOptions{})
	require.NoError(t, err)

	list, err := s.List(ctx, "exports/")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "exports/a.zip", list[0].Key)

	all, err := s.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = s.Put(ctx, "/", strings.NewReader("x"), blob.PutOptions{})
	assert.Error(t, err)
}
