package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ougirez/milkdigit/internal/pkg/constants"
	"github.com/ougirez/milkdigit/internal/pkg/store"
	"github.com/ougirez/milkdigit/internal/pkg/tabular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Products.csv"),
		[]byte("product_id,name,type,source\n9,Кумыс,кисломолочный,кобылье\n2,Молоко козье (фермерское),молоко,козье\n7,Курт,сыр,\n2,дубль,,\n"), 0o644))

	svc := NewCatalogService(store.NewStore(dir, nil))
	ctx := context.Background()

	cards, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 7)

	ids := make([]int64, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 7, 9}, ids)
	assert.Equal(t, "Молоко козье (фермерское)", cards[1].Name)
	assert.Equal(t, "Молоко (коровье)", cards[0].Name)
	assert.NotEmpty(t, cards[0].Color)

	p, err := svc.Get(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "Сары ірімшік (козье)", p.Name)

	p, err = svc.Get(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, "кобылье", p.Source)

	_, err = svc.Get(ctx, 100)
	assert.True(t, errors.Is(err, constants.ErrProductNotFound))
}

func TestCatalogUnreadableProducts(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Products.csv"),
		[]byte("product_id,name\n1,Молоко\n\"2,Айран\n"), 0o644))

	svc := NewCatalogService(store.NewStore(dir, nil))
	ctx := context.Background()

	var ingestion *tabular.IngestionError
	_, err := svc.List(ctx)
	assert.True(t, errors.As(err, &ingestion))

	_, err = svc.Get(ctx, 1)
	assert.True(t, errors.As(err, &ingestion))
}
