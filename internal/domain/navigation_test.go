package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigationApply(t *testing.T) {
	nav := NewNavigation()

	_, err := nav.Apply(NavEvent{Action: NavSelectStep, StepID: "pasteurization"})
	var bad *ErrBadTransition
	require.True(t, errors.As(err, &bad))
	assert.Equal(t, PageHome, bad.From)

	nav, err = nav.Apply(NavEvent{Action: NavSelectProduct, ProductID: 5})
	require.NoError(t, err)
	assert.Equal(t, PageProduct, nav.Page)
	require.NotNil(t, nav.ProductID)
	assert.Equal(t, int64(5), *nav.ProductID)

	nav, err = nav.Apply(NavEvent{Action: NavSelectStep, StepID: "fermentation"})
	require.NoError(t, err)
	assert.Equal(t, "fermentation", nav.StepID)

	// смена страницы сбрасывает этап, но не продукт
	nav, err = nav.Apply(NavEvent{Action: NavGotoPage, Page: PageAnalytics})
	require.NoError(t, err)
	assert.Empty(t, nav.StepID)
	assert.NotNil(t, nav.ProductID)

	nav, err = nav.Apply(NavEvent{Action: NavSelectProduct, ProductID: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(2), *nav.ProductID)
	assert.Empty(t, nav.StepID)

	_, err = nav.Apply(NavEvent{Action: NavGotoPage, Page: "settings"})
	assert.Error(t, err)

	nav, err = nav.Apply(NavEvent{Action: NavReset})
	require.NoError(t, err)
	assert.Equal(t, NewNavigation(), nav)
}
