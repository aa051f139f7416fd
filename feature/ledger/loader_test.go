package ledger

import (
	"net/http/httptest"
	"testing"

	"ledger-manager/core/directory"
	"ledger-manager/core/ident"
	"ledger-manager/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	processor := reconcile.NewProcessor(directory.New())
	feature := NewFeature(ident.NewValidator(ident.Config{}), processor, nil, zap.NewNop())

	assert.Equal(t, "ledger", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NotNil(t, feature.Service())

	app := fiber.New()
	require.NoError(t, feature.Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/ledger", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
