package integrity

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"ledger-manager/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(client *mocks.Client) *fiber.App {
	app := fiber.New()
	svc := NewService(nil, nil, client, "catalog", zap.NewNop())
	NewHandler(svc).RegisterRoutes(app)
	return app
}

func TestHandleIntegrityCheck(t *testing.T) {
	tests := []struct {
		name       string
		exists     bool
		wantStatus int
		wantCheck  string
	}{
		{"Healthy", true, fiber.StatusOK, StatusOK},
		{"Unhealthy", false, fiber.StatusServiceUnavailable, StatusError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(mocks.Client)
			client.On("BucketExists", mock.Anything, "catalog").Return(tt.exists, nil)

			resp, err := setupTestApp(client).Test(httptest.NewRequest("GET", "/integrity", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var report Report
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
			assert.Equal(t, "none", report.Catalog)
			assert.Equal(t, StatusDisabled, report.Database.Status)
			assert.Equal(t, tt.wantCheck, report.Storage.Status)
		})
	}
}
