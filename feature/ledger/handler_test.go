package ledger

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"ledger-manager/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) (*fiber.App, *Service) {
	t.Helper()
	app := fiber.New()
	svc, _ := newTestService(&stubSource{names: map[string]string{idB: "Drum"}})
	NewHandler(svc).RegisterRoutes(app)
	return app, svc
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string, out any) int {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHandleRecord(t *testing.T) {
	app, _ := setupTestApp(t)

	var result BatchResult
	status := doJSON(t, app, "POST", "/ledger/received", `{"input": "`+idA+` `+idA+` nope"}`, &result)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, reconcile.FlowReceived, result.Flow)
	assert.Equal(t, []string{idA, idA}, result.Accepted)
	assert.Equal(t, []string{"nope"}, result.Rejected)
	require.Len(t, result.Received, 1)
	assert.Equal(t, 2, result.Received[0].Quantity)
	assert.Empty(t, result.Shipped)
}

func TestHandleRecord_IDsAndVerbs(t *testing.T) {
	app, _ := setupTestApp(t)

	var result BatchResult
	status := doJSON(t, app, "POST", "/ledger/ship", `{"ids": ["`+idB+`"]}`, &result)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, reconcile.FlowShipped, result.Flow)
	require.Len(t, result.Shipped, 1)
	assert.Equal(t, "Drum", result.Shipped[0].Name)
}

func TestHandleRecord_BadRequests(t *testing.T) {
	app, _ := setupTestApp(t)

	tests := []struct {
		name string
		path string
		body string
	}{
		{"Unknown flow", "/ledger/sideways", `{"input": "` + idA + `"}`},
		{"Malformed body", "/ledger/received", `{"input": `},
		{"Empty input", "/ledger/received", `{"input": "   "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body map[string]string
			status := doJSON(t, app, "POST", tt.path, tt.body, &body)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestHandleGetLedgers(t *testing.T) {
	app, _ := setupTestApp(t)

	doJSON(t, app, "POST", "/ledger/received", `{"input": "`+idA+` `+idA+` `+idA+`"}`, nil)
	doJSON(t, app, "POST", "/ledger/shipped", `{"input": "`+idA+`"}`, nil)

	var ledgers Ledgers
	status := doJSON(t, app, "GET", "/ledger", "", &ledgers)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []reconcile.TrackedObject{{ID: idA, Name: idA, Quantity: 2}}, ledgers.Received)
	assert.Equal(t, []reconcile.TrackedObject{{ID: idA, Name: idA, Quantity: 1}}, ledgers.Shipped)

	var shipped []reconcile.TrackedObject
	status = doJSON(t, app, "GET", "/ledger/shipped", "", &shipped)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, ledgers.Shipped, shipped)

	status = doJSON(t, app, "GET", "/ledger/elsewhere", "", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestHandleClear(t *testing.T) {
	app, svc := setupTestApp(t)

	doJSON(t, app, "POST", "/ledger/received", `{"input": "`+idB+`"}`, nil)

	var ledgers Ledgers
	status := doJSON(t, app, "DELETE", "/ledger", "", &ledgers)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, ledgers.Received)
	assert.Empty(t, ledgers.Shipped)

	_, ok := svc.Lookup(idB)
	assert.True(t, ok, "clearing keeps directory entries")
}

func TestHandleLookup(t *testing.T) {
	app, _ := setupTestApp(t)

	doJSON(t, app, "POST", "/ledger/received", `{"input": "`+idB+`"}`, nil)

	var body map[string]string
	status := doJSON(t, app, "GET", "/directory/"+strings.ToLower(idB), "", &body)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, idB, body["id"])
	assert.Equal(t, "Drum", body["name"])

	status = doJSON(t, app, "GET", "/directory/"+idA, "", &body)
	assert.Equal(t, fiber.StatusNotFound, status)
}
