package integrationtests

import (
	ads "ad-ledger/internal/adService"
	"ad-ledger/internal/repository"
	"ad-ledger/internal/server"
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter initializes the router with in-memory repository for integration testing.
func SetupTestRouter() *gin.Engine {
	router, _ := SetupTestRouterWithRepo()
	return router
}

// SetupTestRouterWithRepo also returns the repository so tests can inspect stored state.
func SetupTestRouterWithRepo() (*gin.Engine, *repository.MemoryRepo) {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()
	service := ads.NewAdService(repo)
	return server.SetupRouter(service, "memory"), repo
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// createAd posts a new ad and returns its data object
func createAd(t *testing.T, router *gin.Engine, itemType, itemDescription string) map[string]any {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, router, "POST", "/ads", map[string]string{
		"item_type":        itemType,
		"item_description": itemDescription,
	})
	if w.Code != 201 {
		t.Fatalf("create ad: unexpected status %d: %s", w.Code, w.Body.String())
	}
	return resp["data"].(map[string]any)
}
