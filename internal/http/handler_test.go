package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartreturn/storefront-service/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	router *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	catalog, err := service.NewStaticCatalog(context.Background(), nil)
	require.NoError(t, err)

	carts := service.NewCartService(nil, nil)
	riskGate := service.NewRiskGateService(catalog, carts, nil, service.WithAnalysisDelay(0))
	t.Cleanup(riskGate.Close)

	checkout := service.NewCheckoutService(
		carts,
		service.NewSimulatedSettler(service.WithSettleDelay(0)),
		service.NewInviteIssuer("test-secret", time.Hour),
		nil,
		nil,
		nil,
	)

	handler := NewHandler(
		catalog,
		carts,
		riskGate,
		checkout,
		service.NewPreferencesService(nil),
		service.NewInvoiceGenerator("SmartReturn"),
	)

	router := NewRouter(handler, NewHealthHandler(), RouterConfig{
		RateLimit:         0,
		EnableIdempotency: true,
	})

	return &testEnv{router: router}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// data unwraps the success envelope and returns the data payload.
func data(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var resp struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func dataList(t *testing.T, w *httptest.ResponseRecorder) []interface{} {
	t.Helper()

	var resp struct {
		Data []interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func (e *testEnv) createCart(t *testing.T) string {
	t.Helper()

	w := e.do(t, http.MethodPost, "/api/carts", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	id, ok := data(t, w)["id"].(string)
	require.True(t, ok)
	return id
}

// addItem pushes an item through the risk gate into the cart.
func (e *testEnv) addItem(t *testing.T, cartID, itemID string) {
	t.Helper()

	w := e.do(t, http.MethodPost, "/api/risk/analyses", gin.H{"cart_id": cartID, "item_id": itemID})
	require.Equal(t, http.StatusCreated, w.Code)
	gateID := data(t, w)["id"].(string)

	w = e.do(t, http.MethodPost, "/api/risk/analyses/"+gateID+"/confirm", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestListProducts(t *testing.T) {
	env := newTestEnv(t)

	t.Run("returns the full catalog", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/products", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, dataList(t, w), 8)
	})

	t.Run("filters by query", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/products?q=headphones", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, dataList(t, w), 1)
	})
}

func TestGetProduct(t *testing.T) {
	env := newTestEnv(t)

	t.Run("returns a known product", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/products/1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Wireless Bluetooth Headphones Pro", data(t, w)["name"])
	})

	t.Run("unknown product is 404", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/products/999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCartLifecycle(t *testing.T) {
	env := newTestEnv(t)

	cartID := env.createCart(t)

	t.Run("new cart is empty", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/carts/"+cartID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, data(t, w)["lines"])
	})

	t.Run("unknown cart is 404", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/carts/missing", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("set quantity and remove lines", func(t *testing.T) {
		env.addItem(t, cartID, "1")

		w := env.do(t, http.MethodPut, "/api/carts/"+cartID+"/items/1", gin.H{"quantity": 3})
		require.Equal(t, http.StatusOK, w.Code)
		lines := data(t, w)["lines"].([]interface{})
		require.Len(t, lines, 1)
		assert.Equal(t, float64(3), lines[0].(map[string]interface{})["quantity"])

		w = env.do(t, http.MethodDelete, "/api/carts/"+cartID+"/items/1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, data(t, w)["lines"])
	})

	t.Run("clear empties the cart", func(t *testing.T) {
		env.addItem(t, cartID, "1")

		w := env.do(t, http.MethodDelete, "/api/carts/"+cartID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, data(t, w)["lines"])
	})
}

func TestCartInvoice(t *testing.T) {
	env := newTestEnv(t)
	cartID := env.createCart(t)
	env.addItem(t, cartID, "1")

	w := env.do(t, http.MethodGet, "/api/carts/"+cartID+"/invoice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), cartID)
	assert.Equal(t, "%PDF", w.Body.String()[:4])
}

func TestRiskGateEndpoints(t *testing.T) {
	env := newTestEnv(t)

	t.Run("open returns the analysis", func(t *testing.T) {
		cartID := env.createCart(t)

		w := env.do(t, http.MethodPost, "/api/risk/analyses", gin.H{"cart_id": cartID, "item_id": "3"})
		require.Equal(t, http.StatusCreated, w.Code)

		payload := data(t, w)
		analysis := payload["analysis"].(map[string]interface{})
		assert.Equal(t, "high", analysis["overall_risk"])
		assert.InDelta(t, 22.0, analysis["risk_score"].(float64), 1e-9)
	})

	t.Run("missing body is 400", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/risk/analyses", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown item is 404", func(t *testing.T) {
		cartID := env.createCart(t)

		w := env.do(t, http.MethodPost, "/api/risk/analyses", gin.H{"cart_id": cartID, "item_id": "999"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("confirm with an alternative", func(t *testing.T) {
		cartID := env.createCart(t)

		w := env.do(t, http.MethodPost, "/api/risk/analyses", gin.H{"cart_id": cartID, "item_id": "2"})
		require.Equal(t, http.StatusCreated, w.Code)
		gateID := data(t, w)["id"].(string)

		w = env.do(t, http.MethodPost, "/api/risk/analyses/"+gateID+"/confirm", gin.H{"item_id": "1"})
		require.Equal(t, http.StatusOK, w.Code)

		lines := data(t, w)["lines"].([]interface{})
		require.Len(t, lines, 1)
		item := lines[0].(map[string]interface{})["item"].(map[string]interface{})
		assert.Equal(t, "1", item["id"])
	})

	t.Run("cancel discards the gate", func(t *testing.T) {
		cartID := env.createCart(t)

		w := env.do(t, http.MethodPost, "/api/risk/analyses", gin.H{"cart_id": cartID, "item_id": "1"})
		require.Equal(t, http.StatusCreated, w.Code)
		gateID := data(t, w)["id"].(string)

		w = env.do(t, http.MethodDelete, "/api/risk/analyses/"+gateID, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = env.do(t, http.MethodPost, "/api/risk/analyses/"+gateID+"/confirm", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCheckoutEndpoint(t *testing.T) {
	env := newTestEnv(t)

	checkoutBody := func(cartID string) gin.H {
		return gin.H{
			"cart_id":     cartID,
			"buyer_name":  "Ada Lovelace",
			"buyer_email": "ada@example.com",
			"mode":        "solo",
		}
	}

	t.Run("solo checkout settles and clears the cart", func(t *testing.T) {
		cartID := env.createCart(t)
		env.addItem(t, cartID, "1")

		w := env.do(t, http.MethodPost, "/api/checkout", checkoutBody(cartID))
		require.Equal(t, http.StatusCreated, w.Code)

		order := data(t, w)
		assert.NotEmpty(t, order["id"])
		assert.Equal(t, float64(19999), order["total_cents"])

		w = env.do(t, http.MethodGet, "/api/carts/"+cartID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, data(t, w)["lines"])
	})

	t.Run("split checkout returns an invite token", func(t *testing.T) {
		cartID := env.createCart(t)
		env.addItem(t, cartID, "1")

		body := checkoutBody(cartID)
		body["mode"] = "split"
		body["co_buyer_email"] = "friend@example.com"
		body["split_percent"] = 70

		w := env.do(t, http.MethodPost, "/api/checkout", body)
		require.Equal(t, http.StatusCreated, w.Code)

		order := data(t, w)
		assert.NotEmpty(t, order["invite_token"])
		split := order["split"].(map[string]interface{})
		assert.Equal(t, float64(13999), split["buyer_amount_cents"])
		assert.Equal(t, float64(6000), split["co_buyer_amount_cents"])
	})

	t.Run("missing buyer details is 400", func(t *testing.T) {
		cartID := env.createCart(t)
		env.addItem(t, cartID, "1")

		w := env.do(t, http.MethodPost, "/api/checkout", gin.H{"cart_id": cartID})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("split without co-buyer email is 400", func(t *testing.T) {
		cartID := env.createCart(t)
		env.addItem(t, cartID, "1")

		body := checkoutBody(cartID)
		body["mode"] = "split"

		w := env.do(t, http.MethodPost, "/api/checkout", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty cart is 422", func(t *testing.T) {
		cartID := env.createCart(t)

		w := env.do(t, http.MethodPost, "/api/checkout", checkoutBody(cartID))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("unknown cart is 404", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/checkout", checkoutBody("missing"))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPreferencesEndpoints(t *testing.T) {
	env := newTestEnv(t)

	t.Run("default theme is light", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/preferences/owner-1/theme", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "light", data(t, w)["theme"])
	})

	t.Run("set and read back", func(t *testing.T) {
		w := env.do(t, http.MethodPut, "/api/preferences/owner-1/theme", gin.H{"theme": "dark"})
		require.Equal(t, http.StatusOK, w.Code)

		w = env.do(t, http.MethodGet, "/api/preferences/owner-1/theme", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "dark", data(t, w)["theme"])
	})

	t.Run("unknown theme is 400", func(t *testing.T) {
		w := env.do(t, http.MethodPut, "/api/preferences/owner-1/theme", gin.H{"theme": "sepia"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestIdempotentReplay(t *testing.T) {
	env := newTestEnv(t)

	post := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/carts", bytes.NewReader(nil))
		req.Header.Set("Idempotency-Key", "replay-test-key")
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)
		return w
	}

	first := post()
	require.Equal(t, http.StatusCreated, first.Code)

	second := post()
	require.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
	assert.Equal(t, data(t, first)["id"], data(t, second)["id"])
}

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/readyz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
