//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/online-shop-network/internal/authclient"
	"github.com/pr-poehali-dev/online-shop-network/internal/catalog"
	"github.com/pr-poehali-dev/online-shop-network/internal/config"
	"github.com/pr-poehali-dev/online-shop-network/internal/event"
	"github.com/pr-poehali-dev/online-shop-network/internal/handler"
	"github.com/pr-poehali-dev/online-shop-network/internal/middleware"
	"github.com/pr-poehali-dev/online-shop-network/internal/model"
	"github.com/pr-poehali-dev/online-shop-network/internal/nav"
	"github.com/pr-poehali-dev/online-shop-network/internal/router"
	"github.com/pr-poehali-dev/online-shop-network/internal/service"
	"github.com/pr-poehali-dev/online-shop-network/internal/storage"
)

// stubGateway is an in-memory rendition of the remote auth endpoint: one
// POST route dispatching on action, the same wire contract the production
// endpoint speaks.
type stubGateway struct {
	users map[string]stubUser // keyed by username
}

type stubUser struct {
	id       int64
	email    string
	password string
	isAdmin  bool
}

func newStubGateway(t *testing.T) *httptest.Server {
	t.Helper()

	gw := &stubGateway{users: map[string]stubUser{
		"skzry": {id: 1, email: "skzry@example.com", password: "568876Qqq", isAdmin: true},
	}}

	server := httptest.NewServer(http.HandlerFunc(gw.handle))
	t.Cleanup(server.Close)
	return server
}

func (g *stubGateway) handle(w http.ResponseWriter, r *http.Request) {
	var payload model.GatewayRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeGatewayError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	switch payload.Action {
	case "register":
		if payload.Username == "" || payload.Email == "" || payload.Password == "" {
			writeGatewayError(w, http.StatusBadRequest, "Missing required fields")
			return
		}
		if _, exists := g.users[payload.Username]; exists {
			writeGatewayError(w, http.StatusBadRequest, "User already exists")
			return
		}

		id := int64(len(g.users) + 1)
		g.users[payload.Username] = stubUser{id: id, email: payload.Email, password: payload.Password}
		writeAuthResponse(w, model.User{ID: id, Username: payload.Username, Email: payload.Email})
	case "login":
		u, ok := g.users[payload.Login]
		if !ok || u.password != payload.Password {
			writeGatewayError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		writeAuthResponse(w, model.User{ID: u.id, Username: payload.Login, Email: u.email, IsAdmin: u.isAdmin})
	default:
		writeGatewayError(w, http.StatusBadRequest, "Unknown action")
	}
}

func writeAuthResponse(w http.ResponseWriter, user model.User) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(model.AuthResponse{Token: "stub-token", User: user})
}

func writeGatewayError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.GatewayErrorResponse{Error: message})
}

// newAppServer wires the full client core against a stub gateway and
// returns the running HTTP surface.
func newAppServer(t *testing.T) *httptest.Server {
	t.Helper()

	gatewayServer := newStubGateway(t)

	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	gateway := authclient.New(gatewayServer.URL, gatewayServer.Client())
	accounts := service.NewAccountService(store, gateway)
	controller := nav.NewController(accounts)
	cat := catalog.New()
	bus := event.NewBus()
	gate := middleware.NewSessionGate(accounts)

	cfg := &config.Config{
		AppPort:            "8000",
		GatewayPort:        "8080",
		AuthURL:            gatewayServer.URL,
		SessionDir:         t.TempDir(),
		CORSOrigins:        []string{"*"},
		RateLimitRPM:       1000,
		AuthRateLimitRPM:   1000,
		RequestTimeout:     30 * time.Second,
		ServerReadTimeout:  15 * time.Second,
		ServerWriteTimeout: 30 * time.Second,
		ServerIdleTimeout:  120 * time.Second,
	}

	appRouter := router.New(cfg, gate, router.Handlers{
		Account: handler.NewAccountHandler(accounts, controller, bus),
		State:   handler.NewStateHandler(accounts, controller, cat, bus),
		Catalog: handler.NewCatalogHandler(cat),
		Events:  handler.NewEventsHandler(bus),
	})

	server := httptest.NewServer(appRouter)
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func getJSON(t *testing.T, url string) *http.Response {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeState(t *testing.T, resp *http.Response) model.StateResponse {
	t.Helper()

	var parsed struct {
		Success bool                `json:"success"`
		Data    model.StateResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	require.True(t, parsed.Success)
	return parsed.Data
}

func login(t *testing.T, serverURL string, loginName string, password string) {
	t.Helper()

	resp := postJSON(t, serverURL+"/api/v1/auth/login", model.LoginRequest{Login: loginName, Password: password})
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
