//go:build integration

package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/online-shop-network/internal/model"
)

func TestUnauthenticatedSurface(t *testing.T) {
	server := newAppServer(t)

	t.Run("state reports unauthenticated on the home page", func(t *testing.T) {
		resp := getJSON(t, server.URL+"/api/v1/state")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		state := decodeState(t, resp)
		assert.False(t, state.Authenticated)
		assert.Nil(t, state.User)
		assert.Equal(t, model.PageHome, state.CurrentPage)
	})

	t.Run("everything behind the gate returns 401", func(t *testing.T) {
		for _, url := range []string{"/api/v1/catalog", "/api/v1/chats", "/api/v1/purchases"} {
			resp := getJSON(t, server.URL+url)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, url)
		}

		resp := postJSON(t, server.URL+"/api/v1/nav/page", model.NavigateRequest{Page: "catalog"})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestRegisterLoginLogoutFlow(t *testing.T) {
	server := newAppServer(t)

	resp := postJSON(t, server.URL+"/api/v1/auth/register", model.RegisterRequest{
		Username:        "newbie",
		Email:           "newbie@example.com",
		Password:        "hunter22",
		ConfirmPassword: "hunter22",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	stateResp := getJSON(t, server.URL+"/api/v1/state")
	state := decodeState(t, stateResp)
	require.True(t, state.Authenticated)
	require.NotNil(t, state.User)
	assert.Equal(t, "newbie", state.User.Username)
	assert.False(t, state.User.IsAdmin)

	logoutResp := postJSON(t, server.URL+"/api/v1/auth/logout", struct{}{})
	require.Equal(t, http.StatusOK, logoutResp.StatusCode)

	stateResp = getJSON(t, server.URL+"/api/v1/state")
	state = decodeState(t, stateResp)
	assert.False(t, state.Authenticated)
	assert.Equal(t, model.PageHome, state.CurrentPage)

	login(t, server.URL, "newbie", "hunter22")

	stateResp = getJSON(t, server.URL+"/api/v1/state")
	state = decodeState(t, stateResp)
	assert.True(t, state.Authenticated)
}

func TestRegisterValidation(t *testing.T) {
	server := newAppServer(t)

	t.Run("password confirmation mismatch", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/api/v1/auth/register", model.RegisterRequest{
			Username:        "newbie",
			Email:           "newbie@example.com",
			Password:        "hunter22",
			ConfirmPassword: "hunter23",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("duplicate user surfaces the gateway message", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/api/v1/auth/register", model.RegisterRequest{
			Username:        "skzry",
			Email:           "other@example.com",
			Password:        "hunter22",
			ConfirmPassword: "hunter22",
		})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		var parsed model.APIResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
		require.NotNil(t, parsed.Error)
		assert.Equal(t, "User already exists", parsed.Error.Message)
	})

	t.Run("wrong password surfaces Invalid credentials", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/api/v1/auth/login", model.LoginRequest{Login: "skzry", Password: "wrong"})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		var parsed model.APIResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
		require.NotNil(t, parsed.Error)
		assert.Equal(t, "Invalid credentials", parsed.Error.Message)
	})
}

func TestNavigationFlow(t *testing.T) {
	server := newAppServer(t)
	login(t, server.URL, "skzry", "568876Qqq")

	t.Run("page navigation moves the current page", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/api/v1/nav/page", model.NavigateRequest{Page: "catalog"})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		state := decodeState(t, resp)
		assert.Equal(t, model.PageCatalog, state.CurrentPage)
	})

	t.Run("product selection lands on the product page", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/api/v1/nav/product", model.SelectProductRequest{ProductID: 1})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		state := decodeState(t, resp)
		assert.Equal(t, model.PageProduct, state.CurrentPage)
		require.NotNil(t, state.SelectedProduct)
		assert.Equal(t, int64(1), state.SelectedProduct.ID)
	})

	t.Run("back always lands on home", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/api/v1/nav/back", struct{}{})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		state := decodeState(t, resp)
		assert.Equal(t, model.PageHome, state.CurrentPage)
	})

	t.Run("unknown product is a 404", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/api/v1/nav/product", model.SelectProductRequest{ProductID: 999})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("unknown page is a 400", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/api/v1/nav/page", model.NavigateRequest{Page: "dashboard"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestAdminAccess(t *testing.T) {
	t.Run("admin session reaches the admin page", func(t *testing.T) {
		server := newAppServer(t)
		login(t, server.URL, "skzry", "568876Qqq")

		resp := postJSON(t, server.URL+"/api/v1/nav/page", model.NavigateRequest{Page: "admin"})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		state := decodeState(t, resp)
		assert.Equal(t, model.PageAdmin, state.CurrentPage)
	})

	t.Run("regular session is refused without an error", func(t *testing.T) {
		server := newAppServer(t)

		registerResp := postJSON(t, server.URL+"/api/v1/auth/register", model.RegisterRequest{
			Username:        "regular",
			Email:           "regular@example.com",
			Password:        "hunter22",
			ConfirmPassword: "hunter22",
		})
		require.Equal(t, http.StatusCreated, registerResp.StatusCode)

		resp := postJSON(t, server.URL+"/api/v1/nav/page", model.NavigateRequest{Page: "admin"})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		state := decodeState(t, resp)
		assert.Equal(t, model.PageHome, state.CurrentPage)
	})

	t.Run("legacy admin form grants on the literal credentials", func(t *testing.T) {
		server := newAppServer(t)
		login(t, server.URL, "skzry", "568876Qqq")

		resp := postJSON(t, server.URL+"/api/v1/admin/login", model.AdminLoginRequest{Username: "skzry", Password: "568876Qqq"})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var parsed struct {
			Success bool `json:"success"`
			Data    struct {
				Granted bool `json:"granted"`
			} `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
		assert.True(t, parsed.Data.Granted)
	})
}

func TestCatalogSurface(t *testing.T) {
	server := newAppServer(t)
	login(t, server.URL, "skzry", "568876Qqq")

	t.Run("catalog lists the seeded products", func(t *testing.T) {
		resp := getJSON(t, server.URL+"/api/v1/catalog")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var parsed struct {
			Success bool            `json:"success"`
			Data    []model.Product `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
		assert.NotEmpty(t, parsed.Data)
	})

	t.Run("chats include the guarantor chat", func(t *testing.T) {
		resp := getJSON(t, server.URL+"/api/v1/chats")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var parsed struct {
			Success bool         `json:"success"`
			Data    []model.Chat `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))

		guarantor := 0
		for _, chat := range parsed.Data {
			if chat.IsGuarantorChat {
				guarantor++
			}
		}
		assert.Equal(t, 1, guarantor)
	})
}
