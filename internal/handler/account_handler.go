package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pr-poehali-dev/online-shop-network/internal/event"
	"github.com/pr-poehali-dev/online-shop-network/internal/model"
	"github.com/pr-poehali-dev/online-shop-network/internal/nav"
	"github.com/pr-poehali-dev/online-shop-network/internal/service"
	"github.com/pr-poehali-dev/online-shop-network/pkg/apierror"
)

type AccountHandler struct {
	accounts   *service.AccountService
	controller *nav.Controller
	bus        event.Bus
}

func NewAccountHandler(accounts *service.AccountService, controller *nav.Controller, bus event.Bus) *AccountHandler {
	return &AccountHandler{accounts: accounts, controller: controller, bus: bus}
}

func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.BadRequest("invalid JSON body"))
		return
	}

	user, err := h.accounts.Register(r.Context(), payload.Username, payload.Email, payload.Password, payload.ConfirmPassword)
	if err != nil {
		writeError(w, err)
		return
	}

	h.bus.Publish(event.New(event.TypeSessionEstablished, user))
	writeSuccess(w, http.StatusCreated, user)
}

func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.BadRequest("invalid JSON body"))
		return
	}

	user, err := h.accounts.Login(r.Context(), payload.Login, payload.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	h.bus.Publish(event.New(event.TypeSessionEstablished, user))
	writeSuccess(w, http.StatusOK, user)
}

func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	if err := h.accounts.Logout(); err != nil {
		writeError(w, err)
		return
	}
	h.controller.Reset()

	h.bus.Publish(event.New(event.TypeSessionCleared, nil))
	writeSuccess(w, http.StatusOK, map[string]any{"logged_out": true})
}

// AdminLogin is the deprecated literal-credential gate kept for the old
// profile-page form. A mismatch is reported as granted=false with no
// message, matching the legacy behavior.
func (h *AccountHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.BadRequest("invalid JSON body"))
		return
	}

	granted := h.controller.AttemptAdminLogin(payload.Username, payload.Password)
	if granted {
		h.bus.Publish(event.New(event.TypeAdminGranted, nil))
	}

	writeSuccess(w, http.StatusOK, map[string]any{"granted": granted})
}
