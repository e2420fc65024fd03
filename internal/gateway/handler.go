package gateway

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pr-poehali-dev/online-shop-network/internal/model"
	"github.com/pr-poehali-dev/online-shop-network/pkg/apierror"
)

// Handler serves the single auth endpoint. The wire contract is fixed:
// JSON body with an action discriminator, {token, user} on success and
// {error} on failure, discriminated solely by HTTP status.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Authenticate(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.GatewayRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeGatewayError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	var (
		resp model.AuthResponse
		err  error
	)

	switch payload.Action {
	case "register":
		resp, err = h.service.Register(r.Context(), payload.Username, payload.Email, payload.Password)
	case "login":
		resp, err = h.service.Login(r.Context(), payload.Login, payload.Password)
	default:
		writeGatewayError(w, http.StatusBadRequest, "Unknown action")
		return
	}

	if err != nil {
		var apiErr *apierror.APIError
		if errors.As(err, &apiErr) {
			writeGatewayError(w, apiErr.HTTPStatus, apiErr.Message)
			return
		}

		slog.Error("auth request failed", "action", payload.Action, "error", err)
		writeGatewayError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}

// MethodNotAllowed mirrors the endpoint's legacy behavior for anything but
// POST and the CORS preflight.
func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeGatewayError(w, http.StatusMethodNotAllowed, "Method not allowed")
}

func writeGatewayError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.GatewayErrorResponse{Error: message})
}
