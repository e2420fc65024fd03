package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pr-poehali-dev/online-shop-network/internal/catalog"
	"github.com/pr-poehali-dev/online-shop-network/internal/event"
	"github.com/pr-poehali-dev/online-shop-network/internal/model"
	"github.com/pr-poehali-dev/online-shop-network/internal/nav"
	"github.com/pr-poehali-dev/online-shop-network/internal/service"
	"github.com/pr-poehali-dev/online-shop-network/pkg/apierror"
)

// StateHandler exposes the navigation state machine to the view renderer.
type StateHandler struct {
	accounts   *service.AccountService
	controller *nav.Controller
	catalog    *catalog.Catalog
	bus        event.Bus
}

func NewStateHandler(accounts *service.AccountService, controller *nav.Controller, cat *catalog.Catalog, bus event.Bus) *StateHandler {
	return &StateHandler{accounts: accounts, controller: controller, catalog: cat, bus: bus}
}

// State reports (Session|absent, NavigationState) in one payload. It is the
// only endpoint reachable without a session, so the renderer can decide to
// show the auth surface.
func (h *StateHandler) State(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, h.snapshot())
}

func (h *StateHandler) NavigatePage(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.NavigateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.BadRequest("invalid JSON body"))
		return
	}

	page, err := model.ParsePage(payload.Page)
	if err != nil {
		writeError(w, err)
		return
	}

	// A refused admin transition is not an error to the caller; the state
	// simply comes back unchanged.
	if h.controller.NavigateToPage(page) {
		h.bus.Publish(event.New(event.TypePageChanged, map[string]string{"page": string(page)}))
	}

	writeSuccess(w, http.StatusOK, h.snapshot())
}

func (h *StateHandler) NavigateProduct(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.SelectProductRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.BadRequest("invalid JSON body"))
		return
	}

	product, err := h.catalog.ProductByID(payload.ProductID)
	if err != nil {
		writeError(w, err)
		return
	}

	h.controller.NavigateToProduct(product)
	h.bus.Publish(event.New(event.TypeProductSelected, map[string]int64{"product_id": product.ID}))

	writeSuccess(w, http.StatusOK, h.snapshot())
}

func (h *StateHandler) Back(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	h.controller.GoBack()
	h.bus.Publish(event.New(event.TypePageChanged, map[string]string{"page": string(model.PageHome)}))

	writeSuccess(w, http.StatusOK, h.snapshot())
}

func (h *StateHandler) snapshot() model.StateResponse {
	state := h.controller.State()
	resp := model.StateResponse{
		CurrentPage:     state.CurrentPage,
		SelectedProduct: state.SelectedProduct,
	}

	if session, ok := h.accounts.Current(); ok {
		resp.Authenticated = true
		user := session.User
		resp.User = &user
	}

	return resp
}
