package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pr-poehali-dev/online-shop-network/internal/catalog"
	"github.com/pr-poehali-dev/online-shop-network/pkg/apierror"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

func (h *CatalogHandler) Products(w http.ResponseWriter, r *http.Request) {
	products := h.catalog.Products()

	if category := strings.TrimSpace(r.URL.Query().Get("category")); category != "" {
		filtered := products[:0]
		for _, p := range products {
			if strings.EqualFold(p.Category, category) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	writeSuccess(w, http.StatusOK, products)
}

func (h *CatalogHandler) Chats(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, h.catalog.Chats())
}

func (h *CatalogHandler) Purchases(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, h.catalog.Purchases())
}

// SubmitProduct acknowledges a seller listing submission. Moderation is
// outside this system; the listing goes nowhere.
func (h *CatalogHandler) SubmitProduct(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.BadRequest("invalid JSON body"))
		return
	}

	if strings.TrimSpace(payload.Title) == "" {
		writeError(w, apierror.New("BAD_REQUEST", "title is required", "title", http.StatusBadRequest))
		return
	}

	writeSuccess(w, http.StatusAccepted, map[string]any{"status": "pending_review"})
}
