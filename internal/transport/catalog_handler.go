package transport

import (
	"errors"
	"net/http"

	"sama-store/internal/domain"
	"sama-store/internal/middleware"
	"sama-store/internal/recommend"
	"sama-store/internal/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CatalogHandler serves the public product catalog and recommendations.
type CatalogHandler struct {
	store       *store.Store
	recommender *recommend.Client // nil when the gateway is disabled
	logger      *zap.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(st *store.Store, recommender *recommend.Client, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{store: st, recommender: recommender, logger: logger}
}

// RegisterRoutes mounts the public catalog routes.
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/products", h.ListProducts)
	r.Get("/api/products/{id}", h.GetProduct)
	r.Get("/api/products/{id}/recommendations", h.Recommendations)
	r.Get("/api/categories", h.ListCategories)
	r.Get("/api/search/suggest", h.SearchSuggestions)
}

// ListProducts returns the catalog, optionally filtered by category and a
// text query.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	query := r.URL.Query().Get("q")
	middleware.RespondWithJSON(w, http.StatusOK, h.store.SearchProducts(category, query))
}

// GetProduct returns one product.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.store.ProductByID(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// ListCategories returns the browsing taxonomy.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, store.DefaultCategories)
}

// Recommendations ranks other products against a profile. Gateway failures
// degrade to the deterministic fallback; the response never reports an error.
func (h *CatalogHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if _, err := h.store.ProductByID(productID); err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}

	products := h.store.Products()
	candidates := make([]recommend.Candidate, 0, len(products))
	for _, p := range products {
		candidates = append(candidates, recommend.Candidate{ID: p.ID, Name: p.Name, Category: p.Category})
	}

	ids := recommend.Fallback(candidates, productID)
	if h.recommender != nil {
		profile := r.URL.Query().Get("profile")
		select {
		case result := <-h.recommender.Recommend(r.Context(), profile, candidates):
			if result.Err != nil {
				h.logger.Debug("Recommendation gateway failed, using fallback", zap.Error(result.Err))
			} else if len(result.IDs) > 0 {
				ids = result.IDs
			}
		case <-r.Context().Done():
			h.logger.Debug("Recommendation request canceled, using fallback")
		}
	}

	out := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		if p, err := h.store.ProductByID(id); err == nil {
			out = append(out, p)
		} else if !errors.Is(err, store.ErrProductNotFound) {
			h.logger.Warn("Failed to resolve recommended product", zap.String("product_id", id), zap.Error(err))
		}
	}
	middleware.RespondWithJSON(w, http.StatusOK, out)
}

// SearchSuggestions returns smart search phrases for a query. Empty when the
// gateway is off or the query is too short.
func (h *CatalogHandler) SearchSuggestions(w http.ResponseWriter, r *http.Request) {
	suggestions := []string{}
	if h.recommender != nil {
		if s := h.recommender.Suggest(r.Context(), r.URL.Query().Get("q")); s != nil {
			suggestions = s
		}
	}
	middleware.RespondWithJSON(w, http.StatusOK, suggestions)
}
