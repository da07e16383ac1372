package devapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Options controls the wire shape of the API.
type Options struct {
	// MongoIDs emits identifiers under "_id" instead of "id".
	MongoIDs bool
}

type categoryJSON struct {
	ID       string `json:"id,omitempty"`
	MongoID  string `json:"_id,omitempty"`
	Name     string `json:"name"`
	IsActive *bool  `json:"isActive,omitempty"`
}

type smoothieJSON struct {
	ID          string   `json:"id,omitempty"`
	MongoID     string   `json:"_id,omitempty"`
	Category    string   `json:"category"`
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

// RegisterRoutes mounts the catalog endpoints on the given router.
func RegisterRoutes(r chi.Router, store *Store, opts Options, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r.Get("/api/categories", listCategoriesHandler(store, opts, logger))
	r.Get("/api/smoothies", listSmoothiesHandler(store, opts, logger))
}

func listCategoriesHandler(store *Store, opts Options, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := store.ListCategories(r.Context())
		if err != nil {
			logger.Error("listing categories", zap.Error(err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		result := make([]categoryJSON, 0, len(categories))
		for _, c := range categories {
			out := categoryJSON{Name: c.Name, IsActive: c.IsActive}
			if opts.MongoIDs {
				out.MongoID = c.ID
			} else {
				out.ID = c.ID
			}
			result = append(result, out)
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func listSmoothiesHandler(store *Store, opts Options, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID := r.URL.Query().Get("category")
		smoothies, err := store.ListSmoothies(r.Context(), categoryID)
		if err != nil {
			logger.Error("listing smoothies", zap.String("category_id", categoryID), zap.Error(err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		result := make([]smoothieJSON, 0, len(smoothies))
		for _, sm := range smoothies {
			out := smoothieJSON{
				Category:    sm.CategoryID,
				Name:        sm.Name,
				Description: sm.Description,
				Image:       sm.Image,
				Price:       sm.Price,
			}
			if opts.MongoIDs {
				out.MongoID = sm.ID
			} else {
				out.ID = sm.ID
			}
			result = append(result, out)
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
