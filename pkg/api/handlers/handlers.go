package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pairboard/pairboard/pkg/board"
	"github.com/pairboard/pairboard/pkg/log"
	"github.com/pairboard/pairboard/web"
)

// HandleIndex serves the embedded widget page.
func HandleIndex() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write(web.IndexHTML()); err != nil {
			log.Error("failed to write index page: %v", err)
		}
	}
}

// HandleCatalog serves the fixed token catalog for the widget palette.
func HandleCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(board.Catalog()); err != nil {
			log.Error("failed to encode catalog: %v", err)
			http.Error(w, "Failed to encode catalog", http.StatusInternalServerError)
			return
		}
	}
}

// HandleLayouts serves the layout presets for the widget's layout picker.
func HandleLayouts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(board.Presets()); err != nil {
			log.Error("failed to encode layout presets: %v", err)
			http.Error(w, "Failed to encode layout presets", http.StatusInternalServerError)
			return
		}
	}
}

// HandleHealth reports liveness.
func HandleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
}
