package api

import "net/http"

// handleListCategories returns all categories. Categories are shared
// across users; no ownership scoping applies.
func (a *API) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := a.store.ListCategories(r.Context())
	if err != nil {
		writeInternalError(w, "list categories", err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// handleGetCategory returns one category by ID.
func (a *API) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	category, err := a.store.GetCategory(r.Context(), r.PathValue("id"))
	if err != nil {
		writeInternalError(w, "get category", err)
		return
	}
	if category == nil {
		writeMessage(w, http.StatusNotFound, "Category not found")
		return
	}
	writeJSON(w, http.StatusOK, category)
}
