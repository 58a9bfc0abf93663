package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shulware/gabbaibackend/repository"
	"gorm.io/gorm"
)

// handleInlineUpdate is the shared implementation of the single-field
// edit endpoints. It reads `field` and `value` from the form, applies
// the entity's UpdateField and answers with a small JSON ack, keeping
// the error classes distinct: unknown id is 404, a rejected field name
// or value is 400, everything else is 500.
func handleInlineUpdate(w http.ResponseWriter, r *http.Request, idParam, entity string, updateField func(id uint, field, value string) error) {
	idStr := chi.URLParam(r, idParam)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, "invalid_id", "Invalid "+entity+" ID format")
		return
	}

	if err := r.ParseForm(); err != nil {
		WriteAPIError(w, http.StatusBadRequest, "invalid_form", "Invalid form body: "+err.Error())
		return
	}
	field := strings.TrimSpace(r.FormValue("field"))
	value := r.FormValue("value")
	if field == "" {
		WriteAPIError(w, http.StatusBadRequest, "validation_error", "missing required field: field")
		return
	}

	err = updateField(uint(id), field, value)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	case errors.Is(err, gorm.ErrRecordNotFound):
		WriteAPIError(w, http.StatusNotFound, "not_found", entity+" not found")
	case errors.Is(err, repository.ErrInvalidField):
		WriteAPIError(w, http.StatusBadRequest, "invalid_field", "Field cannot be updated: "+field)
	case errors.Is(err, repository.ErrInvalidValue):
		WriteAPIError(w, http.StatusBadRequest, "invalid_value", "Invalid value for field: "+field)
	case repository.IsForeignKeyViolation(err):
		WriteAPIError(w, http.StatusBadRequest, "unknown_person", "Referenced person does not exist")
	default:
		log.Printf("Error updating %s %d field %s: %v", entity, id, field, err)
		WriteAPIError(w, http.StatusInternalServerError, "internal_error", "Failed to update "+entity)
	}
}
