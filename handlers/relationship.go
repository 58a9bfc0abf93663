package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/shulware/gabbaibackend/repository"
)

type RelationshipHandler struct {
	Repo repository.RelationshipRepositoryInterface
}

// CreateRelationship accepts the relationships form, validates it and
// redirects back to the list page. Both person references are enforced
// by foreign keys.
func (rh *RelationshipHandler) CreateRelationship(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		WriteAPIError(w, http.StatusBadRequest, "invalid_form", "Invalid form body: "+err.Error())
		return
	}

	payload := RelationshipCreatePayload{
		RelationType:    strings.TrimSpace(r.FormValue("relation_type")),
		PersonID:        strings.TrimSpace(r.FormValue("person_id")),
		RelatedPersonID: strings.TrimSpace(r.FormValue("related_person_id")),
	}
	if !checkPayload(w, payload) {
		return
	}

	rel, err := payload.ToModel()
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	if err := rh.Repo.Create(rel); err != nil {
		if repository.IsForeignKeyViolation(err) {
			WriteAPIError(w, http.StatusBadRequest, "unknown_person", "Referenced person does not exist")
			return
		}
		log.Printf("Error creating relationship %d -> %d: %v", rel.PersonID, rel.RelatedPersonID, err)
		WriteAPIError(w, http.StatusInternalServerError, "internal_error", "Failed to create relationship")
		return
	}

	http.Redirect(w, r, "/relationships", http.StatusSeeOther)
}

// UpdateRelationshipField is the inline single-field edit endpoint. It
// exists for symmetry with people and aliyot.
func (rh *RelationshipHandler) UpdateRelationshipField(w http.ResponseWriter, r *http.Request) {
	handleInlineUpdate(w, r, "relationship_id", "relationship", rh.Repo.UpdateField)
}
