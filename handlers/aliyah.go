package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/shulware/gabbaibackend/models"
	"github.com/shulware/gabbaibackend/repository"
	"github.com/shulware/gabbaibackend/tabular"
)

// aliyahColumns is the fixed export column set for aliyot. The person
// column is the patronymic display string, not an identifier.
var aliyahColumns = []string{"date", "parsha", "holiday", "service", "aliyah_number", "reason", "person"}

type AliyahHandler struct {
	Repo repository.AliyahRepositoryInterface
}

// CreateAliyah accepts the aliyah form, validates it and redirects back
// to the list page. A person reference that does not resolve is a
// client error; the foreign key guarantees no orphan row is written.
func (ah *AliyahHandler) CreateAliyah(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		WriteAPIError(w, http.StatusBadRequest, "invalid_form", "Invalid form body: "+err.Error())
		return
	}

	payload := AliyahCreatePayload{
		Date:         strings.TrimSpace(r.FormValue("date")),
		Parsha:       strings.TrimSpace(r.FormValue("parsha")),
		Holiday:      strings.TrimSpace(r.FormValue("holiday")),
		Service:      strings.TrimSpace(r.FormValue("service")),
		AliyahNumber: strings.TrimSpace(r.FormValue("aliyah_number")),
		Reason:       r.FormValue("reason"),
		PersonID:     strings.TrimSpace(r.FormValue("person_id")),
	}
	if !checkPayload(w, payload) {
		return
	}

	aliyah, err := payload.ToModel()
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	if err := ah.Repo.Create(aliyah); err != nil {
		if repository.IsForeignKeyViolation(err) {
			WriteAPIError(w, http.StatusBadRequest, "unknown_person", "Referenced person does not exist")
			return
		}
		log.Printf("Error creating aliyah for person %d: %v", aliyah.PersonID, err)
		WriteAPIError(w, http.StatusInternalServerError, "internal_error", "Failed to create aliyah")
		return
	}

	http.Redirect(w, r, "/aliyot", http.StatusSeeOther)
}

// UpdateAliyahField is the inline single-field edit endpoint.
func (ah *AliyahHandler) UpdateAliyahField(w http.ResponseWriter, r *http.Request) {
	handleInlineUpdate(w, r, "aliyah_id", "aliyah", ah.Repo.UpdateField)
}

// ExportAliyot streams every aliyah joined with the honored person's
// patronymic as a CSV or XLSX download.
func (ah *AliyahHandler) ExportAliyot(w http.ResponseWriter, r *http.Request) {
	rows, err := ah.Repo.ListForExport()
	if err != nil {
		log.Printf("Error listing aliyot for export: %v", err)
		WriteAPIError(w, http.StatusInternalServerError, "internal_error", "Failed to export aliyot")
		return
	}

	table := tabular.NewTable(aliyahColumns)
	for _, row := range rows {
		table.Append([]string{
			row.Date.Format(models.DateLayout),
			row.Parsha,
			row.Holiday,
			row.Service,
			row.AliyahNumber,
			row.Reason,
			row.PersonDisplay(),
		})
	}

	serveTableDownload(w, r, table, "aliyot")
}
