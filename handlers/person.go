package handlers

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/shulware/gabbaibackend/repository"
	"github.com/shulware/gabbaibackend/tabular"
)

// personColumns is the fixed import/export column set for people. The
// ID is deliberately absent so an export re-imports cleanly.
var personColumns = []string{"first_name", "last_name", "hebrew_name", "father_hebrew_name", "tribe", "notes"}

const maxImportBytes = 10 << 20

type PersonHandler struct {
	Repo repository.PersonRepositoryInterface
}

// CreatePerson accepts the people form, validates it and redirects back
// to the list page so a refresh cannot double-submit.
func (ph *PersonHandler) CreatePerson(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		WriteAPIError(w, http.StatusBadRequest, "invalid_form", "Invalid form body: "+err.Error())
		return
	}

	payload := PersonCreatePayload{
		FirstName:        strings.TrimSpace(r.FormValue("first_name")),
		LastName:         strings.TrimSpace(r.FormValue("last_name")),
		HebrewName:       strings.TrimSpace(r.FormValue("hebrew_name")),
		FatherHebrewName: strings.TrimSpace(r.FormValue("father_hebrew_name")),
		Tribe:            strings.TrimSpace(r.FormValue("tribe")),
		Notes:            r.FormValue("notes"),
	}
	if !checkPayload(w, payload) {
		return
	}

	if err := ph.Repo.Create(payload.ToModel()); err != nil {
		log.Printf("Error creating person '%s': %v", payload.FirstName, err)
		WriteAPIError(w, http.StatusInternalServerError, "internal_error", "Failed to create person")
		return
	}

	http.Redirect(w, r, "/people", http.StatusSeeOther)
}

// UpdatePersonField is the inline single-field edit endpoint.
func (ph *PersonHandler) UpdatePersonField(w http.ResponseWriter, r *http.Request) {
	handleInlineUpdate(w, r, "person_id", "person", ph.Repo.UpdateField)
}

// ExportPeople streams every person as a CSV or XLSX download with a
// fixed filename and column set.
func (ph *PersonHandler) ExportPeople(w http.ResponseWriter, r *http.Request) {
	people, err := ph.Repo.ListAll()
	if err != nil {
		log.Printf("Error listing people for export: %v", err)
		WriteAPIError(w, http.StatusInternalServerError, "internal_error", "Failed to export people")
		return
	}

	table := tabular.NewTable(personColumns)
	for _, p := range people {
		table.Append([]string{p.FirstName, p.LastName, p.HebrewName, p.FatherHebrewName, p.Tribe, p.Notes})
	}

	serveTableDownload(w, r, table, "people")
}

// ImportPeople accepts an uploaded CSV or XLSX file (distinguished by
// extension) and creates one person per row. All rows are validated
// before anything is written, so a bad row never leaves a partial
// import behind.
func (ph *PersonHandler) ImportPeople(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportBytes); err != nil {
		WriteAPIError(w, http.StatusBadRequest, "invalid_form", "Invalid multipart body: "+err.Error())
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, "validation_error", "missing required field: file")
		return
	}
	defer file.Close()

	var table *tabular.Table
	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".csv":
		table, err = tabular.DecodeCSV(file)
	case ".xlsx":
		table, err = tabular.DecodeXLSX(file)
	default:
		WriteAPIError(w, http.StatusBadRequest, "unsupported_format", "Unsupported file extension: "+filepath.Ext(header.Filename))
		return
	}
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, "invalid_file", "Failed to parse uploaded file: "+err.Error())
		return
	}

	payloads := make([]PersonCreatePayload, 0, table.Len())
	for i := 0; i < table.Len(); i++ {
		payload := PersonCreatePayload{
			FirstName:        strings.TrimSpace(table.Get(i, "first_name")),
			LastName:         strings.TrimSpace(table.Get(i, "last_name")),
			HebrewName:       strings.TrimSpace(table.Get(i, "hebrew_name")),
			FatherHebrewName: strings.TrimSpace(table.Get(i, "father_hebrew_name")),
			Tribe:            strings.TrimSpace(table.Get(i, "tribe")),
			Notes:            table.Get(i, "notes"),
		}
		if err := validate.Struct(payload); err != nil {
			details := validationDetails(err)
			for j := range details {
				details[j] = fmt.Sprintf("row %d: %s", i+1, details[j])
			}
			WriteValidationError(w, details)
			return
		}
		payloads = append(payloads, payload)
	}

	batchID := uuid.New().String()
	for _, payload := range payloads {
		if err := ph.Repo.Create(payload.ToModel()); err != nil {
			log.Printf("Error importing person '%s' (batch %s): %v", payload.FirstName, batchID, err)
			WriteAPIError(w, http.StatusInternalServerError, "internal_error", "Failed to import people")
			return
		}
	}
	log.Printf("Imported %d people (batch %s) from %s", len(payloads), batchID, header.Filename)

	http.Redirect(w, r, "/people?import_batch="+batchID, http.StatusSeeOther)
}

// serveTableDownload writes the table in the requested format
// (?format=csv|xlsx, default csv) with an attachment disposition.
func serveTableDownload(w http.ResponseWriter, r *http.Request, table *tabular.Table, baseName string) {
	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = "csv"
	}

	var (
		data        []byte
		err         error
		contentType string
		filename    string
	)
	switch format {
	case "csv":
		data, err = tabular.EncodeCSV(table)
		contentType = "text/csv"
		filename = baseName + ".csv"
	case "xlsx":
		data, err = tabular.EncodeXLSX(table)
		contentType = tabular.XLSXContentType
		filename = baseName + ".xlsx"
	default:
		WriteAPIError(w, http.StatusBadRequest, "unsupported_format", "Unsupported export format: "+format)
		return
	}
	if err != nil {
		log.Printf("Error encoding %s export: %v", baseName, err)
		WriteAPIError(w, http.StatusInternalServerError, "internal_error", "Failed to encode export")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename=`+filename)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("Error writing %s export: %v", baseName, err)
	}
}
