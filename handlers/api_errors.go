package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Error encoding JSON response: %v", err)
		}
	}
}

// APIErrorDetail represents a single error in the standardized error response.
type APIErrorDetail struct {
	Code   string `json:"code"`
	Status string `json:"status"`
	Detail string `json:"detail"`
}

// APIErrorResponse represents the standardized error response body.
type APIErrorResponse struct {
	Errors []APIErrorDetail `json:"errors"`
}

// WriteAPIError writes a standardized error response with the given HTTP status, code, and detail.
func WriteAPIError(w http.ResponseWriter, httpStatus int, code string, detail string) {
	resp := APIErrorResponse{
		Errors: []APIErrorDetail{
			{
				Code:   code,
				Status: strconv.Itoa(httpStatus),
				Detail: detail,
			},
		},
	}
	writeJSON(w, httpStatus, resp)
}

// WriteValidationError writes a 400 response carrying one entry per
// offending field so form clients can highlight each one.
func WriteValidationError(w http.ResponseWriter, fieldDetails []string) {
	details := make([]APIErrorDetail, 0, len(fieldDetails))
	for _, d := range fieldDetails {
		details = append(details, APIErrorDetail{
			Code:   "validation_error",
			Status: strconv.Itoa(http.StatusBadRequest),
			Detail: d,
		})
	}
	writeJSON(w, http.StatusBadRequest, APIErrorResponse{Errors: details})
}
