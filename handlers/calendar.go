package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/shulware/gabbaibackend/hebcal"
	"github.com/shulware/gabbaibackend/models"
)

type CalendarHandler struct {
	Client *hebcal.Client
}

// leyningResponse is the wire shape of the calendar lookup. On adapter
// failure the defaults are served with the error message attached; the
// empty parsha/yomtov fields stay present so clients can bind blindly.
type leyningResponse struct {
	Parsha  string `json:"parsha"`
	Yomtov  string `json:"yomtov"`
	DayType string `json:"day_type"`
	Error   string `json:"error,omitempty"`
}

// Leyning answers GET /calendar/leyning?date=YYYY-MM-DD. A missing or
// malformed date is a client error; anything that goes wrong upstream
// is absorbed into a degraded 200 response and never propagated.
func (ch *CalendarHandler) Leyning(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		WriteAPIError(w, http.StatusBadRequest, "validation_error", "missing required field: date")
		return
	}
	date, err := time.Parse(models.DateLayout, dateStr)
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, "validation_error", "field date must be a date in YYYY-MM-DD format")
		return
	}

	info, err := ch.Client.Lookup(r.Context(), date)
	if err != nil {
		log.Printf("Calendar lookup failed for %s: %v", dateStr, err)
		writeJSON(w, http.StatusOK, leyningResponse{
			DayType: hebcal.DayTypeWeekday,
			Error:   "calendar lookup failed: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, leyningResponse{
		Parsha:  info.Parsha,
		Yomtov:  info.Yomtov,
		DayType: info.DayType,
	})
}
