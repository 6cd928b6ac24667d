package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pbtc21/dsw-wallpaper/internal/http/response"
	"github.com/pbtc21/dsw-wallpaper/internal/service"
	"github.com/pbtc21/dsw-wallpaper/pkg/logger"
)

type AppointmentsHandler struct{ svc *service.BookingService }

func NewAppointmentsHandler(svc *service.BookingService) *AppointmentsHandler {
	return &AppointmentsHandler{svc: svc}
}

// Create handles the booking form POST. Failures of any kind, including a
// missing store binding, collapse into one generic error page; the submitter
// is never told which cause it was.
func (h *AppointmentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error processing booking", http.StatusInternalServerError)
		return
	}

	in := service.FormSubmission{
		FirstName:   r.PostFormValue("firstName"),
		LastName:    r.PostFormValue("lastName"),
		Email:       r.PostFormValue("email"),
		Phone:       r.PostFormValue("phone"),
		Date:        r.PostFormValue("date"),
		Time:        r.PostFormValue("time"),
		ProjectType: r.PostFormValue("projectType"),
		Message:     r.PostFormValue("message"),
	}

	if _, err := h.svc.SubmitBooking(r.Context(), in); err != nil {
		logger.ErrorContext(r.Context(), "booking submission failed", "error", err)
		http.Error(w, "Error processing booking", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/thank-you", http.StatusSeeOther)
}

func (h *AppointmentsHandler) List(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.svc.ListBookings(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrStoreUnavailable) {
			response.StoreUnavailable(w)
			return
		}
		logger.ErrorContext(r.Context(), "listing appointments failed", "error", err)
		response.InternalError(w, "error loading appointments")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(appointments)
}

func (h *AppointmentsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "invalid appointment id")
		return
	}

	var in struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.BadRequest(w, "invalid json")
		return
	}

	if err := h.svc.SetStatus(r.Context(), id, in.Status); err != nil {
		if errors.Is(err, service.ErrStoreUnavailable) {
			response.StoreUnavailable(w)
			return
		}
		logger.ErrorContext(r.Context(), "status update failed", "error", err, "id", id)
		response.InternalError(w, "error updating appointment")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]bool{"success": true})
}
