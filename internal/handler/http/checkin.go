package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/eventgate/checkin/internal/logger"
	"github.com/eventgate/checkin/internal/service"
	"github.com/eventgate/checkin/internal/store"
	"github.com/eventgate/checkin/internal/utils"
	"github.com/eventgate/checkin/models"
)

// checkin handles POST /qrcheckin/checkin.
//
// 400 when the QR hash is missing, 201 when the attendance row was stamped,
// 411 when the hash matched no row (status kept for compatibility with the
// existing frontend), 500 with a generic body otherwise.
func (h *Handler) checkin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CheckinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: msgInvalidBody}, http.StatusBadRequest)
		return
	}

	if err := h.services.CheckinService.MarkAttendance(ctx, req.EventHash); err != nil {
		switch {
		case errors.Is(err, service.ErrMissingEventHash):
			utils.WriteJSON(w, models.MessageResponse{Message: msgEventHashRequired}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrAttendeeNotFound):
			utils.WriteJSON(w, models.MessageResponse{Message: msgAttendanceFailed}, http.StatusLengthRequired)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during check-in")
			utils.WriteJSON(w, models.MessageResponse{Message: msgInternalError}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.MessageResponse{Message: msgAttendanceTaken}, http.StatusCreated)
}
