package assessment

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/brightlearn/assessment/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.Type != "" {
		if _, ok := models.SessionTypeConfigs[req.Type]; !ok {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid session type"})
			return
		}
	}

	sess, err := h.service.CreateSession(req)
	if err != nil {
		writeError(w, "CreateSession", err)
		return
	}

	served := make([]models.ServedQuestion, 0, len(sess.PresentedQuestions))
	for i := range sess.PresentedQuestions {
		served = append(served, sess.PresentedQuestions[i].ToServed())
	}

	writeJSON(w, http.StatusCreated, models.CreateSessionResponse{
		SessionID: sess.ID,
		Type:      sess.Type,
		Subject:   sess.Subject,
		Topics:    sess.TargetTopics,
		ItemCap:   sess.ItemCap(),
		Questions: served,
	})
}

func (h *Handler) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["id"]

	var req models.SubmitResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.QuestionID == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "question_id is required"})
		return
	}

	resp, err := h.service.SubmitResponse(sessionID, req)
	if err != nil {
		writeError(w, "SubmitResponse", err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	report, err := h.service.GetReport(vars["id"])
	if err != nil {
		writeError(w, "GetReport", err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// writeError maps the engine's error taxonomy onto HTTP statuses:
// not-found → 404, completed-session submissions → 409, malformed
// submissions → 400, everything else → 500.
func writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, ErrQuestionNotFound):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrAssessmentCompleted):
		writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrValidation):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	default:
		log.Printf("[handler] %s error: %v", op, err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
