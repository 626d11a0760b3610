package server

import (
	"encoding/json"
	"net/http"

	"friendzone/pkg/errors"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondOK(w http.ResponseWriter) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func respondError(w http.ResponseWriter, err error) {
	respondJSON(w, errors.HTTPStatus(err), errorResponse{Error: errors.Message(err)})
}

// respondFriendError collapses transport failures into a generic 400 on the
// add/accept paths; precondition and auth failures keep their status.
func respondFriendError(w http.ResponseWriter, err error) {
	status := errors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request"})
		return
	}
	respondJSON(w, status, errorResponse{Error: errors.Message(err)})
}

// respondSendError keeps the send path's narrow status surface: 401 for
// authorization failures, 500 for everything else.
func respondSendError(w http.ResponseWriter, err error) {
	status := errors.HTTPStatus(err)
	if status != http.StatusUnauthorized {
		status = http.StatusInternalServerError
	}
	respondJSON(w, status, errorResponse{Error: errors.Message(err)})
}
