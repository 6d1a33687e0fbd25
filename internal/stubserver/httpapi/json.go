package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dmitrijs2005/luca/internal/stubserver/accounts"
)

const maxBodySize = 1 << 16

type message struct {
	Message string `json:"message"`
}

type validationItem struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDetail answers with {"detail": msg}.
func writeDetail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"detail": msg})
}

// writeValidation answers 422 with a detail list, one item per failed field.
func writeValidation(w http.ResponseWriter, ve accounts.ValidationError) {
	items := make([]validationItem, len(ve))
	for i, fe := range ve {
		items[i] = validationItem{Loc: []string{"body", fe.Field}, Msg: fe.Message, Type: "value_error"}
	}
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"detail": items})
}

// decodeBody reads a JSON body into dst. On failure it has already written
// the 422 response and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(dst)
	if err == nil {
		return true
	}
	msg := "Invalid JSON body"
	if errors.Is(err, io.EOF) {
		msg = "Field required"
	}
	writeValidation(w, accounts.ValidationError{{Field: "body", Message: msg}})
	return false
}

// writeServiceError maps failures of the accounts service onto responses.
func writeServiceError(w http.ResponseWriter, err error) {
	var ve accounts.ValidationError
	if errors.As(err, &ve) {
		writeValidation(w, ve)
		return
	}
	writeDetail(w, http.StatusInternalServerError, "Internal server error")
}
