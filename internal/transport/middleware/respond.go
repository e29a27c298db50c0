package middleware

import (
	"encoding/json"
	"net/http"
)

// errorBody mirrors the REST error envelope so clients decode middleware
// rejections the same way as handler errors.
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: msg, Code: code})
}
