// internal/api/response.go
package api

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope every endpoint returns.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Total   *int   `json:"total,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func write(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

// OK writes a 200 envelope around data.
func OK(w http.ResponseWriter, data any) {
	write(w, http.StatusOK, Response{Success: true, Data: data})
}

// OKWithMessage writes a 200 envelope with a human-readable message.
func OKWithMessage(w http.ResponseWriter, data any, message string) {
	write(w, http.StatusOK, Response{Success: true, Data: data, Message: message})
}

// Created writes a 201 envelope with a human-readable message.
func Created(w http.ResponseWriter, data any, message string) {
	write(w, http.StatusCreated, Response{Success: true, Data: data, Message: message})
}

// List writes a 200 envelope carrying the result and its length.
func List(w http.ResponseWriter, data any, total int) {
	write(w, http.StatusOK, Response{Success: true, Data: data, Total: &total})
}

// Fail writes an error envelope with the given status.
func Fail(w http.ResponseWriter, status int, errMsg, message string) {
	write(w, status, Response{Success: false, Error: errMsg, Message: message})
}
