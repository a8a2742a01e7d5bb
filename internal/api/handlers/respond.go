package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse стандартный формат ошибки API
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondJSON пишет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// DecodeJSON читает тело запроса в указанную структуру
func DecodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	return dec.Decode(dst)
}

// RespondBadRequest 400 - невалидный запрос
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusBadRequest, ErrorResponse{Code: "BAD_REQUEST", Message: message})
}

// RespondUnauthorized 401 - пользователь не аутентифицирован
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusUnauthorized, ErrorResponse{Code: "UNAUTHORIZED", Message: message})
}

// RespondForbidden 403 - доступ запрещен
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusForbidden, ErrorResponse{Code: "FORBIDDEN", Message: message})
}

// RespondNotFound 404 - ресурс не найден
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusNotFound, ErrorResponse{Code: "NOT_FOUND", Message: message})
}

// RespondConflict 409 - конфликт (слот уже занят)
func RespondConflict(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusConflict, ErrorResponse{Code: "CONFLICT", Message: message})
}

// RespondUnprocessableEntity 422 - синтаксически корректный, но семантически невалидный запрос
func RespondUnprocessableEntity(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Code: "UNPROCESSABLE_ENTITY", Message: message})
}

// RespondInternalError 500 - внутренняя ошибка сервера
func RespondInternalError(w http.ResponseWriter) {
	RespondJSON(w, http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR", Message: "внутренняя ошибка сервера"})
}
