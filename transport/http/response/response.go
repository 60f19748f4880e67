package response

import (
	"encoding/json"
	"net/http"

	"innkeep/shared/constant"
	"innkeep/shared/logger"
)

type envelope map[string]any

const fieldSuccess = "success"

// WithSuccess sends {"success": true}.
func WithSuccess(writer http.ResponseWriter) {
	response(writer, http.StatusOK, envelope{fieldSuccess: true})
}

// WithPayload sends {"success": true} plus a single named payload field.
func WithPayload(writer http.ResponseWriter, field string, payload any) {
	response(writer, http.StatusOK, envelope{fieldSuccess: true, field: payload})
}

// WithFailure sends {"success": false}. Failures are signalled in the body, not the
// status code, and no error detail crosses into the response.
func WithFailure(writer http.ResponseWriter) {
	response(writer, http.StatusOK, envelope{fieldSuccess: false})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	message(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	message(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	message(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func message(writer http.ResponseWriter, code int, msg string) {
	response(writer, code, envelope{"message": msg})
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
