package apperror

import "net/http"

// HTTPStatus maps an error's kind to the HTTP status handlers respond with.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	case KindIntegrity:
		return http.StatusConflict
	case KindExternalResource:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
