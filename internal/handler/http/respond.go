package http

import (
	"net/http"

	"github.com/avolkhin/notekeeper/internal/utils"
	"github.com/avolkhin/notekeeper/models"
)

// writeFailure writes the error envelope with the given advisory status
// code. The envelope's Error flag, not the status, is authoritative for
// clients.
func writeFailure(w http.ResponseWriter, statusCode int, message string) {
	utils.WriteJSON(w, models.Response{Error: true, Message: message}, statusCode)
}

// ok builds the success half of a response envelope.
func ok(message string) models.Response {
	return models.Response{Error: false, Message: message}
}
