// Package controllers maps HTTP requests to service calls: decode and
// validate input, invoke the service, translate the result (or its error)
// into a response.
package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/stylevault/app/services"
	"github.com/shashiranjanraj/stylevault/pkg/response"
)

// respondError maps a service failure onto the wire: domain errors carry
// their own status, everything else is a 500 with the underlying message.
func respondError(w http.ResponseWriter, err error) {
	var domainErr *services.Error
	if errors.As(err, &domainErr) {
		response.Error(w, domainErr.Status, domainErr.Message)
		return
	}
	response.Error(w, http.StatusInternalServerError, err.Error())
}
