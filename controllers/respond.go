package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"unicode"

	"canteen-api/models"
	"canteen-api/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the {error} envelope. Anything
// outside the taxonomy is logged and flattened to a generic 500 so no
// store or transport detail leaks out of a handler.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: detail(err, services.ErrValidation)})
	case errors.Is(err, services.ErrInvalidPin):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid PIN"})
	case errors.Is(err, services.ErrPinExpired):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "PIN expired"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: detail(err, services.ErrNotFound)})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: detail(err, services.ErrConflict)})
	default:
		log.Printf("Internal error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
	}
}

// detail extracts the human-readable part of a wrapped sentinel error.
func detail(err, sentinel error) string {
	msg := strings.TrimPrefix(err.Error(), sentinel.Error())
	msg = strings.TrimPrefix(msg, ": ")
	if msg == "" {
		msg = sentinel.Error()
	}

	runes := []rune(msg)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
