// Package utilities contain utility code that use across the package
package utilities

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/manthan270/hirelite/internal/model"
)

// ErrorResponse type for swagger docs
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse type for swagger docs
type MessageResponse struct {
	Message string `json:"message"`
}

// ExtractUser extracts the session model from Gin context.
// It does not abort the request; it returns an error when missing or invalid.
func ExtractUser(c *gin.Context) (model.Session, error) {
	u, _ := c.Get("user")
	if u == nil {
		return model.Session{}, errors.New("User information not provided")
	}

	user, ok := u.(model.Session)
	if !ok {
		return model.Session{}, errors.New("Failed to assert type")
	}
	return user, nil
}
