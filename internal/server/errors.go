package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/agenthands/mdm/internal/core/common"
	"github.com/agenthands/mdm/internal/core/registry"
)

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	var (
		vErr *common.ValidationError
		mErr *common.ModelError
		eErr *common.EmptyResultError
	)
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest
	case errors.As(err, &mErr), errors.As(err, &eErr):
		return http.StatusBadGateway
	case errors.Is(err, registry.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, registry.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(c *gin.Context, err error) {
	status := statusFor(err)
	body := gin.H{"error": err.Error(), "request_id": requestID(c)}

	var vErr *common.ValidationError
	if errors.As(err, &vErr) && vErr.Field != "" {
		body["field"] = vErr.Field
	}

	switch status {
	case http.StatusBadGateway:
		s.Log.WithFields(logrus.Fields{"request_id": requestID(c), "error": err}).Warn("model call failed")
	case http.StatusInternalServerError:
		s.Log.WithFields(logrus.Fields{"request_id": requestID(c), "error": err}).Error("unexpected error")
		body["error"] = "internal server error"
	}

	c.JSON(status, body)
}

func (s *Server) badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":      "Invalid request: " + err.Error(),
		"request_id": requestID(c),
	})
}
