package handlers

import (
	"strconv"

	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/apperrors"
	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/middleware"
	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Responder writes the uniform response envelope. In development mode
// error responses additionally carry the underlying error detail; in
// production only the classified kind and message ever leave the server.
type Responder struct {
	Development bool
}

// ErrorBody is the error half of the response envelope.
type ErrorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// OK writes a success envelope with the given status and payload.
func (r Responder) OK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// Error classifies err, logs internals and writes the error envelope.
func (r Responder) Error(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)

	if kind == apperrors.KindInternal {
		logrus.WithFields(logrus.Fields{
			"request_id": middleware.RequestIDFrom(c),
			"path":       c.FullPath(),
			"error":      err.Error(),
		}).Error("request failed")
	}

	body := ErrorBody{
		Kind:    kind.String(),
		Message: apperrors.MessageOf(err),
	}
	if r.Development {
		body.Detail = err.Error()
	}

	c.JSON(apperrors.HTTPStatus(kind), gin.H{"success": false, "error": body})
}

// BindError reports a request body that failed binding as invalid input.
func (r Responder) BindError(c *gin.Context, err error) {
	r.Error(c, apperrors.Wrap(apperrors.KindInvalidInput, "invalid request body", err))
}

// principal returns the authenticated principal or writes a 401. Routes
// behind RequireAuth always have one; the error branch guards against
// misregistered routes.
func (r Responder) principal(c *gin.Context) (*service.Principal, bool) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		r.Error(c, apperrors.New(apperrors.KindUnauthenticated, "authentication required"))
		return nil, false
	}
	return principal, true
}

// idParam parses a numeric path parameter. A non-numeric or non-positive
// value is invalid input, not a missing resource.
func (r Responder) idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		r.Error(c, apperrors.New(apperrors.KindInvalidInput, "invalid "+name))
		return 0, false
	}
	return id, true
}

// queryInt parses an optional integer query parameter, falling back to
// the default on absence or garbage.
func queryInt(c *gin.Context, name string, defaultValue int) int {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}
