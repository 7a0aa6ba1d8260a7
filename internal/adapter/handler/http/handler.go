package http

import (
	"errors"
	"net/http"

	"github.com/duka-eats/payflow/internal/core/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrBadRequest:      http.StatusBadRequest,
	domain.ErrUnauthenticated: http.StatusUnauthorized,

	domain.ErrValidation:         http.StatusUnprocessableEntity,
	domain.ErrGatewayUnavailable: http.StatusBadGateway,

	domain.ErrInvalidTransition:         http.StatusConflict,
	domain.ErrCollectionInFlight:        http.StatusConflict,
	domain.ErrTooManyConflicts:          http.StatusConflict,
	domain.ErrConflictingTerminalStatus: http.StatusConflict,
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// errorStatus resolves an error, possibly wrapped, to its HTTP status.
// Returns zero for errors outside the taxonomy.
func errorStatus(err error) int {
	for sentinel, code := range errorStatusMap {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return 0
}

// handleValidationError sends an error response for some specific request validation error
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	ctx.Status(http.StatusBadRequest)
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode := errorStatus(err)
	if statusCode == 0 {
		statusCode = http.StatusInternalServerError
		h.logger.Error("error processing request", zap.Error(err))
	}
	ctx.Status(statusCode)
}

// handleSuccess sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}

// handleAbort is the middleware flavor: no handler instance in scope.
func handleAbort(ctx *gin.Context, err error) {
	statusCode := errorStatus(err)
	if statusCode == 0 {
		statusCode = http.StatusInternalServerError
	}
	_ = ctx.AbortWithError(statusCode, err)
}
