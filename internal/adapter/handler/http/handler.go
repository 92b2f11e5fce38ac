package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zumerkk/atlasderslik-sub000/internal/core/domain"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationType:   http.StatusUnauthorized,
	domain.ErrInvalidToken:               http.StatusUnauthorized,
	domain.ErrExpiredToken:               http.StatusUnauthorized,
	domain.ErrUnauthorized:               http.StatusUnauthorized,

	domain.ErrBadRequest:             http.StatusBadRequest,
	domain.ErrUserNotFound:           http.StatusUnprocessableEntity,
	domain.ErrPackageNotFound:        http.StatusUnprocessableEntity,
	domain.ErrPackageNotPurchasable:  http.StatusUnprocessableEntity,
	domain.ErrGatewayRejected:        http.StatusBadGateway,
	domain.ErrGatewayUnreachable:     http.StatusGatewayTimeout,
	domain.ErrOrderNotFound:          http.StatusNotFound,
	domain.ErrReconciliationConflict: http.StatusConflict,
}

type errorResponse struct {
	Message string `json:"message"`
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleValidationError answers a malformed request body.
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, errorResponse{Message: domain.ErrBadRequest.Error()})
}

// handleAbort is for middleware: respond and stop the chain.
func handleAbort(ctx *gin.Context, err error) {
	statusCode, ok := errorStatusMap[err]
	if !ok {
		statusCode = http.StatusInternalServerError
	}
	ctx.AbortWithStatusJSON(statusCode, errorResponse{Message: err.Error()})
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode := http.StatusInternalServerError
	message := domain.ErrInternal.Error()
	for sentinel, code := range errorStatusMap {
		if errors.Is(err, sentinel) {
			statusCode = code
			message = err.Error()
			break
		}
	}
	if statusCode == http.StatusInternalServerError {
		h.logger.Error("error processing request", zap.Error(err))
	}
	ctx.JSON(statusCode, errorResponse{Message: message})
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	ctx.JSON(http.StatusOK, data)
}
