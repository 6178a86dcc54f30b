package commons

import (
	"encoding/json"
	"net/http"
	"time"

	"storefront/internal/dto"
	apperrors "storefront/internal/errors"

	"go.uber.org/zap"
)

func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func WriteValidationError(w http.ResponseWriter, message string, logger *zap.Logger, details ...apperrors.ValidationDetail) {
	WriteJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	}, logger)
}

// WriteError maps an application error to its HTTP status and writes it.
func WriteError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	// InvoiceGenerationError wraps its cause, so it must be matched before
	// any error type the cause could carry.
	if _, ok := apperrors.IsInvoiceGenerationError(err); ok {
		logger.Error("invoice generation failed", zap.Error(err))
		writeErrorResponse(w, traceID, http.StatusBadGateway, "INVOICE_GENERATION_FAILED", "payment approved but invoice could not be generated", logger)
		return
	}

	if ve, ok := apperrors.IsValidationError(err); ok {
		WriteValidationError(w, ve.Message, logger, ve.Details...)
		return
	}

	status, code, message := http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred"

	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		status, code, message = http.StatusNotFound, "NOT_FOUND", nfe.Message
	} else if ose, ok := apperrors.IsOutOfStockError(err); ok {
		status, code, message = http.StatusUnprocessableEntity, "OUT_OF_STOCK", ose.Error()
	} else if ce, ok := apperrors.IsConflictError(err); ok {
		status, code, message = http.StatusConflict, "CONFLICT", ce.Message
	} else {
		logger.Error("unexpected error", zap.Error(err))
	}

	writeErrorResponse(w, traceID, status, code, message, logger)
}

func writeErrorResponse(w http.ResponseWriter, traceID string, status int, code, message string, logger *zap.Logger) {
	WriteJSON(w, status, dto.ErrorResponse{
		TraceID:   traceID,
		Status:    status,
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}, logger)
}
