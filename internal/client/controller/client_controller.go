package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"

	"storefront/internal/commons"
	"storefront/internal/domain"
	"storefront/internal/dto"
	apperrors "storefront/internal/errors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ClientFacade interface {
	Add(ctx context.Context, input dto.AddClientInput) (*domain.Client, error)
	Find(ctx context.Context, id string) (*domain.Client, error)
}

type Controller struct {
	facade ClientFacade
	logger *zap.Logger
}

func NewController(facade ClientFacade, logger *zap.Logger) *Controller {
	return &Controller{
		facade: facade,
		logger: logger,
	}
}

func (c *Controller) AddClient(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.AddClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		commons.WriteValidationError(w, "Invalid input format.", logger, apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if details := validateAddClientRequest(req); len(details) > 0 {
		commons.WriteValidationError(w, "Invalid input format.", logger, details...)
		return
	}

	client, err := c.facade.Add(r.Context(), dto.AddClientInput{
		ID:       req.ID,
		Name:     req.Name,
		Email:    req.Email,
		Document: req.Document,
		Address:  req.Address,
	})
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusCreated, map[string]string{
		"message":  "Client added successfully.",
		"clientId": client.ID.String(),
	}, logger)
}

func (c *Controller) FindClient(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	client, err := c.facade.Find(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			commons.WriteJSON(w, http.StatusNotFound, map[string]string{"message": "Client not found."}, logger)
			return
		}
		commons.WriteError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.ClientResponse{
		ID:       client.ID.String(),
		Name:     client.Name,
		Email:    client.Email,
		Document: client.Document,
		Address: dto.AddressDTO{
			Street:     client.Address.Street,
			Number:     client.Address.Number,
			Complement: client.Address.Complement,
			City:       client.Address.City,
			State:      client.Address.State,
			ZipCode:    client.Address.ZipCode,
		},
		CreatedAt: client.CreatedAt,
		UpdatedAt: client.UpdatedAt,
	}, logger)
}

func validateAddClientRequest(req dto.AddClientRequest) []apperrors.ValidationDetail {
	var details []apperrors.ValidationDetail

	required := []struct {
		field string
		value string
	}{
		{"name", req.Name},
		{"document", req.Document},
		{"address.street", req.Address.Street},
		{"address.number", req.Address.Number},
		{"address.city", req.Address.City},
		{"address.state", req.Address.State},
		{"address.zipCode", req.Address.ZipCode},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			details = append(details, apperrors.ValidationDetail{
				Field:   f.field,
				Message: f.field + " is required",
			})
		}
	}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		details = append(details, apperrors.ValidationDetail{
			Field:   "email",
			Message: "Invalid email format.",
		})
	}

	return details
}
