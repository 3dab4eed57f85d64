package contact

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"puramente/internal/dto"
	apperrors "puramente/internal/errors"
)

type Sender interface {
	Send(ctx context.Context, req dto.ContactRequest) error
}

type Controller struct {
	sender Sender
	logger *zap.Logger
}

func NewController(sender Sender, logger *zap.Logger) *Controller {
	return &Controller{
		sender: sender,
		logger: logger,
	}
}

func (c *Controller) Send(w http.ResponseWriter, r *http.Request) {
	var req dto.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "request body must be valid JSON"})
		return
	}

	if err := validate(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "VALIDATION_ERROR",
			"message": ve.Message,
			"details": ve.Details,
		})
		return
	}

	if err := c.sender.Send(r.Context(), req); err != nil {
		c.logger.Error("sending contact mail", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to send emails"})
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]string{"message": "Emails sent successfully"})
}

func validate(req dto.ContactRequest) error {
	var details []apperrors.ValidationDetail

	if req.Name == "" {
		details = append(details, apperrors.ValidationDetail{Field: "name", Message: "name is required"})
	}
	if req.Email == "" {
		details = append(details, apperrors.ValidationDetail{Field: "email", Message: "email is required"})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("Missing required fields", details...)
	}

	return nil
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
