package service

import (
	"errors"
	"strings"

	"github.com/sefazor/pricing-web/internal/models"
	"github.com/sefazor/pricing-web/pkg/utils"
	"go.uber.org/zap"
)

var ErrContactDelivery = errors.New("contact request could not be delivered")

// ValidationError lists what is wrong with a submitted form.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "invalid contact request: " + strings.Join(e.Messages, "; ")
}

type ContactNotifier interface {
	SendContactRequest(req models.ContactRequest) error
}

type ContactService struct {
	notifier  ContactNotifier
	validator *utils.Validator
	logger    *zap.Logger
}

func NewContactService(notifier ContactNotifier, validator *utils.Validator, logger *zap.Logger) *ContactService {
	return &ContactService{
		notifier:  notifier,
		validator: validator,
		logger:    logger.Named("contact"),
	}
}

func (s *ContactService) Submit(req models.ContactRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Company = strings.TrimSpace(req.Company)
	req.Message = strings.TrimSpace(req.Message)

	if err := s.validator.Struct(req); err != nil {
		return &ValidationError{Messages: utils.Messages(err)}
	}

	if err := s.notifier.SendContactRequest(req); err != nil {
		s.logger.Error("contact request delivery failed", zap.String("email", req.Email), zap.Error(err))
		return errors.Join(ErrContactDelivery, err)
	}
	return nil
}
