package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"genesis-backend-go/internal/db"
	"genesis-backend-go/internal/models"
)

// ErrEmptyMessage is returned when a message submission has no content.
var ErrEmptyMessage = errors.New("message cannot be empty")

// messageService implements the MessageService interface.
type messageService struct {
	messageRepo db.MessageRepository
	logger      *zap.Logger
	now         func() time.Time
}

// NewMessageService creates a new MessageService instance.
func NewMessageService(messageRepo db.MessageRepository, logger *zap.Logger) MessageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &messageService{
		messageRepo: messageRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// SendMessage validates and stores a message. The sender and timestamp
// always come from the authenticated context and the server clock; any
// client-supplied values are discarded.
func (s *messageService) SendMessage(ctx context.Context, userID string, req models.MessageRequest) (*models.Message, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, ErrEmptyMessage
	}

	message := &models.Message{
		Message:   req.Message,
		UserID:    userID,
		Timestamp: s.now().UnixMilli(),
		Status:    "sent",
	}

	created, err := s.messageRepo.Create(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("failed to store message for user '%s': %w", userID, err)
	}

	s.logger.Info("Message sent", zap.String("uid", userID), zap.String("messageId", created.ID))
	return created, nil
}
