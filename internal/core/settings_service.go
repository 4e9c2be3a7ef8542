package core

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"genesis-backend-go/internal/db"
	"genesis-backend-go/internal/models"
)

// settingsService implements the SettingsService interface.
type settingsService struct {
	settingsRepo db.SettingsRepository
	auditService AuditService
	logger       *zap.Logger
	now          func() time.Time
}

// NewSettingsService creates a new SettingsService instance.
func NewSettingsService(settingsRepo db.SettingsRepository, auditService AuditService, logger *zap.Logger) SettingsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &settingsService{
		settingsRepo: settingsRepo,
		auditService: auditService,
		logger:       logger,
		now:          time.Now,
	}
}

// ToggleRoot flips the process-wide root access flag. Admin only.
func (s *settingsService) ToggleRoot(ctx context.Context, identity *models.Identity, enabled bool) error {
	if err := RequireAdmin(identity); err != nil {
		return err
	}

	if err := s.settingsRepo.SetRootEnabled(ctx, enabled, identity.UID, s.now().UTC()); err != nil {
		return fmt.Errorf("failed to toggle root access: %w", err)
	}

	s.logger.Warn("Root access setting changed",
		zap.Bool("enabled", enabled), zap.String("admin", identity.UID))

	if s.auditService != nil {
		auditLogEntry := models.AuditLog{
			UserID:   identity.UID,
			Action:   "ROOT_TOGGLE",
			TargetID: "settings/root",
			Details:  map[string]interface{}{"enabled": enabled},
		}
		if auditErr := s.auditService.CreateAuditLog(ctx, auditLogEntry); auditErr != nil {
			s.logger.Warn("Failed to create audit log for ROOT_TOGGLE", zap.Error(auditErr))
		}
	}

	return nil
}
