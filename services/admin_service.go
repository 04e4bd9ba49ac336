package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Dosada05/esports-admin/repositories"
)

type AdminService interface {
	// ResetDatabase wipes every table and reloads the seed dataset.
	ResetDatabase(ctx context.Context) error
	Ping(ctx context.Context) error
}

type adminService struct {
	adminRepo repositories.AdminRepository
	logger    *slog.Logger
}

func NewAdminService(adminRepo repositories.AdminRepository, logger *slog.Logger) AdminService {
	return &adminService{adminRepo: adminRepo, logger: logger}
}

func (s *adminService) ResetDatabase(ctx context.Context) error {
	if err := s.adminRepo.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset database: %w", err)
	}
	s.logger.WarnContext(ctx, "database reset to seed data")
	return nil
}

func (s *adminService) Ping(ctx context.Context) error {
	return s.adminRepo.Ping(ctx)
}
