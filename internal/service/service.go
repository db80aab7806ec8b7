package service

import (
	"go.uber.org/zap"

	"github.com/mujahidhofficial-oss/gamage-student-entrollment-system/internal/repository"
)

// Service is the aggregate entry point for all services.
type Service struct {
	Student StudentService
	Export  ExportService
}

// NewService builds the service aggregate.
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{
		Student: NewStudentService(repo, logger),
		Export:  NewExportService(repo, logger),
	}
}
