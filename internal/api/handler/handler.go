package handler

import "github.com/mujahidhofficial-oss/gamage-student-entrollment-system/internal/service"

// Handler is the aggregate entry point for all handlers.
type Handler struct {
	Student *StudentHandler
}

// NewHandler builds the handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Student: NewStudentHandler(svc.Student, svc.Export),
	}
}
