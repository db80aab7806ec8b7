package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mujahidhofficial-oss/gamage-student-entrollment-system/internal/dto"
	"github.com/mujahidhofficial-oss/gamage-student-entrollment-system/internal/model"
	"github.com/mujahidhofficial-oss/gamage-student-entrollment-system/internal/repository"
	"github.com/mujahidhofficial-oss/gamage-student-entrollment-system/internal/validation"
)

// ── student module business errors ──

// ErrStudentNotFound means the given id resolves to no record.
var ErrStudentNotFound = errors.New("student not found")

// ValidationError carries the first violated rule's message for a
// candidate field set. Maps to a 400 at the HTTP boundary.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// StudentService is the business interface over the student store.
type StudentService interface {
	List(ctx context.Context) ([]model.Student, error)
	Create(ctx context.Context, req *dto.CreateStudentRequest) (*model.Student, error)
	Update(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*model.Student, error)
	Delete(ctx context.Context, id string) error
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudentService builds a StudentService.
func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *studentService) List(ctx context.Context) ([]model.Student, error) {
	students, err := s.repo.Student.List(ctx)
	if err != nil {
		s.logger.Error("list students failed", zap.Error(err))
		return nil, err
	}
	return students, nil
}

// ────────────────────── Create ──────────────────────

func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*model.Student, error) {
	fields := validation.Normalize(validation.Fields{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Course: req.Course,
		Status: req.Status,
	})
	if msg := validation.CheckStrict(fields); msg != "" {
		return nil, &ValidationError{Message: msg}
	}

	student := &model.Student{
		Name:   fields.Name,
		Email:  fields.Email,
		Phone:  fields.Phone,
		Course: fields.Course,
		Status: fields.Status,
	}

	if err := s.repo.Student.Create(ctx, student); err != nil {
		s.logger.Error("create student failed", zap.Error(err))
		return nil, err
	}

	return student, nil
}

// ────────────────────── Update ──────────────────────

// Update merges the supplied fields into the stored record, re-validates
// the full result, and persists it. Last write wins on concurrent updates
// to the same record.
func (s *studentService) Update(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*model.Student, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("fetch student failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Email != nil {
		student.Email = *req.Email
	}
	if req.Phone != nil {
		student.Phone = *req.Phone
	}
	if req.Course != nil {
		student.Course = *req.Course
	}
	if req.Status != nil {
		student.Status = *req.Status
	}

	fields := validation.Normalize(validation.Fields{
		Name:   student.Name,
		Email:  student.Email,
		Phone:  student.Phone,
		Course: student.Course,
		Status: student.Status,
	})
	if msg := validation.CheckStrict(fields); msg != "" {
		return nil, &ValidationError{Message: msg}
	}
	student.Name = fields.Name
	student.Email = fields.Email
	student.Phone = fields.Phone
	student.Course = fields.Course
	student.Status = fields.Status

	if err := s.repo.Student.Update(ctx, student); err != nil {
		s.logger.Error("update student failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return student, nil
}

// ────────────────────── Delete ──────────────────────

func (s *studentService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Student.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		s.logger.Error("fetch student failed", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Student.Delete(ctx, id); err != nil {
		s.logger.Error("delete student failed", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}
