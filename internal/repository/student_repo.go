package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/mujahidhofficial-oss/gamage-student-entrollment-system/internal/model"
)

// StudentRepository is the data access interface for student records.
// Lookup misses surface as gorm.ErrRecordNotFound; the service layer
// translates them into business errors.
type StudentRepository interface {
	// List returns every record, most recently created first.
	List(ctx context.Context) ([]model.Student, error)
	GetByID(ctx context.Context, id string) (*model.Student, error)
	Create(ctx context.Context, student *model.Student) error
	Update(ctx context.Context, student *model.Student) error
	Delete(ctx context.Context, id string) error
}

// studentRepo is the GORM implementation of StudentRepository.
type studentRepo struct {
	db *gorm.DB
}

// NewStudentRepo builds a StudentRepository over the given connection.
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) List(ctx context.Context) ([]model.Student, error) {
	var students []model.Student
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&students).Error
	return students, err
}

func (r *studentRepo) GetByID(ctx context.Context, id string) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepo) Update(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Save(student).Error
}

func (r *studentRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Student{}).Error
}
