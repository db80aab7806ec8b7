package repository

import "gorm.io/gorm"

// Repository is the aggregate entry point for all repositories.
type Repository struct {
	Student StudentRepository
}

// NewRepository builds the repository aggregate.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Student: NewStudentRepo(db),
	}
}
