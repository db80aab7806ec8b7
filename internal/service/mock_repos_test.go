package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/mujahidhofficial-oss/gamage-student-entrollment-system/internal/model"
)

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	students map[string]*model.Student
	seq      int

	listErr   error
	createErr error
	updateErr error
	deleteErr error
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: make(map[string]*model.Student)}
}

func (m *mockStudentRepo) List(_ context.Context) ([]model.Student, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := make([]model.Student, 0, len(m.students))
	for _, s := range m.students {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id string) (*model.Student, error) {
	if s, ok := m.students[id]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.seq++
	if student.ID == "" {
		student.ID = fmt.Sprintf("stu-%03d", m.seq)
	}
	now := time.Now().Add(time.Duration(m.seq) * time.Millisecond)
	student.CreatedAt = now
	student.UpdatedAt = now
	copied := *student
	m.students[student.ID] = &copied
	return nil
}

func (m *mockStudentRepo) Update(_ context.Context, student *model.Student) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	student.UpdatedAt = time.Now().Add(time.Hour)
	copied := *student
	m.students[student.ID] = &copied
	return nil
}

func (m *mockStudentRepo) Delete(_ context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.students, id)
	return nil
}
