package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/mujahidhofficial-oss/gamage-student-entrollment-system/internal/dto"
	"github.com/mujahidhofficial-oss/gamage-student-entrollment-system/internal/model"
	"github.com/mujahidhofficial-oss/gamage-student-entrollment-system/internal/repository"
)

// ── test helpers ──

func setupTestStudentService() (StudentService, *mockStudentRepo) {
	studentRepo := newMockStudentRepo()
	repo := &repository.Repository{Student: studentRepo}
	svc := NewStudentService(repo, zap.NewNop())
	return svc, studentRepo
}

func validCreateRequest() *dto.CreateStudentRequest {
	return &dto.CreateStudentRequest{
		Name:   "Ann Lee",
		Email:  "ann@x.com",
		Phone:  "1234567890",
		Course: "CS101",
		Status: "Enrolled",
	}
}

func strPtr(s string) *string { return &s }

// ── Create tests ──

func TestStudentService_Create_Success(t *testing.T) {
	svc, _ := setupTestStudentService()

	student, err := svc.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	if student.ID == "" {
		t.Error("expected an assigned id")
	}
	if student.Status != "Enrolled" {
		t.Errorf("expected status Enrolled, got %s", student.Status)
	}
	if student.CreatedAt.IsZero() || student.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestStudentService_Create_NormalizesEmail(t *testing.T) {
	svc, _ := setupTestStudentService()

	req := validCreateRequest()
	req.Email = "  Ann@X.COM "

	student, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	if student.Email != "ann@x.com" {
		t.Errorf("expected normalized email, got %q", student.Email)
	}
}

func TestStudentService_Create_DefaultsStatus(t *testing.T) {
	svc, _ := setupTestStudentService()

	req := validCreateRequest()
	req.Status = ""

	student, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	if student.Status != model.StatusPending {
		t.Errorf("expected default status Pending, got %s", student.Status)
	}
}

func TestStudentService_Create_ValidationFailure(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.CreateStudentRequest)
		want   string
	}{
		{"blank name", func(r *dto.CreateStudentRequest) { r.Name = "  " }, "Name is required"},
		{"short name", func(r *dto.CreateStudentRequest) { r.Name = "A" }, "Name must be at least 2 characters"},
		{"bad email", func(r *dto.CreateStudentRequest) { r.Email = "annx.com" }, "Please enter a valid email"},
		{"short phone", func(r *dto.CreateStudentRequest) { r.Phone = "12345" }, "Phone must be exactly 10 digits"},
		{"blank course", func(r *dto.CreateStudentRequest) { r.Course = "" }, "Course is required"},
		{"bad status", func(r *dto.CreateStudentRequest) { r.Status = "Dropped" }, "Status must be one of Pending, Enrolled, Completed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, studentRepo := setupTestStudentService()
			req := validCreateRequest()
			tc.mutate(req)

			_, err := svc.Create(context.Background(), req)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Message != tc.want {
				t.Errorf("expected message %q, got %q", tc.want, vErr.Message)
			}
			if len(studentRepo.students) != 0 {
				t.Error("no record should be persisted on validation failure")
			}
		})
	}
}

func TestStudentService_Create_StoreFailure(t *testing.T) {
	svc, studentRepo := setupTestStudentService()
	studentRepo.createErr = errors.New("connection reset")

	_, err := svc.Create(context.Background(), validCreateRequest())
	if err == nil {
		t.Fatal("expected store error to surface")
	}
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		t.Error("store failure must not be a ValidationError")
	}
}

// ── List tests ──

func TestStudentService_List_MostRecentFirst(t *testing.T) {
	svc, _ := setupTestStudentService()

	first, _ := svc.Create(context.Background(), validCreateRequest())
	second, err := svc.Create(context.Background(), &dto.CreateStudentRequest{
		Name: "Ben Ray", Email: "ben@x.com", Phone: "0987654321", Course: "EE202",
	})
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}

	students, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List should succeed: %v", err)
	}
	if len(students) != 2 {
		t.Fatalf("expected 2 records, got %d", len(students))
	}
	if students[0].ID != second.ID {
		t.Errorf("expected most recent record first, got %s", students[0].ID)
	}
	if students[1].ID != first.ID {
		t.Errorf("expected oldest record last, got %s", students[1].ID)
	}
}

// ── Update tests ──

func TestStudentService_Update_PartialFields(t *testing.T) {
	svc, _ := setupTestStudentService()
	created, _ := svc.Create(context.Background(), validCreateRequest())

	updated, err := svc.Update(context.Background(), created.ID, &dto.UpdateStudentRequest{
		Status: strPtr("Completed"),
	})
	if err != nil {
		t.Fatalf("Update should succeed: %v", err)
	}
	if updated.Status != "Completed" {
		t.Errorf("expected status Completed, got %s", updated.Status)
	}
	if updated.Name != created.Name || updated.Email != created.Email {
		t.Error("untouched fields must keep their values")
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Error("expected updatedAt to advance")
	}
}

func TestStudentService_Update_NotFound(t *testing.T) {
	svc, studentRepo := setupTestStudentService()
	svc.Create(context.Background(), validCreateRequest())
	before := len(studentRepo.students)

	_, err := svc.Update(context.Background(), "000", &dto.UpdateStudentRequest{
		Status: strPtr("Completed"),
	})
	if !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("expected ErrStudentNotFound, got %v", err)
	}
	if len(studentRepo.students) != before {
		t.Error("store must be unchanged after a missed update")
	}
}

func TestStudentService_Update_RevalidatesMergedRecord(t *testing.T) {
	svc, studentRepo := setupTestStudentService()
	created, _ := svc.Create(context.Background(), validCreateRequest())

	_, err := svc.Update(context.Background(), created.ID, &dto.UpdateStudentRequest{
		Phone: strPtr("12345"),
	})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if studentRepo.students[created.ID].Phone != "1234567890" {
		t.Error("stored record must be unchanged after a failed update")
	}
}

// ── Delete tests ──

func TestStudentService_Delete_Success(t *testing.T) {
	svc, studentRepo := setupTestStudentService()
	created, _ := svc.Create(context.Background(), validCreateRequest())

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete should succeed: %v", err)
	}
	if len(studentRepo.students) != 0 {
		t.Error("record should be removed")
	}
}

func TestStudentService_Delete_SecondCallNotFound(t *testing.T) {
	svc, _ := setupTestStudentService()
	created, _ := svc.Create(context.Background(), validCreateRequest())

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("first Delete should succeed: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("second Delete should report ErrStudentNotFound, got %v", err)
	}
}
