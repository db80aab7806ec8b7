package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/mujahidhofficial-oss/gamage-student-entrollment-system/internal/repository"
)

// ── export module business errors ──

var (
	ErrExportNoStudents   = errors.New("no students to export")
	ErrExportGenerateFail = errors.New("failed to generate export file")
)

// ExportService renders the student roster as an Excel workbook.
// The buffer is returned to the handler, which sets the attachment
// headers and writes it to the response.
type ExportService interface {
	// ExportStudents returns the workbook bytes and a date-stamped
	// suggested filename (students_YYYY-MM-DD.xlsx).
	ExportStudents(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService builds an ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

var exportHeader = []string{"Name", "Email", "Phone", "Course", "Status"}

func (s *exportService) ExportStudents(ctx context.Context) (*bytes.Buffer, string, error) {
	students, err := s.repo.Student.List(ctx)
	if err != nil {
		s.logger.Error("list students for export failed", zap.Error(err))
		return nil, "", err
	}
	if len(students) == 0 {
		return nil, "", ErrExportNoStudents
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Students"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, "", ErrExportGenerateFail
		}
	}

	for row, st := range students {
		values := []string{st.Name, st.Email, st.Phone, st.Course, st.Status}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, "", ErrExportGenerateFail
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("write export workbook failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("students_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf, filename, nil
}
