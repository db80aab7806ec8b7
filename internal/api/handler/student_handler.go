package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/mujahidhofficial-oss/gamage-student-entrollment-system/internal/dto"
	"github.com/mujahidhofficial-oss/gamage-student-entrollment-system/internal/service"
	"github.com/mujahidhofficial-oss/gamage-student-entrollment-system/pkg/response"
)

// StudentHandler exposes the student record endpoints.
type StudentHandler struct {
	studentSvc service.StudentService
	exportSvc  service.ExportService
}

// NewStudentHandler builds a StudentHandler.
func NewStudentHandler(studentSvc service.StudentService, exportSvc service.ExportService) *StudentHandler {
	return &StudentHandler{studentSvc: studentSvc, exportSvc: exportSvc}
}

// ListStudents returns every record, most recent first.
// GET /students
func (h *StudentHandler) ListStudents(c *gin.Context) {
	students, err := h.studentSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to fetch students", err.Error())
		return
	}

	response.OK(c, students)
}

// CreateStudent validates and persists a new record.
// POST /students
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, bindingErrorDetail(err))
		return
	}

	student, err := h.studentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleStudentError(c, err, "Failed to create student")
		return
	}

	response.Created(c, student)
}

// UpdateStudent merges the supplied fields into an existing record.
// PUT /students/:id
func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, bindingErrorDetail(err))
		return
	}

	student, err := h.studentSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleStudentError(c, err, "Failed to update student")
		return
	}

	response.OK(c, student)
}

// DeleteStudent removes a record permanently.
// DELETE /students/:id
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	id := c.Param("id")

	if err := h.studentSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleStudentError(c, err, "Failed to delete student")
		return
	}

	response.Confirmation(c, "Student deleted successfully")
}

// ExportStudents streams the roster as an Excel attachment.
// GET /students/export
func (h *StudentHandler) ExportStudents(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportStudents(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrExportNoStudents) {
			response.ErrorWithDetail(c, http.StatusNotFound, "No students to export", err.Error())
			return
		}
		response.InternalError(c, "Failed to export students", err.Error())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// handleStudentError maps business errors onto the response taxonomy.
func (h *StudentHandler) handleStudentError(c *gin.Context, err error, fallback string) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		response.ValidationFailed(c, vErr.Message)
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, "Student not found")
	default:
		response.InternalError(c, fallback, err.Error())
	}
}

// bindingErrorDetail turns a ShouldBindJSON failure into a readable detail
// string, unpacking validator field errors when present.
func bindingErrorDetail(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		parts := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			parts = append(parts, fmt.Sprintf("field %s failed on %s", fe.Field(), fe.Tag()))
		}
		return strings.Join(parts, "; ")
	}
	return err.Error()
}
