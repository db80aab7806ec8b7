package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/mujahidhofficial-oss/gamage-student-entrollment-system/internal/model"
	"github.com/mujahidhofficial-oss/gamage-student-entrollment-system/internal/validation"
)

// CourseFilterAll is the course-filter sentinel meaning no restriction.
const CourseFilterAll = "All"

// ConfirmFunc asks the user to confirm a destructive action. Returning
// false aborts it.
type ConfirmFunc func(prompt string) bool

// Stats are the derived counters shown in the sidebar. Others counts any
// status outside the enumerated three; schema enforcement keeps it at zero.
type Stats struct {
	Total     int
	Pending   int
	Enrolled  int
	Completed int
	Others    int
}

// Controller is the state container behind the dashboard: the last loaded
// snapshot, the filter/search/editing state, the form, and the last error.
// Derived views (Courses, Filtered, Stats) are pure functions of that
// state, recomputed on call, never cached.
//
// One controller serves one UI session; operations run to completion
// between user actions, so the type is not safe for concurrent use.
type Controller struct {
	api     *API
	confirm ConfirmFunc

	students     []model.Student
	loading      bool
	search       string
	courseFilter string
	editingID    string
	form         Form
	errMsg       string
}

// NewController builds a controller over the given API client. A nil
// confirm func approves every prompt (no confirmation surface attached).
func NewController(api *API, confirm ConfirmFunc) *Controller {
	if confirm == nil {
		confirm = func(string) bool { return true }
	}
	return &Controller{
		api:          api,
		confirm:      confirm,
		courseFilter: CourseFilterAll,
		form:         DefaultForm(),
	}
}

// ── state accessors ──

// Students returns the current snapshot.
func (c *Controller) Students() []model.Student { return c.students }

// Loading reports whether a list fetch is in flight.
func (c *Controller) Loading() bool { return c.loading }

// Err returns the last error message, empty when none.
func (c *Controller) Err() string { return c.errMsg }

// Search returns the free-text name search string.
func (c *Controller) Search() string { return c.search }

// SetSearch updates the name search string.
func (c *Controller) SetSearch(s string) { c.search = s }

// CourseFilter returns the active course filter.
func (c *Controller) CourseFilter() string { return c.courseFilter }

// SetCourseFilter updates the course filter.
func (c *Controller) SetCourseFilter(course string) { c.courseFilter = course }

// ResetFilters clears the search string and the course filter.
func (c *Controller) ResetFilters() {
	c.search = ""
	c.courseFilter = CourseFilterAll
}

// EditingID returns the id of the record being edited, empty when none.
func (c *Controller) EditingID() string { return c.editingID }

// Form returns the current form values.
func (c *Controller) Form() Form { return c.form }

// SetForm replaces the form values.
func (c *Controller) SetForm(f Form) { c.form = f }

// ── load ──

// Load fetches the full list and replaces the snapshot. On failure the
// previous snapshot stays in place and the error message is set. The
// loading flag clears when the fetch settles either way.
func (c *Controller) Load(ctx context.Context) {
	c.loading = true
	defer func() { c.loading = false }()

	students, err := c.api.ListStudents(ctx)
	if err != nil {
		if apiErr, ok := err.(*APIError); ok && apiErr.Message != "" {
			c.errMsg = apiErr.Message
		} else {
			c.errMsg = "Failed to load students"
		}
		return
	}
	c.students = students
}

// ── derived views ──

// Courses returns the distinct course values in the snapshot, in order of
// first appearance, prefixed with the show-all sentinel.
func (c *Controller) Courses() []string {
	courses := []string{CourseFilterAll}
	seen := make(map[string]bool)
	for _, s := range c.students {
		if s.Course == "" || seen[s.Course] {
			continue
		}
		seen[s.Course] = true
		courses = append(courses, s.Course)
	}
	return courses
}

// Filtered returns the records whose name contains the search string
// (case-insensitive) and whose course matches the filter. The snapshot is
// never mutated; order is preserved.
func (c *Controller) Filtered() []model.Student {
	needle := strings.ToLower(c.search)
	filtered := make([]model.Student, 0, len(c.students))
	for _, s := range c.students {
		if !strings.Contains(strings.ToLower(s.Name), needle) {
			continue
		}
		if c.courseFilter != CourseFilterAll && s.Course != c.courseFilter {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered
}

// StatsNow recomputes the status counters from the snapshot.
func (c *Controller) StatsNow() Stats {
	stats := Stats{Total: len(c.students)}
	for _, s := range c.students {
		switch strings.ToLower(s.Status) {
		case "pending":
			stats.Pending++
		case "enrolled":
			stats.Enrolled++
		case "completed":
			stats.Completed++
		default:
			stats.Others++
		}
	}
	return stats
}

// ── mutations ──

// Submit validates the form and creates or updates depending on whether an
// edit is in progress. On success the form resets and the list reloads; on
// service failure the form is left untouched so the user can retry.
func (c *Controller) Submit(ctx context.Context) {
	c.errMsg = ""

	if msg := validation.Check(validation.Fields{
		Name:   c.form.Name,
		Email:  c.form.Email,
		Phone:  c.form.Phone,
		Course: c.form.Course,
		Status: c.form.Status,
	}); msg != "" {
		c.errMsg = msg
		return
	}

	var err error
	if c.editingID != "" {
		_, err = c.api.UpdateStudent(ctx, c.editingID, c.form)
	} else {
		_, err = c.api.CreateStudent(ctx, c.form)
	}
	if err != nil {
		if apiErr, ok := err.(*APIError); ok {
			c.errMsg = apiErr.Error()
		} else {
			c.errMsg = "Save failed"
		}
		return
	}

	c.form = DefaultForm()
	c.editingID = ""
	c.Load(ctx)
}

// StartEdit marks the record as being edited and fills the form with its
// current values.
func (c *Controller) StartEdit(s model.Student) {
	c.editingID = s.ID
	status := s.Status
	if status == "" {
		status = model.StatusPending
	}
	c.form = Form{
		Name:   s.Name,
		Email:  s.Email,
		Phone:  s.Phone,
		Course: s.Course,
		Status: status,
	}
	c.errMsg = ""
}

// CancelEdit abandons the edit in progress and resets the form.
func (c *Controller) CancelEdit() {
	c.editingID = ""
	c.form = DefaultForm()
	c.errMsg = ""
}

// Remove deletes the record after user confirmation, then reloads the
// list. A declined prompt leaves everything untouched.
func (c *Controller) Remove(ctx context.Context, s model.Student) {
	name := s.Name
	if name == "" {
		name = "this student"
	}
	if !c.confirm(fmt.Sprintf("Delete %q?", name)) {
		return
	}

	if err := c.api.DeleteStudent(ctx, s.ID); err != nil {
		c.errMsg = "Delete failed"
		return
	}
	c.Load(ctx)
}
