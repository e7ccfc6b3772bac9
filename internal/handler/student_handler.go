package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kidanta/kidanta-center/internal/models"
	"github.com/kidanta/kidanta-center/internal/service"
)

// StudentHandler serves the roster pages.
type StudentHandler struct {
	students *service.StudentService
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(students *service.StudentService) *StudentHandler {
	return &StudentHandler{students: students}
}

// List renders the roster, optionally filtered by a name substring.
func (h *StudentHandler) List(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	students, err := h.students.List(c.Request.Context(), models.StudentFilter{Search: q})
	if err != nil {
		renderError(c, err)
		return
	}
	render(c, http.StatusOK, "students.html", gin.H{"Students": students, "Query": q})
}

// ShowNew renders an empty student form.
func (h *StudentHandler) ShowNew(c *gin.Context) {
	render(c, http.StatusOK, "student_form.html", gin.H{"Student": nil})
}

// Create handles the new-student form submission.
func (h *StudentHandler) Create(c *gin.Context) {
	req := parseStudentForm(c)
	if _, err := h.students.Create(c.Request.Context(), req, currentUserID(c)); err != nil {
		if isValidationErr(err) {
			redirectWithFlash(c, "/students/new", models.FlashDanger, flashMessage(err))
			return
		}
		renderError(c, err)
		return
	}
	redirectWithFlash(c, "/students", models.FlashSuccess, "student saved")
}

// ShowEdit renders the edit form for one student.
func (h *StudentHandler) ShowEdit(c *gin.Context) {
	student, err := h.students.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}
	render(c, http.StatusOK, "student_form.html", gin.H{"Student": student})
}

// Update handles the edit form submission.
func (h *StudentHandler) Update(c *gin.Context) {
	id := c.Param("id")
	req := parseStudentForm(c)
	if _, err := h.students.Update(c.Request.Context(), id, req); err != nil {
		if isValidationErr(err) {
			redirectWithFlash(c, "/students/"+id+"/edit", models.FlashDanger, flashMessage(err))
			return
		}
		renderError(c, err)
		return
	}
	redirectWithFlash(c, "/students", models.FlashSuccess, "student updated")
}

// Delete removes a student. Admin-only; wired behind RequireRoles.
func (h *StudentHandler) Delete(c *gin.Context) {
	if err := h.students.Delete(c.Request.Context(), c.Param("id")); err != nil {
		renderError(c, err)
		return
	}
	redirectWithFlash(c, "/students", models.FlashInfo, "student deleted")
}

// Detail renders a student with recent logs and recommended activities.
func (h *StudentHandler) Detail(c *gin.Context) {
	detail, err := h.students.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}
	render(c, http.StatusOK, "student_detail.html", gin.H{"Detail": detail})
}

// Print renders the print-formatted profile. Same data as Detail, different
// page; deliberately plain HTML, no PDF.
func (h *StudentHandler) Print(c *gin.Context) {
	detail, err := h.students.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}
	render(c, http.StatusOK, "print_student.html", gin.H{"Detail": detail})
}

func parseStudentForm(c *gin.Context) service.StudentRequest {
	age, _ := strconv.Atoi(strings.TrimSpace(c.PostForm("age")))
	return service.StudentRequest{
		FullName: strings.TrimSpace(c.PostForm("full_name")),
		Age:      age,
		Gender:   c.PostForm("gender"),
		Notes:    c.PostForm("notes"),
	}
}
