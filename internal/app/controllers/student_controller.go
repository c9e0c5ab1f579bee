package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/juko/registry/internal/app/models/dto"
	"github.com/juko/registry/internal/app/services"
	"github.com/juko/registry/internal/app/views"
	"github.com/juko/registry/internal/middleware"
)

// ExportFilename is the attachment name of the CSV download.
const ExportFilename = "Juko_University_Registry.csv"

// StudentController handles student record operations
type StudentController struct {
	studentService services.StudentRegistry
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentRegistry) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// ListStudents retrieves all student records
// @Summary List all students
// @Description Retrieves every student record, newest first
// @Tags students
// @Produce json
// @Success 200 {array} models.Student "Student records"
// @Failure 500 {object} dto.MessageResponse "Store unavailable"
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.ListStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// GetStudent retrieves a single student record
// @Summary Get student by ID
// @Description Retrieves a specific student record by its ID
// @Tags students
// @Produce json
// @Param id path string true "Student record ID"
// @Success 200 {object} models.Student "Student record"
// @Failure 404 {object} dto.MessageResponse "Student not found"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.studentService.GetStudent(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// CreateStudent creates a new student record
// @Summary Create a student
// @Description Validates, normalizes and persists a new student record
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.StudentInput true "Student fields"
// @Success 201 {object} models.Student "Created student record"
// @Failure 400 {object} dto.MessageResponse "Validation or uniqueness failure"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var input dto.StudentInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid request body"))
		return
	}

	student, err := c.studentService.CreateStudent(ctx, input)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, student)
}

// UpdateStudent replaces an existing student record
// @Summary Update a student
// @Description Validates the input and replaces all mutable fields of the record
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student record ID"
// @Param request body dto.StudentInput true "Replacement student fields"
// @Success 200 {object} models.Student "Updated student record"
// @Failure 400 {object} dto.MessageResponse "Validation or uniqueness failure"
// @Failure 404 {object} dto.MessageResponse "Student not found"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var input dto.StudentInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid request body"))
		return
	}

	student, err := c.studentService.UpdateStudent(ctx, ctx.Param("id"), input)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// DeleteStudent removes a student record
// @Summary Delete a student
// @Description Removes exactly one student record by its ID
// @Tags students
// @Produce json
// @Param id path string true "Student record ID"
// @Success 200 {object} dto.MessageResponse "Student deleted successfully"
// @Failure 404 {object} dto.MessageResponse "Student not found"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.DeleteStudent(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Student deleted successfully"))
}

// ExportStudents serializes the current registry view as CSV
// @Summary Export students as CSV
// @Description Serializes the filtered and sorted registry view, not the raw collection
// @Tags students
// @Produce text/csv
// @Param q query string false "Case-insensitive substring filter on name or student ID"
// @Param sortBy query string false "Sort key" Enums(name, gwa)
// @Param order query string false "Sort direction" Enums(asc, desc)
// @Success 200 {string} string "CSV document"
// @Failure 400 {object} dto.MessageResponse "Invalid sort parameters"
// @Failure 500 {object} dto.MessageResponse "Store unavailable"
// @Router /students/export [get]
func (c *StudentController) ExportStudents(ctx *gin.Context) {
	view, ok := viewFromQuery(ctx)
	if !ok {
		return
	}

	students, err := c.studentService.ListStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	csv := views.ExportCSV(view.Apply(students))

	ctx.Header("Content-Disposition", `attachment; filename="`+ExportFilename+`"`)
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}

// viewFromQuery builds the view state from the export query parameters,
// writing a 400 response itself when they are invalid.
func viewFromQuery(ctx *gin.Context) (views.ViewState, bool) {
	view := views.NewViewState().WithSearch(ctx.Query("q"))

	switch key := ctx.Query("sortBy"); key {
	case "":
	case string(views.SortName), string(views.SortGwa):
		view.SortKey = views.SortKey(key)
	default:
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("sortBy must be one of: name, gwa"))
		return views.ViewState{}, false
	}

	switch order := ctx.Query("order"); order {
	case "", string(views.Ascending):
	case string(views.Descending):
		view.SortDir = views.Descending
	default:
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("order must be one of: asc, desc"))
		return views.ViewState{}, false
	}

	return view, true
}
