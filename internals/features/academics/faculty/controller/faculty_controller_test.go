package controller

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	courseModel "luctreports_backend/internals/features/academics/course/model"
	facultyModel "luctreports_backend/internals/features/academics/faculty/model"
	"luctreports_backend/internals/testutils"
)

func newFacultyApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctl := NewFacultyController(db)
	faculties := app.Group("/api/faculties")
	faculties.Get("/", ctl.GetAll)
	faculties.Get("/:id", ctl.GetByID)
	faculties.Post("/", ctl.Create)
	faculties.Put("/:id", ctl.Update)
	faculties.Delete("/:id", ctl.Delete)
	return app
}

func TestCreateFaculty(t *testing.T) {
	db := testutils.SetupDB(t)
	app := newFacultyApp(db)

	resp, body := testutils.DoJSON(t, app, http.MethodPost, "/api/faculties",
		map[string]interface{}{"name": "ICT"}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	assert.Equal(t, "success", body["status"])
	faculty := body["faculty"].(map[string]interface{})
	assert.Equal(t, "ICT", faculty["name"])
	assert.Equal(t, float64(1), faculty["id"])
}

func TestCreateFaculty_EmptyName(t *testing.T) {
	db := testutils.SetupDB(t)
	app := newFacultyApp(db)

	resp, body := testutils.DoJSON(t, app, http.MethodPost, "/api/faculties",
		map[string]interface{}{"name": ""}, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["message"], "required")

	var count int64
	db.Model(&facultyModel.FacultyModel{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateFaculty_Duplicate(t *testing.T) {
	db := testutils.SetupDB(t)
	app := newFacultyApp(db)

	resp, _ := testutils.DoJSON(t, app, http.MethodPost, "/api/faculties",
		map[string]interface{}{"name": "ICT"}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := testutils.DoJSON(t, app, http.MethodPost, "/api/faculties",
		map[string]interface{}{"name": "ICT"}, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Faculty already exists", body["message"])
}

func TestGetFaculty_NotFound(t *testing.T) {
	db := testutils.SetupDB(t)
	app := newFacultyApp(db)

	resp, body := testutils.DoJSON(t, app, http.MethodGet, "/api/faculties/99", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Faculty not found", body["message"])
}

func TestUpdateFaculty_PartialName(t *testing.T) {
	db := testutils.SetupDB(t)
	app := newFacultyApp(db)

	require.NoError(t, db.Create(&facultyModel.FacultyModel{Name: "ICT"}).Error)

	resp, body := testutils.DoJSON(t, app, http.MethodPut, "/api/faculties/1",
		map[string]interface{}{"name": "Business"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	faculty := body["faculty"].(map[string]interface{})
	assert.Equal(t, "Business", faculty["name"])
}

func TestDeleteFaculty_CascadesToCourses(t *testing.T) {
	db := testutils.SetupDB(t)
	app := newFacultyApp(db)

	faculty := facultyModel.FacultyModel{Name: "ICT"}
	require.NoError(t, db.Create(&faculty).Error)
	course := courseModel.CourseModel{Name: "Databases", Code: "DB101", FacultyID: faculty.ID}
	require.NoError(t, db.Create(&course).Error)

	resp, _ := testutils.DoJSON(t, app, http.MethodDelete, "/api/faculties/1", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	db.Model(&courseModel.CourseModel{}).Count(&count)
	assert.Zero(t, count, "deleting a faculty must remove its courses")
}

func TestGetFaculty_Idempotent(t *testing.T) {
	db := testutils.SetupDB(t)
	app := newFacultyApp(db)

	require.NoError(t, db.Create(&facultyModel.FacultyModel{Name: "ICT"}).Error)

	first := testutils.RawBody(t, app, "/api/faculties/1", "")
	second := testutils.RawBody(t, app, "/api/faculties/1", "")
	assert.Equal(t, first, second)
}
