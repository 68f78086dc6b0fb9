package controller

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"luctreports_backend/internals/constants"
	classModel "luctreports_backend/internals/features/academics/class/model"
	courseModel "luctreports_backend/internals/features/academics/course/model"
	facultyModel "luctreports_backend/internals/features/academics/faculty/model"
	"luctreports_backend/internals/testutils"
)

func newClassApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctl := NewClassController(db)
	classes := app.Group("/api/classes")
	classes.Get("/", ctl.GetAll)
	classes.Get("/:id", ctl.GetByID)
	classes.Post("/", ctl.Create)
	classes.Put("/:id", ctl.Update)
	classes.Delete("/:id", ctl.Delete)
	return app
}

func seedCourse(t *testing.T, db *gorm.DB) courseModel.CourseModel {
	t.Helper()
	faculty := facultyModel.FacultyModel{Name: "ICT"}
	require.NoError(t, db.Create(&faculty).Error)
	course := courseModel.CourseModel{Name: "Databases", Code: "DB101", FacultyID: faculty.ID}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func TestCreateClass_CountsStudents(t *testing.T) {
	db := testutils.SetupDB(t)
	app := newClassApp(db)
	course := seedCourse(t, db)
	lecturer := testutils.CreateUser(t, db, "thabo", constants.RoleLecturer)
	testutils.CreateUser(t, db, "stud1", constants.RoleStudent)
	testutils.CreateUser(t, db, "stud2", constants.RoleStudent)
	testutils.CreateUser(t, db, "stud3", constants.RoleStudent)

	resp, body := testutils.DoJSON(t, app, http.MethodPost, "/api/classes", map[string]interface{}{
		"name":       "DB101-A",
		"year":       2024,
		"semester":   "1",
		"courseId":   course.ID,
		"lecturerId": lecturer.ID,
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	class := body["class"].(map[string]interface{})
	assert.Equal(t, float64(3), class["totalRegisteredStudents"],
		"count is the global number of student users")
}

func TestCreateClass_InvalidSemester(t *testing.T) {
	db := testutils.SetupDB(t)
	app := newClassApp(db)
	course := seedCourse(t, db)
	lecturer := testutils.CreateUser(t, db, "thabo", constants.RoleLecturer)

	resp, _ := testutils.DoJSON(t, app, http.MethodPost, "/api/classes", map[string]interface{}{
		"name":       "DB101-A",
		"year":       2024,
		"semester":   "3",
		"courseId":   course.ID,
		"lecturerId": lecturer.ID,
	}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var count int64
	db.Model(&classModel.ClassModel{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateClass_DanglingCourse(t *testing.T) {
	db := testutils.SetupDB(t)
	app := newClassApp(db)
	lecturer := testutils.CreateUser(t, db, "thabo", constants.RoleLecturer)

	resp, body := testutils.DoJSON(t, app, http.MethodPost, "/api/classes", map[string]interface{}{
		"name":       "DB101-A",
		"year":       2024,
		"semester":   "1",
		"courseId":   42,
		"lecturerId": lecturer.ID,
	}, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Course not found", body["message"])
}

func TestCreateClass_LecturerRoleEnforced(t *testing.T) {
	db := testutils.SetupDB(t)
	app := newClassApp(db)
	course := seedCourse(t, db)
	student := testutils.CreateUser(t, db, "sam", constants.RoleStudent)

	resp, body := testutils.DoJSON(t, app, http.MethodPost, "/api/classes", map[string]interface{}{
		"name":       "DB101-A",
		"year":       2024,
		"semester":   "1",
		"courseId":   course.ID,
		"lecturerId": student.ID,
	}, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Lecturer not found or invalid role", body["message"])
}

func TestUpdateClass_RecomputesStudentCount(t *testing.T) {
	db := testutils.SetupDB(t)
	app := newClassApp(db)
	course := seedCourse(t, db)
	lecturer := testutils.CreateUser(t, db, "thabo", constants.RoleLecturer)

	resp, _ := testutils.DoJSON(t, app, http.MethodPost, "/api/classes", map[string]interface{}{
		"name":       "DB101-A",
		"year":       2024,
		"semester":   "1",
		"courseId":   course.ID,
		"lecturerId": lecturer.ID,
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// enrollment grows between create and update
	testutils.CreateUser(t, db, "stud1", constants.RoleStudent)

	resp, body := testutils.DoJSON(t, app, http.MethodPut, "/api/classes/1",
		map[string]interface{}{"venue": "Room 101"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	class := body["class"].(map[string]interface{})
	assert.Equal(t, float64(1), class["totalRegisteredStudents"])
	assert.Equal(t, "Room 101", class["venue"])
}

func TestDeleteClass(t *testing.T) {
	db := testutils.SetupDB(t)
	app := newClassApp(db)
	course := seedCourse(t, db)
	lecturer := testutils.CreateUser(t, db, "thabo", constants.RoleLecturer)

	class := classModel.ClassModel{
		Name: "DB101-A", Year: 2024, Semester: classModel.Semester1,
		CourseID: course.ID, LecturerID: lecturer.ID,
	}
	require.NoError(t, db.Create(&class).Error)

	resp, _ := testutils.DoJSON(t, app, http.MethodDelete, "/api/classes/1", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = testutils.DoJSON(t, app, http.MethodDelete, "/api/classes/1", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
