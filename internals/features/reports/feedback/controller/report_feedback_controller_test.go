package controller

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"luctreports_backend/internals/constants"
	classModel "luctreports_backend/internals/features/academics/class/model"
	courseModel "luctreports_backend/internals/features/academics/course/model"
	facultyModel "luctreports_backend/internals/features/academics/faculty/model"
	feedbackModel "luctreports_backend/internals/features/reports/feedback/model"
	reportModel "luctreports_backend/internals/features/reports/report/model"
	"luctreports_backend/internals/testutils"
)

func newFeedbackApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctl := NewReportFeedbackController(db)
	feedbacks := app.Group("/api/reportFeedbacks")
	feedbacks.Get("/", ctl.GetAll)
	feedbacks.Get("/report/:reportId", ctl.GetByReport)
	feedbacks.Get("/:id", ctl.GetByID)
	feedbacks.Post("/:reportId", ctl.Create)
	feedbacks.Put("/:id", ctl.Update)
	feedbacks.Delete("/:id", ctl.Delete)
	return app
}

func seedReport(t *testing.T, db *gorm.DB) reportModel.ReportModel {
	t.Helper()
	faculty := facultyModel.FacultyModel{Name: "ICT"}
	require.NoError(t, db.Create(&faculty).Error)
	course := courseModel.CourseModel{Name: "Databases", Code: "DB101", FacultyID: faculty.ID}
	require.NoError(t, db.Create(&course).Error)
	lecturer := testutils.CreateUser(t, db, "thabo", constants.RoleLecturer)
	class := classModel.ClassModel{
		Name: "DB101-A", Year: 2024, Semester: classModel.Semester1,
		CourseID: course.ID, LecturerID: lecturer.ID,
	}
	require.NoError(t, db.Create(&class).Error)

	date, _ := time.Parse("2006-01-02", "2024-03-11")
	report := reportModel.ReportModel{
		FacultyID: faculty.ID, ClassID: class.ID, CourseID: course.ID, LecturerID: lecturer.ID,
		WeekOfReporting: 6, DateOfLecture: datatypes.Date(date),
		ActualStudentsPresent: 38, TotalRegisteredStudents: 45,
		Venue: "Hall 3", ScheduledTime: "10:00 - 12:00",
		TopicTaught: "Normalization", LearningOutcomes: "Students can normalize to 3NF",
	}
	require.NoError(t, db.Create(&report).Error)
	return report
}

func TestCreateFeedback(t *testing.T) {
	db := testutils.SetupDB(t)
	app := newFeedbackApp(db)
	report := seedReport(t, db)
	reader := testutils.CreateUser(t, db, "palesa", constants.RolePrincipalLecturer)

	resp, body := testutils.DoJSON(t, app, http.MethodPost, "/api/reportFeedbacks/1", map[string]interface{}{
		"rating":  4,
		"comment": "Solid coverage of the topic",
		"userId":  reader.ID,
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	feedback := body["feedback"].(map[string]interface{})
	assert.Equal(t, float64(report.ID), feedback["reportId"])
	assert.Equal(t, float64(4), feedback["rating"])
	assert.Equal(t, "Solid coverage of the topic", feedback["comment"])
}

func TestCreateFeedback_MissingRating(t *testing.T) {
	db := testutils.SetupDB(t)
	app := newFeedbackApp(db)
	seedReport(t, db)
	reader := testutils.CreateUser(t, db, "palesa", constants.RolePrincipalLecturer)

	resp, body := testutils.DoJSON(t, app, http.MethodPost, "/api/reportFeedbacks/1",
		map[string]interface{}{"userId": reader.ID}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Rating and userId are required", body["message"])

	var count int64
	db.Model(&feedbackModel.ReportFeedbackModel{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateFeedback_RatingOutOfRange(t *testing.T) {
	db := testutils.SetupDB(t)
	app := newFeedbackApp(db)
	seedReport(t, db)
	reader := testutils.CreateUser(t, db, "palesa", constants.RolePrincipalLecturer)

	resp, _ := testutils.DoJSON(t, app, http.MethodPost, "/api/reportFeedbacks/1",
		map[string]interface{}{"rating": 6, "userId": reader.ID}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateFeedback_ReportNotFound(t *testing.T) {
	db := testutils.SetupDB(t)
	app := newFeedbackApp(db)
	reader := testutils.CreateUser(t, db, "palesa", constants.RolePrincipalLecturer)

	resp, body := testutils.DoJSON(t, app, http.MethodPost, "/api/reportFeedbacks/42",
		map[string]interface{}{"rating": 4, "userId": reader.ID}, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Report not found", body["message"])
}

func TestCreateFeedback_DuplicatePair(t *testing.T) {
	db := testutils.SetupDB(t)
	app := newFeedbackApp(db)
	seedReport(t, db)
	reader := testutils.CreateUser(t, db, "palesa", constants.RolePrincipalLecturer)
	other := testutils.CreateUser(t, db, "neo", constants.RoleProgramLeader)

	payload := map[string]interface{}{"rating": 4, "userId": reader.ID}
	resp, _ := testutils.DoJSON(t, app, http.MethodPost, "/api/reportFeedbacks/1", payload, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := testutils.DoJSON(t, app, http.MethodPost, "/api/reportFeedbacks/1", payload, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Feedback for this report already exists for this user", body["message"])

	// a different user may still review the same report
	resp, _ = testutils.DoJSON(t, app, http.MethodPost, "/api/reportFeedbacks/1",
		map[string]interface{}{"rating": 5, "userId": other.ID}, "")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestGetFeedbackByReport(t *testing.T) {
	db := testutils.SetupDB(t)
	app := newFeedbackApp(db)
	report := seedReport(t, db)
	reader := testutils.CreateUser(t, db, "palesa", constants.RolePrincipalLecturer)

	feedback := feedbackModel.ReportFeedbackModel{ReportID: report.ID, UserID: reader.ID, Rating: 3}
	require.NoError(t, db.Create(&feedback).Error)

	resp, body := testutils.DoJSON(t, app, http.MethodGet, "/api/reportFeedbacks/report/1", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	feedbacks := body["feedbacks"].([]interface{})
	require.Len(t, feedbacks, 1)
	first := feedbacks[0].(map[string]interface{})
	assert.Equal(t, float64(3), first["rating"])
	assert.Equal(t, "palesa", first["user"].(map[string]interface{})["username"])
}

func TestUpdateFeedback(t *testing.T) {
	db := testutils.SetupDB(t)
	app := newFeedbackApp(db)
	report := seedReport(t, db)
	reader := testutils.CreateUser(t, db, "palesa", constants.RolePrincipalLecturer)

	feedback := feedbackModel.ReportFeedbackModel{ReportID: report.ID, UserID: reader.ID, Rating: 3}
	require.NoError(t, db.Create(&feedback).Error)

	resp, body := testutils.DoJSON(t, app, http.MethodPut, "/api/reportFeedbacks/1",
		map[string]interface{}{"rating": 5}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(5), body["feedback"].(map[string]interface{})["rating"])
}

func TestDeleteFeedback(t *testing.T) {
	db := testutils.SetupDB(t)
	app := newFeedbackApp(db)
	report := seedReport(t, db)
	reader := testutils.CreateUser(t, db, "palesa", constants.RolePrincipalLecturer)

	feedback := feedbackModel.ReportFeedbackModel{ReportID: report.ID, UserID: reader.ID, Rating: 3}
	require.NoError(t, db.Create(&feedback).Error)

	resp, body := testutils.DoJSON(t, app, http.MethodDelete, "/api/reportFeedbacks/1", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Feedback deleted successfully", body["message"])

	resp, _ = testutils.DoJSON(t, app, http.MethodGet, "/api/reportFeedbacks/1", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestReportDeleteCascadesToFeedback(t *testing.T) {
	db := testutils.SetupDB(t)
	report := seedReport(t, db)
	reader := testutils.CreateUser(t, db, "palesa", constants.RolePrincipalLecturer)

	feedback := feedbackModel.ReportFeedbackModel{ReportID: report.ID, UserID: reader.ID, Rating: 3}
	require.NoError(t, db.Create(&feedback).Error)

	require.NoError(t, db.Delete(&reportModel.ReportModel{}, report.ID).Error)

	var count int64
	db.Model(&feedbackModel.ReportFeedbackModel{}).Count(&count)
	assert.Zero(t, count, "deleting a report must remove its feedback")
}
