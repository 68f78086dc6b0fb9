package controller

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	reportModel "luctreports_backend/internals/features/reports/report/model"
	helper "luctreports_backend/internals/helpers"
)

// Export streams every report as an XLSX workbook. Server-side successor of
// the old client-side CSV export.
// GET /api/reports/export
func (ctl *ReportController) Export(c *fiber.Ctx) error {
	var reports []reportModel.ReportModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Faculty").
		Preload("Class").
		Preload("Course").
		Preload("Lecturer").
		Order("id asc").
		Find(&reports).Error; err != nil {
		return helper.JsonServerError(c, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Lecture Reports"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return helper.JsonServerError(c, err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{
		"ID", "Week", "Date of Lecture", "Faculty", "Course", "Class",
		"Lecturer", "Venue", "Scheduled Time", "Topic Taught",
		"Learning Outcomes", "Students Present", "Registered Students",
		"Recommendations",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, r := range reports {
		row := i + 2
		faculty, course, class, lecturer := "", "", "", ""
		if r.Faculty != nil {
			faculty = r.Faculty.Name
		}
		if r.Course != nil {
			course = r.Course.Name
		}
		if r.Class != nil {
			class = r.Class.Name
		}
		if r.Lecturer != nil {
			lecturer = r.Lecturer.Username
		}
		recommendations := ""
		if r.LecturerRecommendations != nil {
			recommendations = *r.LecturerRecommendations
		}

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), r.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.WeekOfReporting)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), time.Time(r.DateOfLecture).Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), faculty)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), course)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), class)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), lecturer)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), r.Venue)
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), r.ScheduledTime)
		f.SetCellValue(sheetName, fmt.Sprintf("J%d", row), r.TopicTaught)
		f.SetCellValue(sheetName, fmt.Sprintf("K%d", row), r.LearningOutcomes)
		f.SetCellValue(sheetName, fmt.Sprintf("L%d", row), r.ActualStudentsPresent)
		f.SetCellValue(sheetName, fmt.Sprintf("M%d", row), r.TotalRegisteredStudents)
		f.SetCellValue(sheetName, fmt.Sprintf("N%d", row), recommendations)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return helper.JsonServerError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="lecture_reports.xlsx"`)
	return c.Send(buf.Bytes())
}
