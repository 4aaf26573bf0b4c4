package controllers

import (
	"github.com/caregivers-platform/backend/apperr"
	"github.com/caregivers-platform/backend/reports"
	"github.com/caregivers-platform/backend/utils"
	"github.com/gofiber/fiber/v2"
)

var errMissingContains = apperr.Validationf("the contains query parameter is required")

type ReportController struct {
	reports *reports.Reports
}

func NewReportController(r *reports.Reports) *ReportController {
	return &ReportController{reports: r}
}

// AcceptedAppointments lists accepted appointments with both display names.
func (ctl *ReportController) AcceptedAppointments(c *fiber.Ctx) error {
	rows, err := ctl.reports.AcceptedAppointments()
	if err != nil {
		return fail(c, "Failed to fetch accepted appointments", err)
	}
	return c.JSON(rows)
}

// JobsMatchingRequirements filters jobs by a case-sensitive fragment of
// their other_requirements, e.g. /reports/jobs?contains=soft-spoken.
func (ctl *ReportController) JobsMatchingRequirements(c *fiber.Ctx) error {
	fragment := c.Query("contains")
	if fragment == "" {
		return badRequest(c, "Missing query parameter", errMissingContains)
	}
	jobs, err := ctl.reports.JobsMatchingRequirements(fragment)
	if err != nil {
		return fail(c, "Failed to search jobs", err)
	}
	return c.JSON(jobs)
}

// BabysitterWorkHours lists work hours of all babysitter appointments.
func (ctl *ReportController) BabysitterWorkHours(c *fiber.Ctx) error {
	hours, err := ctl.reports.BabysitterWorkHours()
	if err != nil {
		return fail(c, "Failed to fetch babysitter work hours", err)
	}
	return c.JSON(fiber.Map{"work_hours": hours})
}

// MembersSeekingElderlyCare runs the multi-condition member search. The city
// defaults to Astana; the house-rules fragment comes from ?rule=.
func (ctl *ReportController) MembersSeekingElderlyCare(c *fiber.Ctx) error {
	city := c.Query("city", "Astana")
	rule := c.Query("rule", "No pets.")
	members, err := ctl.reports.MembersSeekingElderlyCare(city, rule)
	if err != nil {
		return fail(c, "Failed to search members", err)
	}
	return c.JSON(members)
}

// JobApplicationCounts reports applicants per job with the poster's name.
func (ctl *ReportController) JobApplicationCounts(c *fiber.Ctx) error {
	rows, err := ctl.reports.JobApplicationCounts()
	if err != nil {
		return fail(c, "Failed to count job applications", err)
	}
	return c.JSON(rows)
}

// TotalAcceptedWorkHours reports the summed hours of accepted appointments.
func (ctl *ReportController) TotalAcceptedWorkHours(c *fiber.Ctx) error {
	total, err := ctl.reports.TotalAcceptedWorkHours()
	if err != nil {
		return fail(c, "Failed to sum work hours", err)
	}
	return c.JSON(fiber.Map{"total_hours": total.StringFixed(2)})
}

// AverageAcceptedPay reports the average rate x hours over accepted
// appointments, or "no data" when none exist.
func (ctl *ReportController) AverageAcceptedPay(c *fiber.Ctx) error {
	avg, ok, err := ctl.reports.AverageAcceptedPay()
	if err != nil {
		return fail(c, "Failed to compute average pay", err)
	}
	if !ok {
		return c.JSON(utils.MessageResponse{Message: "No accepted appointments found"})
	}
	return c.JSON(fiber.Map{"average_pay": avg.StringFixed(2)})
}

// AboveAverageEarnings lists caregivers earning strictly above the average,
// distinguishing an empty result from the absence of accepted appointments.
func (ctl *ReportController) AboveAverageEarnings(c *fiber.Ctx) error {
	report, err := ctl.reports.AboveAverageEarnings()
	if err != nil {
		return fail(c, "Failed to compute earnings", err)
	}
	if !report.HasAccepted {
		return c.JSON(utils.MessageResponse{Message: "No accepted appointments exist"})
	}
	if len(report.AboveAverage) == 0 {
		return c.JSON(utils.MessageResponse{Message: "No caregivers earn above average"})
	}
	type entry struct {
		CaregiverName string `json:"caregiver_name"`
		TotalEarnings string `json:"total_earnings"`
	}
	entries := make([]entry, 0, len(report.AboveAverage))
	for _, e := range report.AboveAverage {
		entries = append(entries, entry{
			CaregiverName: e.CaregiverName,
			TotalEarnings: e.TotalEarnings.StringFixed(2),
		})
	}
	return c.JSON(fiber.Map{
		"average":       report.Average.StringFixed(2),
		"above_average": entries,
	})
}

// AcceptedCostLineItems reports the derived cost per accepted appointment and
// the grand total, with an explicit message when none are found.
func (ctl *ReportController) AcceptedCostLineItems(c *fiber.Ctx) error {
	report, err := ctl.reports.AcceptedCostLineItems()
	if err != nil {
		return fail(c, "Failed to compute appointment costs", err)
	}
	if len(report.Items) == 0 {
		return c.JSON(fiber.Map{
			"message":     "No accepted appointments found",
			"grand_total": report.GrandTotal.StringFixed(2),
		})
	}
	return c.JSON(fiber.Map{
		"items":       report.Items,
		"grand_total": report.GrandTotal.StringFixed(2),
	})
}

// JobApplicationsView returns the standing application join, ordered by job
// then application date.
func (ctl *ReportController) JobApplicationsView(c *fiber.Ctx) error {
	rows, err := ctl.reports.JobApplicationsView()
	if err != nil {
		return fail(c, "Failed to query job applications view", err)
	}
	return c.JSON(rows)
}
