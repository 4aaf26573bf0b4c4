package routes

import (
	"github.com/caregivers-platform/backend/controllers"
	"github.com/caregivers-platform/backend/reports"
	"github.com/caregivers-platform/backend/store"
	"github.com/gofiber/fiber/v2"
)

// SetupEntityRoutes registers the CRUD surface for every entity group.
func SetupEntityRoutes(app *fiber.App, s *store.Store) {
	userCtl := controllers.NewUserController(s)
	caregiverCtl := controllers.NewCaregiverController(s)
	memberCtl := controllers.NewMemberController(s)
	jobCtl := controllers.NewJobController(s)
	applicationCtl := controllers.NewApplicationController(s)
	appointmentCtl := controllers.NewAppointmentController(s)

	users := app.Group("/users")
	users.Get("/", userCtl.List)
	users.Post("/", userCtl.Create)
	users.Get("/:id", userCtl.Get)
	users.Patch("/:id", userCtl.Update)
	users.Delete("/:id", userCtl.Delete)
	users.Post("/:id/caregiver", caregiverCtl.AddRole)
	users.Post("/:id/member", memberCtl.AddRole)

	caregivers := app.Group("/caregivers")
	caregivers.Get("/", caregiverCtl.List)
	caregivers.Post("/", caregiverCtl.Create)
	caregivers.Post("/commission", caregiverCtl.ApplyCommission)
	caregivers.Get("/:id", caregiverCtl.Get)
	caregivers.Patch("/:id", caregiverCtl.Update)
	caregivers.Delete("/:id", caregiverCtl.Delete)

	members := app.Group("/members")
	members.Get("/", memberCtl.List)
	members.Post("/", memberCtl.Create)
	members.Get("/:id", memberCtl.Get)
	members.Patch("/:id", memberCtl.Update)
	members.Delete("/:id", memberCtl.Delete)

	jobs := app.Group("/jobs")
	jobs.Get("/", jobCtl.List)
	jobs.Post("/", jobCtl.Create)
	jobs.Get("/:id", jobCtl.Get)
	jobs.Patch("/:id", jobCtl.Update)
	jobs.Delete("/:id", jobCtl.Delete)

	applications := app.Group("/applications")
	applications.Get("/", applicationCtl.List)
	applications.Post("/", applicationCtl.Create)
	applications.Get("/:caregiver_id/:job_id", applicationCtl.Get)
	applications.Patch("/:caregiver_id/:job_id", applicationCtl.Update)
	applications.Delete("/:caregiver_id/:job_id", applicationCtl.Delete)

	appointments := app.Group("/appointments")
	appointments.Get("/", appointmentCtl.List)
	appointments.Post("/", appointmentCtl.Create)
	appointments.Get("/:id", appointmentCtl.Get)
	appointments.Patch("/:id", appointmentCtl.Update)
	appointments.Delete("/:id", appointmentCtl.Delete)
}

// SetupReportRoutes registers the read-only reporting surface.
func SetupReportRoutes(app *fiber.App, r *reports.Reports) {
	ctl := controllers.NewReportController(r)

	group := app.Group("/reports")
	group.Get("/accepted-appointments", ctl.AcceptedAppointments)
	group.Get("/jobs", ctl.JobsMatchingRequirements)
	group.Get("/babysitter-hours", ctl.BabysitterWorkHours)
	group.Get("/elderly-care-members", ctl.MembersSeekingElderlyCare)
	group.Get("/job-application-counts", ctl.JobApplicationCounts)
	group.Get("/total-hours", ctl.TotalAcceptedWorkHours)
	group.Get("/average-pay", ctl.AverageAcceptedPay)
	group.Get("/above-average-earnings", ctl.AboveAverageEarnings)
	group.Get("/cost-line-items", ctl.AcceptedCostLineItems)
	group.Get("/job-applications-view", ctl.JobApplicationsView)
}
