package screenapi

import (
	"io"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/introlligent/screener/pkg/kernel"
	"github.com/introlligent/screener/screening/intake"
	"github.com/introlligent/screener/screening/intake/intakeapi"
	"github.com/introlligent/screener/screening/notify"
	"github.com/introlligent/screener/screening/profile"
	"github.com/introlligent/screener/screening/profile/profilesrv"
	"github.com/introlligent/screener/screening/project"
	"github.com/introlligent/screener/screening/project/projectsrv"
)

// ScreenHandlers wires the screening pipeline to HTTP: project CRUD,
// mailbox fetches, direct uploads, and decision emails.
type ScreenHandlers struct {
	projects  *projectsrv.Service
	screening *profilesrv.Service
	auth      *intakeapi.AuthHandlers
	source    intake.MessageSource
	tokens    intake.TokenStore
	filter    intake.FilterRules
	rules     profile.Rules
	mailer    notify.Sender
}

func NewScreenHandlers(
	projects *projectsrv.Service,
	screening *profilesrv.Service,
	auth *intakeapi.AuthHandlers,
	source intake.MessageSource,
	tokens intake.TokenStore,
	filter intake.FilterRules,
	rules profile.Rules,
	mailer notify.Sender,
) *ScreenHandlers {
	return &ScreenHandlers{
		projects:  projects,
		screening: screening,
		auth:      auth,
		source:    source,
		tokens:    tokens,
		filter:    filter,
		rules:     rules,
		mailer:    mailer,
	}
}

func (h *ScreenHandlers) RegisterRoutes(app *fiber.App) {
	app.Get("/projects", h.ListProjects)
	app.Post("/projects", h.CreateProject)
	app.Get("/projects/:id", h.GetProject)
	app.Delete("/projects/:id", h.DeleteProject)

	app.Post("/fetch_resumes", h.FetchResumes)
	app.Post("/upload_resume", h.UploadResume)
	app.Post("/projects/:id/upload_resume", h.UploadResumeToProject)
	app.Delete("/projects/:id/resumes/:resume_id", h.DeleteResume)

	app.Post("/send_email", h.SendEmail)
}

// ============================================================================
// Project CRUD
// ============================================================================

// ListProjects lists all projects.
// GET /projects?owner=...
func (h *ScreenHandlers) ListProjects(c *fiber.Ctx) error {
	projects, err := h.projects.ListProjects(c.Context(), c.Query("owner"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"projects": projects})
}

type createProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Owner       string `json:"owner"`
}

// CreateProject creates a new recruitment project.
// POST /projects
func (h *ScreenHandlers) CreateProject(c *fiber.Ctx) error {
	var req createProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	p, err := h.projects.CreateProject(c.Context(), req.Title, req.Description, req.Owner)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"project": p})
}

// GetProject retrieves a project by ID.
// GET /projects/:id
func (h *ScreenHandlers) GetProject(c *fiber.Ctx) error {
	id := kernel.ProjectID(c.Params("id"))
	if id.IsEmpty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid project ID",
		})
	}

	p, err := h.projects.GetProject(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"project": p})
}

// DeleteProject removes a project and its stored files.
// DELETE /projects/:id
func (h *ScreenHandlers) DeleteProject(c *fiber.Ctx) error {
	id := kernel.ProjectID(c.Params("id"))
	if id.IsEmpty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid project ID",
		})
	}

	if err := h.projects.DeleteProject(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// ============================================================================
// Resume Intake
// ============================================================================

type fetchResumesRequest struct {
	JobDescription string `json:"job_description"`
	JobRole        string `json:"job_role"`
	DaysFilter     int    `json:"days_filter"`
	ProjectID      string `json:"project_id"`
}

// FetchResumes pulls resume attachments from the connected mailbox and
// screens them against the job description.
// POST /fetch_resumes
func (h *ScreenHandlers) FetchResumes(c *fiber.Ctx) error {
	sessionID, err := h.auth.SessionID(c)
	if err != nil {
		return err
	}
	token, err := h.tokens.Get(c.Context(), sessionID)
	if err != nil {
		return err
	}

	var req fetchResumesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if req.DaysFilter <= 0 {
		req.DaysFilter = 30
	}

	messages, err := h.source.Fetch(c.Context(), token, intake.Query{
		After: time.Now().AddDate(0, 0, -req.DaysFilter),
		Term:  req.JobRole,
	})
	if err != nil {
		return err
	}

	resumes := h.filter.Select(messages)
	if len(resumes) == 0 {
		return c.JSON(fiber.Map{"message": "No new resumes found."})
	}

	projectID := kernel.ProjectID(req.ProjectID)
	records, err := h.screening.ScreenBatch(c.Context(), projectID, req.JobDescription, resumes)
	if err != nil {
		return err
	}

	resp := fiber.Map{"candidates": records}
	if !projectID.IsEmpty() && len(records) > 0 {
		p, err := h.projects.IngestRecords(c.Context(), projectID, records)
		if err != nil {
			return err
		}
		resp["project"] = p
	}
	return c.JSON(resp)
}

// UploadResume screens a single uploaded PDF without a project.
// POST /upload_resume
func (h *ScreenHandlers) UploadResume(c *fiber.Ctx) error {
	rec, err := h.screenUpload(c, "", c.FormValue("job_description"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"candidates": []project.CandidateRecord{rec},
		"message":    "Resume analyzed successfully.",
	})
}

// UploadResumeToProject screens an uploaded PDF and records it in the
// project.
// POST /projects/:id/upload_resume
func (h *ScreenHandlers) UploadResumeToProject(c *fiber.Ctx) error {
	id := kernel.ProjectID(c.Params("id"))
	p, err := h.projects.GetProject(c.Context(), id)
	if err != nil {
		return err
	}

	jobDescription := c.FormValue("job_description")
	if jobDescription == "" {
		jobDescription = p.Description
	}

	rec, err := h.screenUpload(c, id, jobDescription)
	if err != nil {
		return err
	}

	updated, err := h.projects.IngestRecords(c.Context(), id, []project.CandidateRecord{rec})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"candidate": rec, "project": updated})
}

// screenUpload reads the multipart file and runs it through the
// pipeline.
func (h *ScreenHandlers) screenUpload(c *fiber.Ctx, projectID kernel.ProjectID, jobDescription string) (project.CandidateRecord, error) {
	file, err := c.FormFile("resume")
	if err != nil {
		return project.CandidateRecord{}, project.ErrInvalidInput("resume file is required")
	}
	if jobDescription == "" {
		return project.CandidateRecord{}, project.ErrInvalidInput("job description is required")
	}

	f, err := file.Open()
	if err != nil {
		return project.CandidateRecord{}, project.ErrInvalidInput("could not open uploaded file")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return project.CandidateRecord{}, project.ErrInvalidInput("could not read uploaded file")
	}

	return h.screening.Screen(c.Context(), projectID, jobDescription, intake.Resume{
		Filename: file.Filename,
		Data:     data,
	})
}

// DeleteResume removes a resume from a project.
// DELETE /projects/:id/resumes/:resume_id
func (h *ScreenHandlers) DeleteResume(c *fiber.Ctx) error {
	projectID := kernel.ProjectID(c.Params("id"))
	resumeID := kernel.ResumeID(c.Params("resume_id"))
	if projectID.IsEmpty() || resumeID.IsEmpty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid project or resume ID",
		})
	}

	p, err := h.projects.DeleteResume(c.Context(), projectID, resumeID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "project": p})
}

// ============================================================================
// Decision Emails
// ============================================================================

type sendEmailRequest struct {
	Email          string `json:"email"`
	Name           string `json:"name"`
	JobDescription string `json:"job_description"`
	Type           string `json:"type"`
}

// SendEmail sends an acceptance or rejection email to a candidate.
// POST /send_email
func (h *ScreenHandlers) SendEmail(c *fiber.Ctx) error {
	var req sendEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "message": "Missing required data.",
		})
	}
	if req.Email == "" || req.Name == "" || req.JobDescription == "" || req.Type == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "message": "Missing required data.",
		})
	}

	jobTitle := h.rules.InferJobTitle(req.JobDescription)
	email, err := notify.DecisionEmail(notify.Kind(req.Type), req.Email, req.Name, jobTitle)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "message": "Invalid email type.",
		})
	}

	if err := h.mailer.Send(c.Context(), email); err != nil {
		return c.JSON(fiber.Map{
			"success": false, "message": "Failed to send email.",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": capitalize(req.Type) + " email sent successfully!",
	})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
