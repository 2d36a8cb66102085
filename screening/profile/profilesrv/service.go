package profilesrv

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/introlligent/screener/internal/ai/completion"
	"github.com/introlligent/screener/internal/pdf"
	"github.com/introlligent/screener/pkg/fsx"
	"github.com/introlligent/screener/pkg/kernel"
	"github.com/introlligent/screener/pkg/logx"
	"github.com/introlligent/screener/screening/intake"
	"github.com/introlligent/screener/screening/profile"
	"github.com/introlligent/screener/screening/project"
)

const (
	maxGenerateAttempts = 3
	rateLimitBackoff    = 5 * time.Second
)

// Generator produces the profile text for a prompt. Satisfied by
// *completion.Client.
type Generator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Service screens resumes against a job description: extract text,
// archive the PDF, run the heuristic extractors, generate the HR
// profile, and assemble the structured sections.
type Service struct {
	completions Generator
	storage     fsx.FileSystem
	rules       profile.Rules
	contract    profile.SectionContract
	extract     func([]byte) string
}

func New(completions Generator, storage fsx.FileSystem, rules profile.Rules, contract profile.SectionContract) (*Service, error) {
	if err := contract.Validate(); err != nil {
		return nil, err
	}
	return &Service{
		completions: completions,
		storage:     storage,
		rules:       rules,
		contract:    contract,
		extract:     pdf.ExtractText,
	}, nil
}

// ScreenBatch screens each resume in order. A resume that fails any
// stage is logged and skipped; the rest of the batch continues. With no
// storage backend configured the whole batch is refused up front.
func (s *Service) ScreenBatch(ctx context.Context, projectID kernel.ProjectID, jobDescription string, resumes []intake.Resume) ([]project.CandidateRecord, error) {
	if s.storage == nil {
		return nil, profile.ErrStorageUnavailable()
	}
	var records []project.CandidateRecord
	for _, r := range resumes {
		rec, err := s.Screen(ctx, projectID, jobDescription, r)
		if err != nil {
			logx.Warnf("screening: skipping %s: %v", r.Filename, err)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// Screen processes a single resume end to end.
func (s *Service) Screen(ctx context.Context, projectID kernel.ProjectID, jobDescription string, r intake.Resume) (project.CandidateRecord, error) {
	text := s.extract(r.Data)
	if text == "" {
		return project.CandidateRecord{}, profile.ErrExtractionEmpty().WithDetail("filename", r.Filename)
	}
	cleaned := profile.CleanText(text)

	resumeID := kernel.NewResumeID()
	storagePath, err := s.archive(ctx, projectID, resumeID, r)
	if err != nil {
		return project.CandidateRecord{}, err
	}

	name := s.rules.CandidateName(r.Filename, cleaned)
	email, phone := profile.ContactInfo(cleaned)
	// A real sender address beats whatever the text yielded.
	if r.Sender != "" {
		if fromSender := profile.SenderAddress(r.Sender); fromSender != "" {
			email = fromSender
		}
	}
	matched := s.rules.MatchKeywords(cleaned)

	prompt := s.contract.BuildProfilePrompt(profile.PromptInput{
		JobDescription:  jobDescription,
		ResumeText:      cleaned,
		MatchedKeywords: matched,
		Name:            name,
		Email:           email,
		Phone:           phone,
	})

	generated, err := s.generate(ctx, prompt)
	if err != nil {
		return project.CandidateRecord{}, err
	}

	parsed := s.contract.ParseSections(generated)
	if missing := s.missingSections(parsed); len(missing) > 0 {
		logx.Warnf("screening: %s: %v", r.Filename,
			profile.ErrParseIncomplete().WithDetail("sections", strings.Join(missing, ",")))
	}

	// A malformed ATS JSON leaves the scores nil but keeps the candidate.
	sections, err := profile.AssembleSections(parsed)
	if err != nil {
		logx.Warnf("screening: %s: %v", r.Filename, profile.ErrScoreUnparsable().WithDetail("cause", err.Error()))
	}

	return project.CandidateRecord{
		ID:              resumeID,
		Name:            name,
		Email:           email,
		Phone:           phone,
		Filename:        r.Filename,
		Sender:          r.Sender,
		Subject:         r.Subject,
		MatchedKeywords: matched,
		Sections:        sections,
		StoragePath:     storagePath,
		UploadedAt:      time.Now().UTC(),
	}, nil
}

// missingSections lists contract sections the model response did not
// carry. A section left empty is tolerated downstream; it is only
// surfaced here for the operator.
func (s *Service) missingSections(parsed map[string]string) []string {
	var missing []string
	for _, spec := range s.contract {
		if strings.TrimSpace(parsed[spec.Key]) == "" {
			missing = append(missing, spec.Key)
		}
	}
	return missing
}

// archive uploads the original PDF.
func (s *Service) archive(ctx context.Context, projectID kernel.ProjectID, resumeID kernel.ResumeID, r intake.Resume) (string, error) {
	if s.storage == nil {
		return "", profile.ErrStorageUnavailable()
	}
	scope := projectID.String()
	if projectID.IsEmpty() {
		scope = "standalone"
	}
	path := fmt.Sprintf("%s/%s_%s", scope, resumeID, r.Filename)
	if err := s.storage.WriteFile(ctx, path, r.Data, "application/pdf"); err != nil {
		return "", profile.ErrStorageUploadFailed().WithDetail("path", path).WithDetail("cause", err.Error())
	}
	return path, nil
}

// generate calls the model, retrying on rate limits with a linearly
// growing delay. Other failures abort immediately.
func (s *Service) generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= maxGenerateAttempts; attempt++ {
		raw, err := s.completions.Complete(ctx, prompt)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if !completion.IsRateLimited(err) {
			break
		}
		delay := time.Duration(attempt) * rateLimitBackoff
		logx.Warnf("screening: rate limited, retrying in %s (attempt %d/%d)", delay, attempt, maxGenerateAttempts)
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}
	}
	if lastErr != nil {
		return "", profile.ErrGenerationFailed().WithDetail("cause", lastErr.Error())
	}
	return "", profile.ErrGenerationFailed()
}
