package project

import (
	"strconv"
	"strings"
	"time"

	"github.com/introlligent/screener/pkg/kernel"
	"github.com/introlligent/screener/screening/profile"
)

// DefaultTopN is the retention size for ranked resumes.
const DefaultTopN = 3

// CandidateRecord is one screened resume. Records are immutable once
// created; the only mutation is removal from a project.
type CandidateRecord struct {
	ID    kernel.ResumeID `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Phone string          `json:"phone"`

	Filename string `json:"filename"`
	Sender   string `json:"sender,omitempty"`
	Subject  string `json:"subject,omitempty"`

	MatchedKeywords map[string][]string `json:"matched_keywords"`
	Sections        profile.Sections    `json:"sections"`

	StoragePath string    `json:"storage_path"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// Stats tracks aggregate counters for a project.
type Stats struct {
	TotalUploaded int `json:"total_uploaded"`
	TopKept       int `json:"top_kept"`
}

// Project aggregates all candidates screened against one job opening.
// TopResumes is derived and recomputed in full after every mutation; it
// is never edited directly.
type Project struct {
	ID          kernel.ProjectID `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Owner       string           `json:"owner"`
	CreatedAt   time.Time        `json:"created_at"`

	Resumes    []CandidateRecord `json:"resumes"`
	TopResumes []CandidateRecord `json:"top_resumes"`
	Stats      Stats             `json:"stats"`

	// Version is the optimistic-concurrency token maintained by the
	// repository; it is not part of the serialized project document.
	Version int `json:"-"`
}

// New creates an empty project.
func New(id kernel.ProjectID, title, description, owner string) *Project {
	if title == "" {
		title = "New Recruitment"
	}
	if owner == "" {
		owner = "default"
	}
	return &Project{
		ID:          id,
		Title:       title,
		Description: description,
		Owner:       owner,
		CreatedAt:   time.Now().UTC(),
		Resumes:     []CandidateRecord{},
		TopResumes:  []CandidateRecord{},
	}
}

// AddResume appends a candidate record, bumps the upload counter, and
// recomputes the retained ranking.
func (p *Project) AddResume(rec CandidateRecord) {
	p.Resumes = append(p.Resumes, rec)
	p.Stats.TotalUploaded++
	p.RecomputeTop(DefaultTopN)
}

// RemoveResume deletes the record with the given ID. It returns the
// record's storage path and whether the record was present; removing an
// absent record is a no-op. The upload counter never goes below zero.
func (p *Project) RemoveResume(id kernel.ResumeID) (storagePath string, found bool) {
	kept := p.Resumes[:0]
	for _, r := range p.Resumes {
		if r.ID == id {
			storagePath = r.StoragePath
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return "", false
	}

	p.Resumes = kept
	if p.Stats.TotalUploaded > 0 {
		p.Stats.TotalUploaded--
	}
	p.RecomputeTop(DefaultTopN)
	return storagePath, true
}

// RecomputeTop rebuilds TopResumes as the n highest-scoring resumes,
// descending by ATS score, ties broken by arrival order (stable sort).
// Recomputing on an unchanged resume sequence is idempotent.
func (p *Project) RecomputeTop(n int) {
	ranked := make([]CandidateRecord, len(p.Resumes))
	copy(ranked, p.Resumes)

	// Insertion sort keeps equal scores in arrival order.
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && scoreOf(ranked[j]) > scoreOf(ranked[j-1]); j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}

	if n > len(ranked) {
		n = len(ranked)
	}
	p.TopResumes = ranked[:n:n]
	p.Stats.TopKept = len(p.TopResumes)
}

// scoreOf coerces a record's ATS score to an integer, treating missing
// or non-numeric values as 0.
func scoreOf(r CandidateRecord) int {
	if r.Sections.ATSScore == nil {
		return 0
	}
	score, err := strconv.Atoi(strings.TrimSpace(*r.Sections.ATSScore))
	if err != nil {
		return 0
	}
	return score
}
