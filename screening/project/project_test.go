package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/introlligent/screener/pkg/kernel"
	"github.com/introlligent/screener/screening/profile"
)

func recordWithScore(name string, score *string) CandidateRecord {
	return CandidateRecord{
		ID:       kernel.NewResumeID(),
		Name:     name,
		Sections: profile.Sections{ATSScore: score},
	}
}

func strptr(s string) *string { return &s }

func TestRecomputeTopRanking(t *testing.T) {
	p := New(kernel.NewProjectID(), "Data Engineer", "jd", "hr@acme.test")

	p.AddResume(recordWithScore("fifty", strptr("50")))
	p.AddResume(recordWithScore("bad", strptr("not a number")))
	p.AddResume(recordWithScore("ninety-a", strptr("90")))
	p.AddResume(recordWithScore("missing", nil))
	p.AddResume(recordWithScore("ninety-b", strptr("90")))

	require.Len(t, p.TopResumes, 3)
	assert.Equal(t, "ninety-a", p.TopResumes[0].Name)
	assert.Equal(t, "ninety-b", p.TopResumes[1].Name)
	assert.Equal(t, "fifty", p.TopResumes[2].Name)
	assert.Equal(t, 5, p.Stats.TotalUploaded)
	assert.Equal(t, 3, p.Stats.TopKept)
}

func TestRecomputeTopIdempotent(t *testing.T) {
	p := New(kernel.NewProjectID(), "", "", "")
	p.AddResume(recordWithScore("a", strptr("10")))
	p.AddResume(recordWithScore("b", strptr("20")))

	first := make([]CandidateRecord, len(p.TopResumes))
	copy(first, p.TopResumes)

	p.RecomputeTop(DefaultTopN)
	assert.Equal(t, first, p.TopResumes)
}

func TestRecomputeTopFewerThanN(t *testing.T) {
	p := New(kernel.NewProjectID(), "", "", "")
	p.AddResume(recordWithScore("only", strptr("42")))

	assert.Len(t, p.TopResumes, 1)
	assert.Equal(t, 1, p.Stats.TopKept)
}

func TestRemoveResume(t *testing.T) {
	p := New(kernel.NewProjectID(), "", "", "")
	rec := recordWithScore("gone", strptr("70"))
	rec.StoragePath = "resumes/gone.pdf"
	p.AddResume(rec)
	p.AddResume(recordWithScore("stays", strptr("30")))

	path, found := p.RemoveResume(rec.ID)
	require.True(t, found)
	assert.Equal(t, "resumes/gone.pdf", path)
	assert.Equal(t, 1, p.Stats.TotalUploaded)
	require.Len(t, p.TopResumes, 1)
	assert.Equal(t, "stays", p.TopResumes[0].Name)
}

func TestRemoveResumeAbsentIsNoOp(t *testing.T) {
	p := New(kernel.NewProjectID(), "", "", "")
	p.AddResume(recordWithScore("a", strptr("10")))

	path, found := p.RemoveResume(kernel.NewResumeID())
	assert.False(t, found)
	assert.Empty(t, path)
	assert.Equal(t, 1, p.Stats.TotalUploaded)
	assert.Len(t, p.Resumes, 1)
}

func TestRemoveResumeCounterFloor(t *testing.T) {
	p := New(kernel.NewProjectID(), "", "", "")
	rec := recordWithScore("a", strptr("10"))
	p.AddResume(rec)
	p.Stats.TotalUploaded = 0

	_, found := p.RemoveResume(rec.ID)
	require.True(t, found)
	assert.Equal(t, 0, p.Stats.TotalUploaded)
}

func TestNewDefaults(t *testing.T) {
	p := New(kernel.NewProjectID(), "", "", "")
	assert.Equal(t, "New Recruitment", p.Title)
	assert.Equal(t, "default", p.Owner)
	assert.NotNil(t, p.Resumes)
	assert.NotNil(t, p.TopResumes)
}
