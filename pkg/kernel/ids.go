package kernel

import "github.com/google/uuid"

type ProjectID string

func NewProjectID() ProjectID      { return ProjectID(uuid.New().String()) }
func (p ProjectID) String() string { return string(p) }
func (p ProjectID) IsEmpty() bool  { return string(p) == "" }

type ResumeID string

func NewResumeID() ResumeID       { return ResumeID(uuid.New().String()) }
func (r ResumeID) String() string { return string(r) }
func (r ResumeID) IsEmpty() bool  { return string(r) == "" }

type SessionID string

func NewSessionID() SessionID      { return SessionID(uuid.New().String()) }
func (s SessionID) String() string { return string(s) }
func (s SessionID) IsEmpty() bool  { return string(s) == "" }
