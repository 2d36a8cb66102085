package profile

// NotFound is the sentinel recorded when a contact field could not be
// extracted from the document text.
const NotFound = "Not found"

// Sections holds the typed parts of one generated candidate evaluation.
// ATSScore and HRScore are nil when the ATS JSON was missing or malformed.
type Sections struct {
	BasicInfo           string  `json:"basic_info"`
	StrengthsWeaknesses string  `json:"strengths_weaknesses"`
	HRSummary           string  `json:"hr_summary"`
	Justification       string  `json:"justification"`
	Recommendation      string  `json:"recommendation"`
	ATSJSON             string  `json:"ats_json"`
	InterviewQuestions  string  `json:"interview_questions"`
	ATSScore            *string `json:"ats_score"`
	HRScore             *string `json:"hr_score"`
}

// Domain groups keywords under a tag; the tag order and keyword order are
// both significant for matching output.
type Domain struct {
	Tag      string
	Keywords []string
}

// Rules is the immutable heuristic configuration injected into every
// extraction function. Construct alternates in tests to exercise the
// heuristics in isolation.
type Rules struct {
	Domains []Domain

	// Name extraction falls back past results containing this substring.
	GenericNamePlaceholder string

	// Maximum length of a text first line usable as a candidate name.
	MaxNameLineLen int

	// Maximum length of a description first line usable as a job title.
	MaxTitleLineLen int

	// Literal returned when no job title can be inferred.
	FallbackJobTitle string
}

// DefaultRules returns the production rule set.
func DefaultRules() Rules {
	return Rules{
		Domains: []Domain{
			{Tag: "data_analytics", Keywords: []string{"Python", "SQL", "Tableau", "Presto", "Redshift", "PySpark", "Data Analysis", "ETL", "Dashboard"}},
			{Tag: "data_quality", Keywords: []string{"Data Governance", "Data Profiling", "Data Validation", "DQ Tools", "Quality Metrics", "Data Cleansing"}},
			{Tag: "machine_learning", Keywords: []string{"Python", "TensorFlow", "PyTorch", "Data Science", "AI", "Machine Learning", "NLP", "Keras"}},
			{Tag: "business_intelligence", Keywords: []string{"Power BI", "Tableau", "Qlik", "Looker", "Data Visualization", "KPIs", "Metrics"}},
			{Tag: "cloud", Keywords: []string{"AWS", "Azure", "GCP", "DevOps", "CI/CD", "Kubernetes", "Docker", "Terraform"}},
		},
		GenericNamePlaceholder: "unknown",
		MaxNameLineLen:         60,
		MaxTitleLineLen:        80,
		FallbackJobTitle:       "Applicant",
	}
}
