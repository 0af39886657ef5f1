// Package servicedef contains the request payload types for the job-hunter
// backend's API, as consumed by the test suite. The JSON field names are the
// backend's wire contract; this repository does not define that contract,
// only speaks it.
package servicedef

type RankingParams struct {
	UserSkills []string `json:"user_skills"`
	JobSkills  []string `json:"job_skills"`
}

type ScrapeJobsParams struct {
	Platform string `json:"platform"`
	Keyword  string `json:"keyword"`
	Location string `json:"location"`
}

type GenerateStreamParams struct {
	CandidateID string `json:"candidate_id"`
	JobID       string `json:"job_id"`
}

// ResumeRef identifies one resume of a candidate in a workflow request.
type ResumeRef struct {
	ResumeID    string `json:"resume_id"`
	CandidateID string `json:"candidate_id"`
}

type JobMetadata struct {
	Title      string `json:"title"`
	Code       string `json:"code"`
	Level      string `json:"level"`
	SalaryBand string `json:"salary_band"`
	Summary    string `json:"summary"`
}

// WorkflowParams is the full payload of the non-streaming recruiter workflow.
type WorkflowParams struct {
	JobDescription string      `json:"job_description"`
	Resumes        []ResumeRef `json:"resumes"`
	JobMetadata    JobMetadata `json:"job_metadata"`
}
