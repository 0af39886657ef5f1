package apitests

import (
	"strings"

	"github.com/jobhunter/integration-tests/client"
	"github.com/jobhunter/integration-tests/servicedef"
)

// DoAIStreamingTest probes the streaming generation endpoint. The test
// payload is not a real candidate/job pair, so a validation error is fine;
// only an absent route fails.
func DoAIStreamingTest(t *T) {
	resp := t.Request("POST", "/recruiter-workflow/generate-stream", client.RequestOpts{
		JSONBody: servicedef.GenerateStreamParams{
			CandidateID: "test_candidate",
			JobID:       "test_job",
		},
	})

	if resp.TransportFailed() {
		t.Errorf("AI streaming failed: %s", resp.Describe())
		return
	}
	if resp.IsNotFound() {
		t.Errorf("AI streaming failed: %s", resp.Describe())
		return
	}
	t.Notef("AI streaming endpoint accessible")
}

// DoRecruiterWorkflowTest exercises the non-streaming workflow with a full
// request payload. When the backend actually generates a response, the
// message records which of the generated sections were present.
func DoRecruiterWorkflowTest(t *T) {
	params := servicedef.WorkflowParams{
		JobDescription: "We are looking for a Senior Frontend Engineer with expertise in React, " +
			"TypeScript, and modern web development. The ideal candidate will have 5+ years of " +
			"experience building scalable web applications.",
		Resumes: []servicedef.ResumeRef{
			{ResumeID: "software-engineer-resume", CandidateID: "candidate_1"},
			{ResumeID: "product-manager-resume", CandidateID: "candidate_1"},
		},
		JobMetadata: servicedef.JobMetadata{
			Title:      "Senior Frontend Engineer",
			Code:       "REQ-001",
			Level:      "Senior",
			SalaryBand: "$130k - $150k AUD",
			Summary:    "Senior Frontend Engineer role at Acme Corp",
		},
	}

	resp := t.Request("POST", "/recruiter-workflow/generate", client.RequestOpts{JSONBody: params})

	if resp.TransportFailed() {
		t.Errorf("recruiter workflow failed: %s", resp.Describe())
		return
	}
	if resp.IsNotFound() {
		t.Errorf("recruiter workflow failed: %s", resp.Describe())
		return
	}

	if resp.Status == 200 && resp.IsObject() {
		var sections []string
		for _, key := range []string{"engagement_plan", "fairness_guidance"} {
			if resp.HasField(key) {
				sections = append(sections, key)
			}
		}
		if len(sections) > 0 {
			t.Notef("Workflow generated a response with %s", strings.Join(sections, ", "))
			return
		}
	}
	t.Notef("Recruiter workflow endpoint accessible")
}
