package dto

type DashboardResponse struct {
	TotalJobs     int64 `json:"total_jobs"`
	OpenJobs      int64 `json:"open_jobs"`
	AllocatedJobs int64 `json:"allocated_jobs"`
	ClosedJobs    int64 `json:"closed_jobs"`
	SubmittedJobs int64 `json:"submitted_jobs"`

	TotalCandidates       int64 `json:"total_candidates"`
	AppliedCandidates     int64 `json:"applied_candidates"`
	InProgressCandidates  int64 `json:"in_progress_candidates"`
	InterviewedCandidates int64 `json:"interviewed_candidates"`
	SelectedCandidates    int64 `json:"selected_candidates"`
	RejectedCandidates    int64 `json:"rejected_candidates"`

	// Admin view only.
	HRUsers *int64 `json:"hr_users,omitempty"`
}
