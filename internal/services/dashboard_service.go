package services

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/dto"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/models"
)

// DashboardService computes counters straight from the stores on every call.
type DashboardService struct {
	users      UserRepository
	jobs       JobRepository
	candidates CandidateRepository
}

func NewDashboardService(users UserRepository, jobs JobRepository, candidates CandidateRepository) *DashboardService {
	return &DashboardService{users: users, jobs: jobs, candidates: candidates}
}

func (s *DashboardService) Admin(ctx context.Context) (*dto.DashboardResponse, error) {
	jobCounts, err := s.jobs.CountByStatus(ctx, nil)
	if err != nil {
		return nil, err
	}
	candidateCounts, err := s.candidates.CountByStatus(ctx, CandidateQuery{})
	if err != nil {
		return nil, err
	}
	hrUsers, err := s.users.CountByRole(ctx, models.RoleHR)
	if err != nil {
		return nil, err
	}

	resp := fill(jobCounts, candidateCounts)
	resp.HRUsers = &hrUsers
	return resp, nil
}

// HR scopes every counter to jobs allocated to hr and their candidates.
func (s *DashboardService) HR(ctx context.Context, hr *models.User) (*dto.DashboardResponse, error) {
	jobCounts, err := s.jobs.CountByStatus(ctx, &hr.ID)
	if err != nil {
		return nil, err
	}
	jobs, err := s.jobs.List(ctx, JobQuery{AssignedHR: &hr.ID})
	if err != nil {
		return nil, err
	}
	candidateCounts, err := s.candidates.CountByStatus(ctx, CandidateQuery{
		Scoped:   true,
		JobCodes: jobCodes(jobs),
	})
	if err != nil {
		return nil, err
	}
	return fill(jobCounts, candidateCounts), nil
}

func fill(jobs, candidates map[string]int64) *dto.DashboardResponse {
	return &dto.DashboardResponse{
		TotalJobs:     sum(jobs),
		OpenJobs:      jobs[models.JobStatusOpen],
		AllocatedJobs: jobs[models.JobStatusAllocated],
		ClosedJobs:    jobs[models.JobStatusClosed],
		SubmittedJobs: jobs[models.JobStatusSubmit],

		TotalCandidates:       sum(candidates),
		AppliedCandidates:     candidates[models.CandidateStatusApplied],
		InProgressCandidates:  candidates[models.CandidateStatusInProgress],
		InterviewedCandidates: candidates[models.CandidateStatusInterviewed],
		SelectedCandidates:    candidates[models.CandidateStatusSelected],
		RejectedCandidates:    candidates[models.CandidateStatusRejected],
	}
}

func sum(counts map[string]int64) int64 {
	var n int64
	for _, v := range counts {
		n += v
	}
	return n
}
