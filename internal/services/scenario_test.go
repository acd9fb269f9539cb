package services

import (
	"context"
	"testing"

	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/dto"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHiringFlow(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	admin := e.addUser(models.RoleAdmin, "admin@example.com")
	hr := e.addUser(models.RoleHR, "u@example.com")

	job, err := e.jobSvc.Create(ctx, &dto.CreateJobRequest{Title: "Backend Engineer"}, admin)
	require.NoError(t, err)
	require.Regexp(t, jobCodePattern, job.Code)

	_, err = e.jobSvc.Allocate(ctx, job.Code, hr.ID)
	require.NoError(t, err)

	c, err := e.candSvc.Create(ctx, newCandidateRequest(job.Code), hr)
	require.NoError(t, err)

	note := "strong fit"
	require.NoError(t, e.candSvc.SetStatus(ctx, c.ID, models.CandidateStatusInterviewed, &note, hr, true))

	history, err := e.audit.ListByCandidate(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "applied", history[0].OldStatus)
	assert.Equal(t, "interviewed", history[0].NewStatus)
	require.NotNil(t, history[0].Comment)
	assert.Equal(t, "strong fit", *history[0].Comment)
}
