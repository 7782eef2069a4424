package service

import (
	"ReportDeskAPI/internal/config"
	"ReportDeskAPI/internal/entity"
	"ReportDeskAPI/internal/helper"
	"ReportDeskAPI/internal/model"
	"ReportDeskAPI/internal/repository"
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportService(t *testing.T) (*ReportService, *repository.Repository) {
	repo := newTestRepo(t)
	return NewReportService(repo, testConfig(), config.NewValidator()), repo
}

func validCreateRequest() model.CreateReportRequest {
	return model.CreateReportRequest{
		Type:     "review",
		TargetID: "101",
		Reason:   "spam",
	}
}

func TestCreateReport(t *testing.T) {
	s, _ := newReportService(t)
	alice := createTestUser(t, s.repo, "alice@test.com", "Alice", entity.RoleUser)

	report, err := s.CreateReport(context.Background(), callerFor(alice), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, "pending", report.Status)
	assert.Equal(t, "review", report.Type)
	assert.Equal(t, "101", report.TargetID)
	assert.Equal(t, "spam", report.Reason)
	assert.Equal(t, helper.FormatID(alice.ID), report.SubmittedBy)
	assert.Nil(t, report.ResolvedBy)
	assert.Nil(t, report.ResolvedAt)
	assert.Nil(t, report.Response)
	require.NotNil(t, report.Submitter)
	assert.Equal(t, "Alice", report.Submitter.Name)
}

func TestCreateReportValidation(t *testing.T) {
	s, _ := newReportService(t)
	alice := createTestUser(t, s.repo, "alice@test.com", "Alice", entity.RoleUser)
	caller := callerFor(alice)

	cases := map[string]model.CreateReportRequest{
		"non-numeric target": {Type: "review", TargetID: "abc", Reason: "spam"},
		"negative target":    {Type: "review", TargetID: "-3", Reason: "spam"},
		"missing target":     {Type: "review", Reason: "spam"},
		"unknown type":       {Type: "invoice", TargetID: "101", Reason: "spam"},
		"unknown reason":     {Type: "review", TargetID: "101", Reason: "ugly"},
		"missing reason":     {Type: "review", TargetID: "101"},
	}

	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := s.CreateReport(context.Background(), caller, req)
			assertAppErrorCode(t, err, http.StatusBadRequest)
		})
	}
}

func TestCreateThenListRoundTrip(t *testing.T) {
	s, _ := newReportService(t)
	alice := createTestUser(t, s.repo, "alice@test.com", "Alice", entity.RoleUser)
	caller := callerFor(alice)

	req := validCreateRequest()
	req.Description = "fake five star review"

	created, err := s.CreateReport(context.Background(), caller, req)
	require.NoError(t, err)

	listed, err := s.ListReports(context.Background(), caller, model.ListReportsRequest{})
	require.NoError(t, err)
	require.Len(t, listed, 1)

	assert.Equal(t, created.ID, listed[0].ID)
	assert.Equal(t, created.TargetID, listed[0].TargetID)
	assert.Equal(t, "pending", listed[0].Status)
	require.NotNil(t, listed[0].Description)
	assert.Equal(t, "fake five star review", *listed[0].Description)
	assert.Nil(t, listed[0].ResolvedBy)
	assert.Nil(t, listed[0].ResolvedAt)
}

func TestListVisibilityScoping(t *testing.T) {
	s, _ := newReportService(t)
	alice := createTestUser(t, s.repo, "alice@test.com", "Alice", entity.RoleUser)
	bob := createTestUser(t, s.repo, "bob@test.com", "Bob", entity.RoleUser)
	admin := createTestUser(t, s.repo, "admin@test.com", "Admin", entity.RoleAdmin)

	_, err := s.CreateReport(context.Background(), callerFor(alice), validCreateRequest())
	require.NoError(t, err)

	aliceView, err := s.ListReports(context.Background(), callerFor(alice), model.ListReportsRequest{})
	require.NoError(t, err)
	require.Len(t, aliceView, 1)

	bobView, err := s.ListReports(context.Background(), callerFor(bob), model.ListReportsRequest{})
	require.NoError(t, err)
	assert.Empty(t, bobView)

	adminView, err := s.ListReports(context.Background(), callerFor(admin), model.ListReportsRequest{})
	require.NoError(t, err)
	require.Len(t, adminView, 1)
	require.NotNil(t, adminView[0].Submitter)
	assert.Equal(t, "Alice", adminView[0].Submitter.Name)

	// Non-admin results must never contain someone else's submission.
	for _, r := range bobView {
		assert.Equal(t, helper.FormatID(bob.ID), r.SubmittedBy)
	}
}

func TestListStatusFilter(t *testing.T) {
	s, _ := newReportService(t)
	alice := createTestUser(t, s.repo, "alice@test.com", "Alice", entity.RoleUser)
	admin := createTestUser(t, s.repo, "admin@test.com", "Admin", entity.RoleAdmin)

	first, err := s.CreateReport(context.Background(), callerFor(alice), validCreateRequest())
	require.NoError(t, err)
	_, err = s.CreateReport(context.Background(), callerFor(alice), validCreateRequest())
	require.NoError(t, err)

	firstID, err := helper.ParseID(first.ID)
	require.NoError(t, err)
	_, err = s.TransitionReport(context.Background(), callerFor(admin), firstID, model.TransitionReportRequest{
		Status:     "resolved",
		Response:   "handled",
		ResolvedBy: helper.FormatID(admin.ID),
	})
	require.NoError(t, err)

	pending, err := s.ListReports(context.Background(), callerFor(admin), model.ListReportsRequest{Status: "pending"})
	require.NoError(t, err)
	require.Len(t, pending, 1)

	resolved, err := s.ListReports(context.Background(), callerFor(admin), model.ListReportsRequest{Status: "resolved"})
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, first.ID, resolved[0].ID)

	_, err = s.ListReports(context.Background(), callerFor(admin), model.ListReportsRequest{Status: "bogus"})
	assertAppErrorCode(t, err, http.StatusBadRequest)
}

func TestTransitionResolve(t *testing.T) {
	s, repo := newReportService(t)
	alice := createTestUser(t, s.repo, "alice@test.com", "Alice", entity.RoleUser)
	admin := createTestUser(t, s.repo, "admin@test.com", "Admin", entity.RoleAdmin)

	created, err := s.CreateReport(context.Background(), callerFor(alice), validCreateRequest())
	require.NoError(t, err)
	reportID, err := helper.ParseID(created.ID)
	require.NoError(t, err)

	updated, err := s.TransitionReport(context.Background(), callerFor(admin), reportID, model.TransitionReportRequest{
		Status:     "resolved",
		Response:   "removed the offending review",
		ResolvedBy: helper.FormatID(admin.ID),
	})
	require.NoError(t, err)

	assert.Equal(t, "resolved", updated.Status)
	require.NotNil(t, updated.ResolvedBy)
	assert.Equal(t, helper.FormatID(admin.ID), *updated.ResolvedBy)
	require.NotNil(t, updated.ResolvedAt)
	require.NotNil(t, updated.Response)
	assert.Equal(t, "removed the offending review", *updated.Response)
	require.NotNil(t, updated.Resolver)
	assert.Equal(t, "Admin", updated.Resolver.Name)

	// Terminal state in storage honors the pending invariant's converse.
	stored, err := repo.Report.FindByID(context.Background(), reportID)
	require.NoError(t, err)
	assert.True(t, stored.Status.IsTerminal())
	assert.NotNil(t, stored.ResolvedBy)
	assert.NotNil(t, stored.ResolvedAt)
}

func TestTransitionReject(t *testing.T) {
	s, _ := newReportService(t)
	alice := createTestUser(t, s.repo, "alice@test.com", "Alice", entity.RoleUser)
	admin := createTestUser(t, s.repo, "admin@test.com", "Admin", entity.RoleAdmin)

	created, err := s.CreateReport(context.Background(), callerFor(alice), validCreateRequest())
	require.NoError(t, err)
	reportID, err := helper.ParseID(created.ID)
	require.NoError(t, err)

	updated, err := s.TransitionReport(context.Background(), callerFor(admin), reportID, model.TransitionReportRequest{
		Status:     "rejected",
		Response:   "no policy violation found",
		ResolvedBy: helper.FormatID(admin.ID),
	})
	require.NoError(t, err)

	assert.Equal(t, "rejected", updated.Status)
	require.NotNil(t, updated.Response)
	assert.Equal(t, "no policy violation found", *updated.Response)
	require.NotNil(t, updated.ResolvedBy)
	require.NotNil(t, updated.ResolvedAt)
}

func TestTransitionValidation(t *testing.T) {
	s, _ := newReportService(t)
	alice := createTestUser(t, s.repo, "alice@test.com", "Alice", entity.RoleUser)
	admin := createTestUser(t, s.repo, "admin@test.com", "Admin", entity.RoleAdmin)

	created, err := s.CreateReport(context.Background(), callerFor(alice), validCreateRequest())
	require.NoError(t, err)
	reportID, err := helper.ParseID(created.ID)
	require.NoError(t, err)

	caller := callerFor(admin)
	resolvedBy := helper.FormatID(admin.ID)

	cases := map[string]model.TransitionReportRequest{
		"empty response on resolve": {Status: "resolved", Response: "", ResolvedBy: resolvedBy},
		"empty response on reject":  {Status: "rejected", Response: "", ResolvedBy: resolvedBy},
		"whitespace response":       {Status: "resolved", Response: "   ", ResolvedBy: resolvedBy},
		"invalid status":            {Status: "pending", Response: "note", ResolvedBy: resolvedBy},
		"missing resolver":          {Status: "resolved", Response: "note"},
		"non-numeric resolver":      {Status: "resolved", Response: "note", ResolvedBy: "abc"},
	}

	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := s.TransitionReport(context.Background(), caller, reportID, req)
			assertAppErrorCode(t, err, http.StatusBadRequest)
		})
	}

	// Resolver must be the acting admin, not some other user.
	_, err = s.TransitionReport(context.Background(), caller, reportID, model.TransitionReportRequest{
		Status:     "resolved",
		Response:   "note",
		ResolvedBy: helper.FormatID(alice.ID),
	})
	assertAppErrorCode(t, err, http.StatusBadRequest)

	// All failures above must leave the report untouched.
	listed, err := s.ListReports(context.Background(), caller, model.ListReportsRequest{Status: "pending"})
	require.NoError(t, err)
	require.Len(t, listed, 1)
}

func TestTransitionNotFound(t *testing.T) {
	s, _ := newReportService(t)
	admin := createTestUser(t, s.repo, "admin@test.com", "Admin", entity.RoleAdmin)

	_, err := s.TransitionReport(context.Background(), callerFor(admin), 9999, model.TransitionReportRequest{
		Status:     "resolved",
		Response:   "note",
		ResolvedBy: helper.FormatID(admin.ID),
	})
	assertAppErrorCode(t, err, http.StatusNotFound)
}

func TestTransitionTerminalReportFails(t *testing.T) {
	s, _ := newReportService(t)
	alice := createTestUser(t, s.repo, "alice@test.com", "Alice", entity.RoleUser)
	admin := createTestUser(t, s.repo, "admin@test.com", "Admin", entity.RoleAdmin)

	created, err := s.CreateReport(context.Background(), callerFor(alice), validCreateRequest())
	require.NoError(t, err)
	reportID, err := helper.ParseID(created.ID)
	require.NoError(t, err)

	caller := callerFor(admin)
	resolvedBy := helper.FormatID(admin.ID)

	_, err = s.TransitionReport(context.Background(), caller, reportID, model.TransitionReportRequest{
		Status: "resolved", Response: "done", ResolvedBy: resolvedBy,
	})
	require.NoError(t, err)

	for _, status := range []string{"resolved", "rejected"} {
		_, err = s.TransitionReport(context.Background(), caller, reportID, model.TransitionReportRequest{
			Status: status, Response: "again", ResolvedBy: resolvedBy,
		})
		assertAppErrorCode(t, err, http.StatusConflict)
	}
}

func TestConcurrentTransitionsExactlyOneWins(t *testing.T) {
	s, repo := newReportService(t)
	alice := createTestUser(t, s.repo, "alice@test.com", "Alice", entity.RoleUser)
	admin1 := createTestUser(t, s.repo, "admin1@test.com", "Admin One", entity.RoleAdmin)
	admin2 := createTestUser(t, s.repo, "admin2@test.com", "Admin Two", entity.RoleAdmin)

	created, err := s.CreateReport(context.Background(), callerFor(alice), validCreateRequest())
	require.NoError(t, err)
	reportID, err := helper.ParseID(created.ID)
	require.NoError(t, err)

	results := make([]error, 2)
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		_, results[0] = s.TransitionReport(context.Background(), callerFor(admin1), reportID, model.TransitionReportRequest{
			Status: "resolved", Response: "resolving", ResolvedBy: helper.FormatID(admin1.ID),
		})
	}()
	go func() {
		defer wg.Done()
		_, results[1] = s.TransitionReport(context.Background(), callerFor(admin2), reportID, model.TransitionReportRequest{
			Status: "rejected", Response: "rejecting", ResolvedBy: helper.FormatID(admin2.ID),
		})
	}()
	wg.Wait()

	var successes, conflicts int
	for _, err := range results {
		if err == nil {
			successes++
			continue
		}
		var appErr *helper.AppError
		require.ErrorAs(t, err, &appErr)
		require.Equal(t, http.StatusConflict, appErr.Code)
		conflicts++
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)

	stored, err := repo.Report.FindByID(context.Background(), reportID)
	require.NoError(t, err)
	assert.True(t, stored.Status.IsTerminal())
}

func TestPendingInvariant(t *testing.T) {
	s, repo := newReportService(t)
	alice := createTestUser(t, s.repo, "alice@test.com", "Alice", entity.RoleUser)

	created, err := s.CreateReport(context.Background(), callerFor(alice), validCreateRequest())
	require.NoError(t, err)
	reportID, err := helper.ParseID(created.ID)
	require.NoError(t, err)

	stored, err := repo.Report.FindByID(context.Background(), reportID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, stored.Status)
	assert.Nil(t, stored.ResolvedBy)
	assert.Nil(t, stored.ResolvedAt)
}
