package workflowmax_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"gowfm/internal/wfmtest"
	"gowfm/workflowmax"
)

func newTestService(t *testing.T, srv *wfmtest.Server, authorizer workflowmax.Authorizer) *workflowmax.Service {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	service, err := workflowmax.NewService(workflowmax.ClientConfig{
		Credentials: workflowmax.Credentials{APIKey: wfmtest.APIKey, AccountKey: wfmtest.AccountKey},
		BaseURL:     srv.URL,
		Authorizer:  authorizer,
		Logger:      logrus.NewEntry(logger),
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return service
}

func seededServer(t *testing.T) *wfmtest.Server {
	t.Helper()
	srv := wfmtest.Seeded()
	t.Cleanup(srv.Close)
	return srv
}

func TestListStaff_PreservesOrder(t *testing.T) {
	t.Parallel()

	srv := seededServer(t)
	service := newTestService(t, srv, nil)

	staff, err := service.ListStaff(context.Background())
	if err != nil {
		t.Fatalf("list staff: %v", err)
	}
	want := []workflowmax.Staff{
		{ID: "55918", Name: "Jane Doe", Email: "jane@example.com"},
		{ID: "55919", Name: "John Roe", Email: "john@example.com"},
	}
	if len(staff) != len(want) {
		t.Fatalf("expected %d staff, got %d", len(want), len(staff))
	}
	for i := range want {
		if staff[i] != want[i] {
			t.Fatalf("staff[%d]: expected %+v, got %+v", i, want[i], staff[i])
		}
	}
}

func TestListStaff_InvalidCredentials(t *testing.T) {
	t.Parallel()

	srv := seededServer(t)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	service, err := workflowmax.NewService(workflowmax.ClientConfig{
		Credentials: workflowmax.Credentials{APIKey: "wrong"},
		BaseURL:     srv.URL,
		Logger:      logrus.NewEntry(logger),
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = service.ListStaff(context.Background())
	var remote *workflowmax.RemoteError
	if !errors.As(err, &remote) || remote.Message != "Invalid API credentials" {
		t.Fatalf("expected RemoteError for credentials, got %v", err)
	}
}

func TestListJobsForStaff_OnlyTrackableByDefault(t *testing.T) {
	t.Parallel()

	srv := seededServer(t)
	service := newTestService(t, srv, nil)

	jobs, err := service.ListJobsForStaff(context.Background(), "55918")
	if err != nil {
		t.Fatalf("list jobs: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}

	job := jobs[0]
	if job.ID != "JOB00003" || job.ClientName != "Afterhours Ltd" || job.ProjectType != "Fixed" || job.Budget != 12500.50 {
		t.Fatalf("unexpected job mapping: %+v", job)
	}
	for _, j := range jobs {
		for _, task := range j.Tasks {
			if task.Completed {
				t.Fatalf("completed task %s returned for job %s", task.ID, j.ID)
			}
		}
	}
	if len(job.Tasks) != 2 || job.Tasks[0].ID != "6487447" || job.Tasks[1].ID != "6487449" {
		t.Fatalf("unexpected trackable tasks: %+v", job.Tasks)
	}
	if len(jobs[1].Tasks) != 0 {
		t.Fatalf("expected completed job to have no trackable tasks, got %+v", jobs[1].Tasks)
	}
}

func TestListJobsForStaff_AllTasks(t *testing.T) {
	t.Parallel()

	srv := seededServer(t)
	service := newTestService(t, srv, nil)

	jobs, err := service.ListJobsForStaff(context.Background(), "55918", workflowmax.WithAllTasks())
	if err != nil {
		t.Fatalf("list jobs: %v", err)
	}
	ids := make([]string, 0, 3)
	for _, task := range jobs[0].Tasks {
		ids = append(ids, task.ID)
	}
	if len(ids) != 3 || ids[0] != "6487447" || ids[1] != "6487448" || ids[2] != "6487449" {
		t.Fatalf("expected all tasks in source order, got %v", ids)
	}
	if !jobs[0].Tasks[1].Completed || jobs[0].Tasks[1].EstimatedMinutes != 600 {
		t.Fatalf("unexpected task mapping: %+v", jobs[0].Tasks[1])
	}
}

func TestListJobsForStaff_RequiresStaffID(t *testing.T) {
	t.Parallel()

	srv := seededServer(t)
	service := newTestService(t, srv, nil)

	_, err := service.ListJobsForStaff(context.Background(), "")
	var invalid *workflowmax.InvalidArgumentError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidArgumentError, got %v", err)
	}
	if got := len(srv.Requests()); got != 0 {
		t.Fatalf("expected no request, got %d", got)
	}
}

func TestListTimeForStaff(t *testing.T) {
	t.Parallel()

	srv := seededServer(t)
	service := newTestService(t, srv, nil)

	entries, err := service.ListTimeForStaff(context.Background(), "55918", "20121201", "20121231")
	if err != nil {
		t.Fatalf("list time: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d: %+v", len(entries), entries)
	}
	entry := entries[0]
	if entry.ID != "900" || entry.JobName != "Afterhours mobile" || entry.TaskName != "Development" ||
		entry.StaffName != "Jane Doe" || entry.Minutes != 90 || !entry.Billable || entry.Notes != "Kickoff" {
		t.Fatalf("unexpected entry mapping: %+v", entry)
	}
}

func TestListTimeForStaff_MissingParametersFailBeforeRequest(t *testing.T) {
	t.Parallel()

	srv := seededServer(t)
	service := newTestService(t, srv, nil)

	tests := []struct {
		name             string
		staff, from, to  string
		wantMissingParam string
	}{
		{name: "staff", staff: "", from: "20230101", to: "20230131", wantMissingParam: "staffID"},
		{name: "from", staff: "55918", from: "", to: "20230131", wantMissingParam: "from"},
		{name: "to", staff: "55918", from: "20230101", to: " ", wantMissingParam: "to"},
	}
	for _, tt := range tests {
		_, err := service.ListTimeForStaff(context.Background(), tt.staff, tt.from, tt.to)
		var invalid *workflowmax.InvalidArgumentError
		if !errors.As(err, &invalid) {
			t.Fatalf("%s: expected InvalidArgumentError, got %v", tt.name, err)
		}
		if len(invalid.Params) != 1 || invalid.Params[0] != tt.wantMissingParam {
			t.Fatalf("%s: unexpected params %v", tt.name, invalid.Params)
		}
	}
	if got := len(srv.Requests()); got != 0 {
		t.Fatalf("expected no request, got %d", got)
	}
}

func TestAddTimeEntry(t *testing.T) {
	t.Parallel()

	srv := seededServer(t)
	service := newTestService(t, srv, nil)

	entry, err := service.AddTimeEntry(context.Background(), workflowmax.TimesheetInput{
		JobID: "JOB00003", TaskID: "6487447", StaffID: "55918", Date: "20121218", Minutes: 60, Note: "Test note",
	})
	if err != nil {
		t.Fatalf("add time: %v", err)
	}
	if entry.Minutes != 60 || entry.Date != "20121218" || entry.Notes != "Test note" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry.ID == "" || entry.JobID != "JOB00003" || entry.TaskID != "6487447" || entry.StaffID != "55918" {
		t.Fatalf("unexpected references: %+v", entry)
	}
}

func TestAddTimeEntry_CompletedTaskRejectedRemotely(t *testing.T) {
	t.Parallel()

	srv := seededServer(t)
	service := newTestService(t, srv, nil)

	_, err := service.AddTimeEntry(context.Background(), workflowmax.TimesheetInput{
		JobID: "J000011", TaskID: "5738118", StaffID: "55918", Date: "20121218", Minutes: 60, Note: "Test note",
	})
	var remote *workflowmax.RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
	if got := len(srv.Requests()); got != 1 {
		t.Fatalf("expected the request to reach the service, got %d requests", got)
	}
}

func TestAddTimeEntry_RequiresAllFields(t *testing.T) {
	t.Parallel()

	srv := seededServer(t)
	service := newTestService(t, srv, nil)

	_, err := service.AddTimeEntry(context.Background(), workflowmax.TimesheetInput{JobID: "JOB00003"})
	var invalid *workflowmax.InvalidArgumentError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidArgumentError, got %v", err)
	}
	want := []string{"taskID", "staffID", "date", "minutes"}
	if len(invalid.Params) != len(want) {
		t.Fatalf("expected %v, got %v", want, invalid.Params)
	}
	for i := range want {
		if invalid.Params[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, invalid.Params)
		}
	}
}

func TestUpdateTimeEntry(t *testing.T) {
	t.Parallel()

	srv := seededServer(t)
	service := newTestService(t, srv, nil)

	entry, err := service.UpdateTimeEntry(context.Background(), "901", workflowmax.TimesheetInput{
		JobID: "JOB00003", TaskID: "6487449", StaffID: "55918", Date: "20130106", Minutes: 45, Note: "Regression tests",
	})
	if err != nil {
		t.Fatalf("update time: %v", err)
	}
	if entry.ID != "901" || entry.Minutes != 45 || entry.Date != "20130106" || entry.Notes != "Regression tests" {
		t.Fatalf("unexpected entry: %+v", entry)
	}

	requests := srv.Requests()
	last := requests[len(requests)-1]
	if last.Method != "PUT" || last.Path != "/time.api/update" {
		t.Fatalf("unexpected update request %s %s", last.Method, last.Path)
	}
}

func TestUpdateTimeEntry_UnknownID(t *testing.T) {
	t.Parallel()

	srv := seededServer(t)
	service := newTestService(t, srv, nil)

	_, err := service.UpdateTimeEntry(context.Background(), "does-not-exist", workflowmax.TimesheetInput{
		JobID: "JOB00003", TaskID: "6487449", StaffID: "55918", Date: "20130106", Minutes: 45,
	})
	var remote *workflowmax.RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
}

func TestDeleteTimeEntry(t *testing.T) {
	t.Parallel()

	srv := seededServer(t)
	service := newTestService(t, srv, nil)

	marker, err := service.DeleteTimeEntry(context.Background(), "900")
	if err != nil {
		t.Fatalf("delete time: %v", err)
	}
	if marker != workflowmax.DeleteDone {
		t.Fatalf("expected %q, got %q", workflowmax.DeleteDone, marker)
	}
	for _, entry := range srv.Entries() {
		if entry.ID == "900" {
			t.Fatal("expected entry 900 to be deleted")
		}
	}

	_, err = service.DeleteTimeEntry(context.Background(), "900")
	var remote *workflowmax.RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("expected RemoteError for second delete, got %v", err)
	}
}

func TestTimeOperations_DeniedByAuthorizer(t *testing.T) {
	t.Parallel()

	srv := seededServer(t)
	service := newTestService(t, srv, workflowmax.StaffAllowList{StaffIDs: []string{"55919"}})
	ctx := context.Background()

	_, err := service.ListTimeForStaff(ctx, "55918", "20121201", "20121231")
	if !errors.Is(err, workflowmax.ErrPermissionDenied) {
		t.Fatalf("expected permission error for list, got %v", err)
	}
	_, err = service.AddTimeEntry(ctx, workflowmax.TimesheetInput{
		JobID: "JOB00003", TaskID: "6487447", StaffID: "55918", Date: "20121218", Minutes: 60,
	})
	if !errors.Is(err, workflowmax.ErrPermissionDenied) {
		t.Fatalf("expected permission error for add, got %v", err)
	}
	_, err = service.DeleteTimeEntry(ctx, "900")
	var permErr *workflowmax.PermissionError
	if !errors.As(err, &permErr) || permErr.Action != workflowmax.ActionDeleteTime {
		t.Fatalf("expected delete permission error, got %v", err)
	}
	if got := len(srv.Requests()); got != 0 {
		t.Fatalf("expected no request, got %d", got)
	}

	if _, err := service.ListTimeForStaff(ctx, "55919", "20121201", "20121231"); err != nil {
		t.Fatalf("expected allowed staff to list time: %v", err)
	}
}
