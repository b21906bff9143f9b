package workflowmax

import (
	"context"
	"net/http"
	"net/url"
)

type Job struct {
	ID          string
	Name        string
	Description string
	ClientName  string
	Budget      float64
	ProjectType string
	State       string
	StartDate   string
	DueDate     string
	Tasks       []Task
}

type Task struct {
	ID               string
	Name             string
	Description      string
	EstimatedMinutes int
	ActualMinutes    int
	Completed        bool
	Billable         bool
}

// Trackable reports whether time can still be booked against the task.
func (t Task) Trackable() bool {
	return !t.Completed
}

type jobNode struct {
	ID          string     `xml:"ID"`
	Name        string     `xml:"Name"`
	Description string     `xml:"Description"`
	ClientName  string     `xml:"Client>Name"`
	Budget      string     `xml:"Budget"`
	Type        string     `xml:"Type"`
	State       string     `xml:"State"`
	StartDate   string     `xml:"StartDate"`
	DueDate     string     `xml:"DueDate"`
	Tasks       []taskNode `xml:"Tasks>Task"`
}

type taskNode struct {
	ID               string `xml:"ID"`
	Name             string `xml:"Name"`
	Description      string `xml:"Description"`
	EstimatedMinutes string `xml:"EstimatedMinutes"`
	ActualMinutes    string `xml:"ActualMinutes"`
	Completed        string `xml:"Completed"`
	Billable         string `xml:"Billable"`
}

type jobListResponse struct {
	Jobs []jobNode `xml:"Jobs>Job"`
}

type jobOptions struct {
	onlyTrackable bool
}

// JobOption changes how ListJobsForStaff maps tasks.
type JobOption func(*jobOptions)

// OnlyTrackable drops completed tasks when enabled. It is enabled by default.
func OnlyTrackable(enabled bool) JobOption {
	return func(o *jobOptions) {
		o.onlyTrackable = enabled
	}
}

// WithAllTasks keeps completed tasks in the result.
func WithAllTasks() JobOption {
	return OnlyTrackable(false)
}

// JobConnector reads the jobs assigned to staff members.
type JobConnector struct {
	client *Client
}

func NewJobConnector(client *Client) *JobConnector {
	return &JobConnector{client: client}
}

// ListJobsForStaff returns the jobs a staff member is assigned to. Unless
// WithAllTasks is given, completed tasks are left out of each job.
func (j *JobConnector) ListJobsForStaff(ctx context.Context, staffID string, opts ...JobOption) ([]Job, error) {
	if err := requireParams("staffID", staffID); err != nil {
		return nil, err
	}

	options := jobOptions{onlyTrackable: true}
	for _, opt := range opts {
		opt(&options)
	}

	var out jobListResponse
	if err := j.client.doXML(ctx, http.MethodGet, "job.api/staff/"+url.PathEscape(staffID), nil, nil, &out); err != nil {
		return nil, err
	}

	jobs := make([]Job, 0, len(out.Jobs))
	for i := range out.Jobs {
		job, err := parseJob(&out.Jobs[i], options.onlyTrackable)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func parseJob(node *jobNode, onlyTrackable bool) (Job, error) {
	if node == nil {
		return Job{}, ErrEmptyInput
	}

	budget, err := parseFloatField("Job", "Budget", node.Budget)
	if err != nil {
		return Job{}, err
	}

	job := Job{
		ID:          node.ID,
		Name:        node.Name,
		Description: node.Description,
		ClientName:  node.ClientName,
		Budget:      budget,
		ProjectType: node.Type,
		State:       node.State,
		StartDate:   node.StartDate,
		DueDate:     node.DueDate,
		Tasks:       make([]Task, 0, len(node.Tasks)),
	}

	for i := range node.Tasks {
		task, err := parseTask(&node.Tasks[i])
		if err != nil {
			return Job{}, err
		}
		if onlyTrackable && !task.Trackable() {
			continue
		}
		job.Tasks = append(job.Tasks, task)
	}
	return job, nil
}

func parseTask(node *taskNode) (Task, error) {
	if node == nil {
		return Task{}, ErrEmptyInput
	}

	estimated, err := parseIntField("Task", "EstimatedMinutes", node.EstimatedMinutes)
	if err != nil {
		return Task{}, err
	}
	actual, err := parseIntField("Task", "ActualMinutes", node.ActualMinutes)
	if err != nil {
		return Task{}, err
	}
	completed, err := parseBoolField("Task", "Completed", node.Completed)
	if err != nil {
		return Task{}, err
	}
	billable, err := parseBoolField("Task", "Billable", node.Billable)
	if err != nil {
		return Task{}, err
	}

	return Task{
		ID:               node.ID,
		Name:             node.Name,
		Description:      node.Description,
		EstimatedMinutes: estimated,
		ActualMinutes:    actual,
		Completed:        completed,
		Billable:         billable,
	}, nil
}
