package workflowmax

import (
	"context"
	"encoding/xml"
	"net/http"
	"net/url"
)

// DeleteDone is returned by DeleteTimeEntry when the service accepted the delete.
const DeleteDone = "done"

type TimeEntry struct {
	ID        string
	JobID     string
	JobName   string
	TaskID    string
	TaskName  string
	StaffID   string
	StaffName string
	// Date uses the YYYYMMDD layout of the service.
	Date     string
	Minutes  int
	Billable bool
	Notes    string
}

// TimesheetInput holds the values of a time entry to create or update.
type TimesheetInput struct {
	JobID   string
	TaskID  string
	StaffID string
	Date    string
	Minutes int
	Note    string
}

func (in TimesheetInput) validate() error {
	missing := missingParams(
		"jobID", in.JobID,
		"taskID", in.TaskID,
		"staffID", in.StaffID,
		"date", in.Date,
	)
	if in.Minutes <= 0 {
		missing = append(missing, "minutes")
	}
	if len(missing) > 0 {
		return &InvalidArgumentError{Params: missing}
	}
	return nil
}

type timeNode struct {
	ID        string `xml:"ID"`
	JobID     string `xml:"Job>ID"`
	JobName   string `xml:"Job>Name"`
	TaskID    string `xml:"Task>ID"`
	TaskName  string `xml:"Task>Name"`
	StaffID   string `xml:"Staff>ID"`
	StaffName string `xml:"Staff>Name"`
	Date      string `xml:"Date"`
	Minutes   string `xml:"Minutes"`
	Billable  string `xml:"Billable"`
	Note      string `xml:"Note"`
}

type timeListResponse struct {
	Times []timeNode `xml:"Times>Time"`
}

type timeResponse struct {
	Time *timeNode `xml:"Time"`
}

// Tag order is part of the API contract.
type addTimesheetRequest struct {
	XMLName xml.Name `xml:"Timesheet"`
	Job     string   `xml:"Job"`
	Task    string   `xml:"Task"`
	Staff   string   `xml:"Staff"`
	Date    string   `xml:"Date"`
	Minutes int      `xml:"Minutes"`
	Note    string   `xml:"Note"`
}

type updateTimesheetRequest struct {
	XMLName xml.Name `xml:"Timesheet"`
	ID      string   `xml:"ID"`
	Job     string   `xml:"Job"`
	Task    string   `xml:"Task"`
	Staff   string   `xml:"Staff"`
	Date    string   `xml:"Date"`
	Minutes int      `xml:"Minutes"`
	Note    string   `xml:"Note"`
}

// TimeConnector reads and writes timesheet entries.
type TimeConnector struct {
	client *Client
}

func NewTimeConnector(client *Client) *TimeConnector {
	return &TimeConnector{client: client}
}

// ListTimeForStaff returns the time entries of a staff member between from
// and to (inclusive, YYYYMMDD). The dates are passed to the service unchecked.
func (t *TimeConnector) ListTimeForStaff(ctx context.Context, staffID, from, to string) ([]TimeEntry, error) {
	if err := requireParams("staffID", staffID, "from", from, "to", to); err != nil {
		return nil, err
	}
	if err := t.client.authorize(ctx, ActionListTime, staffID); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("from", from)
	query.Set("to", to)

	var out timeListResponse
	if err := t.client.doXML(ctx, http.MethodGet, "time.api/staff/"+url.PathEscape(staffID), query, nil, &out); err != nil {
		return nil, err
	}

	entries := make([]TimeEntry, 0, len(out.Times))
	for i := range out.Times {
		entry, err := parseTimeEntry(&out.Times[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// AddTimeEntry books time against a job task. Bookings on completed jobs or
// tasks are rejected by the service and surface as *RemoteError.
func (t *TimeConnector) AddTimeEntry(ctx context.Context, in TimesheetInput) (TimeEntry, error) {
	if err := in.validate(); err != nil {
		return TimeEntry{}, err
	}
	if err := t.client.authorize(ctx, ActionAddTime, in.StaffID); err != nil {
		return TimeEntry{}, err
	}

	payload := addTimesheetRequest{
		Job:     in.JobID,
		Task:    in.TaskID,
		Staff:   in.StaffID,
		Date:    in.Date,
		Minutes: in.Minutes,
		Note:    in.Note,
	}

	var out timeResponse
	if err := t.client.doXML(ctx, http.MethodPost, "time.api/add", nil, payload, &out); err != nil {
		return TimeEntry{}, err
	}
	return parseTimeEntry(out.Time)
}

// UpdateTimeEntry replaces all values of an existing time entry.
func (t *TimeConnector) UpdateTimeEntry(ctx context.Context, timeID string, in TimesheetInput) (TimeEntry, error) {
	if err := requireParams("timeID", timeID); err != nil {
		return TimeEntry{}, err
	}
	if err := in.validate(); err != nil {
		return TimeEntry{}, err
	}
	if err := t.client.authorize(ctx, ActionUpdateTime, in.StaffID); err != nil {
		return TimeEntry{}, err
	}

	payload := updateTimesheetRequest{
		ID:      timeID,
		Job:     in.JobID,
		Task:    in.TaskID,
		Staff:   in.StaffID,
		Date:    in.Date,
		Minutes: in.Minutes,
		Note:    in.Note,
	}

	var out timeResponse
	if err := t.client.doXML(ctx, http.MethodPut, "time.api/update", nil, payload, &out); err != nil {
		return TimeEntry{}, err
	}
	return parseTimeEntry(out.Time)
}

// DeleteTimeEntry removes a time entry and returns DeleteDone.
func (t *TimeConnector) DeleteTimeEntry(ctx context.Context, timeID string) (string, error) {
	if err := requireParams("timeID", timeID); err != nil {
		return "", err
	}
	if err := t.client.authorize(ctx, ActionDeleteTime, ""); err != nil {
		return "", err
	}

	if err := t.client.doXML(ctx, http.MethodDelete, "time.api/delete/"+url.PathEscape(timeID), nil, nil, nil); err != nil {
		return "", err
	}
	return DeleteDone, nil
}

func parseTimeEntry(node *timeNode) (TimeEntry, error) {
	if node == nil {
		return TimeEntry{}, ErrEmptyInput
	}

	minutes, err := parseIntField("Time", "Minutes", node.Minutes)
	if err != nil {
		return TimeEntry{}, err
	}
	billable, err := parseBoolField("Time", "Billable", node.Billable)
	if err != nil {
		return TimeEntry{}, err
	}

	return TimeEntry{
		ID:        node.ID,
		JobID:     node.JobID,
		JobName:   node.JobName,
		TaskID:    node.TaskID,
		TaskName:  node.TaskName,
		StaffID:   node.StaffID,
		StaffName: node.StaffName,
		Date:      node.Date,
		Minutes:   minutes,
		Billable:  billable,
		Notes:     node.Note,
	}, nil
}
