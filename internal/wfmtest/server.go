// Package wfmtest runs an in-process fake of the WorkflowMax XML API for tests.
package wfmtest

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/gorilla/mux"
)

const (
	APIKey     = "test-api-key"
	AccountKey = "test-account-key"
)

type StaffMember struct {
	ID    string
	Name  string
	Email string
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

type Job struct {
	ID          string
	Name        string
	Description string
	ClientName  string
	Budget      string
	Type        string
	State       string
	StartDate   string
	DueDate     string
	StaffIDs    []string
	Tasks       []Task
}

type Entry struct {
	ID      string
	JobID   string
	TaskID  string
	StaffID string
	Date    string
	Minutes int
	Note    string
}

// Request records what the fake received.
type Request struct {
	Method string
	Path   string
	Query  string
	Body   string
}

// Server is the fake API. Seed Staff, Jobs and Entries before issuing requests.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	staff    []StaffMember
	jobs     []Job
	entries  []Entry
	nextID   int
	requests []Request
}

func NewServer() *Server {
	s := &Server{nextID: 1000}

	router := mux.NewRouter()
	router.Use(s.record, s.authenticate)
	router.HandleFunc("/staff.api/list", s.listStaff).Methods(http.MethodGet)
	router.HandleFunc("/job.api/staff/{id}", s.listJobs).Methods(http.MethodGet)
	router.HandleFunc("/time.api/staff/{id}", s.listTimes).Methods(http.MethodGet)
	router.HandleFunc("/time.api/add", s.addTime).Methods(http.MethodPost)
	router.HandleFunc("/time.api/update", s.updateTime).Methods(http.MethodPut)
	router.HandleFunc("/time.api/delete/{id}", s.deleteTime).Methods(http.MethodDelete)

	s.Server = httptest.NewServer(router)
	return s
}

// Seeded returns a server with the fixture data used across the test suite.
func Seeded() *Server {
	s := NewServer()
	s.AddStaff(
		StaffMember{ID: "55918", Name: "Jane Doe", Email: "jane@example.com"},
		StaffMember{ID: "55919", Name: "John Roe", Email: "john@example.com"},
	)
	s.AddJobs(
		Job{
			ID: "JOB00003", Name: "Afterhours mobile", Description: "Mobile app", ClientName: "Afterhours Ltd",
			Budget: "12500.50", Type: "Fixed", State: "In Progress", StartDate: "2012-11-01T00:00:00", DueDate: "2013-02-28T00:00:00",
			StaffIDs: []string{"55918"},
			Tasks: []Task{
				{ID: "6487447", Name: "Development", EstimatedMinutes: 6000, ActualMinutes: 1200, Billable: true},
				{ID: "6487448", Name: "Design", EstimatedMinutes: 600, ActualMinutes: 600, Completed: true, Billable: true},
				{ID: "6487449", Name: "Testing", EstimatedMinutes: 900, ActualMinutes: 0},
			},
		},
		Job{
			ID: "J000011", Name: "Website relaunch", ClientName: "Example Corp", Budget: "0", Type: "Time and Materials",
			State: "Completed", StaffIDs: []string{"55918", "55919"},
			Tasks: []Task{
				{ID: "5738118", Name: "Development", EstimatedMinutes: 120, ActualMinutes: 180, Completed: true, Billable: true},
			},
		},
	)
	s.AddEntries(
		Entry{ID: "900", JobID: "JOB00003", TaskID: "6487447", StaffID: "55918", Date: "20121217", Minutes: 90, Note: "Kickoff"},
		Entry{ID: "901", JobID: "JOB00003", TaskID: "6487449", StaffID: "55918", Date: "20130105", Minutes: 30, Note: "Smoke tests"},
		Entry{ID: "902", JobID: "JOB00003", TaskID: "6487447", StaffID: "55919", Date: "20121217", Minutes: 45},
	)
	return s
}

func (s *Server) AddStaff(staff ...StaffMember) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staff = append(s.staff, staff...)
}

func (s *Server) AddJobs(jobs ...Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, jobs...)
}

func (s *Server) AddEntries(entries ...Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entries...)
}

// Entries returns a copy of the stored time entries.
func (s *Server) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Entry(nil), s.entries...)
}

// Requests returns a copy of all requests received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Body:   string(body),
		})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("apiKey") != APIKey || query.Get("accountKey") != AccountKey {
			writeError(w, "Invalid API credentials")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) listStaff(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := staffListXML{Status: "SUCCESS"}
	for _, member := range s.staff {
		out.Staff = append(out.Staff, staffXML(member))
	}
	writeXML(w, out)
}

func (s *Server) listJobs(w http.ResponseWriter, r *http.Request) {
	staffID := mux.Vars(r)["id"]

	s.mu.Lock()
	defer s.mu.Unlock()

	out := jobListXML{Status: "SUCCESS"}
	for _, job := range s.jobs {
		if !contains(job.StaffIDs, staffID) {
			continue
		}
		node := jobXML{
			ID: job.ID, Name: job.Name, Description: job.Description, ClientName: job.ClientName,
			Budget: job.Budget, Type: job.Type, State: job.State, StartDate: job.StartDate, DueDate: job.DueDate,
		}
		for _, task := range job.Tasks {
			node.Tasks = append(node.Tasks, taskXML{
				ID: task.ID, Name: task.Name, Description: task.Description,
				EstimatedMinutes: strconv.Itoa(task.EstimatedMinutes),
				ActualMinutes:    strconv.Itoa(task.ActualMinutes),
				Completed:        strconv.FormatBool(task.Completed),
				Billable:         strconv.FormatBool(task.Billable),
			})
		}
		out.Jobs = append(out.Jobs, node)
	}
	writeXML(w, out)
}

func (s *Server) listTimes(w http.ResponseWriter, r *http.Request) {
	staffID := mux.Vars(r)["id"]
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		writeError(w, "from and to are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := timeListXML{Status: "SUCCESS"}
	for _, entry := range s.entries {
		if entry.StaffID != staffID || entry.Date < from || entry.Date > to {
			continue
		}
		out.Times = append(out.Times, s.timeXMLLocked(entry))
	}
	writeXML(w, out)
}

func (s *Server) addTime(w http.ResponseWriter, r *http.Request) {
	var in timesheetXML
	if err := xml.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, "Invalid timesheet: "+err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if msg := s.checkBookableLocked(in); msg != "" {
		writeError(w, msg)
		return
	}

	s.nextID++
	entry := Entry{
		ID: strconv.Itoa(s.nextID), JobID: in.Job, TaskID: in.Task, StaffID: in.Staff,
		Date: in.Date, Minutes: in.Minutes, Note: in.Note,
	}
	s.entries = append(s.entries, entry)
	writeXML(w, timeXMLResponse{Status: "SUCCESS", Time: s.timeXMLLocked(entry)})
}

func (s *Server) updateTime(w http.ResponseWriter, r *http.Request) {
	var in timesheetXML
	if err := xml.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, "Invalid timesheet: "+err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.entryIndexLocked(in.ID)
	if idx < 0 {
		writeError(w, fmt.Sprintf("Time entry %s not found", in.ID))
		return
	}
	if msg := s.checkBookableLocked(in); msg != "" {
		writeError(w, msg)
		return
	}

	entry := Entry{
		ID: in.ID, JobID: in.Job, TaskID: in.Task, StaffID: in.Staff,
		Date: in.Date, Minutes: in.Minutes, Note: in.Note,
	}
	s.entries[idx] = entry
	writeXML(w, timeXMLResponse{Status: "SUCCESS", Time: s.timeXMLLocked(entry)})
}

func (s *Server) deleteTime(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.entryIndexLocked(id)
	if idx < 0 {
		writeError(w, fmt.Sprintf("Time entry %s not found", id))
		return
	}
	entry := s.entries[idx]
	if job, ok := s.jobLocked(entry.JobID); ok && job.State == "Completed" {
		writeError(w, "Time entries of completed jobs cannot be deleted")
		return
	}

	s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
	writeXML(w, statusXML{Status: "SUCCESS"})
}

func (s *Server) checkBookableLocked(in timesheetXML) string {
	job, ok := s.jobLocked(in.Job)
	if !ok {
		return fmt.Sprintf("Job %s not found", in.Job)
	}
	task, ok := findTask(job, in.Task)
	if !ok {
		return fmt.Sprintf("Task %s not found on job %s", in.Task, in.Job)
	}
	if task.Completed {
		return fmt.Sprintf("Task %s is completed", in.Task)
	}
	if s.staffLocked(in.Staff).ID == "" {
		return fmt.Sprintf("Staff %s not found", in.Staff)
	}
	return ""
}

func (s *Server) timeXMLLocked(entry Entry) timeXML {
	node := timeXML{
		ID:       entry.ID,
		Date:     entry.Date,
		Minutes:  strconv.Itoa(entry.Minutes),
		Billable: "false",
		Note:     entry.Note,
	}
	node.Job.ID = entry.JobID
	node.Task.ID = entry.TaskID
	node.Staff.ID = entry.StaffID
	node.Staff.Name = s.staffLocked(entry.StaffID).Name
	if job, ok := s.jobLocked(entry.JobID); ok {
		node.Job.Name = job.Name
		if task, ok := findTask(job, entry.TaskID); ok {
			node.Task.Name = task.Name
			node.Billable = strconv.FormatBool(task.Billable)
		}
	}
	return node
}

func (s *Server) entryIndexLocked(id string) int {
	for i, entry := range s.entries {
		if entry.ID == id {
			return i
		}
	}
	return -1
}

func (s *Server) jobLocked(id string) (Job, bool) {
	for _, job := range s.jobs {
		if job.ID == id {
			return job, true
		}
	}
	return Job{}, false
}

func (s *Server) staffLocked(id string) StaffMember {
	for _, member := range s.staff {
		if member.ID == id {
			return member
		}
	}
	return StaffMember{}
}

func findTask(job Job, id string) (Task, bool) {
	for _, task := range job.Tasks {
		if task.ID == id {
			return task, true
		}
	}
	return Task{}, false
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
