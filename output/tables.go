package output

import (
	"strconv"

	"gowfm/workflowmax"
)

func StaffTable(staff []workflowmax.Staff) Table {
	table := Table{Headers: []string{"ID", "Name", "Email"}}
	for _, member := range staff {
		table.Rows = append(table.Rows, []string{member.ID, member.Name, member.Email})
	}
	return table
}

// JobsTable renders one row per task. Jobs without tasks get a single row
// with empty task columns.
func JobsTable(jobs []workflowmax.Job) Table {
	table := Table{Headers: []string{
		"JobID", "JobName", "Client", "State", "Type", "Budget", "StartDate", "DueDate",
		"TaskID", "TaskName", "EstimatedMinutes", "ActualMinutes", "Completed", "Billable",
	}}
	for _, job := range jobs {
		jobColumns := []string{
			job.ID,
			job.Name,
			job.ClientName,
			job.State,
			job.ProjectType,
			strconv.FormatFloat(job.Budget, 'f', 2, 64),
			job.StartDate,
			job.DueDate,
		}
		if len(job.Tasks) == 0 {
			table.Rows = append(table.Rows, append(jobColumns, "", "", "", "", "", ""))
			continue
		}
		for _, task := range job.Tasks {
			row := append(append([]string(nil), jobColumns...),
				task.ID,
				task.Name,
				strconv.Itoa(task.EstimatedMinutes),
				strconv.Itoa(task.ActualMinutes),
				strconv.FormatBool(task.Completed),
				strconv.FormatBool(task.Billable),
			)
			table.Rows = append(table.Rows, row)
		}
	}
	return table
}

func TimeEntriesTable(entries []workflowmax.TimeEntry) Table {
	table := Table{Headers: []string{
		"ID", "Date", "Minutes", "Billable", "JobID", "JobName", "TaskID", "TaskName", "StaffID", "StaffName", "Notes",
	}}
	for _, entry := range entries {
		table.Rows = append(table.Rows, []string{
			entry.ID,
			entry.Date,
			strconv.Itoa(entry.Minutes),
			strconv.FormatBool(entry.Billable),
			entry.JobID,
			entry.JobName,
			entry.TaskID,
			entry.TaskName,
			entry.StaffID,
			entry.StaffName,
			entry.Notes,
		})
	}
	return table
}

func DailySummaryTable(summaries []DailySummary) Table {
	table := Table{Headers: []string{"Date", "Minutes", "BillableMinutes", "Hours", "BillableHours", "EntryCount"}}
	for _, summary := range summaries {
		table.Rows = append(table.Rows, []string{
			summary.Date,
			strconv.Itoa(summary.Minutes),
			strconv.Itoa(summary.BillableMinutes),
			strconv.FormatFloat(summary.Hours, 'f', 2, 64),
			strconv.FormatFloat(summary.BillableHours, 'f', 2, 64),
			strconv.Itoa(summary.EntryCount),
		})
	}
	return table
}
