package wfmtest

import (
	"encoding/xml"
	"net/http"
)

type statusXML struct {
	XMLName xml.Name `xml:"Response"`
	Status  string   `xml:"Status"`
}

type errorXML struct {
	XMLName          xml.Name `xml:"Response"`
	Status           string   `xml:"Status"`
	ErrorDescription string   `xml:"ErrorDescription"`
}

type staffXML struct {
	ID    string `xml:"ID"`
	Name  string `xml:"Name"`
	Email string `xml:"Email"`
}

type staffListXML struct {
	XMLName xml.Name   `xml:"Response"`
	Status  string     `xml:"Status"`
	Staff   []staffXML `xml:"StaffList>Staff"`
}

type taskXML struct {
	ID               string `xml:"ID"`
	Name             string `xml:"Name"`
	Description      string `xml:"Description"`
	EstimatedMinutes string `xml:"EstimatedMinutes"`
	ActualMinutes    string `xml:"ActualMinutes"`
	Completed        string `xml:"Completed"`
	Billable         string `xml:"Billable"`
}

type jobXML struct {
	ID          string    `xml:"ID"`
	Name        string    `xml:"Name"`
	Description string    `xml:"Description"`
	ClientName  string    `xml:"Client>Name"`
	Budget      string    `xml:"Budget"`
	Type        string    `xml:"Type"`
	State       string    `xml:"State"`
	StartDate   string    `xml:"StartDate"`
	DueDate     string    `xml:"DueDate"`
	Tasks       []taskXML `xml:"Tasks>Task"`
}

type jobListXML struct {
	XMLName xml.Name `xml:"Response"`
	Status  string   `xml:"Status"`
	Jobs    []jobXML `xml:"Jobs>Job"`
}

type refXML struct {
	ID   string `xml:"ID"`
	Name string `xml:"Name"`
}

type timeXML struct {
	ID       string `xml:"ID"`
	Job      refXML `xml:"Job"`
	Task     refXML `xml:"Task"`
	Staff    refXML `xml:"Staff"`
	Date     string `xml:"Date"`
	Minutes  string `xml:"Minutes"`
	Billable string `xml:"Billable"`
	Note     string `xml:"Note"`
}

type timeListXML struct {
	XMLName xml.Name  `xml:"Response"`
	Status  string    `xml:"Status"`
	Times   []timeXML `xml:"Times>Time"`
}

type timeXMLResponse struct {
	XMLName xml.Name `xml:"Response"`
	Status  string   `xml:"Status"`
	Time    timeXML  `xml:"Time"`
}

type timesheetXML struct {
	XMLName xml.Name `xml:"Timesheet"`
	ID      string   `xml:"ID"`
	Job     string   `xml:"Job"`
	Task    string   `xml:"Task"`
	Staff   string   `xml:"Staff"`
	Date    string   `xml:"Date"`
	Minutes int      `xml:"Minutes"`
	Note    string   `xml:"Note"`
}

func writeXML(w http.ResponseWriter, payload any) {
	body, err := xml.Marshal(payload)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(xml.Header))
	_, _ = w.Write(body)
}

func writeError(w http.ResponseWriter, message string) {
	writeXML(w, errorXML{Status: "ERROR", ErrorDescription: message})
}
