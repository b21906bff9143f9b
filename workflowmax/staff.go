package workflowmax

import (
	"context"
	"net/http"
)

type Staff struct {
	ID    string
	Name  string
	Email string
}

type staffNode struct {
	ID    string `xml:"ID"`
	Name  string `xml:"Name"`
	Email string `xml:"Email"`
}

type staffListResponse struct {
	StaffList []staffNode `xml:"StaffList>Staff"`
}

// StaffConnector reads staff members.
type StaffConnector struct {
	client *Client
}

func NewStaffConnector(client *Client) *StaffConnector {
	return &StaffConnector{client: client}
}

// ListStaff returns all staff members in the order the service lists them.
func (s *StaffConnector) ListStaff(ctx context.Context) ([]Staff, error) {
	var out staffListResponse
	if err := s.client.doXML(ctx, http.MethodGet, "staff.api/list", nil, nil, &out); err != nil {
		return nil, err
	}

	staff := make([]Staff, 0, len(out.StaffList))
	for _, node := range out.StaffList {
		staff = append(staff, Staff{
			ID:    node.ID,
			Name:  node.Name,
			Email: node.Email,
		})
	}
	return staff, nil
}
