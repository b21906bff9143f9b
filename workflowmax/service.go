package workflowmax

// Service bundles the connectors that share one Client.
type Service struct {
	*StaffConnector
	*JobConnector
	*TimeConnector
}

var _ API = (*Service)(nil)

func NewService(cfg ClientConfig) (*Service, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &Service{
		StaffConnector: NewStaffConnector(client),
		JobConnector:   NewJobConnector(client),
		TimeConnector:  NewTimeConnector(client),
	}, nil
}
