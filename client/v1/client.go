package v1

type TimesheetClient struct {
	Transport   *Transport
	TimeEntries *TimeEntryEndpoint
	Catalog     *CatalogEndpoint
}

// NewTimesheetClient initializes the API client
func NewTimesheetClient(baseURL string, token string) *TimesheetClient {
	t := NewTransport(baseURL, token)
	return &TimesheetClient{
		Transport:   t,
		TimeEntries: &TimeEntryEndpoint{transport: t},
		Catalog:     &CatalogEndpoint{transport: t},
	}
}
