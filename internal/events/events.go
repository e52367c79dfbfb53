package events

// Event is the payload pushed to connected dashboard clients, replacing
// the fixed-interval polling the old client did.
type Event struct {
	Name string      `json:"event"`
	Data interface{} `json:"data,omitempty"`
}

const (
	ReportSubmitted   = "report.submitted"
	ReportVerified    = "report.verified"
	ReportDeclined    = "report.declined"
	ReportResolved    = "report.resolved"
	ClaimRequested    = "claim.requested"
	ClaimProcessed    = "claim.processed"
	ResponderApproved = "responder.approved"
	ResponderDeclined = "responder.declined"
)

// Publisher fans an event out to whoever is listening. Publishing is fire
// and forget: a slow or absent listener never blocks a request.
type Publisher interface {
	Publish(event Event)
}

// NopPublisher discards events; used in tests.
type NopPublisher struct{}

func (NopPublisher) Publish(Event) {}
