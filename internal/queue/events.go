package queue

import (
	"context"
	"time"
)

const EventsExchange = "restro.events"

// ReportGenerated is published after a report artifact is rendered and
// stored, so downstream consumers (notification service, audit log) can
// react without polling.
type ReportGenerated struct {
	RestaurantID string    `json:"restaurantId"`
	Format       string    `json:"format"`
	RangeLabel   string    `json:"rangeLabel"`
	ArtifactURL  string    `json:"artifactUrl,omitempty"`
	DataSource   string    `json:"dataSource"`
	GeneratedAt  time.Time `json:"generatedAt"`
}

func (c *Client) PublishReportGenerated(ctx context.Context, event ReportGenerated) error {
	return c.PublishJSON(ctx, EventsExchange, "report.generated", event)
}
