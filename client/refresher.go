package client

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// refreshTimeout bounds one background refresh pass.
const refreshTimeout = 30 * time.Second

// Refresher keeps the default list and the derived lookup caches warm on a
// cron schedule, so interactive reads keep hitting cache instead of the
// network. Optional: construct one only when a schedule is configured.
type Refresher struct {
	cron   *cron.Cron
	client *Client
}

// NewRefresher registers the refresh job under the given cron spec
// (e.g. "@every 15m").
func NewRefresher(c *Client, schedule string) (*Refresher, error) {
	r := &Refresher{
		cron:   cron.New(),
		client: c,
	}
	if _, err := r.cron.AddFunc(schedule, r.refresh); err != nil {
		return nil, err
	}
	return r, nil
}

// Start begins the schedule.
func (r *Refresher) Start() {
	log.Println("Starting cache refresh job...")
	r.cron.Start()
}

// Stop halts the schedule and waits for a running pass to finish.
func (r *Refresher) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	log.Println("Cache refresh job stopped")
}

// refresh drops every bucket and re-reads the interactive hot paths. The
// reads repopulate the cache themselves; failures degrade to sample data
// exactly as they do for foreground callers.
func (r *Refresher) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	r.client.ClearCache()
	r.client.ListUniversities(ctx, 0, r.client.pageSize, "", "", "")
	r.client.GetLocations(ctx)
	r.client.GetTypes(ctx)
}
