package repository

import (
	"context"
	"fmt"
	"time"
)

// Target is the connection configuration reported by the health probe.
type Target struct {
	URLSet bool
	Name   string
}

// Diagnostics adalah isi respons GET /test.
type Diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Probe reports store availability for operators. It never fails: every
// problem is described in the returned status strings instead.
func (h *Handle) Probe(ctx context.Context, target Target) (d Diagnostics) {
	d = Diagnostics{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}
	defer func() {
		if r := recover(); r != nil {
			d.Database = "❌ Error: " + truncate(fmt.Sprint(r), probeMessageLimit)
		}
	}()

	if !h.available() {
		if target.URLSet {
			d.Database = "⚠️  Available but not initialized"
		}
		return d
	}

	url := "❌ Not Set"
	if target.URLSet {
		url = "✅ Set"
	}
	name := target.Name
	if name == "" {
		name = "❌ Not Set"
	}
	d.DatabaseURL = &url
	d.DatabaseName = &name
	d.Database = "✅ Available"
	d.ConnectionStatus = "Connected"

	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	names, err := h.store.ListCollectionNames(ctx)
	h.metrics.ObserveOperation("probe", start, err)
	if err != nil {
		h.state.Store(int32(StateDegraded))
		d.Database = "⚠️  Connected but Error: " + truncate(err.Error(), probeMessageLimit)
		return d
	}
	h.state.Store(int32(StateOperational))

	if len(names) > probeCollectionLimit {
		names = names[:probeCollectionLimit]
	}
	if names != nil {
		d.Collections = names
	}
	d.Database = "✅ Connected & Working"
	return d
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
