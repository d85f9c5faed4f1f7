package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"simata/metrics"
	"simata/models"
)

var (
	ErrStoreUnavailable  = errors.New("database tidak tersedia")
	ErrInvalidCollection = errors.New("nama koleksi tidak valid")
	ErrInvalidLimit      = errors.New("limit harus bilangan bulat positif")
)

const (
	// DefaultLimit dipakai jika query limit tidak diisi.
	DefaultLimit = 50

	DefaultTimeout = 10 * time.Second

	probeCollectionLimit = 10
	probeMessageLimit    = 80
)

// State is the lifecycle position of the process-wide store handle.
type State int32

const (
	StateUninitialized State = iota
	StateConnected
	StateOperational
	StateDegraded
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateConnected:
		return "connected"
	case StateOperational:
		return "operational"
	case StateDegraded:
		return "degraded"
	}
	return fmt.Sprintf("state(%d)", int32(s))
}

// Handle wraps the document store shared by every request handler.
// A nil store means the process started without a usable connection target.
type Handle struct {
	store   DocumentStore
	state   atomic.Int32
	timeout time.Duration
	metrics *metrics.Metrics
}

type Option func(*Handle)

// WithTimeout bounds each store call; zero or negative disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(h *Handle) { h.timeout = d }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(h *Handle) { h.metrics = m }
}

func NewHandle(store DocumentStore, opts ...Option) *Handle {
	h := &Handle{store: store, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(h)
	}
	if store != nil {
		h.state.Store(int32(StateConnected))
	}
	return h
}

func (h *Handle) State() State {
	if h == nil {
		return StateUninitialized
	}
	return State(h.state.Load())
}

func (h *Handle) available() bool {
	return h != nil && h.store != nil
}

func (h *Handle) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.timeout)
}

// track updates the lifecycle from an operation outcome: a success proves the
// store reachable, a network failure marks it degraded.
func (h *Handle) track(op string, start time.Time, err error) {
	h.metrics.ObserveOperation(op, start, err)
	switch {
	case err == nil:
		h.state.Store(int32(StateOperational))
	case mongo.IsNetworkError(err) || mongo.IsTimeout(err):
		h.state.Store(int32(StateDegraded))
	}
}

// Ping checks connectivity and moves the handle to operational or degraded.
func (h *Handle) Ping(ctx context.Context) error {
	if !h.available() {
		return ErrStoreUnavailable
	}
	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	err := h.store.Ping(ctx)
	h.metrics.ObserveOperation("ping", start, err)
	if err != nil {
		h.state.Store(int32(StateDegraded))
		return err
	}
	h.state.Store(int32(StateOperational))
	return nil
}

// Collections lists every collection name in the order the store reports
// them. An uninitialized handle yields an empty list, not an error.
func (h *Handle) Collections(ctx context.Context) ([]string, error) {
	if !h.available() {
		return []string{}, nil
	}
	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	names, err := h.store.ListCollectionNames(ctx)
	h.track("collections", start, err)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// Create inserts data as a new document and returns its identifier as text.
func (h *Handle) Create(ctx context.Context, collection string, data models.Fields) (string, error) {
	if err := ValidateCollectionName(collection); err != nil {
		return "", err
	}
	if !h.available() {
		return "", ErrStoreUnavailable
	}
	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	id, err := h.store.InsertOne(ctx, collection, data.BSON())
	h.track("create", start, err)
	if err != nil {
		return "", err
	}
	return models.IDText(id), nil
}

// List returns at most limit documents of collection in store order, with
// identifiers normalized to text. A missing collection yields an empty list.
func (h *Handle) List(ctx context.Context, collection string, limit int) ([]models.Fields, error) {
	if err := ValidateCollectionName(collection); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if !h.available() {
		return nil, ErrStoreUnavailable
	}
	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	docs, err := h.store.Find(ctx, collection, int64(limit))
	h.track("list", start, err)
	if err != nil {
		return nil, err
	}

	items := make([]models.Fields, 0, len(docs))
	for _, d := range docs {
		if len(items) == limit {
			break
		}
		items = append(items, models.DocumentFromBSON(d))
	}
	return items, nil
}

// ValidateCollectionName rejects names MongoDB would refuse before any
// round trip to the store.
func ValidateCollectionName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: nama koleksi kosong", ErrInvalidCollection)
	case strings.ContainsAny(name, "$\x00"):
		return fmt.Errorf("%w: %q mengandung karakter terlarang", ErrInvalidCollection, name)
	case strings.HasPrefix(name, "system."):
		return fmt.Errorf("%w: %q memakai prefix system.", ErrInvalidCollection, name)
	}
	return nil
}
