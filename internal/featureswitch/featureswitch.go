// Package featureswitch serves the runtime toggles that gate custody writes.
// Defaults come from configuration; operators override them at runtime and
// overrides are shared by every instance through Redis.
package featureswitch

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"casework/internal/platform/config"
	dErrors "casework/pkg/domain-errors"
	"casework/pkg/requestcontext"
)

// Name identifies a switch.
type Name string

const (
	CustodyUpdate            Name = "custody-update"
	BookingNumberUpdate      Name = "booking-number-update"
	MultiEventKeyDateUpdate  Name = "multi-event-key-date-update"
	MultiEventLocationUpdate Name = "multi-event-location-update"
)

// OverrideStore holds operator overrides.
type OverrideStore interface {
	Get(ctx context.Context, name Name) (enabled bool, found bool, err error)
	Set(ctx context.Context, name Name, enabled bool) error
	Delete(ctx context.Context, name Name) error
	All(ctx context.Context) (map[Name]bool, error)
}

// Switch is the resolved state of one toggle.
type Switch struct {
	Name       Name `json:"name"`
	Enabled    bool `json:"enabled"`
	Default    bool `json:"default"`
	Overridden bool `json:"overridden"`
}

// Service resolves switches. A failing override store falls back to the
// configured default so a Redis outage never changes behaviour.
type Service struct {
	defaults  map[Name]bool
	overrides OverrideStore
	logger    *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func New(defaults config.Features, overrides OverrideStore, opts ...Option) (*Service, error) {
	if overrides == nil {
		return nil, fmt.Errorf("override store is required")
	}
	s := &Service{
		defaults: map[Name]bool{
			CustodyUpdate:            defaults.CustodyUpdate,
			BookingNumberUpdate:      defaults.BookingNumberUpdate,
			MultiEventKeyDateUpdate:  defaults.MultiEventKeyDateUpdate,
			MultiEventLocationUpdate: defaults.MultiEventLocationUpdate,
		},
		overrides: overrides,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Enabled returns the override when present, else the default.
func (s *Service) Enabled(ctx context.Context, name Name) bool {
	def := s.defaults[name]
	v, found, err := s.overrides.Get(ctx, name)
	if err != nil {
		s.logger.WarnContext(ctx, "feature switch override unavailable, using default",
			"request_id", requestcontext.RequestID(ctx),
			"switch", name,
			"error", err,
		)
		return def
	}
	if found {
		return v
	}
	return def
}

func (s *Service) CustodyUpdateEnabled(ctx context.Context) bool {
	return s.Enabled(ctx, CustodyUpdate)
}

func (s *Service) BookingNumberUpdateEnabled(ctx context.Context) bool {
	return s.Enabled(ctx, BookingNumberUpdate)
}

func (s *Service) MultiEventKeyDateUpdateEnabled(ctx context.Context) bool {
	return s.Enabled(ctx, MultiEventKeyDateUpdate)
}

func (s *Service) MultiEventLocationUpdateEnabled(ctx context.Context) bool {
	return s.Enabled(ctx, MultiEventLocationUpdate)
}

// Get returns the resolved state of one switch.
func (s *Service) Get(ctx context.Context, name Name) (Switch, error) {
	def, ok := s.defaults[name]
	if !ok {
		return Switch{}, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("feature switch %s not found", name))
	}
	v, found, err := s.overrides.Get(ctx, name)
	if err != nil {
		return Switch{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read feature switch override")
	}
	sw := Switch{Name: name, Enabled: def, Default: def, Overridden: found}
	if found {
		sw.Enabled = v
	}
	return sw, nil
}

// List returns every switch sorted by name.
func (s *Service) List(ctx context.Context) ([]Switch, error) {
	overrides, err := s.overrides.All(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read feature switch overrides")
	}
	out := make([]Switch, 0, len(s.defaults))
	for name, def := range s.defaults {
		sw := Switch{Name: name, Enabled: def, Default: def}
		if v, ok := overrides[name]; ok {
			sw.Enabled, sw.Overridden = v, true
		}
		out = append(out, sw)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Set overrides a switch for every instance.
func (s *Service) Set(ctx context.Context, name Name, enabled bool) (Switch, error) {
	if _, ok := s.defaults[name]; !ok {
		return Switch{}, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("feature switch %s not found", name))
	}
	if err := s.overrides.Set(ctx, name, enabled); err != nil {
		return Switch{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store feature switch override")
	}
	s.logger.InfoContext(ctx, "feature switch overridden",
		"request_id", requestcontext.RequestID(ctx),
		"switch", name,
		"enabled", enabled,
	)
	return s.Get(ctx, name)
}

// Reset removes the override so the configured default applies again.
func (s *Service) Reset(ctx context.Context, name Name) (Switch, error) {
	if _, ok := s.defaults[name]; !ok {
		return Switch{}, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("feature switch %s not found", name))
	}
	if err := s.overrides.Delete(ctx, name); err != nil {
		return Switch{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete feature switch override")
	}
	s.logger.InfoContext(ctx, "feature switch reset",
		"request_id", requestcontext.RequestID(ctx),
		"switch", name,
	)
	return s.Get(ctx, name)
}
