package location

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/codewithgaurave/hrms-console-go/internal/pkg/geo"
)

// Fix is a raw coordinate fix from the location capability.
type Fix struct {
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	AccuracyMeters float64   `json:"accuracy_meters"`
	CapturedAt     time.Time `json:"captured_at"`
}

// Options mirror the platform geolocation request options.
type Options struct {
	EnableHighAccuracy bool
	Timeout            time.Duration
	MaximumAge         time.Duration // 0 means never serve a cached fix
}

// DefaultOptions are the capture settings for punch workflows.
var DefaultOptions = Options{
	EnableHighAccuracy: true,
	Timeout:            15 * time.Second,
	MaximumAge:         0,
}

// Source produces one-shot coordinate fixes. Implementations must honor the
// context and return one of the capture errors on failure.
type Source interface {
	CurrentPosition(ctx context.Context, opts Options) (Fix, error)
}

// Geocoder resolves coordinates to a human-readable address.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (string, error)
}

// Reading is a captured location enriched with an address. Ephemeral: it lives
// only in workflow state and is never persisted by the console.
type Reading struct {
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	AccuracyMeters float64   `json:"accuracy_meters"`
	CapturedAt     time.Time `json:"captured_at"`
	Address        string    `json:"address"`
}

// Provider turns raw fixes into readings. A nil source means the platform has
// no location capability at all; a nil geocoder just skips address lookup.
type Provider struct {
	source   Source
	geocoder Geocoder
	opts     Options
}

func NewProvider(source Source, geocoder Geocoder) *Provider {
	return &Provider{
		source:   source,
		geocoder: geocoder,
		opts:     DefaultOptions,
	}
}

// Capture requests one fix and reverse-geocodes it. Geocoding failure never
// fails the capture: the address falls back to a coordinate string. No retries
// happen here; the caller decides whether to ask again.
func (p *Provider) Capture(ctx context.Context) (Reading, error) {
	if p.source == nil {
		return Reading{}, ErrUnsupported
	}

	ctx, cancel := context.WithTimeout(ctx, p.opts.Timeout)
	defer cancel()

	fix, err := p.source.CurrentPosition(ctx, p.opts)
	if err != nil {
		// Context failures fold into the capture error taxonomy so callers
		// never see a raw context error from a capture.
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			return Reading{}, ErrTimeout
		case errors.Is(err, context.Canceled):
			return Reading{}, ErrPositionUnavailable
		}
		return Reading{}, err
	}

	if fix.CapturedAt.IsZero() {
		fix.CapturedAt = time.Now()
	}

	reading := Reading{
		Latitude:       fix.Latitude,
		Longitude:      fix.Longitude,
		AccuracyMeters: fix.AccuracyMeters,
		CapturedAt:     fix.CapturedAt,
		Address:        p.resolveAddress(ctx, fix),
	}
	return reading, nil
}

func (p *Provider) resolveAddress(ctx context.Context, fix Fix) string {
	if p.geocoder != nil {
		address, err := p.geocoder.ReverseGeocode(ctx, fix.Latitude, fix.Longitude)
		if err == nil && address != "" {
			return address
		}
		if err != nil {
			slog.Warn("reverse geocoding failed, falling back to coordinates", "error", err)
		}
	}
	return geo.FormatCoordinates(fix.Latitude, fix.Longitude)
}

// FixSource adapts a fix the console UI already captured in the browser and
// forwarded with the request. It yields that fix exactly once per capture.
type FixSource struct {
	Fix Fix
	Err error
}

func (s FixSource) CurrentPosition(ctx context.Context, opts Options) (Fix, error) {
	if s.Err != nil {
		return Fix{}, s.Err
	}
	if err := ctx.Err(); err != nil {
		return Fix{}, err
	}
	return s.Fix, nil
}
