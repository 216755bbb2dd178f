package queries

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"logistics/internal/core/ports"

	"golang.org/x/sync/singleflight"
)

const DefaultTrackingCacheTTL = time.Minute

// TrackShipmentQueryHandler serves tracking snapshots through a cache.
// Concurrent misses for one tracking number share a single database read.
// A failing cache degrades to direct reads.
type TrackShipmentQueryHandler struct {
	shipments ShipmentReader
	cache     ports.Cache
	ttl       time.Duration
	group     *singleflight.Group
	logger    *slog.Logger
}

// NewTrackShipmentQueryHandler accepts a nil cache.
func NewTrackShipmentQueryHandler(
	shipments ShipmentReader,
	cache ports.Cache,
	ttl time.Duration,
	logger *slog.Logger,
) TrackShipmentQueryHandler {
	if ttl <= 0 {
		ttl = DefaultTrackingCacheTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return TrackShipmentQueryHandler{
		shipments: shipments,
		cache:     cache,
		ttl:       ttl,
		group:     &singleflight.Group{},
		logger:    logger.With("component", "track_shipment"),
	}
}

func (h TrackShipmentQueryHandler) Handle(
	ctx context.Context,
	query TrackShipmentQuery,
) (TrackShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackShipmentQueryResponse{}, err
	}

	key := ports.TrackingSnapshotKey(query.trackingNumber.String())
	if snapshot, ok := h.fromCache(ctx, key); ok {
		return snapshot, nil
	}

	// Callers share one load, so it must outlive the request that started it.
	shared := context.WithoutCancel(ctx)
	v, err, _ := h.group.Do(key, func() (any, error) {
		s, err := h.shipments.GetByTrackingNumber(shared, query.trackingNumber)
		if err != nil {
			return nil, err
		}
		snapshot := newTrackingSnapshot(s)
		h.toCache(shared, key, snapshot)
		return snapshot, nil
	})
	if err != nil {
		return TrackShipmentQueryResponse{}, err
	}
	return v.(TrackShipmentQueryResponse), nil
}

func (h TrackShipmentQueryHandler) fromCache(ctx context.Context, key string) (TrackShipmentQueryResponse, bool) {
	if h.cache == nil {
		return TrackShipmentQueryResponse{}, false
	}

	raw, err := h.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ports.ErrCacheMiss) {
			h.logger.WarnContext(ctx, "tracking cache read failed", "key", key, "error", err)
		}
		return TrackShipmentQueryResponse{}, false
	}

	var snapshot TrackShipmentQueryResponse
	if err = json.Unmarshal(raw, &snapshot); err != nil {
		h.logger.WarnContext(ctx, "tracking cache entry is corrupt", "key", key, "error", err)
		return TrackShipmentQueryResponse{}, false
	}
	return snapshot, true
}

func (h TrackShipmentQueryHandler) toCache(ctx context.Context, key string, snapshot TrackShipmentQueryResponse) {
	if h.cache == nil {
		return
	}
	raw, err := json.Marshal(snapshot)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to encode tracking snapshot", "key", key, "error", err)
		return
	}
	if err = h.cache.Set(ctx, key, raw, h.ttl); err != nil {
		h.logger.WarnContext(ctx, "tracking cache write failed", "key", key, "error", err)
	}
}
