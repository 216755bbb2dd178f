package shipment

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
)

// TimelineEntry records one status change. The latest entry of a shipment's
// timeline is its current status.
type TimelineEntry struct {
	status   Status
	at       time.Time
	location *kernel.Coordinates
	notes    string
	actor    kernel.Actor
}

func newTimelineEntry(status Status, at time.Time, location *kernel.Coordinates, notes string, actor kernel.Actor) TimelineEntry {
	return TimelineEntry{
		status:   status,
		at:       at.UTC(),
		location: location,
		notes:    notes,
		actor:    actor,
	}
}

// RestoreTimelineEntry rebuilds a persisted entry.
func RestoreTimelineEntry(status Status, at time.Time, location *kernel.Coordinates, notes string, actor kernel.Actor) TimelineEntry {
	return newTimelineEntry(status, at, location, notes, actor)
}

func (e TimelineEntry) Status() Status                { return e.status }
func (e TimelineEntry) At() time.Time                 { return e.at }
func (e TimelineEntry) Location() *kernel.Coordinates { return e.location }
func (e TimelineEntry) Notes() string                 { return e.notes }
func (e TimelineEntry) Actor() kernel.Actor           { return e.actor }
