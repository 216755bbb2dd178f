package payment

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
)

// TimelineEntry records one status change of a payment. PartialAmount is set
// when the change was caused by a partial payment.
type TimelineEntry struct {
	status        Status
	at            time.Time
	notes         string
	partialAmount *kernel.Money
	actor         kernel.Actor
}

func RestoreTimelineEntry(status Status, at time.Time, notes string, partialAmount *kernel.Money, actor kernel.Actor) TimelineEntry {
	return TimelineEntry{
		status:        status,
		at:            at.UTC(),
		notes:         notes,
		partialAmount: partialAmount,
		actor:         actor,
	}
}

func (e TimelineEntry) Status() Status               { return e.status }
func (e TimelineEntry) At() time.Time                { return e.at }
func (e TimelineEntry) Notes() string                { return e.notes }
func (e TimelineEntry) PartialAmount() *kernel.Money { return e.partialAmount }
func (e TimelineEntry) Actor() kernel.Actor          { return e.actor }
