package handler

import (
	"sync/atomic"
)

// Destination is where a routed message ended up
type Destination int

const (
	// DestinationBackend is the backend transport
	DestinationBackend Destination = iota
	// DestinationSystemLog is the system log facility
	DestinationSystemLog
	// DestinationLocalStream is the local output or error stream
	DestinationLocalStream
)

// String returns the string representation of the destination
func (d Destination) String() string {
	switch d {
	case DestinationBackend:
		return "Backend"
	case DestinationSystemLog:
		return "SystemLog"
	case DestinationLocalStream:
		return "LocalStream"
	default:
		return "Unknown"
	}
}

// Stats tracks routing statistics
type Stats struct {
	// Separate atomic counters per destination
	DeliveredBackend   uint64
	DeliveredSystemLog uint64
	DeliveredStream    uint64
	// FallbackTotal counts backend Unavailable results
	FallbackTotal uint64
	// FailedTotal counts backend failures and stream write errors
	FailedTotal uint64
	// FilteredTotal counts debug messages dropped by identity filtering
	FilteredTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementDelivered atomically increments the delivered counter for a destination
func (s *Stats) IncrementDelivered(d Destination) {
	switch d {
	case DestinationBackend:
		atomic.AddUint64(&s.DeliveredBackend, 1)
	case DestinationSystemLog:
		atomic.AddUint64(&s.DeliveredSystemLog, 1)
	case DestinationLocalStream:
		atomic.AddUint64(&s.DeliveredStream, 1)
	}
}

// IncrementFallback atomically increments the fallback counter
func (s *Stats) IncrementFallback() {
	atomic.AddUint64(&s.FallbackTotal, 1)
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	atomic.AddUint64(&s.FailedTotal, 1)
}

// IncrementFiltered atomically increments the filtered counter
func (s *Stats) IncrementFiltered() {
	atomic.AddUint64(&s.FilteredTotal, 1)
}

// GetDelivered returns the delivered count for a destination
func (s *Stats) GetDelivered(d Destination) uint64 {
	switch d {
	case DestinationBackend:
		return atomic.LoadUint64(&s.DeliveredBackend)
	case DestinationSystemLog:
		return atomic.LoadUint64(&s.DeliveredSystemLog)
	case DestinationLocalStream:
		return atomic.LoadUint64(&s.DeliveredStream)
	default:
		return 0
	}
}

// GetFallback returns the fallback count
func (s *Stats) GetFallback() uint64 {
	return atomic.LoadUint64(&s.FallbackTotal)
}

// GetFailed returns the failed count
func (s *Stats) GetFailed() uint64 {
	return atomic.LoadUint64(&s.FailedTotal)
}

// GetFiltered returns the filtered count
func (s *Stats) GetFiltered() uint64 {
	return atomic.LoadUint64(&s.FilteredTotal)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.DeliveredBackend, 0)
	atomic.StoreUint64(&s.DeliveredSystemLog, 0)
	atomic.StoreUint64(&s.DeliveredStream, 0)
	atomic.StoreUint64(&s.FallbackTotal, 0)
	atomic.StoreUint64(&s.FailedTotal, 0)
	atomic.StoreUint64(&s.FilteredTotal, 0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Delivered     map[Destination]uint64
	FallbackTotal uint64
	FailedTotal   uint64
	FilteredTotal uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Delivered: map[Destination]uint64{
			DestinationBackend:     s.GetDelivered(DestinationBackend),
			DestinationSystemLog:   s.GetDelivered(DestinationSystemLog),
			DestinationLocalStream: s.GetDelivered(DestinationLocalStream),
		},
		FallbackTotal: s.GetFallback(),
		FailedTotal:   s.GetFailed(),
		FilteredTotal: s.GetFiltered(),
	}
}
