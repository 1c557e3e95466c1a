package availability

import (
	"context"
	"fmt"
	"hash/fnv"
	"sort"
	"time"

	"github.com/lavaderolesan/LSN-BookingFlow/internal/domain"
)

// Engine derives the bookable time slots of a day from the business hours,
// a service duration and the booking horizon. It is the slot source used
// when no live scheduling backend is configured.
type Engine struct {
	stepMinutes  int
	horizonDays  int
	providerID   string
	providerName string
	policy       Policy
	timeProvider TimeProvider
}

// NewEngine creates an engine. Zero step/horizon fall back to the defaults
// (30-minute step, 30-day horizon). A nil policy synthesizes occupancy
// deterministically from the slot start.
func NewEngine(stepMinutes, horizonDays int, providerID, providerName string, policy Policy) *Engine {
	if stepMinutes <= 0 {
		stepMinutes = domain.DefaultSlotStepMinutes
	}
	if horizonDays <= 0 {
		horizonDays = domain.DefaultAdvanceBookingDays
	}
	if policy == nil {
		policy = hashPolicy
	}

	return &Engine{
		stepMinutes:  stepMinutes,
		horizonDays:  horizonDays,
		providerID:   providerID,
		providerName: providerName,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
	}
}

// WithTimeProvider replaces the time source. For tests.
func (e *Engine) WithTimeProvider(tp TimeProvider) *Engine {
	e.timeProvider = tp
	return e
}

// DaySlots implements the slot source contract used by the booking flow:
// slots for one date, one service duration, for the given business.
func (e *Engine) DaySlots(_ context.Context, business *domain.Business, _ string, durationMinutes int, date time.Time) ([]domain.TimeSlot, error) {
	return e.ComputeSlots(date, durationMinutes, business.Hours, e.timeProvider.Now())
}

// ComputeSlots returns the ordered bookable slots of a day.
//
// The day is rejected (empty result, not an error) when its weekday is
// closed, the date is before today or strictly beyond the booking horizon.
// The opening window is partitioned by subtracting break intervals, and
// candidates are emitted inside each sub-interval at a fixed step as long as
// the whole service still fits. Candidates advance by the step, not by the
// duration: adjacent slots may overlap in service time, which maximizes the
// offered start-time granularity and mirrors the backend's behavior. When the
// grid does not land on a sub-interval's closing boundary, one extra slot
// ending exactly at it is offered so the tail of the window stays bookable.
func (e *Engine) ComputeSlots(date time.Time, durationMinutes int, hours domain.BusinessHours, now time.Time) ([]domain.TimeSlot, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	day := hours.ForWeekday(date.Weekday())
	if day.Closed {
		return []domain.TimeSlot{}, nil
	}

	if isDateInPast(date, now) || isBeyondHorizon(date, now, e.horizonDays) {
		return []domain.TimeSlot{}, nil
	}

	intervals, err := workingIntervals(day)
	if err != nil {
		return nil, err
	}

	slots := make([]domain.TimeSlot, 0)
	for _, iv := range intervals {
		lastStart := -1
		for startMin := iv.start; startMin+durationMinutes <= iv.end; startMin += e.stepMinutes {
			slots = append(slots, e.slotAt(date, startMin, durationMinutes))
			lastStart = startMin
		}

		// Tail slot ending exactly at the closing boundary, unless the grid
		// already landed there.
		if tail := iv.end - durationMinutes; tail >= iv.start && tail != lastStart {
			slots = append(slots, e.slotAt(date, tail, durationMinutes))
		}
	}

	return slots, nil
}

func (e *Engine) slotAt(date time.Time, startMin, durationMinutes int) domain.TimeSlot {
	start := atMinutes(date, startMin)
	return domain.TimeSlot{
		Start:        start,
		End:          start.Add(time.Duration(durationMinutes) * time.Minute),
		Available:    e.policy(start),
		ProviderID:   e.providerID,
		ProviderName: e.providerName,
	}
}

// interval is a working sub-interval of the day, in minutes since midnight.
type interval struct {
	start int
	end   int
}

// workingIntervals partitions the opening window by subtracting break
// intervals, producing the disjoint working sub-intervals of the day in
// chronological order. A day whose window is empty yields zero intervals.
func workingIntervals(day domain.DayHours) ([]interval, error) {
	openMin, err := day.Open.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: open time: %v", ErrInvalidHours, err)
	}
	closeMin, err := day.Close.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: close time: %v", ErrInvalidHours, err)
	}

	if openMin >= closeMin {
		return nil, nil
	}

	breaks := make([]interval, 0, len(day.Breaks))
	for _, br := range day.Breaks {
		bs, err := br.Start.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: break start: %v", ErrInvalidHours, err)
		}
		be, err := br.End.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: break end: %v", ErrInvalidHours, err)
		}
		// Clamp to the opening window; breaks outside it are irrelevant
		if bs < openMin {
			bs = openMin
		}
		if be > closeMin {
			be = closeMin
		}
		if bs < be {
			breaks = append(breaks, interval{start: bs, end: be})
		}
	}

	sort.Slice(breaks, func(i, j int) bool { return breaks[i].start < breaks[j].start })

	intervals := make([]interval, 0, len(breaks)+1)
	cursor := openMin
	for _, br := range breaks {
		if br.start > cursor {
			intervals = append(intervals, interval{start: cursor, end: br.start})
		}
		if br.end > cursor {
			cursor = br.end
		}
	}
	if cursor < closeMin {
		intervals = append(intervals, interval{start: cursor, end: closeMin})
	}

	return intervals, nil
}

// atMinutes anchors minutes-since-midnight onto the given calendar day.
func atMinutes(date time.Time, minutes int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, date.Location())
}

// isDateInPast reports whether the date falls before today, day granularity.
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// isBeyondHorizon reports whether the date is strictly after
// today + horizonDays.
func isBeyondHorizon(date, now time.Time, horizonDays int) bool {
	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, horizonDays)
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return dateOnly.After(maxDate)
}

// hashPolicy synthesizes occupancy deterministically: roughly 30% of slots
// come out taken, keyed by the slot start so repeated computations for the
// same date agree.
func hashPolicy(start time.Time) bool {
	h := fnv.New32a()
	_, _ = h.Write([]byte(start.Format(time.RFC3339)))
	return h.Sum32()%10 < 7
}
