package store

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"ccms-backend/internal/parse"
)

// DefaultAssignee is the team a complaint is handed to when work starts and no
// explicit assignee was set.
const DefaultAssignee = "Maintenance Team"

// Store defines the complaint store and query engine. All operations are
// synchronous and touch only in-memory data.
type Store interface {
	ListAll() []Complaint
	GetByID(id int) (Complaint, error)
	Filter(criteria FilterCriteria) ([]Complaint, error)
	Create(input NewComplaint) (Complaint, error)
	UpdateStatus(id int, newStatus Status, remarks string) (Complaint, error)
	Stats() Stats
	AggregateByCategory() map[string]int
	AggregateByStatus() map[Status]int
	AggregateByPriority() map[Priority]int
	AggregateByLocation() map[string]int
	TrendLast7Days() []DayCount
	AverageResolutionHours() int
	RecentActivity(n int) []Complaint
}

// memStore implements Store over a plain slice kept in insertion order. A
// single mutex serializes mutation so that two admin actions racing on the
// same complaint cannot interleave a partially applied transition.
type memStore struct {
	mu              sync.RWMutex
	complaints      []Complaint
	nextID          int
	defaultAssignee string
	now             func() time.Time
}

// NewMemStore creates an in-memory store seeded with the given complaints.
// An empty defaultAssignee falls back to DefaultAssignee.
func NewMemStore(seed []Complaint, defaultAssignee string) Store {
	return NewMemStoreWithClock(seed, defaultAssignee, time.Now)
}

// NewMemStoreWithClock is like NewMemStore but with an injectable clock so
// tests can pin "now".
func NewMemStoreWithClock(seed []Complaint, defaultAssignee string, now func() time.Time) Store {
	if defaultAssignee == "" {
		defaultAssignee = DefaultAssignee
	}
	s := &memStore{
		nextID:          1,
		defaultAssignee: defaultAssignee,
		now:             now,
	}
	for _, c := range seed {
		s.complaints = append(s.complaints, cloneComplaint(c))
		if c.ID >= s.nextID {
			s.nextID = c.ID + 1
		}
	}
	return s
}

// cloneComplaint deep-copies a complaint so callers can never alias the
// store's internal state.
func cloneComplaint(c Complaint) Complaint {
	out := c
	if c.Images != nil {
		out.Images = append([]string(nil), c.Images...)
	}
	if c.VerificationDocument != nil {
		doc := *c.VerificationDocument
		out.VerificationDocument = &doc
	}
	return out
}

// sortedCopy returns deep copies of the given complaints ordered by
// SubmittedAt descending. The sort is explicitly stable: complaints sharing a
// timestamp keep their insertion (id) order.
func sortedCopy(complaints []Complaint) []Complaint {
	out := make([]Complaint, 0, len(complaints))
	for _, c := range complaints {
		out = append(out, cloneComplaint(c))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SubmittedAt.After(out[j].SubmittedAt)
	})
	return out
}

// ListAll returns every complaint, newest first.
func (s *memStore) ListAll() []Complaint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedCopy(s.complaints)
}

// GetByID returns the complaint with the given id.
func (s *memStore) GetByID(id int) (Complaint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.complaints {
		if s.complaints[i].ID == id {
			return cloneComplaint(s.complaints[i]), nil
		}
	}
	return Complaint{}, fmt.Errorf("complaint %d: %w", id, ErrNotFound)
}

// Filter returns the complaints matching all of the given criteria, newest
// first. An empty result is valid, not an error.
func (s *memStore) Filter(criteria FilterCriteria) ([]Complaint, error) {
	statusFilter, filterByStatus, err := parseStatusCriterion(criteria.Status)
	if err != nil {
		return nil, err
	}
	dateRange, err := parseDateRange(criteria.DateRange)
	if err != nil {
		return nil, err
	}
	search := strings.ToLower(strings.TrimSpace(criteria.Search))

	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	var threshold time.Time
	switch dateRange {
	case RangeToday:
		y, m, d := now.Date()
		threshold = time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	case RangeWeek:
		threshold = now.Add(-7 * 24 * time.Hour)
	case RangeMonth:
		threshold = now.Add(-30 * 24 * time.Hour)
	}

	var matched []Complaint
	for _, c := range s.complaints {
		if filterByStatus && c.Status != statusFilter {
			continue
		}
		if search != "" && !matchesSearch(c, search) {
			continue
		}
		if dateRange != RangeAll && c.SubmittedAt.Before(threshold) {
			continue
		}
		matched = append(matched, c)
	}
	return sortedCopy(matched), nil
}

// matchesSearch reports whether the lowercased needle is a substring of any of
// the complaint's subject, category, location or description. Fields are
// matched independently, not as one concatenated blob.
func matchesSearch(c Complaint, needle string) bool {
	return strings.Contains(strings.ToLower(c.Subject), needle) ||
		strings.Contains(strings.ToLower(c.Category), needle) ||
		strings.Contains(strings.ToLower(c.Location), needle) ||
		strings.Contains(strings.ToLower(c.Description), needle)
}

func parseStatusCriterion(raw string) (Status, bool, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.EqualFold(trimmed, "all") {
		return "", false, nil
	}
	status := Status(trimmed)
	if !status.Valid() {
		return "", false, fmt.Errorf("unknown status %q: %w", raw, ErrInvalidCriteria)
	}
	return status, true, nil
}

func parseDateRange(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return RangeAll, nil
	}
	switch strings.ToLower(trimmed) {
	case RangeAll, RangeToday, RangeWeek, RangeMonth:
		return strings.ToLower(trimmed), nil
	}
	return "", fmt.Errorf("unknown date range %q: %w", raw, ErrInvalidCriteria)
}

// Create files a new complaint in status Pending and assigns the next id.
// Ids are monotonic and never reused.
func (s *memStore) Create(input NewComplaint) (Complaint, error) {
	if strings.TrimSpace(input.Subject) == "" {
		return Complaint{}, fmt.Errorf("subject must not be empty: %w", ErrInvalidCriteria)
	}
	if strings.TrimSpace(input.Description) == "" {
		return Complaint{}, fmt.Errorf("description must not be empty: %w", ErrInvalidCriteria)
	}
	if input.Priority != "" && !input.Priority.Valid() {
		return Complaint{}, fmt.Errorf("unknown priority %q: %w", input.Priority, ErrInvalidCriteria)
	}
	priority := input.Priority
	if priority == "" {
		priority = PriorityMedium
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	c := Complaint{
		ID:                   s.nextID,
		Subject:              input.Subject,
		Category:             input.Category,
		Location:             input.Location,
		Status:               StatusPending,
		Priority:             priority,
		SubmittedBy:          input.SubmittedBy,
		Email:                input.Email,
		IsAnonymous:          input.IsAnonymous,
		SubmittedAt:          now,
		UpdatedAt:            now,
		Description:          input.Description,
		Images:               append([]string(nil), input.Images...),
		VerificationDocument: input.VerificationDocument,
	}
	if c.VerificationDocument != nil {
		doc := *input.VerificationDocument
		c.VerificationDocument = &doc
	}
	s.nextID++
	s.complaints = append(s.complaints, c)
	return cloneComplaint(c), nil
}

// canTransition encodes the legal edges of the status state machine.
// Pending may start or be rejected; In Progress may resolve or be rejected;
// Resolved and Rejected are terminal.
func canTransition(from, to Status) bool {
	switch from {
	case StatusPending:
		return to == StatusInProgress || to == StatusRejected
	case StatusInProgress:
		return to == StatusResolved || to == StatusRejected
	}
	return false
}

// UpdateStatus applies a status transition. Validation happens before any
// mutation, so a failed call leaves the record untouched. Transition legality
// is checked before the remarks requirement, matching the order the admin UI
// reports errors in.
func (s *memStore) UpdateStatus(id int, newStatus Status, remarks string) (Complaint, error) {
	if !newStatus.Valid() {
		return Complaint{}, fmt.Errorf("unknown status %q: %w", newStatus, ErrInvalidTransition)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var c *Complaint
	for i := range s.complaints {
		if s.complaints[i].ID == id {
			c = &s.complaints[i]
			break
		}
	}
	if c == nil {
		return Complaint{}, fmt.Errorf("complaint %d: %w", id, ErrNotFound)
	}

	if !canTransition(c.Status, newStatus) {
		return Complaint{}, fmt.Errorf("%q -> %q: %w", c.Status, newStatus, ErrInvalidTransition)
	}

	trimmed := strings.TrimSpace(remarks)
	if newStatus.Terminal() && trimmed == "" {
		return Complaint{}, fmt.Errorf("transition to %q: %w", newStatus, ErrMissingRemarks)
	}

	c.Status = newStatus
	c.AdminRemarks = trimmed
	c.UpdatedAt = s.now()
	if newStatus == StatusInProgress && c.AssignedTo == "" {
		c.AssignedTo = s.defaultAssignee
	}
	return cloneComplaint(*c), nil
}

// Stats counts complaints per lifecycle state over the full set.
func (s *memStore) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := Stats{Total: len(s.complaints)}
	for _, c := range s.complaints {
		switch c.Status {
		case StatusPending:
			st.Pending++
		case StatusInProgress:
			st.InProgress++
		case StatusResolved:
			st.Resolved++
		case StatusRejected:
			st.Rejected++
		}
	}
	return st
}

// AggregateByCategory counts complaints per category. Only observed categories
// appear in the result; nothing is padded with zero entries.
func (s *memStore) AggregateByCategory() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]int)
	for _, c := range s.complaints {
		out[c.Category]++
	}
	return out
}

// AggregateByStatus counts complaints per status over the full set.
func (s *memStore) AggregateByStatus() map[Status]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[Status]int)
	for _, c := range s.complaints {
		out[c.Status]++
	}
	return out
}

// AggregateByPriority counts complaints per priority over the full set.
func (s *memStore) AggregateByPriority() map[Priority]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[Priority]int)
	for _, c := range s.complaints {
		out[c.Priority]++
	}
	return out
}

// AggregateByLocation counts complaints per building, extracted from the
// free-form location string.
func (s *memStore) AggregateByLocation() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]int)
	for _, c := range s.complaints {
		out[parse.Building(c.Location)]++
	}
	return out
}

// TrendLast7Days returns exactly seven entries, oldest first, ending at the
// current calendar day. Days with no submissions report a zero count; unlike
// the grouping aggregates, empty days are never omitted.
func (s *memStore) TrendLast7Days() []DayCount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	trend := make([]DayCount, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		count := 0
		for _, c := range s.complaints {
			if sameDay(c.SubmittedAt, day) {
				count++
			}
		}
		trend = append(trend, DayCount{Date: day.Format("Jan 2"), Count: count})
	}
	return trend
}

// sameDay reports whether t falls on the same calendar day as day, evaluated
// in day's location.
func sameDay(t, day time.Time) bool {
	y1, m1, d1 := t.In(day.Location()).Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// AverageResolutionHours is the mean time from submission to the resolving
// update across all Resolved complaints, rounded to the nearest hour. Zero
// when nothing is resolved yet.
func (s *memStore) AverageResolutionHours() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	var resolved int
	for _, c := range s.complaints {
		if c.Status != StatusResolved {
			continue
		}
		total += c.UpdatedAt.Sub(c.SubmittedAt).Hours()
		resolved++
	}
	if resolved == 0 {
		return 0
	}
	return int(math.Round(total / float64(resolved)))
}

// RecentActivity returns the n most recently updated complaints.
func (s *memStore) RecentActivity(n int) []Complaint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Complaint, 0, len(s.complaints))
	for _, c := range s.complaints {
		out = append(out, cloneComplaint(c))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}
