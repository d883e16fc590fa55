package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/alexanderramin/worklog/internal/repository"
)

type sessionService struct {
	store repository.SessionStore
}

func NewSessionService(store repository.SessionStore) SessionService {
	return &sessionService{store: store}
}

func (s *sessionService) Start(ctx context.Context) (*domain.WorkSession, error) {
	now := time.Now()
	todayKey := domain.DateKey(now)

	sessions, err := s.store.Get(ctx, todayKey)
	if err != nil {
		return nil, err
	}

	session := domain.WorkSession{
		ID:        domain.NextID(sessions),
		StartTime: now,
	}
	sessions = append(sessions, session)

	if err := s.store.Put(ctx, todayKey, sessions); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *sessionService) End(ctx context.Context, description, tag string) (*domain.WorkSession, error) {
	now := time.Now()
	todayKey := domain.DateKey(now)

	sessions, err := s.store.Get(ctx, todayKey)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, ErrNoSessionsToday
	}

	// Sessions are appended in start order, so scanning backward finds the
	// most recently started open session first. This tolerates an earlier
	// session left open by a missed end call.
	idx := -1
	for i := len(sessions) - 1; i >= 0; i-- {
		if sessions[i].IsOpen() {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNoActiveSession
	}

	sessions[idx].EndTime = &now
	if d := strings.TrimSpace(description); d != "" {
		sessions[idx].Description = d
	}
	if t := strings.TrimSpace(tag); t != "" {
		sessions[idx].Tag = t
	}

	if err := s.store.Put(ctx, todayKey, sessions); err != nil {
		return nil, err
	}
	return &sessions[idx], nil
}

func (s *sessionService) Add(ctx context.Context, input SessionInput) (*domain.WorkSession, error) {
	start, end, err := resolveInput(input)
	if err != nil {
		return nil, err
	}

	sessions, err := s.store.Get(ctx, input.Date)
	if err != nil {
		return nil, err
	}

	session := domain.WorkSession{
		ID:          domain.NextID(sessions),
		StartTime:   start,
		EndTime:     end,
		Description: input.Description,
		Tag:         input.Tag,
	}
	sessions = append(sessions, session)

	if err := s.store.Put(ctx, input.Date, sessions); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *sessionService) Edit(ctx context.Context, dateKey string, id int, input SessionInput) (*domain.WorkSession, error) {
	start, end, err := resolveInput(input)
	if err != nil {
		return nil, err
	}

	sessions, err := s.store.Get(ctx, dateKey)
	if err != nil {
		return nil, err
	}
	idx := indexByID(sessions, id)
	if idx == -1 {
		return nil, ErrSessionNotFound
	}

	if input.Date == dateKey {
		sessions[idx].StartTime = start
		sessions[idx].EndTime = end
		sessions[idx].Description = input.Description
		sessions[idx].Tag = input.Tag
		if err := s.store.Put(ctx, dateKey, sessions); err != nil {
			return nil, err
		}
		return &sessions[idx], nil
	}

	// The date changed: move the record, so its partition key keeps
	// matching its own start time. Remove from the old key, insert under
	// the new one with an id assigned there.
	remaining := append(sessions[:idx:idx], sessions[idx+1:]...)
	if err := s.store.Put(ctx, dateKey, remaining); err != nil {
		return nil, err
	}

	target, err := s.store.Get(ctx, input.Date)
	if err != nil {
		return nil, err
	}
	moved := domain.WorkSession{
		ID:          domain.NextID(target),
		StartTime:   start,
		EndTime:     end,
		Description: input.Description,
		Tag:         input.Tag,
	}
	target = append(target, moved)
	if err := s.store.Put(ctx, input.Date, target); err != nil {
		return nil, err
	}
	return &moved, nil
}

func (s *sessionService) Remove(ctx context.Context, dateKey string, id int) error {
	sessions, err := s.store.Get(ctx, dateKey)
	if err != nil {
		return err
	}
	idx := indexByID(sessions, id)
	if idx == -1 {
		return ErrSessionNotFound
	}
	remaining := append(sessions[:idx:idx], sessions[idx+1:]...)
	return s.store.Put(ctx, dateKey, remaining)
}

func (s *sessionService) RemoveAll(ctx context.Context) error {
	return s.store.Clear(ctx)
}

func (s *sessionService) Day(ctx context.Context, dateKey string) ([]domain.WorkSession, error) {
	return s.store.Get(ctx, dateKey)
}

func (s *sessionService) List(ctx context.Context) (map[string][]domain.WorkSession, error) {
	keys, err := s.store.Keys(ctx)
	if err != nil {
		return nil, err
	}
	result := make(map[string][]domain.WorkSession, len(keys))
	for _, key := range keys {
		sessions, err := s.store.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		result[key] = sessions
	}
	return result, nil
}

func (s *sessionService) ListMonth(ctx context.Context, month, year int) (map[string][]domain.WorkSession, error) {
	keys, err := s.store.Keys(ctx)
	if err != nil {
		return nil, err
	}
	result := make(map[string][]domain.WorkSession)
	for _, key := range keys {
		if !domain.KeyInMonth(key, month, year) {
			continue
		}
		sessions, err := s.store.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		result[key] = sessions
	}
	return result, nil
}

// resolveInput validates a manual add/edit and combines its date and clock
// times into timestamps. Validation failures are reported before any
// persistence is attempted.
func resolveInput(input SessionInput) (start time.Time, end *time.Time, err error) {
	if strings.TrimSpace(input.Date) == "" {
		return time.Time{}, nil, ErrDateRequired
	}
	year, month, day, err := domain.ParseDateKey(input.Date)
	if err != nil {
		return time.Time{}, nil, ErrDateRequired
	}
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)

	if !domain.IsValidClockTime(input.Start) {
		return time.Time{}, nil, ErrInvalidTimeFormat
	}
	start, err = domain.CombineDateAndTime(date, input.Start)
	if err != nil {
		return time.Time{}, nil, ErrInvalidTimeFormat
	}

	if input.End != "" {
		if !domain.IsValidClockTime(input.End) {
			return time.Time{}, nil, ErrInvalidTimeFormat
		}
		e, err := domain.CombineDateAndTime(date, input.End)
		if err != nil {
			return time.Time{}, nil, ErrInvalidTimeFormat
		}
		if e.Before(start) {
			return time.Time{}, nil, ErrInvalidRange
		}
		end = &e
	}

	return start, end, nil
}

func indexByID(sessions []domain.WorkSession, id int) int {
	for i, s := range sessions {
		if s.ID == id {
			return i
		}
	}
	return -1
}
