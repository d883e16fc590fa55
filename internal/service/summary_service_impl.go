package service

import (
	"context"

	"github.com/alexanderramin/worklog/internal/contract"
	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/alexanderramin/worklog/internal/repository"
)

type summaryService struct {
	store repository.SessionStore
}

func NewSummaryService(store repository.SessionStore) SummaryService {
	return &summaryService{store: store}
}

func (s *summaryService) Aggregate(ctx context.Context, month, year int) (*contract.MonthlySummary, error) {
	keys, err := s.store.Keys(ctx)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string][]domain.WorkSession)
	for _, key := range keys {
		if !domain.KeyInMonth(key, month, year) {
			continue
		}
		sessions, err := s.store.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		byDate[key] = sessions
	}
	if len(byDate) == 0 {
		return nil, ErrNoDataForPeriod
	}

	summary := &contract.MonthlySummary{Month: month, Year: year}
	numDays := domain.DaysInMonth(year, month)
	for day := 1; day <= numDays; day++ {
		d := aggregateDay(day, byDate[domain.MakeDateKey(year, month, day)])
		summary.Days = append(summary.Days, d)
		summary.TotalHours += d.Hours
	}

	return summary, nil
}

// aggregateDay folds one day's sessions into a DaySummary. Open sessions
// are excluded from totals, so a zero-hours day always means no work. A
// session crossing midnight counts fully against its partition key's day.
func aggregateDay(day int, sessions []domain.WorkSession) contract.DaySummary {
	d := contract.DaySummary{Day: day}
	for _, sess := range sessions {
		if sess.IsOpen() {
			continue
		}
		d.Hours += sess.Hours()
		if d.Since.IsZero() || sess.StartTime.Before(d.Since) {
			d.Since = sess.StartTime
		}
		if d.Till.IsZero() || sess.EndTime.After(d.Till) {
			d.Till = *sess.EndTime
		}
	}
	return d
}
