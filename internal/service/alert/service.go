// Package alert sends heads-up messages before a subscriber's recommended
// activity windows and a daily morning briefing.
package alert

import (
	"context"
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/kapu/alignment-bot-go/internal/constants"
	"github.com/kapu/alignment-bot-go/internal/domain"
	"github.com/kapu/alignment-bot-go/internal/service/briefing"
	"github.com/kapu/alignment-bot-go/internal/util"
)

const memberSeparator = "|"

// Store is the subset of the redis cache the alert service needs.
type Store interface {
	SAdd(ctx context.Context, key string, members []string) (int64, error)
	SRem(ctx context.Context, key string, members []string) (int64, error)
	SMembers(ctx context.Context, key string) ([]string, error)
	SIsMember(ctx context.Context, key, member string) (bool, error)
	SetNX(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// Analyzer computes briefings; *briefing.Service satisfies it.
type Analyzer interface {
	Analyze(ctx context.Context, roomID, userID string, date time.Time) (*briefing.Briefing, error)
	Today(ctx context.Context, roomID, userID string, date time.Time) (*briefing.Briefing, error)
	CurrentDate(now time.Time) time.Time
	Location() *time.Location
}

// MorningBriefing is the daily message for one subscriber.
type MorningBriefing struct {
	RoomID   string
	UserID   string
	Briefing *briefing.Briefing
}

type Service struct {
	store       Store
	analyzer    Analyzer
	leadMinutes []int
	morningHour int
	interval    time.Duration
	concurrency int
	logger      *zap.Logger
}

// NewService builds the alert service. Lead minutes are tried in order and
// the first one that fires for a window wins.
func NewService(store Store, analyzer Analyzer, leadMinutes []int, morningHour int, logger *zap.Logger) *Service {
	leads := util.UniquePositive(leadMinutes)
	if len(leads) == 0 {
		leads = []int{15}
	}

	logger.Info("Alert lead chain", zap.Ints("minutes", leads), zap.Int("morning_hour", morningHour))

	return &Service{
		store:       store,
		analyzer:    analyzer,
		leadMinutes: leads,
		morningHour: morningHour,
		interval:    time.Minute,
		concurrency: constants.AlertConfig.MaxConcurrentUsers,
		logger:      logger,
	}
}

// SetCheckInterval tells the service how often CheckDue runs. A lead fires on
// the first check at or after its due minute, so checks spaced wider than a
// minute still alert. The interval is rounded up to whole minutes.
func (s *Service) SetCheckInterval(d time.Duration) {
	minutes := (d + time.Minute - 1) / time.Minute
	if minutes < 1 {
		minutes = 1
	}
	s.interval = minutes * time.Minute
}

func memberKey(roomID, userID string) string {
	return roomID + memberSeparator + userID
}

func parseMember(member string) (domain.Subscriber, bool) {
	roomID, userID, ok := strings.Cut(member, memberSeparator)
	if !ok || roomID == "" || userID == "" {
		return domain.Subscriber{}, false
	}
	return domain.Subscriber{RoomID: roomID, UserID: userID}, true
}

// Subscribe reports false when the user was already subscribed.
func (s *Service) Subscribe(ctx context.Context, roomID, userID string) (bool, error) {
	added, err := s.store.SAdd(ctx, constants.CacheKeys.Subscribers, []string{memberKey(roomID, userID)})
	if err != nil {
		return false, err
	}
	s.logger.Info("Alert subscribed", zap.String("room", roomID), zap.String("user", userID))
	return added > 0, nil
}

// Unsubscribe reports false when the user was not subscribed.
func (s *Service) Unsubscribe(ctx context.Context, roomID, userID string) (bool, error) {
	removed, err := s.store.SRem(ctx, constants.CacheKeys.Subscribers, []string{memberKey(roomID, userID)})
	if err != nil {
		return false, err
	}
	return removed > 0, nil
}

func (s *Service) IsSubscribed(ctx context.Context, roomID, userID string) (bool, error) {
	return s.store.SIsMember(ctx, constants.CacheKeys.Subscribers, memberKey(roomID, userID))
}

// Subscribers lists subscriptions sorted by room then user.
func (s *Service) Subscribers(ctx context.Context) ([]domain.Subscriber, error) {
	members, err := s.store.SMembers(ctx, constants.CacheKeys.Subscribers)
	if err != nil {
		return nil, err
	}

	subs := make([]domain.Subscriber, 0, len(members))
	for _, m := range members {
		sub, ok := parseMember(m)
		if !ok {
			s.logger.Warn("Skipping malformed subscriber", zap.String("member", m))
			continue
		}
		subs = append(subs, sub)
	}
	sort.Slice(subs, func(i, j int) bool {
		if subs[i].RoomID != subs[j].RoomID {
			return subs[i].RoomID < subs[j].RoomID
		}
		return subs[i].UserID < subs[j].UserID
	})
	return subs, nil
}

// CheckDue returns the window alerts whose due minute falls within the check
// interval ending at now.
func (s *Service) CheckDue(ctx context.Context, now time.Time) ([]domain.AlertNotification, error) {
	subs, err := s.Subscribers(ctx)
	if err != nil {
		s.logger.Error("Failed to load subscribers", zap.Error(err))
		return nil, err
	}
	if len(subs) == 0 {
		return []domain.AlertNotification{}, nil
	}

	loc := s.analyzer.Location()
	now = now.In(loc).Truncate(time.Minute)
	date := s.analyzer.CurrentDate(now)

	results := make([][]domain.AlertNotification, len(subs))
	var resultsMu sync.Mutex

	p := pool.New().WithMaxGoroutines(s.concurrency)
	for idx, sub := range subs {
		idx, sub := idx, sub
		p.Go(func() {
			found := s.checkSubscriber(ctx, sub, now, date)
			resultsMu.Lock()
			results[idx] = found
			resultsMu.Unlock()
		})
	}
	p.Wait()

	notifications := make([]domain.AlertNotification, 0)
	for _, r := range results {
		notifications = append(notifications, r...)
	}
	if len(notifications) > 0 {
		s.logger.Info("Alert notifications created", zap.Int("count", len(notifications)))
	}
	return notifications, nil
}

func (s *Service) checkSubscriber(ctx context.Context, sub domain.Subscriber, now, date time.Time) []domain.AlertNotification {
	b, err := s.analyzer.Analyze(ctx, sub.RoomID, sub.UserID, date)
	if err != nil {
		if stderrors.Is(err, briefing.ErrNotRegistered) {
			s.logger.Debug("Subscriber has no birth date", zap.String("user", sub.UserID))
		} else {
			s.logger.Warn("Alert analysis failed", zap.String("user", sub.UserID), zap.Error(err))
		}
		return nil
	}

	windows := []struct {
		activity domain.Activity
		window   domain.ActivityWindow
	}{
		{domain.ActivityMeetings, b.Result.Insights.Meetings},
		{domain.ActivityDecisions, b.Result.Insights.Decisions},
		{domain.ActivityDeals, b.Result.Insights.Deals},
	}

	var out []domain.AlertNotification
	for _, w := range windows {
		if !w.window.HasClockTime() {
			continue
		}
		start := util.AtHour(now, now.Location(), w.window.StartHour)
		lead, ok := s.matchLead(now, start)
		if !ok {
			continue
		}

		key := fmt.Sprintf("%s%s:%s:%s:%s", constants.CacheKeys.AlertSentPrefix,
			sub.RoomID, sub.UserID, date.Format(util.DateLayout), w.activity.String())
		first, err := s.store.SetNX(ctx, key, constants.CacheTTL.AlertSent)
		if err != nil {
			s.logger.Warn("Failed to set alert marker", zap.String("key", key), zap.Error(err))
			continue
		}
		if !first {
			continue
		}

		out = append(out, domain.AlertNotification{
			RoomID:      sub.RoomID,
			UserID:      sub.UserID,
			DisplayName: b.User.DisplayName,
			Activity:    w.activity,
			Window:      w.window,
			StartsAt:    start,
			LeadMinutes: lead,
		})
	}
	return out
}

// matchLead returns the minutes left before start when now is within one
// check interval after a configured lead's due minute.
func (s *Service) matchLead(now, start time.Time) (int, bool) {
	for _, lead := range s.leadMinutes {
		due := start.Add(-time.Duration(lead) * time.Minute)
		if !now.Before(due) && now.Before(due.Add(s.interval)) {
			return int(start.Sub(now) / time.Minute), true
		}
	}
	return 0, false
}

// MorningDue returns one narrated briefing per subscriber during the morning
// hour. Each subscriber gets at most one per day.
func (s *Service) MorningDue(ctx context.Context, now time.Time) ([]MorningBriefing, error) {
	loc := s.analyzer.Location()
	if now.In(loc).Hour() != s.morningHour {
		return []MorningBriefing{}, nil
	}

	subs, err := s.Subscribers(ctx)
	if err != nil {
		return nil, err
	}
	date := s.analyzer.CurrentDate(now)

	results := make([]*MorningBriefing, len(subs))
	var resultsMu sync.Mutex

	p := pool.New().WithMaxGoroutines(s.concurrency)
	for idx, sub := range subs {
		idx, sub := idx, sub
		p.Go(func() {
			mb := s.morningFor(ctx, sub, date)
			resultsMu.Lock()
			results[idx] = mb
			resultsMu.Unlock()
		})
	}
	p.Wait()

	out := make([]MorningBriefing, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (s *Service) morningFor(ctx context.Context, sub domain.Subscriber, date time.Time) *MorningBriefing {
	key := fmt.Sprintf("%s%s:%s:%s", constants.CacheKeys.MorningPrefix, sub.RoomID, sub.UserID, date.Format(util.DateLayout))
	first, err := s.store.SetNX(ctx, key, constants.CacheTTL.MorningBriefSent)
	if err != nil {
		s.logger.Warn("Failed to set morning marker", zap.String("key", key), zap.Error(err))
		return nil
	}
	if !first {
		return nil
	}

	b, err := s.analyzer.Today(ctx, sub.RoomID, sub.UserID, date)
	if err != nil {
		if !stderrors.Is(err, briefing.ErrNotRegistered) {
			s.logger.Warn("Morning briefing failed", zap.String("user", sub.UserID), zap.Error(err))
		}
		return nil
	}
	return &MorningBriefing{RoomID: sub.RoomID, UserID: sub.UserID, Briefing: b}
}
