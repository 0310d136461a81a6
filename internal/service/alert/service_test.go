package alert

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kapu/alignment-bot-go/internal/alignment"
	"github.com/kapu/alignment-bot-go/internal/domain"
	"github.com/kapu/alignment-bot-go/internal/service/briefing"
	"github.com/kapu/alignment-bot-go/internal/service/user"
	"github.com/kapu/alignment-bot-go/internal/util"
)

type fakeStore struct {
	mu      sync.Mutex
	sets    map[string]map[string]struct{}
	markers map[string]struct{}
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		sets:    make(map[string]map[string]struct{}),
		markers: make(map[string]struct{}),
	}
}

func (f *fakeStore) SAdd(_ context.Context, key string, members []string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sets[key] == nil {
		f.sets[key] = make(map[string]struct{})
	}
	var added int64
	for _, m := range members {
		if _, ok := f.sets[key][m]; !ok {
			f.sets[key][m] = struct{}{}
			added++
		}
	}
	return added, nil
}

func (f *fakeStore) SRem(_ context.Context, key string, members []string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var removed int64
	for _, m := range members {
		if _, ok := f.sets[key][m]; ok {
			delete(f.sets[key], m)
			removed++
		}
	}
	return removed, nil
}

func (f *fakeStore) SMembers(_ context.Context, key string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.sets[key]))
	for m := range f.sets[key] {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeStore) SIsMember(_ context.Context, key, member string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.sets[key][member]
	return ok, nil
}

func (f *fakeStore) SetNX(_ context.Context, key string, _ time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.markers[key]; ok {
		return false, nil
	}
	f.markers[key] = struct{}{}
	return true, nil
}

type fakeAnalyzer struct {
	births map[string]string
}

func (f *fakeAnalyzer) Analyze(_ context.Context, roomID, userID string, date time.Time) (*briefing.Briefing, error) {
	birth, ok := f.births[userID]
	if !ok {
		return nil, briefing.ErrNotRegistered
	}
	result, err := alignment.ForDate(birth, "", date)
	if err != nil {
		return nil, err
	}
	return &briefing.Briefing{
		User:   user.User{RoomID: roomID, UserID: userID, BirthDate: birth, DisplayName: userID},
		Date:   date,
		Result: result,
	}, nil
}

func (f *fakeAnalyzer) Today(ctx context.Context, roomID, userID string, date time.Time) (*briefing.Briefing, error) {
	return f.Analyze(ctx, roomID, userID, date)
}

func (f *fakeAnalyzer) CurrentDate(now time.Time) time.Time {
	return util.CalendarDate(now, time.UTC)
}

func (f *fakeAnalyzer) Location() *time.Location {
	return time.UTC
}

func newTestService(leads []int) (*Service, *fakeStore) {
	store := newFakeStore()
	analyzer := &fakeAnalyzer{births: map[string]string{
		"alice": "1990-05-15",
		"bob":   "1985-11-29",
	}}
	return NewService(store, analyzer, leads, 8, zap.NewNop()), store
}

func at(hour, minute int) time.Time {
	return time.Date(2026, time.January, 21, hour, minute, 30, 0, time.UTC)
}

func TestSubscribeLifecycle(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	added, err := svc.Subscribe(ctx, "room", "alice")
	if err != nil || !added {
		t.Fatalf("Subscribe = %v, %v", added, err)
	}
	if added, _ := svc.Subscribe(ctx, "room", "alice"); added {
		t.Fatal("second Subscribe reported an addition")
	}
	if ok, _ := svc.IsSubscribed(ctx, "room", "alice"); !ok {
		t.Fatal("IsSubscribed = false")
	}

	removed, err := svc.Unsubscribe(ctx, "room", "alice")
	if err != nil || !removed {
		t.Fatalf("Unsubscribe = %v, %v", removed, err)
	}
	if ok, _ := svc.IsSubscribed(ctx, "room", "alice"); ok {
		t.Fatal("still subscribed")
	}
}

func TestSubscribersSkipsMalformed(t *testing.T) {
	svc, store := newTestService(nil)
	ctx := context.Background()
	_, _ = svc.Subscribe(ctx, "room-b", "bob")
	_, _ = svc.Subscribe(ctx, "room-a", "alice")
	_, _ = store.SAdd(ctx, "alignment:alert:subscribers", []string{"broken", "|x"})

	subs, err := svc.Subscribers(ctx)
	if err != nil {
		t.Fatalf("Subscribers error = %v", err)
	}
	want := []domain.Subscriber{{RoomID: "room-a", UserID: "alice"}, {RoomID: "room-b", UserID: "bob"}}
	if len(subs) != len(want) || subs[0] != want[0] || subs[1] != want[1] {
		t.Fatalf("subscribers = %+v", subs)
	}
}

func TestCheckDueFiresBeforeWindow(t *testing.T) {
	svc, _ := newTestService([]int{15})
	ctx := context.Background()
	_, _ = svc.Subscribe(ctx, "room", "alice")

	tests := []struct {
		now      time.Time
		activity domain.Activity
		start    int
	}{
		{at(7, 45), domain.ActivityDeals, 8},
		{at(8, 45), domain.ActivityMeetings, 9},
		{at(9, 45), domain.ActivityDecisions, 10},
	}
	for _, tt := range tests {
		got, err := svc.CheckDue(ctx, tt.now)
		if err != nil {
			t.Fatalf("CheckDue(%v) error = %v", tt.now, err)
		}
		if len(got) != 1 {
			t.Fatalf("CheckDue(%v) = %+v, want one alert", tt.now, got)
		}
		n := got[0]
		if n.Activity != tt.activity || n.LeadMinutes != 15 || n.StartsAt.Hour() != tt.start || n.UserID != "alice" {
			t.Fatalf("CheckDue(%v) = %+v", tt.now, n)
		}
	}
}

func TestCheckDueOncePerWindow(t *testing.T) {
	svc, _ := newTestService([]int{15, 5})
	ctx := context.Background()
	_, _ = svc.Subscribe(ctx, "room", "alice")

	first, _ := svc.CheckDue(ctx, at(8, 45))
	repeat, _ := svc.CheckDue(ctx, at(8, 45))
	later, _ := svc.CheckDue(ctx, at(8, 55))
	if len(first) != 1 || len(repeat) != 0 || len(later) != 0 {
		t.Fatalf("alerts = %d, %d, %d", len(first), len(repeat), len(later))
	}
}

func TestCheckDueFallbackLead(t *testing.T) {
	svc, _ := newTestService([]int{15, 5})
	ctx := context.Background()
	_, _ = svc.Subscribe(ctx, "room", "alice")

	got, _ := svc.CheckDue(ctx, at(8, 55))
	if len(got) != 1 || got[0].LeadMinutes != 5 || got[0].Activity != domain.ActivityMeetings {
		t.Fatalf("alerts = %+v", got)
	}
}

func TestCheckDueQuietMinutes(t *testing.T) {
	svc, _ := newTestService([]int{15})
	ctx := context.Background()
	_, _ = svc.Subscribe(ctx, "room", "alice")
	_, _ = svc.Subscribe(ctx, "room", "ghost")

	for _, now := range []time.Time{at(8, 44), at(8, 46), at(13, 0)} {
		got, err := svc.CheckDue(ctx, now)
		if err != nil {
			t.Fatalf("CheckDue error = %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("CheckDue(%v) = %+v", now, got)
		}
	}
}

func TestCheckDueWiderInterval(t *testing.T) {
	svc, _ := newTestService([]int{15})
	svc.SetCheckInterval(90 * time.Second)
	if svc.interval != 2*time.Minute {
		t.Fatalf("interval = %v, want 2m", svc.interval)
	}
	ctx := context.Background()
	_, _ = svc.Subscribe(ctx, "room", "alice")

	// Checks at 08:44 and 08:46 straddle the 08:45 due minute.
	if got, _ := svc.CheckDue(ctx, at(8, 44)); len(got) != 0 {
		t.Fatalf("CheckDue(08:44) = %+v", got)
	}
	got, err := svc.CheckDue(ctx, at(8, 46))
	if err != nil {
		t.Fatalf("CheckDue error = %v", err)
	}
	if len(got) != 1 || got[0].Activity != domain.ActivityMeetings || got[0].LeadMinutes != 14 {
		t.Fatalf("CheckDue(08:46) = %+v", got)
	}
	if got, _ := svc.CheckDue(ctx, at(8, 47)); len(got) != 0 {
		t.Fatalf("CheckDue(08:47) = %+v", got)
	}

	svc.SetCheckInterval(0)
	if svc.interval != time.Minute {
		t.Fatalf("interval = %v, want 1m", svc.interval)
	}
}

func TestMorningDue(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()
	_, _ = svc.Subscribe(ctx, "room", "alice")
	_, _ = svc.Subscribe(ctx, "room", "bob")
	_, _ = svc.Subscribe(ctx, "room", "ghost")

	if got, _ := svc.MorningDue(ctx, at(7, 59)); len(got) != 0 {
		t.Fatalf("before morning hour: %d briefings", len(got))
	}

	got, err := svc.MorningDue(ctx, at(8, 0))
	if err != nil {
		t.Fatalf("MorningDue error = %v", err)
	}
	users := make([]string, 0, len(got))
	for _, mb := range got {
		users = append(users, mb.UserID)
	}
	sort.Strings(users)
	if len(users) != 2 || users[0] != "alice" || users[1] != "bob" {
		t.Fatalf("morning users = %v", users)
	}

	if again, _ := svc.MorningDue(ctx, at(8, 30)); len(again) != 0 {
		t.Fatalf("second morning sweep sent %d", len(again))
	}
}
