// Package briefing assembles a user's daily alignment briefing from stored
// birth data, cached profiles and the scoring core.
package briefing

import (
	"context"
	stderrors "errors"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kapu/alignment-bot-go/internal/alignment"
	"github.com/kapu/alignment-bot-go/internal/constants"
	"github.com/kapu/alignment-bot-go/internal/domain"
	"github.com/kapu/alignment-bot-go/internal/service/user"
	"github.com/kapu/alignment-bot-go/internal/util"
)

// ErrNotRegistered is returned when the user has no stored birth date.
var ErrNotRegistered = stderrors.New("user has not registered a birth date")

// Cache is the subset of the redis cache the service needs.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// UserStore persists registered users.
type UserStore interface {
	Find(ctx context.Context, roomID, userID string) (*user.User, error)
	Upsert(ctx context.Context, u user.User) error
	Delete(ctx context.Context, roomID, userID string) (bool, error)
}

// Narrator rewrites a result into free text. It reports false when it fell
// back to the deterministic rendering.
type Narrator interface {
	Narrate(ctx context.Context, result alignment.Result) (string, bool)
}

// Briefing is one user's analysis for one date.
type Briefing struct {
	User      user.User        `json:"user"`
	Date      time.Time        `json:"date"`
	Result    alignment.Result `json:"result"`
	Narration string           `json:"narration,omitempty"`
}

type Service struct {
	cache    Cache
	users    UserStore
	narrator Narrator
	location *time.Location
	now      func() time.Time
	logger   *zap.Logger
}

// NewService wires the briefing service. narrator may be nil.
func NewService(cache Cache, users UserStore, narrator Narrator, location *time.Location, logger *zap.Logger) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		cache:    cache,
		users:    users,
		narrator: narrator,
		location: location,
		now:      time.Now,
		logger:   logger,
	}
}

// CurrentDate is the calendar date of now in the service timezone.
func (s *Service) CurrentDate(now time.Time) time.Time {
	return util.CalendarDate(now, s.location)
}

// Location returns the timezone used for dates and alert times.
func (s *Service) Location() *time.Location {
	return s.location
}

func personalKey(roomID, userID string) string {
	return constants.CacheKeys.PersonalPrefix + roomID + ":" + userID
}

func earthKey(date time.Time) string {
	return constants.CacheKeys.EarthPrefix + date.Format(util.DateLayout)
}

// narrationKey includes a fingerprint of the birth data so a re-registered
// user never sees narration written for the previous profile.
func narrationKey(u user.User, date time.Time) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(u.BirthDate + "|" + u.BirthPlace))
	return fmt.Sprintf("%s%s:%s:%s:%08x", constants.CacheKeys.NarrationPrefix, u.RoomID, u.UserID, date.Format(util.DateLayout), h.Sum32())
}

// Analyze computes the briefing for a calendar date without narration. Only
// the year, month and day of date are used.
func (s *Service) Analyze(ctx context.Context, roomID, userID string, date time.Time) (*Briefing, error) {
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	u, err := s.users.Find(ctx, roomID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if u == nil {
		return nil, ErrNotRegistered
	}

	personal, err := s.personalProfile(ctx, *u)
	if err != nil {
		return nil, err
	}

	earth := alignment.PersonalizeEarth(s.earthProfile(ctx, date), personal.BirthDate)
	return &Briefing{
		User:   *u,
		Date:   earth.Date,
		Result: alignment.SynthesizeAndExplain(personal, earth),
	}, nil
}

// Today computes the briefing and narrates it when a narrator is configured.
func (s *Service) Today(ctx context.Context, roomID, userID string, date time.Time) (*Briefing, error) {
	b, err := s.Analyze(ctx, roomID, userID, date)
	if err != nil {
		return nil, err
	}
	if s.narrator == nil {
		return b, nil
	}

	key := narrationKey(b.User, b.Date)
	var cached string
	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found && cached != "" {
		b.Narration = cached
		return b, nil
	}

	text, generated := s.narrator.Narrate(ctx, b.Result)
	b.Narration = text
	if generated {
		if err := s.cache.Set(ctx, key, text, constants.CacheTTL.Narration); err != nil {
			s.logger.Warn("Failed to cache narration", zap.String("key", key), zap.Error(err))
		}
	}
	return b, nil
}

// Challenges computes the challenges profile. An empty name falls back to the
// stored display name.
func (s *Service) Challenges(ctx context.Context, roomID, userID, name string) (domain.ChallengesProfile, error) {
	u, err := s.users.Find(ctx, roomID, userID)
	if err != nil {
		return domain.ChallengesProfile{}, fmt.Errorf("failed to load user: %w", err)
	}
	if u == nil {
		return domain.ChallengesProfile{}, ErrNotRegistered
	}
	if strings.TrimSpace(name) == "" {
		name = u.DisplayName
	}
	return alignment.BuildChallengesProfile(u.BirthDate, name)
}

// Register validates the birth date, stores the user and drops the cached
// personal profile. Validation errors are *errors.InvalidBirthDateError.
func (s *Service) Register(ctx context.Context, roomID, userID, displayName, birthDate, birthPlace string) (*user.User, domain.PersonalProfile, error) {
	birthPlace = util.TruncateString(util.CollapseSpaces(birthPlace), constants.StringLimits.BirthPlace)
	displayName = util.TruncateString(util.CollapseSpaces(displayName), constants.StringLimits.DisplayName)

	personal, err := alignment.BuildPersonalProfile(birthDate, birthPlace)
	if err != nil {
		return nil, domain.PersonalProfile{}, err
	}

	u := user.User{
		RoomID:      roomID,
		UserID:      userID,
		BirthDate:   personal.BirthDate.Format(util.DateLayout),
		BirthPlace:  birthPlace,
		DisplayName: displayName,
	}
	if err := s.users.Upsert(ctx, u); err != nil {
		return nil, domain.PersonalProfile{}, err
	}

	if err := s.cache.Del(ctx, personalKey(roomID, userID)); err != nil {
		s.logger.Warn("Failed to invalidate personal profile", zap.String("user", userID), zap.Error(err))
	}

	s.logger.Info("User registered",
		zap.String("room", roomID),
		zap.String("user", userID),
		zap.Bool("birth_place", birthPlace != ""),
	)
	return &u, personal, nil
}

// IsRegistered reports whether the user has a stored birth date.
func (s *Service) IsRegistered(ctx context.Context, roomID, userID string) (bool, error) {
	u, err := s.users.Find(ctx, roomID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to load user: %w", err)
	}
	return u != nil, nil
}

// Forget deletes the user, the cached profile and today's narration.
func (s *Service) Forget(ctx context.Context, roomID, userID string) (bool, error) {
	u, err := s.users.Find(ctx, roomID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to load user: %w", err)
	}

	deleted, err := s.users.Delete(ctx, roomID, userID)
	if err != nil {
		return false, err
	}

	keys := []string{personalKey(roomID, userID)}
	if u != nil {
		keys = append(keys, narrationKey(*u, s.CurrentDate(s.now())))
	}
	for _, key := range keys {
		if err := s.cache.Del(ctx, key); err != nil {
			s.logger.Warn("Failed to invalidate cached briefing data", zap.String("key", key), zap.Error(err))
		}
	}
	return deleted, nil
}

func (s *Service) personalProfile(ctx context.Context, u user.User) (domain.PersonalProfile, error) {
	key := personalKey(u.RoomID, u.UserID)

	var cached domain.PersonalProfile
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.logger.Warn("Personal profile cache read failed", zap.String("key", key), zap.Error(err))
	}
	if found && err == nil {
		return cached, nil
	}

	personal, err := alignment.BuildPersonalProfile(u.BirthDate, u.BirthPlace)
	if err != nil {
		return domain.PersonalProfile{}, err
	}
	if err := s.cache.Set(ctx, key, personal, constants.CacheTTL.PersonalProfile); err != nil {
		s.logger.Warn("Failed to cache personal profile", zap.String("key", key), zap.Error(err))
	}
	return personal, nil
}

// earthProfile returns the shared date-only profile. Cache failures fall back
// to computing it.
func (s *Service) earthProfile(ctx context.Context, date time.Time) domain.EarthProfile {
	key := earthKey(date)

	var cached domain.EarthProfile
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.logger.Warn("Earth profile cache read failed", zap.String("key", key), zap.Error(err))
	}
	if found && err == nil {
		return cached
	}

	earth := alignment.BuildEarthProfile(date)
	if err := s.cache.Set(ctx, key, earth, constants.CacheTTL.EarthProfile); err != nil {
		s.logger.Warn("Failed to cache earth profile", zap.String("key", key), zap.Error(err))
	}
	return earth
}
