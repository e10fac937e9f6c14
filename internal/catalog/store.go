package catalog

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const profileMaxAge = 30 * 24 * time.Hour

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidStatus = errors.New("invalid match status")
	ErrInvalidAmount = errors.New("invalid coin amount")
)

// Repository is the data access collaborator of the CLI commands.
type Repository interface {
	Scholarships(ctx context.Context) ([]*Scholarship, error)
	Internships(ctx context.Context) ([]*Internship, error)
	Colleges(ctx context.Context) ([]*College, error)
	CoachingCenters(ctx context.Context) ([]*CoachingCenter, error)

	// Profiles returns every EduSwipe profile except the one owned by excludeUserID.
	Profiles(ctx context.Context, excludeUserID string) ([]*Profile, error)
	ProfileByUser(ctx context.Context, userID string) (*Profile, error)
	User(ctx context.Context, id string) (*User, error)

	CreateMatch(ctx context.Context, user1ID, user2ID string) (*Match, error)
	UpdateMatch(ctx context.Context, id string, status MatchStatus) error
	UserMatches(ctx context.Context, userID string) ([]*Match, error)

	// EduCoins returns the reward ledger of userID, oldest entry first.
	EduCoins(ctx context.Context, userID string) ([]*EduCoin, error)
	AddEduCoins(ctx context.Context, userID string, amount int, source, description string) (*EduCoin, error)
	Roadmap(ctx context.Context, userID string) (*Roadmap, error)
}

// Option customizes a Memory repository.
type Option func(*Memory)

// WithClock sets the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Memory) { m.now = now }
}

// WithIDGenerator sets the generator of match ids.
func WithIDGenerator(newID func() string) Option {
	return func(m *Memory) { m.newID = newID }
}

// WithRand sets the random source used to spread profile creation dates.
func WithRand(r *rand.Rand) Option {
	return func(m *Memory) { m.rand = r }
}

func WithLogger(logger *zap.Logger) Option {
	return func(m *Memory) { m.logger = logger }
}

// Memory is an in-memory Repository. Seed records are never modified after
// construction; only matches and coins change.
type Memory struct {
	now    func() time.Time
	newID  func() string
	rand   *rand.Rand
	logger *zap.Logger

	seed *Seed

	mu      sync.RWMutex
	matches []*Match
	coins   []*EduCoin
}

var _ Repository = (*Memory)(nil)

func NewMemory(seed *Seed, opts ...Option) *Memory {
	m := &Memory{
		now:    time.Now,
		newID:  uuid.NewString,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rand == nil {
		m.rand = rand.New(rand.NewPCG(uint64(m.now().UnixNano()), 0))
	}
	if seed == nil {
		seed = &Seed{}
	}

	m.seed = seed
	m.prepareProfiles()
	m.prepareCoins()

	m.logger.Debug("catalog loaded",
		zap.Int("scholarships", len(seed.Scholarships)),
		zap.Int("internships", len(seed.Internships)),
		zap.Int("colleges", len(seed.Colleges)),
		zap.Int("coaching_centers", len(seed.CoachingCenters)),
		zap.Int("profiles", len(seed.Profiles)),
		zap.Int("users", len(seed.Users)),
		zap.Int("edu_coins", len(seed.EduCoins)),
		zap.Int("roadmaps", len(seed.Roadmaps)),
	)

	return m
}

// prepareProfiles assigns positional ids and a creation date within the last
// 30 days to profiles that have none.
func (m *Memory) prepareProfiles() {
	now := m.now()
	for idx, profile := range m.seed.Profiles {
		if profile.ID == "" {
			profile.ID = fmt.Sprintf("profile-%d", idx+1)
		}
		if profile.CreatedAt.IsZero() {
			age := time.Duration(m.rand.Int64N(int64(profileMaxAge)))
			profile.CreatedAt = now.Add(-age)
		}
	}
}

func (m *Memory) Scholarships(ctx context.Context) ([]*Scholarship, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(m.seed.Scholarships), nil
}

func (m *Memory) Internships(ctx context.Context) ([]*Internship, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(m.seed.Internships), nil
}

func (m *Memory) Colleges(ctx context.Context) ([]*College, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(m.seed.Colleges), nil
}

func (m *Memory) CoachingCenters(ctx context.Context) ([]*CoachingCenter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(m.seed.CoachingCenters), nil
}

func (m *Memory) Profiles(ctx context.Context, excludeUserID string) ([]*Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	profiles := make([]*Profile, 0, len(m.seed.Profiles))
	for _, profile := range m.seed.Profiles {
		if excludeUserID != "" && profile.UserID == excludeUserID {
			continue
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func (m *Memory) ProfileByUser(ctx context.Context, userID string) (*Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, profile := range m.seed.Profiles {
		if profile.UserID == userID {
			return profile, nil
		}
	}
	return nil, fmt.Errorf("profile of user %q: %w", userID, ErrNotFound)
}

func (m *Memory) User(ctx context.Context, id string) (*User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, user := range m.seed.Users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, fmt.Errorf("user %q: %w", id, ErrNotFound)
}

func (m *Memory) CreateMatch(ctx context.Context, user1ID, user2ID string) (*Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if user1ID == "" || user2ID == "" {
		return nil, fmt.Errorf("both user ids are required")
	}

	now := m.now()
	match := &Match{
		ID:        "match-" + m.newID(),
		User1ID:   user1ID,
		User2ID:   user2ID,
		Status:    MatchPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	m.mu.Lock()
	m.matches = append(m.matches, match)
	m.mu.Unlock()

	m.logger.Debug("match created",
		zap.String("match_id", match.ID),
		zap.String("user1_id", user1ID),
		zap.String("user2_id", user2ID),
	)

	copied := *match
	return &copied, nil
}

func (m *Memory) UpdateMatch(ctx context.Context, id string, status MatchStatus) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if status != MatchAccepted && status != MatchRejected {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, match := range m.matches {
		if match.ID == id {
			match.Status = status
			match.UpdatedAt = m.now()
			return nil
		}
	}
	return fmt.Errorf("match %q: %w", id, ErrNotFound)
}

// UserMatches returns matches initiated by userID in creation order.
func (m *Memory) UserMatches(ctx context.Context, userID string) ([]*Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	matches := make([]*Match, 0)
	for _, match := range m.matches {
		if match.User1ID == userID {
			copied := *match
			matches = append(matches, &copied)
		}
	}
	return matches, nil
}

// prepareCoins copies the seeded ledger in date order. Entries without a
// date are stamped with the current time.
func (m *Memory) prepareCoins() {
	now := m.now()
	for _, coin := range m.seed.EduCoins {
		copied := *coin
		if copied.CreatedAt.IsZero() {
			copied.CreatedAt = now
		}
		m.coins = append(m.coins, &copied)
	}
	slices.SortStableFunc(m.coins, func(a, b *EduCoin) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
}

func (m *Memory) EduCoins(ctx context.Context, userID string) ([]*EduCoin, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	coins := make([]*EduCoin, 0)
	for _, coin := range m.coins {
		if coin.UserID == userID {
			copied := *coin
			coins = append(coins, &copied)
		}
	}
	return coins, nil
}

func (m *Memory) AddEduCoins(ctx context.Context, userID string, amount int, source, description string) (*EduCoin, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
	}

	coin := &EduCoin{
		ID:          "coin-" + m.newID(),
		UserID:      userID,
		Amount:      amount,
		Source:      source,
		Description: description,
		CreatedAt:   m.now(),
	}

	m.mu.Lock()
	m.coins = append(m.coins, coin)
	m.mu.Unlock()

	m.logger.Debug("edu coins added",
		zap.String("coin_id", coin.ID),
		zap.String("user_id", userID),
		zap.Int("amount", amount),
		zap.String("source", source),
	)

	copied := *coin
	return &copied, nil
}

func (m *Memory) Roadmap(ctx context.Context, userID string) (*Roadmap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, roadmap := range m.seed.Roadmaps {
		if roadmap.UserID == userID {
			copied := *roadmap
			copied.Steps = slices.Clone(roadmap.Steps)
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("roadmap of user %q: %w", userID, ErrNotFound)
}

// TotalCoins sums the amounts of coins.
func TotalCoins(coins []*EduCoin) int {
	total := 0
	for _, coin := range coins {
		total += coin.Amount
	}
	return total
}
