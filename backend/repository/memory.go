package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"fluidos/backend/models"
)

// MemoryStore keeps users and results in process memory. It backs both
// repository interfaces when STORAGE=memory.
type MemoryStore struct {
	mu           sync.RWMutex
	users        []models.User
	results      []models.Result
	lastUserID   uint
	lastResultID uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Users() UserRepository {
	return memoryUsers{s}
}

func (s *MemoryStore) Results() ResultRepository {
	return memoryResults{s}
}

type memoryUsers struct {
	s *MemoryStore
}

func (r memoryUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (r memoryUsers) Create(ctx context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return ErrDuplicateEmail
		}
	}
	r.s.lastUserID++
	user.ID = r.s.lastUserID
	if user.RegisteredAt.IsZero() {
		user.RegisteredAt = time.Now()
	}
	r.s.users = append(r.s.users, *user)
	return nil
}

type memoryResults struct {
	s *MemoryStore
}

func (r memoryResults) HasCorrect(ctx context.Context, user string, exercise int) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, res := range r.s.results {
		if res.User == user && res.Exercise == exercise && res.Status == models.StatusCorrect {
			return true, nil
		}
	}
	return false, nil
}

func (r memoryResults) Create(ctx context.Context, result *models.Result) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.lastResultID++
	result.ID = r.s.lastResultID
	r.s.results = append(r.s.results, *result)
	return nil
}

func (r memoryResults) TotalScore(ctx context.Context, user string) (float64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var total float64
	for _, res := range r.s.results {
		if res.User == user {
			total += res.Score
		}
	}
	return total, nil
}

func (r memoryResults) ListNewestFirst(ctx context.Context) ([]models.Result, error) {
	r.s.mu.RLock()
	results := make([]models.Result, len(r.s.results))
	copy(results, r.s.results)
	r.s.mu.RUnlock()

	sort.SliceStable(results, func(i, j int) bool {
		if !results[i].SubmittedAt.Equal(results[j].SubmittedAt) {
			return results[i].SubmittedAt.After(results[j].SubmittedAt)
		}
		return results[i].ID > results[j].ID
	})
	return results, nil
}
