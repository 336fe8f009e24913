package memory

import (
	"activityBoard/internal/models"
	"activityBoard/internal/storage"
	"slices"
	"sync"
)

// Storage keeps activities in process memory; every restart starts from the seed.
type Storage struct {
	mu         sync.RWMutex
	activities models.ActivityCollection
}

func New(seed models.ActivityCollection) *Storage {
	s := &Storage{activities: make(models.ActivityCollection, 0, len(seed))}
	for _, a := range seed {
		a.Participants = slices.Clone(a.Participants)
		s.activities = append(s.activities, a)
	}

	return s
}

func NewSeeded() *Storage {
	return New(Seed())
}

func (s *Storage) Close() error {
	return nil
}

func (s *Storage) GetActivities() (models.ActivityCollection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(models.ActivityCollection, len(s.activities))
	for i, a := range s.activities {
		a.Participants = slices.Clone(a.Participants)
		if a.Participants == nil {
			a.Participants = []string{}
		}
		out[i] = a
	}

	return out, nil
}

func (s *Storage) SignUp(activityName, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(activityName)
	if i < 0 {
		return storage.ErrActivityNotFound
	}

	a := &s.activities[i]
	if slices.Contains(a.Participants, email) {
		return storage.ErrAlreadySignedUp
	}
	if a.SpotsLeft() <= 0 {
		return storage.ErrActivityFull
	}

	a.Participants = append(a.Participants, email)

	return nil
}

func (s *Storage) Unregister(activityName, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(activityName)
	if i < 0 {
		return storage.ErrActivityNotFound
	}

	a := &s.activities[i]
	j := slices.Index(a.Participants, email)
	if j < 0 {
		return storage.ErrNotSignedUp
	}

	a.Participants = slices.Delete(a.Participants, j, j+1)

	return nil
}

func (s *Storage) index(name string) int {
	return slices.IndexFunc(s.activities, func(a models.Activity) bool {
		return a.Name == name
	})
}
