// internal/registry/registry.go
package registry

import (
	"fmt"
	"sync"

	"activity-signup/internal/common/errors"
	"activity-signup/internal/common/logger"
	"activity-signup/internal/models"
	"activity-signup/pkg/catalog"
)

// Registry is the in-memory store of all activities and the sole source of
// truth for rosters. Handlers run on parallel goroutines, so every
// read-check-mutate sequence holds the mutex for its full extent.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]*models.Activity
	seed       *catalog.ActivityCatalog
	logger     logger.Logger
}

// New builds a registry from a validated seed catalog.
func New(cat *catalog.ActivityCatalog, log logger.Logger) *Registry {
	r := &Registry{
		seed:   cat,
		logger: log.WithFields(map[string]interface{}{"component": "registry"}),
	}
	r.loadSeed()
	return r
}

func (r *Registry) loadSeed() {
	activities := make(map[string]*models.Activity, len(r.seed.Activities))
	for _, entry := range r.seed.Activities {
		participants := make([]string, len(entry.Participants))
		copy(participants, entry.Participants)
		activities[entry.Name] = &models.Activity{
			Description:     entry.Description,
			Schedule:        entry.Schedule,
			MaxParticipants: entry.MaxParticipants,
			Participants:    participants,
		}
	}
	r.mu.Lock()
	r.activities = activities
	r.mu.Unlock()
}

// Reset restores every roster to its seed state. Test support only.
func (r *Registry) Reset() {
	r.loadSeed()
}

// Len returns the number of activities.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.activities)
}

// List returns a snapshot of every activity keyed by name. The snapshot is
// detached: callers may mutate it freely.
func (r *Registry) List() map[string]models.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]models.Activity, len(r.activities))
	for name, activity := range r.activities {
		out[name] = activity.Clone()
	}
	return out
}

// Signup appends email to the activity's roster. Preconditions are checked in
// order: the activity must exist, then the email must not already be enrolled.
// A failed precondition leaves the registry untouched.
func (r *Registry) Signup(activityName, email string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[activityName]
	if !ok {
		return "", errors.NewActivityNotFoundError(activityName)
	}
	if activity.HasParticipant(email) {
		return "", errors.NewAlreadySignedUpError(email, activityName)
	}

	activity.Participants = append(activity.Participants, email)

	r.logger.Info("participant signed up", map[string]interface{}{
		"activity": activityName,
		"email":    email,
		"enrolled": len(activity.Participants),
	})

	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

// Unregister removes email from the activity's roster. Preconditions are
// checked in order: the activity must exist, then the email must be enrolled.
// A failed precondition leaves the registry untouched.
func (r *Registry) Unregister(activityName, email string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[activityName]
	if !ok {
		return "", errors.NewActivityNotFoundError(activityName)
	}

	removed := false
	for i, p := range activity.Participants {
		if p == email {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			removed = true
			break
		}
	}
	if !removed {
		return "", errors.NewNotRegisteredError(email, activityName)
	}

	r.logger.Info("participant unregistered", map[string]interface{}{
		"activity": activityName,
		"email":    email,
		"enrolled": len(activity.Participants),
	})

	return fmt.Sprintf("Unregistered %s from %s", email, activityName), nil
}
