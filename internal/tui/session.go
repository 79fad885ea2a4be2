package tui

import (
	"strconv"
	"sync"

	"github.com/ebelikov/lotus/models"
)

// session is the package-level view of the open session. The points balance
// is kept separately because the background refresh worker updates it from
// outside the Bubble Tea loop.
var session struct {
	mu     sync.RWMutex
	user   models.SessionUser
	open   bool
	points int64
}

func setSession(user models.SessionUser) {
	session.mu.Lock()
	defer session.mu.Unlock()
	session.user = user
	session.open = true
	if p, err := strconv.ParseInt(user.Points, 10, 64); err == nil {
		session.points = p
	}
}

func sessionOpen() bool {
	session.mu.RLock()
	defer session.mu.RUnlock()
	return session.open
}

func sessionUsername() string {
	session.mu.RLock()
	defer session.mu.RUnlock()
	return session.user.Username
}

func setSessionPoints(points int64) {
	session.mu.Lock()
	defer session.mu.Unlock()
	session.points = points
}

func sessionPoints() int64 {
	session.mu.RLock()
	defer session.mu.RUnlock()
	return session.points
}
