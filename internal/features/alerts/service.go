package alerts

import (
	"sync"
	"time"
)

// maxAlerts caps the in memory feed. Older alerts fall off the end.
const maxAlerts = 50

type Service struct {
	mu     sync.RWMutex
	alerts []*Alert
}

func NewService() *Service {
	return &Service{
		alerts: make([]*Alert, 0, maxAlerts),
	}
}

func (s *Service) record(kind AlertKind, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.alerts = append([]*Alert{{
		Kind:      kind,
		Message:   message,
		CreatedAt: time.Now(),
	}}, s.alerts...)

	if len(s.alerts) > maxAlerts {
		s.alerts = s.alerts[:maxAlerts]
	}
}

// getAllAlerts returns the feed newest first.
func (s *Service) getAllAlerts() []*Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Alert, len(s.alerts))
	copy(out, s.alerts)

	return out
}
