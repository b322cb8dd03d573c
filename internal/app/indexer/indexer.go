package indexer

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/solindexer/sonar/internal/app"
)

var _ app.IndexerService = (*Service)(nil)

type Service struct {
	*app.IndexerConfig

	run bool
	mx  sync.RWMutex
	wg  sync.WaitGroup
}

func NewService(cfg *app.IndexerConfig) *Service {
	return &Service{IndexerConfig: cfg}
}

func (s *Service) running() bool {
	s.mx.RLock()
	defer s.mx.RUnlock()

	return s.run
}

func (s *Service) Start() error {
	s.mx.Lock()
	s.run = true
	s.mx.Unlock()

	s.wg.Add(1)
	go s.scanLoop()

	log.Info().
		Dur("poll_interval", s.PollInterval).
		Msg("started")

	return nil
}

func (s *Service) Stop() {
	s.mx.Lock()
	s.run = false
	s.mx.Unlock()

	s.wg.Wait()
}

// scanLoop runs one cycle immediately and then one per poll interval. A cycle
// always finishes (or fails) before the next timer arms, so cycles never
// overlap and a failed cycle simply waits out the interval before retrying
// the same window.
func (s *Service) scanLoop() {
	defer s.wg.Done()

	for s.running() {
		if err := s.runCycle(context.Background()); err != nil {
			log.Error().Err(err).Msg("scan cycle")
		}

		s.idle(s.PollInterval)
	}
}

func (s *Service) idle(d time.Duration) {
	deadline := time.Now().Add(d)
	for s.running() && time.Now().Before(deadline) {
		time.Sleep(250 * time.Millisecond)
	}
}
