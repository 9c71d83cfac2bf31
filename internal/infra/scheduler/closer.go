package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"gin-auction-service/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

const runTimeout = time.Minute

type AuctionCloser interface {
	CloseEndedAuctions(ctx context.Context) (int, error)
}

// Closer periodically completes auctions whose end time has passed.
type Closer struct {
	cron   *cron.Cron
	spec   string
	closer AuctionCloser
	logger *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
}

func NewCloser(spec string, closer AuctionCloser, logger *slog.Logger) *Closer {
	return &Closer{
		cron: cron.New(cron.WithChain(
			cron.Recover(cronLogger{logger}),
			cron.SkipIfStillRunning(cronLogger{logger}),
		)),
		spec:   spec,
		closer: closer,
		logger: logger,
	}
}

func (s *Closer) Start() error {
	ctx, cancel := context.WithCancel(context.Background())

	if _, err := s.cron.AddFunc(s.spec, func() { s.RunOnce(ctx) }); err != nil {
		cancel()
		return errs.Wrapf(err, "invalid close schedule %q", s.spec)
	}

	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	s.cron.Start()
	s.logger.Info("auction closer started", "spec", s.spec)
	return nil
}

// Stop cancels an in-flight run and waits for it to return or ctx to expire.
func (s *Closer) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()

	select {
	case <-s.cron.Stop().Done():
		s.logger.Info("auction closer stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Closer) RunOnce(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	closed, err := s.closer.CloseEndedAuctions(ctx)
	if err != nil {
		s.logger.Error("failed to close ended auctions", "closed", closed, "error", err.Error())
		return
	}
	if closed > 0 {
		s.logger.Info("closed ended auctions", "closed", closed)
	}
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, append(keysAndValues, "error", err.Error())...)
}
