package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/ultracoach/ultracoach/internal/coaching/store"
)

// Housekeeping defaults. The retention window keeps recently expired
// invitations around so their inviters can still resend them; expiry
// enforcement itself stays lazy at the point of use.
const (
	DefaultSweepInterval  = time.Hour
	DefaultSweepRetention = 30 * 24 * time.Hour
)

// HousekeepingService periodically deletes invitations that expired long
// enough ago that nobody will resend them.
type HousekeepingService struct {
	Store     store.Store
	Logger    *slog.Logger
	Interval  time.Duration
	Retention time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

func (s *HousekeepingService) interval() time.Duration {
	if s.Interval > 0 {
		return s.Interval
	}
	return DefaultSweepInterval
}

func (s *HousekeepingService) retention() time.Duration {
	if s.Retention > 0 {
		return s.Retention
	}
	return DefaultSweepRetention
}

// Start launches the sweep loop. It runs one sweep immediately, then one
// per interval until Stop is called.
func (s *HousekeepingService) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)

		ticker := time.NewTicker(s.interval())
		defer ticker.Stop()

		s.Sweep(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep(ctx)
			}
		}
	}()
}

// Stop halts the loop and waits for an in-flight sweep to finish.
func (s *HousekeepingService) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}

// Sweep deletes invitations whose expiry is older than the retention
// window. Exported so operators can trigger it out of band.
func (s *HousekeepingService) Sweep(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-s.retention())

	if err := s.Store.Invitations().DeleteInvitationsExpiredBefore(ctx, cutoff); err != nil {
		s.Logger.Error("invitation sweep failed", slog.Any("error", err))
		return
	}
	s.Logger.Debug("invitation sweep completed", slog.Time("cutoff", cutoff))
}
