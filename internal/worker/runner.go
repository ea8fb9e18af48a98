package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// loop runs tick once at start and then every interval until Stop.
type loop struct {
	name     string
	interval time.Duration
	tick     func(ctx context.Context)

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func (l *loop) Start(ctx context.Context) {
	if l.interval <= 0 {
		l.interval = time.Minute
	}
	ctx, l.cancel = context.WithCancel(ctx)
	slog.Info("starting background job", "job", l.name, "interval", l.interval.String())

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		ticker := time.NewTicker(l.interval)
		defer ticker.Stop()

		l.tick(ctx)
		for {
			select {
			case <-ticker.C:
				l.tick(ctx)
			case <-ctx.Done():
				slog.Info("background job stopped", "job", l.name)
				return
			}
		}
	}()
}

// Stop cancels the loop and waits for the running tick to return.
func (l *loop) Stop() {
	if l.cancel == nil {
		return
	}
	l.cancel()
	l.wg.Wait()
}
