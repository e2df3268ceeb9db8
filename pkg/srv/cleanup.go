package srv

import "context"

// cleanupService only has work to do on shutdown.
type cleanupService struct {
	cleanup func() error
}

// Start blocks until ctx is done, so a cleanup never ends the session on its own.
func (c *cleanupService) Start(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

func (c *cleanupService) Shutdown(ctx context.Context) error {
	if c.cleanup != nil {
		return c.cleanup()
	}
	return nil
}

func NewCleanup(fn func() error) Service {
	return &cleanupService{cleanup: fn}
}
