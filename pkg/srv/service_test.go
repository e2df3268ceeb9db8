package srv

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	mu       sync.Mutex
	startErr error
	block    bool
	order    *[]string
	name     string
}

func (f *fakeService) Start(ctx context.Context) error {
	if f.block {
		<-ctx.Done()
	}
	return f.startErr
}

func (f *fakeService) Shutdown(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	*f.order = append(*f.order, f.name)
	return nil
}

func TestServices_FinishedServiceStopsAll(t *testing.T) {
	tests := []struct {
		name     string
		startErr error
	}{
		{name: "clean return"},
		{name: "error return", startErr: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, stop := context.WithCancel(context.Background())
			defer stop()

			var order []string
			var cleaned bool
			services := []Service{
				NewCleanup(func() error { cleaned = true; return nil }),
				&fakeService{block: true, order: &order, name: "blocking"},
				&fakeService{startErr: tt.startErr, order: &order, name: "session"},
			}

			StartServices(ctx, stop, services)

			done := make(chan struct{})
			go func() {
				ShutdownServices(ctx, services)
				close(done)
			}()

			select {
			case <-done:
			case <-time.After(2 * time.Second):
				t.Fatal("services did not shut down")
			}

			assert.Equal(t, []string{"session", "blocking"}, order)
			assert.True(t, cleaned)
		})
	}
}
