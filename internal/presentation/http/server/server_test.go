package server

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/asikrahman/swe-portfolio-server/internal/application/container"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/logging"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/performance"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/persistence/filestore"
)

func TestStartStop(t *testing.T) {
	gin.SetMode(gin.TestMode)

	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		OutputToConsole: false,
		OutputToFile:    false,
		DefaultLevel:    slog.LevelError,
	})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	store, err := filestore.NewStore(t.TempDir(), logger)
	if err != nil {
		t.Fatalf("store: %v", err)
	}

	c := container.NewContainer(store, nil, logger, performance.NewTracker(logger))
	srv := New("0", c)

	done := make(chan error, 1)
	go func() { done <- srv.Start() }()

	// Let the listener come up before tearing it down.
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		t.Fatalf("stop: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("start returned error after clean shutdown: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not exit after shutdown")
	}
}
