package app_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/DRSN-tech/sneakers-store/internal/app"
	"github.com/DRSN-tech/sneakers-store/internal/cfg"
	"github.com/DRSN-tech/sneakers-store/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(httpEnabled bool) *cfg.Config {
	port := ""
	if httpEnabled {
		port = "0"
	}

	return &cfg.Config{
		Log: &cfg.LogCfg{Level: slog.LevelInfo},
		Http: &cfg.HTTPConfig{
			Enabled:      httpEnabled,
			Port:         port,
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
			IdleTimeout:  time.Second,
		},
		App: &cfg.AppCfg{
			ShutdownTimeout: time.Second,
			ForcedTimeout:   time.Second,
		},
	}
}

func discard() logger.Logger {
	return logger.NewSlogLoggerWithWriter(io.Discard, slog.LevelDebug)
}

func TestRunPrintsReport(t *testing.T) {
	var out bytes.Buffer
	a, err := app.NewApp(testConfig(false), discard(), &out)
	require.NoError(t, err)

	require.NoError(t, a.Run(context.Background()))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 9)
	assert.True(t, strings.HasPrefix(lines[0], "[{ Brand: Jordan; Price: 30; Quantity: 210; }"))
	assert.Equal(t, strings.Repeat("-", 100), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "[{ Brand: Adidas; Price: 80; Quantity: 40; }, { Brand: Rick Owens;"))
	assert.Equal(t, strings.Repeat("-", 100), lines[3])
	assert.Equal(t, "1. Brand: Rick Owens, Price: 1100, Size: 10, Color: Blue, Quantity: 40, Number of sales: 10, Material: Mesh", lines[4])
	assert.Equal(t, "5. Brand: Jordan, Price: 30, Size: 8, Color: Black, Quantity: 210, Number of sales: 0, Material: Synthetic", lines[8])
}

func TestRunServesUntilCancelled(t *testing.T) {
	var out bytes.Buffer
	a, err := app.NewApp(testConfig(true), discard(), &out)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
	assert.NotEmpty(t, out.String())
}

func TestNewAppIncompleteConfig(t *testing.T) {
	_, err := app.NewApp(&cfg.Config{}, discard(), io.Discard)

	assert.Error(t, err)
}
