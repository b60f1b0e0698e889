package app

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/marketfee-next/internal/config"
)

func TestParseMode(t *testing.T) {
	cases := map[string]string{"": ModeAll, " Worker ": ModeWorker, "api": ModeAPI}
	for raw, want := range cases {
		got, err := ParseMode(raw)
		if err != nil || got != want {
			t.Fatalf("ParseMode(%q) want %s got %s err=%v", raw, want, got, err)
		}
	}
	if _, err := ParseMode("cron"); err == nil {
		t.Fatalf("unknown mode should fail")
	}
	if _, err := BuildRunner(&config.Config{}, "cron"); err == nil {
		t.Fatalf("BuildRunner should reject unknown mode")
	}
}

func TestWorkerOnlyRunsWithQueueInAllMode(t *testing.T) {
	cfg := &config.Config{}
	if (Options{Config: cfg, Mode: ModeAll}).runsWorker() {
		t.Fatalf("all mode without queue should not run worker")
	}
	cfg.Queue.Enabled = true
	if !(Options{Config: cfg, Mode: ModeAll}).runsWorker() {
		t.Fatalf("all mode with queue should run worker")
	}
	if (Options{Config: cfg, Mode: ModeWorker}).runsHTTP() {
		t.Fatalf("worker mode should not serve http")
	}
}

func TestHTTPServiceStartStop(t *testing.T) {
	svc := NewHTTPService("127.0.0.1:0", http.NotFoundHandler())
	done := make(chan error, 1)
	go func() { done <- svc.Start(context.Background()) }()

	time.Sleep(50 * time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := svc.Stop(ctx); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("start should return nil after stop, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("http service did not stop")
	}
}
