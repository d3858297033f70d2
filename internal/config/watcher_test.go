package config

import (
	"os"
	"sync"
	"testing"
	"time"

	"talentscout/internal/errors"
)

func writeConfigFile(t *testing.T, maxQuestions string) {
	t.Helper()
	content := "interview:\n  maxQuestions: " + maxQuestions + "\n"
	if err := os.WriteFile("config.yaml", []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestWatchPublishesReloadedTunables(t *testing.T) {
	t.Chdir(t.TempDir())
	writeConfigFile(t, "5")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}
	if got := cfg.InterviewSettings().MaxQuestions; got != 5 {
		t.Fatalf("maxQuestions = %d, want 5", got)
	}

	logger, err := errors.New("error")
	if err != nil {
		t.Fatal(err)
	}

	changes := make(chan *Config, 8)
	cfg.Watch(logger, func(fresh *Config) {
		cfg.ApplyReload(fresh)
		changes <- fresh
	})

	// Handlers keep reading while the watch goroutine publishes.
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				_ = cfg.InterviewSettings().MaxQuestions
				_ = cfg.AppSettings().DefaultFormat
			}
		}
	}()
	defer func() {
		close(stop)
		wg.Wait()
	}()

	// An invalid rewrite must never reach the callback; the valid one must.
	writeConfigFile(t, "0")
	time.Sleep(100 * time.Millisecond)
	writeConfigFile(t, "7")

	deadline := time.After(5 * time.Second)
	for {
		select {
		case fresh := <-changes:
			if err := fresh.Validate(); err != nil {
				t.Fatalf("callback received invalid config: %v", err)
			}
			if fresh.Interview.MaxQuestions == 7 {
				if got := cfg.InterviewSettings().MaxQuestions; got != 7 {
					t.Errorf("published maxQuestions = %d, want 7", got)
				}
				return
			}
		case <-deadline:
			t.Fatal("reload callback never fired")
		}
	}
}

func TestApplyReloadConcurrentReaders(t *testing.T) {
	cfg := validConfig()

	var wg sync.WaitGroup
	start := make(chan struct{})

	wg.Add(2)
	go func() {
		defer wg.Done()
		<-start
		for i := 0; i < 500; i++ {
			fresh := validConfig()
			fresh.Interview.MaxQuestions = 1 + i%10
			fresh.App.DefaultFormat = "csv"
			cfg.ApplyReload(fresh)
		}
	}()
	go func() {
		defer wg.Done()
		<-start
		for i := 0; i < 500; i++ {
			if q := cfg.InterviewSettings().MaxQuestions; q < 1 || q > 10 {
				t.Errorf("maxQuestions = %d, outside [1,10]", q)
				return
			}
			_ = cfg.AppSettings().DefaultFormat
		}
	}()

	close(start)
	wg.Wait()
}
