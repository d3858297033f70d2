package server

import (
	"testing"
	"time"

	"talentscout/internal/conversation"
	"talentscout/internal/errors"
)

func newTestSessionManager(t *testing.T, ttl time.Duration, maxSessions int) *SessionManager {
	t.Helper()

	logger, err := errors.New("error")
	if err != nil {
		t.Fatal(err)
	}
	m := NewSessionManager(ttl, time.Hour, maxSessions,
		func() *conversation.Engine {
			return conversation.NewEngine(nil, 4, logger)
		}, nil, logger)
	t.Cleanup(m.Close)
	return m
}

func TestSessionManagerLifecycle(t *testing.T) {
	m := newTestSessionManager(t, time.Hour, 10)

	session, err := m.Create()
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}
	if session.ID == "" {
		t.Fatal("session has empty ID")
	}
	if m.Count() != 1 {
		t.Errorf("Count() = %d, want 1", m.Count())
	}

	got, err := m.Get(session.ID)
	if err != nil {
		t.Fatalf("Get() returned error: %v", err)
	}
	if got != session {
		t.Error("Get() returned a different session")
	}

	if _, err := m.Get("missing"); err == nil {
		t.Error("Get(missing) should fail")
	}

	if err := m.Delete(session.ID); err != nil {
		t.Fatalf("Delete() returned error: %v", err)
	}
	if m.Count() != 0 {
		t.Errorf("Count() after delete = %d, want 0", m.Count())
	}
	if err := m.Delete(session.ID); err == nil {
		t.Error("second Delete() should fail")
	}
}

func TestSessionManagerReset(t *testing.T) {
	m := newTestSessionManager(t, time.Hour, 10)

	session, err := m.Create()
	if err != nil {
		t.Fatal(err)
	}

	session.Engine.Respond(t.Context(), "start")
	session.Engine.Respond(t.Context(), "Ada Lovelace")
	if session.Engine.State() == conversation.StateGreeting {
		t.Fatal("engine did not advance")
	}

	reset, err := m.Reset(session.ID)
	if err != nil {
		t.Fatalf("Reset() returned error: %v", err)
	}
	if reset.ID != session.ID {
		t.Errorf("Reset changed ID: %q -> %q", session.ID, reset.ID)
	}
	if reset.Engine.State() != conversation.StateGreeting {
		t.Errorf("state after reset = %q, want greeting", reset.Engine.State())
	}
	if reset.Engine.Record().Name != "" {
		t.Error("record survived reset")
	}
}

func TestSessionManagerCapacity(t *testing.T) {
	m := newTestSessionManager(t, time.Hour, 1)

	if _, err := m.Create(); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Create(); err == nil {
		t.Error("Create() beyond capacity should fail")
	}
}

func TestSessionManagerEviction(t *testing.T) {
	m := newTestSessionManager(t, 10*time.Millisecond, 10)

	session, err := m.Create()
	if err != nil {
		t.Fatal(err)
	}

	time.Sleep(20 * time.Millisecond)
	m.evictExpired()

	if m.Count() != 0 {
		t.Errorf("Count() after eviction = %d, want 0", m.Count())
	}
	if _, err := m.Get(session.ID); err == nil {
		t.Error("evicted session still retrievable")
	}
}
