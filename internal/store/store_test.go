package store_test

import (
	"testing"
)

func TestLoadAbsentKeyReturnsNil(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)

	data, err := s.Load("u1", "profile")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if data != nil {
		t.Fatalf("expected nil for an absent key, got %q", data)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)

	if err := s.Save("u1", "profile", []byte(`{"weight":80}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := s.Load("u1", "profile")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(data) != `{"weight":80}` {
		t.Fatalf("unexpected value %q", data)
	}
}

func TestSaveOverwrites(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)

	if err := s.Save("u1", "profile", []byte(`{"weight":80}`)); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := s.Save("u1", "profile", []byte(`{"weight":79}`)); err != nil {
		t.Fatalf("second save: %v", err)
	}
	data, err := s.Load("u1", "profile")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(data) != `{"weight":79}` {
		t.Fatalf("expected the overwrite to win, got %q", data)
	}
}

func TestKeysAreScopedPerUser(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)

	if err := s.Save("u1", "profile", []byte(`{"weight":80}`)); err != nil {
		t.Fatalf("save u1: %v", err)
	}
	data, err := s.Load("u2", "profile")
	if err != nil {
		t.Fatalf("load u2: %v", err)
	}
	if data != nil {
		t.Fatalf("expected u2 to see nothing, got %q", data)
	}
}

func TestEmptyUserOrKeyRejected(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)

	if err := s.Save("", "profile", []byte(`{}`)); err == nil {
		t.Fatalf("expected empty user id to fail")
	}
	if err := s.Save("u1", "  ", []byte(`{}`)); err == nil {
		t.Fatalf("expected blank key to fail")
	}
	if _, err := s.Load("", "profile"); err == nil {
		t.Fatalf("expected empty user id to fail on load")
	}
}
