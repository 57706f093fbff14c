package session

import (
	"testing"
	"time"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	data := map[string]interface{}{"user_id": uint(42), "name": "jane"}
	if err := s.Write("abc", data, time.Minute); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, ok := s.Read("abc")
	if !ok {
		t.Fatal("expected session to exist")
	}
	if got["name"] != "jane" {
		t.Errorf("got %v", got["name"])
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore()

	if err := s.Write("short", map[string]interface{}{"k": "v"}, -time.Second); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, ok := s.Read("short"); ok {
		t.Error("expired session should not be readable")
	}
}

func TestMemoryStoreDestroy(t *testing.T) {
	s := NewMemoryStore()

	_ = s.Write("gone", map[string]interface{}{"k": "v"}, time.Minute)
	if err := s.Destroy("gone"); err != nil {
		t.Fatalf("destroy: %v", err)
	}
	if _, ok := s.Read("gone"); ok {
		t.Error("destroyed session should not be readable")
	}
}

func TestMemoryStoreMissing(t *testing.T) {
	s := NewMemoryStore()
	if _, ok := s.Read("nope"); ok {
		t.Error("unknown id should not be readable")
	}
}

func TestSessionFlashIsOneShot(t *testing.T) {
	UseStore(NewMemoryStore())

	sess := &Session{id: "t1", data: map[string]interface{}{}, opts: DefaultOptions()}
	sess.Flash("notice", "saved")

	v, ok := sess.GetFlash("notice")
	if !ok || v != "saved" {
		t.Fatalf("first read should return the flash, got %v %v", v, ok)
	}
	if _, ok := sess.GetFlash("notice"); ok {
		t.Error("second read should find nothing")
	}
}

func TestSessionGetUintHandlesJSONNumbers(t *testing.T) {
	sess := &Session{id: "t2", data: map[string]interface{}{}, opts: DefaultOptions()}

	// Values restored from the Redis store arrive as float64.
	sess.data["user_id"] = float64(9)
	if n, ok := sess.GetUint("user_id"); !ok || n != 9 {
		t.Errorf("float64: got %d %v", n, ok)
	}

	sess.data["user_id"] = uint(3)
	if n, ok := sess.GetUint("user_id"); !ok || n != 3 {
		t.Errorf("uint: got %d %v", n, ok)
	}

	sess.data["user_id"] = "nope"
	if _, ok := sess.GetUint("user_id"); ok {
		t.Error("string should not parse as uint")
	}
}
