package caching

import (
	"errors"
	"testing"
	"time"
)

func TestGetOrLoadCachesResult(t *testing.T) {
	cc := NewContentCache(time.Minute)

	calls := 0
	load := func() ([]string, error) {
		calls++
		return []string{"Go", "React"}, nil
	}

	for i := 0; i < 3; i++ {
		got, err := GetOrLoad(cc, KeySkills, load)
		if err != nil {
			t.Fatalf("load %d: %v", i, err)
		}
		if len(got) != 2 {
			t.Fatalf("unexpected value: %+v", got)
		}
	}
	if calls != 1 {
		t.Fatalf("loader called %d times, want 1", calls)
	}
}

func TestGetOrLoadErrorNotCached(t *testing.T) {
	cc := NewContentCache(time.Minute)
	boom := errors.New("storage down")

	fail := true
	load := func() (string, error) {
		if fail {
			return "", boom
		}
		return "ok", nil
	}

	if _, err := GetOrLoad(cc, KeyProfile, load); !errors.Is(err, boom) {
		t.Fatalf("expected loader error, got %v", err)
	}
	if _, found := cc.Get(KeyProfile); found {
		t.Fatal("failed load must not populate the cache")
	}

	fail = false
	got, err := GetOrLoad(cc, KeyProfile, load)
	if err != nil || got != "ok" {
		t.Fatalf("expected recovery after loader succeeds, got %q (%v)", got, err)
	}
}

func TestInvalidateForcesReload(t *testing.T) {
	cc := NewContentCache(time.Minute)

	calls := 0
	load := func() (int, error) {
		calls++
		return calls, nil
	}

	if got, _ := GetOrLoad(cc, KeyBlogs, load); got != 1 {
		t.Fatalf("first load returned %d", got)
	}
	cc.Invalidate(KeyBlogs, KeyProjects)
	if got, _ := GetOrLoad(cc, KeyBlogs, load); got != 2 {
		t.Fatalf("expected reload after invalidation, got %d", got)
	}
}

func TestEntriesExpire(t *testing.T) {
	cc := NewContentCache(20 * time.Millisecond)
	cc.Set(KeyEducation, "cached")

	if _, found := cc.Get(KeyEducation); !found {
		t.Fatal("fresh entry missing")
	}
	time.Sleep(40 * time.Millisecond)
	if _, found := cc.Get(KeyEducation); found {
		t.Fatal("entry must expire after the TTL")
	}
}
