package config

import (
	"reflect"
	"testing"
)

func TestSplitOrigins(t *testing.T) {
	cases := []struct {
		raw  string
		want []string
	}{
		{"http://localhost:3000", []string{"http://localhost:3000"}},
		{"http://a.dev, http://b.dev", []string{"http://a.dev", "http://b.dev"}},
		{" http://a.dev ,, ", []string{"http://a.dev"}},
		{"", []string{}},
	}
	for _, tc := range cases {
		if got := splitOrigins(tc.raw); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("splitOrigins(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestDefaults(t *testing.T) {
	// init() has already run; spot-check values that other packages rely on.
	if StoreBackend != "file" && StoreBackend != "mongo" {
		t.Fatalf("unexpected store backend %q", StoreBackend)
	}
	if BcryptCost < 4 {
		t.Fatalf("bcrypt cost %d below the library minimum", BcryptCost)
	}
	if MaxUploadMB <= 0 {
		t.Fatalf("upload cap must be positive, got %d", MaxUploadMB)
	}
	if AuthTokenTTL <= 0 {
		t.Fatalf("token ttl must be positive, got %s", AuthTokenTTL)
	}
}
