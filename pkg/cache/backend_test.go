package cache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/matzehuels/qrsvg/pkg/errors"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "c")

	tests := []struct {
		name     string
		cfg      Config
		wantType string
		code     errors.Code
	}{
		{"empty", Config{}, "null", ""},
		{"implicit file", Config{Dir: dir}, "file", ""},
		{"explicit none", Config{Backend: BackendNone, Dir: dir}, "null", ""},
		{"file without dir", Config{Backend: BackendFile}, "", errors.ErrCodeInvalidConfig},
		{"redis without url", Config{Backend: BackendRedis}, "", errors.ErrCodeInvalidConfig},
		{"redis bad url", Config{Backend: BackendRedis, RedisURL: "http://nope"}, "", errors.ErrCodeCache},
		{"mongo without uri", Config{Backend: BackendMongo}, "", errors.ErrCodeInvalidConfig},
		{"unknown", Config{Backend: "memcached"}, "", errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Open(ctx, tt.cfg)
			if tt.code != "" {
				if got := errors.GetCode(err); got != tt.code {
					t.Fatalf("code = %v, want %v (err %v)", got, tt.code, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			defer c.Close()
			var got string
			switch c.(type) {
			case *NullCache:
				got = "null"
			case *FileCache:
				got = "file"
			}
			if got != tt.wantType {
				t.Errorf("backend = %s, want %s", got, tt.wantType)
			}
		})
	}
}
