package app

import (
	"bytes"
	"context"
	"os"
	"sync"
	"testing"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates a new app instance for system testing. Stdout and
// stderr are captured separately.
func SetupAppTest(t *testing.T, cfg Config, opts ...Option) (*App, *SafeBuffer, *SafeBuffer, error) {
	t.Helper()

	stdout, stderr := &SafeBuffer{}, &SafeBuffer{}
	config, err := NewConfig(cfg)
	if err != nil {
		return nil, stdout, stderr, err
	}
	opts = append([]Option{WithOutput(stdout, stderr)}, opts...)
	testApp, err := New(context.Background(), config, opts...)

	t.Cleanup(func() {
		if os.Getenv("BRICKS_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), stderr.String())
		}
	})

	return testApp, stdout, stderr, err
}
