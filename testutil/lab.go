package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// SeedParticipants creates empty session snapshots for participants 1..n of
// the named experiment, so allocation tests see a partially used data folder.
func SeedParticipants(t *testing.T, dir, experiment string, n int) {
	t.Helper()

	for pp := 1; pp <= n; pp++ {
		name := fmt.Sprintf("%s_pp%d.yaml", experiment, pp)
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}\n"), 0o600); err != nil {
			t.Fatalf("failed to seed participant %d: %v", pp, err)
		}
	}
}
