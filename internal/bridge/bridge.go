package bridge

import (
	"context"
	"fmt"
	"log"
	"os/exec"
	"time"
)

// ScriptRunner executes one automation script against the player and
// returns whatever the script printed to stdout. Implemented by the
// osascript runner in production and by fakes in tests.
type ScriptRunner interface {
	Run(ctx context.Context, script string) ([]byte, error)
}

// Per-call deadlines. The player gives no bound of its own, so every
// invocation carries one: the status poll must come back well inside the
// poll cadence, transport commands are small, and library enumerations
// can legitimately take a while on large playlists.
const (
	statusTimeout  = 3 * time.Second
	commandTimeout = 5 * time.Second
	libraryTimeout = 15 * time.Second
)

// Bridge is the control surface for the external player. It exposes two
// tiers: fixed transport commands whose failures are swallowed, and
// parameterized scripting queries that return a single JSON document.
type Bridge struct {
	run ScriptRunner
}

// Ensure the production runner satisfies the interface.
var _ ScriptRunner = osaRunner{}

// New returns a Bridge backed by the osascript runner.
func New() *Bridge {
	return &Bridge{run: osaRunner{}}
}

// NewWithRunner returns a Bridge backed by the given runner.
func NewWithRunner(r ScriptRunner) *Bridge {
	return &Bridge{run: r}
}

// osaRunner invokes the macOS automation runtime as a subprocess, one
// process per call.
type osaRunner struct{}

func (osaRunner) Run(ctx context.Context, script string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "osascript", "-l", "JavaScript", "-e", script)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("osascript: %w", err)
	}
	return out, nil
}

// command issues a fire-and-forget script. Failures are logged and
// otherwise dropped; a flaky player must not surface errors mid-session.
func (b *Bridge) command(name, script string) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	if _, err := b.run.Run(ctx, script); err != nil {
		log.Printf("bridge: %s failed: %v", name, err)
	}
}

// query issues a script expected to print a JSON document and returns
// the raw bytes.
func (b *Bridge) query(name, script string, timeout time.Duration) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	out, err := b.run.Run(ctx, script)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}
