package devicesync

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"github.com/campus-mis/attendance-backend-go/internal/config"
)

// Runner executes the external device sync script. The script owns the
// vendor SDK conversation with the biometric terminals; the backend only
// shells out and waits.
type Runner interface {
	Run(ctx context.Context, args ...string) error
	Configured() bool
}

type ScriptRunner struct {
	scriptPath string
	timeout    time.Duration
	logger     *slog.Logger
}

func NewScriptRunner(cfg config.DeviceSyncConfig, logger *slog.Logger) (*ScriptRunner, error) {
	timeout, err := time.ParseDuration(cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid device sync timeout %q: %w", cfg.Timeout, err)
	}

	return &ScriptRunner{
		scriptPath: cfg.ScriptPath,
		timeout:    timeout,
		logger:     logger,
	}, nil
}

// Configured reports whether a script path was set.
func (r *ScriptRunner) Configured() bool {
	return r.scriptPath != ""
}

// Run invokes the script synchronously and waits for it to exit. The
// call fails when the script exits non-zero or the timeout elapses.
func (r *ScriptRunner) Run(ctx context.Context, args ...string) error {
	if !r.Configured() {
		return fmt.Errorf("device sync script is not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.scriptPath, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		r.logger.Error("device sync script failed",
			slog.String("script", r.scriptPath),
			slog.Any("args", args),
			slog.String("output", string(output)),
			slog.Any("error", err),
		)
		return fmt.Errorf("device sync script failed: %w", err)
	}

	r.logger.Info("device sync script completed",
		slog.String("script", r.scriptPath),
		slog.Any("args", args),
	)
	return nil
}
