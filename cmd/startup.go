package main

import (
	"context"
	"fmt"

	"mypodinfo/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// startupStep is one fallible step of the startup sequence.
type startupStep struct {
	name string
	run  func(ctx context.Context) error
}

// runStartup runs steps in order and stops at the first failure.
// The failure is returned as startup_failure wrapping the step's own error.
func runStartup(ctx context.Context, logger log.Logger, steps []startupStep) error {
	for _, step := range steps {
		if err := step.run(ctx); err != nil {
			return service.NewStartupFailureError(fmt.Sprintf("startup step %q failed", step.name), err)
		}
		level.Info(logger).Log("msg", "Startup step completed", "step", step.name)
	}
	return nil
}
