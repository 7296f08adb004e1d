// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package fire

import (
	"context"
	"fmt"
	"time"
)

// waitForCondition polls a condition function with exponential backoff until
// it returns true or the context is done.
func waitForCondition(ctx context.Context, condition func() (bool, error)) error {
	const (
		minDelay   = 2 * time.Second
		maxDelay   = 30 * time.Second
		maxRetries = 30
	)

	delay := minDelay
	for i := 0; i < maxRetries; i++ {
		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting cancelled: %w", ctx.Err())
		default:
		}

		ready, err := condition()
		if err != nil {
			return fmt.Errorf("error checking condition: %w", err)
		}
		if ready {
			return nil
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("waiting cancelled: %w", ctx.Err())
		case <-timer.C:
		}

		delay *= 2
		if delay > maxDelay {
			delay = maxDelay
		}
	}

	return fmt.Errorf("timeout waiting for condition after %d retries", maxRetries)
}