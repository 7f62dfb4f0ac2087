// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package testutil

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestCaptureOutput(t *testing.T) {
	t.Run("captures stdout", func(t *testing.T) {
		output := CaptureOutput(t, func() error {
			fmt.Println("test output")
			return nil
		})

		if !strings.Contains(output, "test output") {
			t.Errorf("expected output to contain 'test output', got: %s", output)
		}
	})

	t.Run("restores stdout on error", func(t *testing.T) {
		output := CaptureOutput(t, func() error {
			fmt.Println("output before error")
			return errors.New("test error")
		})

		if !strings.Contains(output, "output before error") {
			t.Error("expected output to contain 'output before error'")
		}

		// Verify stdout is restored by printing to it.
		fmt.Println("stdout restored")
	})

	t.Run("handles empty output", func(t *testing.T) {
		output := CaptureOutput(t, func() error { return nil })
		if output != "" {
			t.Errorf("expected empty output, got: %s", output)
		}
	})

	t.Run("captures output larger than the read buffer", func(t *testing.T) {
		output := CaptureOutput(t, func() error {
			for i := 0; i < 200; i++ {
				fmt.Printf("line %d with some extra text to make it longer\n", i)
			}
			return nil
		})

		if !strings.Contains(output, "line 0") || !strings.Contains(output, "line 199") {
			t.Error("expected to find first and last lines")
		}
	})
}
