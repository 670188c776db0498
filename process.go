// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/creack/pty"
	"github.com/mattn/go-shellwords"
	"golang.org/x/term"

	"github.com/cybrota/artistfinder/actions"
	"github.com/cybrota/artistfinder/catalog"
)

// fullListing renders every catalog ID, perLine to a line. Unlike the list
// action it is not size limited, since the pager scrolls.
func fullListing(f *catalog.Finder, perLine int) string {
	return actions.FormatIDs(f.Sorted(), perLine)
}

// pagerCommand returns $PAGER split into a program and its arguments,
// falling back to less.
func pagerCommand() (string, []string) {
	pager := os.Getenv("PAGER")
	if pager == "" {
		return "less", nil
	}
	parts, err := shellwords.Parse(pager)
	if err != nil || len(parts) == 0 {
		return "less", nil
	}
	return parts[0], parts[1:]
}

// writeTempListing stores content in a temporary file for the pager.
func writeTempListing(content string) (string, error) {
	f, err := os.CreateTemp("", "artistfinder-*.txt")
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.WriteString(f, content); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

// runPager shows content in $PAGER running inside a pseudo-terminal.
func runPager(content string) error {
	path, err := writeTempListing(content)
	if err != nil {
		return fmt.Errorf("failed to write listing: %w", err)
	}
	defer os.Remove(path)

	name, args := pagerCommand()
	cmd := exec.Command(name, append(args, path)...)

	// Start the command in a pseudo-terminal.
	ptyFile, err := pty.Start(cmd)
	if err != nil {
		return fmt.Errorf("failed to start PTY: %w", err)
	}
	defer ptyFile.Close()

	// Keep the pty size in step with the real terminal.
	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)
	go func() {
		for range winch {
			_ = pty.InheritSize(os.Stdin, ptyFile)
		}
	}()
	winch <- syscall.SIGWINCH
	defer func() {
		signal.Stop(winch)
		close(winch)
	}()

	// The pager reads keys one at a time.
	if term.IsTerminal(int(os.Stdin.Fd())) {
		oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
		if err == nil {
			defer term.Restore(int(os.Stdin.Fd()), oldState)
		}
	}

	// Copy data between the PTY and the real terminal.
	go func() {
		_, _ = io.Copy(ptyFile, os.Stdin)
	}()
	go func() {
		_, _ = io.Copy(os.Stdout, ptyFile)
	}()

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("pager: %w", err)
	}
	return nil
}
