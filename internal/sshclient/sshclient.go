// Package sshclient launches the local ssh binary against a droplet.
package sshclient

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/kevinburke/ssh_config"
)

// DefaultBinary is the ssh client looked up on PATH.
const DefaultBinary = "ssh"

// DefaultConfigPath returns ~/.ssh/config.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".ssh", "config"), nil
}

// ResolveUser picks the remote login for host.
//
// Precedence: explicit (the --user flag), then the User setting for host in
// the ssh config at configPath, then fallback. An unreadable or missing
// config file is skipped.
func ResolveUser(explicit, host, configPath, fallback string) string {
	if explicit != "" {
		return explicit
	}
	if configPath == "" {
		return fallback
	}

	f, err := os.Open(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: failed to open ssh config %s: %v", configPath, err)
		}
		return fallback
	}
	defer f.Close()

	cfg, err := ssh_config.Decode(f)
	if err != nil {
		log.Printf("Warning: failed to parse ssh config %s: %v", configPath, err)
		return fallback
	}

	user, err := cfg.Get(host, "User")
	if err != nil || user == "" {
		return fallback
	}
	log.Printf("Using user %q from %s for host %s", user, configPath, host)
	return user
}

// Launcher runs the ssh client attached to the given streams.
type Launcher struct {
	// Binary is the ssh executable; DefaultBinary when empty.
	Binary string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// run executes the prepared command. Tests replace it.
	run func(*exec.Cmd) error
}

// NewLauncher creates a Launcher wired to the process's standard streams.
func NewLauncher() *Launcher {
	return &Launcher{
		Binary: DefaultBinary,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Command prepares "ssh [extraArgs...] user@address".
func (l *Launcher) Command(ctx context.Context, user, address string, extraArgs []string) *exec.Cmd {
	binary := l.Binary
	if binary == "" {
		binary = DefaultBinary
	}

	args := append(append([]string(nil), extraArgs...), fmt.Sprintf("%s@%s", user, address))
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr
	return cmd
}

// Run connects to address as user and waits for the session to end.
func (l *Launcher) Run(ctx context.Context, user, address string, extraArgs []string) error {
	cmd := l.Command(ctx, user, address, extraArgs)
	log.Printf("Running %s", cmd.String())

	run := l.run
	if run == nil {
		run = (*exec.Cmd).Run
	}
	if err := run(cmd); err != nil {
		return fmt.Errorf("ssh to %s@%s failed: %w", user, address, err)
	}
	return nil
}
