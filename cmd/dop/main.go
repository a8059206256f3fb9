package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/jbweber/dop/internal/config"
	"github.com/jbweber/dop/internal/droplet"
	"github.com/jbweber/dop/internal/naming"
	"github.com/jbweber/dop/internal/output"
	"github.com/jbweber/dop/internal/prompt"
)

var (
	version = "dev"
	commit  = "unknown"
)

// Global flags
var (
	verbose    bool
	configPath string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, exitMessage(err))
		stop()
		os.Exit(1)
	}
}

// exitMessage renders err for stderr. Configuration, collision, lookup and
// attribute errors print fixed messages; anything else gets an "Error: "
// prefix.
func exitMessage(err error) string {
	var (
		collision *droplet.CollisionError
		notFound  *droplet.NotFoundError
		unknown   *output.UnknownAttributesError
	)

	switch {
	case errors.Is(err, config.ErrMissingToken):
		return "The DO API token should be configured. Please read README.MD to fix this issue"
	case errors.Is(err, config.ErrMissingSSHKeys):
		return "SSH key IDs should be configured. Please read README.MD to fix this issue"
	case errors.As(err, &collision):
		return "The droplets with following names already exist:\n" + naming.JoinNames(collision.Names)
	case errors.As(err, &notFound):
		return fmt.Sprintf("Droplet %s not found", notFound.Name)
	case errors.As(err, &unknown):
		return unknown.Error()
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dop",
	Short: "dop - DigitalOcean droplet tool",
	Long: `dop is a CLI tool for creating, listing, destroying and connecting to
DigitalOcean droplets.

The API token is read from DIGITAL_OCEAN_TOKEN and the SSH key IDs
installed on new droplets from DIGITAL_OCEAN_SSH_KEYS (comma separated).
Defaults for size, region, image and friends can be set in a YAML file
(see --config).`,
	Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetOutput(cmd.ErrOrStderr())
		} else {
			log.SetOutput(io.Discard)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log API activity to stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Defaults file (default $DOP_CONFIG or ~/.config/dop/config.yaml)")

	rootCmd.AddCommand(dropletCmd)
	rootCmd.AddCommand(sshCmd)
	rootCmd.AddCommand(listCmd)
}

// loadConfig reads the environment and the defaults file.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath(os.Getenv)
		if err != nil {
			log.Printf("Warning: no defaults file: %v", err)
		}
	}
	return config.Load(os.Getenv, path)
}

// newAPIClient creates an API client, failing when no token is configured.
func newAPIClient(cfg *config.Config) (*droplet.Client, error) {
	if err := cfg.RequireToken(); err != nil {
		return nil, err
	}
	return droplet.NewClient(cfg.Token, droplet.WithUserAgent("dop/"+version))
}

// newTerminal wires a prompt.Terminal to the command's streams.
func newTerminal(cmd *cobra.Command) *prompt.Terminal {
	return prompt.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
}
