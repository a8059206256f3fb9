package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/jbweber/dop/internal/config"
	"github.com/jbweber/dop/internal/droplet"
	"github.com/jbweber/dop/internal/sshclient"
)

var sshUser string

// sshTarget is the droplet to connect to and the arguments for ssh.
type sshTarget struct {
	name      string
	extraArgs []string
}

// parseSSHArgs splits "<name> [ssh-args...]".
func parseSSHArgs(args []string) sshTarget {
	return sshTarget{name: args[0], extraArgs: args[1:]}
}

// sshLogin picks the remote user: the --user flag, then the ssh config
// entry for the droplet name, then the configured default.
func sshLogin(flagUser string, target sshTarget, sshConfigPath string, cfg *config.Config) string {
	return sshclient.ResolveUser(flagUser, target.name, sshConfigPath, cfg.Defaults.User)
}

func init() {
	sshCmd.Flags().StringVarP(&sshUser, "user", "u", "", "Remote user (default from ~/.ssh/config, then config, then root)")
}

var sshCmd = &cobra.Command{
	Use:   "ssh <name> [-- ssh-args...]",
	Short: "SSH into a droplet",
	Long: `Open an SSH session to the droplet with the given name.

Connects to the droplet's public IPv4 address with the local ssh
client. Arguments after -- are passed to ssh.

Example:
  dop ssh node01
  dop ssh node01 -u deploy -- -A -L 8080:localhost:80`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := parseSSHArgs(args)

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		client, err := newAPIClient(cfg)
		if err != nil {
			return err
		}

		d, err := client.FindByName(cmd.Context(), target.name)
		if err != nil {
			return err
		}

		address, err := droplet.SSHAddress(d)
		if err != nil {
			return err
		}

		sshConfig, err := sshclient.DefaultConfigPath()
		if err != nil {
			log.Printf("Warning: %v", err)
		}
		user := sshLogin(sshUser, target, sshConfig, cfg)

		launcher := sshclient.NewLauncher()
		return launcher.Run(cmd.Context(), user, address, target.extraArgs)
	},
}
