package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jbweber/dop/internal/config"
	"github.com/jbweber/dop/internal/droplet"
	"github.com/jbweber/dop/internal/userdata"
)

// Droplet management commands
var dropletCmd = &cobra.Command{
	Use:   "droplet",
	Short: "Create and destroy droplets",
	Long: `Create and destroy droplets in bulk.

Both commands show the affected droplets and ask for confirmation
before calling the API (skip with -y).`,
}

// createFlags holds the droplet create flags.
type createFlags struct {
	prefix   string
	count    int
	size     string
	region   string
	image    string
	userData string
	yes      bool
}

// options builds the create options, taking unset values from cfg.
func (f createFlags) options(cfg *config.Config) droplet.CreateOptions {
	defaults := cfg.Defaults
	return droplet.CreateOptions{
		Prefix:            stringOr(f.prefix, defaults.Prefix),
		Count:             f.count,
		Size:              stringOr(f.size, defaults.Size),
		Region:            stringOr(f.region, defaults.Region),
		Image:             stringOr(f.image, defaults.Image),
		SSHKeys:           cfg.SSHKeys,
		PrivateNetworking: defaults.PrivateNetworkingEnabled(),
		Tags:              defaults.Tags,
		Bulk: droplet.BulkOptions{
			AssumeYes: f.yes,
			Delay:     defaults.ActionDelay,
		},
	}
}

// destroyFlags holds the droplet destroy flags.
type destroyFlags struct {
	all      bool
	ids      []int
	prefixes []string
	yes      bool
}

// selector builds the destroy selector from the flags and positional names.
func (f destroyFlags) selector(names []string) droplet.Selector {
	return droplet.Selector{
		All:      f.all,
		IDs:      f.ids,
		Names:    names,
		Prefixes: f.prefixes,
	}
}

// bulkOptions builds the destroy batch options.
func (f destroyFlags) bulkOptions(cfg *config.Config) droplet.BulkOptions {
	return droplet.BulkOptions{
		AssumeYes: f.yes,
		Delay:     cfg.Defaults.ActionDelay,
	}
}

var (
	createArgs  = createFlags{count: 1}
	destroyArgs destroyFlags
)

func init() {
	dropletCmd.AddCommand(dropletCreateCmd)
	dropletCmd.AddCommand(dropletDestroyCmd)

	dropletCreateCmd.Flags().StringVarP(&createArgs.prefix, "prefix", "p", "", "Name prefix (default from config, node)")
	dropletCreateCmd.Flags().IntVarP(&createArgs.count, "count", "c", 1, "Number of droplets to create")
	dropletCreateCmd.Flags().StringVarP(&createArgs.size, "size", "s", "", "Size slug (default from config, 2gb)")
	dropletCreateCmd.Flags().StringVarP(&createArgs.region, "region", "r", "", "Region slug (default from config, ams3)")
	dropletCreateCmd.Flags().StringVarP(&createArgs.image, "image", "i", "", "Image slug (default from config, ubuntu-14-04-x64)")
	dropletCreateCmd.Flags().StringVarP(&createArgs.userData, "user-data", "f", "", "File passed to the droplets as user data")
	dropletCreateCmd.Flags().BoolVarP(&createArgs.yes, "yes", "y", false, "Do not ask for confirmation")

	dropletDestroyCmd.Flags().BoolVarP(&destroyArgs.all, "all", "a", false, "Destroy every droplet")
	dropletDestroyCmd.Flags().IntSliceVar(&destroyArgs.ids, "id", nil, "Destroy droplet by ID (repeatable)")
	dropletDestroyCmd.Flags().StringArrayVarP(&destroyArgs.prefixes, "prefix", "p", nil, "Destroy droplets whose name starts with prefix (repeatable)")
	dropletDestroyCmd.Flags().BoolVarP(&destroyArgs.yes, "yes", "y", false, "Do not ask for confirmation")
}

var dropletCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create droplets",
	Long: `Create one or more droplets named <prefix>01, <prefix>02, ...

Nothing is created when any of the names is already taken.

Example:
  dop droplet create -p web -c 3 -s 4gb -r lon1 -f cloud-init.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		client, err := newAPIClient(cfg)
		if err != nil {
			return err
		}

		// Fail before any API call when no key would be installed
		if err := cfg.RequireSSHKeys(); err != nil {
			return err
		}

		opts := createArgs.options(cfg)
		if createArgs.userData != "" {
			data, err := userdata.Load(createArgs.userData)
			if err != nil {
				return err
			}
			opts.UserData = data
		}

		term := newTerminal(cmd)
		result, err := client.Create(cmd.Context(), opts, term)
		if err != nil {
			return err
		}

		if result.Completed > 0 {
			term.Success(fmt.Sprintf("✓ %d droplet(s) requested", result.Completed))
		}
		return nil
	},
}

var dropletDestroyCmd = &cobra.Command{
	Use:   "destroy [name...]",
	Short: "Destroy droplets",
	Long: `Destroy droplets selected by name, ID, name prefix or all of them.

A droplet is destroyed when it matches any of the given criteria.

Example:
  dop droplet destroy node01 node02
  dop droplet destroy -p web --id 123456`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		client, err := newAPIClient(cfg)
		if err != nil {
			return err
		}

		term := newTerminal(cmd)
		result, err := client.Destroy(cmd.Context(), destroyArgs.selector(args), destroyArgs.bulkOptions(cfg), term)
		if err != nil {
			return err
		}

		if result.Completed > 0 {
			term.Success(fmt.Sprintf("✓ %d droplet(s) scheduled for destroy", result.Completed))
		}
		return nil
	},
}

// stringOr returns value, or fallback when value is empty.
func stringOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
