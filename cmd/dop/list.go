package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jbweber/dop/internal/catalog"
	"github.com/jbweber/dop/internal/output"
)

// Listing commands
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List droplets, SSH keys, sizes and regions",
}

// list flags
var (
	listAttributes []string
	listSingleLine bool
	outputFormat   string
	listKeysLong   bool
)

func init() {
	listCmd.AddCommand(listDropletsCmd)
	listCmd.AddCommand(listKeysCmd)
	listCmd.AddCommand(listSizesCmd)
	listCmd.AddCommand(listRegionsCmd)

	listDropletsCmd.Flags().StringArrayVarP(&listAttributes, "attribute", "a", []string{output.DefaultDropletAttributes}, "Comma separated attributes to show (repeatable)")
	listDropletsCmd.Flags().BoolVarP(&listSingleLine, "simple", "s", false, "Print all values on one line (same as -o line)")
	listDropletsCmd.Flags().StringVarP(&outputFormat, "output", "o", string(output.FormatTable), "Output format (table|line|yaml|json)")

	listDropletsCmd.Flags().SetNormalizeFunc(listFlagAliases)

	listKeysCmd.Flags().BoolVarP(&listKeysLong, "long", "l", false, "Show key type and SHA256 fingerprint")
}

// listFlagAliases accepts --attributes and --single-line for --attribute
// and --simple.
func listFlagAliases(f *pflag.FlagSet, name string) pflag.NormalizedName {
	switch name {
	case "attributes":
		name = "attribute"
	case "single-line":
		name = "simple"
	}
	return pflag.NormalizedName(name)
}

// dropletAttributes parses the -a values and rejects unknown attributes
// and empty selections.
func dropletAttributes(values []string) ([]string, error) {
	attributes := output.ParseAttributeList(values)
	if err := output.DropletFormatter.Validate(attributes); err != nil {
		return nil, err
	}
	return attributes, nil
}

var listDropletsCmd = &cobra.Command{
	Use:   "droplets",
	Short: "List droplets",
	Long: `List every droplet in the account.

Attributes: id, name, ip, ipv6, status, private_ip, size, region, image.

Output formats:
  -o table  One fixed-width row per droplet (default)
  -o line   Every value on a single line, for shell loops
  -o yaml   YAML list of records
  -o json   JSON array of records

Example:
  dop list droplets -a id,name,ip
  ssh-keyscan $(dop list droplets -a ip -s)`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := outputFormat
		if listSingleLine {
			format = string(output.FormatLine)
		}

		// Validate output format
		if err := output.ValidateFormat(format); err != nil {
			return err
		}

		attributes, err := dropletAttributes(listAttributes)
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		client, err := newAPIClient(cfg)
		if err != nil {
			return err
		}

		droplets, err := client.ListAll(cmd.Context())
		if err != nil {
			return err
		}

		// Create formatter
		formatter, err := output.NewFormatter(output.Options{Format: output.Format(format)})
		if err != nil {
			return err
		}

		// Format and print
		result, err := formatter.FormatDroplets(droplets, attributes)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}

		fmt.Fprint(cmd.OutOrStdout(), result)
		return nil
	},
}

var listKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List SSH keys",
	Long: `List the SSH keys registered in the account as "name (id)".

The IDs are the values to put in DIGITAL_OCEAN_SSH_KEYS.`,
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

		keys, err := client.ListKeys(cmd.Context())
		if err != nil {
			return err
		}

		for _, key := range keys {
			fmt.Fprintln(cmd.OutOrStdout(), output.FormatKey(key, listKeysLong))
		}
		return nil
	},
}

var listSizesCmd = &cobra.Command{
	Use:   "sizes",
	Short: "List droplet sizes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, size := range catalog.Sizes {
			fmt.Fprintln(cmd.OutOrStdout(), size)
		}
	},
}

var listRegionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List regions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, region := range catalog.Regions {
			fmt.Fprintln(cmd.OutOrStdout(), region)
		}
	},
}
