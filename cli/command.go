package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viert/awxinv/config"
	"github.com/viert/awxinv/log"
)

type options struct {
	configFile string
	format     string
	host       string
	list       bool
	refresh    bool
}

// NewCommand creates the root command. Run without a subcommand it acts
// as an ansible inventory script supporting --list and --host
func NewCommand() *cobra.Command {
	opts := new(options)

	rootCmd := &cobra.Command{
		Use:           "awxinv",
		Short:         "Dynamic inventory for Ansible and AWX",
		Long:          `awxinv loads hosts and groups from a configured backend and prints them as an Ansible dynamic inventory.`,
		Version:       version(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.list && opts.host != "" {
				return fmt.Errorf("--list and --host can't be used together")
			}
			return withCli(cmd, opts, func(c *Cli) error {
				if opts.host != "" {
					return c.Host(opts.host)
				}
				return c.List()
			})
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "",
		"config file (default: $"+config.EnvConfigFile+" or ~/.awxinv.conf)")
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "",
		"output format, json or yaml (default: main.format from config)")
	rootCmd.PersistentFlags().BoolVar(&opts.refresh, "refresh", false,
		"force the backend to reload its data bypassing the cache")
	rootCmd.Flags().BoolVar(&opts.list, "list", false,
		"print the whole inventory (default)")
	rootCmd.Flags().StringVar(&opts.host, "host", "",
		"print vars of a single host")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "hosts",
		Short: "List host names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCli(cmd, opts, func(c *Cli) error {
				c.Hosts()
				return nil
			})
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "groups",
		Short: "List groups with the number of their hosts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCli(cmd, opts, func(c *Cli) error {
				c.Groups()
				return nil
			})
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version())
		},
	})

	return rootCmd
}

func withCli(cmd *cobra.Command, opts *options, fn func(*Cli) error) error {
	cfgFilename := opts.configFile
	if cfgFilename == "" {
		cfgFilename = config.DefaultFilename()
	}
	cfg, err := config.Read(cfgFilename)
	if err != nil {
		return fmt.Errorf("Error reading config: %s", err)
	}

	if err := log.Initialize(cfg.LogFile, cfg.Debug); err != nil {
		return fmt.Errorf("Error initializing logger: %s", err)
	}
	defer log.Finalize()

	be, err := createBackend(cfg)
	if err != nil {
		return err
	}

	tool, err := New(cfg, be, opts.refresh, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if opts.format != "" {
		tool.SetFormat(opts.format)
	}
	return fn(tool)
}

// Execute runs the root command
func Execute() error {
	return NewCommand().Execute()
}
