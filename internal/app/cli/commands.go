package cli

import (
	"github.com/spf13/cobra"

	"bidmatch/internal/config"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandRun CommandType = iota
	CommandPages
	CommandInit
	CommandVersion
	CommandHelp
)

// Options contains the parsed command-line arguments
type Options struct {
	Type   CommandType
	Page   string
	NoUI   bool
	Force  bool
	DryRun bool
}

// rootFlags holds flag values for the root command
type rootFlags struct {
	version bool
}

// Parse parses command-line args; an empty Page means the configured start page
func Parse(args []string) (*Options, error) {
	result := &Options{Type: CommandRun}

	var flags rootFlags

	root := buildRootCommand(result, &flags)
	root.AddCommand(
		buildRunCommand(result),
		buildPagesCommand(result),
		buildInitCommand(result),
		buildVersionCommand(result),
	)

	if args == nil {
		args = []string{}
	}

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	if flags.version {
		result.Type = CommandVersion
	}

	return result, nil
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:           config.AppName,
		Short:         config.AppDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandRun
		},
	}

	cmd.PersistentFlags().StringVarP(&result.Page, "page", "p", "", "Start on the given page")
	cmd.PersistentFlags().BoolVar(&result.NoUI, "no-ui", false, "Print a single frame instead of starting the TUI")
	cmd.Flags().BoolVarP(&flags.version, "version", "v", false, "Show version information")

	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		result.Type = CommandHelp
	})

	return cmd
}

// buildRunCommand creates the run subcommand
func buildRunCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "run [page]",
		Aliases: []string{"r"},
		Short:   "Start the navigation shell",
		Args:    cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandRun
			if len(args) > 0 {
				result.Page = args[0]
			}
		},
	}

	return cmd
}

// buildPagesCommand creates the pages subcommand
func buildPagesCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pages",
		Aliases: []string{"ls"},
		Short:   "List navigable pages in display order",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandPages
		},
	}

	return cmd
}

// buildInitCommand creates the init subcommand
func buildInitCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Aliases: []string{"i"},
		Short:   "Generate " + config.FileName,
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandInit
		},
	}

	cmd.Flags().BoolVarP(&result.Force, "force", "f", false, "Overwrite an existing "+config.FileName)
	cmd.Flags().BoolVar(&result.DryRun, "dry-run", false, "Print the file instead of writing it")

	return cmd
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}

	return cmd
}
