package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/studiowebux/editpad/internal/cli"
	"github.com/studiowebux/editpad/internal/config"
	"github.com/studiowebux/editpad/internal/keybinds"
	"github.com/studiowebux/editpad/internal/session"
	"github.com/studiowebux/editpad/internal/tabs"
	"github.com/studiowebux/editpad/internal/tui"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "editpad",
	Short: "editpad - tabbed scratch pad for the terminal",
	Long: `editpad keeps any number of text tabs and saves them as you type.

Run without arguments to start the TUI. The subcommands work on the same
tabs without opening the interface.

Examples:
  editpad                          # Start the TUI
  editpad list                     # List tabs
  editpad new --title Notes        # New empty tab
  echo hi | editpad new --file -   # New tab from stdin
  editpad close Notes              # Close a tab (asks first)
  editpad export Notes -o ~/notes  # Write a tab to a file
  editpad --ephemeral              # Nothing is written to disk`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tabs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		s := a.session()
		defer s.Close()
		return cli.List(s, cmd.OutOrStdout(), flagFormat)
	},
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a tab and make it active",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := cli.ReadContent(flagFile, cmd.InOrStdin())
		if err != nil {
			return err
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		s := a.session()
		defer s.Close()
		t, err := cli.NewTab(s, cli.NewOptions{Title: flagTitle, Content: content})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.ID)
		return nil
	},
}

var closeCmd = &cobra.Command{
	Use:   "close [id|title]",
	Short: "Close a tab, permanently removing its content (pick one when omitted)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		s := a.session()
		defer s.Close()

		ref := ""
		if len(args) > 0 {
			ref = args[0]
		} else {
			if !cli.IsInteractive() {
				return fmt.Errorf("no tab given and stdin is not a terminal")
			}
			t, err := cli.PickTab(s, "Close which tab?")
			if err != nil {
				return err
			}
			ref = t.ID
		}

		var confirm session.Confirmer = session.AlwaysConfirm
		if !flagYes {
			if !cli.IsInteractive() {
				return fmt.Errorf("refusing to close without a terminal; pass --yes")
			}
			confirm = cli.NewPromptConfirmer()
		}

		closed, err := cli.CloseTab(s, ref, confirm)
		if err != nil {
			return err
		}
		if !closed {
			fmt.Fprintln(cmd.ErrOrStderr(), "Aborted")
		}
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [id|title]",
	Short: "Write a tab to a file (the active tab by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		s := a.session()
		defer s.Close()

		ref := ""
		if len(args) > 0 {
			ref = args[0]
		}
		dest := flagExportOutput
		if dest == "" {
			dest = a.cfg.ExportDir
		}
		path, err := cli.ExportTab(s, ref, dest)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var keybindsCmd = &cobra.Command{
	Use:   "keybinds",
	Short: "Manage keybindings",
}

var keybindsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default keybindings to keybinds.json",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfigDir(); err != nil {
			return err
		}
		if _, err := os.Stat(config.KeybindsFile); err == nil && !flagForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", config.KeybindsFile)
		}
		if err := keybinds.CreateExampleConfig(config.KeybindsFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", config.KeybindsFile)
		return nil
	},
}

var keybindsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate keybinds.json",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfigDir(); err != nil {
			return err
		}
		cfg, err := keybinds.LoadConfig(config.KeybindsFile)
		if err != nil {
			return err
		}
		result := keybinds.NewValidator().ValidateConfig(cfg)
		fmt.Fprintln(cmd.OutOrStdout(), result.String())
		if result.HasErrors() {
			return fmt.Errorf("%s has %d error(s)", config.KeybindsFile, len(result.Errors))
		}
		return nil
	},
}

// Persistent flags
var (
	flagConfigDir string
	flagDataDir   string
	flagBackend   string
	flagEphemeral bool
)

// Subcommand flags
var (
	flagFormat       string
	flagTitle        string
	flagFile         string
	flagYes          bool
	flagExportOutput string
	flagForce        bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "Config directory (default ~/.editpad)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Directory holding the tab storage")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Storage backend (sqlite/file/memory)")
	rootCmd.PersistentFlags().BoolVar(&flagEphemeral, "ephemeral", false, "Keep tabs in memory only")

	listCmd.Flags().StringVarP(&flagFormat, "output", "o", "text", "Output format (text/json/yaml)")

	newCmd.Flags().StringVarP(&flagTitle, "title", "t", "", "Tab title (derived from content when empty)")
	newCmd.Flags().StringVarP(&flagFile, "file", "f", "", "Read content from a file, - for stdin")

	closeCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Do not ask for confirmation")

	exportCmd.Flags().StringVarP(&flagExportOutput, "output", "o", "", "Destination file or directory (default the export_dir setting)")

	keybindsInitCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing file")

	keybindsCmd.AddCommand(keybindsInitCmd)
	keybindsCmd.AddCommand(keybindsCheckCmd)

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(closeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(keybindsCmd)
}

func initConfigDir() error {
	if flagConfigDir != "" {
		return config.InitializeAt(flagConfigDir)
	}
	return config.Initialize()
}

// runTUI starts the interactive interface
func runTUI(cmd *cobra.Command) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	registry, err := keybinds.LoadOrDefault(config.KeybindsFile)
	if err != nil {
		return err
	}
	if result := keybinds.NewValidator().ValidateRegistry(registry); result.HasWarnings() {
		a.logger.Sugar().Warnf("keybinding warnings:\n%s", result.String())
	}

	ctrl := session.New(tabs.NewRegistry(a.gen), a.adapter, session.WithLogger(a.logger))
	ctrl.Init()

	m := tui.New(tui.Options{
		Controller:  ctrl,
		Preferences: a.adapter,
		Keybinds:    registry,
		Logger:      a.logger,
		SaveDelay:   a.cfg.SaveDelay(),
		ExportDir:   a.cfg.ExportDir,
		Mouse:       a.cfg.Mouse,
	})
	return tui.Run(m)
}
