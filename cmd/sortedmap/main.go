package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"sortedhash/internal/config"
	"sortedhash/internal/logutil"
	"sortedhash/internal/sortedmap"
)

func main() {
	// When SIGINT/SIGTERM arrives, ctx is canceled and the running command stops.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if err := NewCLI(cfg).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// NewCLI builds the command tree. cfg supplies flag defaults.
func NewCLI(cfg config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sortedmap",
		Short: "Sorted hash map tool",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Disable usage printing on errors
			cmd.SilenceUsage = true

			// Flags win over the environment.
			logCfg := cfg
			logCfg.Debug, _ = cmd.Flags().GetBool("debug")
			logCfg.Trace, _ = cmd.Flags().GetBool("trace")
			slog.SetDefault(logutil.NewLogger(cmd.ErrOrStderr(), logCfg.LogLevel()))
		},
	}

	rootCmd.PersistentFlags().IntP("capacity", "c", cfg.Capacity, "Number of hash buckets")
	rootCmd.PersistentFlags().Bool("debug", cfg.Debug, "Show additional debug information")
	rootCmd.PersistentFlags().Bool("trace", cfg.Trace, "Log map construction and teardown")
	rootCmd.SetUsageTemplate(rootCmd.UsageTemplate() + envDocs(cfg))

	loadCmd := &cobra.Command{
		Use:   "load [file]",
		Short: "Load key=value lines and print them in key order",
		Args:  cobra.MaximumNArgs(1),
		RunE:  LoadHandler,
	}
	loadCmd.Flags().BoolP("reverse", "r", false, "Also print in descending key order")
	loadCmd.Flags().Bool("table", false, "Print as a table instead of the {'k': 'v'} form")

	getCmd := &cobra.Command{
		Use:   "get FILE KEY",
		Short: "Load key=value lines and print the value of one key",
		Args:  cobra.ExactArgs(2),
		RunE:  GetHandler,
	}

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through insertion, update and bucket collisions",
		Args:  cobra.NoArgs,
		RunE:  DemoHandler,
	}

	envCmd := &cobra.Command{
		Use:   "env",
		Short: "Show configuration environment variables",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			envHandler(cmd, cfg)
		},
	}

	rootCmd.AddCommand(loadCmd, getCmd, demoCmd, envCmd)
	return rootCmd
}

func LoadHandler(cmd *cobra.Command, args []string) error {
	path := "-"
	if len(args) > 0 {
		path = args[0]
	}

	m, err := loadPath(cmd, path)
	if err != nil {
		return err
	}
	defer m.Close()

	reverse, _ := cmd.Flags().GetBool("reverse")
	table, _ := cmd.Flags().GetBool("table")

	out := cmd.OutOrStdout()
	if table {
		t := tablewriter.NewWriter(out)
		t.SetHeader([]string{"KEY", "VALUE"})
		t.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		t.SetAlignment(tablewriter.ALIGN_LEFT)
		for k, v := range m.All() {
			t.Append([]string{k, v})
		}
		t.Render()
		return nil
	}

	if err := sortedmap.Fprint(out, m); err != nil {
		return err
	}
	if reverse {
		return sortedmap.FprintReverse(out, m)
	}
	return nil
}

func GetHandler(cmd *cobra.Command, args []string) error {
	m, err := loadPath(cmd, args[0])
	if err != nil {
		return err
	}
	defer m.Close()

	v, ok := m.Get(args[1])
	if !ok {
		return errors.Errorf("%s: not found", args[1])
	}
	fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}

func envHandler(cmd *cobra.Command, cfg config.Config) {
	vars := cfg.AsMap()
	t := tablewriter.NewWriter(cmd.OutOrStdout())
	t.SetHeader([]string{"NAME", "VALUE", "DESCRIPTION"})
	t.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, name := range envNames(vars) {
		v := vars[name]
		t.Append([]string{v.Name, fmt.Sprint(v.Value), v.Description})
	}
	t.Render()
}

// envDocs lists the environment variables for the usage template.
func envDocs(cfg config.Config) string {
	vars := cfg.AsMap()

	var sb strings.Builder
	sb.WriteString("\nEnvironment Variables:\n\n")
	for _, name := range envNames(vars) {
		fmt.Fprintf(&sb, "    %-20s %s\n", name, vars[name].Description)
	}
	return sb.String()
}

func envNames(vars map[string]config.EnvVar) []string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
