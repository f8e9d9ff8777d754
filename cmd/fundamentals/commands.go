package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcodamonte/fundamentals/internal/tour"
)

// newRootCmd builds the command tree. Running the root with no subcommand
// runs every chapter.
func newRootCmd() *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:   "fundamentals",
		Short: "Annotated walkthroughs of Go's core language features",
		Long: `fundamentals prints small, self-contained demonstrations of Go's core
language features: variables and shadowing, data types, functions, control
flow, copies and pointers, structs and methods, enums and matching.

With no arguments every chapter runs in order. Use 'run' to pick chapters
and 'list' to see them.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChapters(cmd, nil, debug)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().BoolVar(&debug, "debug", false, "print debug traces to stderr")

	run := &cobra.Command{
		Use:   "run <chapter>...",
		Short: "Run the named chapters in the order given",
		Args:  cobra.MinimumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			var completions []string
			for _, name := range tour.Names(allChapters()) {
				if strings.HasPrefix(name, toComplete) {
					completions = append(completions, name)
				}
			}
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChapters(cmd, args, debug)
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List the chapters",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Chapters:")
			for _, c := range allChapters() {
				fmt.Fprintf(out, "  %-12s %s\n", c.Name, c.Description)
			}
		},
	}

	root.AddCommand(run, list)
	return root
}

func runChapters(cmd *cobra.Command, names []string, debug bool) error {
	chapters, err := selectChapters(names)
	if err != nil {
		return fmt.Errorf("%w\n\nRun 'fundamentals list' to see available chapters", err)
	}

	dbg := tour.Discard()
	if debug {
		dbg = tour.Debug(cmd.ErrOrStderr())
	}
	dbg.Printf("running %d chapter(s)", len(chapters))

	tour.Run(cmd.OutOrStdout(), dbg, chapters...)
	return nil
}
