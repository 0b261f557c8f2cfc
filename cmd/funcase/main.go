package main

import (
	"fmt"
	"os"

	"github.com/funvibe/funcase/pkg/funcase"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var noColor bool

// addOutputFlags registers the flags shared by every printing command.
func addOutputFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&noColor, "no-color", false, "disable ANSI colors in output")
}

func useColor() bool {
	if noColor {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func header(name string) string {
	if useColor() {
		return fmt.Sprintf("\x1b[1;36m== %s ==\x1b[0m\n", name)
	}
	return fmt.Sprintf("== %s ==\n", name)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "funcase",
		Short:         "Inspect pattern-match lowering for the data VM",
		Long: "funcase lowers the decision-tree leaves of a pattern match into\n" +
			"accessor bindings for the data VM, sharing common accessor prefixes\n" +
			"across leaves. Unit descriptions are YAML files naming the subject's\n" +
			"type and each leaf's structural path in visitation order.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newLowerCmd(), newTrieCmd())
	return root
}

func newLowerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lower <unit.yaml>",
		Short: "Print the accessor bindings each leaf emits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := funcase.LowerFile(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, leaf := range out.Leaves {
				fmt.Fprint(w, header(leaf.Name))
				fmt.Fprint(w, leaf.Source)
				fmt.Fprintln(w)
			}
			fmt.Fprint(w, header("trie"))
			fmt.Fprint(w, out.Trie)
			if out.Prelude != "" {
				fmt.Fprintln(w)
				fmt.Fprint(w, header("helpers"))
				fmt.Fprint(w, out.Prelude)
			}
			return nil
		},
	}
	addOutputFlags(cmd.Flags())
	return cmd
}

func newTrieCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trie <unit.yaml>",
		Short: "Print the sharing trie left after lowering all leaves",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := funcase.LowerFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out.Trie)
			return nil
		},
	}
	addOutputFlags(cmd.Flags())
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
