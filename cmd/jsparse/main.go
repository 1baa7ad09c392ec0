// Command jsparse parses a source file and writes its AST as pretty-printed
// JSON next to it. A parse failure is reported to stderr but does not
// change the exit code; a parse error is a normal, observable outcome here
// rather than a tool failure.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cwbudde/jsparse/internal/parser"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "jsparse <file>",
	Short:         "Parse a source file and write its AST as JSON",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runParse,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	program, err := parser.ParseProgram(string(src))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil
	}

	out, err := json.MarshalIndent(program, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling AST: %w", err)
	}
	out = append(out, '\n')

	astPath := path + "-ast.json"
	if err := os.WriteFile(astPath, out, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", astPath, err)
	}
	return nil
}
