// Command jslex tokenizes a source file and prints one token per line, for
// debugging the lexer. Each line reads "KIND \"lexeme\"", with newlines in
// the lexeme escaped as \n; it exits nonzero on a missing file or wrong
// argument count.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/jsparse/internal/lexer"
	"github.com/cwbudde/jsparse/pkg/token"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "jslex <file>",
	Short:         "Tokenize a source file and print its tokens",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runLex,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: jslex <file>")
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runLex(cmd *cobra.Command, args []string) error {
	path := args[0]
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	input := strings.TrimPrefix(string(src), string(rune(0xFEFF)))
	l := lexer.New(input)
	for {
		tok, err := l.NextToken()
		if err != nil {
			return err
		}
		printToken(tok.Type, input[tok.Start:tok.End])
		if tok.Type == token.EOF {
			break
		}
	}
	return nil
}

// printToken prints "KIND \"lexeme\"", relying on %q to render the lexeme's
// line feeds as the two-character escape \n rather than an embedded newline.
func printToken(kind token.Type, lexeme string) {
	fmt.Printf("%s %q\n", kind, lexeme)
}
