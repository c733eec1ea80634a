// Command webidl-dump parses or tokenizes Web IDL source files and prints
// the result, either as a pretty-printed Go value or as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-webidl/webidl"
	"github.com/go-webidl/webidl/ast"
)

var (
	jsonOutput bool
	verbose    bool
	log        = logrus.New()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "webidl-dump",
		Short:         "Parse and inspect Web IDL source files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each stage to stderr")
	root.AddCommand(newParseCmd(), newTokenizeCmd())
	return root
}

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a Web IDL file and dump its AST",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "dump the AST as JSON instead of pretty-printed Go")
	return cmd
}

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize <file>",
		Short: "Dump the raw lexeme stream of a Web IDL file",
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "dump the lexemes as JSON instead of plain text")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	log.WithField("file", path).Debug("reading source")
	src, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}

	log.Debug("parsing")
	file, err := webidl.Parse(string(src))
	if err != nil {
		return errors.Wrapf(err, "parsing %s", path)
	}
	log.WithField("definitions", len(file.Definitions)).Debug("parsed")

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(file); err != nil {
			return errors.Wrap(err, "encoding AST as JSON")
		}
		return nil
	}

	if err := ast.Dump(cmd.OutOrStdout(), file); err != nil {
		return errors.Wrap(err, "dumping AST")
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := args[0]
	log.WithField("file", path).Debug("reading source")
	src, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}

	log.Debug("tokenizing")
	toks, err := webidl.Tokenize(string(src))
	if err != nil {
		return errors.Wrapf(err, "tokenizing %s", path)
	}
	log.WithField("lexemes", len(toks)).Debug("tokenized")

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(toks); err != nil {
			return errors.Wrap(err, "encoding lexemes as JSON")
		}
		return nil
	}

	out := cmd.OutOrStdout()
	for _, l := range toks {
		fmt.Fprintf(out, "%-10s %q\n", l.Kind, l.Text)
	}
	return nil
}
