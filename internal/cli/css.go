package cli

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gotplfmt/internal/logging"
	"github.com/yaklabco/gotplfmt/pkg/css"
	"github.com/yaklabco/gotplfmt/pkg/fsutil"
)

func newCSSCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "css",
		Short: "Work with generated CSS rule files",
		Long: `Inspect and maintain the CSS files produced by inline style
extraction.`,
	}

	cmd.AddCommand(newCSSDedupeCommand())
	cmd.AddCommand(newCSSCompareCommand())

	return cmd
}

func newCSSDedupeCommand() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "dedupe <file>",
		Short: "Remove duplicate class definitions from a CSS file",
		Long: `Rewrite a generated CSS file keeping only the first definition of
each class name.

Examples:
  gotplfmt css dedupe gotplfmt.css
  gotplfmt css dedupe --check gotplfmt.css`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCSSDedupe(cmd, args[0], check)
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "report whether the file would change without writing")

	return cmd
}

func runCSSDedupe(cmd *cobra.Command, path string, check bool) error {
	logger := logging.FromContext(cmd.Context())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return err
	}

	deduped := css.Dedupe(string(content))
	if deduped == string(content) {
		logger.Debug("no duplicates found", logging.FieldPath, path)
		return nil
	}

	if check {
		return fmt.Errorf("%s: duplicate class definitions found", path)
	}

	if err := fsutil.WriteAtomic(ctx, path, []byte(deduped), info.Mode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	logger.Info("removed duplicate classes", logging.FieldPath, path)
	return nil
}

func newCSSCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <file-a> <file-b>",
		Short: "Map equivalent classes between two CSS files",
		Long: `Compare two CSS files and print, for each class in the first file,
the first class in the second file with an equivalent declaration
block. Declarations are normalized before comparison, so ordering and
whitespace differences are ignored.

Examples:
  gotplfmt css compare old.css new.css`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCSSCompare(cmd, args[0], args[1])
		},
	}

	return cmd
}

func runCSSCompare(cmd *cobra.Command, pathA, pathB string) error {
	contentA, err := os.ReadFile(pathA)
	if err != nil {
		return fmt.Errorf("read %s: %w", pathA, err)
	}
	contentB, err := os.ReadFile(pathB)
	if err != nil {
		return fmt.Errorf("read %s: %w", pathB, err)
	}

	mapping := css.Compare(css.ParseRules(string(contentA)), css.ParseRules(string(contentB)))
	if len(mapping) == 0 {
		return nil
	}

	keys := make([]string, 0, len(mapping))
	for key := range mapping {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := cmd.OutOrStdout()
	for _, key := range keys {
		if _, err := fmt.Fprintf(out, "%s = %s\n", key, mapping[key]); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}
