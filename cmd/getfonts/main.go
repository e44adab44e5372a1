package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/matu6968/open-get-fonts/pkg/fonts"
	"github.com/spf13/cobra"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "getfonts",
	Short: "getfonts lists the fonts installed on this system",
	Long: `getfonts enumerates the fonts installed on the host and prints each
font family together with its font file, when one can be resolved.
Families without a resolvable file are printed without a path.

Examples:
  # Print every installed font family and its file
  getfonts

  # Emit the list as JSON
  getfonts --json

  # Sort families alphabetically
  getfonts --sort`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}

		list := fonts.List()

		sorted, _ := cmd.Flags().GetBool("sort")
		asJSON, _ := cmd.Flags().GetBool("json")
		return render(cmd.OutOrStdout(), list, asJSON, sorted)
	},
}

func init() {
	rootCmd.Flags().Bool("json", false, "Print the font list as JSON")
	rootCmd.Flags().Bool("sort", false, "Sort families alphabetically")
	rootCmd.Flags().Bool("debug", false, "Log enumeration details to stderr")
}

func render(w io.Writer, list []fonts.Font, asJSON, sorted bool) error {
	if sorted {
		coll := collate.New(language.Und, collate.IgnoreCase)
		sort.SliceStable(list, func(i, j int) bool {
			return coll.CompareString(list[i].Name, list[j].Name) < 0
		})
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	}

	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "No fonts found")
		return err
	}
	for _, font := range list {
		if font.Path == "" {
			if _, err := fmt.Fprintln(w, font.Name); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", font.Name, font.Path); err != nil {
			return err
		}
	}
	return nil
}
