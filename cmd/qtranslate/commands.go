package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"quantumtranslator/internal/translator"
	"quantumtranslator/internal/validation"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "qtranslate",
		Short:         "Translate problem descriptions into quantum computing approaches",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newClassifyCmd(), newCategoriesCmd())
	return root
}

func newClassifyCmd() *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "classify <problem...>",
		Short: "Classify a problem and print the translation as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			problem, err := validation.ValidateProblem(strings.Join(args, " "))
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), translator.Translate(problem), pretty)
		},
	}
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "indent the JSON output")
	return cmd
}

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories and keywords in match priority order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, c := range translator.Priority() {
				kws := translator.Keywords(c)
				if len(kws) == 0 {
					fmt.Fprintf(out, "%s\t(fallback)\n", c)
					continue
				}
				fmt.Fprintf(out, "%s\t%s\n", c, strings.Join(kws, ", "))
			}
			return nil
		},
	}
}

func writeJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
