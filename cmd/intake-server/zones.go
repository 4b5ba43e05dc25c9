package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ehr/intake/internal/domain/anatomy"
)

func zonesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zones",
		Short: "Inspect the anatomical zone registry",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Check the built-in registry for integrity problems",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := anatomy.DefaultRegistry()
			if err != nil {
				return err
			}
			if err := reg.Validate(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registry OK: %d zones, %d selectable.\n", len(reg.All()), len(reg.TerminalZones()))
			return nil
		},
	})

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List selectable zones",
		RunE: func(cmd *cobra.Command, args []string) error {
			category, _ := cmd.Flags().GetString("category")
			lang, _ := cmd.Flags().GetString("lang")
			l, ok := anatomy.ParseLanguage(lang)
			if !ok {
				return fmt.Errorf("unsupported language %q", lang)
			}
			reg, err := anatomy.DefaultRegistry()
			if err != nil {
				return err
			}
			zones := reg.TerminalZones()
			if category != "" {
				zones = reg.ZonesByCategory(anatomy.Category(category))
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tLABEL\tCATEGORY\tSYSTEMS")
			for _, z := range zones {
				systems := make([]string, 0, len(z.Systems))
				for _, s := range z.Systems {
					systems = append(systems, string(s))
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", z.ID, z.Label(l), z.Category, strings.Join(systems, ","))
			}
			return tw.Flush()
		},
	}
	listCmd.Flags().String("category", "", "Only zones in this category (e.g. chest, lower_limb)")
	listCmd.Flags().String("lang", "en", "Label language")
	cmd.AddCommand(listCmd)

	return cmd
}

func logLevel(cmd *cobra.Command) zerolog.Level {
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		return zerolog.DebugLevel
	}
	return zerolog.WarnLevel
}
