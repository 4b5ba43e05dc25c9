package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/ehr/intake/internal/config"
	"github.com/ehr/intake/internal/domain/anatomy"
	"github.com/ehr/intake/internal/domain/encounter"
	"github.com/ehr/intake/internal/domain/intake"
	"github.com/ehr/intake/internal/platform/terminal"
)

func interviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interview",
		Short: "Run an intake interview in the terminal",
		Long: "Runs the intake interview interactively. Every answer is saved to the\n" +
			"configured session store, so an interrupted interview resumes where it\n" +
			"stopped when run again with the same --session.",
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, _ := cmd.Flags().GetString("lang")
			key, _ := cmd.Flags().GetString("session")
			accessible, _ := cmd.Flags().GetBool("accessible")
			fresh, _ := cmd.Flags().GetBool("new")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if lang == "" {
				lang = cfg.DefaultLanguage
			}
			l, ok := anatomy.ParseLanguage(lang)
			if !ok {
				return fmt.Errorf("unsupported language %q", lang)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			d, err := buildDeps(ctx, cfg, newLogger("development").Level(logLevel(cmd)))
			if err != nil {
				return err
			}
			defer d.Close()

			out := cmd.OutOrStdout()
			return runInterview(ctx, d, terminal.NewProvider(out, accessible), out, interviewOptions{
				key:   intake.CLISessionKey(key),
				lang:  l,
				fresh: fresh,
			})
		},
	}
	cmd.Flags().String("lang", "", "Interview language (en, fr, es)")
	cmd.Flags().String("session", "default", "Session name used to resume")
	cmd.Flags().Bool("new", false, "Discard any saved session and start over")
	cmd.Flags().Bool("accessible", false, "Plain prompts for screen readers")
	cmd.Flags().Bool("verbose", false, "Show debug logging")
	return cmd
}

type interviewOptions struct {
	key   string
	lang  anatomy.Language
	fresh bool
}

// runInterview resumes or starts the session under opts.key, saving after
// every live answer, and prints the clinical note as JSON on completion.
func runInterview(ctx context.Context, d *deps, live encounter.AnswerProvider, out io.Writer, opts interviewOptions) error {
	if opts.fresh {
		if err := d.sessions.Clear(ctx, opts.key); err != nil {
			return err
		}
	}
	enc, err := d.sessions.Load(ctx, opts.key)
	switch {
	case errors.Is(err, intake.ErrSessionNotFound):
		enc = encounter.New(opts.lang, time.Now())
	case err != nil:
		return err
	default:
		fmt.Fprintf(out, "Resuming interview (%d answers recorded)\n", len(enc.NavigationStack))
	}

	save := func(ctx context.Context, _ encounter.Step) error {
		return d.sessions.Save(ctx, opts.key, enc)
	}
	if err := d.orch.Run(ctx, enc, intake.NewReplayProvider(enc, live, save)); err != nil {
		if errors.Is(err, terminal.ErrAborted) || errors.Is(err, context.Canceled) {
			fmt.Fprintln(out, "Interview paused. Run the command again to continue.")
			return nil
		}
		return err
	}

	if d.records != nil {
		if err := d.records.Create(ctx, intake.NewRecord(enc)); err != nil {
			d.log.Error().Err(err).Str("encounter_id", enc.ID.String()).Msg("failed to persist intake record")
		}
	}
	if err := d.sessions.Clear(ctx, opts.key); err != nil {
		d.log.Warn().Err(err).Msg("failed to clear completed session")
	}

	fmt.Fprintln(out, terminal.Title("Intake note"))
	je := json.NewEncoder(out)
	je.SetIndent("", "  ")
	return je.Encode(struct {
		Note   *encounter.ClinicalNote `json:"note"`
		Result *encounter.IntakeResult `json:"result"`
	}{enc.Note, enc.Result})
}
