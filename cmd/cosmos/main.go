package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/astro"
	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/cosmic"
	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/moderation"
	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/numerology"
	"github.com/mariemajor/looking-beyond-cosmos/internal/infra/cosmicrepo"
	"github.com/mariemajor/looking-beyond-cosmos/internal/infra/reportrepo"
	"github.com/mariemajor/looking-beyond-cosmos/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	if err := newRootCmd(logger.NewWithWriter(os.Stderr, os.Getenv("LOG_LEVEL"))).Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(log *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "cosmos",
		Short:         "Offline astrology, numerology and moderation tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	astroSvc := astro.NewService(log)
	root.AddCommand(newMoonCmd(astroSvc))
	root.AddCommand(newPlanetsCmd(astroSvc))
	root.AddCommand(newAstroCmd(astroSvc))
	root.AddCommand(newNumerologyCmd(numerology.NewService(log)))
	root.AddCommand(newModerateCmd(moderation.NewService(reportrepo.NewMemoryRepository(), nil, log)))
	root.AddCommand(newSnapshotCmd(cosmic.NewService(cosmicrepo.NewMemoryRepository(), nil, log)))
	return root
}

func newMoonCmd(svc astro.Service) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "moon",
		Short: "Print the moon phase for a day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			phase, err := svc.MoonPhase(context.Background(), astro.Request{Date: date})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), phase)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "calendar day as YYYY-MM-DD (default today)")
	return cmd
}

func newPlanetsCmd(svc astro.Service) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "planets",
		Short: "Print approximate planetary positions for a day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			positions, err := svc.Planets(context.Background(), astro.Request{Date: date})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string]any{"planetaryPositions": positions})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "calendar day as YYYY-MM-DD (default today)")
	return cmd
}

func newAstroCmd(svc astro.Service) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "astro",
		Short: "Print the moon phase and planetary positions together",
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := svc.Snapshot(context.Background(), astro.Request{Date: date})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), snap)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "calendar day as YYYY-MM-DD (default today)")
	return cmd
}

func newNumerologyCmd(svc numerology.Service) *cobra.Command {
	var name, birthDate string
	cmd := &cobra.Command{
		Use:   "numerology",
		Short: "Derive life path, energy level and guidance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := svc.Derive(context.Background(), numerology.Request{Name: name, BirthDate: birthDate})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "name used for the energy level")
	cmd.Flags().StringVar(&birthDate, "birth-date", "", "birth date as YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("birth-date")
	return cmd
}

func newModerateCmd(svc moderation.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "moderate <text>",
		Short: "Validate, moderate and sanitize text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := svc.Check(context.Background(), moderation.CheckRequest{Content: strings.Join(args, " ")})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), resp)
		},
	}
}

func newSnapshotCmd(svc cosmic.Service) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Print the collective cosmic reading for a day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			events, err := svc.Today(context.Background(), cosmic.Request{Date: date})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), events)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "calendar day as YYYY-MM-DD (default today)")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
