package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"textcorpus/internal/config"
	"textcorpus/internal/logger"
	"textcorpus/internal/pipeline"
	"textcorpus/internal/service"
	"textcorpus/internal/tui"
)

type options struct {
	configPath    string
	noTUI         bool
	previewLength int
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "textcorpus [files...]",
		Short:        "Load text files into a corpus, normalize them and browse the result",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "Path to YAML config file (default: $"+config.EnvConfigPath+", ./corpus.yaml or ~/.config/textcorpus/config.yaml; the latter is created with defaults when none exists)")
	flags.BoolVar(&opts.noTUI, "no-tui", false, "Print the processed corpus instead of starting the browser")
	flags.IntVar(&opts.previewLength, "preview-length", 0, "Characters shown per document (overrides preview.length)")
	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log := logger.NewStderr(cfg.Log)

	p, err := pipeline.Build(pipeline.DefaultRegistry(), cfg.Pipeline, log)
	if err != nil {
		log.Error().Err(err).Msg("invalid pipeline")
		return err
	}

	svc := service.NewCorpusService(cfg.Input, p, log)
	if _, err := svc.Load(args); err != nil {
		log.Error().Err(err).Msg("load failed")
		return err
	}
	c, err := svc.Process(cmd.Context())
	if err != nil {
		log.Error().Err(err).Msg("processing failed")
		return err
	}

	previewLength := cfg.Preview.Length
	if opts.previewLength > 0 {
		previewLength = opts.previewLength
	}
	if opts.noTUI {
		_, err := fmt.Fprint(cmd.OutOrStdout(), c.Render(previewLength))
		return err
	}

	m := tui.New(svc, previewLength)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run(); err != nil {
		return err
	}
	return nil
}

func loadConfig(path string) (*config.AppConfig, error) {
	if path == "" {
		path = os.Getenv(config.EnvConfigPath)
	}
	if path == "" {
		cfg, _, err := config.LoadDefault()
		return cfg, err
	}
	return config.Load(path)
}
