package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sashabaranov/go-openai"
	"github.com/spf13/cobra"

	"codeberg.org/snonux/simpletalk/internal/archive"
	"codeberg.org/snonux/simpletalk/internal/batch"
	"codeberg.org/snonux/simpletalk/internal/cli"
	"codeberg.org/snonux/simpletalk/internal/models"
	"codeberg.org/snonux/simpletalk/internal/romanize"
	"codeberg.org/snonux/simpletalk/internal/server"
)

func newServeCommand(flags *cli.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.RequireKeys(); err != nil {
				return err
			}

			cfg := cli.LoadConfig(flags)
			logger := newLogger(cfg)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, err := buildApp(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer app.Close()

			speaker, err := buildSpeaker(cfg, logger)
			if err != nil {
				return err
			}

			gin.SetMode(gin.ReleaseMode)

			cors := server.DefaultCORSConfig()
			cors.AllowedOrigins = cfg.CORSOrigins

			srv := server.New(server.Config{
				Addr:           fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
				BaseURL:        cfg.BaseURL,
				AudioDir:       speaker.Dir(),
				CORS:           cors,
				RequestTimeout: cfg.RequestTimeout,
			}, app.processor, speaker, logger)

			return srv.Run(ctx)
		},
	}
	cli.AddServeFlags(cmd, flags)
	return cmd
}

func newRomanizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "romanize TEXT...",
		Short: "Print the romanized pronunciation of Korean text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), romanize.NewRomanizer().Pronounce(strings.Join(args, " ")))
			return nil
		},
	}
}

func newSimplifyCommand(flags *cli.Flags) *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "simplify TEXT...",
		Short: "Simplify Korean text",
		Long: `Simplify Korean text with the configured language model.

With --full the whole pipeline runs and the result is printed as the JSON
object POST /translate-to-easy-korean responds with.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.RequireKeys(); err != nil {
				return err
			}

			cfg := cli.LoadConfig(flags)
			logger := newLogger(cfg)

			app, err := buildApp(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer app.Close()

			text := strings.Join(args, " ")
			if full {
				result, err := app.processor.EasyKorean(cmd.Context(), text)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), result)
			}

			simplified, err := app.processor.Simplify(cmd.Context(), text)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), simplified)
			return nil
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "Run the whole pipeline and print JSON")
	return cmd
}

func newBatchCommand(flags *cli.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "batch FILE",
		Short: "Run the pipeline for every line of a file",
		Long: `Run the pipeline for every line of FILE ("-" reads stdin).

Blank lines and lines starting with # are skipped. One JSON object is
printed per processed line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.RequireKeys(); err != nil {
				return err
			}

			texts, err := batch.ReadBatchFile(args[0])
			if err != nil {
				return err
			}

			cfg := cli.LoadConfig(flags)
			logger := newLogger(cfg)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, err := buildApp(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer app.Close()

			failed, err := app.processor.ProcessBatch(ctx, texts, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			logger.Info("batch finished", "lines", len(texts), "failed", failed)
			if failed > 0 {
				return fmt.Errorf("%d of %d lines failed", failed, len(texts))
			}
			return nil
		},
	}
}

func newModelsCommand(flags *cli.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the OpenAI models available to the configured key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key := cli.GetOpenAIKey()
			if key == "" {
				return fmt.Errorf("%w: OPENAI_API_KEY", cli.ErrMissingKey)
			}

			cfg := cli.LoadConfig(flags)
			catalog, err := models.NewLister(newOpenAIClient(key, cfg.OpenAIBaseURL)).List(cmd.Context())
			if err != nil {
				return err
			}
			catalog.Print(cmd.OutOrStdout())
			return nil
		},
	}
}

func newArchiveCommand(flags *cli.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Move the generated speech files into the archive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := cli.LoadConfig(flags)

			dest, err := archive.ArchiveAudio(cfg.AudioDir)
			if err != nil {
				return fmt.Errorf("failed to archive speech files: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Archived %s to %s\n", cfg.AudioDir, dest)
			return nil
		},
	}
	cli.AddAudioDirFlag(cmd, flags)
	return cmd
}

// writeJSON encodes v the way the HTTP API does, without HTML escaping.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newOpenAIClient(key, baseURL string) *openai.Client {
	config := openai.DefaultConfig(key)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(config)
}
