package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"

	"github.com/aontas/aontas/internal/cefr"
	"github.com/aontas/aontas/internal/enforce"
	"github.com/aontas/aontas/internal/export"
	"github.com/aontas/aontas/internal/handler"
	appI18n "github.com/aontas/aontas/internal/i18n"
	"github.com/aontas/aontas/internal/llm"
	"github.com/aontas/aontas/internal/model"
	"github.com/aontas/aontas/internal/sanitize"
	"github.com/aontas/aontas/internal/schema"
	"github.com/aontas/aontas/internal/source"
	"github.com/aontas/aontas/internal/store"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "aontas",
		Short: "CEFR reading worksheet generator powered by LLMs",
	}

	serve := serveCmd()
	root.AddCommand(serve, generateCmd(), exportCmd())

	// Make "serve" the default when no subcommand is given.
	root.RunE = serve.RunE

	// Register serve flags on root so bare `aontas --addr ...` still works.
	root.Flags().AddFlagSet(serve.Flags())

	return root
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP worksheet server",
		RunE:  runServe,
	}
	f := cmd.Flags()
	f.StringP("addr", "a", ":8080", "HTTP listen address")
	f.String("db", "aontas.db", "SQLite database path")
	f.String("llm-url", "", "OpenAI-compatible API base URL (empty = OpenAI)")
	f.String("llm-key", "", "API key for LLM")
	f.String("llm-model", "gpt-4o-mini", "LLM model name")
	f.String("api-key", "", "Bearer token clients must present (empty = open API)")
	f.Duration("fetch-timeout", 20*time.Second, "Timeout for source URL fetches")
	f.String("log-level", "info", "Log level (debug, info, warn, error)")
	f.String("log-format", "text", "Log format (text, json)")
	return cmd
}

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one worksheet from the command line",
		RunE:  runGenerate,
	}
	f := cmd.Flags()
	f.String("source-text", "", "Source text to build the worksheet from")
	f.String("source-file", "", "File containing the source text")
	f.String("source-url", "", "URL to fetch the source text from")
	f.StringP("cefr", "c", "B1", "Target CEFR level (A1-C2)")
	f.StringP("text-type", "t", "article", "Text type (article, report, story, essay, blog_post, formal_email, informal_email)")
	f.StringP("language", "l", "en", "Output language code")
	f.String("length", "standard", "Length (short, standard, long)")
	f.Bool("public-school", false, "Public school mode")
	f.Bool("dyslexia-friendly", false, "Dyslexia-friendly adapted text")
	f.String("llm-url", "", "OpenAI-compatible API base URL (empty = OpenAI)")
	f.String("llm-key", "", "API key for LLM")
	f.String("llm-model", "gpt-4o-mini", "LLM model name")
	f.Duration("fetch-timeout", 20*time.Second, "Timeout for source URL fetches")
	f.StringP("output", "o", "-", "Output file path for the worksheet JSON (- for stdout)")
	f.String("log-level", "info", "Log level (debug, info, warn, error)")
	f.String("log-format", "text", "Log format (text, json)")
	return cmd
}

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a stored worksheet as XLSX or print HTML",
		RunE:  runExport,
	}
	f := cmd.Flags()
	f.String("db", "aontas.db", "SQLite database path")
	f.Int64("id", 0, "Worksheet id to export (required)")
	f.StringP("format", "f", "xlsx", "Export format (xlsx, html, json)")
	f.StringP("output", "o", "-", "Output file path (- for stdout)")
	f.String("log-level", "info", "Log level (debug, info, warn, error)")
	f.String("log-format", "text", "Log format (text, json)")

	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func setupLogging(cmd *cobra.Command) *slog.Logger {
	v := viperForCmd(cmd)

	var logLevel slog.Level
	switch strings.ToLower(v.GetString("log-level")) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	handlerOpts := &slog.HandlerOptions{Level: logLevel}
	var logHandler slog.Handler
	switch strings.ToLower(v.GetString("log-format")) {
	case "json":
		logHandler = slog.NewJSONHandler(os.Stderr, handlerOpts)
	default:
		logHandler = slog.NewTextHandler(os.Stderr, handlerOpts)
	}
	logger := slog.New(logHandler)
	slog.SetDefault(logger)
	return logger
}

// viperForCmd binds a command's flags and environment to a fresh viper instance.
func viperForCmd(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	_ = v.BindPFlags(cmd.Flags())

	v.SetEnvPrefix("AONTAS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("aontas")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/aontas")
	v.AddConfigPath("/etc/aontas")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Warn("error reading config file", "error", err)
		}
	} else {
		slog.Info("loaded config file", "path", v.ConfigFileUsed())
	}

	return v
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := setupLogging(cmd)
	v := viperForCmd(cmd)

	db, err := store.New(v.GetString("db"))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	bundle, err := appI18n.Load()
	if err != nil {
		return fmt.Errorf("load locales: %w", err)
	}

	llmClient := llm.New(
		v.GetString("llm-url"),
		v.GetString("llm-key"),
		v.GetString("llm-model"),
	)
	if err := llmClient.Ping(cmd.Context()); err != nil {
		return fmt.Errorf("LLM health check: %w", err)
	}
	slog.Info("LLM endpoint OK", "url", v.GetString("llm-url"), "model", v.GetString("llm-model"))

	cfg := handler.Config{}
	if apiKey := v.GetString("api-key"); apiKey != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(apiKey), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash API key: %w", err)
		}
		cfg.APIKeyHash = string(hash)
	}

	fetcher := source.NewFetcher(v.GetDuration("fetch-timeout"))
	h := handler.New(db, llmClient, fetcher, bundle, cfg, logger)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	h.Routes(r)

	addr := v.GetString("addr")
	slog.Info("starting server",
		"addr", addr,
		"model", v.GetString("llm-model"),
		"llm_url", v.GetString("llm-url"),
		"auth", cfg.APIKeyHash != "",
	)
	return http.ListenAndServe(addr, r)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	logger := setupLogging(cmd)
	v := viperForCmd(cmd)
	ctx := cmd.Context()

	req := model.GenerateRequest{
		SourceText:       v.GetString("source-text"),
		SourceURL:        v.GetString("source-url"),
		TargetCEFR:       model.CEFRLevel(strings.ToUpper(v.GetString("cefr"))),
		TextType:         model.TextType(v.GetString("text-type")),
		OutputLanguage:   v.GetString("language"),
		Length:           model.LengthChoice(v.GetString("length")),
		PublicSchoolMode: v.GetBool("public-school"),
		DyslexiaFriendly: v.GetBool("dyslexia-friendly"),
	}
	if path := v.GetString("source-file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read source file: %w", err)
		}
		req.SourceText = string(data)
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return err
	}

	src := req.SourceText
	if src == "" {
		fetcher := source.NewFetcher(v.GetDuration("fetch-timeout"))
		fetched, err := fetcher.FetchExtract(ctx, req.SourceURL)
		if err != nil {
			return err
		}
		src = fetched
	}

	bundle, err := appI18n.Load()
	if err != nil {
		return fmt.Errorf("load locales: %w", err)
	}

	llmClient := llm.New(
		v.GetString("llm-url"),
		v.GetString("llm-key"),
		v.GetString("llm-model"),
	)

	wordTarget := cefr.TargetWords(req.TargetCEFR, req.Length, req.TextType)
	payload, err := llmClient.Generate(ctx, req, src, wordTarget)
	if err != nil {
		return fmt.Errorf("generate worksheet: %w", err)
	}

	result := sanitize.Result(payload, req, wordTarget, bundle.Fallbacks(req.OutputLanguage))
	if err := enforce.Apply(ctx, llmClient, result, req, wordTarget, logger); err != nil {
		return err
	}
	if err := schema.Validate(result); err != nil {
		return err
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	return writeOutput(v.GetString("output"), func(w io.Writer) error {
		if _, err := w.Write(data); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)
		return err
	})
}

func runExport(cmd *cobra.Command, _ []string) error {
	setupLogging(cmd)
	v := viperForCmd(cmd)

	db, err := store.New(v.GetString("db"))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	worksheet, err := db.GetWorksheet(v.GetInt64("id"))
	if err != nil {
		return fmt.Errorf("load worksheet %d: %w", v.GetInt64("id"), err)
	}

	format := strings.ToLower(v.GetString("format"))
	return writeOutput(v.GetString("output"), func(w io.Writer) error {
		switch format {
		case "xlsx":
			return export.WriteXLSX(w, worksheet.Result)
		case "html":
			return export.WriteHTML(w, worksheet.Result)
		case "json":
			data, err := json.MarshalIndent(worksheet, "", "  ")
			if err != nil {
				return err
			}
			if _, err := w.Write(data); err != nil {
				return err
			}
			_, err = fmt.Fprintln(w)
			return err
		default:
			return fmt.Errorf("unknown format %q (want xlsx, html or json)", format)
		}
	})
}

func writeOutput(path string, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()
	if err := write(f); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
