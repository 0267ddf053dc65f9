package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"ragcheck/pkg/answerer"
	"ragcheck/pkg/cache"
	"ragcheck/pkg/core"
	"ragcheck/pkg/fixture"
	"ragcheck/pkg/reporter"
	"ragcheck/pkg/runlog"
	"ragcheck/pkg/scorer"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newEvalCommand() *cobra.Command {
	var (
		fixturesName   string
		scorerName     string
		workers        int
		outputPath     string
		format         string
		modelName      string
		mockAnswer     string
		mockPage       int
		provider       string
		rateLimitRPS   float64
		rateLimitBurst int
		caseTimeout    time.Duration
		logDir         string
		logFormat      string
		useCache       bool
		cacheDir       string
	)

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Run an evaluation",
		RunE: func(cmd *cobra.Command, args []string) error {
			fixturesResolved := resolveString(fixturesName, appConfig.Fixtures)
			if fixturesResolved == "" {
				fixturesResolved = "apple-10k"
			}
			scorerNameResolved := resolveString(scorerName, appConfig.Scorer)
			if scorerNameResolved == "" {
				scorerNameResolved = "salient"
			}
			formatResolved := resolveString(format, appConfig.Format)
			if formatResolved == "" {
				formatResolved = "table"
			}
			outputResolved := resolveString(outputPath, appConfig.Output)
			modelResolved := resolveString(modelName, appConfig.Answerer.Model)
			mockAnswerResolved := resolveString(mockAnswer, appConfig.Answerer.MockAnswer)
			mockPageResolved := resolveInt(mockPage, appConfig.Answerer.MockPage, 0)
			providerResolved := resolveString(provider, appConfig.Provider)
			if providerResolved == "" {
				providerResolved = "echo"
			}
			logDirResolved := resolveString(logDir, appConfig.LogDir)
			logFormatResolved := resolveString(logFormat, appConfig.LogFormat)
			if logFormatResolved == "" {
				logFormatResolved = "json"
			}
			cacheDirResolved := resolveString(cacheDir, appConfig.CacheDir)
			workerCount := resolveInt(workers, appConfig.Workers, 4)

			fixtures, err := buildFixtureSet(fixturesResolved)
			if err != nil {
				return err
			}
			sc, err := buildScorer(scorerNameResolved)
			if err != nil {
				return err
			}

			totalCases := 0
			if cases, err := fixtures.Cases(cmd.Context()); err == nil {
				totalCases = len(cases)
			}
			progress := newProgressBar(progressWriter(cmd), totalCases)
			progress.Update(0)

			var rateLimiter core.RateLimiter
			if rateLimitRPS > 0 {
				limiter, stop, err := core.NewRateLimiter(rateLimitRPS, rateLimitBurst)
				if err != nil {
					return err
				}
				rateLimiter = limiter
				defer stop()
			}

			ans, err := buildAnswerer(cmd.Context(), providerResolved, modelResolved, mockAnswerResolved, mockPageResolved, fixtures)
			if err != nil {
				return err
			}

			if useCache {
				store, err := cache.New(cacheDirResolved, 0)
				if err != nil {
					return err
				}
				ans = answerer.Cached{Answerer: ans, Cache: store}
			}

			harness := core.Harness{
				Fixtures:    fixtures,
				Answerer:    ans,
				Scorer:      sc,
				Workers:     workerCount,
				CaseTimeout: caseTimeout,
				RateLimiter: rateLimiter,
				Progress: func(completed, total int) {
					progress.Update(completed)
				},
			}

			report, err := harness.Run(cmd.Context())
			if err != nil {
				return err
			}
			if report.Metadata == nil {
				report.Metadata = map[string]string{}
			}
			report.Metadata["provider"] = providerResolved

			writer := os.Stdout
			if outputResolved != "" {
				file, err := os.Create(outputResolved)
				if err != nil {
					return err
				}
				defer file.Close()
				writer = file
			}

			rep, err := buildReporter(formatResolved, writer)
			if err != nil {
				return err
			}

			if err := rep.Report(report); err != nil {
				return err
			}

			if logFormatResolved != "none" {
				if logDirResolved == "" {
					logDirResolved = "./logs"
				}
				path, err := writeRunLog(logFormatResolved, logDirResolved, report)
				if err != nil {
					return err
				}
				if logger != nil {
					logger.Info("run log written",
						zap.String("path", path),
						zap.String("fixtures", report.FixtureName),
						zap.Float64("mean_answer_score", report.Metrics.MeanAnswerScore),
						zap.Float64("page_accuracy", report.Metrics.PageAccuracy),
					)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&fixturesName, "fixtures", "", "fixture set: built-in name (apple-10k) or path to a JSON/JSONL file")
	cmd.Flags().StringVar(&scorerName, "scorer", "", "scorer name (salient, exact, includes, final-number)")
	cmd.Flags().IntVar(&workers, "workers", 0, "number of workers")
	cmd.Flags().StringVar(&outputPath, "output", "", "output file path")
	cmd.Flags().StringVar(&format, "format", "", "output format (table, json, html, markdown, csv)")
	cmd.Flags().StringVar(&modelName, "model", "", "model name for llm providers")
	cmd.Flags().StringVar(&mockAnswer, "mock-answer", "", "fixed mock answer text")
	cmd.Flags().IntVar(&mockPage, "mock-page", 0, "fixed mock page citation (0 = none)")
	cmd.Flags().StringVar(&provider, "provider", "", "answerer provider (echo, mock, openai, anthropic, ollama)")
	cmd.Flags().Float64Var(&rateLimitRPS, "rate-limit-rps", 0, "max requests per second (0 = unlimited)")
	cmd.Flags().IntVar(&rateLimitBurst, "rate-limit-burst", 1, "rate limit burst size")
	cmd.Flags().DurationVar(&caseTimeout, "case-timeout", 60*time.Second, "per-case timeout")
	cmd.Flags().StringVar(&logDir, "log-dir", "", "directory for run logs")
	cmd.Flags().StringVar(&logFormat, "log-format", "", "run log format (json, archive, none)")
	cmd.Flags().BoolVar(&useCache, "cache", false, "cache answerer responses on disk")
	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", "cache directory (default ~/.ragcheck/cache)")

	return cmd
}

func buildFixtureSet(name string) (core.FixtureSet, error) {
	switch name {
	case "apple-10k":
		return fixture.Apple10K(), nil
	default:
		if _, err := os.Stat(name); err != nil {
			return nil, fmt.Errorf("unknown fixture set %q: %w", name, err)
		}
		return fixture.NewFile(name), nil
	}
}

func buildScorer(name string) (core.Scorer, error) {
	switch name {
	case "salient":
		return scorer.SalientOverlap{}, nil
	case "exact":
		return scorer.ExactMatch{CaseSensitive: false, NormalizeWhitespace: true}, nil
	case "includes":
		return scorer.Includes{CaseSensitive: false, NormalizeWhitespace: true}, nil
	case "final-number":
		return scorer.FinalNumber{}, nil
	default:
		return nil, fmt.Errorf("unknown scorer: %s", name)
	}
}

func buildAnswerer(ctx context.Context, provider, modelName, mockAnswer string, mockPage int, fixtures core.FixtureSet) (core.Answerer, error) {
	switch provider {
	case "echo":
		ans, err := answerer.FromFixtures(ctx, fixtures)
		if err != nil {
			return nil, err
		}
		return ans, nil
	case "mock":
		return answerer.Static{Text: mockAnswer, Page: mockPage}, nil
	case "openai":
		openaiAnswerer, err := answerer.NewOpenAIFromEnv(modelName)
		if err != nil {
			return nil, err
		}
		openaiCfg := appConfig.OpenAI
		if openaiCfg.Model != "" && modelName == "" {
			openaiAnswerer.Model = openaiCfg.Model
		}
		if openaiCfg.TimeoutSeconds > 0 {
			openaiAnswerer.Timeout = time.Duration(openaiCfg.TimeoutSeconds) * time.Second
		}
		if openaiCfg.MaxRetries > 0 {
			openaiAnswerer.MaxRetries = openaiCfg.MaxRetries
		}
		if openaiCfg.BackoffMillis > 0 {
			openaiAnswerer.Backoff = time.Duration(openaiCfg.BackoffMillis) * time.Millisecond
		}
		return openaiAnswerer, nil
	case "anthropic":
		anthropicAnswerer, err := answerer.NewAnthropicFromEnv(modelName)
		if err != nil {
			return nil, err
		}
		anthropicCfg := appConfig.Anthropic
		if anthropicCfg.Model != "" && modelName == "" {
			anthropicAnswerer.Model = anthropicCfg.Model
		}
		if anthropicCfg.TimeoutSeconds > 0 {
			anthropicAnswerer.Timeout = time.Duration(anthropicCfg.TimeoutSeconds) * time.Second
		}
		if anthropicCfg.MaxRetries > 0 {
			anthropicAnswerer.MaxRetries = anthropicCfg.MaxRetries
		}
		if anthropicCfg.BackoffMillis > 0 {
			anthropicAnswerer.Backoff = time.Duration(anthropicCfg.BackoffMillis) * time.Millisecond
		}
		if anthropicCfg.MaxTokens > 0 {
			anthropicAnswerer.MaxTokens = anthropicCfg.MaxTokens
		}
		return anthropicAnswerer, nil
	case "ollama":
		ollamaCfg := appConfig.Ollama
		if modelName == "" {
			modelName = ollamaCfg.Model
		}
		ollamaAnswerer, err := answerer.NewOllama(ollamaCfg.BaseURL, modelName)
		if err != nil {
			return nil, err
		}
		if ollamaCfg.TimeoutSeconds > 0 {
			ollamaAnswerer.Timeout = time.Duration(ollamaCfg.TimeoutSeconds) * time.Second
		}
		if ollamaCfg.MaxRetries > 0 {
			ollamaAnswerer.MaxRetries = ollamaCfg.MaxRetries
		}
		if ollamaCfg.BackoffMillis > 0 {
			ollamaAnswerer.Backoff = time.Duration(ollamaCfg.BackoffMillis) * time.Millisecond
		}
		return ollamaAnswerer, nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}

func buildReporter(format string, writer io.Writer) (reporter.Reporter, error) {
	switch format {
	case reporter.FormatJSON:
		return reporter.JSONReporter{Writer: writer, Pretty: true}, nil
	case reporter.FormatTable:
		return reporter.TableReporter{Writer: writer}, nil
	case reporter.FormatHTML:
		return reporter.HTMLReporter{Writer: writer}, nil
	case reporter.FormatMarkdown:
		return reporter.MarkdownReporter{Writer: writer}, nil
	case reporter.FormatCSV:
		return reporter.CSVReporter{Writer: writer}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

func writeRunLog(format string, logDir string, report core.Report) (string, error) {
	switch format {
	case "json":
		return runlog.WriteJSON(logDir, runlog.FromReport(report))
	case "archive", "zip":
		return runlog.WriteArchive(logDir, runlog.FromReport(report))
	default:
		return "", fmt.Errorf("unknown log format: %s", format)
	}
}

type progressBar struct {
	writer io.Writer
	total  int
	start  time.Time
	isTTY  bool
}

func newProgressBar(writer io.Writer, total int) *progressBar {
	return &progressBar{
		writer: writer,
		total:  total,
		start:  time.Now(),
		isTTY:  isTerminal(writer),
	}
}

func (p *progressBar) Update(completed int) {
	width := 30
	if p.total <= 0 {
		elapsed := time.Since(p.start).Truncate(time.Second)
		if p.isTTY {
			fmt.Fprintf(p.writer, "\rProcessed %d cases (%s)", completed, elapsed)
		} else {
			fmt.Fprintf(p.writer, "Processed %d cases (%s)\n", completed, elapsed)
		}
		return
	}

	ratio := float64(completed) / float64(p.total)
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * float64(width))

	bar := strings.Repeat("=", filled) + strings.Repeat(".", width-filled)
	percent := int(ratio * 100)
	elapsed := time.Since(p.start).Truncate(time.Second)

	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("62"))
	line := fmt.Sprintf("[%s] %3d%% (%d/%d) %s", barStyle.Render(bar), percent, completed, p.total, elapsed)
	if p.isTTY {
		fmt.Fprintf(p.writer, "\r%s", line)
	} else {
		fmt.Fprintf(p.writer, "%s\n", line)
	}

	if completed >= p.total {
		fmt.Fprintln(p.writer)
	}
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func progressWriter(cmd *cobra.Command) io.Writer {
	stderr := cmd.ErrOrStderr()
	stdout := cmd.OutOrStdout()

	if isTerminal(stderr) {
		return stderr
	}
	if isTerminal(stdout) {
		return stdout
	}
	return stderr
}

func resolveString(value string, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func resolveInt(value int, fallback int, defaultValue int) int {
	if value > 0 {
		return value
	}
	if fallback > 0 {
		return fallback
	}
	return defaultValue
}
