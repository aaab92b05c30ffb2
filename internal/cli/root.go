package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/standup-cli/standup/internal/config"
	"github.com/standup-cli/standup/internal/gitlog"
	"github.com/standup-cli/standup/internal/llm"
	"github.com/standup-cli/standup/internal/notes"
	"github.com/standup-cli/standup/internal/prompts"
	"github.com/standup-cli/standup/internal/report"
	"github.com/standup-cli/standup/internal/workspace"
)

var (
	workspaceDir string
	reportDays   int
	authorFlag   string
	jsonOutput   bool
	aiSummary    bool
	providerFlag string
	modelFlag    string
	outputPath   string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "standup",
	Short: "Standup - Compile your recent work into a standup report",
	Long: `Standup aggregates your recent development activity into one report.

It scans a workspace directory for git repositories (one level deep), pulls
your commits for the last N days, merges in dated note files from a notes/
directory, and prints the result as formatted text or JSON.

Examples:
  standup                          # last 7 days in the current directory
  standup --dir ~/code --days 14   # a different workspace and window
  standup --author "Jane Doe"      # filter to a specific author
  standup --json                   # machine-readable output
  standup --ai                     # prepend an AI-written narrative`,
	RunE: runReport,
}

func init() {
	rootCmd.Flags().StringVarP(&workspaceDir, "dir", "d", ".", "Workspace root to scan for repositories")
	rootCmd.Flags().IntVar(&reportDays, "days", 7, "Number of days to include")
	rootCmd.Flags().StringVarP(&authorFlag, "author", "a", "", "Filter commits by author (default: git user.name)")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	rootCmd.Flags().BoolVar(&aiSummary, "ai", false, "Prepend an AI-generated narrative summary")
	rootCmd.Flags().StringVar(&providerFlag, "provider", "", "LLM provider for the AI summary")
	rootCmd.Flags().StringVar(&modelFlag, "model", "", "LLM model for the AI summary")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the report to a file instead of stdout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

func Execute() error {
	return rootCmd.Execute()
}

func runReport(cmd *cobra.Command, args []string) error {
	if reportDays < 1 {
		return fmt.Errorf("--days must be at least 1")
	}

	root, err := filepath.Abs(workspaceDir)
	if err != nil {
		return fmt.Errorf("failed to resolve workspace root %s: %w", workspaceDir, err)
	}
	if _, err := os.Stat(root); err != nil {
		return fmt.Errorf("failed to access workspace root %s: %w", root, err)
	}

	cfg, err := config.Load()
	if err != nil {
		VerboseLog("Warning: failed to load config: %v", err)
		cfg = &config.Config{DefaultProvider: "ollama"}
	}

	author := resolveAuthor(cmd, cfg)

	repos := workspace.FindRepos(root)
	VerboseLog("Found %d repositories under %s", len(repos), root)

	ctx := context.Background()
	commits := extractAll(ctx, gitlog.CLISource{}, repos, reportDays, author)

	noteDirs := notes.DefaultDirs(root)
	if cfg.NotesDir != "" {
		noteDirs = []string{cfg.NotesDir}
	}
	memory := notes.Read(noteDirs, reportDays, time.Now())

	r := report.Build(reportDays, author, commits, memory)

	var out string
	if jsonOutput {
		out, err = report.RenderJSON(r)
		if err != nil {
			return err
		}
	} else {
		out = report.RenderText(r, time.Now())
		if aiSummary {
			out = addNarrative(ctx, cfg, r, out)
		}
	}

	return writeReport(out)
}

// resolveAuthor picks the author filter once at the boundary: the flag when
// given (even if empty, meaning all authors), then the configured name, then
// the global git user.name.
func resolveAuthor(cmd *cobra.Command, cfg *config.Config) string {
	if cmd.Flags().Changed("author") {
		return authorFlag
	}
	if cfg.UserName != "" {
		return cfg.UserName
	}
	name, err := gitlog.GlobalAuthorName()
	if err != nil {
		VerboseLog("Warning: could not read global git config: %v", err)
		return ""
	}
	return name
}

// extractAll fans out one extraction per repository and reassembles the
// results in locator order. Extractors share no state, so the only
// coordination needed is the WaitGroup.
func extractAll(ctx context.Context, src gitlog.Source, repos []string, days int, author string) []gitlog.Commit {
	results := make([][]gitlog.Commit, len(repos))

	var wg sync.WaitGroup
	for i, repo := range repos {
		wg.Add(1)
		go func(i int, repo string) {
			defer wg.Done()
			commits, err := gitlog.Extract(ctx, src, repo, days, author)
			if err != nil {
				VerboseLog("Skipping %s: %v", repo, err)
				return
			}
			results[i] = commits
		}(i, repo)
	}
	wg.Wait()

	var all []gitlog.Commit
	for _, commits := range results {
		all = append(all, commits...)
	}
	return all
}

func writeReport(out string) error {
	if outputPath != "" {
		if dir := filepath.Dir(outputPath); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		if err := os.WriteFile(outputPath, []byte(out), 0644); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		color.New(color.FgGreen).Fprintf(os.Stderr, "Report written to %s\n", outputPath)
		return nil
	}
	fmt.Print(out)
	return nil
}

func IsVerbose() bool {
	return verbose
}

func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// isInteractive reports whether stdout is a terminal; the spinner stays off
// when output is piped.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// addNarrative asks the configured LLM for a narrative and attaches it to the
// rendered report. Any failure leaves the report intact with a trailing
// notice; the AI call never fails the run.
func addNarrative(ctx context.Context, cfg *config.Config, r report.Report, rendered string) string {
	serialized, err := report.RenderJSON(r)
	if err != nil {
		return report.WithNarrativeFailure(rendered, err)
	}
	prompt := prompts.BuildStandupSummaryPrompt(r.Author, reportDays, serialized)

	client, err := createClient(cfg)
	if err != nil {
		return report.WithNarrativeFailure(rendered, err)
	}

	var s *spinner.Spinner
	if isInteractive() {
		s = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Suffix = " Generating summary..."
		s.Start()
	}

	callCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()
	narrative, err := client.Complete(callCtx, prompt)

	if s != nil {
		s.Stop()
	}

	if err != nil {
		return report.WithNarrativeFailure(rendered, fmt.Errorf("%w: %v", llm.ErrSummarize, err))
	}
	if narrative == "" {
		return report.WithNarrativeFailure(rendered, fmt.Errorf("%w: empty response", llm.ErrSummarize))
	}
	return report.WithNarrative(rendered, narrative)
}

func createClient(cfg *config.Config) (llm.Client, error) {
	selectedProvider := providerFlag
	if selectedProvider == "" {
		selectedProvider = cfg.DefaultProvider
	}
	if selectedProvider == "" {
		selectedProvider = "ollama"
	}

	llmCfg := llm.Config{
		Provider: llm.Provider(selectedProvider),
		Model:    modelFlag,
	}
	if llmCfg.Model == "" {
		llmCfg.Model = cfg.DefaultModel
	}

	switch llmCfg.Provider {
	case llm.ProviderAnthropic:
		llmCfg.APIKey = cfg.GetAPIKey("anthropic")
	case llm.ProviderGemini:
		llmCfg.APIKey = cfg.GetAPIKey("gemini")
	case llm.ProviderOllama:
		if cfg.OllamaBaseURL != "" {
			llmCfg.BaseURL = cfg.OllamaBaseURL
		}
		if llmCfg.Model == "" && cfg.OllamaModel != "" {
			llmCfg.Model = cfg.OllamaModel
		}
	}

	return llm.NewClient(llmCfg)
}
