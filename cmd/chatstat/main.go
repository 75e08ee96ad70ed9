package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/bfranks/chatstat/internal/analyze"
	"github.com/bfranks/chatstat/internal/chatline"
	"github.com/bfranks/chatstat/internal/config"
	"github.com/bfranks/chatstat/internal/report"
	"github.com/bfranks/chatstat/internal/stopwords"
	"github.com/bfranks/chatstat/internal/tui"
)

var (
	modeFlag        []string
	sizeFlag        int
	startDateFlag   string
	endDateFlag     string
	stopwordFlag    string
	customStopFlag  string
	debugFlag       bool
	interactiveFlag bool
	noColorFlag     bool
	configFlag      string
)

var rootCmd = &cobra.Command{
	Use:   "chatstat FILE",
	Short: "Read and analyze an exported chat transcript",
	Long: `chatstat reads an exported chat transcript, classifies every line and
prints ranked statistics as colored terminal charts: active senders,
vocabulary, shared domains, emoji usage, per-member favorites and a
weekly activity heatmap.`,
	Args:          cobra.ExactArgs(1),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringArrayVarP(&modeFlag, "mode", "m", nil,
		"run only certain analyses (chat, activity, word, url, emoji, attachment); repeatable")
	rootCmd.Flags().IntVarP(&sizeFlag, "size", "n", 0,
		"sample size to show per chart (default 50)")
	rootCmd.Flags().StringVarP(&startDateFlag, "start-date", "S", "",
		"day to begin analysis, inclusive (e.g. 2020-03-02)")
	rootCmd.Flags().StringVarP(&endDateFlag, "end-date", "E", "",
		"day to end analysis, inclusive")
	rootCmd.Flags().StringVarP(&stopwordFlag, "stopword", "s", "",
		"stop-word language for word analysis (default english)")
	rootCmd.Flags().StringVarP(&customStopFlag, "customstopword", "c", "",
		"custom stop-word file, one word per line; overrides --stopword")
	rootCmd.Flags().BoolVarP(&debugFlag, "debug", "d", false,
		"write every parsed line as JSON to stderr")
	rootCmd.Flags().BoolVarP(&interactiveFlag, "interactive", "i", false,
		"view the report in a scrollable full-screen pager")
	rootCmd.Flags().BoolVar(&noColorFlag, "no-color", false,
		"disable colored output")
	rootCmd.Flags().StringVar(&configFlag, "config", "",
		"config file path (default ~/.config/chatstat/config.toml)")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	modes, err := report.ParseModes(cfg.Analysis.Modes)
	if err != nil {
		return err
	}

	window, err := buildWindow()
	if err != nil {
		return err
	}

	stop, err := loadStopwords(cfg)
	if err != nil {
		return err
	}

	counter, err := aggregateFile(args[0], window)
	if err != nil {
		return err
	}

	palette := report.DefaultPalette()
	if noColorFlag || !cfg.Display.Color {
		palette = report.PlainPalette()
	}

	out := report.Build(counter, stop, report.Options{
		Modes:      modes,
		SampleSize: cfg.Display.SampleSize,
		BarWidth:   cfg.Display.BarWidth,
		Fill:       cfg.Display.Fill,
		Palette:    palette,
	})

	if interactiveFlag {
		return tui.Run("chatstat — "+filepath.Base(args[0]), out)
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// loadConfig reads the config file and folds explicitly set flags over it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	var result *config.LoadResult
	var err error
	if configFlag != "" {
		result, err = config.LoadFrom(configFlag)
	} else {
		result, err = config.Load()
	}
	if err != nil {
		return config.Config{}, err
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "chatstat: config warning: %s\n", w)
	}

	cfg := result.Config
	if cmd.Flags().Changed("size") {
		if sizeFlag < 1 {
			return config.Config{}, fmt.Errorf("sample size must be positive, got %d", sizeFlag)
		}
		cfg.Display.SampleSize = sizeFlag
	}
	if cmd.Flags().Changed("mode") {
		cfg.Analysis.Modes = modeFlag
	}
	if cmd.Flags().Changed("stopword") {
		cfg.Analysis.StopwordLanguage = stopwordFlag
	}
	return cfg, nil
}

func buildWindow() (analyze.Window, error) {
	var start, end *time.Time
	if startDateFlag != "" {
		t, err := analyze.ParseDate(startDateFlag)
		if err != nil {
			return analyze.Window{}, fmt.Errorf("start date: %w", err)
		}
		start = &t
	}
	if endDateFlag != "" {
		t, err := analyze.ParseDate(endDateFlag)
		if err != nil {
			return analyze.Window{}, fmt.Errorf("end date: %w", err)
		}
		end = &t
	}
	return analyze.NewWindow(start, end), nil
}

func loadStopwords(cfg config.Config) (stopwords.Set, error) {
	if customStopFlag != "" {
		return stopwords.LoadFile(customStopFlag)
	}
	return stopwords.Load(cfg.Analysis.StopwordLanguage)
}

// aggregateFile runs the single forward pass: classify every line,
// apply the date window and fold passing records into the counter.
func aggregateFile(path string, window analyze.Window) (*analyze.Counter, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chat file %q: %w", path, err)
	}
	defer f.Close()

	var logger chatline.Logger = chatline.NopLogger{}
	if debugFlag {
		logger = chatline.NewWriterLogger(os.Stderr)
	}

	counter := analyze.NewCounter()
	var prev *chatline.Record

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		rec := chatline.Parse(sc.Text(), prev, logger)
		prev = rec

		if !window.Contains(rec.Timestamp) {
			continue
		}
		counter.Add(rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading chat file: %w", err)
	}

	return counter, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "chatstat: %v\n", err)
		os.Exit(1)
	}
}
