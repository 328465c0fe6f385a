package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yTakatsukasa/verible/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-run the variant analysis on every save",
	Long: `Analyze a source file, then keep watching it and re-run the analysis each
time it changes. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	filename := args[0]

	if err := analyzeFile(filename, os.Stdout); err != nil {
		logger.Error("analysis failed", "err", err)
	}

	fw, err := watch.New()
	if err != nil {
		return err
	}
	defer fw.Close()

	// Watch the directory: many editors replace the file on save, which
	// drops a watch registered on the file itself.
	if err := fw.Add(filepath.Dir(filename)); err != nil {
		return err
	}

	target, err := filepath.Abs(filename)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("watching", "file", filename)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events():
			if !ok {
				return nil
			}
			path, err := filepath.Abs(ev.Path)
			if err != nil || path != target || !ev.Reanalyze() {
				continue
			}
			logger.Info("re-analyzing", "file", filename)
			if err := analyzeFile(filename, os.Stdout); err != nil {
				logger.Error("analysis failed", "err", err)
			}
		case err := <-fw.Errors():
			logger.Warn("watch error", "err", err)
		}
	}
}
