package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/critapp/crit/internal/client"
	"github.com/critapp/crit/internal/models"
	"github.com/critapp/crit/internal/output"
	"github.com/critapp/crit/internal/session"
)

var (
	analyzeLanguage string
	analyzeFilename string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Submit code for review",
	Long: `Submit a code snippet to the review service for analysis.
Reads from the given file, or from stdin when no file is given.
The language is inferred from the filename when not set with --language.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		return analyzeRun(path)
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeLanguage, "language", "l", "", "Language of the code (default: inferred from filename)")
	analyzeCmd.Flags().StringVar(&analyzeFilename, "filename", "", "Filename to record with the submission")
	rootCmd.AddCommand(analyzeCmd)
}

func analyzeRun(path string) error {
	code, filename, err := readSubmission(path)
	if err != nil {
		return err
	}
	if analyzeFilename != "" {
		filename = analyzeFilename
	}

	lang, err := resolveLanguage(analyzeLanguage, filename)
	if err != nil {
		return err
	}

	sub, err := session.NewSubmission(getService())
	if err != nil {
		return err
	}
	sub.Draft = session.Draft{Code: code, Language: lang, Filename: filename}

	ui.VerboseLog("Submitting %d bytes as %s", len(code), lang)

	id, err := sub.Submit(context.Background())
	if err != nil {
		var verr *client.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("nothing to submit: %s", verr.Reason)
		}
		return fmt.Errorf("analyze: %w", err)
	}

	ui.Success("Review created: %s", output.Cyan(id))
	ui.Info("Run 'crit show %s' to see the results", id)
	return nil
}

// readSubmission reads the code to submit from a file, or stdin when path is
// empty. The filename defaults to the file's base name.
func readSubmission(path string) (code, filename string, err error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read file: %w", err)
	}
	return string(data), filepath.Base(path), nil
}

// resolveLanguage picks the submission language: an explicit flag wins, then
// filename inference, then the javascript default.
func resolveLanguage(flag, filename string) (models.Language, error) {
	if flag != "" {
		lang := models.Language(flag)
		if !lang.Valid() {
			return "", fmt.Errorf("unknown language %q (one of: %v)", flag, models.Languages())
		}
		return lang, nil
	}
	if lang, ok := models.DetectLanguage(filename); ok {
		return lang, nil
	}
	return models.LanguageJavaScript, nil
}
