package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Raviisinghh-stack/Fico-implementation/internal/dispatch"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/document"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/format"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/writer"
)

var (
	outputFormat string
	fsdFile      string
	saveDir      string
)

var askCmd = &cobra.Command{
	Use:   "ask [query]",
	Short: "Ask for a step-by-step implementation guide",
	Example: `  fico ask "How to configure a new Company Code"`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, dispatch.IntentSteps, strings.Join(args, " "))
	},
}

var explainCmd = &cobra.Command{
	Use:   "explain [concept]",
	Short: "Explain a SAP FICO concept",
	Example: `  fico explain "document splitting"`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, dispatch.IntentConcept, strings.Join(args, " "))
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [requirements]",
	Short: "Analyze FSD requirements and prepare a solution plan",
	Long: `Analyze a functional specification. Requirements come from --file
(.txt, .md or .csv), from the arguments, or from stdin when the only
argument is "-". A file takes precedence over pasted text.`,
	RunE: runAnalyze,
}

func init() {
	for _, c := range []*cobra.Command{askCmd, explainCmd, analyzeCmd} {
		c.Flags().StringVarP(&outputFormat, "output", "o", "text", "Output format: text, markdown or json")
		c.Flags().StringVar(&saveDir, "save", "", "Also save the answer as markdown into this directory")
	}
	analyzeCmd.Flags().StringVarP(&fsdFile, "file", "f", "", "FSD document (.txt, .md, .csv)")
}

func runQuery(cmd *cobra.Command, intent dispatch.Intent, query string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	answer, err := newService().Ask(ctx, intent, query)
	if err != nil {
		return err
	}
	if err := writeAnswer(cmd.OutOrStdout(), answer, outputFormat); err != nil {
		return err
	}
	return saveAnswer(cmd, query, intent, answer)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	var fileText string
	title := "FSD analysis"
	if fsdFile != "" {
		doc, err := document.Load(fsdFile)
		if err != nil {
			return err
		}
		fileText = doc.Content
		title += " " + doc.Metadata.Name
	}

	pasted := strings.Join(args, " ")
	if pasted == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		pasted = string(data)
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	answer, err := newService().AnalyzeFSD(ctx, fileText, pasted)
	if err != nil {
		return err
	}
	if err := writeAnswer(cmd.OutOrStdout(), answer, outputFormat); err != nil {
		return err
	}
	return saveAnswer(cmd, title, dispatch.IntentFSD, answer)
}

func saveAnswer(cmd *cobra.Command, title string, intent dispatch.Intent, answer *dispatch.Answer) error {
	dir := saveDir
	if dir == "" {
		return nil
	}
	path, err := writer.Save(dir, writer.Export{
		Title:   title,
		Intent:  intent,
		Answer:  answer,
		Created: time.Now(),
	})
	if err != nil {
		return err
	}
	logger.Info("saved answer", zap.String("path", path))
	fmt.Fprintf(cmd.ErrOrStderr(), "Saved to %s\n", path)
	return nil
}

func writeAnswer(w io.Writer, answer *dispatch.Answer, output string) error {
	blocks := format.Format(answer.Text)

	switch output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			*dispatch.Answer
			Blocks []format.Block `json:"blocks"`
		}{answer, blocks})

	case "markdown", "md":
		fmt.Fprint(w, format.Markdown(blocks))
		if len(answer.Sources) > 0 {
			fmt.Fprint(w, "\n### Sources:\n")
			for i, src := range answer.Sources {
				fmt.Fprintf(w, "%d. [%s](%s)\n", i+1, src.Title, src.URI)
			}
		}
		return nil

	case "text", "":
		width := 80
		if f, ok := w.(*os.File); ok && term.IsTerminal(f.Fd()) {
			if cols, _, err := term.GetSize(f.Fd()); err == nil && cols > 20 {
				width = min(cols, 100)
			}
		}
		fmt.Fprintln(w, format.Render(blocks, width, format.DefaultTheme()))
		if len(answer.Sources) > 0 {
			fmt.Fprint(w, "\nSources:\n")
			for i, src := range answer.Sources {
				fmt.Fprintf(w, "%d. %s\n   %s\n", i+1, src.Title, src.URI)
			}
		}
		return nil

	default:
		return fmt.Errorf("unknown output format %q", output)
	}
}
