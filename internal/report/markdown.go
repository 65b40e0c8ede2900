package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/nao1215/photostamp/internal/model"
)

// MarkdownWriter outputs the run summary as GitHub Flavored Markdown,
// suitable for pasting into issues or saving alongside the output
// directory.
type MarkdownWriter struct {
	output io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given
// writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output}
}

// Write outputs the summary as Markdown.
func (w *MarkdownWriter) Write(summary *model.RunSummary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Photostamp Run Summary")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Started", summary.StartedAt.Format("2006-01-02 15:04:05")},
			{"Elapsed", summary.Elapsed.String()},
			{"Output Directory", "`" + summary.OutputDir + "`"},
		},
	})
	md.PlainText("")

	md.H2("Tallies")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Outcome", "Count"},
		Rows: [][]string{
			{"Processed", strconv.Itoa(summary.Processed())},
			{"Skipped (no capture date)", strconv.Itoa(summary.SkippedNoDate())},
			{"Failed", strconv.Itoa(summary.Failed())},
			{"**Total**", "**" + strconv.Itoa(summary.Total()) + "**"},
		},
	})
	md.PlainText("")

	if len(summary.Items) > 0 {
		w.writeItems(md, summary)
	}

	return len(md.String()), md.Build()
}

// writeItems writes the per-file results table.
func (w *MarkdownWriter) writeItems(md *markdown.Markdown, summary *model.RunSummary) {
	rows := make([][]string, 0, len(summary.Items))
	for _, item := range summary.Items {
		rows = append(rows, []string{"`" + item.Name + "`", item.Status.String(), item.Detail})
	}

	md.H2("Files")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"File", "Outcome", "Detail"},
		Rows:   rows,
	})
}
