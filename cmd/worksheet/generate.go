package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/eduforge/worksheet-api/internal/domain"
	"github.com/eduforge/worksheet-api/internal/export"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a worksheet and print or save it",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		board, _ := flags.GetString("board")
		grade, _ := flags.GetString("grade")
		subject, _ := flags.GetString("subject")
		topic, _ := flags.GetString("topic")
		stream, _ := flags.GetString("stream")
		count, _ := flags.GetInt("questions")
		format, _ := flags.GetString("format")
		out, _ := flags.GetString("out")

		if format != "txt" && format != "csv" && format != "pdf" {
			return fmt.Errorf("unsupported format %q (want txt, csv, or pdf)", format)
		}
		if format == "pdf" && out == "" {
			return fmt.Errorf("pdf output requires --out")
		}

		service, _, err := buildService(cmd.Context(), nil)
		if err != nil {
			return err
		}

		ws, err := service.GenerateWorksheet(cmd.Context(), domain.WorksheetRequest{
			Board:         board,
			Grade:         grade,
			Subject:       subject,
			Topic:         topic,
			Stream:        stream,
			QuestionCount: count,
		})
		if err != nil {
			return fmt.Errorf("generate worksheet: %w", err)
		}

		w := cmd.OutOrStdout()
		if out != "" {
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create output file: %w", err)
			}
			defer f.Close()
			w = f
		}

		switch format {
		case "csv":
			err = export.WriteCSV(w, ws)
		case "pdf":
			err = export.WritePDF(w, ws)
		default:
			err = export.WriteText(w, ws)
		}
		if err != nil {
			return err
		}

		if out != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Saved %s (%d attempts, %s)\n",
				out, ws.Metadata.Attempts, ws.Metadata.Elapsed.Round(time.Millisecond))
		}
		return nil
	},
}

func init() {
	flags := generateCmd.Flags()
	flags.String("board", "CBSE", "school board")
	flags.String("grade", "12", "class or grade level")
	flags.String("subject", "Physics", "subject")
	flags.String("topic", "Electromagnetic Induction", "topic or chapter")
	flags.String("stream", "Science", "stream for higher classes")
	flags.Int("questions", domain.DefaultQuestionCount, "number of questions (5-20)")
	flags.String("format", "txt", "output format: txt, csv, or pdf")
	flags.String("out", "", "write to file instead of stdout")
}
