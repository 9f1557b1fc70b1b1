package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/irahardianto/qa2md/internal/engine/docx"
	"github.com/spf13/cobra"
)

const defaultWordFileName = "qa_from_word.md"

var (
	flagWordInput    string
	flagWordOutput   string
	flagWordFileName string
)

var wordCmd = &cobra.Command{
	Use:   "word",
	Short: "Convert Word documents (.docx) into one Markdown file",
	Long: `Reflow the paragraphs of every .docx document in the input folder into Markdown.
Blank paragraphs separate blocks and every block ends with the name of its source file.
No LLM is involved.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runWord(cmd.Context(), docx.NewConverter(docx.NewReader()), os.Stdout)
	},
}

func init() {
	wordCmd.Flags().StringVarP(&flagWordInput, "input", "i", defaultInputDir, "Folder containing the documents")
	wordCmd.Flags().StringVarP(&flagWordOutput, "output", "o", defaultOutputDir, "Output folder")
	wordCmd.Flags().StringVarP(&flagWordFileName, "filename", "f", defaultWordFileName, "Output file name")
	rootCmd.AddCommand(wordCmd)
}

func runWord(ctx context.Context, conv *docx.Converter, out io.Writer) error {
	res, err := conv.Run(ctx, flagWordInput, flagWordOutput, flagWordFileName)
	if err != nil {
		return err
	}

	if flagJSON {
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if res.OutputPath == "" {
		fmt.Fprintf(out, "no text blocks found in %s\n", flagWordInput)
	} else {
		fmt.Fprintf(out, "%d block(s) from %d document(s) written to %s\n", res.Blocks, len(res.Files), res.OutputPath)
	}
	if len(res.Failed) > 0 {
		fmt.Fprintf(out, "%d document(s) failed\n", len(res.Failed))
	}
	return nil
}
