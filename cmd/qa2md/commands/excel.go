package commands

import (
	"context"
	"os"

	"github.com/irahardianto/qa2md/internal/engine/config"
	"github.com/irahardianto/qa2md/internal/engine/llm"
	"github.com/irahardianto/qa2md/internal/engine/workbook"
	"github.com/spf13/cobra"
)

// Default folders, relative to the working directory.
const (
	defaultInputDir  = "data/raw"
	defaultOutputDir = "data/markdown"
)

const defaultExcelFileName = "test.md"

var (
	flagExcelInput    string
	flagExcelOutput   string
	flagExcelFileName string
)

var excelCmd = &cobra.Command{
	Use:   "excel",
	Short: "Convert Q&A workbooks (.xlsx) into one Markdown file",
	Long: `Read every .xlsx workbook in the input folder, let the LLM choose the question
and answer columns of each sheet, translate non-Japanese cells into Japanese and
write all records to a single Markdown file.

Credentials are read from the environment or a .env file in the working directory
(AZURE_OPENAI_API_KEY, AZURE_OPENAI_ENDPOINT, AZURE_OPENAI_DEPLOYMENT_NAME,
AZURE_OPENAI_API_VERSION).`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runExcel(cmd.Context(), ExcelOpts{
			Input:        flagExcelInput,
			Output:       flagExcelOutput,
			FileName:     flagExcelFileName,
			SettingsPath: flagConfig,
			JSON:         flagJSON,
			NoColor:      flagNoColor,
		})
	},
}

func init() {
	excelCmd.Flags().StringVarP(&flagExcelInput, "input", "i", defaultInputDir, "Folder containing the workbooks")
	excelCmd.Flags().StringVarP(&flagExcelOutput, "output", "o", defaultOutputDir, "Output folder")
	excelCmd.Flags().StringVarP(&flagExcelFileName, "filename", "f", defaultExcelFileName, "Output file name")
	rootCmd.AddCommand(excelCmd)
}

// runExcel wires real infrastructure and delegates to ExcelPipeline.Execute.
func runExcel(ctx context.Context, opts ExcelOpts) error {
	pipeline := &ExcelPipeline{
		LoadSettings: func(ctx context.Context, path string) (*config.Settings, error) {
			return config.LoadSettings(ctx, path, config.DefaultDotEnvPath)
		},
		NewProvider: func(ctx context.Context, s *config.Settings) (llm.Provider, error) {
			return llm.NewProvider(ctx, s, llm.DefaultClientFactory)
		},
		Reader: workbook.NewReader(),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	return pipeline.Execute(ctx, opts)
}
