package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"calc-suite/domain"
	"calc-suite/repository"
	"calc-suite/service"
)

var (
	inputPath   string
	showSummary bool
)

var calcCmd = &cobra.Command{
	Use:   "calc <tool>",
	Short: "Evaluate one calculator on a JSON input",
	Long: `Reads a JSON input document from --input (or stdin) and prints the
derived result as JSON. With --summary a short human-readable digest is
printed instead.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: toolNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		tool := domain.Tool(args[0])
		if !tool.Valid() {
			return fmt.Errorf("unknown tool %q (valid: %s)", args[0], strings.Join(toolNames(), ", "))
		}

		data, err := readInput(cmd.InOrStdin(), inputPath)
		if err != nil {
			return err
		}

		svc := service.NewCalculatorService(repository.NoopCache{}, nil, logger)
		result, err := evaluate(cmd.Context(), svc, tool, data)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if showSummary {
			for _, line := range summarize(result) {
				fmt.Fprintln(out, line)
			}
			return nil
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	calcCmd.Flags().StringVarP(&inputPath, "input", "i", "", "JSON input file (default: stdin)")
	calcCmd.Flags().BoolVarP(&showSummary, "summary", "s", false, "Print a human-readable summary")
}

func toolNames() []string {
	tools := domain.Tools()
	names := make([]string, len(tools))
	for i, t := range tools {
		names[i] = string(t)
	}
	return names
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

func decodeRun[I any, R any](ctx context.Context, data []byte, fn func(context.Context, I) R) (any, error) {
	var in I
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := json.Unmarshal(data, &in); err != nil {
			return nil, fmt.Errorf("decode input: %w", err)
		}
	}
	return fn(ctx, in), nil
}

func evaluate(ctx context.Context, svc *service.CalculatorService, tool domain.Tool, data []byte) (any, error) {
	switch tool {
	case domain.ToolMortgage:
		return decodeRun(ctx, data, svc.Mortgage)
	case domain.ToolAntler:
		return decodeRun(ctx, data, svc.Antler)
	case domain.ToolStockOption:
		return decodeRun(ctx, data, svc.StockOption)
	case domain.ToolCRS:
		return decodeRun(ctx, data, svc.CRS)
	case domain.ToolFSWP:
		return decodeRun(ctx, data, svc.FSWP)
	case domain.ToolHELOC:
		return decodeRun(ctx, data, svc.HELOC)
	case domain.ToolSonnet:
		return decodeRun(ctx, data, svc.Sonnet)
	case domain.ToolSonnetScan:
		return decodeRun(ctx, data, svc.AnalyzeSonnet)
	case domain.ToolSupplement:
		return decodeRun(ctx, data, svc.Supplement)
	}
	return nil, fmt.Errorf("unknown tool %q", tool)
}
