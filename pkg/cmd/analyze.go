package cmd

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ai-verify/interval-domain/internal/cfgfixture"
	"github.com/ai-verify/interval-domain/internal/termio"
	"github.com/ai-verify/interval-domain/pkg/domain"
	"github.com/ai-verify/interval-domain/pkg/engine"
	"github.com/ai-verify/interval-domain/pkg/ir"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze cfg.json",
	Short: "Run the interval domain to a fixed point over a CFG fixture and print the result.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		configureLogging(cmd)

		width := GetUint(cmd, "textwidth")
		if width == 0 {
			width = termio.Width()
		}

		graph, ns, err := cfgfixture.Load(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		result := engine.Analyze(graph, ns)
		printResult(result.States, ns, width)
	},
}

func printResult(states map[ir.NodeID]*domain.Environment, ns *ir.Namespace, width uint) {
	bottomStyle := color.New(color.FgRed, color.Bold)
	headerStyle := color.New(color.FgCyan, color.Bold)

	ids := make([]ir.NodeID, 0, len(states))
	for id := range states {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		header := fmt.Sprintf("-- node %d ", id)
		headerStyle.Println(padRule(header, width))

		var buf bytes.Buffer
		states[id].Output(&buf, ns)

		if states[id].IsBottom() {
			bottomStyle.Print(buf.String())
			continue
		}

		fmt.Print(buf.String())
	}
}

func padRule(header string, width uint) string {
	if uint(len(header)) >= width {
		return header
	}

	return header + strings.Repeat("-", int(width)-len(header))
}
