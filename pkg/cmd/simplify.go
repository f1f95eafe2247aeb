package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ai-verify/interval-domain/internal/cfgfixture"
	"github.com/ai-verify/interval-domain/pkg/engine"
	"github.com/ai-verify/interval-domain/pkg/ir"
)

var simplifyCmd = &cobra.Command{
	Use:   "simplify cfg.json",
	Short: "Report which Goto/Assume guards ai_simplify can rewrite to true.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		configureLogging(cmd)

		graph, ns, err := cfgfixture.Load(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		result := engine.Analyze(graph, ns)
		green := color.New(color.FgGreen)

		for i := range graph.Nodes {
			node := &graph.Nodes[i]

			var guard *ir.Expr

			switch instr := node.Instr.(type) {
			case ir.Goto:
				guard = &instr.Guard
			case ir.Assume:
				guard = &instr.Guard
			default:
				continue
			}

			env := result.States[node.ID]
			original := (*guard).String()

			if unchanged := env.AiSimplify(guard, ns); !unchanged {
				green.Printf("node %d: %s  ==>  true\n", node.ID, original)
			} else {
				fmt.Printf("node %d: %s  (unchanged)\n", node.ID, original)
			}
		}
	},
}
