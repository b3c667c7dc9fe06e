package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joycejAGMT/casadi/sx"
)

var (
	truncDepth  int
	truncBudget int
)

var truncCmd = &cobra.Command{
	Use:   "trunc",
	Short: "Show budgeted printing on a deep expression chain",
	RunE: func(cmd *cobra.Command, args []string) error {
		if truncDepth < 1 {
			return fmt.Errorf("depth must be positive, got %d", truncDepth)
		}

		x := sx.NewSymbol("x")
		defer x.Free()

		// A left-leaning sum ((..(x+x)+x)..+x) of the requested depth.
		chain := x.Clone()
		for i := 0; i < truncDepth; i++ {
			next := chain.Add(x)
			chain.Free()
			chain = next
		}
		defer chain.Free()

		remaining := truncBudget
		fmt.Printf("budget %d: ", truncBudget)
		chain.Print(os.Stdout, &remaining)
		fmt.Printf("\n(%d budget units left)\n", remaining)

		return nil
	},
}

func init() {
	truncCmd.Flags().IntVar(&truncDepth, "depth", 32, "number of additions in the chain")
	truncCmd.Flags().IntVar(&truncBudget, "budget", 20, "print budget in node visits")
	rootCmd.AddCommand(truncCmd)
}
