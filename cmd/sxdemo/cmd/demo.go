package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joycejAGMT/casadi/matrix"
	"github.com/joycejAGMT/casadi/sx"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Build an expression system and show eager simplification",
	RunE: func(cmd *cobra.Command, args []string) error {
		x := sx.NewSymbol("x")
		defer x.Free()
		y := sx.NewSymbol("y")
		defer y.Free()
		zero := sx.Zero()
		defer zero.Free()

		// Identities collapse at construction time, no simplify pass exists.
		sum := x.Add(zero)
		fmt.Printf("x + 0        = %s\n", sum.String())
		sum.Free()

		diff := x.Sub(x)
		fmt.Printf("x - x        = %s\n", diff.String())
		diff.Free()

		doubled := x.Add(x)
		fmt.Printf("x + x        = %s\n", doubled.String())
		doubled.Free()

		eight := sx.NewInt(8)
		pow := x.Pow(eight)
		fmt.Printf("x ^ 8        = %s\n", pow.String())
		pow.Free()
		eight.Free()

		sq := x.Mul(x)
		root := sq.Sqrt()
		fmt.Printf("sqrt(x*x)    = %s\n", root.String())
		root.Free()

		ge := sq.Ge(zero)
		fmt.Printf("x*x >= 0     = %s\n", ge.String())
		ge.Free()
		sq.Free()

		cond := x.Ge(y)
		branch := sx.IfElse(cond, x, y)
		fmt.Printf("max via cond = %s\n", branch.String())
		branch.Free()
		cond.Free()

		// The same entries drive the matrix bridge.
		m, err := matrix.NewDense(1, 2)
		if err != nil {
			return err
		}
		defer m.Free()
		if err := m.Set(0, 0, x); err != nil {
			return err
		}
		if err := m.Set(0, 1, y); err != nil {
			return err
		}
		s := matrix.FromScalar(x)
		defer s.Free()
		prod, err := m.Mul(s)
		if err != nil {
			return err
		}
		fmt.Printf("[x, y] .* x  = %s\n", prod.String())
		prod.Free()

		fmt.Printf("live nodes   = %d\n", sx.LiveNodes())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
