package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tbhb/typegraph/node"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List every node kind the inspector can produce",
	Run: func(cmd *cobra.Command, args []string) {
		name := color.New(color.FgCyan)
		tag := color.New(color.Faint)

		out := cmd.OutOrStdout()
		for k := node.Kind(1); int(k) < node.KindTotal; k++ {
			line := name.Sprintf("%-20s", k.String())
			switch {
			case k.IsLeaf():
				line += tag.Sprint(" leaf")
			case k.IsTypeParameter():
				line += tag.Sprint(" type parameter")
			}
			fmt.Fprintln(out, line)
		}
	},
}
