package main

import (
	"fmt"

	"github.com/franz/tidysic/internal/structure"
	"github.com/spf13/cobra"
)

var dumpCfg bool

func init() {
	rootCmd.Flags().BoolVar(&dumpCfg, "dump-config", false, "print the built-in default structure and exit")
}

// maybeDumpConfig handles --dump-config before any scan/plan/execute work
// starts. It returns true if it handled the command (the caller should
// return immediately).
func maybeDumpConfig(cmd *cobra.Command) bool {
	if !dumpCfg {
		return false
	}
	fmt.Print(structure.DefaultText)
	return true
}
</content>
