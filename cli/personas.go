package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"deckgenie/persona"
)

var personaBlurbs = map[string]string{
	persona.Business:  "Balanced deck for business stakeholders (default)",
	persona.Technical: "Detail-heavy deck leading with capabilities and roadmap",
	persona.Executive: "Short deck leading with market and outcomes",
}

func init() {
	cmd := &cobra.Command{
		Use:   "personas",
		Short: "List available personas",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range persona.Names() {
				style := persona.StyleFor(name)
				fmt.Printf("%-10s %s (max %d bullets per slide)\n", name, personaBlurbs[name], style.Limits.MaxBullets)
			}
		},
	}
	RootCmd.AddCommand(cmd)
}
