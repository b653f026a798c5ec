package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List form types and their fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := a.registry(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, form := range reg.Schemas() {
				printf(out, "%s %s\n", styleTitle.Render(form.TypeName),
					styleMuted.Render(fieldSummary(len(form.Fields), len(form.RequiredFields()))))
				for _, field := range form.Fields {
					marker := ""
					if field.Required {
						marker = " *"
					}
					printf(out, "  %s%s %s\n", field.Name, marker, styleMuted.Render("("+string(field.Kind)+")"))
				}
			}
			return nil
		},
	}
}

func fieldSummary(fields, required int) string {
	noun := "fields"
	if fields == 1 {
		noun = "field"
	}
	return fmt.Sprintf("(%d %s, %d required)", fields, noun, required)
}
