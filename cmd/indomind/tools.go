package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/indomind-ai/indomind/pkg/registry"
)

var (
	toolsCategory string
	toolsQuery    string
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Inspect and mutate the built-in tool catalog",
}

var toolsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cataloged tools",
	RunE: func(_ *cobra.Command, _ []string) error {
		reg := registry.NewDefault()
		tools := reg.List(toolsCategory, toolsQuery)
		if len(tools) == 0 {
			fmt.Println("No tools found.")
			return nil
		}
		for _, t := range tools {
			state := "disabled"
			if t.Enabled {
				state = "enabled"
			}
			impl := ""
			if !t.Implemented {
				impl = " (under development)"
			}
			fmt.Printf("%-28s %-24s %s%s\n", t.ID, t.Category, state, impl)
		}
		return nil
	},
}

var toolsToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Flip a tool's enabled flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		reg := registry.NewDefault()
		tool, err := reg.Toggle(args[0])
		if err != nil {
			return err
		}
		state := "disabled"
		if tool.Enabled {
			state = "enabled"
		}
		fmt.Printf("%s is now %s\n", tool.Name, state)
		return nil
	},
}

var toolsAddCmd = &cobra.Command{
	Use:   "add <name> <category>",
	Short: "Add a placeholder tool to the catalog",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		reg := registry.NewDefault()
		tool := reg.Add(args[0], args[1])
		fmt.Printf("Added %s (id %s) under %s\n", tool.Name, tool.ID, tool.Category)
		return nil
	},
}

func init() {
	toolsListCmd.Flags().StringVar(&toolsCategory, "category", "", "Filter by category")
	toolsListCmd.Flags().StringVar(&toolsQuery, "query", "", "Case-insensitive name/description search")

	toolsCmd.AddCommand(toolsListCmd)
	toolsCmd.AddCommand(toolsToggleCmd)
	toolsCmd.AddCommand(toolsAddCmd)
}
