package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Manage the resume's skills list",
}

var skillsAddCmd = &cobra.Command{
	Use:   "add <skill>",
	Short: "Add a skill; blanks and duplicates are ignored",
	Args:  cobra.ExactArgs(1),
	RunE:  withApp(runSkillsAdd),
}

var skillsRemoveCmd = &cobra.Command{
	Use:   "remove <skill>",
	Short: "Remove a skill",
	Args:  cobra.ExactArgs(1),
	RunE:  withApp(runSkillsRemove),
}

func init() {
	skillsCmd.AddCommand(skillsAddCmd, skillsRemoveCmd)
	rootCmd.AddCommand(skillsCmd)
}

func runSkillsAdd(cmd *cobra.Command, args []string, a *app) error {
	ed, err := a.editor(cmd)
	if err != nil {
		return err
	}
	changed, err := ed.AddSkill(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if !changed {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Skills unchanged")
		return nil
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Skills: %v\n", ed.Document().Skills)
	return nil
}

func runSkillsRemove(cmd *cobra.Command, args []string, a *app) error {
	ed, err := a.editor(cmd)
	if err != nil {
		return err
	}
	changed, err := ed.RemoveSkill(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if !changed {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Skills unchanged")
		return nil
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Skills: %v\n", ed.Document().Skills)
	return nil
}
