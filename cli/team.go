package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"deckgenie/content"
	"deckgenie/deck"
)

func init() {
	teamCmd := &cobra.Command{
		Use:   "team",
		Short: "Manage the team slide roster",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the stored roster",
		Run:   runTeamShow,
	}

	setCmd := &cobra.Command{
		Use:   "set <roster.json>",
		Short: "Store a roster and enable the team slide",
		Long:  `Store a roster from a JSON file of the form [{"name": "...", "title": "..."}].`,
		Args:  cobra.ExactArgs(1),
		Run:   runTeamSet,
	}
	setCmd.Flags().Bool("disable", false, "Store the roster but keep the team slide off")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove the roster and disable the team slide",
		Run:   runTeamClear,
	}

	teamCmd.AddCommand(showCmd, setCmd, clearCmd)
	RootCmd.AddCommand(teamCmd)
}

func runTeamShow(cmd *cobra.Command, args []string) {
	store, err := openStore(loadConfig())
	if err != nil {
		exitErr("open session store", err)
	}
	defer store.Close()

	tc, err := deck.LoadTeamConfig(store)
	if err != nil {
		exitErr("load team config", err)
	}

	out, _ := json.MarshalIndent(tc, "", "  ")
	fmt.Println(string(out))
	if tc.IncludeTeamSlide && !tc.ShouldRender() {
		fmt.Fprintln(os.Stderr, "note: team slide is enabled but the roster has no real members, so it will not render")
	}
}

func runTeamSet(cmd *cobra.Command, args []string) {
	disable, _ := cmd.Flags().GetBool("disable")

	raw, err := os.ReadFile(args[0])
	if err != nil {
		exitErr("read roster", err)
	}
	var members []content.TeamMember
	if err := json.Unmarshal(raw, &members); err != nil {
		exitErr("parse roster", err)
	}
	if len(members) == 0 {
		exitErr("parse roster", fmt.Errorf("roster is empty"))
	}

	store, err := openStore(loadConfig())
	if err != nil {
		exitErr("open session store", err)
	}
	defer store.Close()

	tc := deck.TeamConfig{IncludeTeamSlide: !disable, TeamMembers: members}
	if err := deck.SaveTeamConfig(store, tc); err != nil {
		exitErr("save team config", err)
	}
	fmt.Printf("Stored %d team members (team slide %s)\n", len(members), onOff(tc.IncludeTeamSlide))
}

func runTeamClear(cmd *cobra.Command, args []string) {
	store, err := openStore(loadConfig())
	if err != nil {
		exitErr("open session store", err)
	}
	defer store.Close()

	if err := deck.SaveTeamConfig(store, deck.TeamConfig{}); err != nil {
		exitErr("save team config", err)
	}
	fmt.Println("Team roster cleared")
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
