package pcolib

import (
	"fmt"
	"strings"

	"github.com/pcotoolkit/cli/pkg/jsonapi"
	"github.com/pcotoolkit/cli/pkg/pcoapi"
)

var teamsHeaders = []string{
	"Team ID",
	"Team Name",
	"Positions",
	"Person ID",
	"First Name",
	"Last Name",
	"Emails",
	"Phone Numbers",
}

type GetTeamsArguments struct {
	Limit   int
	PerPage int
}

/*
GetTeamsCommand fetches teams and, for each one, the people on it, printing
one tab-delimited row per team member. The limit applies to teams, not
members.
*/
func GetTeamsCommand(
	api *jsonapi.Connection, arguments *GetTeamsArguments,
) error {
	teams, err := pcoapi.GetTeams(api, arguments.Limit, arguments.PerPage)
	if err != nil {
		return fmt.Errorf("error fetching teams: %w", err)
	}

	fmt.Println(strings.Join(teamsHeaders, "\t"))
	for _, team := range teams {
		members, err := pcoapi.GetTeamMembers(
			api, team.Id, arguments.PerPage,
		)
		if err != nil {
			return fmt.Errorf(
				"error fetching people of team '%s': %w", team.Name, err,
			)
		}
		for _, member := range members {
			fmt.Println(strings.Join([]string{
				team.Id,
				team.Name,
				strings.Join(team.Positions, ", "),
				member.Id,
				member.FirstName,
				member.LastName,
				strings.Join(member.Emails, ", "),
				strings.Join(member.PhoneNumbers, ", "),
			}, "\t"))
		}
	}
	return nil
}
