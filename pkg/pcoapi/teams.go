package pcoapi

import (
	"fmt"
	"strconv"

	"github.com/pcotoolkit/cli/pkg/jsonapi"
)

const teamsPath = "/services/v2/teams"

type TeamAttributes struct {
	Name      string   `json:"name"`
	Positions []string `json:"positions"`
}

type Team struct {
	Id string
	TeamAttributes
}

type TeamMember struct {
	Id           string
	FirstName    string
	LastName     string
	Emails       []string
	PhoneNumbers []string
}

/*
GetTeams fetches up to 'limit' teams (0 for all of them).
*/
func GetTeams(api *jsonapi.Connection, limit, perPage int) ([]Team, error) {
	query := jsonapi.Query{
		Extras: map[string]string{"per_page": strconv.Itoa(perPage)},
	}.Encode()

	teams, err := api.FetchAll(teamsPath, query, limit)
	if err != nil {
		return nil, err
	}

	result := make([]Team, 0, len(teams))
	for i := range teams {
		team := Team{Id: teams[i].Id}
		err := teams[i].MapAttributes(&team.TeamAttributes)
		if err != nil {
			return nil, err
		}
		result = append(result, team)
	}
	return result, nil
}

/*
GetTeamMembers fetches every person on a team, with emails and phone
numbers side-loaded and resolved. Unresolved references are skipped.
*/
func GetTeamMembers(
	api *jsonapi.Connection, teamId string, perPage int,
) ([]TeamMember, error) {
	path := fmt.Sprintf("%s/%s/people", teamsPath, teamId)
	query := jsonapi.Query{
		Includes: []string{"emails", "phone_numbers"},
		Extras:   map[string]string{"per_page": strconv.Itoa(perPage)},
	}.Encode()

	people, err := api.FetchAll(path, query, 0)
	if err != nil {
		return nil, err
	}

	result := make([]TeamMember, 0, len(people))
	for i := range people {
		person := &people[i]
		member := TeamMember{
			Id:        person.Id,
			FirstName: person.StringAttribute("first_name"),
			LastName:  person.StringAttribute("last_name"),
		}
		for key, relationship := range person.Relationships {
			if relationship.Type != jsonapi.PLURAL {
				continue
			}
			for j := range relationship.DataPlural {
				item := &relationship.DataPlural[j]
				if !item.Resolved() {
					continue
				}
				switch key {
				case "emails":
					member.Emails = append(
						member.Emails, item.StringAttribute("address"),
					)
				case "phone_numbers":
					member.PhoneNumbers = append(
						member.PhoneNumbers, item.StringAttribute("number"),
					)
				}
			}
		}
		result = append(result, member)
	}
	return result, nil
}
