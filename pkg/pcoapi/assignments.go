package pcoapi

import (
	"fmt"

	"github.com/pcotoolkit/cli/pkg/jsonapi"
)

func assignmentsPath(serviceTypeId, teamPositionId string) string {
	return fmt.Sprintf(
		"%s/%s/team_positions/%s/person_team_position_assignments",
		serviceTypesPath, serviceTypeId, teamPositionId,
	)
}

/*
GetAssignments fetches every person-team-position assignment of a team
position, following pagination to the end.
*/
func GetAssignments(
	api *jsonapi.Connection, serviceTypeId, teamPositionId string,
) ([]jsonapi.Resource, error) {
	return api.FetchAll(assignmentsPath(serviceTypeId, teamPositionId), "", 0)
}

/*
DeleteAssignment removes one assignment. Success is a 204 from the server;
anything else comes back as an error.
*/
func DeleteAssignment(
	api *jsonapi.Connection, serviceTypeId, teamPositionId, assignmentId string,
) error {
	path := fmt.Sprintf(
		"%s/%s", assignmentsPath(serviceTypeId, teamPositionId), assignmentId,
	)
	return api.Delete(path)
}
