package pcoapi

import (
	"fmt"

	"github.com/pcotoolkit/cli/pkg/jsonapi"
)

/*
GetTeamPosition returns the first team position of the given service type
whose name matches exactly, paginating through all of them. A nil resource
with a nil error means no position matched.
*/
func GetTeamPosition(
	api *jsonapi.Connection, serviceTypeId, name string,
) (*jsonapi.Resource, error) {
	path := fmt.Sprintf(
		"%s/%s/team_positions", serviceTypesPath, serviceTypeId,
	)
	page, err := api.List(path, "")
	if err != nil {
		return nil, err
	}

	for { // pagination
		for i := range page.Data {
			teamPosition := page.Data[i]
			if teamPosition.StringAttribute("name") == name {
				return &teamPosition, nil
			}
		}
		if page.Next != "" {
			page, err = page.GetNext()
			if err != nil {
				return nil, err
			}
		} else {
			return nil, nil
		}
	}
}
