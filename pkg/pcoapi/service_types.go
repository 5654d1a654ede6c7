package pcoapi

import (
	"github.com/pcotoolkit/cli/pkg/jsonapi"
)

const serviceTypesPath = "/services/v2/service_types"

/*
GetServiceType returns the first service type whose name matches exactly,
paginating through all of them. A nil resource with a nil error means no
service type matched.
*/
func GetServiceType(
	api *jsonapi.Connection, name string,
) (*jsonapi.Resource, error) {
	page, err := api.List(serviceTypesPath, "")
	if err != nil {
		return nil, err
	}

	for { // pagination
		for i := range page.Data {
			serviceType := page.Data[i]
			if serviceType.StringAttribute("name") == name {
				return &serviceType, nil
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
