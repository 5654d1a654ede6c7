package jsonapi

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type Links struct {
	Self    string `json:"self,omitempty"`
	Related string `json:"related,omitempty"`
}

// Used to parse JSON

type PayloadSingular struct {
	Data     PayloadResource   `json:"data"`
	Included []PayloadResource `json:"included,omitempty"`
}

type PayloadPluralRead struct {
	Data     []PayloadResource `json:"data"`
	Links    PaginationLinks   `json:"links,omitempty"`
	Included []PayloadResource `json:"included,omitempty"`
}

type PaginationLinks struct {
	Self     string `json:"self,omitempty"`
	Previous string `json:"prev,omitempty"`
	Next     string `json:"next,omitempty"`
}

type PayloadResource struct {
	Type          string                 `json:"type"`
	Id            string                 `json:"id,omitempty"`
	Attributes    map[string]interface{} `json:"attributes,omitempty"`
	Relationships map[string]interface{} `json:"relationships,omitempty"`
	Links         Links                  `json:"links,omitempty"`
}

// A relationship's 'data' is either a single resource identifier, an array
// of them or null. It is kept raw here so the plurality can be decided by
// looking at the JSON itself.
type payloadRelationship struct {
	Data  json.RawMessage `json:"data"`
	Links Links           `json:"links,omitempty"`
}

type ResourceIdentifier struct {
	Type string `json:"type,omitempty"`
	Id   string `json:"id,omitempty"`
}

func payloadToResource(
	in PayloadResource,
	included map[string]Resource,
	API *Connection,
) (Resource, error) {
	out := Resource{
		API:           API,
		Type:          in.Type,
		Id:            in.Id,
		Attributes:    in.Attributes,
		Relationships: make(map[string]*Relationship),
		Links:         in.Links,
	}

	for key, value := range in.Relationships {
		body, err := json.Marshal(value)
		if err != nil {
			return out, err
		}
		var relationship payloadRelationship
		err = json.Unmarshal(body, &relationship)
		if err != nil {
			return out, err
		}

		data := bytes.TrimSpace(relationship.Data)
		switch {
		case len(data) > 0 && data[0] == '[':
			var identifiers []ResourceIdentifier
			err = json.Unmarshal(data, &identifiers)
			if err != nil {
				return out, err
			}
			items := make([]Resource, 0, len(identifiers))
			for _, identifier := range identifiers {
				items = append(
					items, resolveIdentifier(identifier, included, API),
				)
			}
			out.Relationships[key] = &Relationship{
				Type:       PLURAL,
				DataPlural: items,
				Links:      relationship.Links,
			}
		case len(data) > 0 && data[0] == '{':
			var identifier ResourceIdentifier
			err = json.Unmarshal(data, &identifier)
			if err != nil {
				return out, err
			}
			item := resolveIdentifier(identifier, included, API)
			out.Relationships[key] = &Relationship{
				Type:         SINGULAR,
				Fetched:      item.Attributes != nil,
				DataSingular: &item,
				Links:        relationship.Links,
			}
		default:
			out.Relationships[key] = &Relationship{
				Type:  NULL,
				Links: relationship.Links,
			}
		}
	}

	return out, nil
}

// Look an identifier up in the included map. Unresolved identifiers come
// back as a stub with nil Attributes; callers can skip or fetch them.
func resolveIdentifier(
	identifier ResourceIdentifier,
	included map[string]Resource,
	API *Connection,
) Resource {
	if included != nil {
		key := includedKey(identifier.Type, identifier.Id)
		item, exists := included[key]
		if exists {
			return item
		}
	}
	return Resource{API: API, Type: identifier.Type, Id: identifier.Id}
}

func includedKey(Type, Id string) string {
	return fmt.Sprintf("%s:%s", Type, Id)
}

// Merge a response payload's included array into a <type>:<id> resource map
func mergeIncluded(
	included map[string]Resource,
	includedPayload []PayloadResource,
	API *Connection,
) error {
	for _, payloadResource := range includedPayload {
		includedResource, err := payloadToResource(payloadResource, nil, API)
		if err != nil {
			return err
		}
		key := includedKey(includedResource.Type, includedResource.Id)
		included[key] = includedResource
	}
	return nil
}
