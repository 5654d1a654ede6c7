package jsonapi

import (
	"encoding/json"
)

type Resource struct {
	API           *Connection
	Type          string
	Id            string
	Attributes    map[string]interface{}
	Relationships map[string]*Relationship
	Links         Links
}

const (
	NULL     = iota
	SINGULAR = iota
	PLURAL   = iota
)

type Relationship struct {
	Type         int
	Fetched      bool
	DataSingular *Resource
	DataPlural   []Resource
	Links        Links
}

// Resolved reports whether a referenced resource was actually found in the
// response's included set. Stubs produced for unresolved references carry
// only their type and id.
func (r *Resource) Resolved() bool {
	return r.Attributes != nil
}

/*
MapAttributes Map a resource's attributes to a struct. Usage:

    type PersonAttributes struct {
        FirstName string `json:"first_name"`
        ...
    }

    func main() {
        api := jsonapi.Connection{...}
        person, _ := api.Get("/people/v2/people/123")
        var personAttributes PersonAttributes
        person.MapAttributes(&personAttributes)

        fmt.Println(personAttributes.FirstName)
    }
*/
func (r *Resource) MapAttributes(result interface{}) error {
	data, err := json.Marshal(r.Attributes)
	if err != nil {
		return err
	}
	err = json.Unmarshal(data, &result)
	if err != nil {
		return err
	}
	return nil
}

// StringAttribute returns the named attribute as a string. Missing or null
// attributes and attributes of other types come back as "".
func (r *Resource) StringAttribute(key string) string {
	value, exists := r.Attributes[key]
	if !exists {
		return ""
	}
	result, ok := value.(string)
	if !ok {
		return ""
	}
	return result
}

// IntAttribute returns the named attribute as an int, defaulting to 0.
// JSON numbers unmarshal as float64.
func (r *Resource) IntAttribute(key string) int {
	value, exists := r.Attributes[key]
	if !exists {
		return 0
	}
	result, ok := value.(float64)
	if !ok {
		return 0
	}
	return int(result)
}
