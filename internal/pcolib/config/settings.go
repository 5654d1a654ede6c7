package config

import (
	"os"

	"gopkg.in/ini.v1"
)

const (
	DefaultHost            = "https://api.planningcenteronline.com"
	DefaultServiceTypeName = "English Worship Service"
	DefaultPerPage         = 100
	DefaultSettingsPath    = ".pco/config"
)

type Settings struct {
	Host            string
	ServiceTypeName string
	PerPage         int
	Path            string
}

func defaultSettings(path string) *Settings {
	return &Settings{
		Host:            DefaultHost,
		ServiceTypeName: DefaultServiceTypeName,
		PerPage:         DefaultPerPage,
		Path:            path,
	}
}

/*
LoadSettings
Load optional per-project settings from the ini file at 'path'. A missing
file is fine; the defaults apply. Keys live in the 'main' section:

    [main]
    host = https://api.planningcenteronline.com
    service_type_name = English Worship Service
    per_page = 100
*/
func LoadSettings(path string) (*Settings, error) {
	result := defaultSettings(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return result, nil
		}
		return nil, err
	}

	cfg, err := ini.Load(data)
	if err != nil {
		return nil, err
	}

	section := cfg.Section("main")
	if key := section.Key("host").String(); key != "" {
		result.Host = key
	}
	if key := section.Key("service_type_name").String(); key != "" {
		result.ServiceTypeName = key
	}
	if value, err := section.Key("per_page").Int(); err == nil && value > 0 {
		result.PerPage = value
	}

	return result, nil
}
