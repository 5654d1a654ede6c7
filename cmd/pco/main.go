package pco

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/pcotoolkit/cli/internal/pcolib"
	"github.com/pcotoolkit/cli/internal/pcolib/config"
	"github.com/pcotoolkit/cli/pkg/jsonapi"
	"github.com/urfave/cli/v2"
)

// Exit codes per error category, so scripts can tell a bad configuration
// from a missing team position or a half-finished bulk delete.
const (
	exitCodeGeneric       = 1
	exitCodeConfig        = 2
	exitCodeNotFound      = 3
	exitCodePartialDelete = 4
)

func exitCode(err error) int {
	var missingFileError *config.MissingFileError
	var invalidError *config.InvalidError
	var notFoundError *pcolib.NotFoundError
	var partialDeleteError *pcolib.PartialDeleteError
	switch {
	case errors.As(err, &missingFileError), errors.As(err, &invalidError):
		return exitCodeConfig
	case errors.As(err, &notFoundError):
		return exitCodeNotFound
	case errors.As(err, &partialDeleteError):
		return exitCodePartialDelete
	default:
		return exitCodeGeneric
	}
}

func credentialsPath(c *cli.Context) (string, error) {
	path := c.String("config")
	if path != "" {
		return path, nil
	}
	return config.GetCredentialsPath()
}

func getSettings(c *cli.Context) (*config.Settings, error) {
	path := c.String("settings")
	if path == "" {
		path = config.DefaultSettingsPath
	}
	settings, err := config.LoadSettings(path)
	if err != nil {
		return nil, err
	}
	if c.String("host") != "" {
		settings.Host = c.String("host")
	}
	return settings, nil
}

func getConnection(
	c *cli.Context, settings *config.Settings,
) (*jsonapi.Connection, error) {
	path, err := credentialsPath(c)
	if err != nil {
		return nil, err
	}
	credentials, err := config.LoadCredentials(path)
	if err != nil {
		return nil, err
	}

	client, err := pcolib.GetClient(c.String("cacert"))
	if err != nil {
		return nil, err
	}

	return &jsonapi.Connection{
		Host:     settings.Host,
		Username: credentials.ClientId,
		Password: credentials.ClientSecret,
		Client:   client,
	}, nil
}

func Main() {
	errorColor := color.New(color.FgRed).SprintfFunc()
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Println("PCO Toolkit, version=" + c.App.Version)
	}
	fail := func(message string, err error) error {
		return cli.Exit(errorColor("%s: %s", message, err), exitCode(err))
	}
	connectionFlags := []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Load credentials from `FILE`",
			EnvVars: []string{"PCO_CONFIG"},
		},
		&cli.StringFlag{
			Name:  "settings",
			Usage: "Load project settings from `FILE`",
		},
		&cli.StringFlag{
			Name:    "host",
			Aliases: []string{"H"},
			Usage:   "The API hostname",
			EnvVars: []string{"PCO_HOST"},
		},
		&cli.StringFlag{
			Name:    "cacert",
			Usage:   "Path to CA certificate bundle file",
			EnvVars: []string{"PCO_CACERT"},
		},
	}
	limitFlag := &cli.IntFlag{
		Name:  "limit",
		Usage: "Limit the number of results returned",
		Value: 10,
	}
	app := &cli.App{
		Name:                   "pco",
		Usage:                  "Interact with the Planning Center API",
		Version:                pcolib.Version,
		UseShortOptionHandling: true,
		Commands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Fetch data from the Planning Center API",
				Subcommands: []*cli.Command{
					{
						Name:  "people",
						Usage: "Fetch and display people data",
						Flags: append([]cli.Flag{limitFlag},
							connectionFlags...),
						Action: func(c *cli.Context) error {
							settings, err := getSettings(c)
							if err != nil {
								return fail("Error loading settings", err)
							}
							api, err := getConnection(c, settings)
							if err != nil {
								return fail("Error loading credentials", err)
							}
							err = pcolib.GetPeopleCommand(
								api,
								&pcolib.GetPeopleArguments{
									Limit:   c.Int("limit"),
									PerPage: settings.PerPage,
								},
							)
							if err != nil {
								return cli.Exit(
									errorColor("%s", err), exitCode(err),
								)
							}
							return nil
						},
					},
					{
						Name: "teams",
						Usage: "Fetch and display teams and their " +
							"associated persons",
						Flags: append([]cli.Flag{limitFlag},
							connectionFlags...),
						Action: func(c *cli.Context) error {
							settings, err := getSettings(c)
							if err != nil {
								return fail("Error loading settings", err)
							}
							api, err := getConnection(c, settings)
							if err != nil {
								return fail("Error loading credentials", err)
							}
							err = pcolib.GetTeamsCommand(
								api,
								&pcolib.GetTeamsArguments{
									Limit:   c.Int("limit"),
									PerPage: settings.PerPage,
								},
							)
							if err != nil {
								return cli.Exit(
									errorColor("%s", err), exitCode(err),
								)
							}
							return nil
						},
					},
				},
			},
			{
				Name:  "clear",
				Usage: "Clear data from the Planning Center API",
				Subcommands: []*cli.Command{
					{
						Name: "team-position",
						Usage: "Remove every person assignment from a " +
							"team position",
						Flags: append([]cli.Flag{
							&cli.StringFlag{
								Name: "service-type-name",
								Usage: "Name of the service type " +
									"(settings file default applies)",
							},
							&cli.StringFlag{
								Name:     "team-position-name",
								Usage:    "Name of the team position to clear",
								Required: true,
							},
						}, connectionFlags...),
						Action: func(c *cli.Context) error {
							settings, err := getSettings(c)
							if err != nil {
								return fail("Error loading settings", err)
							}
							api, err := getConnection(c, settings)
							if err != nil {
								return fail("Error loading credentials", err)
							}
							serviceTypeName := c.String("service-type-name")
							if serviceTypeName == "" {
								serviceTypeName = settings.ServiceTypeName
							}
							err = pcolib.ClearTeamPositionCommand(
								api,
								&pcolib.ClearTeamPositionArguments{
									ServiceTypeName:  serviceTypeName,
									TeamPositionName: c.String(
										"team-position-name",
									),
								},
							)
							if err != nil {
								return cli.Exit(
									errorColor("%s", err), exitCode(err),
								)
							}
							return nil
						},
					},
				},
			},
			{
				Name:  "init",
				Usage: "Create a credentials file with placeholder values",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Write credentials to `FILE`",
						EnvVars: []string{"PCO_CONFIG"},
					},
				},
				Action: func(c *cli.Context) error {
					path, err := credentialsPath(c)
					if err != nil {
						return cli.Exit(
							errorColor("%s", err), exitCodeGeneric,
						)
					}
					err = pcolib.InitCommand(path)
					if err != nil {
						return cli.Exit(errorColor("%s", err), exitCode(err))
					}
					return nil
				},
			},
			{
				Name:  "update",
				Usage: "Update pco to the latest version",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "check",
						Usage: "Check if there is a new version of pco",
					},
					&cli.BoolFlag{
						Name:  "no-interactive",
						Usage: "Update without prompt",
					},
					&cli.BoolFlag{
						Name:  "debug",
						Usage: "Enable logging for the update process",
					},
				},
				Action: func(c *cli.Context) error {
					err := pcolib.UpdateCommand(
						pcolib.UpdateCommandArguments{
							Version:       pcolib.Version,
							NoInteractive: c.Bool("no-interactive"),
							Check:         c.Bool("check"),
							Debug:         c.Bool("debug"),
						},
					)
					if err != nil {
						return cli.Exit(errorColor("%s", err), exitCode(err))
					}
					return nil
				},
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
