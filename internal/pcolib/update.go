package pcolib

import (
	"fmt"
	"os"

	"github.com/blang/semver"
	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
)

type UpdateCommandArguments struct {
	Version       string
	NoInteractive bool
	Check         bool
	Debug         bool
}

func UpdateCommand(arguments UpdateCommandArguments) error {
	if arguments.Debug {
		selfupdate.EnableLog()
	}
	version := arguments.Version

	current, err := semver.Parse(version)
	if err != nil {
		return err
	}

	latest, _, err := selfupdate.DetectLatest("pcotoolkit/cli")
	if err != nil {
		return err
	}

	if current.GE(latest.Version) {
		fmt.Println("Congratulations, you are up to date with v", version)
		return nil
	}

	fmt.Printf(
		"There is a new latest release for you v%s -> v%s\n",
		current, latest.Version.String(),
	)
	if arguments.Check {
		fmt.Println(
			"Use `pco update` or `pco update --no-interactive` " +
				"command to update to the latest version.")
		fmt.Println("If you want to download and install it manually, " +
			"you can get the asset from")
		fmt.Println(latest.AssetURL)
		return nil
	}

	// Show prompt if there is no no-interactive flag
	if !arguments.NoInteractive {
		prompt := promptui.Prompt{
			Label:     "Do you want to update",
			IsConfirm: true,
		}

		_, err := prompt.Run()

		if err != nil {
			fmt.Println("Update Cancelled")
			return nil
		}
	}

	exe, err := os.Executable()
	if err != nil {
		fmt.Println("Could not locate executable path")
		return err
	}

	fmt.Printf("Updating to v%s\n", latest.Version)
	if err := selfupdate.UpdateTo(latest.AssetURL, exe); err != nil {
		return fmt.Errorf("error occurred while updating binary: %w", err)
	}
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Println(green(fmt.Sprintf(
		"Successfully updated to version v%s", latest.Version,
	)))
	return nil
}
