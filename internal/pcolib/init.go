package pcolib

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/pcotoolkit/cli/internal/pcolib/config"
)

/*
InitCommand creates a credentials file with placeholder values at 'path'.
When the file already exists the user is asked before it is overwritten;
declining cancels the command without an error.
*/
func InitCommand(path string) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("A configuration file already exists at '%s'.\n", path)
		prompt := promptui.Prompt{
			Label:     "Do you want to overwrite it",
			IsConfirm: true,
		}

		_, err := prompt.Run()

		if err != nil {
			fmt.Println("Init was cancelled!")
			return nil
		}
	}

	credentials := config.NewPlaceholderCredentials(path)
	err := credentials.Save()
	if err != nil {
		return fmt.Errorf("could not create configuration file: %w", err)
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Println(green(fmt.Sprintf(
		"Created '%s'. Please update it with your credentials.", path,
	)))
	return nil
}
