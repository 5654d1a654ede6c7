package pcolib

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uilive"
	"github.com/mattn/go-isatty"
	"github.com/pcotoolkit/cli/pkg/jsonapi"
	"github.com/pcotoolkit/cli/pkg/pcoapi"
)

type ClearTeamPositionArguments struct {
	ServiceTypeName  string
	TeamPositionName string
}

/*
ClearTeamPositionCommand removes every person-team-position assignment of a
named team position. The lookups (service type by name, team position by
name, assignments of the position) short-circuit with a NotFoundError; the
deletions do not: a failed deletion is reported and the loop keeps going.
When any deletion failed the command returns a PartialDeleteError.

Replaying the command is harmless; with no assignments left the deletion
loop simply has nothing to do.
*/
func ClearTeamPositionCommand(
	api *jsonapi.Connection, arguments *ClearTeamPositionArguments,
) error {
	green := color.New(color.FgGreen).SprintfFunc()
	red := color.New(color.FgRed).SprintfFunc()

	serviceType, err := pcoapi.GetServiceType(api, arguments.ServiceTypeName)
	if err != nil {
		return fmt.Errorf("error fetching service types: %w", err)
	}
	if serviceType == nil {
		return &NotFoundError{
			Kind: "service type", Name: arguments.ServiceTypeName,
		}
	}

	teamPosition, err := pcoapi.GetTeamPosition(
		api, serviceType.Id, arguments.TeamPositionName,
	)
	if err != nil {
		return fmt.Errorf("error fetching team positions: %w", err)
	}
	if teamPosition == nil {
		return &NotFoundError{
			Kind:  "team position",
			Name:  arguments.TeamPositionName,
			Scope: arguments.ServiceTypeName,
		}
	}

	assignments, err := pcoapi.GetAssignments(
		api, serviceType.Id, teamPosition.Id,
	)
	if err != nil {
		return fmt.Errorf("error fetching assignments: %w", err)
	}

	// On a terminal a single updating line tracks progress while the
	// per-assignment messages scroll above it.
	out := io.Writer(os.Stdout)
	var progress *uilive.Writer
	if isatty.IsTerminal(os.Stdout.Fd()) {
		progress = uilive.New()
		progress.Start()
		defer progress.Stop()
		out = progress.Bypass()
	}

	failed := 0
	for i := range assignments {
		assignment := &assignments[i]
		if progress != nil {
			fmt.Fprintf(
				progress, "Removing assignment %d of %d...\n",
				i+1, len(assignments),
			)
		}
		err := pcoapi.DeleteAssignment(
			api, serviceType.Id, teamPosition.Id, assignment.Id,
		)
		if err != nil {
			failed++
			fmt.Fprintln(out, red(
				"Failed to remove assignment %s: %s", assignment.Id, err,
			))
		} else {
			fmt.Fprintln(out, green(
				"Successfully removed assignment %s from %s in %s",
				assignment.Id,
				arguments.TeamPositionName,
				arguments.ServiceTypeName,
			))
		}
	}

	if failed > 0 {
		return &PartialDeleteError{Failed: failed, Total: len(assignments)}
	}
	fmt.Fprintf(
		out, "All assignments have been removed from %s in %s.\n",
		arguments.TeamPositionName, arguments.ServiceTypeName,
	)
	return nil
}
