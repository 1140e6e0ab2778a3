package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-cli/internal/errors"
	"github.com/KirkDiggler/rpg-cli/internal/orchestrators/castle"
	"github.com/KirkDiggler/rpg-cli/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-cli/internal/pkg/console"
	"github.com/KirkDiggler/rpg-cli/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-cli/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-cli/internal/repositories/journal"
)

var castleCmd = &cobra.Command{
	Use:   "castle",
	Short: "Explore a haunted castle",
	Long:  `Pick doors, wander the rooms, and keep exploring until you find the treasure or cross the red wizard.`,
	RunE:  runCastle,
}

func runCastle(cmd *cobra.Command, args []string) error {
	svc, err := castle.NewOrchestrator(&castle.Config{
		Console:     console.NewStdio(cmd.InOrStdin(), cmd.OutOrStdout()),
		Roller:      rng.NewDice(),
		Journal:     journal.NewInMemory(),
		IDGenerator: idgen.NewUUID("session"),
		Clock:       clock.New(),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create castle orchestrator")
	}

	_, err = svc.PlayGame(cmd.Context(), &castle.PlayGameInput{})
	return err
}
