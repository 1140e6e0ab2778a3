package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-cli/internal/errors"
	"github.com/KirkDiggler/rpg-cli/internal/orchestrators/rpsls"
	"github.com/KirkDiggler/rpg-cli/internal/pkg/console"
	"github.com/KirkDiggler/rpg-cli/internal/pkg/rng"
)

var rpslsCmd = &cobra.Command{
	Use:   "rpsls",
	Short: "Play Rock Paper Scissors Lizard Spock",
	Long:  `Face the computer in the five-sign variant of rock paper scissors, best known from a certain physics sitcom.`,
	RunE:  runRpsls,
}

func runRpsls(cmd *cobra.Command, args []string) error {
	svc, err := rpsls.NewOrchestrator(&rpsls.Config{
		Console: console.NewStdio(cmd.InOrStdin(), cmd.OutOrStdout()),
		Roller:  rng.NewDice(),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create rpsls orchestrator")
	}

	_, err = svc.Play(cmd.Context(), &rpsls.PlayInput{})
	return err
}
