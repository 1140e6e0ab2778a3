package rpsls

import (
	"github.com/KirkDiggler/rpg-cli/internal/errors"
)

type matchup struct {
	winner Choice
	loser  Choice
}

// rules maps each winning matchup to the reason it wins. Ten entries cover
// all twenty ordered pairs of distinct choices, one direction each.
var rules = map[matchup]string{
	{winner: ChoiceScissors, loser: ChoiceLizard}: "Scissors decapitate lizard",
	{winner: ChoiceScissors, loser: ChoicePaper}:  "Scissors cuts paper",
	{winner: ChoicePaper, loser: ChoiceRock}:      "Paper covers rock",
	{winner: ChoiceRock, loser: ChoiceLizard}:     "Rock crushes lizard",
	{winner: ChoiceLizard, loser: ChoiceSpock}:    "Lizard poisons Spock",
	{winner: ChoiceSpock, loser: ChoiceScissors}:  "Spock smashes scissors",
	{winner: ChoiceLizard, loser: ChoicePaper}:    "Lizard eats paper",
	{winner: ChoicePaper, loser: ChoiceSpock}:     "Paper disproves Spock",
	{winner: ChoiceSpock, loser: ChoiceRock}:      "Spock vaporizes rock",
	{winner: ChoiceRock, loser: ChoiceScissors}:   "Rock crushes scissors",
}

// DetermineWinner scores a round from the user's perspective
func DetermineWinner(user, computer Choice) (Result, string, error) {
	if user == computer {
		return ResultTie, "It's a tie!", nil
	}

	if reason, ok := rules[matchup{winner: user, loser: computer}]; ok {
		return ResultWin, reason, nil
	}

	if reason, ok := rules[matchup{winner: computer, loser: user}]; ok {
		return ResultLose, reason, nil
	}

	// Unreachable while the table covers all twenty ordered pairs.
	return ResultUnspecified, "", errors.Internalf("no rule covers %s vs %s", user, computer)
}
