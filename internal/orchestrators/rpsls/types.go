package rpsls

import "strings"

// Choice is one of the five playable signs
type Choice string

// The five choices in menu order
const (
	ChoiceRock     Choice = "rock"
	ChoicePaper    Choice = "paper"
	ChoiceScissors Choice = "scissors"
	ChoiceLizard   Choice = "lizard"
	ChoiceSpock    Choice = "spock"
)

// Choices lists every choice in menu order
var Choices = []Choice{ChoiceRock, ChoicePaper, ChoiceScissors, ChoiceLizard, ChoiceSpock}

// Title returns the choice capitalized for display
func (c Choice) Title() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c[0])) + string(c[1:])
}

// Result scores a round from the user's perspective
type Result int

// Result values
const (
	ResultUnspecified Result = iota
	ResultWin
	ResultLose
	ResultTie
)

// String returns the string representation of the result
func (r Result) String() string {
	switch r {
	case ResultWin:
		return "WIN"
	case ResultLose:
		return "LOSE"
	case ResultTie:
		return "TIE"
	default:
		return "UNSPECIFIED"
	}
}

// PlayRoundInput defines the request for playing a single round
type PlayRoundInput struct{}

// PlayRoundOutput defines the response for playing a single round
type PlayRoundOutput struct {
	User     Choice
	Computer Choice
	Result   Result
	Reason   string
}

// PlayInput defines the request for running the full match loop
type PlayInput struct{}

// PlayOutput defines the response for running the full match loop
type PlayOutput struct {
	RoundsPlayed int
	Wins         int
	Losses       int
	Ties         int
}
