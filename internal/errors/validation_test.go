package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-cli/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestBuilderEmpty() {
	vb := errors.NewValidationBuilder()
	s.Assert().NoError(vb.Build())
}

func (s *ValidationTestSuite) TestBuilderRequiredFields() {
	err := errors.NewValidationBuilder().
		RequiredField("Console").
		RequiredField("Roller").
		Build()

	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "Console: is required")
	s.Assert().Contains(err.Error(), "Roller: is required")
}

func (s *ValidationTestSuite) TestBuilderInvalidField() {
	err := errors.NewValidationBuilder().
		InvalidField("Rooms", "must not contain nil entries").
		Build()

	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "Rooms: is invalid: must not contain nil entries")
}

func (s *ValidationTestSuite) TestValidationErrorMeta() {
	verr := errors.NewValidationError()
	verr.AddFieldError("IDGenerator", "is required")

	err := verr.ToError()
	s.Require().NotNil(err)
	s.Assert().Equal(verr.Fields, err.Meta["validation_errors"])
}
