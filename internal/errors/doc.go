// Package errors provides the structured error handling used across rpg-cli.
//
// It provides:
//   - Structured errors with codes, messages, and metadata
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("session not found")
//	err := errors.InvalidArgumentf("invalid spell index: %d", idx)
//
// Adding metadata:
//
//	err := errors.NotFound("session not found").
//	    WithMeta("session_id", sessionID)
//
// Wrapping errors:
//
//	if err := journal.Append(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to record visit")
//	}
//
// # Error Checking
//
// Type checking:
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
// Extracting information:
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//
// # Validation Errors
//
// Config validation uses the fluent builder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Console == nil {
//	    vb.RequiredField("Console")
//	}
//	return vb.Build()
package errors
