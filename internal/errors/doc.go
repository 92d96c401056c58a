// Package errors provides the coded error type shared by every layer of the quest engine.
//
// Errors carry a Code, a player-safe Message, an optional Cause and free-form Meta:
//
//	err := errors.ResourceExhausted("no content available for this stage").
//	    WithMeta("bucket", "common").
//	    WithMeta("event_count", 1)
//
// Wrap keeps the code of a coded cause, so a repository fault keeps its meaning as it
// travels up through the orchestrator:
//
//	if err := repo.LoadEvents(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load events")
//	}
//
// # Codes used by the engine
//
//   - InvalidArgument: bad option index, unknown destination, invalid character attribute
//   - NotFound: unknown session or missing record
//   - FailedPrecondition: the session is not in the phase the call needs
//   - ResourceExhausted: a selection stage has no eligible content left
//   - Unavailable: the content source could not be read
//   - Aborted: a content load finished after its session moved on
//   - Canceled: the caller's context ended
//   - Internal: anything else
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateEnum("status", input.Status, statuses, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
