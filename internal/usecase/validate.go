package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var payloadValidator = validator.New(validator.WithRequiredStructEnabled())

// validatePayload rejects collaborator results that miss required fields.
func validatePayload(ctx context.Context, what string, payload any) error {
	if err := payloadValidator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidPayload, what, err)
	}
	return nil
}

func validateEach[T any](ctx context.Context, what string, items []T) error {
	for i := range items {
		if err := validatePayload(ctx, fmt.Sprintf("%s[%d]", what, i), items[i]); err != nil {
			return err
		}
	}
	return nil
}
