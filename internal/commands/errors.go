package commands

import (
	"errors"
	"fmt"

	"github.com/contable-dev/contable/internal/api"
)

// describeBackendError passes backend messages through verbatim, flagging
// negative-balance policy rejections so the user can tell an accounting
// rule apart from a generic failure.
func describeBackendError(err error) error {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		if apiErr.NegativeBalance() {
			return fmt.Errorf("accounting policy violation: %s", apiErr.Message)
		}
		return errors.New(apiErr.Message)
	}
	return err
}
