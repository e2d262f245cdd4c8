package pip

import (
	"errors"
	"testing"
)

func TestCheck(t *testing.T) {
	t.Parallel()

	if err := Check("definitely-not-a-pip-binary"); !errors.Is(err, ErrPipNotFound) {
		t.Errorf("Check(bogus) = %v, want ErrPipNotFound", err)
	}
}
