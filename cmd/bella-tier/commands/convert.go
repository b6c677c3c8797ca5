package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/bella-notify/bella-go/pkg/alert"
)

// RunConvert decodes the alert spec at path (format taken from its
// extension) and writes it to w in the target format.
func RunConvert(path string, to alert.Format, w io.Writer) error {
	from, err := alert.DetectFormat(path)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read spec: %w", err)
	}

	spec, err := alert.Decode(from, data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	out, err := alert.Encode(to, spec)
	if err != nil {
		return err
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
