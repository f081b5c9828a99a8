package cli

import (
	"io"
	"os"

	"github.com/matzehuels/boxgrid/pkg/errors"
)

// readInput returns the text to lay out. With no argument (or "-") it
// reads standard input; otherwise it reads the named file.
func readInput(args []string) (text, name string, err error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read stdin")
		}
		return string(data), "stdin", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		if os.IsNotExist(err) {
			return "", "", errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", args[0])
		}
		return "", "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", args[0])
	}
	return string(data), args[0], nil
}

// writeOutput writes rendered text to path, or to standard output when path
// is empty. File writes get a confirmation line; stdout stays clean so the
// rendered grid can be piped.
func writeOutput(path, rendered string) error {
	if path == "" {
		_, err := io.WriteString(os.Stdout, rendered)
		return err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "write %s", path)
	}
	printFile(path)
	return nil
}
