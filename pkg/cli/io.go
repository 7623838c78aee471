package cli

import (
	"context"
	"io"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskview/pkg/utils/safe"
)

const stdioPath = "-"

// readInput reads path, or stdin when path is "-"
func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == stdioPath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read stdin")
		}
		return data, nil
	}

	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read input file", goerr.V("path", path))
	}
	return data, nil
}

func readInputs(stdin io.Reader, paths []string) ([][]byte, error) {
	inputs := make([][]byte, len(paths))
	for i, path := range paths {
		data, err := readInput(stdin, path)
		if err != nil {
			return nil, err
		}
		inputs[i] = data
	}
	return inputs, nil
}

// openOutput returns stdout for an empty path or "-", otherwise a created
// file. The returned function closes the file.
func openOutput(ctx context.Context, stdout io.Writer, path string) (io.Writer, func(), error) {
	if path == "" || path == stdioPath {
		return stdout, func() {}, nil
	}

	// #nosec G304 - path is expected to be provided by CLI argument
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to create output file", goerr.V("path", path))
	}
	return f, func() { safe.Close(ctx, f, path) }, nil
}

func writeOutput(ctx context.Context, stdout io.Writer, path string, data []byte) error {
	w, closer, err := openOutput(ctx, stdout, path)
	if err != nil {
		return err
	}
	defer closer()

	if _, err := w.Write(data); err != nil {
		return goerr.Wrap(err, "failed to write output", goerr.V("path", path))
	}
	return nil
}
