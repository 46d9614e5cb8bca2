package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/sparsemat/internal/resultfile"
	"github.com/katalvlaran/sparsemat/sparse"
	"golang.org/x/sync/errgroup"
)

const emptyResultMsg = "Can't create a file for empty results!"

// loadMatrix decodes the matrix file at path.
func loadMatrix(cfg *MainConfig, path string) (*sparse.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := sparse.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.logger().Debug("matrix loaded", "file", path, "rows", m.Rows(), "cols", m.Cols(), "nnz", m.NNZ())

	return m, nil
}

// loadOperands decodes both operand files concurrently.
func loadOperands(cfg *MainConfig, pathA, pathB string) (*sparse.Matrix, *sparse.Matrix, error) {
	var (
		g    errgroup.Group
		a, b *sparse.Matrix
	)
	g.Go(func() (err error) {
		a, err = loadMatrix(cfg, pathA)
		return err
	})
	g.Go(func() (err error) {
		b, err = loadMatrix(cfg, pathB)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

// compute applies the named binary operation.
func compute(op string, a, b *sparse.Matrix, opts ...sparse.Option) (*sparse.Matrix, error) {
	switch op {
	case "add", "+":
		return sparse.Add(a, b, opts...)
	case "sub", "-":
		return sparse.Sub(a, b, opts...)
	case "mul", "*":
		return sparse.Mul(a, b, opts...)
	}

	return nil, fmt.Errorf("unknown operation %q", op)
}

// saveResult writes m to out, to stdout when out is "-", or to the next
// free result file from settings when out is empty. It returns the name
// written to.
func saveResult(cfg *MainConfig, stdout io.Writer, out string, m *sparse.Matrix) (string, error) {
	switch out {
	case "-":
		return "-", sparse.Encode(stdout, m)
	case "":
		s := cfg.Settings
		f, err := resultfile.Create(s.OutputDir, s.ResultPrefix, s.ResultSuffix)
		if err != nil {
			return "", err
		}
		return f.Name(), writeAndClose(f, m)
	default:
		f, err := os.OpenFile(out, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return "", err
		}
		return out, writeAndClose(f, m)
	}
}

// writeMatrix writes m to path, or to stdout when path is empty or "-".
func writeMatrix(stdout io.Writer, path string, m *sparse.Matrix) error {
	if path == "" {
		path = "-"
	}
	_, err := saveResult(nil, stdout, path, m)
	return err
}

func writeAndClose(f *os.File, m *sparse.Matrix) error {
	err := sparse.Encode(f, m)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(f.Name())
	}

	return err
}

// report finishes a binary operation: a cancelled result prints the
// empty-result notice, anything else is saved.
func report(cfg *MainConfig, stdout io.Writer, out string, res *sparse.Matrix, err error) error {
	if errors.Is(err, sparse.ErrCancelled) {
		cfg.logger().Info("operation cancelled", "err", err)
		_, werr := fmt.Fprintln(stdout, emptyResultMsg)
		return werr
	}
	if err != nil {
		return err
	}
	name, err := saveResult(cfg, stdout, out, res)
	if err != nil {
		return err
	}
	cfg.logger().Info("result saved", "file", name, "rows", res.Rows(), "cols", res.Cols(), "nnz", res.NNZ())
	if name != "-" {
		_, err = fmt.Fprintf(stdout, "Results saved to %s\n", name)
	}

	return err
}
