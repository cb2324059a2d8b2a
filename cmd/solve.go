package cmd

import (
	"fmt"

	"github.com/Beastly713/polysecret/pkg/basecodec"
	"github.com/Beastly713/polysecret/pkg/format"
	"github.com/Beastly713/polysecret/pkg/interp"
	"github.com/Beastly713/polysecret/pkg/pipeline"
	"github.com/Beastly713/polysecret/pkg/points"
	"github.com/spf13/cobra"
)

// OutputPrefix starts the single line printed on success.
const OutputPrefix = "The polynomial is: "

var categories = []struct {
	target error
	name   string
}{
	{pipeline.ErrIO, "io error"},
	{format.ErrFormat, "format error"},
	{basecodec.ErrDecode, "decode error"},
	{points.ErrInsufficientPoints, "insufficient data"},
	{interp.ErrSingularSystem, "singular system"},
}

func (a *app) solveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve [file]",
		Short: "Reconstruct the polynomial and secret from a share document",
		Long: `Solve reads a share document (JSON, or YAML for .yaml/.yml files),
decodes every share, picks the k shares with the smallest x and prints the
interpolating polynomial. The value after "=" is the secret.

Example:
  polysecret solve testcase2.json
  polysecret solve --standard shares.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runSolve,
	}
}

func (a *app) runSolve(cmd *cobra.Command, args []string) error {
	path, err := a.inputPath(args)
	if err != nil {
		return err
	}

	opts := pipeline.Options{Strict: a.v.GetBool(flagStrict)}
	a.logger.Info("Reading share document", "file", path, "strict", opts.Strict)

	res, err := pipeline.ReconstructFile(path, opts)
	if err != nil {
		a.logger.Error("Reconstruction failed", "file", path, "err", err)
		return err
	}

	for _, p := range res.Selected {
		a.logger.Debug("Selected share", "x", p.X, "y", p.Y)
	}
	a.logger.Info("Reconstructed polynomial",
		"n", res.Keys.N,
		"k", res.Keys.K,
		"secret", format.Number(res.Secret()),
		"finite", interp.Finite(res.Coefficients),
	)

	line := format.Render(res.Coefficients)
	if a.v.GetBool(flagStandard) {
		line = format.RenderStandard(res.Coefficients)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), OutputPrefix+line)
	return err
}
