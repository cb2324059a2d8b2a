package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Beastly713/polysecret/pkg/format"
	"github.com/Beastly713/polysecret/pkg/shamir"
	"github.com/spf13/cobra"
)

const defaultCoefficientLimit = 1000

func (a *app) splitCmd() *cobra.Command {
	var (
		totalParts int
		coeffs     []int64
		secret     int64
		threshold  int
		limit      int64
		bases      []int
		outPath    string
		asYAML     bool
	)

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Write a share document for a polynomial",
		Long: `Split evaluates a polynomial at x = 1..N and writes a share document whose
values are encoded in the given bases (used in turn). Any K shares recover
the polynomial, where K is the number of coefficients.

Give the coefficients explicitly, highest power first, or give a secret and a
threshold to draw the other coefficients at random.

Example:
  polysecret split --coeffs 3,2,5 -n 5 --bases 10,16,2 -o testcase1.json

  This writes 5 shares of 3x^2 + 2x + 5. Any 3 recover the secret 5.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// 1. Validation
			if totalParts < 1 {
				return fmt.Errorf("number of shares (-n) must be at least 1")
			}
			explicit := cmd.Flags().Changed("coeffs")
			if explicit == cmd.Flags().Changed("threshold") {
				return fmt.Errorf("give exactly one of --coeffs or --threshold")
			}

			// 2. Build the polynomial
			var (
				p   shamir.Polynomial
				err error
			)
			if explicit {
				p, err = shamir.NewPolynomial(coeffs)
			} else {
				if threshold < 1 {
					return fmt.Errorf("threshold (-t) must be at least 1")
				}
				p, err = shamir.RandomPolynomial(secret, threshold-1, limit)
			}
			if err != nil {
				return fmt.Errorf("failed to build polynomial: %w", err)
			}

			// 3. Evaluate and encode the shares
			doc, err := shamir.Split(p, totalParts, bases)
			if err != nil {
				return fmt.Errorf("failed to split: %w", err)
			}
			a.logger.Info("Split polynomial", "n", doc.Keys.N, "k", doc.Keys.K, "bases", fmt.Sprint(bases))

			// 4. Write the document
			syntax := format.SyntaxJSON
			if asYAML {
				syntax = format.SyntaxYAML
			}

			var out io.Writer = cmd.OutOrStdout()
			if outPath != "" {
				if !cmd.Flags().Changed("yaml") {
					syntax = format.SyntaxFor(outPath)
				}
				if dir := filepath.Dir(outPath); dir != "." {
					if err := os.MkdirAll(dir, 0755); err != nil {
						return fmt.Errorf("failed to create destination directory: %w", err)
					}
				}
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("failed to create output file %s: %w", outPath, err)
				}
				defer f.Close()
				out = f
			}

			if err := format.NewWriter(out).Write(doc, syntax); err != nil {
				return fmt.Errorf("failed to write share document: %w", err)
			}
			if outPath != "" {
				a.logger.Info("Wrote share document", "file", outPath)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&totalParts, "shares", "n", 0, "Total number of shares to make")
	cmd.Flags().Int64SliceVar(&coeffs, "coeffs", nil, "Polynomial coefficients, highest power first")
	cmd.Flags().Int64Var(&secret, "secret", 0, "Secret (constant term) for a random polynomial")
	cmd.Flags().IntVarP(&threshold, "threshold", "t", 0, "Number of shares required to recover a random polynomial")
	cmd.Flags().Int64Var(&limit, "limit", defaultCoefficientLimit, "Random coefficients are drawn from [0, limit)")
	cmd.Flags().IntSliceVar(&bases, "bases", []int{10}, "Bases to encode share values in, used in turn")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "File to write (default: stdout)")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Write YAML instead of JSON")

	_ = cmd.MarkFlagRequired("shares")

	return cmd
}
