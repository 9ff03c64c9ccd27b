package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tunnels/backyard"
	"github.com/katalvlaran/tunnels/prim_kruskal"
)

// methodEnv overrides the default MST method.
const methodEnv = "BACKYARDDIG_METHOD"

type flags struct {
	method  string
	root    int
	verbose bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	defaultMethod := prim_kruskal.MethodKruskal
	if env := os.Getenv(methodEnv); env != "" {
		defaultMethod = env
	}

	cmd := &cobra.Command{
		Use:           "backyarddig <input> <output>",
		Short:         "Plan the cheapest tunnel network linking all dig sites",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(f, args[0], args[1], cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().StringVar(&f.method, "method", defaultMethod, "MST algorithm: kruskal or prim (env "+methodEnv+")")
	cmd.Flags().IntVar(&f.root, "root", 0, "start vertex id for prim")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "trace accepted and discarded tunnels to stderr")

	return cmd
}

func run(f *flags, inPath, outPath string, stdout, stderr io.Writer) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	dig, err := backyard.Parse(in)
	if err != nil {
		return fmt.Errorf("parse %s: %w", inPath, err)
	}

	opts := []prim_kruskal.Option{
		prim_kruskal.WithMethod(f.method),
		prim_kruskal.WithRoot(f.root),
	}
	if f.verbose {
		logger := log.New(stderr, "backyarddig: ", 0)
		opts = append(opts, prim_kruskal.WithLogf(logger.Printf))
	}
	plan, err := dig.Solve(opts...)
	if err != nil {
		return err
	}

	if outPath == "-" {
		return dig.Write(stdout, plan)
	}
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := dig.Write(out, plan); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
