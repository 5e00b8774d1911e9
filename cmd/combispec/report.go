package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/combispec/assignment"
	"github.com/katalvlaran/combispec/combination"
	"github.com/katalvlaran/combispec/sampling"
)

// report is the document handed to the sampler wrapper.
type report struct {
	Mode          string                  `yaml:"mode"`
	Iterations    int                     `yaml:"iterations"`
	Variables     []string                `yaml:"variables,flow"`
	Artificial    []string                `yaml:"artificial,flow,omitempty"`
	Ranks         []rank                  `yaml:"ranks,omitempty"`
	Specification combination.Description `yaml:"specification"`
}

type rank struct {
	Literals []string `yaml:"literals,flow"`
	Value    int      `yaml:"value"`
}

func newReport(mode string, res *sampling.Result) report {
	r := report{
		Mode:          mode,
		Iterations:    res.Iterations,
		Variables:     res.Space.Names(),
		Artificial:    res.ArtificialNames(),
		Specification: combination.Describe(res.Spec),
	}
	for _, e := range res.Ranks {
		r.Ranks = append(r.Ranks, rank{Literals: assignment.Names(res.Space, e.Key), Value: e.Value})
	}

	return r
}

func writeReport(w io.Writer, format string, r report) error {
	switch format {
	case "text":
		return writeText(w, r)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return enc.Close()
	}
}

func writeText(w io.Writer, r report) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "mode: %s\n", r.Mode)
	fmt.Fprintf(bw, "iterations: %d\n", r.Iterations)
	fmt.Fprintf(bw, "variables: %d\n", len(r.Variables))
	if len(r.Artificial) > 0 {
		fmt.Fprintf(bw, "artificial: %s\n", strings.Join(r.Artificial, ","))
	}
	for _, rk := range r.Ranks {
		fmt.Fprintf(bw, "rank: %s=%d\n", strings.Join(rk.Literals, ","), rk.Value)
	}
	writeDescription(bw, r.Specification, 0)

	return bw.Flush()
}

func writeDescription(w io.Writer, d combination.Description, depth int) {
	fmt.Fprintf(w, "%s%s", strings.Repeat("  ", depth), d.Kind)
	if len(d.T) > 0 {
		fmt.Fprintf(w, " t=%v", d.T)
	}
	fmt.Fprintf(w, " interactions=%d", d.Interactions)
	if d.Vacuous {
		fmt.Fprint(w, " vacuous")
	}
	fmt.Fprintln(w)
	for _, c := range d.Children {
		writeDescription(w, c, depth+1)
	}
}
