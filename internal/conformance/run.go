package conformance

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/siftlab/sift/internal/filterdoc"
	"github.com/siftlab/sift/internal/translate"
)

// CaseResult is the outcome of running one case.
type CaseResult struct {
	// Name is the case name.
	Name string `json:"name"`

	// Pass indicates the observed outcome matched the expectation.
	Pass bool `json:"pass"`

	// Document is the rendered filter document, when translation
	// succeeded.
	Document string `json:"document,omitempty"`

	// Error is the observed translation error, when translation failed.
	Error string `json:"error,omitempty"`

	// Failures lists expectation mismatches. Empty if Pass is true.
	Failures []string `json:"failures,omitempty"`
}

// Report is the outcome of a conformance run over a case set.
type Report struct {
	// RunID uniquely identifies this run.
	RunID string `json:"run_id"`

	// Pass indicates every case passed.
	Pass bool `json:"pass"`

	// Cases holds per-case results in execution order.
	Cases []CaseResult `json:"cases"`
}

// Run executes a single case: build the model and expression, translate,
// render, and compare against the expectation. Run never returns an
// error for a translation failure; those are outcomes to compare. An
// error means the case itself is unbuildable.
func Run(c *Case) (CaseResult, error) {
	res := CaseResult{Name: c.Name, Pass: true}

	model, err := BuildModel(c.Model)
	if err != nil {
		return CaseResult{}, fmt.Errorf("case %s: %w", c.Name, err)
	}
	root, err := BuildExpression(&c.Expression)
	if err != nil {
		return CaseResult{}, fmt.Errorf("case %s: %w", c.Name, err)
	}

	f, terr := translate.Translate(model, root)
	if terr == nil {
		rendered, rerr := filterdoc.RenderCanonical(f)
		if rerr != nil {
			return CaseResult{}, fmt.Errorf("case %s: render: %w", c.Name, rerr)
		}
		res.Document = string(rendered)
	} else {
		res.Error = terr.Error()
	}

	checkExpectation(&res, &c.Expect, terr)
	return res, nil
}

// checkExpectation compares the observed outcome against the case's
// expect clause, accumulating mismatches.
func checkExpectation(res *CaseResult, expect *ExpectSpec, terr error) {
	if expect.Document != "" {
		if terr != nil {
			res.fail(fmt.Sprintf("expected document, got error: %s", terr.Error()))
			return
		}
		if res.Document != expect.Document {
			res.fail(fmt.Sprintf("document mismatch:\n  want: %s\n  got:  %s", expect.Document, res.Document))
		}
		return
	}

	if terr == nil {
		res.fail(fmt.Sprintf("expected error %s, got document: %s", expect.Error, res.Document))
		return
	}
	code, ok := translate.CodeOf(terr)
	if !ok {
		res.fail(fmt.Sprintf("expected error code %s, got uncoded error: %s", expect.Error, terr.Error()))
		return
	}
	if string(code) != expect.Error {
		res.fail(fmt.Sprintf("error code mismatch: want %s, got %s", expect.Error, code))
	}
	for _, want := range expect.Contains {
		if !strings.Contains(terr.Error(), want) {
			res.fail(fmt.Sprintf("error message missing %q: %s", want, terr.Error()))
		}
	}
}

func (r *CaseResult) fail(msg string) {
	r.Failures = append(r.Failures, msg)
	r.Pass = false
}

// RunAll executes every case the loader provides and aggregates a
// report with a unique run id.
func RunAll(loader Loader) (*Report, error) {
	names, err := loader.Names()
	if err != nil {
		return nil, err
	}

	report := &Report{RunID: uuid.NewString(), Pass: true}
	for _, name := range names {
		c, err := loader.Load(name)
		if err != nil {
			return nil, err
		}
		res, err := Run(c)
		if err != nil {
			return nil, err
		}
		if !res.Pass {
			report.Pass = false
		}
		report.Cases = append(report.Cases, res)
	}
	return report, nil
}
