package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"addcheck/internal/diag"
	"addcheck/internal/lexer"
	"addcheck/internal/parser"
	"addcheck/internal/source"
	"addcheck/internal/token"
)

// CheckResult holds the outcome of validating one expression.
type CheckResult struct {
	Set    *source.InputSet
	Input  *source.Input
	Tokens []token.Token
	Bag    *diag.Bag
	OK     bool
}

// Expr names one expression to validate.
type Expr struct {
	Name string
	Text string
}

// Check tokenizes and validates one expression. A rejection becomes a
// diagnostic in the Bag; OK reports acceptance.
func Check(name, text string, maxDiagnostics int) *CheckResult {
	set := source.NewInputSet()
	id := set.AddVirtual(name, text)
	input := set.Get(id)

	bag := diag.NewBag(maxDiagnostics)
	ok := true
	if err := parser.Validate(input); err != nil {
		ok = false
		reporter := diag.BagReporter{Bag: bag}
		d := err.Diagnostic()
		reporter.Report(d.Code, d.Severity, d.Primary, d.Message, d.Notes)
	}

	return &CheckResult{
		Set:    set,
		Input:  input,
		Tokens: lexer.Split(input),
		Bag:    bag,
		OK:     ok,
	}
}

// CheckCached is Check backed by a disk cache keyed by the expression
// hash. A nil cache degrades to a plain Check.
func CheckCached(cache *DiskCache, name, text string, maxDiagnostics int) (*CheckResult, error) {
	if cache == nil {
		return Check(name, text, maxDiagnostics), nil
	}

	set := source.NewInputSet()
	id := set.AddVirtual(name, text)
	input := set.Get(id)
	tokens := lexer.Split(input)

	var payload CachePayload
	hit, err := cache.Get(input.Hash, text, &payload)
	if err != nil {
		return nil, err
	}
	if hit {
		bag := diag.NewBag(maxDiagnostics)
		if !payload.OK {
			span := source.Span{Input: id, Start: input.End(), End: input.End()}
			if int(payload.Index) < len(tokens) {
				span = tokens[payload.Index].Span
			}
			bag.Add(diag.NewError(diag.Code(payload.Code), span, payload.Message))
		}
		return &CheckResult{Set: set, Input: input, Tokens: tokens, Bag: bag, OK: payload.OK}, nil
	}

	bag := diag.NewBag(maxDiagnostics)
	verr := parser.Validate(input)
	payload = CachePayload{Schema: cacheSchemaVersion, Text: text, OK: verr == nil}
	if verr != nil {
		bag.Add(verr.Diagnostic())
		payload.Code = uint16(verr.Code)
		payload.Index = verr.Index
		payload.Token = verr.Token
		payload.InRange = verr.InRange
		payload.Message = verr.Error()
	}
	if err := cache.Put(input.Hash, &payload); err != nil {
		return nil, err
	}
	return &CheckResult{Set: set, Input: input, Tokens: tokens, Bag: bag, OK: payload.OK}, nil
}

// CheckAll validates many expressions in parallel with a bounded worker
// pool. Results come back in input order regardless of completion order.
func CheckAll(ctx context.Context, exprs []Expr, maxDiagnostics, jobs int) ([]*CheckResult, error) {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	results := make([]*CheckResult, len(exprs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, expr := range exprs {
		i, expr := i, expr
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = Check(expr.Name, expr.Text, maxDiagnostics)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
