// SPDX-License-Identifier: MIT

package harness

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvblock/binop"
)

// Encoding selects how a generated operand is stored before execution.
type Encoding string

const (
	// EncodingAuto lets the engine's sparsity policy pick the kind.
	EncodingAuto Encoding = "auto"
	// EncodingDense forces a dense operand.
	EncodingDense Encoding = "dense"
	// EncodingSparse forces a sparse operand.
	EncodingSparse Encoding = "sparse"
)

// Expectation is the outcome a scenario asserts.
type Expectation string

const (
	// ExpectOK requires a result matching the reference within tolerance.
	ExpectOK Expectation = "ok"
	// ExpectDimensionMismatch requires a *binop.DimensionMismatchError and no result.
	ExpectDimensionMismatch Expectation = "dimension_mismatch"
)

// MatrixSpec describes one generated operand.
type MatrixSpec struct {
	Rows     int      `yaml:"rows"`
	Cols     int      `yaml:"cols"`
	Min      float64  `yaml:"min"`
	Max      float64  `yaml:"max"`
	Sparsity float64  `yaml:"sparsity"` // non-zero probability per cell
	Seed     int64    `yaml:"seed"`     // < 0: time-based
	Encoding Encoding `yaml:"encoding,omitempty"`
}

// Scenario is one named test configuration.
// An empty Expect means ExpectOK.
type Scenario struct {
	Name   string      `yaml:"name"`
	Op     string      `yaml:"op"`
	Left   MatrixSpec  `yaml:"left"`
	Right  MatrixSpec  `yaml:"right"`
	Expect Expectation `yaml:"expect,omitempty"`
}

// Suite is a named, ordered list of scenarios sharing one tolerance.
// A nil Tolerance means DefaultTolerance; a pointer to 0 asks for exact equality.
type Suite struct {
	Name      string     `yaml:"name"`
	Tolerance *float64   `yaml:"tolerance,omitempty"`
	Scenarios []Scenario `yaml:"scenarios"`
}

// EffectiveTolerance returns the tolerance RunAll compares with.
func (s Suite) EffectiveTolerance() float64 {
	if s.Tolerance == nil {
		return DefaultTolerance
	}

	return *s.Tolerance
}

// LoadSuite decodes one YAML suite document from r, fills defaults and validates it.
// Implementation:
//   - Stage 1: strict decode (unknown keys are errors).
//   - Stage 2: defaults: tolerance DefaultTolerance, encoding auto, expect ok.
//   - Stage 3: validate names, operators, encodings, expectations, tolerance.
//
// Errors: ErrInvalidSuite (wrapping the decoder error when there is one).
func LoadSuite(r io.Reader) (Suite, error) {
	var s Suite
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Suite{}, harnessErrorf(opLoadSuite, fmt.Errorf("%w: %w", ErrInvalidSuite, err))
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return Suite{}, harnessErrorf(opLoadSuite, err)
	}

	return s, nil
}

// LoadSuiteFile reads and decodes the suite stored at path.
func LoadSuiteFile(path string) (Suite, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Suite{}, harnessErrorf(opLoadSuite, err)
	}

	return LoadSuite(bytes.NewReader(raw))
}

func (s *Suite) applyDefaults() {
	if s.Tolerance == nil {
		s.Tolerance = lo.ToPtr(DefaultTolerance)
	}
	for k := range s.Scenarios {
		sc := &s.Scenarios[k]
		if sc.Expect == "" {
			sc.Expect = ExpectOK
		}
		if sc.Left.Encoding == "" {
			sc.Left.Encoding = EncodingAuto
		}
		if sc.Right.Encoding == "" {
			sc.Right.Encoding = EncodingAuto
		}
	}
}

// Validate checks a suite without running it. Operand parameters
// (sizes, ranges, densities) are checked when the operands are generated.
// Empty expectations and encodings are accepted as their defaults.
func (s Suite) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("missing suite name: %w", ErrInvalidSuite)
	}
	if tol := s.EffectiveTolerance(); math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return fmt.Errorf("tolerance %g: %w", tol, ErrInvalidSuite)
	}
	if len(s.Scenarios) == 0 {
		return fmt.Errorf("suite %q has no scenarios: %w", s.Name, ErrInvalidSuite)
	}
	if dups := lo.FindDuplicatesBy(s.Scenarios, func(sc Scenario) string { return sc.Name }); len(dups) > 0 {
		return fmt.Errorf("duplicate scenario %q: %w", dups[0].Name, ErrInvalidSuite)
	}
	for _, sc := range s.Scenarios {
		if err := sc.validate(); err != nil {
			return err
		}
	}

	return nil
}

func (sc Scenario) validate() error {
	if sc.Name == "" {
		return fmt.Errorf("scenario without name: %w", ErrInvalidSuite)
	}
	if _, err := binop.ParseOp(sc.Op); err != nil {
		return fmt.Errorf("scenario %q: %w: %w", sc.Name, ErrInvalidSuite, err)
	}
	if !lo.Contains([]Expectation{"", ExpectOK, ExpectDimensionMismatch}, sc.Expect) {
		return fmt.Errorf("scenario %q: expect %q: %w", sc.Name, sc.Expect, ErrInvalidSuite)
	}
	for _, enc := range []Encoding{sc.Left.Encoding, sc.Right.Encoding} {
		if !lo.Contains([]Encoding{"", EncodingAuto, EncodingDense, EncodingSparse}, enc) {
			return fmt.Errorf("scenario %q: encoding %q: %w", sc.Name, enc, ErrInvalidSuite)
		}
	}

	return nil
}
