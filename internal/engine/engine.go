// Package engine dispatches parameter records to the member solvers and
// reads them from JSON job files.
package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alexiusacademia/gorcd/internal/beam"
	"github.com/alexiusacademia/gorcd/internal/column"
	"github.com/alexiusacademia/gorcd/internal/design"
	"github.com/alexiusacademia/gorcd/internal/footing"
	"github.com/alexiusacademia/gorcd/internal/mix"
	"github.com/alexiusacademia/gorcd/internal/slab"
	"github.com/alexiusacademia/gorcd/internal/stair"
	"github.com/alexiusacademia/gorcd/internal/steel"
	"github.com/alexiusacademia/gorcd/internal/tank"
	"github.com/alexiusacademia/gorcd/internal/wall"
)

// Params is a parameter record of any member archetype
type Params interface {
	Archetype() design.Archetype
	Solve() design.Result
}

// New returns an empty parameter record for the archetype, ready to be
// decoded into
func New(a design.Archetype) (Params, error) {
	switch a {
	case design.Beam:
		return &beam.Params{}, nil
	case design.Column:
		return &column.Params{}, nil
	case design.Slab:
		return &slab.Params{}, nil
	case design.Footing:
		return &footing.Params{}, nil
	case design.Staircase:
		return &stair.Params{}, nil
	case design.RetainingWall:
		return &wall.Params{}, nil
	case design.WaterTank:
		return &tank.Params{}, nil
	case design.SteelSection:
		return &steel.Params{}, nil
	case design.MixDesign:
		return &mix.Params{}, nil
	}
	return nil, fmt.Errorf("%w: %s", design.ErrUnknownArchetype, a)
}

// Solve runs the solver of p. Bad member input still produces a result; only
// a missing or unknown archetype is an error.
func Solve(p Params) (design.Result, error) {
	if p == nil {
		return design.Result{}, fmt.Errorf("%w: no parameters", design.ErrUnknownArchetype)
	}
	if !p.Archetype().Valid() {
		return design.Result{}, fmt.Errorf("%w: %s", design.ErrUnknownArchetype, p.Archetype())
	}
	return p.Solve(), nil
}

// SolveAll solves every record in order
func SolveAll(jobs []Params) ([]design.Result, error) {
	results := make([]design.Result, 0, len(jobs))
	for i, p := range jobs {
		res, err := Solve(p)
		if err != nil {
			return nil, fmt.Errorf("job %d: %w", i+1, err)
		}
		results = append(results, res)
	}
	return results, nil
}

// Job is the file form of a parameter record:
//
//	{"archetype": "beam", "params": {"span": 6, ...}}
type Job struct {
	Archetype string          `json:"archetype"`
	Params    json.RawMessage `json:"params"`
}

// Encode wraps a parameter record as a Job
func Encode(p Params) (Job, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return Job{}, err
	}
	return Job{Archetype: p.Archetype().String(), Params: raw}, nil
}

// Decode builds the record held by the job
func (j Job) Decode() (Params, error) {
	a, err := design.ParseArchetype(j.Archetype)
	if err != nil {
		return nil, err
	}
	p, err := New(a)
	if err != nil {
		return nil, err
	}
	if len(j.Params) == 0 {
		return p, nil
	}
	if err := json.Unmarshal(j.Params, p); err != nil {
		return nil, fmt.Errorf("%s params: %w", a, err)
	}
	return p, nil
}

// Decode reads one job object or an array of them
func Decode(r io.Reader) ([]Params, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("empty job file")
	}

	var jobs []Job
	if data[0] == '[' {
		if err := json.Unmarshal(data, &jobs); err != nil {
			return nil, fmt.Errorf("failed to parse jobs: %w", err)
		}
	} else {
		var j Job
		if err := json.Unmarshal(data, &j); err != nil {
			return nil, fmt.Errorf("failed to parse job: %w", err)
		}
		jobs = append(jobs, j)
	}

	out := make([]Params, 0, len(jobs))
	for i, j := range jobs {
		p, err := j.Decode()
		if err != nil {
			return nil, fmt.Errorf("job %d: %w", i+1, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// LoadFile reads jobs from a JSON file
func LoadFile(path string) ([]Params, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
