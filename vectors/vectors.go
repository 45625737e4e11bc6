package vectors

import (
	"errors"
	"fmt"

	"github.com/s-nomp/equihashverify/batch"
	"github.com/s-nomp/equihashverify/equihash"
)

// FileVersion is the only vector file layout this package reads or writes.
const FileVersion = 1

var (
	ErrUnsupportedVersion = errors.New("unsupported vector file version")
	ErrNoVectors          = errors.New("the vector file holds no vectors")
	ErrResultCount        = errors.New("the number of results does not match the number of vectors")
)

// Vector is a single recorded verification case.
type Vector struct {
	Name            string `cbor:"1,keyasint"`
	N               uint32 `cbor:"2,keyasint"`
	K               uint32 `cbor:"3,keyasint"`
	Personalization string `cbor:"4,keyasint"`
	Header          []byte `cbor:"5,keyasint"`
	Solution        []byte `cbor:"6,keyasint"`
	Valid           bool   `cbor:"7,keyasint"`
}

func (v Vector) Params() equihash.Params {
	return equihash.Params{N: v.N, K: v.K}
}

// File is the top level of a vector file.
type File struct {
	Version uint32   `cbor:"1,keyasint"`
	Vectors []Vector `cbor:"2,keyasint"`
}

// Known returns the built in reference solutions as a vector file.
func Known() File {
	known := equihash.KnownSolutions()
	f := File{Version: FileVersion, Vectors: make([]Vector, 0, len(known))}
	for _, k := range known {
		f.Vectors = append(f.Vectors, Vector{
			Name:            k.Name,
			N:               k.Params.N,
			K:               k.Params.K,
			Personalization: k.Personalization,
			Header:          k.Header,
			Solution:        k.Solution,
			Valid:           k.Valid,
		})
	}
	return f
}

// Jobs converts each vector to a batch job identified by the vector name.
func (f File) Jobs() []batch.Job {
	jobs := make([]batch.Job, 0, len(f.Vectors))
	for _, v := range f.Vectors {
		jobs = append(jobs, batch.Job{
			ID:              v.Name,
			Params:          v.Params(),
			Personalization: v.Personalization,
			Header:          v.Header,
			Solution:        v.Solution,
		})
	}
	return jobs
}

// Mismatch is a vector whose verification outcome differs from the recorded
// expectation.
type Mismatch struct {
	Vector Vector
	Result batch.Result
}

func (m Mismatch) String() string {
	if m.Result.Err != nil {
		return fmt.Sprintf("%s: expected valid=%t, got %v", m.Vector.Name, m.Vector.Valid, m.Result.Err)
	}
	return fmt.Sprintf("%s: expected valid=%t, got valid=%t", m.Vector.Name, m.Vector.Valid, m.Result.Valid)
}

// Check compares results, in vector order, against the recorded
// expectations. A faulted result always counts as a mismatch.
func (f File) Check(results []batch.Result) ([]Mismatch, error) {
	if len(results) != len(f.Vectors) {
		return nil, fmt.Errorf("%w: %d results, %d vectors", ErrResultCount, len(results), len(f.Vectors))
	}
	var mismatches []Mismatch
	for i, v := range f.Vectors {
		r := results[i]
		if r.Faulted() || r.Valid != v.Valid {
			mismatches = append(mismatches, Mismatch{Vector: v, Result: r})
		}
	}
	return mismatches, nil
}
