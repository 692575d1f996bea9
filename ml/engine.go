// Package ml wraps the pre-trained material regression model and its
// inverse output scaler behind a narrow predict interface. The artifact
// is loaded once at process start and is immutable afterwards, so a
// single Engine is safe for unlimited concurrent callers.
package ml

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrModelUnavailable is returned by every Predict call when the model
// artifact failed to load at startup. Inference never degrades to a
// default prediction.
var ErrModelUnavailable = errors.New("ml model not loaded")

type Engine struct {
	version    string
	features   []Feature
	weights    *mat.Dense
	intercepts *mat.VecDense
	mean       []float64
	scale      []float64
}

// NewEngine builds an inference engine from a validated artifact.
func NewEngine(art *Artifact) (*Engine, error) {
	if err := art.validate(); err != nil {
		return nil, err
	}

	rows := art.Outputs()
	cols := art.EncodedWidth()
	flat := make([]float64, 0, rows*cols)
	for _, row := range art.Weights {
		flat = append(flat, row...)
	}

	return &Engine{
		version:    art.ModelVersion,
		features:   art.Features,
		weights:    mat.NewDense(rows, cols, flat),
		intercepts: mat.NewVecDense(rows, append([]float64(nil), art.Intercepts...)),
		mean:       append([]float64(nil), art.ScalerMean...),
		scale:      append([]float64(nil), art.ScalerScale...),
	}, nil
}

// Load reads the artifact at path and builds the engine.
func Load(path string) (*Engine, error) {
	art, err := LoadArtifact(path)
	if err != nil {
		return nil, err
	}
	return NewEngine(art)
}

// Ready reports whether the engine can serve predictions. A nil Engine
// (artifact missing at startup) is not ready.
func (e *Engine) Ready() bool {
	return e != nil && e.weights != nil
}

// OutputSize is the length of the prediction vector.
func (e *Engine) OutputSize() int {
	if !e.Ready() {
		return 0
	}
	r, _ := e.weights.Dims()
	return r
}

// Version is the artifact's model version string.
func (e *Engine) Version() string {
	if e == nil {
		return ""
	}
	return e.version
}

// Predict encodes the feature record, applies the linear map and
// inverse-scales the result back into real-world quantity units.
// Skipping the inverse transform would silently return values in scaled
// units, so it is part of the same call.
func (e *Engine) Predict(f ProjectFeatures) ([]float64, error) {
	if !e.Ready() {
		return nil, ErrModelUnavailable
	}

	x, err := e.encode(f.Record())
	if err != nil {
		return nil, err
	}

	rows, _ := e.weights.Dims()
	var scaled mat.VecDense
	scaled.MulVec(e.weights, x)
	scaled.AddVec(&scaled, e.intercepts)

	out := make([]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = scaled.AtVec(i)*e.scale[i] + e.mean[i]
	}
	return out, nil
}

// encode expands the named record into the trained column order:
// numeric features pass through, categorical features one-hot against
// the training vocabulary. An unseen category encodes to all zeros, the
// same way the fitted encoder ignored unknown levels.
func (e *Engine) encode(record map[string]interface{}) (*mat.VecDense, error) {
	_, width := e.weights.Dims()
	cols := make([]float64, 0, width)

	for _, feat := range e.features {
		raw, ok := record[feat.Name]
		if !ok {
			return nil, fmt.Errorf("feature record missing column %q", feat.Name)
		}
		switch feat.Kind {
		case FeatureNumeric:
			v, ok := raw.(float64)
			if !ok {
				return nil, fmt.Errorf("column %q: expected numeric value, got %T", feat.Name, raw)
			}
			cols = append(cols, v)
		case FeatureCategorical:
			s, ok := raw.(string)
			if !ok {
				return nil, fmt.Errorf("column %q: expected categorical value, got %T", feat.Name, raw)
			}
			for _, cat := range feat.Categories {
				if cat == s {
					cols = append(cols, 1)
				} else {
					cols = append(cols, 0)
				}
			}
		}
	}

	if len(cols) != width {
		return nil, fmt.Errorf("encoded %d columns, model expects %d", len(cols), width)
	}
	return mat.NewVecDense(width, cols), nil
}
