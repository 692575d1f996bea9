package ml

import (
	"encoding/json"
	"fmt"
	"os"
)

// Artifact is the serialized form of the trained regression pipeline:
// the encoded input layout, the linear weights and the paired output
// scaler. It is produced by the offline training job and treated as
// opaque, versioned data here.
type Artifact struct {
	ModelVersion string      `json:"model_version"`
	Features     []Feature   `json:"features"`
	Weights      [][]float64 `json:"weights"`
	Intercepts   []float64   `json:"intercepts"`
	ScalerMean   []float64   `json:"scaler_mean"`
	ScalerScale  []float64   `json:"scaler_scale"`
}

// Feature describes one input column as the pipeline was fit on it.
// Categorical features carry their one-hot vocabulary in training order.
type Feature struct {
	Name       string   `json:"name"`
	Kind       string   `json:"kind"` // "numeric" or "categorical"
	Categories []string `json:"categories,omitempty"`
}

// EncodedWidth is the number of columns after one-hot expansion.
func (a *Artifact) EncodedWidth() int {
	width := 0
	for _, f := range a.Features {
		if f.Kind == FeatureCategorical {
			width += len(f.Categories)
		} else {
			width++
		}
	}
	return width
}

// Outputs is the length of the prediction vector.
func (a *Artifact) Outputs() int { return len(a.Weights) }

func (a *Artifact) validate() error {
	if len(a.Features) == 0 {
		return fmt.Errorf("artifact has no input features")
	}
	if len(a.Weights) == 0 {
		return fmt.Errorf("artifact has no output weights")
	}
	width := a.EncodedWidth()
	for i, row := range a.Weights {
		if len(row) != width {
			return fmt.Errorf("weight row %d has %d columns, want %d", i, len(row), width)
		}
	}
	outputs := len(a.Weights)
	if len(a.Intercepts) != outputs {
		return fmt.Errorf("intercepts length %d, want %d", len(a.Intercepts), outputs)
	}
	if len(a.ScalerMean) != outputs || len(a.ScalerScale) != outputs {
		return fmt.Errorf("scaler arrays length %d/%d, want %d",
			len(a.ScalerMean), len(a.ScalerScale), outputs)
	}
	for _, f := range a.Features {
		switch f.Kind {
		case FeatureNumeric:
		case FeatureCategorical:
			if len(f.Categories) == 0 {
				return fmt.Errorf("categorical feature %q has empty vocabulary", f.Name)
			}
		default:
			return fmt.Errorf("feature %q has unknown kind %q", f.Name, f.Kind)
		}
	}
	return nil
}

// LoadArtifact reads and validates a model artifact from disk.
func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	var art Artifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("parse model artifact: %w", err)
	}
	if err := art.validate(); err != nil {
		return nil, fmt.Errorf("invalid model artifact %s: %w", path, err)
	}
	return &art, nil
}
