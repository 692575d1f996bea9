package ml

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func testArtifact() *Artifact {
	return &Artifact{
		ModelVersion: "test-v1",
		Features: []Feature{
			{Name: "project_budget_price_in_lake", Kind: FeatureNumeric},
			{Name: "terrain", Kind: FeatureCategorical, Categories: []string{"Plain", "Hilly"}},
			{Name: "Distance_from_Storage_unit", Kind: FeatureNumeric},
		},
		// encoded columns: [budget, terrain=Plain, terrain=Hilly, legacy distance]
		Weights: [][]float64{
			{1.0, 10.0, 20.0, 0.5},
			{0.0, 1.0, 2.0, 1.0},
		},
		Intercepts:  []float64{1.0, 0.0},
		ScalerMean:  []float64{0.0, 100.0},
		ScalerScale: []float64{1.0, 2.0},
	}
}

func TestFeatureRecordDualDistanceColumns(t *testing.T) {
	f := ProjectFeatures{
		Category:            "Transmission",
		ProjectType:         "400kV",
		BudgetLakh:          500.0,
		State:               "Maharashtra",
		Terrain:             "Plain",
		DistanceFromStorage: 50.0,
		LineLengthKM:        100.0,
	}
	rec := f.Record()

	canonical, ok := rec["distance_from_storage_unit"].(float64)
	if !ok {
		t.Fatal("record missing canonical distance column")
	}
	legacy, ok := rec["Distance_from_Storage_unit"].(float64)
	if !ok {
		t.Fatal("record missing legacy distance column")
	}
	if canonical != 50.0 || legacy != 50.0 {
		t.Errorf("distance columns = %v / %v, both must carry 50.0", canonical, legacy)
	}
	if len(rec) != 8 {
		t.Errorf("record has %d columns, want 8 (seven fields + legacy duplicate)", len(rec))
	}
}

func TestPredictAppliesWeightsAndInverseScale(t *testing.T) {
	eng, err := NewEngine(testArtifact())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	got, err := eng.Predict(ProjectFeatures{
		BudgetLakh:          2.0,
		Terrain:             "Plain",
		DistanceFromStorage: 4.0,
	})
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("output length = %d, want 2", len(got))
	}

	// x = [2, 1, 0, 4]
	// scaled[0] = 2 + 10 + 2 + 1 = 15; inverse: 15*1 + 0 = 15
	// scaled[1] = 0 + 1 + 0 + 4 = 5;  inverse: 5*2 + 100 = 110
	if got[0] != 15.0 {
		t.Errorf("output[0] = %v, want 15.0", got[0])
	}
	if got[1] != 110.0 {
		t.Errorf("output[1] = %v, want 110.0 (inverse scaling must be applied)", got[1])
	}
}

func TestPredictUnseenCategoryEncodesToZeros(t *testing.T) {
	eng, err := NewEngine(testArtifact())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	got, err := eng.Predict(ProjectFeatures{
		BudgetLakh:          1.0,
		Terrain:             "Desert", // not in training vocabulary
		DistanceFromStorage: 0.0,
	})
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	// x = [1, 0, 0, 0]; scaled[0] = 1 + 1 = 2
	if got[0] != 2.0 {
		t.Errorf("output[0] = %v, want 2.0", got[0])
	}
}

func TestPredictNilEngine(t *testing.T) {
	var eng *Engine
	if eng.Ready() {
		t.Error("nil engine must not report ready")
	}
	_, err := eng.Predict(ProjectFeatures{})
	if err != ErrModelUnavailable {
		t.Errorf("Predict on nil engine = %v, want ErrModelUnavailable", err)
	}
}

func TestLoadArtifactRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	data, err := json.Marshal(testArtifact())
	if err != nil {
		t.Fatalf("marshal artifact: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}

	eng, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !eng.Ready() {
		t.Error("loaded engine should be ready")
	}
	if eng.Version() != "test-v1" {
		t.Errorf("Version() = %q, want %q", eng.Version(), "test-v1")
	}
	if eng.OutputSize() != 2 {
		t.Errorf("OutputSize() = %d, want 2", eng.OutputSize())
	}
}

func TestLoadArtifactMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing artifact file")
	}
}

func TestLoadArtifactInvalidShapes(t *testing.T) {
	art := testArtifact()
	art.ScalerMean = []float64{0.0} // wrong length
	if _, err := NewEngine(art); err == nil {
		t.Error("expected error for scaler/output length mismatch")
	}

	art = testArtifact()
	art.Weights[0] = art.Weights[0][:2] // wrong width
	if _, err := NewEngine(art); err == nil {
		t.Error("expected error for weight row width mismatch")
	}

	art = testArtifact()
	art.Features[1].Categories = nil
	if _, err := NewEngine(art); err == nil {
		t.Error("expected error for empty categorical vocabulary")
	}
}
