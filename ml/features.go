package ml

const (
	FeatureNumeric     = "numeric"
	FeatureCategorical = "categorical"
)

// legacyDistanceColumn is the column name the pipeline was trained on
// before the field was renamed. The saved pipeline still selects it by
// exact string, so the feature record carries the distance value under
// both names.
const legacyDistanceColumn = "Distance_from_Storage_unit"

// ProjectFeatures are the seven modeling inputs for one forecast.
// Display-only fields (project name, location) never appear here.
type ProjectFeatures struct {
	Category            string
	ProjectType         string
	BudgetLakh          float64
	State               string
	Terrain             string
	DistanceFromStorage float64
	LineLengthKM        float64
}

// Record assembles the single-row feature record keyed by the column
// names the pipeline was fit on.
func (f ProjectFeatures) Record() map[string]interface{} {
	return map[string]interface{}{
		"project_category_main":        f.Category,
		"project_type":                 f.ProjectType,
		"project_budget_price_in_lake": f.BudgetLakh,
		"state":                        f.State,
		"terrain":                      f.Terrain,
		"distance_from_storage_unit":   f.DistanceFromStorage,
		legacyDistanceColumn:           f.DistanceFromStorage,
		"transmission_line_length_km":  f.LineLengthKM,
	}
}
