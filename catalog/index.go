package catalog

import "fmt"

// IndexMap maps a position in the model's output vector to a material
// identifier.
type IndexMap map[int]string

// Name resolves the material identifier for output index i. Indices the
// model emits beyond the known range get a deterministic synthetic name
// instead of failing the whole forecast.
func (m IndexMap) Name(i int) string {
	if name, ok := m[i]; ok {
		return name
	}
	return fmt.Sprintf("material_%d", i)
}

// Size returns the number of known output positions.
func (m IndexMap) Size() int { return len(m) }

// MaterialIndex is the trained model's output layout: one position per
// material line item, in training column order.
var MaterialIndex = IndexMap{
	0:  "washers_qty",
	1:  "CT_units",
	2:  "PT_units",
	3:  "min_diesel_litre",
	4:  "earth_wire_km",
	5:  "converter_transformer_oil_liters",
	6:  "curing_compound_liters",
	7:  "formwork_oil_liters",
	8:  "lubrication_grease_kg",
	9:  "binding_wire_kg",
	10: "arcing_horn_units",
	11: "guy_rope_m",
	12: "tower_steel_kg",
	13: "bolts_nuts_qty",
	14: "gravel_tons",
	15: "circuit_breaker_units",
	16: "control_cable_m",
	17: "paint_liters",
	18: "isolator_units",
	19: "busbar_m",
	20: "harmonic_filter_units",
	21: "vibration_dampers_units",
	22: "backfill_soil_cum",
	23: "switchgear_units",
	24: "cement_bags",
	25: "hardware_fittings_units",
	26: "spacers_units",
	27: "excavated_soil_cum",
	28: "shuttering_steel_sqm",
	29: "clamps_units",
	30: "jumpers_m",
	31: "conductor_km",
	32: "water_liters",
	33: "extra_insulator_units",
	34: "OPGW_km",
	35: "galvanized_coating_kg",
	36: "concrete_mix_cum",
	37: "spare_bolts_kg",
	38: "spare_clamps_units",
	39: "spare_conductor_m",
	40: "reinforcement_steel_kg",
	41: "packing_material_kg",
	42: "ladder_units",
	43: "insulator_discs_units",
	44: "spare_OPGW_m",
	45: "DC_cable_km",
	46: "earthing_rod_units",
	47: "stay_wire_kg",
	48: "cross_arm_units",
	49: "thyristor_valve_units",
	50: "transformer_oil_liters",
	51: "tower_parts_units",
	52: "safety_equipment_units",
	53: "spare_hardware_kg",
	54: "sand_tons",
	55: "smoothing_reactor_units",
	56: "shuttering_wood_sqm",
	57: "aggregate_tons",
	58: "earthing_cable_m",
	59: "voltage_kv",
	60: "duration_months",
	61: "angle_steel_sections_kg",
	62: "tower_legs_kg",
	63: "tower_body_members_kg",
	64: "extension_pieces_kg",
	65: "pack_plates_kg",
	66: "environment_charges_lakhs",
}
