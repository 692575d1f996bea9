// Package catalog holds the static pricing and naming tables the
// forecast pipeline resolves model outputs against. The tables mirror
// the columns the regression model was trained on: legacy duplicate
// keys (unit in parentheses) and derived "_price" keys are load-bearing
// for exact-string lookups and must not be deduplicated.
package catalog

import "strings"

// PriceBook maps a material identifier to its estimated unit price in INR.
type PriceBook map[string]float64

// UnitCost resolves the unit price for a material name.
// Unknown names ending in "_price" cost 1.0: the predicted value for
// those columns is already a total, the quantity just passes through.
// Any other unknown name costs 0.0 so a stray output never fails a
// forecast, it simply carries no cost.
func (p PriceBook) UnitCost(name string) float64 {
	if cost, ok := p[name]; ok {
		return cost
	}
	if strings.HasSuffix(name, "_price") {
		return 1.0
	}
	return 0.0
}

// UnitPrices is the estimated unit-price table for transmission
// infrastructure materials.
var UnitPrices = PriceBook{
	// Core materials & equipment
	"washers_qty":                      5.00,
	"CT_units":                         35000.00,
	"PT_units":                         30000.00,
	"min_diesel_litre":                 95.00,
	"earth_wire_km":                    100000.00,
	"converter_transformer_oil_liters": 250.00,
	"curing_compound_liters":           150.00,
	"formwork_oil_liters":              100.00,
	"lubrication_grease_kg":            200.00,
	"binding_wire_kg":                  65.00,
	"arcing_horn_units":                700.00,
	"guy_rope_m":                       75.00,
	"tower_steel_kg":                   68.00,
	"bolts_nuts_qty":                   25.00,
	"gravel_tons":                      1500.00,
	"circuit_breaker_units":            50000.00,
	"control_cable_m":                  150.00,
	"paint_liters":                     350.00,
	"isolator_units":                   25000.00,
	"busbar_m":                         800.00,
	"harmonic_filter_units":            45000.00,
	"vibration_dampers_units":          1200.00,
	"backfill_soil_cum":                300.00,
	"switchgear_units":                 40000.00,
	"cement_bags":                      360.00,
	"hardware_fittings_units":          1500.00,
	"spacers_units":                    500.00,
	"excavated_soil_cum":               50.00,
	"shuttering_steel_sqm":             500.00,
	"clamps_units":                     800.00,
	"jumpers_m":                        1000.00,
	"conductor_km":                     500000.00,
	"water_liters":                     5.00,
	"extra_insulator_units":            2500.00,
	"OPGW_km":                          200000.00,
	"galvanized_coating_kg":            30.00,
	"concrete_mix_cum":                 5000.00,
	"spare_bolts_kg":                   80.00,
	"spare_clamps_units":               700.00,
	"spare_conductor_m":                500.00,
	"reinforcement_steel_kg":           60.00,
	"packing_material_kg":              100.00,
	"ladder_units":                     4000.00,
	"insulator_discs_units":            800.00,
	"spare_OPGW_m":                     300.00,
	"DC_cable_km":                      80000.00,
	"earthing_rod_units":               1500.00,
	"stay_wire_kg":                     70.00,
	"cross_arm_units":                  15000.00,
	"thyristor_valve_units":            50000000.00, // HVDC component
	"transformer_oil_liters":           250.00,
	"tower_parts_units":                1000.00,
	"safety_equipment_units":           500.00,
	"spare_hardware_kg":                80.00,
	"sand_tons":                        1000.00,
	"smoothing_reactor_units":          100000.00,
	"shuttering_wood_sqm":              400.00,
	"aggregate_tons":                   1800.00,
	"earthing_cable_m":                 120.00,
	"voltage_kv":                       10000.00, // non-material parameter
	"duration_months":                  10000.00, // non-material parameter
	"angle_steel_sections_kg":          65.00,
	"tower_legs_kg":                    65.00,
	"tower_body_members_kg":            65.00,
	"extension_pieces_kg":              65.00,
	"pack_plates_kg":                   65.00,
	"environment_charges_lakhs":        100000.00, // charge unit

	// Legacy duplicate keys (unit in parentheses), priced as the core material
	"washers_qty (qty)":                         5.00,
	"earth_wire_km (km)":                        100000.00,
	"converter_transformer_oil_liters (liters)": 250.00,
	"curing_compound_liters (liters)":           150.00,
	"formwork_oil_liters (liters)":              100.00,
	"lubrication_grease_kg (kg)":                200.00,
	"binding_wire_kg (kg)":                      65.00,
	"guy_rope_m (m)":                            75.00,
	"tower_steel_kg (kg)":                       68.00,
	"bolts_nuts_qty (qty)":                      25.00,
	"gravel_tons (tons)":                        1500.00,
	"control_cable_m (m)":                       150.00,
	"paint_liters (liters)":                     350.00,
	"busbar_m (m)":                              800.00,
	"backfill_soil_cum (m3)":                    300.00,
	"cement_bags (bags)":                        360.00,
	"excavated_soil_cum (m3)":                   50.00,
	"shuttering_steel_sqm (sqm)":                500.00,
	"jumpers_m (m)":                             1000.00,
	"conductor_km (km)":                         500000.00,
	"water_liters (liters)":                     5.00,
	"OPGW_km (km)":                              200000.00,
	"galvanized_coating_kg (kg)":                30.00,
	"concrete_mix_cum (m3)":                     5000.00,
	"spare_bolts_kg (kg)":                       80.00,
	"spare_conductor_m (m)":                     500.00,
	"reinforcement_steel_kg (kg)":               60.00,
	"packing_material_kg (kg)":                  100.00,
	"spare_OPGW_m (m)":                          300.00,
	"DC_cable_km (km)":                          80000.00,
	"stay_wire_kg (kg)":                         70.00,
	"transformer_oil_liters (liters)":           250.00,
	"spare_hardware_kg (kg)":                    80.00,
	"sand_tons (tons)":                          1000.00,
	"shuttering_wood_sqm (sqm)":                 400.00,
	"aggregate_tons (tons)":                     1800.00,
	"earthing_cable_m (m)":                      120.00,

	// Calculated total-price keys, 1.00 placeholder for "total unit"
	"environment_charges_lakhs_price":                 1.00,
	"washers_qty (qty)_price":                         1.00,
	"CT_units_price":                                  1.00,
	"PT_units_price":                                  1.00,
	"min_diesel_litre_price":                          1.00,
	"earth_wire_km (km)_price":                        1.00,
	"converter_transformer_oil_liters (liters)_price": 1.00,
	"curing_compound_liters (liters)_price":           1.00,
	"formwork_oil_liters (liters)_price":              1.00,
	"lubrication_grease_kg (kg)_price":                1.00,
	"binding_wire_kg (kg)_price":                      1.00,
	"arcing_horn_units_price":                         1.00,
	"guy_rope_m (m)_price":                            1.00,
	"tower_steel_kg (kg)_price":                       1.00,
	"bolts_nuts_qty (qty)_price":                      1.00,
	"gravel_tons (tons)_price":                        1.00,
	"circuit_breaker_units_price":                     1.00,
	"control_cable_m (m)_price":                       1.00,
	"paint_liters (liters)_price":                     1.00,
	"isolator_units_price":                            1.00,
	"busbar_m (m)_price":                              1.00,
	"harmonic_filter_units_price":                     1.00,
	"vibration_dampers_units_price":                   1.00,
	"backfill_soil_cum (m3)_price":                    1.00,
	"switchgear_units_price":                          1.00,
	"cement_bags (bags)_price":                        1.00,
	"hardware_fittings_units_price":                   1.00,
	"spacers_units_price":                             1.00,
	"excavated_soil_cum (m3)_price":                   1.00,
	"shuttering_steel_sqm (sqm)_price":                1.00,
	"clamps_units_price":                              1.00,
	"jumpers_m (m)_price":                             1.00,
	"conductor_km (km)_price":                         1.00,
	"water_liters (liters)_price":                     1.00,
	"extra_insulator_units_price":                     1.00,
	"OPGW_km (km)_price":                              1.00,
	"galvanized_coating_kg (kg)_price":                1.00,
	"concrete_mix_cum (m3)_price":                     1.00,
	"spare_bolts_kg (kg)_price":                       1.00,
	"spare_clamps_units_price":                        1.00,
	"spare_conductor_m (m)_price":                     1.00,
	"reinforcement_steel_kg (kg)_price":               1.00,
	"packing_material_kg (kg)_price":                  1.00,
	"ladder_units_price":                              1.00,
	"insulator_discs_units_price":                     1.00,
	"spare_OPGW_m (m)_price":                          1.00,
	"DC_cable_km (km)_price":                          1.00,
	"earthing_rod_units_price":                        1.00,
	"stay_wire_kg (kg)_price":                         1.00,
	"cross_arm_units_price":                           1.00,
	"thyristor_valve_units_price":                     1.00,
	"transformer_oil_liters (liters)_price":           1.00,
	"tower_parts_units_price":                         1.00,
	"safety_equipment_units_price":                    1.00,
	"spare_hardware_kg (kg)_price":                    1.00,
	"sand_tons (tons)_price":                          1.00,
	"smoothing_reactor_units_price":                   1.00,
	"shuttering_wood_sqm (sqm)_price":                 1.00,
	"aggregate_tons (tons)_price":                     1.00,
	"earthing_cable_m (m)_price":                      1.00,
	"angle_steel_sections_kg_price":                   1.00,
	"tower_legs_kg_price":                             1.00,
	"tower_body_members_kg_price":                     1.00,
	"extension_pieces_kg_price":                       1.00,
	"pack_plates_kg_price":                            1.00,
}
