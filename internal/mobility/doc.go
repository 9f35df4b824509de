// Package mobility provides electrophoretic mobility models.
//
// Each model implements the [Model] interface, mapping one analyte and a set
// of buffer conditions to an apparent mobility in SI units (m²/V·s):
//
//   - [ChargeMass]: charge-to-mass heuristic with pH and temperature factors
//   - [StokesEOF]: Stokes-Einstein electrophoretic term plus an
//     electroosmotic flow term from a linear zeta-potential surrogate
//   - [DebyeHuckel]: Stokes term attenuated by ionic-strength screening
//
// The models are engineering approximations reproduced for internal
// consistency, not validated against experimental data. Variants are never
// mixed inside a run; the caller selects one by name via [New].
package mobility
