// Package electro defines the value types shared across the capillary
// electrophoresis simulation pipeline:
//
//   - [Analyte]: physicochemical properties of one dissolved molecule
//   - [Environment]: buffer conditions shared by all analytes in a run
//   - [Geometry]: capillary length and applied voltage
//
// All downstream computation is SI throughout. Callers supply values in the
// conventional bench units (cP, cm, kV, mM, °C); the conversion helpers in
// this package are the single place those conventions are translated. The
// historical 1e8 "practical units" mobility scale is a display convention
// and lives only in [PracticalMobility] / [FromPractical].
package electro
