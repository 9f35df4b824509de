package mobility

// Physical constants, CODATA 2018 values.
const (
	ElementaryCharge   = 1.602176634e-19  // C
	BoltzmannConstant  = 1.380649e-23     // J/K
	AvogadroConstant   = 6.02214076e23    // 1/mol
	FaradayConstant    = 96485.33212      // C/mol
	VacuumPermittivity = 8.8541878128e-12 // F/m
)
