package energy_params

import "embed"

/******************************************************************************

This file defines the embedded parameter-file directory and the
`BasePairType`-typed pairing API used by packages (such as `rnaup/energy`)
that want a named pair type rather than `scale.go`'s raw-int encoding.
`EnergyParams`, `EnergyParamsSet`, `NewEnergyParams` and the int-encoded
pairing helpers live in `scale.go`; see that file for the scaling pipeline
they belong to.

For more information on parsing the energy params, please see `parse.go`.

******************************************************************************/

// BasePairType is a type to hold information of the type of a base pair.
// The chosen numbers denote where the energy paramater values can be found
// for the base pair type in the `EnergyParams` energy parameter matrices.
type BasePairType int

const (
	// CG occurs when the base C (on the five prime end) binds to the base G
	// (on the three prime end)
	CG BasePairType = 0
	// GC occurs when the base G (on the five prime end) binds to the base C
	// (on the three prime end)
	GC = 1
	// GU occurs when the base G (on the five prime end) binds to the base U
	// (on the three prime end)
	GU = 2
	// UG occurs when the base U (on the five prime end) binds to the base G
	// (on the three prime end)
	UG = 3
	// AU occurs when the base A (on the five prime end) binds to the base U
	// (on the three prime end)
	AU = 4
	// UA occurs when the base U (on the five prime end) binds to the base A
	// (on the three prime end)
	UA = 5
	// NoPair denotes that two bases don't pair
	NoPair = -1
)

var (
	fivePrimeABasePairTypeMap = map[byte]BasePairType{'U': AU}
	fivePrimeCBasePairTypeMap = map[byte]BasePairType{'G': CG}
	fivePrimeGBasePairTypeMap = map[byte]BasePairType{'C': GC, 'U': GU}
	fivePrimeUBasePairTypeMap = map[byte]BasePairType{'A': UA, 'G': UG}

	// BasePairEncodedTypeMap is a map that encodes a base pair to its numerical
	// representation that is used to access the values of the energy parameters
	// in the `EnergyParams` struct. See `EncodeBasePair`.
	BasePairEncodedTypeMap = map[byte]map[byte]BasePairType{
		'A': fivePrimeABasePairTypeMap,
		'C': fivePrimeCBasePairTypeMap,
		'G': fivePrimeGBasePairTypeMap,
		'U': fivePrimeUBasePairTypeMap,
	}
)

// EncodeBasePair returns the type of a base pair encoded as a `BasePairType`,
// which is used to access energy paramater values in the `EnergyParams`
// struct. See `BasePairEncodedTypeMap` for a detailed explanation of the
// encoding.
func EncodeBasePair(fivePrimeBase, threePrimeBase byte) BasePairType {
	if val, ok := BasePairEncodedTypeMap[fivePrimeBase][threePrimeBase]; ok {
		return val
	}
	return NoPair
}

//go:embed param_files/*
var embeddedEnergyParamsDirectory embed.FS
var energyParamsDirectory = "param_files"

var energyParamFileNames map[EnergyParamsSet]string = map[EnergyParamsSet]string{
	Langdon2018:    "rna_langdon2018.par",
	Andronescu2007: "rna_andronescu2007.par",
	Turner2004:     "rna_turner2004.par",
	Turner1999:     "rna_turner1999.par",
}
