package domain

const (
	// DEFAULT_PROGRAM_ID is the program identity used for address derivation when none is configured
	DEFAULT_PROGRAM_ID = "Fg6PaFpoGXkYsidMpWTK6W2BeZ7FEfcYkgVh9r7v6v7P"

	// Derivation seed prefixes
	PROPERTY_SEED   = "property"
	SHARE_UNIT_SEED = "share_unit"

	// PROPERTY_RECORD_SIZE is the byte size of an encoded property record
	PROPERTY_RECORD_SIZE = AddressLength + 8 + 8 + 8 + AddressLength + 1 + 1 + 8 + 8
)
