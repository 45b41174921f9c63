package system

const (
	// LamportsPerByteYear is the yearly rent of one stored byte.
	LamportsPerByteYear = 3480
	// ExemptionYears of rent must be deposited to keep an account forever.
	ExemptionYears = 2
	// AccountStorageOverhead is charged on top of the declared space.
	AccountStorageOverhead = 128
)

// RentExemptMinimum returns the deposit required to allocate an account of
// the given space.
func RentExemptMinimum(space uint64) uint64 {
	return (AccountStorageOverhead + space) * LamportsPerByteYear * ExemptionYears
}
