package census

// Address types.
const (
	AddressTypeHousehold             = "HH"
	AddressTypeCommunalEstablishment = "CE"
	AddressTypeSpecialPopulation     = "SPG"
)

// Address levels.
const (
	AddressLevelEstab = "E"
	AddressLevelUnit  = "U"
)

var addressTypes = []string{
	AddressTypeHousehold,
	AddressTypeCommunalEstablishment,
	AddressTypeSpecialPopulation,
}

var addressLevels = []string{AddressLevelEstab, AddressLevelUnit}

var estabTypes = []string{
	"Household",
	"Sheltered Accommodation",
	"Hall of Residence",
	"Care Home",
	"Boarding School",
	"Hotel",
	"Hostel",
	"Residential Caravanner",
	"Gypsy Roma Traveller",
	"Residential Boater",
}

// Hard to count scores, 0 to 5.
var htcScores = []string{"0", "1", "2", "3", "4", "5"}

var ceSecureFlags = []string{"0", "1"}

// The last letter of a treatment code is the country it applies to:
// E for England, W for Wales, N for Northern Ireland.
var treatmentCodes = []string{
	"HH_LF2R1E", "HH_LF2R2E", "HH_LF2R3AE", "HH_LF2R3BE",
	"HH_LF3R1E", "HH_LF3R2E", "HH_LF3R3AE", "HH_LF3R3BE",
	"HH_LFNR1E", "HH_LFNR2E", "HH_LFNR3AE", "HH_LFNR3BE",
	"HH_LF2R1W", "HH_LF2R2W", "HH_LF2R3AW", "HH_LF2R3BW",
	"HH_LF3R1W", "HH_LF3R2W", "HH_LF3R3AW", "HH_LF3R3BW",
	"HH_LFNR1W", "HH_LFNR2W", "HH_LFNR3AW", "HH_LFNR3BW",
	"HH_1LSFN", "HH_2LEFN",
	"HH_QF2R1E", "HH_QF2R2E", "HH_QF2R3AE",
	"HH_QF3R1E", "HH_QF3R2E", "HH_QF3R3AE",
	"HH_QFNR1E", "HH_QFNR2E", "HH_QFNR3AE",
	"HH_QF2R1W", "HH_QF2R2W", "HH_QF2R3AW",
	"HH_QF3R1W", "HH_QF3R2W", "HH_QF3R3AW",
	"HH_QFNR1W", "HH_QFNR2W", "HH_QFNR3AW",
	"HH_3QSFN",
	"CE_LDIEE", "CE_LDIEW", "CE_LDIUE", "CE_LDIUW",
	"CE_QDIEE", "CE_QDIEW",
	"SPG_LPHUE", "SPG_LPHUW", "SPG_QDHUE", "SPG_QDHUW",
}

// TreatmentCodes returns the accepted treatment codes.
func TreatmentCodes() []string {
	return append([]string(nil), treatmentCodes...)
}

// EstabTypes returns the accepted establishment types.
func EstabTypes() []string {
	return append([]string(nil), estabTypes...)
}
