package census

import (
	"github.com/dmitrymomot/censussample/pkg/validator"
)

// Sample file columns, in schema order.
const (
	ColARID               = "ARID"
	ColEstabARID          = "ESTAB_ARID"
	ColUPRN               = "UPRN"
	ColAddressType        = "ADDRESS_TYPE"
	ColEstabType          = "ESTAB_TYPE"
	ColAddressLevel       = "ADDRESS_LEVEL"
	ColABPCode            = "ABP_CODE"
	ColOrganisationName   = "ORGANISATION_NAME"
	ColAddressLine1       = "ADDRESS_LINE1"
	ColAddressLine2       = "ADDRESS_LINE2"
	ColAddressLine3       = "ADDRESS_LINE3"
	ColTownName           = "TOWN_NAME"
	ColPostcode           = "POSTCODE"
	ColLatitude           = "LATITUDE"
	ColLongitude          = "LONGITUDE"
	ColOA                 = "OA"
	ColLSOA               = "LSOA"
	ColMSOA               = "MSOA"
	ColLAD                = "LAD"
	ColRegion             = "REGION"
	ColHTCWillingness     = "HTC_WILLINGNESS"
	ColHTCDigital         = "HTC_DIGITAL"
	ColTreatmentCode      = "TREATMENT_CODE"
	ColFieldCoordinatorID = "FIELDCOORDINATOR_ID"
	ColFieldOfficerID     = "FIELDOFFICER_ID"
	ColCEExpectedCapacity = "CE_EXPECTED_CAPACITY"
	ColCESecure           = "CE_SECURE"
	ColPrintBatch         = "PRINT_BATCH"
)

// NewSchema builds the census sample schema. Every call returns a schema
// with fresh rule state, ready for exactly one validation run.
func NewSchema() *validator.Schema {
	mandatory := validator.Mandatory
	maxLength := validator.MaxLength
	noPadding := validator.NoPaddingWhitespace

	return validator.MustSchema(
		validator.Col(ColARID, mandatory(), maxLength(21), validator.Unique()),
		validator.Col(ColEstabARID, mandatory(), maxLength(21)),
		validator.Col(ColUPRN, mandatory(), maxLength(12), validator.Numeric()),
		validator.Col(ColAddressType, mandatory(), validator.InSet(addressTypes...)),
		validator.Col(ColEstabType, mandatory(), validator.InSet(estabTypes...)),
		validator.Col(ColAddressLevel, mandatory(), maxLength(1), validator.InSet(addressLevels...)),
		validator.Col(ColABPCode, mandatory(), maxLength(6)),
		validator.Col(ColOrganisationName, maxLength(60), noPadding()),
		validator.Col(ColAddressLine1, mandatory(), maxLength(60), noPadding()),
		validator.Col(ColAddressLine2, maxLength(60), noPadding()),
		validator.Col(ColAddressLine3, maxLength(60), noPadding()),
		validator.Col(ColTownName, mandatory(), maxLength(30)),
		validator.Col(ColPostcode, mandatory(), maxLength(8)),
		validator.Col(ColLatitude, mandatory(), validator.DecimalScaleAndPrecision(7, 9)),
		validator.Col(ColLongitude, mandatory(), validator.DecimalScaleAndPrecision(7, 8)),
		validator.Col(ColOA, mandatory(), maxLength(9)),
		validator.Col(ColLSOA, mandatory(), maxLength(9)),
		validator.Col(ColMSOA, mandatory(), maxLength(9)),
		validator.Col(ColLAD, mandatory(), maxLength(9)),
		validator.Col(ColRegion, mandatory(), maxLength(9), regionMatchesTreatmentCode()),
		validator.Col(ColHTCWillingness, mandatory(), validator.InSet(htcScores...)),
		validator.Col(ColHTCDigital, mandatory(), validator.InSet(htcScores...)),
		validator.Col(ColTreatmentCode, mandatory(), validator.InSet(treatmentCodes...)),
		validator.Col(ColFieldCoordinatorID, maxLength(10)),
		validator.Col(ColFieldOfficerID, maxLength(13)),
		validator.Col(ColCEExpectedCapacity, validator.Numeric(), maxLength(4), ceCapacityRequired(), ceCapacityOnlyForEstab()),
		validator.Col(ColCESecure, mandatory(), validator.InSet(ceSecureFlags...)),
		validator.Col(ColPrintBatch, validator.Numeric(), maxLength(2)),
	)
}

// Columns returns the sample file header in schema order.
func Columns() []string {
	return NewSchema().Columns()
}

// FormatDefaults holds the values given to the columns older sample files
// were produced without when they are updated to the current header.
func FormatDefaults() map[string]string {
	return map[string]string{
		ColCESecure:   "0",
		ColPrintBatch: "",
	}
}

// regionMatchesTreatmentCode checks the region code starts with the
// country letter the treatment code ends with. Empty values are left to
// the mandatory rules of both columns.
func regionMatchesTreatmentCode() validator.Rule {
	return validator.CrossField(
		"Region does not match treatment code country",
		func(region string, row validator.Record) bool {
			code := row.Get(ColTreatmentCode)
			if region == "" || code == "" {
				return true
			}
			return region[0] == code[len(code)-1]
		},
	)
}

// CE_EXPECTED_CAPACITY is present exactly for CE estab level addresses.
func ceCapacityRequired() validator.Rule {
	return validator.RequiredWhen(
		"CE Expected Capacity is mandatory for CE estab level addresses",
		isCEEstab,
	)
}

func ceCapacityOnlyForEstab() validator.Rule {
	return validator.CrossField(
		"CE Expected Capacity is only allowed for CE estab level addresses",
		func(capacity string, row validator.Record) bool {
			return capacity == "" || isCEEstab(row)
		},
	)
}

func isCEEstab(row validator.Record) bool {
	return row.Get(ColAddressType) == AddressTypeCommunalEstablishment &&
		row.Get(ColAddressLevel) == AddressLevelEstab
}
