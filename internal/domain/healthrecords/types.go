package healthrecords

type RecordType string

const (
	RecordTypeVaccine        RecordType = "VACCINE"
	RecordTypeIllness        RecordType = "ILLNESS"
	RecordTypeInjury         RecordType = "INJURY"
	RecordTypeTreatment      RecordType = "TREATMENT"
	RecordTypeDeworming      RecordType = "DEWORMING"
	RecordTypeCheckup        RecordType = "CHECKUP"
	RecordTypeWeightRecorded RecordType = "WEIGHT_RECORDED"
	RecordTypeNote           RecordType = "NOTE"
)

type RecordStatus string

const (
	RecordStatusActive RecordStatus = "active"
	RecordStatusVoided RecordStatus = "voided"
)
