package details

type MeasurementKind string

const (
	MeasurementKindWeight MeasurementKind = "weight"
)

type Measurement struct {
	Kind  MeasurementKind `json:"kind"`
	Value float64         `json:"value"`
	Unit  string          `json:"unit"` // "kg", "lb"
}
