package model

type DataType string

const (
	DataTypeMaterial DataType = "material"
	DataTypeService  DataType = "service"
)

// CleansingRequest is one unit of material or service master data to normalize.
type CleansingRequest struct {
	RawData  string   `json:"rawData" validate:"required,notblank"`
	DataType DataType `json:"dataType" validate:"required,oneof=material service"`
	Rules    string   `json:"rules,omitempty"`
}

type CleansingResult struct {
	CleansedData     string  `json:"cleansedData"`
	DataQualityScore float64 `json:"dataQualityScore"` // 0-100, self-scored by the model
	Improvements     string  `json:"improvements,omitempty"`
}
