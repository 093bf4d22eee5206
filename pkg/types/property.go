package types

// PropertyDataType tags how a system property's string value should be
// interpreted.
type PropertyDataType string

const (
	PropertyDataTypeString   PropertyDataType = "STRING"
	PropertyDataTypeNumber   PropertyDataType = "NUMBER"
	PropertyDataTypeBoolean  PropertyDataType = "BOOLEAN"
	PropertyDataTypeJSON     PropertyDataType = "JSON"
	PropertyDataTypeDate     PropertyDataType = "DATE"
	PropertyDataTypeDatetime PropertyDataType = "DATETIME"
)

// SystemProperty is the writable portion of a portal system property, the
// shape sent on insert or update.
type SystemProperty struct {
	ID           int              `json:"id"`
	Name         string           `json:"name"`
	Value        string           `json:"value"`
	DefaultValue *string          `json:"defaultValue"`
	IsReadOnly   TinyInt          `json:"isReadOnly"`
	IsPassword   TinyInt          `json:"isPassword"`
	DataType     PropertyDataType `json:"dataType"`
	Description  *string          `json:"description"`
}

// SystemPropertyRecord is a system property as returned by the portal,
// complete with create and modify date-times.
type SystemPropertyRecord struct {
	SystemProperty
	Created  DateTime `json:"created"`
	Modified DateTime `json:"modified"`
}
