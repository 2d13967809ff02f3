package schema

// ColumnInfo mirrors a row of information_schema.columns for the admin
// schema browser.
type ColumnInfo struct {
	ColumnName    string  `json:"column_name"`
	DataType      string  `json:"data_type"`
	IsNullable    string  `json:"is_nullable"`
	ColumnDefault *string `json:"column_default"`
}

// ColumnSpec is an admin request to add one column. Name and Type are
// validated and normalized before any statement is generated from them.
type ColumnSpec struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Nullable bool    `json:"nullable"`
	Default  *string `json:"default"`
}
