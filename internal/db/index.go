package db

// StorageType selects the FT index storage backend.
type StorageType string

// Storage type constants.
const (
	StorageHash StorageType = "HASH"
)

// IndexFieldType is the FT schema field type.
type IndexFieldType string

// Schema field type constants.
const (
	IndexFieldText    IndexFieldType = "TEXT"
	IndexFieldTag     IndexFieldType = "TAG"
	IndexFieldNumeric IndexFieldType = "NUMERIC"
)

// IndexDefinition describes an FT index.
type IndexDefinition struct {
	Name        string
	StorageType StorageType
	Prefixes    []string
	Fields      []IndexField
}

// IndexField is a single FT schema field.
type IndexField struct {
	Name             string
	Alias            string
	Type             IndexFieldType
	TextWeight       float64 // TEXT only, 0 = default weight
	TagSeparator     string  // TAG only
	TagCaseSensitive bool    // TAG only
}
