package relation

const (
	TypeInt    = "int"
	TypeFloat  = "float"
	TypeString = "string"
)

type FieldInfo struct {
	fieldName string
	fieldType string
}

// Schema is the ordered list of a relation's columns.
type Schema struct {
	fields []FieldInfo
}

// NewSchema creates a new empty schema.
func NewSchema() *Schema {
	return &Schema{
		fields: make([]FieldInfo, 0),
	}
}

func (s *Schema) AddField(name string, fieldType string) {
	s.fields = append(s.fields, FieldInfo{
		fieldName: name,
		fieldType: fieldType,
	})
}

func (s *Schema) AddIntField(name string) {
	s.AddField(name, TypeInt)
}

func (s *Schema) AddFloatField(name string) {
	s.AddField(name, TypeFloat)
}

func (s *Schema) AddStringField(name string) {
	s.AddField(name, TypeString)
}

// Copy adds the field at the given index of the other schema to this schema.
func (s *Schema) Copy(other *Schema, index int) {
	if index >= 0 && index < len(other.fields) {
		s.fields = append(s.fields, other.fields[index])
	}
}

// CopyAll adds every field of the other schema to this schema, in order.
func (s *Schema) CopyAll(other *Schema) {
	s.fields = append(s.fields, other.fields...)
}

// NumFields returns the number of fields in the schema.
func (s *Schema) NumFields() int {
	return len(s.fields)
}

// FieldName returns the name of the field at the given index.
func (s *Schema) FieldName(index int) string {
	return s.fields[index].fieldName
}

// FieldType returns the type of the field at the given index.
func (s *Schema) FieldType(index int) string {
	return s.fields[index].fieldType
}

// FieldNames returns a copy of the field names, in schema order.
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.fieldName
	}
	return names
}
