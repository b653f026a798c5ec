package schema

// RecordID identifies a submitted record for the lifetime of a session.
type RecordID string

// Record is a snapshot of one completed form.
type Record struct {
	ID       RecordID `json:"id"`
	TypeName string   `json:"type"`
	Values   Values   `json:"values"`
}

// ReservedKey reports whether name collides with the record metadata keys
// "id" and "type". Field definitions may not use these names.
func ReservedKey(name string) bool {
	return name == "id" || name == "type"
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	return Record{
		ID:       r.ID,
		TypeName: r.TypeName,
		Values:   r.Values.Clone(),
	}
}
