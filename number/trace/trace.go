package trace

// CompositionTrace collects composition records in the order they happen.
type CompositionTrace struct {
	Compositions []CompositionRecord
}

// NewCompositionTrace creates a CompositionTrace ready for recording.
func NewCompositionTrace() *CompositionTrace {
	return &CompositionTrace{Compositions: make([]CompositionRecord, 0)}
}

// Record appends a composition record.
func (ct *CompositionTrace) Record(record CompositionRecord) {
	ct.Compositions = append(ct.Compositions, record)
}
