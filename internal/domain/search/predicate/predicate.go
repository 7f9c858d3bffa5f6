// Package predicate models the metadata filter dialect of the vector index:
// equality, set-membership, and a single disjunction group, combined by AND.
package predicate

// Predicate constrains an index query by metadata. Conditions in Must are
// ANDed together; conditions in Any form one OR group that is ANDed with the
// rest. A nil *Predicate means "no constraint" — callers must never send an
// empty-but-present predicate to the index, since an empty filter expression
// can mean match-none rather than match-all.
type Predicate struct {
	must []Condition
	any  []Condition
}

// New creates a predicate, or nil when there are no conditions.
func New(must, any []Condition) *Predicate {
	if len(must) == 0 && len(any) == 0 {
		return nil
	}
	return &Predicate{must: must, any: any}
}

// Must returns the ANDed conditions. Safe on a nil predicate.
func (p *Predicate) Must() []Condition {
	if p == nil {
		return nil
	}
	return p.must
}

// Any returns the disjunction group. Safe on a nil predicate.
func (p *Predicate) Any() []Condition {
	if p == nil {
		return nil
	}
	return p.any
}

// IsEmpty reports whether the predicate constrains nothing.
func (p *Predicate) IsEmpty() bool {
	return p == nil || (len(p.must) == 0 && len(p.any) == 0)
}

// Condition is a single clause: exact equality or set-membership on one field.
type Condition struct {
	field  string
	values []string
}

// Eq creates an exact equality condition.
func Eq(field, value string) Condition {
	return Condition{field: field, values: []string{value}}
}

// In creates a set-membership condition.
func In(field string, values ...string) Condition {
	return Condition{field: field, values: values}
}

// Field returns the metadata field name.
func (c Condition) Field() string { return c.field }

// Values returns the accepted values. One value means exact equality.
func (c Condition) Values() []string { return c.values }

// IsEq reports whether the condition is a single-value equality.
func (c Condition) IsEq() bool { return len(c.values) == 1 }
