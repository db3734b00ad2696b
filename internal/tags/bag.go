package tags

// Bag is a mapping from each of the six tag names to an optional string.
// A Bag is built once per scanned file, mutated at most once more during
// clutter tagging, then treated as immutable.
type Bag struct {
	values map[Name]string
}

// NewBag returns an empty tag bag.
func NewBag() Bag {
	return Bag{values: make(map[Name]string, len(All))}
}

// Set assigns value for name. An empty string is treated the same as never
// having set the field: Get will report it absent.
func (b *Bag) Set(name Name, value string) {
	if b.values == nil {
		b.values = make(map[Name]string, len(All))
	}
	if value == "" {
		delete(b.values, name)
		return
	}
	b.values[name] = value
}

// Get returns the value for name and whether it is present and non-empty.
func (b Bag) Get(name Name) (string, bool) {
	v, ok := b.values[name]
	return v, ok && v != ""
}

// CopyFrom overwrites every field of b with other's fields, including
// absent ones (fields absent in other become absent in b).
func (b *Bag) CopyFrom(other Bag) {
	b.values = make(map[Name]string, len(All))
	for name, v := range other.values {
		if v != "" {
			b.values[name] = v
		}
	}
}

// Clone returns an independent copy of b.
func (b Bag) Clone() Bag {
	clone := NewBag()
	clone.CopyFrom(b)
	return clone
}

// Empty reports whether no field is set.
func (b Bag) Empty() bool {
	return len(b.values) == 0
}

// Intersection returns the field-wise intersection of the given bags: a
// field is present in the result iff it is present and non-empty, and
// agrees on the same value, in every input bag. The intersection of zero
// bags is the absent/empty bag; the intersection of one bag is that bag.
func Intersection(bags ...Bag) Bag {
	result := NewBag()
	if len(bags) == 0 {
		return result
	}

	for _, name := range All {
		first, ok := bags[0].Get(name)
		if !ok {
			continue
		}
		agree := true
		for _, other := range bags[1:] {
			v, ok := other.Get(name)
			if !ok || v != first {
				agree = false
				break
			}
		}
		if agree {
			result.Set(name, first)
		}
	}
	return result
}
</content>
