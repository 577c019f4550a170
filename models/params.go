package models

// Params is the flat name-value-pair mapping sent to and received from the
// PayPal NVP endpoint. Keys are the uppercase wire names, values are the
// already URL-decoded strings.
type Params map[string]string

// Merge copies every entry of other into the receiver and returns it.
// Payment request encodings carry their own positional index in each key, so
// merging encodings for different indices never collides.
func (p Params) Merge(other Params) Params {
	for key, value := range other {
		p[key] = value
	}
	return p
}

// Copy returns a shallow copy of the params. The response transformer works
// on a copy so that consuming keys never mutates the caller's map.
func (p Params) Copy() Params {
	copied := make(Params, len(p))
	for key, value := range p {
		copied[key] = value
	}
	return copied
}
