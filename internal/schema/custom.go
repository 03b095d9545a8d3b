package schema

import "fmt"

// RoundedFloat renders money with two decimals on the wire. The underlying
// value stays unrounded; formatting is a presentation concern only.
type RoundedFloat float64

func (f RoundedFloat) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%.2f", f)), nil
}
