package om

import "fmt"

// MissingFieldError reports a node without a required field. It is raised
// where absence can be observed: when a node is encoded or decoded.
type MissingFieldError struct {
	Variant string
	Field   string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("openmath: %s is missing required field %q", e.Variant, e.Field)
}

// TooManyFieldsError reports more positional content than a variant's field
// list allows, such as an OMOBJ element with more than one child.
type TooManyFieldsError struct {
	Variant string
	Want    int
	Got     int
}

func (e *TooManyFieldsError) Error() string {
	return fmt.Sprintf("openmath: %s takes %d positional fields, got %d", e.Variant, e.Want, e.Got)
}
