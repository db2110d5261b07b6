package openmath

import "fmt"

// options collects the configuration shared by Encoder and Decoder.
type options struct {
	indent    int
	prefix    string
	validator Validator
}

// Option configures an Encoder or a Decoder.
type Option func(*options) error

func applyOptions(opts []Option) (*options, error) {
	o := &options{}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Indent returns an Option that pretty-prints encoded documents with n
// spaces per nesting level. The default is compact output on one line.
func Indent(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return fmt.Errorf("openmath: indent spaces cannot be negative")
		}
		o.indent = n
		return nil
	}
}

// Prefix returns an Option that binds the OpenMath namespace to the given
// prefix on encoding, instead of declaring it as the default namespace.
func Prefix(p string) Option {
	return func(o *options) error {
		if p == "" {
			return fmt.Errorf("openmath: namespace prefix cannot be empty")
		}
		o.prefix = p
		return nil
	}
}

// WithValidator returns an Option that runs v over every parsed document
// before the decoder builds a tree. A validation failure surfaces as a
// SchemaValidationError.
func WithValidator(v Validator) Option {
	return func(o *options) error {
		o.validator = v
		return nil
	}
}
