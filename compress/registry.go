// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package compress

// Factory constructs a Compressor for a builtin type name. arg is the full
// name being looked up. ("u<N>" integer names are not registered here;
// Builtin parses them itself.)
type Factory func(arg string) (Compressor, error)

var registry = map[string]Factory{
	"bool": func(string) (Compressor, error) { return Boolean{}, nil },
	"uuid": func(string) (Compressor, error) { return UUID{}, nil },
}

// Register adds or replaces the factory for a builtin type name, so a
// caller can extend the set of names Builtin and Lookup recognize
// without modifying this package. name is matched literally, so registering
// "ascii" only affects lookups for the exact name "ascii".
func Register(name string, factory Factory) { registry[name] = factory }

// Lookup constructs the Compressor registered for name, if any.
func Lookup(name string) (Compressor, bool, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, false, nil
	}
	c, err := factory(name)
	if err != nil {
		return nil, true, err
	}
	return c, true, nil
}
