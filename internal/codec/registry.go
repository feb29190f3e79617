package codec

import (
	"slices"
	"strings"
)

//nolint:gochecknoglobals
var registry = newRegistry(
	&HJSON{},
	&JSON{},
	&TOML{},
	&YAML{},
)

func newRegistry(codecs ...Codec) map[string]Codec {
	r := make(map[string]Codec, len(codecs))
	for _, c := range codecs {
		r[c.ID()] = c
	}

	return r
}

// Lookup returns the built-in [Codec] for a format id.
func Lookup(id string) (Codec, bool) {
	c, ok := registry[id]

	return c, ok
}

// ForExtension returns the built-in [Codec] for a file extension, with or
// without the leading dot.
func ForExtension(ext string) (Codec, bool) {
	return Lookup(strings.TrimPrefix(ext, "."))
}

// IDs returns the sorted format ids of all built-in codecs.
func IDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}
