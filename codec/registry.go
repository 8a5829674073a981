package codec

import (
	"sort"
	"strings"
	"sync"

	"github.com/nuclio/errors"
)

// Registry manages the available codecs
type Registry struct {
	mu     sync.RWMutex
	codecs map[string]Codec // key can be either name or extension
}

var defaultRegistry = NewRegistry()

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Codec),
	}
}

// Default returns the process-wide registry codec packages register into
func Default() *Registry {
	return defaultRegistry
}

// Register registers a codec using both its name and extension
func Register(codec Codec) {
	defaultRegistry.Register(codec)
}

// Get retrieves a codec by name or extension
func Get(nameOrExtension string) (Codec, error) {
	return defaultRegistry.Get(nameOrExtension)
}

// List returns all registered codecs
func List() []Codec {
	return defaultRegistry.List()
}

// Register registers a codec using both its name and extension
func (r *Registry) Register(codec Codec) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.codecs[codec.Name()] = codec
	if ext := codec.Extension(); ext != "" {
		r.codecs[strings.ToLower(ext)] = codec
	}
}

// Get retrieves a codec by name or extension
func (r *Registry) Get(nameOrExtension string) (Codec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codec, ok := r.codecs[nameOrExtension]
	if !ok {
		codec, ok = r.codecs[strings.ToLower(nameOrExtension)]
	}
	if !ok {
		return nil, errors.Wrapf(ErrCodecNotFound, "No codec named %q", nameOrExtension)
	}
	return codec, nil
}

// List returns all registered codecs (deduplicated), ordered by name
func (r *Registry) List() []Codec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	codecs := make([]Codec, 0)

	for _, codec := range r.codecs {
		if !seen[codec.Name()] {
			seen[codec.Name()] = true
			codecs = append(codecs, codec)
		}
	}

	sort.Slice(codecs, func(i, j int) bool {
		return codecs[i].Name() < codecs[j].Name()
	})

	return codecs
}
