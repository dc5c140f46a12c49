package cache

// ScopedKeyer wraps a Keyer with a prefix, so several users of one backend
// (the CLI and a server sharing Redis, say) keep separate namespaces.
//
//	apiKeyer := NewScopedKeyer(NewDefaultKeyer(), "api:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner keyer selects
// DefaultKeyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(payload string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(payload, opts)
}
