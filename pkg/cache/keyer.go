package cache

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey returns the key for a document converted from the SVG
	// whose hash is svgHash.
	ArtifactKey(svgHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the conversion options that change the output.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Scale  float64 `json:"scale,omitempty"`
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(svgHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", svgHash, opts)
}

var _ Keyer = DefaultKeyer{}
