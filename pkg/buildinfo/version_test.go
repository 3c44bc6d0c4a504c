package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	tmpl := Template()
	if !strings.HasPrefix(tmpl, "{{.Name}} version "+Version) {
		t.Errorf("Template() = %q", tmpl)
	}
	if !strings.Contains(tmpl, "commit: "+Commit) {
		t.Errorf("Template() missing commit: %q", tmpl)
	}
}

func TestCacheScope(t *testing.T) {
	oldV, oldC := Version, Commit
	t.Cleanup(func() { Version, Commit = oldV, oldC })

	Version, Commit = "v1.2.3", "abc"
	if got := CacheScope(); got != "v1.2.3:" {
		t.Errorf("CacheScope() = %q, want v1.2.3:", got)
	}
	Version = "dev"
	if got := CacheScope(); got != "dev:abc:" {
		t.Errorf("CacheScope() = %q, want dev:abc:", got)
	}
}
