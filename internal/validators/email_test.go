package validators

import "testing"

// Only the syntactic rejections are covered here; the resolving cases
// would depend on live DNS.
func TestIsEmailDomainValidRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "no-at-sign", "user@", "@host.example"} {
		if IsEmailDomainValid(s) {
			t.Errorf("IsEmailDomainValid(%q) = true, want false", s)
		}
	}
}
