package writelog

import (
	"os"
	"os/user"
	"strings"
)

// osIdentity is the default Identity, backed by the process environment.
type osIdentity struct{}

// NewIdentity returns the process-environment identity provider. It
// reports a domain\username style identity when the environment carries
// a domain, otherwise the bare username; "" when neither the user
// database nor the environment can supply one.
func NewIdentity() Identity {
	return osIdentity{}
}

func (osIdentity) Current() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		name := u.Username
		if domain := os.Getenv("USERDOMAIN"); domain != "" && !strings.ContainsRune(name, '\\') {
			return domain + `\` + name
		}
		return name
	}
	for _, key := range []string{"USER", "USERNAME", "LOGNAME"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}
