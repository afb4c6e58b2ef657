package builder

import "github.com/openmfg/go-metasql/session"

type Builder interface {
	Build(config *session.Config)
}
