package script

import (
	"fmt"
	"strings"

	"github.com/openmfg/go-metasql/param"
)

// SqlBuilder accumulates the expanded SQL text and the placeholder
// bindings for a single render pass. One builder serves one pass.
type SqlBuilder struct {
	uid   int
	buf   strings.Builder
	binds map[string]any
}

func NewSqlBuilder() *SqlBuilder {
	return &SqlBuilder{binds: map[string]any{}}
}

func (it *SqlBuilder) Build(node Node, params *param.Params) (string, map[string]any) {
	it.Reset()
	if params == nil {
		params = param.NewParams()
	}
	node.Render(it, params)
	return strings.TrimSpace(it.buf.String()), it.binds
}

func (it *SqlBuilder) Append(sql string) {
	it.buf.WriteString(sql)
}

// BindValue records val under a fresh placeholder name and returns the name.
func (it *SqlBuilder) BindValue(val any) string {
	it.uid++
	name := fmt.Sprintf("_%d_", it.uid)
	it.binds[name] = val
	return name
}

func (it *SqlBuilder) Reset() {
	it.uid = 0
	it.buf.Reset()
	it.binds = map[string]any{}
}
