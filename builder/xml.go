package builder

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/avicd/go-utilx/xmlx"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/openmfg/go-metasql/logger"
	"github.com/openmfg/go-metasql/session"
)

// XmlBuilder loads query-collection documents: any XML file whose
// querysource elements carry a name and the template text, the way report
// definitions embed their queries. Each source registers as a statement
// under "<group>.<name>", where the group is the document's name element
// (file base name when absent).
type XmlBuilder struct {
	cfg  *session.Config
	Scan string
}

func (it *XmlBuilder) Build(config *session.Config) {
	it.cfg = config
	if it.Scan == "" {
		it.Scan = it.cfg.XmlScan
	}
	pattern := strings.TrimSpace(it.Scan)
	if pattern == "" {
		pattern = "**/*.xml"
	}
	xmlFiles, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		logger.Error(err.Error())
		return
	}
	for _, xmlFile := range xmlFiles {
		bytes, err := os.ReadFile(xmlFile)
		if err != nil {
			logger.Error(err.Error())
			continue
		}
		doc, err := xmlx.Parse(strings.NewReader(string(bytes)))
		if err != nil {
			logger.Error(err.Error())
			continue
		}
		sources := doc.Find("//querysource")
		if len(sources) < 1 {
			continue
		}
		group := ""
		if report := doc.FindOne("/report"); report != nil {
			if name := report.FindOne("name"); name != nil {
				group = strings.TrimSpace(innerText(name))
			}
		}
		if group == "" {
			group = strings.TrimSuffix(filepath.Base(xmlFile), filepath.Ext(xmlFile))
		}
		if it.cfg.HasGroup(group) {
			logger.Warnf("duplicate query group '%s', skipped [%s]", group, xmlFile)
			continue
		}
		it.cfg.AddGroup(group, xmlFile)
		for _, src := range sources {
			nameNode := src.FindOne("name")
			sqlNode := src.FindOne("sql")
			if nameNode == nil {
				logger.Warnf("missing name <querysource><name>?, skipped [%s]", xmlFile)
				continue
			}
			name := strings.TrimSpace(innerText(nameNode))
			if name == "" {
				logger.Warnf("missing name <querysource><name>?, skipped [%s]", xmlFile)
				continue
			}
			if sqlNode == nil {
				logger.Warnf("missing sql <querysource id='%s'><sql>?, skipped [%s]", name, xmlFile)
				continue
			}
			if it.cfg.GetStmt(group+"."+name) != nil {
				logger.Warnf("duplicate querysource '%s', skipped [%s]", name, xmlFile)
				continue
			}
			rb := &RawBuilder{Id: name, Group: group, Script: innerText(sqlNode)}
			rb.Build(it.cfg)
		}
	}
}

// innerText joins the text and CDATA children of a node.
func innerText(node *xmlx.Node) string {
	var buf strings.Builder
	for _, p := range node.ChildNodes {
		if p.Type == xmlx.TextNode || p.Type == xmlx.CDataSectionNode {
			buf.WriteString(p.Value)
		}
	}
	return buf.String()
}
