package yamltemplate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/barracuda-cloudgen-access/marketplace-template/filereader/texttemplate"
	"github.com/barracuda-cloudgen-access/marketplace-template/pkg/document"
)

var errorLine = regexp.MustCompile(`line (\d+)`)

// GetNode renders the template and parses the result as a YAML fragment.
// Syntax errors are reported with the surrounding lines of the rendering.
func GetNode(name, raw string, data interface{}) (*yaml.Node, error) {
	rendered, err := texttemplate.GetString(name, raw, data)
	if err != nil {
		return nil, err
	}

	n, err := document.Fragment(rendered)
	if err != nil {
		return nil, fmt.Errorf("%s: %v, in this region:\n-------\n%s\n-------", name, err, getContextString(rendered, err, 2))
	}
	return n, nil
}

func getContextString(rendered string, err error, lineCount int) string {
	lines := strings.Split(rendered, "\n")
	m := errorLine.FindStringSubmatch(err.Error())
	if m == nil {
		return rendered
	}
	line, _ := strconv.Atoi(m[1])
	line--

	from := line - lineCount
	if from < 0 {
		from = 0
	}
	to := line + lineCount + 1
	if to > len(lines) {
		to = len(lines)
	}
	if from >= to {
		return rendered
	}
	return strings.Join(lines[from:to], "\n")
}
