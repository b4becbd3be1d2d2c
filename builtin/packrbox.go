package builtin

import "github.com/gobuffalo/packr"

var _box *packr.Box

const (
	HeaderTmplFile            = "header.tmpl"
	CloudWatchParameterTmpl   = "snippets/cloudwatch-parameter.yaml.tmpl"
	CloudWatchLabelTmpl       = "snippets/cloudwatch-label.yaml.tmpl"
	CloudWatchConditionTmpl   = "snippets/cloudwatch-condition.yaml.tmpl"
	CloudWatchAgentTmpl       = "snippets/cloudwatch-agent.yaml.tmpl"
	CloudWatchAgentScriptTmpl = "snippets/cloudwatch-agent.sh.tmpl"
)

func Box() *packr.Box {
	if _box == nil {
		b := packr.NewBox("./files")
		_box = &b
	}
	return _box
}

// MustString returns the asset at path or an error naming it.
func MustString(path string) (string, error) {
	return Box().MustString(path)
}
