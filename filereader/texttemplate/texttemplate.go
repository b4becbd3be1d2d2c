package texttemplate

import (
	"bytes"
	"encoding/json"
	"text/template"

	"github.com/Masterminds/sprig"
)

// Parse compiles raw with the hermetic sprig functions, toJSON, and funcs.
func Parse(name string, raw string, funcs template.FuncMap) (*template.Template, error) {
	builtins := template.FuncMap{
		"toJSON": func(v interface{}) (string, error) {
			data, err := json.Marshal(v)
			return string(data), err
		},
	}

	return template.New(name).
		Option("missingkey=error").
		Funcs(sprig.HermeticTxtFuncMap()).
		Funcs(builtins).
		Funcs(funcs).
		Parse(raw)
}

func GetBytesBuffer(name, raw string, data interface{}) (*bytes.Buffer, error) {
	tmpl, err := Parse(name, raw, nil)
	if err != nil {
		return nil, err
	}

	var buff bytes.Buffer
	if err := tmpl.Execute(&buff, data); err != nil {
		return nil, err
	}
	return &buff, nil
}

func GetString(name, raw string, data interface{}) (string, error) {
	buf, err := GetBytesBuffer(name, raw, data)

	if err != nil {
		return "", err
	}

	return buf.String(), nil
}
