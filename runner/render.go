package runner

import (
	"encoding/json"
	"fmt"
	"io"
	"text/template"

	"github.com/ghodss/yaml"

	"github.com/jeffrom/cmsg/commit"
	"github.com/jeffrom/cmsg/config"
)

const defaultMessageTemplate = `type:        {{ .Type }}
{{ with .Scope -}}
scope:       {{ . }}
{{ end -}}
breaking:    {{ .Breaking }}
description: {{ .Description }}
{{- with .Body }}

{{ . }}
{{- end }}
{{- range .Trailers }}
{{ .Token }}{{ .Separator }}{{ .Value }}
{{- end }}
`

// Render writes a parsed commit to w in the configured output format:
// a text summary by default, or json/yaml.
func (r *Runner) Render(w io.Writer, c *commit.Commit) error {
	m := c.Message()
	switch r.cfg.Format {
	case config.FormatJSON:
		b, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	case config.FormatYAML:
		b, err := yaml.Marshal(m)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}

	tmpl := defaultMessageTemplate
	if r.cfg.Template != "" {
		tmpl = r.cfg.Template
	}
	t, err := template.New("message").Parse(tmpl)
	if err != nil {
		return err
	}
	return t.Execute(w, m)
}
