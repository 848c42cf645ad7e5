// Package server renders registered components to full HTML pages for the
// preview command. It is tooling around the renderer, not a web framework.
package server

import (
	"bytes"
	"fmt"
	"html/template"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 800px; margin: 50px auto; padding: 0 20px; }
    </style>
</head>
<body>
{{.Body}}
</body>
</html>`))

var errorTemplate = template.Must(template.New("error").Parse(`<!doctype html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Error</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 800px; margin: 50px auto; padding: 0 20px; }
        h1 { color: #e74c3c; }
        pre { background: #f8f9fa; padding: 15px; border-radius: 5px; overflow-x: auto; }
    </style>
</head>
<body>
    <h1>Render Error</h1>
    <pre>{{.Message}}</pre>
</body>
</html>`))

var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
</head>
<body>
    <h1>{{.Title}}</h1>
    <ul>
    {{range .Routes}}<li><a href="{{.Pattern}}">{{.Name}}</a></li>
    {{end}}</ul>
</body>
</html>`))

func renderShell(title, bodyHTML string) (string, error) {
	var buf bytes.Buffer
	err := pageTemplate.Execute(&buf, map[string]any{
		"Title": title,
		"Body":  template.HTML(bodyHTML),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render page shell: %w", err)
	}
	return buf.String(), nil
}
