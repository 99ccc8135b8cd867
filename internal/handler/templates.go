package handler

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"

	"github.com/noah-isme/campushub/internal/dto"
	"github.com/noah-isme/campushub/internal/models"
)

//go:embed web/templates/*.tmpl
var templateFS embed.FS

//go:embed web/static
var staticFS embed.FS

// dialogView is what the dialog template needs besides the dialog itself.
type dialogView struct {
	Dialog dto.Dialog
	Close  string
}

var templateFuncs = template.FuncMap{
	"tone": func(t models.Tone) string {
		if t == "" {
			return ""
		}
		return "tone-" + string(t)
	},
	"toneForLevel": func(level models.NotificationLevel) string {
		switch level {
		case models.NotificationSuccess:
			return "tone-success"
		case models.NotificationError:
			return "tone-destructive"
		default:
			return "tone-accent"
		}
	},
	"tabHref": func(path, key string) string {
		return path + "?" + url.Values{"tab": {key}}.Encode()
	},
	"percent": func(v int) template.CSS {
		if v < 0 {
			v = 0
		}
		if v > 100 {
			v = 100
		}
		return template.CSS(fmt.Sprintf("width: %d%%", v))
	},
	"dialogData": func(d dto.Dialog, path string) dialogView {
		return dialogView{Dialog: d, Close: path}
	},
	"multipart": func(d dto.Dialog) bool {
		for _, f := range d.Fields {
			if f.Type == "file" {
				return true
			}
		}
		return false
	},
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.New("portal").Funcs(templateFuncs).ParseFS(templateFS, "web/templates/*.tmpl")
}

// StaticFS serves the embedded stylesheet and images.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(staticFS, "web/static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
