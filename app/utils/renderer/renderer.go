package renderer

import (
	"html/template"

	"shopkart/app/utils/format"

	"github.com/unrolled/render"
)

func New(dir string) *render.Render {
	return render.New(render.Options{
		Directory:  dir,
		Layout:     "layout",
		Extensions: []string{".html"},
		Funcs: []template.FuncMap{
			{
				"price": format.Price,
				"add":   func(a, b int) int { return a + b },
				"sub":   func(a, b int) int { return a - b },
			},
		},
	})
}
