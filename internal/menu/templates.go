package menu

import (
	"bytes"
	"fmt"
	"html/template"
)

// User-visible messages.
const (
	MsgNoCategories = "No smoothie categories found at the moment. Please check back later!"
	MsgMenuError    = "Sorry, we couldn't load the menu. Please try refreshing the page."
	MsgNoItems      = "No smoothies in this category yet!"
	MsgItemsError   = "Could not load smoothies."
)

// markupTemplates holds every fragment the pipeline produces.
const markupTemplates = `
{{define "message"}}<p class="text-center"{{if .Error}} style="color: red;"{{end}}>{{.Text}}</p>{{end}}

{{define "pane-message"}}<p class="text-center col-12"{{if .Error}} style="color: red;"{{end}}>{{.Text}}</p>{{end}}

{{define "loading"}}<p class="text-center col-12">Loading {{.}} smoothies...</p>{{end}}

{{define "tabs"}}<div class="category-tabs text-center mb-4"><ul class="nav nav-tabs justify-content-center" id="smoothiesTab" role="tablist">
{{range .Panes}}  <li class="nav-item" role="presentation">
    <button class="nav-link{{if .Selected}} active{{end}}" id="tab-{{.ID}}" data-toggle="tab" data-target="#content-{{.ID}}" type="button" role="tab" aria-controls="content-{{.ID}}" aria-selected="{{.Selected}}">{{.Name}}</button>
  </li>
{{end}}</ul></div>
<div class="tab-content" id="smoothiesTabContent">
{{range .Panes}}  <div class="tab-pane fade show{{if .Selected}} active{{end}}" id="content-{{.ID}}" role="tabpanel" aria-labelledby="tab-{{.ID}}">
    <div class="row clearfix" id="smoothies-for-{{.ID}}">{{.Content}}</div>
  </div>
{{end}}</div>{{end}}

{{define "groups"}}{{range .}}<div class="menu-column col-lg-6 col-md-12 col-sm-12"><div class="inner-column">{{range .}}{{template "item" .}}{{end}}</div></div>
{{end}}{{end}}

{{define "item"}}
<div class="menu-block">
  <div class="inner-box">
    <div class="menu-image">
      <a href="{{.Link}}"><img src="{{.ImageURL}}" alt="{{.Name}}" /></a>
    </div>
    <h6><a href="{{.Link}}">{{.Name}}</a></h6>
    <div class="title">{{.Description}}</div>
    <div class="price-box">
      <span class="price">{{.Price}}</span>
    </div>
  </div>
</div>
{{end}}
`

var tmpl = template.Must(template.New("menu").Parse(markupTemplates))

type messageView struct {
	Text  string
	Error bool
}

type paneView struct {
	ID       string
	Name     string
	Selected bool
	Content  template.HTML
}

type tabsView struct {
	Panes []paneView
}

type itemView struct {
	Name        string
	Description string
	ImageURL    string
	Link        string
	Price       string
}

func execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("executing %s template: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// mustExecute is for templates whose data cannot fail to render.
func mustExecute(name string, data any) template.HTML {
	out, err := execute(name, data)
	if err != nil {
		panic(err)
	}
	return out
}

var (
	noCategoriesHTML = mustExecute("message", messageView{Text: MsgNoCategories})
	menuErrorHTML    = mustExecute("message", messageView{Text: MsgMenuError, Error: true})
	noItemsHTML      = mustExecute("pane-message", messageView{Text: MsgNoItems})
	itemsErrorHTML   = mustExecute("pane-message", messageView{Text: MsgItemsError, Error: true})
)
