package dto

import "github.com/noah-isme/campushub/internal/models"

// PageQuery carries the per-request view state of a page.
type PageQuery struct {
	Path   string `form:"path" json:"path"`
	Tab    string `form:"tab" json:"tab,omitempty"`
	Dialog string `form:"dialog" json:"dialog,omitempty"`
	Item   string `form:"item" json:"item,omitempty"`
	Group  string `form:"group" json:"group,omitempty"`
	Search string `form:"q" json:"q,omitempty"`
	Date   string `form:"date" json:"date,omitempty"`
}

// Stat is a headline figure card.
type Stat struct {
	Label string      `json:"label"`
	Value string      `json:"value"`
	Hint  string      `json:"hint,omitempty"`
	Icon  string      `json:"icon,omitempty"`
	Tone  models.Tone `json:"tone,omitempty"`
}

// Field is a labelled value inside a card.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Icon  string `json:"icon,omitempty"`
}

// Progress renders a bar filled to Value percent.
type Progress struct {
	Label string      `json:"label,omitempty"`
	Value int         `json:"value"`
	Tone  models.Tone `json:"tone"`
}

// Alert is an inline callout inside a card.
type Alert struct {
	Title   string      `json:"title,omitempty"`
	Message string      `json:"message"`
	Tone    models.Tone `json:"tone"`
}

// Action is a button or link on a card or page. GET actions are links, POST
// actions submit to Href.
type Action struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Method   string `json:"method"`
	Href     string `json:"href"`
	Icon     string `json:"icon,omitempty"`
	Variant  string `json:"variant,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
}

// Card is the generic record presentation shared by every page.
type Card struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle,omitempty"`
	Body     string        `json:"body,omitempty"`
	Avatar   string        `json:"avatar,omitempty"`
	Image    string        `json:"image,omitempty"`
	Variant  string        `json:"variant,omitempty"`
	Badge    *models.Badge `json:"badge,omitempty"`
	Tags     []string      `json:"tags,omitempty"`
	Fields   []Field       `json:"fields,omitempty"`
	Progress *Progress     `json:"progress,omitempty"`
	Alert    *Alert        `json:"alert,omitempty"`
	Notes    []string      `json:"notes,omitempty"`
	Actions  []Action      `json:"actions,omitempty"`
}

// Cell is a table cell, optionally rendered as a badge.
type Cell struct {
	Text  string        `json:"text"`
	Badge *models.Badge `json:"badge,omitempty"`
}

// Table is a simple header plus rows grid.
type Table struct {
	Headers []string `json:"headers"`
	Rows    [][]Cell `json:"rows"`
}

// Section groups content under a heading.
type Section struct {
	Key     string   `json:"key"`
	Title   string   `json:"title"`
	Icon    string   `json:"icon,omitempty"`
	Fields  []Field  `json:"fields,omitempty"`
	Items   []string `json:"items,omitempty"`
	Cards   []Card   `json:"cards,omitempty"`
	Table   *Table   `json:"table,omitempty"`
	Actions []Action `json:"actions,omitempty"`
	Form    *Dialog  `json:"form,omitempty"`
	Empty   string   `json:"empty,omitempty"`
}

// Tab is one filter of a tabbed page.
type Tab struct {
	Key      string    `json:"key"`
	Label    string    `json:"label"`
	Count    int       `json:"count"`
	Actions  []Action  `json:"actions,omitempty"`
	Cards    []Card    `json:"cards,omitempty"`
	Sections []Section `json:"sections,omitempty"`
}

// FormField describes one input of a dialog.
type FormField struct {
	Name        string          `json:"name"`
	Label       string          `json:"label"`
	Type        string          `json:"type"`
	Required    bool            `json:"required,omitempty"`
	Placeholder string          `json:"placeholder,omitempty"`
	Value       string          `json:"value,omitempty"`
	Options     []models.Option `json:"options,omitempty"`
	Accept      string          `json:"accept,omitempty"`
	Hint        string          `json:"hint,omitempty"`
}

// Dialog is a modal form. TargetField names the hidden input that receives
// the record id the dialog was opened for.
type Dialog struct {
	Key         string      `json:"key"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Action      string      `json:"action"`
	Submit      string      `json:"submit"`
	Open        bool        `json:"open"`
	TargetField string      `json:"targetField,omitempty"`
	Fields      []FormField `json:"fields"`
	Notes       []string    `json:"notes,omitempty"`
}

// PageView is the rendered model of a routed page.
type PageView struct {
	Key         models.PageKey `json:"key"`
	Path        string         `json:"path"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Stats       []Stat         `json:"stats,omitempty"`
	Actions     []Action       `json:"actions,omitempty"`
	Tabs        []Tab          `json:"tabs,omitempty"`
	ActiveTab   string         `json:"activeTab,omitempty"`
	Sections    []Section      `json:"sections,omitempty"`
	Dialogs     []Dialog       `json:"dialogs,omitempty"`
	Data        interface{}    `json:"data,omitempty"`
}

// FindTab returns the tab with the given key.
func (p *PageView) FindTab(key string) (*Tab, bool) {
	for i := range p.Tabs {
		if p.Tabs[i].Key == key {
			return &p.Tabs[i], true
		}
	}
	return nil, false
}

// FindDialog returns the dialog with the given key.
func (p *PageView) FindDialog(key string) (*Dialog, bool) {
	for i := range p.Dialogs {
		if p.Dialogs[i].Key == key {
			return &p.Dialogs[i], true
		}
	}
	return nil, false
}

// Fill copies submitted values into the dialog's inputs.
func (d *Dialog) Fill(values map[string]string) {
	for i := range d.Fields {
		if v, ok := values[d.Fields[i].Name]; ok {
			d.Fields[i].Value = v
		}
	}
}
