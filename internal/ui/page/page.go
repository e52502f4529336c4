// Package page renders the bakery landing page markup that the interactive
// layer binds to.
package page

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/Its-donkey/sweet-treats/internal/ui/forms"
	"github.com/Its-donkey/sweet-treats/internal/ui/model"
)

//go:embed templates/*.tmpl static/styles.css
var files embed.FS

// Data is everything the home template needs.
type Data struct {
	SiteName       string
	Description    string
	StylesheetPath string
	WasmExecPath   string
	WasmPath       string
	CurrentYear    int
	MessageLimit   int
	Treat          model.Treat
	Menu           []model.MenuLink
	Specials       []model.DaySpecial
	FAQ            []model.FAQEntry
}

var loadTemplates = sync.OnceValues(func() (*template.Template, error) {
	funcs := template.FuncMap{
		"join":  strings.Join,
		"lower": strings.ToLower,
	}
	tmpl, err := template.New("home").Funcs(funcs).ParseFS(files, "templates/base.tmpl", "templates/home.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}
	return tmpl, nil
})

// Render writes the home page.
func Render(w io.Writer, data Data) error {
	tmpl, err := loadTemplates()
	if err != nil {
		return err
	}
	if err := tmpl.ExecuteTemplate(w, "home", data); err != nil {
		return fmt.Errorf("render home: %w", err)
	}
	return nil
}

// Styles returns the embedded stylesheet.
func Styles() []byte {
	data, err := files.ReadFile("static/styles.css")
	if err != nil {
		return nil
	}
	return data
}

// DefaultData returns the bakery's standard content.
func DefaultData() Data {
	return Data{
		SiteName:       "Sweet Treats Bakery",
		Description:    "Small-batch pastries, breads and cakes baked fresh every morning.",
		StylesheetPath: "/styles.css",
		WasmExecPath:   "/wasm_exec.js",
		WasmPath:       "/main.wasm",
		CurrentYear:    time.Now().Year(),
		MessageLimit:   forms.MaxMessageLength,
		Treat: model.Treat{
			Name:        "Honey Almond Croissant",
			Tagline:     "Flaky, buttery and finished with toasted almonds.",
			Ingredients: []string{"French butter", "Wildflower honey", "Toasted almonds", "Sea salt"},
			Price:       "$4.50",
		},
		Menu: []model.MenuLink{
			{Label: "Breads", Href: "#specials"},
			{Label: "Pastries", Href: "#featured"},
			{Label: "FAQ", Href: "#faq"},
			{Label: "Contact", Href: "#contact"},
		},
		Specials: []model.DaySpecial{
			{
				Day: "monday", Label: "Monday", Title: "Sourdough Monday",
				Description: "Start the week with our 36-hour country loaf.",
				Items:       []string{"Country sourdough", "Seeded rye", "Olive fougasse"},
			},
			{
				Day: "wednesday", Label: "Wednesday", Title: "Midweek Pastry",
				Description: "Laminated dough, all day long.",
				Items:       []string{"Pain au chocolat", "Almond croissant", "Kouign-amann"},
			},
			{
				Day: "friday", Label: "Friday", Title: "Cake Friday",
				Description: "Whole cakes and slices for the weekend.",
				Items:       []string{"Lemon drizzle", "Carrot cake", "Chocolate fudge"},
			},
			{
				Day: "saturday", Label: "Saturday", Title: "Weekend Brunch",
				Description: "Savory bakes until they sell out.",
				Items:       []string{"Cheese scones", "Spinach feta rolls", "Cinnamon buns"},
			},
		},
		FAQ: []model.FAQEntry{
			{Question: "Do you offer gluten-free options?", Answer: "Yes. Our almond flour cakes and macarons are gluten-free, baked on dedicated trays."},
			{Question: "Can I order a custom cake?", Answer: "Custom cakes need 72 hours notice. Send us the details through the contact form below."},
			{Question: "What time do you open?", Answer: "We open at 7am Tuesday to Sunday and close when the last loaf is gone."},
		},
	}
}
