package main

import (
	"fmt"
	"image"
	"log"
	"math/rand"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"boxlens/pkg/css"
	"boxlens/pkg/element"
	"boxlens/pkg/geom"
	"boxlens/pkg/overlay"
	"boxlens/pkg/paint"
	"boxlens/pkg/script"
)

const (
	viewWidth  = 1024
	viewHeight = 700
)

func main() {
	cfgPath := "boxlens.toml"
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}
	cfg, err := overlay.LoadConfig(cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	root := demoTree()
	store := overlay.NewStore(cfg)

	a := app.New()
	w := a.NewWindow("boxlens")
	w.Resize(fyne.NewSize(1024, 768))

	canvasImg := canvas.NewImageFromImage(renderFrame(root, store))
	canvasImg.FillMode = canvas.ImageFillOriginal

	status := widget.NewLabel(`Type a predicate and press Enter, e.g. tag == "div" && depth > 0`)

	redraw := func() {
		canvasImg.Image = renderFrame(root, store)
		canvasImg.Refresh()
	}

	expr := widget.NewEntry()
	expr.SetPlaceHolder(`tag == "div" && depth > 0`)
	expr.OnSubmitted = func(src string) {
		m, err := script.Compile(src)
		if err != nil {
			status.SetText("Error: " + err.Error())
			return
		}
		n, err := store.AddMatching(root, m, overlay.PartAll)
		if err != nil {
			status.SetText("Error: " + err.Error())
			return
		}
		status.SetText(fmt.Sprintf("%d element(s) highlighted", n))
		redraw()
	}

	flashRepaint := widget.NewButton("Flash repaint", func() {
		store.FlashRepaint(randomRegion(root))
		redraw()
	})
	flashLayout := widget.NewButton("Flash layout", func() {
		store.FlashLayout(randomRegion(root))
		redraw()
	})
	clearBtn := widget.NewButton("Clear", func() {
		store.Clear()
		status.SetText("Overlays cleared")
		redraw()
	})

	buttons := container.NewHBox(flashRepaint, flashLayout, clearBtn)
	topBar := container.NewBorder(nil, nil, nil, buttons, expr)
	content := container.NewBorder(topBar, status, nil, nil, canvasImg)
	w.SetContent(content)

	// Keep focus on the predicate entry to prevent Tab freeze with no
	// other focusable widgets
	w.Canvas().Focus(expr)

	// Drive fade-out: overlays only decay when painted, so keep
	// repainting while any are live.
	go func() {
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			if store.Count() == 0 {
				continue
			}
			redraw()
		}
	}()

	w.ShowAndRun()
}

// renderFrame paints the base pass and the overlay pass into one image.
func renderFrame(root *element.Element, store *overlay.Store) image.Image {
	p := paint.NewGG(viewWidth, viewHeight)
	p.Clear(css.Color{R: 255, G: 255, B: 255, A: 1})
	drawBase(p, root)

	clip := geom.Rect{Width: viewWidth, Height: viewHeight}
	store.Paint(p, &clip)
	return p.Image()
}

// drawBase paints a plain rendition of the tree, backgrounds and border
// outlines, enough to see what the overlays annotate.
func drawBase(p paint.Painter, root *element.Element) {
	root.Walk(func(el *element.Element) bool {
		boxes := el.BoxRects()
		if bg, ok := el.Style.GetBackgroundColor(); ok {
			p.FillRect(boxes.Padding, bg)
		}
		if bw := el.Style.GetBorderWidth(); !bw.IsZero() {
			p.StrokeRect(boxes.Border, el.Style.GetBorderColor(), bw.Top)
		}
		return true
	})
}

// randomRegion picks some element's margin box, standing in for the
// damage rects a real host would report.
func randomRegion(root *element.Element) geom.Rect {
	var all []*element.Element
	root.Walk(func(el *element.Element) bool {
		all = append(all, el)
		return true
	})
	return all[rand.Intn(len(all))].PaintRect()
}

// demoTree hand-builds a small laid-out page. Content rects are final
// world-space coordinates, as they would be after the host's layout.
func demoTree() *element.Element {
	style := func(el *element.Element, props map[string]string) *element.Element {
		for k, v := range props {
			el.Style.Set(k, v)
		}
		return el
	}

	body := element.New("body")
	body.ID = "page"
	body.Content = geom.Rect{X: 32, Y: 32, Width: 880, Height: 560}
	style(body, map[string]string{
		"padding-top": "16px", "padding-right": "16px",
		"padding-bottom": "16px", "padding-left": "16px",
		"background-color": "#f4f4f4",
	})

	header := element.New("div")
	header.ID = "header"
	header.Content = geom.Rect{X: 64, Y: 64, Width: 816, Height: 80}
	style(header, map[string]string{
		"margin-bottom":    "12px",
		"padding-top":      "8px",
		"padding-bottom":   "8px",
		"border-top-width": "2px", "border-right-width": "2px",
		"border-bottom-width": "2px", "border-left-width": "2px",
		"border-color":     "navy",
		"background-color": "#dce6f6",
	})
	body.AppendChild(header)

	sidebar := element.New("div")
	sidebar.ID = "sidebar"
	sidebar.Content = geom.Rect{X: 72, Y: 196, Width: 200, Height: 360}
	style(sidebar, map[string]string{
		"margin-right":     "16px",
		"padding-top":      "12px",
		"padding-left":     "12px",
		"background-color": "#e8f0e0",
	})
	body.AppendChild(sidebar)

	article := element.New("div")
	article.ID = "article"
	article.Content = geom.Rect{X: 320, Y: 196, Width: 540, Height: 360}
	style(article, map[string]string{
		"padding-top": "12px", "padding-right": "12px",
		"padding-bottom": "12px", "padding-left": "12px",
		"border-top-width": "1px", "border-right-width": "1px",
		"border-bottom-width": "1px", "border-left-width": "1px",
		"border-color":     "gray",
		"background-color": "white",
	})
	body.AppendChild(article)

	para := element.New("p")
	para.Content = geom.Rect{X: 336, Y: 212, Width: 508, Height: 120}
	style(para, map[string]string{
		"margin-bottom": "16px",
	})
	article.AppendChild(para)

	return body
}
