package view

import (
	"fmt"
	"strings"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// OutputPanel lists the rendered crops from the last process run.
type OutputPanel interface {
	SetItems(names []string)
}

type outputPanel struct {
	header *LabelWidget
	text   *TextWidget
}

// NewOutputPanel creates the header label and listing text widget at the
// given grid row.
func NewOutputPanel(row int) OutputPanel {
	header := Label(Txt("Output: <none>"), Borderwidth(1), Relief("ridge"))
	Grid(header, Row(row), Column(0), Columnspan(5), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	text := Text(Height(5), Width(60))
	Grid(text, Row(row+1), Column(0), Columnspan(5), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	return &outputPanel{header: header, text: text}
}

func (p *outputPanel) SetItems(names []string) {
	if p == nil || p.text == nil {
		return
	}
	if p.header != nil {
		if len(names) == 0 {
			p.header.Configure(Txt("Output: <none>"))
		} else {
			p.header.Configure(Txt(fmt.Sprintf("Output: %d crop(s)", len(names))))
		}
	}
	p.text.Delete("1.0", END)
	if len(names) > 0 {
		p.text.Insert("1.0", strings.Join(names, "\n"))
	}
}
