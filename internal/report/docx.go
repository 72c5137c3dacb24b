package report

import (
	"fmt"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// resultToDocx lays a result out as a short document: transcript, gloss,
// validation and the gesture list.
func resultToDocx(res *Result, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), res.Name, true, 16)
	addField(doc.AddParagraph(""), "Processed", res.ProcessedAt.Format("2006-01-02 15:04"))
	if res.Backend != "" {
		addField(doc.AddParagraph(""), "Transcriber", res.Backend)
	}

	addHeading(doc.AddParagraph(""), "Transcript")
	addPlain(doc.AddParagraph(""), res.Transcript)

	addHeading(doc.AddParagraph(""), "ASL Gloss")
	addStyledRun(doc.AddParagraph(""), res.Gloss, true, fontSize)

	if v := res.Validation; v != nil {
		addHeading(doc.AddParagraph(""), "Validation")
		if v.Valid {
			addPlain(doc.AddParagraph(""), "VALID")
		} else {
			addField(doc.AddParagraph(""), "Corrected", v.Gloss)
		}
	}
	if res.Language != "" {
		addField(doc.AddParagraph(""), "Language", res.Language)
	}
	if res.Tone != "" {
		addField(doc.AddParagraph(""), "Tone", res.Tone)
	}

	if len(res.Gestures) > 0 {
		addHeading(doc.AddParagraph(""), "Gestures")
		var words []string
		var current []string
		for _, g := range res.Gestures {
			if g.IsSpace {
				words = append(words, strings.Join(current, "-"))
				current = nil
				continue
			}
			current = append(current, g.Letter)
		}
		words = append(words, strings.Join(current, "-"))
		for i, w := range words {
			addPlain(doc.AddParagraph(""), fmt.Sprintf("%d. %s", i+1, w))
		}
	}

	return doc.SaveTo(outputPath)
}

func addHeading(p *docx.Paragraph, text string) {
	addStyledRun(p, text, true, 14)
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

func addPlain(p *docx.Paragraph, text string) {
	p.AddText(text).Font(fontName).Size(fontSize).Color("000000")
}

func addField(p *docx.Paragraph, label, value string) {
	p.AddText(label + ": ").Font(fontName).Size(fontSize).Color("000000").Bold(true)
	p.AddText(value).Font(fontName).Size(fontSize).Color("000000")
}
