package pdf

import (
	"strings"

	"github.com/gen2brain/go-fitz" // Lightweight PDF renderer

	"github.com/introlligent/screener/pkg/logx"
)

// ExtractText returns the visible text of every page, concatenated in page
// order. Extraction is best-effort: any decode or render failure is logged
// and yields "", which callers treat as "no text".
func ExtractText(pdfData []byte) string {
	doc, err := fitz.NewFromMemory(pdfData)
	if err != nil {
		logx.Warnf("Failed to open PDF: %v", err)
		return ""
	}
	defer doc.Close()

	var sb strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		text, err := doc.Text(i)
		if err != nil {
			logx.Warnf("Failed to read page %d: %v", i, err)
			return ""
		}
		sb.WriteString(text)
	}
	return sb.String()
}
