// Package document renders the printable service order: a Markdown body
// converted to a standalone HTML page written to the documents directory.
package document

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"

	"repairshop/internal/core/ports"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var _ ports.DocumentRenderer = (*HTMLRenderer)(nil)

const maxNamePart = 120

var (
	unsafeChars = regexp.MustCompile(`[^\p{L}\p{N}_\s\-.]`)
	spaces      = regexp.MustCompile(`\s+`)
)

// HTMLRenderer writes one HTML file per order, replacing earlier renders of
// the same order.
type HTMLRenderer struct {
	dir      string
	markdown goldmark.Markdown
	body     *template.Template
}

func NewHTMLRenderer(dir string) (*HTMLRenderer, error) {
	body, err := template.New("order").Funcs(template.FuncMap{"cell": cell}).Parse(orderTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse order template: %w", err)
	}
	return &HTMLRenderer{
		dir:      dir,
		markdown: goldmark.New(goldmark.WithExtensions(extension.Table)),
		body:     body,
	}, nil
}

// Render writes the document and returns its path.
func (r *HTMLRenderer) Render(ctx context.Context, doc ports.OrderDocument) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := r.HTML(doc)
	if err != nil {
		return "", err
	}

	if err = os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("create documents dir: %w", err)
	}
	path := filepath.Join(r.dir, FileName(doc))
	if err = writeFileAtomic(path, page); err != nil {
		return "", err
	}
	return path, nil
}

// Markdown renders the document body.
func (r *HTMLRenderer) Markdown(doc ports.OrderDocument) ([]byte, error) {
	var md bytes.Buffer
	if err := r.body.Execute(&md, doc); err != nil {
		return nil, fmt.Errorf("render order markdown: %w", err)
	}
	return md.Bytes(), nil
}

// HTML renders the complete page without touching the filesystem.
func (r *HTMLRenderer) HTML(doc ports.OrderDocument) ([]byte, error) {
	md, err := r.Markdown(doc)
	if err != nil {
		return nil, err
	}

	var html bytes.Buffer
	html.WriteString(pageHeader(doc.Number))
	if err = r.markdown.Convert(md, &html); err != nil {
		return nil, fmt.Errorf("convert order markdown: %w", err)
	}
	fmt.Fprintf(&html, "<p class=\"generated\">Generado: %s</p>\n", doc.GeneratedAt.Format("2006-01-02 15:04"))
	html.WriteString(pageFooter)
	return html.Bytes(), nil
}

// FileName is Orden_<number>_<client>_<equipment>.html. The contact name and
// the typed equipment text win over the linked records.
func FileName(doc ports.OrderDocument) string {
	return fmt.Sprintf("Orden_%d_%s_%s.html",
		doc.Number,
		safeNamePart(firstNonEmpty(doc.ContactName, doc.ClientName)),
		safeNamePart(firstNonEmpty(doc.EquipmentText, doc.EquipmentDescription)),
	)
}

func safeNamePart(s string) string {
	s = unsafeChars.ReplaceAllString(strings.TrimSpace(s), "")
	s = spaces.ReplaceAllString(s, "_")
	if s == "" {
		return "orden"
	}
	if r := []rune(s); len(r) > maxNamePart {
		s = string(r[:maxNamePart])
	}
	return s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// cell makes a value safe inside a Markdown table cell.
func cell(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.ReplaceAll(s, "|", `\|`)
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".orden-*")
	if err != nil {
		return fmt.Errorf("create temp document: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write document: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close document: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("move document into place: %w", err)
	}
	return nil
}

func pageHeader(number int64) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>Orden %d</title>
<style>
body { font-family: Calibri, Arial, sans-serif; font-size: 11pt; margin: 2cm; }
table { border-collapse: collapse; width: 100%%; }
td, th { border: 1px solid #999; padding: 4px 6px; }
h1 { text-align: center; font-size: 16pt; }
.generated { text-align: right; font-style: italic; font-size: 9pt; }
</style>
</head>
<body>
`, number)
}

const pageFooter = "</body>\n</html>\n"

const orderTemplate = `# ORDEN DE SERVICIO

| | | | |
|---|---|---|---|
| **N°** | {{.Number}} | **Estado** | {{cell .Status}} |
| **Fecha ingreso** | {{.IntakeDate}} | **Hora ingreso** | {{.IntakeTime}} |
| **Cliente / Contacto** | {{cell (or .ContactName .ClientName)}} | **Teléfono** | {{cell (or .ContactPhone .ClientPhone)}} |
| **Equipo** | {{cell (or .EquipmentText .EquipmentDescription)}} | **S/N** | {{cell (or .SerialText .EquipmentSerial)}} |
| **Fecha salida** | {{.ExitDate}} | **Hora salida** | {{.ExitTime}} |
| **Fecha regreso** | {{.ReturnDate}} | **Hora regreso** | {{.ReturnTime}} |
| **Importe** | {{.Amount}} | **Accesorios** | {{cell .Accessories}} |

**Falla**

{{cell .Fault}}

**Reparación**

{{cell .Repair}}

**Repuestos**

{{cell .SpareParts}}

**Observaciones**

{{cell .Notes}}
{{- if .SuspendReason}}

**Motivo de suspensión**

{{cell .SuspendReason}}
{{- end}}
{{- if or .PickupDate .PickupTime}}

**Retiro**

{{.PickupDate}} {{.PickupTime}}
{{- end}}

Firma / Aclaración: \_\_\_\_\_\_\_\_\_\_\_\_\_\_\_\_\_\_\_\_\_\_\_\_\_\_\_\_\_\_\_\_

DNI: \_\_\_\_\_\_\_\_\_\_\_\_\_\_\_\_\_\_\_\_\_\_   Fecha: \_\_\_\_/\_\_\_\_/\_\_\_\_\_\_
`
