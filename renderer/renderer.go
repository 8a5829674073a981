package renderer

import (
	"io"

	"github.com/cocosip/go-byte-codec/codec"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Renderer writes human readable tables
type Renderer struct {
	output io.Writer
}

// NewRenderer creates a renderer writing to output
func NewRenderer(output io.Writer) *Renderer {
	return &Renderer{
		output: output,
	}
}

// RenderTable writes a borderless table with a header row
func (r *Renderer) RenderTable(header []interface{}, records [][]interface{}) {
	tw := table.NewWriter()
	tw.SetOutputMirror(r.output)
	tw.SetStyle(table.Style{
		Name: "ByteCodec",
		Box: table.BoxStyle{
			MiddleVertical: "|",
			PaddingLeft:    " ",
			PaddingRight:   " ",
		},
		Options: table.Options{
			DoNotColorBordersAndSeparators: true,
			DrawBorder:                     false,
			SeparateColumns:                true,
		},
		Color:  table.ColorOptionsDefault,
		Format: table.FormatOptionsDefault,
		HTML:   table.DefaultHTMLOptions,
		Title:  table.TitleOptionsDefault,
	})
	tw.AppendHeader(toRow(header))
	for _, record := range records {
		tw.AppendRow(toRow(record))
	}
	tw.Render()
}

// RenderCodecs lists codecs with their extensions
func (r *Renderer) RenderCodecs(codecs []codec.Codec) {
	records := make([][]interface{}, 0, len(codecs))
	for _, c := range codecs {
		_, inspectable := c.(codec.Inspector)
		records = append(records, []interface{}{c.Name(), c.Extension(), inspectable})
	}
	r.RenderTable([]interface{}{"Name", "Extension", "Inspect"}, records)
}

// RenderFields renders block properties as a two-column table
func (r *Renderer) RenderFields(fields []codec.Field) {
	records := make([][]interface{}, 0, len(fields))
	for _, field := range fields {
		records = append(records, []interface{}{field.Name, field.Value})
	}
	r.RenderTable([]interface{}{"Field", "Value"}, records)
}

func toRow(values []interface{}) table.Row {
	row := make(table.Row, len(values))
	copy(row, values)
	return row
}
