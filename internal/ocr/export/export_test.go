package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/marksalpeter/visionocr/internal/ocr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readRows(t *testing.T, data []byte) [][]string {
	t.Helper()
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "invoice.png", "invoice"},
		{"double extension", "scan.final.jpeg", "scan.final"},
		{"no extension", "receipt", "receipt"},
		{"with directory", "sample_images/receipt1.jpg", "receipt1"},
		{"empty", "", DefaultBaseName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BaseName(tt.input))
		})
	}
}

func TestText_Export(t *testing.T) {
	artifact, err := Text{}.Export("Total: $42.00\nThank you", "invoice.png")
	require.NoError(t, err)

	assert.Equal(t, KindText, artifact.Kind)
	assert.Equal(t, "invoice_extracted_text.txt", artifact.Name)
	assert.Equal(t, "text/plain; charset=utf-8", artifact.ContentType)
	assert.Equal(t, []byte("Total: $42.00\nThank you"), artifact.Data)
}

func TestText_Export_DefaultName(t *testing.T) {
	artifact, err := Text{}.Export("hello", "")
	require.NoError(t, err)
	assert.Equal(t, "ocr_output_extracted_text.txt", artifact.Name)
}

func TestText_Export_KeepsWhitespace(t *testing.T) {
	text := "  leading\n\ntrailing  \n"
	artifact, err := Text{}.Export(text, "a.png")
	require.NoError(t, err)
	assert.Equal(t, text, string(artifact.Data))
}

func TestCSV_Export(t *testing.T) {
	artifact, err := CSV{}.Export("Total: $42.00\nThank you", "invoice.png")
	require.NoError(t, err)

	assert.Equal(t, KindCSV, artifact.Kind)
	assert.Equal(t, "invoice_extracted_lines.csv", artifact.Name)
	assert.Equal(t, "text/csv; charset=utf-8", artifact.ContentType)

	rows := readRows(t, artifact.Data)
	assert.Equal(t, [][]string{
		{"LineText"},
		{"Total: $42.00"},
		{"Thank you"},
	}, rows)
}

func TestCSV_Export_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"single line", "hello"},
		{"commas and quotes", `Name, "Qty", Price`},
		{"blank lines", "first\n\nthird"},
		{"trailing newline", "line one\nline two\n"},
		{"only newline", "\n"},
		{"unicode", "Jumlah: RM12.50\n谢谢"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			artifact, err := CSV{}.Export(tt.text, "x.png")
			require.NoError(t, err)

			rows := readRows(t, artifact.Data)
			require.Len(t, rows, len(ocr.Lines(tt.text))+1)
			assert.Equal(t, []string{CSVHeader}, rows[0])

			lines := make([]string, 0, len(rows)-1)
			for _, row := range rows[1:] {
				require.Len(t, row, 1)
				lines = append(lines, row[0])
			}
			assert.Equal(t, tt.text, ocr.JoinLines(lines))
		})
	}
}

func TestExport_InvalidEncoding(t *testing.T) {
	bad := string([]byte{0xff, 0xfe, 'a'})

	_, err := Text{}.Export(bad, "a.png")
	assert.ErrorIs(t, err, ErrInvalidEncoding)

	_, err = CSV{}.Export(bad, "a.png")
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestDefaults(t *testing.T) {
	exporters := Defaults()
	require.Len(t, exporters, 2)
	assert.Equal(t, KindText, exporters[0].Kind())
	assert.Equal(t, KindCSV, exporters[1].Kind())
}
