package processor

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestDocx(t *testing.T, documentXML string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "template.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	entry, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = entry.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return path
}

func readDocumentXML(t *testing.T, docxPath string) string {
	t.Helper()

	r, err := zip.OpenReader(docxPath)
	require.NoError(t, err)
	defer r.Close()

	for _, file := range r.File {
		if file.Name == "word/document.xml" {
			rc, err := file.Open()
			require.NoError(t, err)
			defer rc.Close()
			var sb strings.Builder
			buf := make([]byte, 4096)
			for {
				n, err := rc.Read(buf)
				sb.Write(buf[:n])
				if err != nil {
					break
				}
			}
			return sb.String()
		}
	}
	t.Fatal("word/document.xml not found in output docx")
	return ""
}

func TestExtractPlaceholders(t *testing.T) {
	doc := `<w:document><w:body><w:p><w:r><w:t>{{first_name}} {{last_name}} {{first_name}}</w:t></w:r></w:p></w:body></w:document>`
	input := writeTestDocx(t, doc)

	dp := NewDocxProcessor(input, filepath.Join(t.TempDir(), "out.docx"))
	require.NoError(t, dp.UnzipDocx())
	defer dp.Cleanup()

	placeholders, err := dp.ExtractPlaceholders()
	require.NoError(t, err)
	assert.Equal(t, []string{"{{first_name}}", "{{last_name}}"}, placeholders)
}

func TestFindAndReplaceSimple(t *testing.T) {
	doc := `<w:document><w:body><w:p><w:r><w:t>สวัสดี {{first_name}}</w:t></w:r></w:p></w:body></w:document>`
	input := writeTestDocx(t, doc)
	output := filepath.Join(t.TempDir(), "out.docx")

	dp := NewDocxProcessor(input, output)
	require.NoError(t, dp.UnzipDocx())
	defer dp.Cleanup()

	require.NoError(t, dp.FindAndReplaceInDocument(map[string]string{
		"{{first_name}}": "สมชาย",
	}))
	require.NoError(t, dp.ReZipDocx())

	result := readDocumentXML(t, output)
	assert.Contains(t, result, "สวัสดี สมชาย")
	assert.NotContains(t, result, "{{first_name}}")
}

func TestFindAndReplaceSplitAcrossRuns(t *testing.T) {
	// Word splits "{{first_name}}" across three runs
	doc := `<w:document><w:body><w:p>` +
		`<w:r><w:t>{{first_</w:t></w:r>` +
		`<w:r><w:t>na</w:t></w:r>` +
		`<w:r><w:t>me}} end</w:t></w:r>` +
		`</w:p></w:body></w:document>`
	input := writeTestDocx(t, doc)
	output := filepath.Join(t.TempDir(), "out.docx")

	dp := NewDocxProcessor(input, output)
	require.NoError(t, dp.UnzipDocx())
	defer dp.Cleanup()

	require.NoError(t, dp.FindAndReplaceInDocument(map[string]string{
		"{{first_name}}": "สมชาย",
	}))
	require.NoError(t, dp.ReZipDocx())

	result := readDocumentXML(t, output)
	assert.Contains(t, result, "สมชาย")
	assert.NotContains(t, dpStripTags(result), "{{first_name}}")
	assert.Contains(t, result, " end")
}

func dpStripTags(content string) string {
	dp := &DocxProcessor{}
	return dp.removeXMLTags(content)
}

func TestReplaceEscapesXML(t *testing.T) {
	doc := `<w:document><w:body><w:p><w:r><w:t>{{note}}</w:t></w:r></w:p></w:body></w:document>`
	input := writeTestDocx(t, doc)
	output := filepath.Join(t.TempDir(), "out.docx")

	dp := NewDocxProcessor(input, output)
	require.NoError(t, dp.UnzipDocx())
	defer dp.Cleanup()

	require.NoError(t, dp.FindAndReplaceInDocument(map[string]string{
		"{{note}}": `a < b & "c"`,
	}))
	require.NoError(t, dp.ReZipDocx())

	result := readDocumentXML(t, output)
	assert.Contains(t, result, "a &lt; b &amp;")
	assert.NotContains(t, result, `<w:t>a < b`)
}

func TestDetectOrientation(t *testing.T) {
	landscape := `<w:document><w:body><w:sectPr><w:pgSz w:w="16838" w:h="11906" w:orient="landscape"/></w:sectPr></w:body></w:document>`
	input := writeTestDocx(t, landscape)

	dp := NewDocxProcessor(input, filepath.Join(t.TempDir(), "out.docx"))
	require.NoError(t, dp.UnzipDocx())
	defer dp.Cleanup()

	isLandscape, err := dp.DetectOrientation()
	require.NoError(t, err)
	assert.True(t, isLandscape)

	portrait := `<w:document><w:body><w:sectPr><w:pgSz w:w="11906" w:h="16838"/></w:sectPr></w:body></w:document>`
	input2 := writeTestDocx(t, portrait)

	dp2 := NewDocxProcessor(input2, filepath.Join(t.TempDir(), "out.docx"))
	require.NoError(t, dp2.UnzipDocx())
	defer dp2.Cleanup()

	isLandscape, err = dp2.DetectOrientation()
	require.NoError(t, err)
	assert.False(t, isLandscape)
}

func TestUnzipRejectsPathTraversal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evil.docx")
	f, err := os.Create(path)
	require.NoError(t, err)

	w := zip.NewWriter(f)
	entry, err := w.Create("../evil.txt")
	require.NoError(t, err)
	_, err = entry.Write([]byte("nope"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	dp := NewDocxProcessor(path, filepath.Join(t.TempDir(), "out.docx"))
	defer dp.Cleanup()

	err = dp.UnzipDocx()
	assert.Error(t, err)
}
