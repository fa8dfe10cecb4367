package main

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/pie"
	"github.com/gogpu/pie/internal/sqlsource"
	"github.com/gogpu/pie/surface"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const chartYAML = `
options:
  width: 200
  height: 100
data:
  - {key: A, value: 1}
  - {key: B, value: 3}
`

func TestRunSVG(t *testing.T) {
	in := writeFile(t, "chart.yaml", chartYAML)
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-in", in, "-mode", "donut"}, &stdout, &stderr))

	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "<svg"), out)
	assert.Contains(t, out, `viewBox="0 0 200 100"`)
	assert.Contains(t, out, `>B: 3</text>`)
}

func TestRunImage(t *testing.T) {
	in := writeFile(t, "chart.csv", "key,value\nA,1\nB,2\n")
	out := filepath.Join(t.TempDir(), "chart.png")
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(),
		[]string{"-in", in, "-format", "image", "-width", "120", "-height", "80", "-out", out},
		&stdout, &stderr))
	assert.Zero(t, stdout.Len())

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 120, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())
}

func TestRunSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shop.db")
	db, err := sqlsource.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE orders (region TEXT, total REAL)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO orders VALUES ('east', 4), ('west', 6)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), []string{
		"-db", "sqlite", "-dsn", path,
		"-query", "SELECT region, SUM(total) FROM orders GROUP BY region",
	}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), `keyval="east"`)
	assert.Contains(t, stdout.String(), `keyval="west"`)
}

func TestRunActivate(t *testing.T) {
	in := writeFile(t, "chart.json", `{"data":[{"key":"A","value":1.5},{"key":"B","value":2}]}`)
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-in", in, "-activate", "A"}, &stdout, &stderr))

	assert.Contains(t, stderr.String(), `{"key":"A","value":1.5}`)
	assert.Contains(t, stdout.String(), "cursor: pointer")
}

func TestRunErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	ctx := context.Background()

	assert.Error(t, run(ctx, nil, &stdout, &stderr))
	assert.Error(t, run(ctx, []string{"-in", "a.yaml", "-db", "sqlite"}, &stdout, &stderr))
	assert.Error(t, run(ctx, []string{"-db", "sqlite", "-watch"}, &stdout, &stderr))
	assert.Error(t, run(ctx, []string{"-in", "a.yaml", "-mode", "ring"}, &stdout, &stderr))

	in := writeFile(t, "chart.yaml", chartYAML)
	var notFound *surface.BackendNotFoundError
	assert.ErrorAs(t, run(ctx, []string{"-in", in, "-format", "pdf"}, &stdout, &stderr), &notFound)

	bad := writeFile(t, "bad.yaml", "data:\n  - {key: A, value: -1}\n")
	assert.ErrorIs(t, run(ctx, []string{"-in", bad}, &stdout, &stderr), pie.ErrInvalidValue)
}
