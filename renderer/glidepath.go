package renderer

import (
	"bytes"

	"github.com/etnz/rebalance"
	md "github.com/nao1215/markdown"
)

// GlidePathsMarkdown renders the fixed target-date table, default entry
// included.
func GlidePathsMarkdown() string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Glide Paths")
	doc.PlainText("The target-date token found in the positions file name selects the allocation.")

	rows := make([][]string, 0, len(rebalance.GlidePaths())+1)
	for _, g := range rebalance.GlidePaths() {
		rows = append(rows, []string{
			g.Key,
			g.Bonds.Percent().String(),
			g.International.Percent().String(),
			g.National.Percent().String(),
		})
	}
	d := rebalance.DefaultGlidePath
	rows = append(rows, []string{
		d.Key,
		d.Bonds.Percent().String(),
		d.International.Percent().String(),
		d.National.Percent().String(),
	})

	doc.Table(md.TableSet{
		Header: []string{"Key", "Bonds", "International", "National"},
		Rows:   rows,
	})

	return doc.String()
}
