package render

import (
	"github.com/chpraneeth994/data-analyzer/dataset"
	"github.com/chpraneeth994/data-analyzer/errors"
)

// Dashboard renders the standard chart set for a run: a line chart of the
// first numeric column, its histogram, and a per-category bar chart when a
// categorical column is available. Returns the written file paths.
func (r *Renderer) Dashboard(ds *dataset.Dataset) ([]string, error) {
	if ds == nil || ds.Empty() {
		return nil, errors.Wrap(errors.ErrRender, "dataset is empty")
	}

	var paths []string

	line, err := r.Render(ds, KindLine, "")
	if err != nil {
		return paths, err
	}
	paths = append(paths, line)

	hist, err := r.Render(ds, KindHistogram, "")
	if err != nil {
		return paths, err
	}
	paths = append(paths, hist)

	// The bar chart is optional: datasets without a categorical column
	// still get the line and histogram.
	if _, err := pickCategoryColumn(ds, ""); err == nil {
		bar, err := r.Render(ds, KindBar, "")
		if err != nil {
			return paths, err
		}
		paths = append(paths, bar)
	}

	return paths, nil
}
