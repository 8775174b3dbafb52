package exposition

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"givenergyexporter/pkg/register"
)

const metricPrefix = "givenergy_"

// Render writes the metrics in Prometheus text exposition form. Numeric
// readings get a TYPE line and a sample line named after the register
// plus its unit suffix; textual readings (hex codes, serial numbers)
// cannot be samples, so they go out as comments. The caller controls
// the metric order; the collector already sorts by name.
func Render(w io.Writer, metrics []register.Metric, at time.Time) error {
	buf := bufio.NewWriter(w)
	fmt.Fprintf(buf, "# givenergy-exporter report %s\n", at.Format(time.RFC3339))
	for _, m := range metrics {
		name := metricPrefix + m.Name
		if m.Unit != register.Scalar {
			name += "_" + string(m.Unit)
		}
		switch v := m.Value.(type) {
		case float64:
			fmt.Fprintf(buf, "# TYPE %s %s\n", name, m.Prom)
			fmt.Fprintf(buf, "%s %s\n", name, strconv.FormatFloat(v, 'g', -1, 64))
		case string:
			fmt.Fprintf(buf, "# COMMENT %s %s\n", name, v)
		default:
			return errors.Errorf("metric %q has unsupported value type %T", m.Name, m.Value)
		}
	}
	return buf.Flush()
}

// WriteFile renders to a temporary file next to path and renames it
// into place, so a scraper reading the file never sees a half written
// report.
func WriteFile(path string, metrics []register.Metric) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrapf(err, "create temporary report in %q", dir)
	}
	defer os.Remove(tmp.Name())

	if err := Render(tmp, metrics, time.Now()); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "chmod report")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close report")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "rename report into %q", path)
	}
	klog.V(3).InfoS("Report written", "path", path, "metrics", len(metrics))
	return nil
}
