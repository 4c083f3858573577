package cli

import (
	"fmt"
	"os"

	"squall/internal/devops"
	"squall/internal/report"
	"squall/pkg/squall"
	"squall/pkg/squall/utils"

	"gopkg.in/yaml.v3"
)

type RunCmd struct {
	Tests        []string `short:"t" help:"Run only the named tests"`
	Manifest     string   `help:"Path to a yaml manifest selecting tests to run" type:"path"`
	ProbeFailure bool     `help:"Append an intentionally failing probe test to the batch"`
}

// A yaml manifest pinning the exact set of tests to run.
type runManifest struct {
	Tests []string `yaml:"tests"`
}

func loadManifest(path string) (*runManifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	manifest := &runManifest{}
	if err := yaml.Unmarshal(raw, manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest '%s': %w", path, err)
	}
	return manifest, nil
}

func (c *RunCmd) selectionFilter() (*utils.NameFilter, error) {
	if c.Manifest == "" {
		return utils.NewNameFilter(c.Tests), nil
	}

	manifest, err := loadManifest(c.Manifest)
	if err != nil {
		return nil, err
	}

	// A manifest pins the batch exactly; an empty one selects nothing.
	filter := utils.NewNameFilter(manifest.Tests)
	filter.Pin()
	return filter, nil
}

func (c *RunCmd) Run(app *Context) error {
	filter, err := c.selectionFilter()
	if err != nil {
		return err
	}

	names := make([]string, 0, len(app.Tests))
	skipped := 0
	for _, t := range app.Tests {
		if !filter.Match(t.Name) {
			app.Log.Debugf("Skipping test '%s' (not selected)", t.Name)
			skipped++
			continue
		}
		squall.Register(t.Name, t.Fn)
		names = append(names, t.Name)
	}

	if c.ProbeFailure {
		squall.Register("failing probe", func() bool { return false })
		names = append(names, "failing probe")
	}

	if len(names) == 0 {
		return fmt.Errorf("no tests matched the selection")
	}

	if app.Global.AzureDevops && skipped > 0 {
		devops.LogWarning("%d test(s) skipped by selection", skipped)
	}

	var stats squall.Stats
	if app.Global.AzureDevops {
		devops.OpenGroup(fmt.Sprintf("squall batch %d", squall.Default().Batch()))
		stats = squall.Run()
		devops.CloseGroup()
	} else {
		stats = squall.Run()
	}

	report.PrintSeparator()
	report.PrintResultLine(stats.Total, len(stats.Failed), stats.Batch)

	if app.Global.AzureDevops {
		for _, idx := range stats.Failed {
			devops.LogError("Test %d (%s) failed in batch %d", idx, names[idx], stats.Batch)
		}
	}

	return stats.ExitError()
}
