// Package scenario loads a complete planning snapshot from a scenario
// directory: a scenario.yaml manifest naming the CSV data files plus
// the plan identity and horizon.
package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	csvrepo "github.com/RaunaqR66996/finplan/pkg/infrastructure/repositories/csv"
	"github.com/RaunaqR66996/finplan/pkg/planner"
)

// ManifestName is the manifest file expected in a scenario directory.
const ManifestName = "scenario.yaml"

// Files names the CSV data files of a scenario, relative to the
// scenario directory.
type Files struct {
	Items        string `yaml:"items"`
	BOMs         string `yaml:"boms"`
	Routings     string `yaml:"routings"`
	WorkCenters  string `yaml:"work_centers"`
	Calendars    string `yaml:"calendars"`
	Inventory    string `yaml:"inventory"`
	Zones        string `yaml:"zones"`
	TransitTimes string `yaml:"transit_times"`
	Orders       string `yaml:"orders"`
}

// Manifest is the parsed scenario.yaml.
type Manifest struct {
	OrgID        string `yaml:"org_id"`
	PlanID       string `yaml:"plan_id"`
	HorizonStart string `yaml:"horizon_start"`
	HorizonDays  int    `yaml:"horizon_days"`
	Files        Files  `yaml:"files"`
}

// LoadManifest reads and validates scenario.yaml from dir.
func LoadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if manifest.PlanID == "" {
		return nil, fmt.Errorf("%s: plan_id is required", path)
	}
	if manifest.HorizonStart != "" {
		if _, err := time.Parse("2006-01-02", manifest.HorizonStart); err != nil {
			return nil, fmt.Errorf("%s: invalid horizon_start %q (expected YYYY-MM-DD)", path, manifest.HorizonStart)
		}
	}
	return &manifest, nil
}

// Load reads the manifest and every referenced CSV file into a planner
// input snapshot. Files left blank in the manifest load as empty
// slices; only orders, items and calendars are required.
func Load(dir string) (planner.Input, error) {
	manifest, err := LoadManifest(dir)
	if err != nil {
		return planner.Input{}, err
	}

	in := planner.Input{
		OrgID:       manifest.OrgID,
		PlanID:      manifest.PlanID,
		HorizonDays: manifest.HorizonDays,
	}
	if manifest.HorizonStart != "" {
		in.HorizonStart, _ = time.Parse("2006-01-02", manifest.HorizonStart)
	}

	loader := csvrepo.NewLoader()
	resolve := func(name string) string { return filepath.Join(dir, name) }

	if manifest.Files.Items == "" {
		return planner.Input{}, fmt.Errorf("scenario %s: files.items is required", dir)
	}
	if in.Items, err = loader.LoadItems(resolve(manifest.Files.Items)); err != nil {
		return planner.Input{}, err
	}

	if manifest.Files.Orders == "" {
		return planner.Input{}, fmt.Errorf("scenario %s: files.orders is required", dir)
	}
	if in.Orders, err = loader.LoadOrders(resolve(manifest.Files.Orders)); err != nil {
		return planner.Input{}, err
	}

	if manifest.Files.Calendars == "" {
		return planner.Input{}, fmt.Errorf("scenario %s: files.calendars is required", dir)
	}
	if in.Calendars, err = loader.LoadCalendars(resolve(manifest.Files.Calendars)); err != nil {
		return planner.Input{}, err
	}

	if manifest.Files.BOMs != "" {
		if in.BOMLines, err = loader.LoadBOMLines(resolve(manifest.Files.BOMs)); err != nil {
			return planner.Input{}, err
		}
	}
	if manifest.Files.Routings != "" {
		if in.Routings, err = loader.LoadRoutings(resolve(manifest.Files.Routings)); err != nil {
			return planner.Input{}, err
		}
	}
	if manifest.Files.WorkCenters != "" {
		if in.WorkCenters, err = loader.LoadWorkCenters(resolve(manifest.Files.WorkCenters)); err != nil {
			return planner.Input{}, err
		}
	}
	if manifest.Files.Inventory != "" {
		if in.Inventory, err = loader.LoadInventory(resolve(manifest.Files.Inventory)); err != nil {
			return planner.Input{}, err
		}
	}
	if manifest.Files.Zones != "" {
		if in.Zones, err = loader.LoadZones(resolve(manifest.Files.Zones)); err != nil {
			return planner.Input{}, err
		}
	}
	if manifest.Files.TransitTimes != "" {
		if in.TransitTimes, err = loader.LoadTransitTimes(resolve(manifest.Files.TransitTimes)); err != nil {
			return planner.Input{}, err
		}
	}

	return in, nil
}
