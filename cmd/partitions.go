package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/santiagoacosta2/Simulador-Sistemas-Operativos/sim"
)

// Define structs for YAML
type partitionLayoutFile struct {
	Partitions []partitionEntry `yaml:"partitions"`
	DegreeMax  int              `yaml:"degree_max"`
}

type partitionEntry struct {
	ID       string `yaml:"id"`
	Base     int64  `yaml:"base"`
	Size     int64  `yaml:"size"`
	Reserved bool   `yaml:"reserved"`
}

// LoadPartitionLayout reads a YAML partition layout. An empty path selects
// the built-in default layout with a zero degree (caller applies its own
// default). Returned specs preserve file order, which is also the Best-Fit
// tie-break order.
func LoadPartitionLayout(path string) ([]sim.PartitionSpec, int, error) {
	if path == "" {
		return sim.DefaultPartitionSpecs(), 0, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}

	var layout partitionLayoutFile
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return nil, 0, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(layout.Partitions) == 0 {
		return nil, 0, fmt.Errorf("%s: no partitions declared", path)
	}

	specs := make([]sim.PartitionSpec, len(layout.Partitions))
	for i, entry := range layout.Partitions {
		specs[i] = sim.PartitionSpec{
			ID:       entry.ID,
			Base:     entry.Base,
			Size:     entry.Size,
			Reserved: entry.Reserved,
		}
	}
	return specs, layout.DegreeMax, nil
}
