// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package devices

import (
	_ "embed"
	"slices"
	"sync"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/gomlx/offload/ops"
)

// The support matrices are data, not code: they live in an embedded YAML file
// and are parsed once into immutable Capabilities values. There is no
// process-wide mutable registry -- see offload's design notes.

//go:embed support_tables.yaml
var supportTablesYAML []byte

type yamlDeviceTable struct {
	DynamicShapes bool     `yaml:"dynamic_shapes"`
	DTypes        []string `yaml:"dtypes"`
	Operations    []string `yaml:"operations"`
}

type yamlTables struct {
	Devices map[string]yamlDeviceTable `yaml:"devices"`
}

var (
	loadTablesOnce sync.Once
	loadedTables   map[string]Capabilities
	loadTablesErr  error
)

func loadTables() (map[string]Capabilities, error) {
	loadTablesOnce.Do(func() {
		var parsed yamlTables
		if err := yaml.Unmarshal(supportTablesYAML, &parsed); err != nil {
			loadTablesErr = errors.Wrap(err, "failed to parse embedded device support tables")
			return
		}
		tables := make(map[string]Capabilities, len(parsed.Devices))
		for descriptor, table := range parsed.Devices {
			caps := Capabilities{
				Operations:            make(map[ops.OpType]bool, len(table.Operations)),
				DTypes:                make(map[dtypes.DType]bool, len(table.DTypes)),
				SupportsDynamicShapes: table.DynamicShapes,
			}
			for _, name := range table.Operations {
				opType, err := ops.OpTypeString(name)
				if err != nil {
					loadTablesErr = errors.Wrapf(err, "device %q support table lists unknown operation %q", descriptor, name)
					return
				}
				caps.Operations[opType] = true
			}
			for _, name := range table.DTypes {
				dtype, err := dtypes.DTypeString(name)
				if err != nil {
					loadTablesErr = errors.Wrapf(err, "device %q support table lists unknown dtype %q", descriptor, name)
					return
				}
				caps.DTypes[dtype] = true
			}
			tables[descriptor] = caps
		}
		loadedTables = tables
	})
	return loadedTables, loadTablesErr
}

func capabilitiesFor(d Device) (Capabilities, error) {
	tables, err := loadTables()
	if err != nil {
		return Capabilities{}, err
	}
	caps, found := tables[d.String()]
	if !found {
		return Capabilities{}, errors.Errorf("no support matrix for device %q -- supported configurations are %v", d, SupportedDescriptors())
	}
	return caps, nil
}

// SupportedDescriptors returns the descriptors of all device configurations
// with a support matrix, sorted.
func SupportedDescriptors() []string {
	tables, err := loadTables()
	if err != nil {
		return nil
	}
	descriptors := make([]string, 0, len(tables))
	for descriptor := range tables {
		descriptors = append(descriptors, descriptor)
	}
	slices.Sort(descriptors)
	return descriptors
}
