// Package config is the injected configuration source for a property store:
// a static table of stock vehicle properties with their initial values, plus
// a YAML loader for vendor extensions and overrides.
package config

import (
	"github.com/openvhal/vhal-go/pkg/model"
	"github.com/openvhal/vhal-go/pkg/store"
)

// Declaration pairs a property config with its initial value(s).
type Declaration struct {
	// Config is the property declaration.
	Config model.PropertyConfig

	// InitialValue is the boot value. For zoned properties without explicit
	// per-area values it is applied to every declared area.
	InitialValue model.RawValue

	// InitialAreaValues overrides InitialValue for specific areas.
	InitialAreaValues map[int32]model.RawValue
}

// Apply registers every declaration into the store with its initial values.
func Apply(s *store.Store, decls []Declaration) {
	for i := range decls {
		d := &decls[i]
		var initial []*model.PropertyValue

		switch {
		case len(d.InitialAreaValues) > 0:
			for area, raw := range d.InitialAreaValues {
				initial = append(initial, &model.PropertyValue{
					Prop:   d.Config.Prop,
					AreaID: area,
					Value:  raw.Clone(),
				})
			}
		case len(d.Config.AreaConfigs) > 0 && !model.IsGlobal(d.Config.Prop):
			for _, ac := range d.Config.AreaConfigs {
				initial = append(initial, &model.PropertyValue{
					Prop:   d.Config.Prop,
					AreaID: ac.AreaID,
					Value:  d.InitialValue.Clone(),
				})
			}
		default:
			initial = append(initial, &model.PropertyValue{
				Prop:  d.Config.Prop,
				Value: d.InitialValue.Clone(),
			})
		}

		s.RegisterProperty(&d.Config, initial...)
	}
}
