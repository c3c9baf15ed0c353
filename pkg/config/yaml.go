package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/openvhal/vhal-go/pkg/model"
)

// yamlFile is the top-level YAML structure of a property-definition file.
type yamlFile struct {
	Properties []yamlProperty `yaml:"properties"`
}

// yamlProperty is one property declaration in YAML form.
type yamlProperty struct {
	Prop          int32               `yaml:"prop"`
	Access        string              `yaml:"access"`
	ChangeMode    string              `yaml:"changeMode"`
	ConfigArray   []int32             `yaml:"configArray"`
	MinSampleRate float32             `yaml:"minSampleRate"`
	MaxSampleRate float32             `yaml:"maxSampleRate"`
	Areas         []yamlArea          `yaml:"areas"`
	Initial       yamlValue           `yaml:"initial"`
	InitialAreas  map[int32]yamlValue `yaml:"initialAreas"`
}

// yamlArea declares per-area bounds.
type yamlArea struct {
	AreaID   int32   `yaml:"areaId"`
	MinInt32 int32   `yaml:"minInt32"`
	MaxInt32 int32   `yaml:"maxInt32"`
	MinInt64 int64   `yaml:"minInt64"`
	MaxInt64 int64   `yaml:"maxInt64"`
	MinFloat float32 `yaml:"minFloat"`
	MaxFloat float32 `yaml:"maxFloat"`
}

// yamlValue mirrors model.RawValue with YAML field names.
type yamlValue struct {
	Int32Values []int32   `yaml:"int32Values"`
	Int64Values []int64   `yaml:"int64Values"`
	FloatValues []float32 `yaml:"floatValues"`
	Bytes       []byte    `yaml:"bytes"`
	StringValue string    `yaml:"stringValue"`
}

func (v *yamlValue) raw() model.RawValue {
	return model.RawValue{
		Int32Values: v.Int32Values,
		Int64Values: v.Int64Values,
		FloatValues: v.FloatValues,
		Bytes:       v.Bytes,
		StringValue: v.StringValue,
	}
}

// Parse decodes property declarations from YAML. Used for vendor extensions
// and development overrides on top of Defaults.
func Parse(data []byte) ([]Declaration, error) {
	var f yamlFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: YAML parse error: %w", err)
	}
	if len(f.Properties) == 0 {
		return nil, fmt.Errorf("config: no properties declared")
	}

	decls := make([]Declaration, 0, len(f.Properties))
	for i, yp := range f.Properties {
		if yp.Prop == 0 {
			return nil, fmt.Errorf("config: property %d: missing prop ID", i)
		}
		access, err := parseAccess(yp.Access)
		if err != nil {
			return nil, fmt.Errorf("config: property 0x%x: %w", yp.Prop, err)
		}
		mode, err := parseChangeMode(yp.ChangeMode)
		if err != nil {
			return nil, fmt.Errorf("config: property 0x%x: %w", yp.Prop, err)
		}
		if len(yp.ConfigArray) > 0 && len(yp.ConfigArray) != model.ConfigArrayLen {
			return nil, fmt.Errorf("config: property 0x%x: configArray must have %d entries",
				yp.Prop, model.ConfigArrayLen)
		}
		if mode == model.ChangeModeContinuous &&
			(yp.MinSampleRate <= 0 || yp.MaxSampleRate < yp.MinSampleRate) {
			return nil, fmt.Errorf("config: property 0x%x: CONTINUOUS requires 0 < minSampleRate <= maxSampleRate",
				yp.Prop)
		}

		d := Declaration{
			Config: model.PropertyConfig{
				Prop:          yp.Prop,
				Access:        access,
				ChangeMode:    mode,
				ConfigArray:   yp.ConfigArray,
				MinSampleRate: yp.MinSampleRate,
				MaxSampleRate: yp.MaxSampleRate,
			},
			InitialValue: yp.Initial.raw(),
		}
		for _, a := range yp.Areas {
			d.Config.AreaConfigs = append(d.Config.AreaConfigs, model.AreaConfig{
				AreaID:        a.AreaID,
				MinInt32Value: a.MinInt32,
				MaxInt32Value: a.MaxInt32,
				MinInt64Value: a.MinInt64,
				MaxInt64Value: a.MaxInt64,
				MinFloatValue: a.MinFloat,
				MaxFloatValue: a.MaxFloat,
			})
		}
		if len(yp.InitialAreas) > 0 {
			d.InitialAreaValues = make(map[int32]model.RawValue, len(yp.InitialAreas))
			for area, v := range yp.InitialAreas {
				d.InitialAreaValues[area] = v.raw()
			}
		}
		decls = append(decls, d)
	}
	return decls, nil
}

// LoadFile reads and parses a YAML property-definition file.
func LoadFile(path string) ([]Declaration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

func parseAccess(s string) (model.Access, error) {
	switch s {
	case "READ":
		return model.AccessRead, nil
	case "WRITE":
		return model.AccessWrite, nil
	case "READ_WRITE", "":
		return model.AccessReadWrite, nil
	default:
		return 0, fmt.Errorf("unknown access mode %q", s)
	}
}

func parseChangeMode(s string) (model.ChangeMode, error) {
	switch s {
	case "STATIC":
		return model.ChangeModeStatic, nil
	case "CONTINUOUS":
		return model.ChangeModeContinuous, nil
	case "ON_CHANGE", "":
		return model.ChangeModeOnChange, nil
	default:
		return 0, fmt.Errorf("unknown change mode %q", s)
	}
}
