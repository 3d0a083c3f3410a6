package config

import (
	"github.com/ansel1/merry"
	"github.com/fpawel/molcal/internal/pkg/cfgfile"
	"github.com/fpawel/molcal/internal/stoich"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database      string           `yaml:"database"`
	StorageKey    string           `yaml:"storage_key"`
	ExportFile    string           `yaml:"export_file"`
	SheetName     string           `yaml:"sheet_name"`
	ResetOnEscape bool             `yaml:"reset_on_escape"`
	Precision     stoich.Precision `yaml:"precision"`
}

const maxPrecision = 12

func File() *cfgfile.F {
	return cfgfile.New("molcal.yaml", yaml.Marshal, yaml.Unmarshal)
}

// LoadOrDefault reads f, writing the default config first when f does not exist.
func LoadOrDefault(f *cfgfile.F) (Config, error) {
	if !f.Exists() {
		c := Default()
		if err := f.Set(c); err != nil {
			return c, err
		}
		return c, nil
	}
	c := Default()
	if err := f.Get(&c); err != nil {
		return Default(), err
	}
	c.setDefaults()
	if err := c.Validate(); err != nil {
		return Default(), merry.Prepend(err, f.Filename())
	}
	return c, nil
}

func Save(f *cfgfile.F, c Config) error {
	c.setDefaults()
	if err := c.Validate(); err != nil {
		return err
	}
	return f.Set(c)
}

func (c Config) Validate() error {
	for _, p := range []struct {
		name string
		v    int
	}{
		{"weight", c.Precision.Weight},
		{"volume", c.Precision.Volume},
		{"moles", c.Precision.Moles},
	} {
		if p.v < 0 || p.v > maxPrecision {
			return merry.Errorf("precision.%s: %d out of range [0, %d]", p.name, p.v, maxPrecision)
		}
	}
	return nil
}

func (c *Config) setDefaults() {
	d := Default()
	if c.Database == "" {
		c.Database = d.Database
	}
	if c.StorageKey == "" {
		c.StorageKey = d.StorageKey
	}
	if c.ExportFile == "" {
		c.ExportFile = d.ExportFile
	}
	if c.SheetName == "" {
		c.SheetName = d.SheetName
	}
}
