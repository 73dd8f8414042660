package main

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/noriah/wavescope"
	"github.com/noriah/wavescope/render"
)

// fileConfig is the YAML shape of a config file. Only fields present in
// the file override the flag values.
type fileConfig struct {
	Backend       *string  `yaml:"backend"`
	Device        *string  `yaml:"device"`
	SampleRate    *int     `yaml:"sample_rate"`
	WindowSeconds *int     `yaml:"window_seconds"`
	ChannelCount  *int     `yaml:"channels"`
	Palette       []uint16 `yaml:"palette"`
}

func loadFile(path string, cfg *wavescope.Config) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "failed to read config file")
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return errors.Wrap(err, "failed to parse config file")
	}

	if fc.Backend != nil {
		cfg.Backend = *fc.Backend
	}

	if fc.Device != nil {
		cfg.Device = *fc.Device
	}

	if fc.SampleRate != nil {
		cfg.SampleRate = *fc.SampleRate
	}

	if fc.WindowSeconds != nil {
		cfg.WindowSeconds = *fc.WindowSeconds
	}

	if fc.ChannelCount != nil {
		cfg.ChannelCount = *fc.ChannelCount
	}

	if len(fc.Palette) > 0 {
		cfg.Palette = make(render.Palette, len(fc.Palette))
		for idx, c := range fc.Palette {
			cfg.Palette[idx] = render.Color(c)
		}
	}

	return nil
}
