package main

import (
	"fmt"
	"log"

	"github.com/noriah/wavescope"
	"github.com/noriah/wavescope/producer"

	_ "github.com/noriah/wavescope/producer/parec"
	_ "github.com/noriah/wavescope/producer/sine"

	"github.com/integrii/flaggy"
)

// AppName is the app name
const AppName = "wavescope"

// AppDesc is the app description
const AppDesc = "live multi-channel waveform scope for your terminal"

// AppSite is the app website
const AppSite = "https://github.com/noriah/wavescope"

var version = "unknown"

func main() {
	log.SetFlags(0)

	cfg := wavescope.NewZeroConfig()
	cfg.Backend = producer.DefaultBackend()

	if doFlags(&cfg) {
		return
	}

	chk(wavescope.Run(cfg), "failed to run wavescope")
}

func doFlags(cfg *wavescope.Config) bool {

	parser := flaggy.NewParser(AppName)
	parser.Description = AppDesc
	parser.AdditionalHelpPrepend = AppSite
	parser.Version = version

	listBackendsCmd := flaggy.Subcommand{
		Name:                 "list-backends",
		ShortName:            "lb",
		Description:          "list all supported producer backends",
		AdditionalHelpAppend: "\nuse the full name after the '-'",
	}

	parser.AttachSubcommand(&listBackendsCmd, 1)

	listDevicesCmd := flaggy.Subcommand{
		Name:                 "list-devices",
		ShortName:            "ld",
		Description:          "list all devices for a backend",
		AdditionalHelpAppend: "\nuse the full name after the '-'",
	}

	parser.AttachSubcommand(&listDevicesCmd, 1)

	var configPath string

	parser.String(&configPath, "c", "config", "path to a YAML config file")
	parser.String(&cfg.Backend, "b", "backend", "backend name")
	parser.String(&cfg.Device, "d", "device", "device name")
	parser.Int(&cfg.SampleRate, "r", "rate", "samples per channel per second")
	parser.Int(&cfg.WindowSeconds, "w", "window", "seconds of history to draw")
	parser.Int(&cfg.ChannelCount, "ch", "channels", "channel count")

	chk(parser.Parse(), "failed to parse arguments")

	if configPath != "" {
		chk(loadFile(configPath, cfg), "failed to load config file")
	}

	switch {
	case listBackendsCmd.Used:
		for _, backend := range producer.Backends {
			fmt.Printf("- %s\n", backend.Name)
		}

		return true

	case listDevicesCmd.Used:
		backend, err := producer.InitBackend(cfg.Backend)
		chk(err, "failed to init backend")

		devices, err := backend.Devices()
		chk(err, "failed to get devices")

		// We don't really need the default device to be indicated.
		defaultDevice, _ := backend.DefaultDevice()

		fmt.Printf("all devices for %q backend. '*' marks default\n", cfg.Backend)

		for idx := range devices {
			star := ' '
			if defaultDevice != nil && devices[idx].String() == defaultDevice.String() {
				star = '*'
			}

			fmt.Printf("- %v %c\n", devices[idx], star)
		}

		return true
	}

	return false
}

func chk(err error, wrap string) {
	if err != nil {
		log.Fatalln(wrap+": ", err)
	}
}
