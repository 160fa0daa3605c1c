package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"periph.io/x/host/v3"

	"panelctl/internal/catalog"
	"panelctl/internal/config"
	"panelctl/internal/driver"
	"panelctl/internal/dsi"
	"panelctl/internal/hw"
	appLog "panelctl/internal/log"
	"panelctl/internal/panel"
)

// flagConfig holds CLI flag values.
type flagConfig struct {
	configPath string
	once       bool
	dryRun     bool
	listModels bool
}

// modeSink collects what the panel publishes, standing in for the host
// compositor's connector.
type modeSink struct {
	modes []panel.TimingMode
	size  panel.Size
	edid  []byte
}

func (s *modeSink) UpdateEDID(block []byte)       { s.edid = block }
func (s *modeSink) SetPhysicalSize(sz panel.Size) { s.size = sz }

func (s *modeSink) AddMode(m panel.TimingMode) error {
	s.modes = append(s.modes, m)
	return nil
}

func main() {
	appLog.Info("panelctl starting", "version", "0.1.0-dev")

	flags := parseFlags()

	if flags.listModels {
		for _, c := range catalog.Compatibles() {
			appLog.Info("known model", "compatible", c)
		}
		return
	}

	conf, err := config.Load(flags.configPath)
	if err != nil {
		appLog.Error("failed to load config", err, "config_path", flags.configPath)
		os.Exit(1)
	}
	appLog.SetLevel(appLog.Level(conf.LogLevel))

	appLog.Info("effective config",
		"compatible", conf.Panel.Compatible,
		"supply_gpio", conf.Panel.SupplyGPIO,
		"enable_gpio", conf.Panel.EnableGPIO,
		"enable_active_low", conf.Panel.EnableActiveLow,
		"backlight", conf.Panel.Backlight,
		"ident_bus", conf.Panel.IdentBus,
		"strict_init", conf.StrictInit,
		"dry_run", flags.dryRun,
		"once", flags.once,
	)

	if _, err := host.Init(); err != nil {
		appLog.Error("periph host init failed", err)
		os.Exit(1)
	}

	// Root context with cancellation on SIGINT/SIGTERM.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		appLog.Info("signal received, shutting down", "signal", sig.String())
		cancel()
	}()

	policy := dsi.Lenient
	if conf.StrictInit {
		policy = dsi.Strict
	}
	reg, err := driver.Register(driver.Options{WritePolicy: policy})
	if err != nil {
		appLog.Error("driver registration failed", err)
		os.Exit(1)
	}
	defer reg.Unregister()

	res := hw.NewResources(hw.Config{
		SupplyGPIO:      conf.Panel.SupplyGPIO,
		EnableGPIO:      conf.Panel.EnableGPIO,
		EnableActiveLow: conf.Panel.EnableActiveLow,
		BacklightDir:    conf.Panel.Backlight,
		IdentBusRef:     conf.Panel.IdentBus,
	})

	// No userspace transport exists for the serial command bus; dry-run
	// substitutes a recording transport so bring-up can be exercised off
	// target.
	var tr dsi.Transport
	if flags.dryRun {
		tr = &dsi.Recorder{}
	}

	binding, err := reg.Probe(conf.Panel.Compatible, res, tr)
	if err != nil {
		appLog.Error("probe failed", err, "compatible", conf.Panel.Compatible)
		os.Exit(1)
	}

	sink := &modeSink{}
	num := binding.Panel.Modes(ctx, sink)
	appLog.Info("modes resolved", "count", num,
		"width_mm", sink.size.WidthMM, "height_mm", sink.size.HeightMM)
	for _, m := range sink.modes {
		appLog.Info("mode", "name", m.Label, "clock_khz", m.Clock)
	}

	if err := binding.Panel.Enable(); err != nil {
		appLog.Error("enable failed", err, "binding", binding.ID)
		reg.Remove(binding)
		os.Exit(1)
	}

	if !flags.once {
		<-ctx.Done()
	}

	reg.Shutdown(binding)
	reg.Remove(binding)

	// Give the rail a moment to discharge before exiting.
	time.Sleep(100 * time.Millisecond)
	appLog.Info("panelctl exiting")
}

func parseFlags() flagConfig {
	var cfg flagConfig

	flag.StringVar(&cfg.configPath, "config", "/etc/panelctl/config.yaml", "Path to config file")
	flag.BoolVar(&cfg.once, "once", false, "Bind, enable, dump modes, then exit")
	flag.BoolVar(&cfg.dryRun, "dry-run", false, "Use a recording command transport; do not touch the serial bus")
	flag.BoolVar(&cfg.listModels, "models", false, "List known panel models and exit")

	flag.Parse()

	return cfg
}
