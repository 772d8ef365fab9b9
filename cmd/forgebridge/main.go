// Command forgebridge serves the counter bench over Modbus TCP: each poll
// cycle reads Control0 from the endpoint, clocks the bench once, and writes
// the status registers back.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/forgehdl/forge/internal/bridge"
	"github.com/forgehdl/forge/internal/bridge/modbus"
	"github.com/forgehdl/forge/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: forgebridge <config.yaml>")
	}

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(os.Args[1])
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}
	config.Normalize(cfg)

	if cfg.Bridge.Endpoint == "" {
		log.Fatal("config names no bridge endpoint")
	}

	// --------------------
	// Endpoint client + bench
	// --------------------

	client, err := modbus.New(modbus.Config{
		Endpoint: cfg.Bridge.Endpoint,
		UnitID:   cfg.Bridge.UnitID,
		Timeout:  time.Duration(cfg.Bridge.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		log.Fatalf("endpoint connect failed: %v", err)
	}
	defer client.Close()

	br, err := bridge.New(client, bridge.Geometry{
		ControlAddr: cfg.Bridge.ControlAddr,
		StatusAddr:  cfg.Bridge.StatusAddr,
		LoaderAddr:  cfg.Bridge.LoaderAddr,
	})
	if err != nil {
		log.Fatalf("bench build failed: %v", err)
	}

	// --------------------
	// Poll until killed
	// --------------------

	interval := time.Duration(cfg.Bridge.IntervalMs) * time.Millisecond
	log.Printf("bridging %s unit %d: control @ %d, status @ %d, every %s",
		cfg.Bridge.Endpoint, cfg.Bridge.UnitID,
		cfg.Bridge.ControlAddr, cfg.Bridge.StatusAddr, interval)

	err = br.Run(context.Background(), interval, func(err error) {
		log.Printf("cycle error: %v", err)
	})
	log.Fatalf("bridge stopped: %v", err)
}
