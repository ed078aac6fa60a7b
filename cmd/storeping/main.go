/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Command storeping verifies connectivity to a RethinkDB server using
// the same connection options the store uses. Options come from an
// optional YAML config file, overridable through the environment
// (RETHINKDB_HOST, RETHINKDB_PORT, RETHINKDB_DB).
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/suparena/rethinkstore"
	"github.com/suparena/rethinkstore/driver/rethinkdb"
	r "gopkg.in/rethinkdb/rethinkdb-go.v6"
	"gopkg.in/yaml.v3"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
	configFlag  = flag.String("config", "", "Path to a YAML connection config")
)

type connConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
}

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		info := rethinkstore.GetVersionInfo()
		fmt.Printf("rethinkstore storeping version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "storeping: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; ignore a missing file.
	_ = godotenv.Load()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		return err
	}

	db, err := rethinkdb.Connect(rethinkdb.Options{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Database: cfg.Database,
	})
	if err != nil {
		return err
	}
	defer db.Close()

	cur, err := r.Expr("pong").Run(db.Session())
	if err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	defer cur.Close()

	var reply string
	if err := cur.One(&reply); err != nil {
		return fmt.Errorf("ping reply: %w", err)
	}

	fmt.Printf("rethinkdb %s:%d database %q: %s\n",
		orDefault(cfg.Host, rethinkdb.DefaultHost),
		orDefaultInt(cfg.Port, rethinkdb.DefaultPort),
		orDefault(cfg.Database, rethinkdb.DefaultDatabase),
		reply)
	return nil
}

func loadConfig(path string) (connConfig, error) {
	var cfg connConfig

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}

	if host := os.Getenv("RETHINKDB_HOST"); host != "" {
		cfg.Host = host
	}
	if port := os.Getenv("RETHINKDB_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return cfg, fmt.Errorf("RETHINKDB_PORT: %w", err)
		}
		cfg.Port = p
	}
	if database := os.Getenv("RETHINKDB_DB"); database != "" {
		cfg.Database = database
	}

	return cfg, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func orDefaultInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
