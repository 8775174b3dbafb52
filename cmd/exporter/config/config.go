package config

import (
	"time"

	"givenergyexporter/pkg/collector"
	"givenergyexporter/pkg/publish"
)

type Config struct {
	Collector *collector.Collector
	Publisher *publish.Publisher
	PromFile  string
	Interval  time.Duration
	Listen    string
}
