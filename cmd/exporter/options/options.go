package options

import (
	"time"

	"github.com/spf13/pflag"

	"givenergyexporter/cmd/exporter/config"
	"givenergyexporter/pkg/collector"
	baseoptions "givenergyexporter/pkg/generic/options"
	"givenergyexporter/pkg/protocol/givenergy/runtime"
	"givenergyexporter/pkg/publish"
)

type Options struct {
	Host     string        `json:"host"`
	Port     int           `json:"port"`
	PromFile string        `json:"prom-file"`
	Interval time.Duration `json:"interval"`
	Listen   string        `json:"listen"`
	Broker   string        `json:"broker"`
	Topic    string        `json:"topic"`
	ClientId string        `json:"client-id"`
	Wait     time.Duration `json:"graceful-timeout"`
	baseoptions.BaseOptions
}

const (
	_defaultPromFile = "/var/lib/prometheus/node-exporter/givenergy.prom"
	_defaultClientId = "givenergy-exporter"
	_defaultWait     = 15 * time.Second
)

func NewDefaultOptions() *Options {
	return &Options{
		Port:        runtime.DefaultPort,
		PromFile:    _defaultPromFile,
		ClientId:    _defaultClientId,
		Wait:        _defaultWait,
		BaseOptions: baseoptions.NewDefaultBaseOptions(),
	}
}

func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Host, "host", "H", o.Host, "Host name or address of the inverter Wi-Fi adapter")
	fs.IntVarP(&o.Port, "port", "P", o.Port, "TCP port of the inverter Wi-Fi adapter")
	fs.StringVar(&o.PromFile, "prom-file", o.PromFile, "File the Prometheus report is written to, picked up by node exporter textfile collection")
	fs.DurationVar(&o.Interval, "interval", o.Interval, "Polling interval - e.g. 30s or 5m. With no interval the inverter is polled once and the program exits")
	fs.StringVar(&o.Listen, "listen", o.Listen, "Listen address for the embedded metrics server - e.g. :9910. Every scrape of /metrics polls the inverter")
	fs.StringVar(&o.Broker, "broker", o.Broker, "MQTT broker to publish poll results to - e.g. tcp://127.0.0.1:1883")
	fs.StringVar(&o.Topic, "topic", o.Topic, "MQTT topic for poll results")
	fs.StringVar(&o.ClientId, "client-id", o.ClientId, "MQTT client id")
	fs.DurationVar(&o.Wait, "graceful-timeout", o.Wait, "The duration for which the server gracefully wait for existing connections to finish - e.g. 15s or 1m")
}

func (o *Options) Config() (*config.Config, error) {
	c := &config.Config{
		Collector: collector.New(o.Host, o.Port),
		PromFile:  o.PromFile,
		Interval:  o.Interval,
		Listen:    o.Listen,
	}

	if len(o.Broker) != 0 {
		publisher, err := publish.New(o.Broker, o.ClientId, o.Topic)
		if err != nil {
			return nil, err
		}
		c.Publisher = publisher
	}

	return c, nil
}
