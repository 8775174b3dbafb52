package main

import (
	"os"

	"k8s.io/component-base/logs"
	_ "k8s.io/component-base/logs/json/register"

	"givenergyexporter/cmd/exporter/app"
)

func main() {
	cmd := app.NewExporterCmd()
	logs.InitLogs()
	defer logs.FlushLogs()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
