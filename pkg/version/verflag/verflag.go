package verflag

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"givenergyexporter/pkg/version"
)

var versionFlag *bool

func AddFlags(fs *pflag.FlagSet) {
	versionFlag = fs.Bool("version", false, "Print version information and quit")
}

// PrintAndExitIfRequested checks whether --version was passed and, if
// so, prints the version and exits.
func PrintAndExitIfRequested() {
	if versionFlag != nil && *versionFlag {
		fmt.Printf("givenergy-exporter %s\n", version.Get())
		os.Exit(0)
	}
}
