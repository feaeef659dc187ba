package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/hatchworks/hatch/internal/noderuntime"
	"github.com/hatchworks/hatch/internal/shell"
	"github.com/hatchworks/hatch/internal/toolchain"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the local environment for required tools",
	Long: `Probe the local environment for everything the wizard may need:
the Node.js runtime and its version, package managers, and editors.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		runner := &shell.ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}

		fmt.Println("Runtime check:")
		runNodeCheck(cmd.Context(), runner)

		fmt.Println("Package managers:")
		for _, pm := range toolchain.PackageManagers {
			checkBinary(runner, pm.String())
		}

		fmt.Println("Editors:")
		for _, e := range toolchain.Editors {
			checkBinary(runner, e.Binary())
		}

		fmt.Println("Version managers:")
		probe := &noderuntime.ExecProbe{Runner: runner}
		if probe.ManagerAvailable() {
			fmt.Println("  [ OK ] nvm found at $NVM_DIR")
		} else {
			fmt.Println("  [MISS] nvm not found (NVM_DIR unset or missing nvm.sh)")
		}

		return nil
	},
}

func runNodeCheck(ctx context.Context, runner shell.Runner) {
	probe := &noderuntime.ExecProbe{Runner: runner}
	v, err := probe.Version(ctx)
	if err != nil {
		fmt.Println("  [MISS] node not found")
		return
	}
	if noderuntime.Supported(v) {
		fmt.Printf("  [ OK ] node v%s\n", v)
		return
	}
	fmt.Printf("  [WARN] node v%s (v%d+ required)\n", v, noderuntime.RequiredMajor)
}

func checkBinary(runner shell.Runner, name string) {
	path, err := runner.LookPath(name)
	if err != nil {
		fmt.Printf("  [MISS] %s not found\n", name)
		return
	}
	fmt.Printf("  [ OK ] %s found at %s\n", name, path)
}
