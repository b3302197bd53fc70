package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/etnz/exmini/logger"
)

// ExtensionPrefix prefixes the name of external subcommands.
const ExtensionPrefix = "exm-"

// RunExtension attempts to find and execute an external exm-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
//
// The global flags are passed as EXM_* environment variables.
func RunExtension(ctx context.Context, subcommand string, args []string) (bool, int) {
	externalCmdName := ExtensionPrefix + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log := logger.FromContext(ctx)
		log.Debug().Err(err).Str("command", externalCmdName).Msg("no extension found in PATH")
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(),
		EnvStore+"="+*storePath,
		EnvBackend+"="+*backend,
		EnvURL+"="+*remoteURL,
		EnvDataPath+"="+*dataPath,
		EnvOffline+"="+strconv.FormatBool(*offline),
		EnvVerbose+"="+strconv.FormatBool(*Verbose),
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
