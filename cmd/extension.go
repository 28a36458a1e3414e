package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

const (
	EnvCurrency = "REBAL_CURRENCY"
	EnvEpsilon  = "REBAL_EPSILON"
	EnvVerbose  = "REBAL_VERBOSE"
)

// RunExtension attempts to find and execute an external rebal-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "rebal-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		return false, 0
	}

	cfg, ok := mustConfig()
	if !ok {
		return true, 2
	}
	log := cfg.logger()
	log.Debug().Str("extension", lp).Strs("args", args).Msg("running extension")

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables
	cmd.Env = append(os.Environ(), extensionEnv(cfg)...)

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

// extensionEnv returns the global settings as environment variables.
func extensionEnv(cfg config) []string {
	return []string{
		EnvCurrency + "=" + cfg.currency,
		EnvEpsilon + "=" + cfg.epsilon.String(),
		EnvVerbose + "=" + strconv.FormatBool(cfg.verbose),
	}
}
